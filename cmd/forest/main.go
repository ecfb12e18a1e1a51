// forest is a terminal brick breaker set in an enchanted forest.
//
// Usage:
//
//	forest play              - Play the game
//	forest config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load a custom YAML config
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forest",
	Short: "Forest Journey - break the bricks of an enchanted forest",
	Long: `Forest Journey is a brick breaker played in your terminal.

Bounce the spirit ball off your bark paddle, clear every brick to move on
to the next level, and catch falling seeds for forest skills.

Available commands:
  play     - Start a game
  config   - Print the effective configuration

Examples:
  forest play
  forest play --difficulty hard
  forest play --touch --seed 42
  forest config --difficulty easy > my-forest.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
