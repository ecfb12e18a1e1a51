package forest

// Cue is a discrete audio signal emitted by the simulation.
type Cue int

const (
	CueHit     Cue = iota // Wall or brick contact, launch
	CuePaddle             // Paddle bounce, safety floor bounce
	CueExplode            // Life lost
	CuePowerUp            // Item picked up
	CueShot               // Laser fired
	CueWin                // Level cleared
	CueStart              // New game started
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CuePaddle:
		return "paddle"
	case CueExplode:
		return "explode"
	case CuePowerUp:
		return "powerup"
	case CueShot:
		return "shot"
	case CueWin:
		return "win"
	case CueStart:
		return "start"
	default:
		return "unknown"
	}
}

// AudioSink receives cues. Play must not block the frame.
type AudioSink interface {
	Play(c Cue)
}

// UISink receives HUD values and skill announcements. It is write-only from
// the simulation's side.
type UISink interface {
	SetScore(score int)
	SetLevel(level int)
	SetLives(lives int)
	// Announce shows a transient skill name. Failures are logged by the
	// caller and never interrupt the frame.
	Announce(text string) error
}

type nopAudio struct{}

func (nopAudio) Play(Cue) {}

type nopUI struct{}

func (nopUI) SetScore(int) {}
func (nopUI) SetLevel(int) {}
func (nopUI) SetLives(int) {}
func (nopUI) Announce(string) error { return nil }
