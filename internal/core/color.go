package core

// Color is a foreground color for a screen cell in "#rrggbb" form.
// The empty string means the terminal's default color.
type Color string

// Palette used by the forest theme.
const (
	ColorDefault  Color = ""
	ColorWhite    Color = "#ffffff"
	ColorBark     Color = "#a0522d"
	ColorEmber    Color = "#ff7f50"
	ColorFlame    Color = "#ff4500"
	ColorMoss     Color = "#4b6f44"
	ColorMist     Color = "#7fb5b5"
	ColorBlossom  Color = "#ff9b9b"
	ColorPollen   Color = "#fdfd96"
	ColorFern     Color = "#91c18e"
	ColorLavender Color = "#b19cd9"
	ColorShade    Color = "#555555"
)

// IsValid reports whether c is empty or a well-formed "#rrggbb" value.
func (c Color) IsValid() bool {
	if c == ColorDefault {
		return true
	}
	if len(c) != 7 || c[0] != '#' {
		return false
	}
	for i := 1; i < len(c); i++ {
		ch := c[i]
		isHex := (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
		if !isHex {
			return false
		}
	}
	return true
}
