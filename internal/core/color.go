package core

// Color is the foreground colour of a screen cell. Each value maps to an
// ANSI 256-colour code and to the colour it fades to as the cell ages.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink  // Flesh of stone fruit
	ColorGold  // Golden fruit and its bonus text
	ColorIce   // Frost fruit and the freeze banner
	colorCount // Sentinel
)

type paletteEntry struct {
	ansi string
	dim  Color
}

var palette = [colorCount]paletteEntry{
	ColorDefault:       {"", ColorDefault},
	ColorRed:           {"1", ColorGray},
	ColorGreen:         {"2", ColorGray},
	ColorYellow:        {"3", ColorOrange},
	ColorBlue:          {"4", ColorGray},
	ColorMagenta:       {"5", ColorGray},
	ColorCyan:          {"6", ColorBlue},
	ColorWhite:         {"7", ColorGray},
	ColorBrightRed:     {"9", ColorRed},
	ColorBrightGreen:   {"10", ColorGreen},
	ColorBrightYellow:  {"11", ColorYellow},
	ColorBrightBlue:    {"12", ColorBlue},
	ColorBrightMagenta: {"13", ColorMagenta},
	ColorBrightCyan:    {"14", ColorCyan},
	ColorBrightWhite:   {"15", ColorWhite},
	ColorOrange:        {"208", ColorRed},
	ColorGray:          {"245", ColorGray},
	ColorPink:          {"211", ColorMagenta},
	ColorGold:          {"220", ColorYellow},
	ColorIce:           {"159", ColorCyan},
}

// Colors returns every defined colour in order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// ANSI returns the 256-colour code, or "" for the terminal default.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return palette[c].ansi
}

// Dim returns the colour a fading cell steps down to. Gray and the default
// colour are their own dim.
func (c Color) Dim() Color {
	if c >= colorCount {
		return ColorDefault
	}
	return palette[c].dim
}
