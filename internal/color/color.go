// Package color wraps report text in ANSI escape sequences.
package color

const resetCode = "\033[0m"

// Color wraps text with ANSI escape sequences.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

// Plain returns text unchanged.
func Plain(text string) string {
	return text
}

// Predefined color functions
var (
	Gray   = NewColor("\033[90m")
	Green  = NewColor("\033[32m")
	Yellow = NewColor("\033[33m")
	Cyan   = NewColor("\033[36m")
	Bold   = NewColor("\033[1m")
)

// Palette assigns a Color to each kind of report element.
type Palette struct {
	Heading Color
	Symbol  Color
	Count   Color
	Code    Color
	Muted   Color
}

// ANSI is the palette used when color is enabled.
var ANSI = Palette{
	Heading: Bold,
	Symbol:  Cyan,
	Count:   Yellow,
	Code:    Green,
	Muted:   Gray,
}

// None is the palette used when color is disabled.
var None = Palette{
	Heading: Plain,
	Symbol:  Plain,
	Count:   Plain,
	Code:    Plain,
	Muted:   Plain,
}
