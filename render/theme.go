package render

// Theme maps each kind of status line to an ANSI color sequence. The zero
// Theme prints plain text.
type Theme struct {
	Success string
	Error   string
	Warning string
	Info    string
	Step    string
	Bold    string
}

const colorReset = "\033[0m"

// ColorTheme is used when stdout is a terminal.
var ColorTheme = Theme{
	Success: "\033[32m",
	Error:   "\033[31m",
	Warning: "\033[33m",
	Info:    "\033[36m",
	Step:    "\033[36m",
	Bold:    "\033[1m",
}

// PlainTheme disables colors.
var PlainTheme = Theme{}

func (t Theme) paint(color, text string) string {
	if color == "" {
		return text
	}
	return color + text + colorReset
}
