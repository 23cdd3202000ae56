// Package render prints the tool's user-facing status lines, menu and
// prompts.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yikk/lolsettings/model"
)

const dividerWidth = 50

// Printer writes status lines to w using a Theme.
type Printer struct {
	w     io.Writer
	theme Theme
}

// NewPrinter creates a printer; color enables ANSI sequences.
func NewPrinter(w io.Writer, color bool) *Printer {
	theme := PlainTheme
	if color {
		theme = ColorTheme
	}
	return &Printer{w: w, theme: theme}
}

// NewStdoutPrinter prints to stdout, colored when stdout is a terminal and
// NO_COLOR is unset.
func NewStdoutPrinter() *Printer {
	color := term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	return NewPrinter(os.Stdout, color)
}

func (p *Printer) line(color, symbol, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, p.theme.paint(color, symbol+" "+msg))
}

// Success prints a completed action.
func (p *Printer) Success(format string, args ...any) {
	p.line(p.theme.Success, "✅", format, args...)
}

// Error prints a failed action.
func (p *Printer) Error(format string, args ...any) {
	p.line(p.theme.Error, "❌", format, args...)
}

// Warning prints something that needs the user's attention.
func (p *Printer) Warning(format string, args ...any) {
	p.line(p.theme.Warning, "⚠️", format, args...)
}

// Info prints a neutral notice.
func (p *Printer) Info(format string, args ...any) {
	p.line(p.theme.Info, "ℹ️", format, args...)
}

// Found prints an existing item the user should know about.
func (p *Printer) Found(format string, args ...any) {
	p.line(p.theme.Info, "📂", format, args...)
}

// Step prints progress of a long running action.
func (p *Printer) Step(format string, args ...any) {
	p.line(p.theme.Step, "→", format, args...)
}

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Divider prints a horizontal rule.
func (p *Printer) Divider() {
	fmt.Fprintln(p.w, strings.Repeat("-", dividerWidth))
}

// Prompt prints text without a trailing newline so input follows it.
func (p *Printer) Prompt(text string) {
	fmt.Fprint(p.w, p.theme.paint(p.theme.Bold, text))
}

// Menu prints a heading followed by one line per item.
func (p *Printer) Menu(heading string, items []model.MenuItem) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.theme.paint(p.theme.Bold, heading))
	for _, item := range items {
		fmt.Fprintln(p.w, item.ComputedTitle())
	}
}
