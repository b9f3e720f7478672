// Package output renders styled terminal output for the quickrun CLI.
// Styling is disabled automatically when stdout is not a terminal, and can
// be forced on or off through the color configuration option.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles holds the lipgloss styles used across the CLI.
type Styles struct {
	Heading lipgloss.Style // section headings and the shell prompt
	Alias   lipgloss.Style // alias entries in language listings
	Muted   lipgloss.Style // secondary hints
	Error   lipgloss.Style // error messages
	Command lipgloss.Style // command names inside help/error text
}

func newStyles() Styles {
	return Styles{
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Alias:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Muted:   lipgloss.NewStyle().Faint(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Command: lipgloss.NewStyle().Background(lipgloss.Color("8")),
	}
}

// Renderer writes CLI output, applying styles only when color is enabled.
type Renderer struct {
	out    io.Writer
	styles Styles
	color  bool
}

// New creates a renderer for w. The mode is auto, always, or never; auto
// enables color only when w is a terminal.
func New(w io.Writer, mode string) *Renderer {
	color := false
	switch mode {
	case "always":
		color = true
	case "never":
		color = false
	default:
		if f, ok := w.(*os.File); ok {
			color = term.IsTerminal(int(f.Fd()))
		}
	}
	return &Renderer{out: w, styles: newStyles(), color: color}
}

// Writer returns the underlying writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Println writes a line of output.
func (r *Renderer) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(r.out, args...)
}

func (r *Renderer) render(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

// Heading styles a section heading.
func (r *Renderer) Heading(s string) string {
	return r.render(r.styles.Heading, s)
}

// Alias styles an alias entry in a language listing.
func (r *Renderer) Alias(s string) string {
	return r.render(r.styles.Alias, s)
}

// Muted styles a secondary hint.
func (r *Renderer) Muted(s string) string {
	return r.render(r.styles.Muted, s)
}

// Error styles an error message.
func (r *Renderer) Error(s string) string {
	return r.render(r.styles.Error, s)
}

// Command styles a command name inside help or error text.
func (r *Renderer) Command(s string) string {
	return r.render(r.styles.Command, s)
}
