// Package output renders human-facing CLI text: error lines and listings.
// JSON results of a select are written by the engine and never pass through
// here.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles holds the lipgloss styles used by the CLI.
type Styles struct {
	Error lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles creates the CLI styles bound to a lipgloss renderer.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Error: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Muted: r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Renderer writes CLI text to stdout and stderr, styled only when stderr is
// a terminal.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether errOut is a terminal.
func NewRenderer(out, errOut io.Writer) *Renderer {
	return NewRendererWithTTY(out, errOut, IsTerminal(errOut))
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool) *Renderer {
	return &Renderer{
		out:    out,
		errOut: errOut,
		isTTY:  isTTY,
		styles: NewStyles(lipgloss.NewRenderer(errOut)),
	}
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// Writer returns the stdout writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// IsTTY reports whether styling is enabled.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Println writes a line to stdout.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Muted renders s in the muted style when styling is enabled.
func (r *Renderer) Muted(s string) string {
	if !r.isTTY {
		return s
	}
	return r.styles.Muted.Render(s)
}

// Error writes a single "Error: <message>" line to stderr.
func (r *Renderer) Error(err error) {
	prefix := "Error:"
	if r.isTTY {
		prefix = r.styles.Error.Render(prefix)
	}
	_, _ = fmt.Fprintf(r.errOut, "%s %v\n", prefix, err)
}
