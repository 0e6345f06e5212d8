package main

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// renderFunc turns reply text into its display form.
type renderFunc func(string) (string, error)

const defaultWrapWidth = 80

// markdownRenderer returns a glamour renderer sized to f, or nil when
// rendering is disabled or f is not a terminal.
func markdownRenderer(f *os.File, enabled bool) renderFunc {
	if !enabled || f == nil {
		return nil
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	width := defaultWrapWidth
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r.Render
}
