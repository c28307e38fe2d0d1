// Package output renders command results for people and for scripts.
//
// In auto mode a terminal gets styled text and anything else (pipes, files,
// agents) gets markdown. JSON is always explicit.
package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects how command output is rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// resolve turns ModeAuto (or an empty mode) into text or markdown for w.
func resolve(mode Mode, w io.Writer) Mode {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
		return mode
	}
	if isTerminal(w) {
		return ModeText
	}
	return ModeMarkdown
}
