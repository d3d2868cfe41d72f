package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision says whether play opens the terminal UI or prints a summary.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode maps the configured ui.mode onto the host's stdout. The
// carnival board needs a real terminal, so auto and live both fall back to
// the plain summary when stdout is redirected.
func resolveUIMode(mode string, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	switch normalized {
	case "plain":
		return uiModeDecision{}, nil
	case "", "auto", "live":
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
	if isTerminal(stdout) {
		return uiModeDecision{useLive: true}, nil
	}
	warning := "stdout is not a TTY; printing the subject summary instead of the carnival board."
	if normalized == "live" {
		warning = "Live board requested but stdout is not a TTY; printing the subject summary."
	}
	return uiModeDecision{warning: warning}, nil
}

// defaultIsTerminal checks writers backed by a file descriptor.
func defaultIsTerminal(stdout io.Writer) bool {
	fder, ok := stdout.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(fder.Fd()))
}
