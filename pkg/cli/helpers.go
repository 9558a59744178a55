package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const clearSequence = "\033[H\033[2J"

// ClearScreen wipes the terminal. Output that is not a terminal is left alone.
func ClearScreen() {
	file, ok := Output.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return
	}

	fmt.Fprint(Output, clearSequence)
}

// Width reports the terminal width, or fallback when it cannot be read.
func Width(fallback int) int {
	file, ok := Output.(*os.File)
	if !ok {
		return fallback
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width < 20 {
		return fallback
	}

	return width
}

// Truncate shortens s to max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}

	if max == 1 {
		return "…"
	}

	return string(runes[:max-1]) + "…"
}
