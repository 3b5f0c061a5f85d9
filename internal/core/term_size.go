package core

import (
	"os"

	"golang.org/x/term"
)

// GetTerminalCols returns the number of columns in the stdout terminal, or 0
// if unavailable.
func GetTerminalCols() int {
	if !IsStdoutTerm {
		return 0
	}
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return cols
}
