//go:build !windows

package core

import "golang.org/x/term"

func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
