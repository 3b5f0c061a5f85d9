//go:build windows

package core

import (
	"os"

	"golang.org/x/sys/windows"
)

func init() {
	// ANSI sequences are only interpreted by the console once virtual
	// terminal processing is enabled for the handle.
	for _, f := range []*os.File{os.Stderr, os.Stdout} {
		_ = enableVirtualTerminal(windows.Handle(f.Fd()))
	}
}

func isTerminal(fd int) bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(fd), &mode) == nil
}

func enableVirtualTerminal(h windows.Handle) error {
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
