//go:build windows

package native

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

const available = true

func split(s string) ([]string, error) {
	// A NUL ends the command line, as it does for cmdline.Split.
	s, _, _ = strings.Cut(s, "\x00")

	ptr, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil, fmt.Errorf("encoding command line as UTF-16: %w", err)
	}

	var argc int32
	argv, err := windows.CommandLineToArgv(ptr, &argc)
	if err != nil {
		return nil, fmt.Errorf("CommandLineToArgvW: %w", err)
	}
	defer windows.LocalFree(windows.Handle(uintptr(unsafe.Pointer(argv))))

	args := make([]string, 0, argc)
	for _, p := range unsafe.Slice((**uint16)(unsafe.Pointer(argv)), argc) {
		args = append(args, windows.UTF16PtrToString(p))
	}
	return args, nil
}

func commandLine() (string, error) {
	ptr := windows.GetCommandLine()
	if ptr == nil {
		return "", fmt.Errorf("GetCommandLineW returned no command line")
	}
	return windows.UTF16PtrToString(ptr), nil
}
