package native

import "errors"

// ErrUnsupported is returned when the native parser is not available on the
// current operating system.
var ErrUnsupported = errors.New("native command line parsing is only available on Windows")

// Available reports whether the native parser can be used.
func Available() bool {
	return available
}

// Split splits the provided command line using CommandLineToArgvW. Anything
// after a NUL character is ignored.
//
// CommandLineToArgvW returns the path of the current executable when given
// an empty string, so callers comparing results should skip input that is empty before
// any NUL.
func Split(s string) ([]string, error) {
	return split(s)
}

// CommandLine returns the command line of the current process, as provided
// by GetCommandLineW.
func CommandLine() (string, error) {
	return commandLine()
}
