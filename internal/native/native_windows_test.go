//go:build windows

package native

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ryanfowler/argv/cmdline"
)

func TestSplitMatchesCmdline(t *testing.T) {
	inputs := []string{
		"prog.exe a b c",
		`"C:\Program Files\app.exe" --flag`,
		`prog.exe "a b" c`,
		`prog.exe \"quoted\"`,
		`prog.exe \\"a b\\"`,
		`prog.exe a\\\b`,
		`prog.exe a\\\"b`,
		`prog.exe "a""b"`,
		`prog.exe "a b`,
		`"C:\dir\" arg`,
		"prog.exe a\tb",
		"a b\x00c d",
		"\"C:\\dir x\\app.exe\" \"y z\x00\" w",
	}
	for _, input := range inputs {
		got, err := Split(input)
		if err != nil {
			t.Fatalf("Split(%q): %v", input, err)
		}
		want := cmdline.Split(input)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("native Split(%q) = %q, cmdline.Split = %q", input, got, want)
		}
	}
}

func TestCommandLine(t *testing.T) {
	line, err := CommandLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	args := cmdline.Split(line)
	if !strings.HasSuffix(strings.ToLower(args[0]), ".exe") {
		t.Fatalf("unexpected program name: %q", args[0])
	}
}
