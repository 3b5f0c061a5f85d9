package integration_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

func TestMain(t *testing.T) {
	tempDir := getTempDir(t)
	defer os.RemoveAll(tempDir)

	argvPath := goBuild(t, tempDir)
	_ = getArgvVersion(t, argvPath)

	t.Run("help", func(t *testing.T) {
		res := runArgv(t, argvPath, nil, "--help")
		assertExitCode(t, 0, res.state)
		assertBufEmpty(t, res.stderr)
		assertBufNotEmpty(t, res.stdout)
	})

	t.Run("no input", func(t *testing.T) {
		res := runArgv(t, argvPath, nil)
		assertExitCode(t, 0, res.state)
		assertBufEmpty(t, res.stdout)
		assertBufEmpty(t, res.stderr)
	})

	t.Run("invalid flag", func(t *testing.T) {
		res := runArgv(t, argvPath, nil, "--invalid")
		assertExitCode(t, 1, res.state)
		assertBufEmpty(t, res.stdout)
		assertBufContains(t, res.stderr, "unknown flag")
		assertBufContains(t, res.stderr, "--help")
	})

	t.Run("conflicting flags", func(t *testing.T) {
		res := runArgv(t, argvPath, nil, "--join", "--file", "a.txt")
		assertExitCode(t, 1, res.state)
		assertBufEmpty(t, res.stdout)
		assertBufContains(t, res.stderr, "cannot be used together")
	})

	t.Run("split arguments", func(t *testing.T) {
		res := runArgv(t, argvPath, nil, `"C:\Program Files\app.exe" -x "a b" c\\"d e"`)
		assertExitCode(t, 0, res.state)
		assertBufEmpty(t, res.stderr)
		assertBufEquals(t, res.stdout, "[0] C:\\Program Files\\app.exe\n[1] -x\n[2] a b\n[3] c\\d e\n")
	})

	t.Run("split stdin as json", func(t *testing.T) {
		stdin := strings.NewReader("prog a\r\n\r\nprog \"b\"\"c\"\n")
		res := runArgv(t, argvPath, stdin, "--format", "json", "-v")
		assertExitCode(t, 0, res.state)
		assertBufContains(t, res.stderr, "stdin: read 2 lines as utf-8")

		var records []struct {
			Line int      `json:"line"`
			Args []string `json:"args"`
		}
		if err := json.Unmarshal(res.stdout.Bytes(), &records); err != nil {
			t.Fatalf("invalid json output: %s", res.stdout.String())
		}
		got := [][]string{records[0].Args, records[1].Args}
		exp := [][]string{{"prog", "a"}, {"prog", `b"c`}}
		if !reflect.DeepEqual(got, exp) || records[1].Line != 3 {
			t.Fatalf("unexpected records: %+v", records)
		}
	})

	t.Run("split file with null separators", func(t *testing.T) {
		path := filepath.Join(tempDir, "lines.txt")
		os.WriteFile(path, []byte("one \"two three\"\n"), 0o644)

		res := runArgv(t, argvPath, nil, "-0", "-f", path)
		assertExitCode(t, 0, res.state)
		assertBufEquals(t, res.stdout, "one\x00two three\x00\n")
	})

	t.Run("join", func(t *testing.T) {
		res := runArgv(t, argvPath, nil, "--join", "--", "prog", "a b", `c"d`, "-e")
		assertExitCode(t, 0, res.state)
		assertBufEquals(t, res.stdout, `prog "a b" "c\"d" -e`+"\n")
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(tempDir, "config")
		os.WriteFile(path, []byte("# argv config\nformat = ndjson\ncolor = off\n"), 0o644)

		res := runArgv(t, argvPath, nil, "--config", path, "prog a")
		assertExitCode(t, 0, res.state)
		assertBufEquals(t, res.stdout, `{"source":"argument","line":1,"input":"prog a","args":["prog","a"]}`+"\n")

		res = runArgv(t, argvPath, nil, "--config", filepath.Join(tempDir, "missing"), "prog")
		assertExitCode(t, 1, res.state)
		assertBufContains(t, res.stderr, "does not exist")
	})

	t.Run("silent", func(t *testing.T) {
		res := runArgv(t, argvPath, strings.NewReader("a\n"), "-s", "-v")
		assertExitCode(t, 0, res.state)
		assertBufEmpty(t, res.stderr)
		assertBufEquals(t, res.stdout, "[0] a\n")
	})

	t.Run("completion", func(t *testing.T) {
		res := runArgv(t, argvPath, nil, "--complete=fish", "--", "argv", "--form")
		assertExitCode(t, 0, res.state)
		assertBufContains(t, res.stdout, "--format\tOutput format")
	})

	t.Run("native", func(t *testing.T) {
		res := runArgv(t, argvPath, nil, "--native", `prog "a b" c\\\"d`)
		if runtime.GOOS != "windows" {
			assertExitCode(t, 1, res.state)
			assertBufContains(t, res.stderr, "only supported on windows")
			return
		}
		assertExitCode(t, 0, res.state)
		assertBufEmpty(t, res.stderr)
	})
}

func getTempDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "")
	if err != nil {
		t.Fatalf("unable to make temp dir: %s", err.Error())
	}

	return dir
}

func goBuild(t *testing.T, dir string) string {
	t.Helper()

	name := "argv"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	path := filepath.Join(dir, name)
	workingDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("unable to get current working directory: %s", err.Error())
	}
	mainPath := filepath.Dir(workingDir)

	cmd := exec.Command("go",
		"build",
		"-o", path,
		"-trimpath",
		mainPath,
	)
	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr
	if err = cmd.Run(); err != nil {
		t.Fatalf("unable to build argv binary: %s: %s", err.Error(), stderr.String())
	}

	return path
}

func getArgvVersion(t *testing.T, path string) string {
	t.Helper()

	res := runArgv(t, path, nil, "--version")
	assertExitCode(t, 0, res.state)

	name, version, ok := strings.Cut(res.stdout.String(), " ")
	if !ok || name != "argv" {
		t.Fatalf("unexpected version output: %s", res.stdout.String())
	}
	version = strings.TrimSpace(version)
	if version == "" {
		t.Fatalf("invalid version format: %s", res.stdout.String())
	}

	return version
}

type runResult struct {
	state  *os.ProcessState
	stderr *bytes.Buffer
	stdout *bytes.Buffer
}

func runArgv(t *testing.T, path string, stdin *strings.Reader, args ...string) runResult {
	t.Helper()

	var stderr, stdout = new(bytes.Buffer), new(bytes.Buffer)
	cmd := exec.Command(path, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}
	cmd.Stderr = stderr
	cmd.Stdout = stdout
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("unexpected error running the argv command: %s", err.Error())
		}
	}
	return runResult{
		state:  cmd.ProcessState,
		stderr: stderr,
		stdout: stdout,
	}
}

func assertExitCode(t *testing.T, exp int, state *os.ProcessState) {
	t.Helper()

	exitCode := state.ExitCode()
	if exp != exitCode {
		t.Fatalf("unexpected exit code: %d", exitCode)
	}
}

func assertBufEmpty(t *testing.T, buf *bytes.Buffer) {
	t.Helper()

	if buf.Len() != 0 {
		t.Fatalf("unexpected data in buffer: %s", buf.String())
	}
}

func assertBufNotEmpty(t *testing.T, buf *bytes.Buffer) {
	t.Helper()

	if buf.Len() == 0 {
		t.Fatal("unexpected empty buffer")
	}
}

func assertBufContains(t *testing.T, buf *bytes.Buffer, s string) {
	t.Helper()

	if !strings.Contains(buf.String(), s) {
		t.Fatalf("unexpected buffer: %s", buf.String())
	}
}

func assertBufEquals(t *testing.T, buf *bytes.Buffer, s string) {
	t.Helper()

	if buf.String() != s {
		t.Fatalf("unexpected buffer: %s", buf.String())
	}
}
