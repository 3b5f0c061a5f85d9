package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ryanfowler/argv/internal/core"
)

// Open opens the file at the provided path for reading. The path "-" refers
// to stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, core.FileNotExistsError(path)
		}
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		f.Close()
		return nil, fileIsDirError(path)
	}
	return f, nil
}

// SourceName returns the display name of the provided path.
func SourceName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

type fileIsDirError string

func (err fileIsDirError) Error() string {
	return fmt.Sprintf("file '%s' is a directory", string(err))
}

func (err fileIsDirError) PrintTo(p *core.Printer) {
	p.WriteString("file '")
	p.Set(core.Dim)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("' is a directory")
}
