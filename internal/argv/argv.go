package argv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/ryanfowler/argv/cmdline"
	"github.com/ryanfowler/argv/internal/core"
	"github.com/ryanfowler/argv/internal/format"
	"github.com/ryanfowler/argv/internal/input"
	"github.com/ryanfowler/argv/internal/native"
)

// Exit statuses returned by Run.
const (
	StatusOK       = 0
	StatusError    = 1
	StatusMismatch = 2
)

var errNoInput = errors.New("no command lines provided, pass them as arguments or on stdin")

// Request represents a single invocation of argv.
type Request struct {
	Encoding      string
	Files         []string
	Format        core.Format
	Join          bool
	KeepEmpty     bool
	Lines         []string
	Native        bool
	Null          bool
	PrinterHandle *core.Handle
	Self          bool
	Verbosity     core.Verbosity

	// Stdin is read when no command lines or files are provided. It
	// should be nil when stdin is a terminal.
	Stdin io.Reader
	// StdoutTerm is true when stdout is a terminal.
	StdoutTerm bool
	// Width is the terminal width used for table output.
	Width int
}

// Run executes the Request, returning the exit status.
func Run(ctx context.Context, r *Request) int {
	status, err := run(ctx, r)
	if err != nil {
		core.WriteErrorMsg(r.PrinterHandle.Stderr(), err)
		return StatusError
	}
	return status
}

func run(ctx context.Context, r *Request) (int, error) {
	if r.Join {
		return StatusOK, join(ctx, r)
	}

	f := r.Format
	if f == core.FormatUnknown || r.Null {
		f = core.FormatText
	}
	if f.IsBinary() && r.StdoutTerm {
		return StatusError, binaryTerminalError(f.String())
	}

	stdout := r.PrinterHandle.Stdout()
	stderr := r.PrinterHandle.Stderr()
	enc := format.NewEncoder(f, stdout, format.Options{Null: r.Null, Width: r.Width})

	var mismatches int
	err := r.forEachLine(ctx, func(l input.Line) error {
		rec := &format.Record{
			Source: l.Source,
			Line:   l.Num,
			Input:  l.Text,
			Args:   split(l),
		}

		// CommandLineToArgvW returns the current executable for an
		// empty command line, so there is nothing to compare.
		if r.Native && !emptyCommandLine(l.Text) {
			args, err := native.Split(l.Text)
			if err != nil {
				return err
			}
			rec.Native = args
			if !slices.Equal(rec.Args, args) {
				rec.Mismatch = true
				mismatches++
			}
		}

		if r.Verbosity >= core.VExtraVerbose {
			msg := fmt.Sprintf("%s:%d: %d argument%s", l.Source, l.Num, len(rec.Args), plural(len(rec.Args)))
			core.WriteInfoMsg(stderr, msg)
		}
		return enc.Encode(rec)
	})
	if err != nil {
		// Write out anything that was buffered before the error.
		enc.Close()
		return StatusError, err
	}
	if err = enc.Close(); err != nil {
		return StatusError, err
	}

	if mismatches > 0 {
		if r.Verbosity > core.VSilent {
			msg := fmt.Sprintf("%d command line%s split differently by CommandLineToArgvW", mismatches, plural(mismatches))
			core.WriteWarningMsg(stderr, msg)
		}
		return StatusMismatch, nil
	}
	return StatusOK, nil
}

// join writes a single command line built from every input line, with each
// line used as one argument.
func join(ctx context.Context, r *Request) error {
	var args []string
	err := r.forEachLine(ctx, func(l input.Line) error {
		args = append(args, l.Text)
		return nil
	})
	if err != nil {
		return err
	}

	if strings.Contains(args[0], `"`) && r.Verbosity > core.VSilent {
		msg := "double quotes cannot appear in a program name and have been removed"
		core.WriteWarningMsg(r.PrinterHandle.Stderr(), msg)
	}

	p := r.PrinterHandle.Stdout()
	p.WriteString(cmdline.Join(args))
	if r.Null {
		p.WriteByte(0)
	} else {
		p.WriteByte('\n')
	}
	return p.Flush()
}

// forEachLine calls fn for every command line of the Request's sources, in
// order: the current process, positional arguments, files, and finally
// stdin if nothing else was provided.
func (r *Request) forEachLine(ctx context.Context, fn func(input.Line) error) error {
	var count int
	counted := func(l input.Line) error {
		count++
		return fn(l)
	}

	if r.Self {
		line, err := selfCommandLine(r)
		if err != nil {
			return err
		}
		if err = counted(input.Line{Source: "self", Num: 1, Text: line}); err != nil {
			return err
		}
	}

	for _, l := range input.FromArgs(r.Lines) {
		if err := ctx.Err(); err != nil {
			return context.Cause(ctx)
		}
		if err := counted(l); err != nil {
			return err
		}
	}

	for _, path := range r.Files {
		if err := r.readFile(ctx, path, counted); err != nil {
			return err
		}
	}

	if !r.Self && len(r.Lines) == 0 && len(r.Files) == 0 {
		if r.Stdin == nil {
			return errNoInput
		}
		if err := r.read(ctx, "stdin", r.Stdin, counted); err != nil {
			return err
		}
	}

	if count == 0 && r.Join {
		return errNoInput
	}
	return nil
}

func (r *Request) readFile(ctx context.Context, path string, fn func(input.Line) error) error {
	f, err := input.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.read(ctx, input.SourceName(path), f, fn)
}

func (r *Request) read(ctx context.Context, name string, rd io.Reader, fn func(input.Line) error) error {
	opts := input.Options{Encoding: r.Encoding, KeepEmpty: r.KeepEmpty}
	info, err := input.Read(ctx, name, rd, opts, fn)
	if err != nil {
		return err
	}

	if r.Verbosity >= core.VVerbose {
		msg := fmt.Sprintf("%s: read %d line%s as %s", name, info.Lines, plural(info.Lines), info.Encoding)
		if info.Compression != "" {
			msg += " (" + info.Compression + ")"
		}
		core.WriteInfoMsg(r.PrinterHandle.Stderr(), msg)
	}
	return nil
}

// selfCommandLine returns the command line of the current process. Where the
// native command line is unavailable, it is rebuilt from os.Args.
func selfCommandLine(r *Request) (string, error) {
	if native.Available() {
		return native.CommandLine()
	}

	if r.Verbosity >= core.VVerbose {
		core.WriteInfoMsg(r.PrinterHandle.Stderr(), "rebuilding the command line from the process arguments")
	}
	return cmdline.Join(os.Args), nil
}

// split splits the Line, using the original UTF-16 code units if available.
func split(l input.Line) []string {
	if l.Wide != nil {
		return cmdline.SplitUTF16String(l.Wide)
	}
	return cmdline.Split(l.Text)
}

// emptyCommandLine reports whether s has no content before its first NUL.
func emptyCommandLine(s string) bool {
	return s == "" || s[0] == 0
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

type binaryTerminalError string

func (err binaryTerminalError) Error() string {
	return fmt.Sprintf("refusing to write %s output to a terminal", string(err))
}

func (err binaryTerminalError) PrintTo(p *core.Printer) {
	p.WriteString("refusing to write ")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString(" output to a terminal")
}
