package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// maxLineSize is the longest line that can be read from a source. Windows
// limits command lines to 32767 UTF-16 code units, so this leaves plenty of
// room for any UTF-8 representation.
const maxLineSize = 1 << 20

// Line represents a single command line read from a source.
type Line struct {
	// Source is the name of the source the line was read from.
	Source string
	// Num is the 1-based line number, or argument position.
	Num int
	// Text is the command line as UTF-8.
	Text string
	// Wide holds the original UTF-16 code units when the source was
	// UTF-16 encoded, and is nil otherwise.
	Wide []uint16
}

// Options configure how a source is decoded.
type Options struct {
	// Encoding is "auto" (or empty), "utf-8", "utf-16le", "utf-16be", or
	// any IANA charset name.
	Encoding string
	// KeepEmpty emits empty lines instead of skipping them.
	KeepEmpty bool
}

// Info describes how a source was decoded.
type Info struct {
	Compression string
	Encoding    string
	Lines       int
}

// FromArgs returns a Line for each of the provided arguments.
func FromArgs(args []string) []Line {
	lines := make([]Line, len(args))
	for i, arg := range args {
		lines[i] = Line{Source: "argument", Num: i + 1, Text: arg}
	}
	return lines
}

// Read reads command lines from r, calling fn for each one. The source is
// decompressed and decoded as necessary.
func Read(ctx context.Context, name string, r io.Reader, opts Options, fn func(Line) error) (Info, error) {
	var info Info

	rc, compression, err := decompress(r)
	if err != nil {
		return info, fmt.Errorf("%s: %w", name, err)
	}
	defer rc.Close()
	info.Compression = compression

	br := bufio.NewReader(rc)
	enc, err := detectEncoding(br, opts.Encoding)
	if err != nil {
		return info, fmt.Errorf("%s: %w", name, err)
	}
	info.Encoding = enc

	emit := func(num int, l Line) error {
		if err := ctx.Err(); err != nil {
			return context.Cause(ctx)
		}
		if l.Text == "" && !opts.KeepEmpty {
			return nil
		}
		info.Lines++
		l.Source = name
		l.Num = num
		return fn(l)
	}

	switch enc {
	case "utf-16le", "utf-16be":
		err = readUTF16(br, enc == "utf-16be", emit)
	case "utf-8":
		err = readUTF8(br, emit)
	default:
		err = readCharset(br, enc, emit)
	}
	if err != nil {
		return info, fmt.Errorf("%s: %w", name, err)
	}
	return info, nil
}

func readUTF8(r io.Reader, emit func(int, Line) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var num int
	for scanner.Scan() {
		num++
		if err := emit(num, Line{Text: scanner.Text()}); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func readCharset(r io.Reader, name string, emit func(int, Line) error) error {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return err
	}
	if enc == nil {
		return fmt.Errorf("unsupported encoding '%s'", name)
	}
	return readUTF8(enc.NewDecoder().Reader(r), emit)
}

// detectEncoding determines the encoding of the buffered source, consuming
// any byte order mark.
func detectEncoding(br *bufio.Reader, encoding string) (string, error) {
	encoding = strings.ToLower(encoding)
	switch encoding {
	case "", "auto":
		bom, _ := br.Peek(3)
		switch {
		case len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF:
			br.Discard(3)
			return "utf-8", nil
		case len(bom) >= 2 && bom[0] == 0xFF && bom[1] == 0xFE:
			br.Discard(2)
			return "utf-16le", nil
		case len(bom) >= 2 && bom[0] == 0xFE && bom[1] == 0xFF:
			br.Discard(2)
			return "utf-16be", nil
		}
		return "utf-8", nil
	case "utf-8", "utf8":
		if bom, _ := br.Peek(3); len(bom) == 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
			br.Discard(3)
		}
		return "utf-8", nil
	case "utf-16le":
		if bom, _ := br.Peek(2); len(bom) == 2 && bom[0] == 0xFF && bom[1] == 0xFE {
			br.Discard(2)
		}
		return encoding, nil
	case "utf-16be":
		if bom, _ := br.Peek(2); len(bom) == 2 && bom[0] == 0xFE && bom[1] == 0xFF {
			br.Discard(2)
		}
		return encoding, nil
	}

	enc, err := ianaindex.IANA.Encoding(encoding)
	if err != nil || enc == nil {
		return "", fmt.Errorf("unsupported encoding '%s'", encoding)
	}
	return encoding, nil
}
