package input

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf16"
)

var errTruncatedUTF16 = errors.New("truncated UTF-16 input: odd number of bytes")

// readUTF16 reads LF terminated lines of UTF-16 code units. A CR preceding
// the LF is removed. The code units are kept so that the wide splitter can
// be used on the exact input.
func readUTF16(br *bufio.Reader, bigEndian bool, emit func(int, Line) error) error {
	var (
		num  int
		line []uint16
		pair [2]byte
	)
	flush := func() error {
		num++
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		wide := append([]uint16{}, line...)
		line = line[:0]
		return emit(num, Line{Text: string(utf16.Decode(wide)), Wide: wide})
	}

	for {
		n, err := io.ReadFull(br, pair[:])
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, io.ErrUnexpectedEOF) && n == 1 {
				return errTruncatedUTF16
			}
			return err
		}

		var u uint16
		if bigEndian {
			u = uint16(pair[0])<<8 | uint16(pair[1])
		} else {
			u = uint16(pair[1])<<8 | uint16(pair[0])
		}

		if u == '\n' {
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		line = append(line, u)
	}

	if len(line) > 0 {
		return flush()
	}
	return nil
}
