// Package cmdline splits and joins Windows command lines using the rules of
// the Microsoft C runtime, the same rules implemented by CommandLineToArgvW.
package cmdline

import "unicode/utf16"

// char is the code unit of a command line, either a byte of a UTF-8 string
// or a UTF-16 code unit.
type char interface {
	byte | uint16
}

// Split splits the provided command line into its arguments. The first
// argument is always the program name, which may be empty. Split never
// returns an empty slice.
//
// The input is processed as bytes. The characters that affect parsing are
// all ASCII, so multi-byte UTF-8 sequences are copied through unchanged.
func Split(s string) []string {
	tokens := split([]byte(s))
	args := make([]string, len(tokens))
	for i, tok := range tokens {
		args[i] = string(tok)
	}
	return args
}

// SplitUTF16 splits the provided UTF-16 command line into its arguments,
// following the same rules as Split.
func SplitUTF16(s []uint16) [][]uint16 {
	return split(s)
}

// SplitUTF16String is like SplitUTF16, but returns each argument decoded as
// a UTF-8 string. Unpaired surrogates are replaced with U+FFFD.
func SplitUTF16String(s []uint16) []string {
	tokens := split(s)
	args := make([]string, len(tokens))
	for i, tok := range tokens {
		args[i] = string(utf16.Decode(tok))
	}
	return args
}

// split is the shared tokenizer. A NUL code unit ends the command line in
// the same way as the end of the slice.
func split[T char](s []T) [][]T {
	var i int

	// The program name does not use backslash escaping. Quotes only toggle
	// whether whitespace ends the token, and are never copied.
	name := make([]T, 0, len(s))
	var inQuotes bool
	for ; i < len(s) && s[i] != 0; i++ {
		c := s[i]
		if c == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes && isSpace(c) {
			break
		}
		name = append(name, c)
	}
	args := [][]T{name}

	for {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) || s[i] == 0 {
			return args
		}

		var arg []T
		arg, i = splitArg(s, i)
		args = append(args, arg)
	}
}

// splitArg parses a single argument starting at index i, returning the
// argument and the index of the first code unit after it.
func splitArg[T char](s []T, i int) ([]T, int) {
	arg := make([]T, 0, 16)
	var inQuotes bool
	for i < len(s) && s[i] != 0 {
		if !inQuotes && isSpace(s[i]) {
			break
		}

		var backslashes int
		for i < len(s) && s[i] == '\\' {
			backslashes++
			i++
		}

		if i < len(s) && s[i] == '"' {
			arg = appendBackslashes(arg, backslashes/2)
			switch {
			case backslashes%2 == 1:
				// Escaped quote.
				arg = append(arg, '"')
				i++
			case inQuotes && i+1 < len(s) && s[i+1] == '"':
				// A doubled quote inside a quoted region.
				arg = append(arg, '"')
				i += 2
			default:
				inQuotes = !inQuotes
				i++
			}
			continue
		}

		if backslashes > 0 {
			// Backslashes not followed by a quote are literal. The next
			// code unit is handled by the following iteration.
			arg = appendBackslashes(arg, backslashes)
			continue
		}

		arg = append(arg, s[i])
		i++
	}
	return arg, i
}

func appendBackslashes[T char](b []T, n int) []T {
	for range n {
		b = append(b, '\\')
	}
	return b
}

func isSpace[T char](c T) bool {
	return c == ' ' || c == '\t'
}
