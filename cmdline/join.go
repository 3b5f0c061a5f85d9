package cmdline

import "strings"

// Join builds a command line from the provided arguments such that Split
// returns the same arguments, provided that the program name contains no
// double quotes and no argument contains a NUL character.
func Join(args []string) string {
	if len(args) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(QuoteProgram(args[0]))
	for _, arg := range args[1:] {
		sb.WriteByte(' ')
		sb.WriteString(Quote(arg))
	}
	return sb.String()
}

// QuoteProgram quotes a program name so that it is returned unchanged as the
// first argument of Split. The program name is parsed without any escaping,
// so double quotes cannot be represented and are removed.
func QuoteProgram(name string) string {
	name = strings.ReplaceAll(name, `"`, "")
	if name != "" && !strings.ContainsAny(name, " \t") {
		return name
	}
	return `"` + name + `"`
}

// Quote quotes a single argument so that it is returned unchanged by Split
// when it appears after the program name.
func Quote(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\"") {
		return arg
	}

	b := make([]byte, 0, len(arg)+2)
	b = append(b, '"')
	var backslashes int
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch c {
		case '\\':
			backslashes++
		case '"':
			// The preceding backslashes are doubled, and one more escapes
			// the quote itself.
			b = appendBackslashes(b, backslashes+1)
			backslashes = 0
		default:
			backslashes = 0
		}
		b = append(b, c)
	}

	// Double any trailing backslashes so they do not escape the closing
	// quote.
	b = appendBackslashes(b, backslashes)
	b = append(b, '"')
	return string(b)
}
