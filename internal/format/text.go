package format

import (
	"strconv"

	"github.com/ryanfowler/argv/internal/core"
)

// textEncoder writes one argument per line, prefixed by its index. In null
// mode every argument is terminated by a NUL byte and every record by a
// newline, with no decoration.
type textEncoder struct {
	p     *core.Printer
	null  bool
	count int
}

func (e *textEncoder) Encode(r *Record) error {
	if e.null {
		for _, arg := range r.Args {
			e.p.WriteString(arg)
			e.p.WriteByte(0)
		}
		e.p.WriteByte('\n')
		return e.p.Flush()
	}

	if e.count > 0 {
		e.p.WriteString("\n")
	}
	e.count++

	writeArgs(e.p, r.Args, core.Default)
	if r.Mismatch {
		e.p.Set(core.Yellow)
		e.p.Set(core.Bold)
		e.p.WriteString("native")
		e.p.Reset()
		e.p.WriteString(":\n")
		writeArgs(e.p, r.Native, core.Yellow)
	}
	return e.p.Flush()
}

func (e *textEncoder) Close() error {
	return e.p.Flush()
}

func writeArgs(p *core.Printer, args []string, color core.Sequence) {
	for i, arg := range args {
		p.Set(core.Dim)
		p.WriteString("[")
		p.WriteString(strconv.Itoa(i))
		p.WriteString("] ")
		p.Reset()

		if color != core.Default {
			p.Set(color)
		}
		p.WriteString(arg)
		if color != core.Default {
			p.Reset()
		}
		p.WriteString("\n")
	}
}
