package format

import (
	"github.com/ryanfowler/argv/internal/core"

	"github.com/tinylib/msgp/msgp"
)

// msgpackEncoder buffers all records and writes them as a MessagePack array
// of maps, using the same keys as the JSON output.
type msgpackEncoder struct {
	p       *core.Printer
	records []*Record
}

func (e *msgpackEncoder) Encode(r *Record) error {
	e.records = append(e.records, r)
	return nil
}

func (e *msgpackEncoder) Close() error {
	b := msgp.AppendArrayHeader(nil, uint32(len(e.records)))
	for _, r := range e.records {
		b = appendMsgPackRecord(b, r)
	}
	e.p.Write(b)
	return e.p.Flush()
}

func appendMsgPackRecord(b []byte, r *Record) []byte {
	size := uint32(4)
	if r.Native != nil {
		size++
	}
	if r.Mismatch {
		size++
	}

	b = msgp.AppendMapHeader(b, size)
	b = msgp.AppendString(b, "source")
	b = msgp.AppendString(b, r.Source)
	b = msgp.AppendString(b, "line")
	b = msgp.AppendInt(b, r.Line)
	b = msgp.AppendString(b, "input")
	b = msgp.AppendString(b, r.Input)
	b = msgp.AppendString(b, "args")
	b = appendMsgPackStrings(b, r.Args)
	if r.Native != nil {
		b = msgp.AppendString(b, "native")
		b = appendMsgPackStrings(b, r.Native)
	}
	if r.Mismatch {
		b = msgp.AppendString(b, "mismatch")
		b = msgp.AppendBool(b, true)
	}
	return b
}

func appendMsgPackStrings(b []byte, ss []string) []byte {
	b = msgp.AppendArrayHeader(b, uint32(len(ss)))
	for _, s := range ss {
		b = msgp.AppendString(b, s)
	}
	return b
}
