package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ryanfowler/argv/internal/core"
)

// FormatJSON formats the provided raw JSON data to the Printer, indented and
// with syntax highlighting.
func FormatJSON(buf []byte, p *core.Printer) error {
	err := formatJSON(bytes.NewReader(buf), p, false)
	if err != nil {
		p.Reset()
	}
	return err
}

// FormatJSONLine formats the provided raw JSON data as a single compact line
// to the Printer.
func FormatJSONLine(buf []byte, p *core.Printer) error {
	err := formatJSON(bytes.NewReader(buf), p, true)
	if err != nil {
		p.Reset()
	}
	return err
}

type jsonFormatter struct {
	dec     *json.Decoder
	p       *core.Printer
	compact bool
}

func formatJSON(r io.Reader, p *core.Printer, compact bool) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	f := jsonFormatter{dec: dec, p: p, compact: compact}
	err := f.value(0)
	if err != nil {
		return err
	}

	// Ensure that there are no more tokens left.
	tok, err := dec.Token()
	if !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected token: %v", tok)
	}

	p.WriteString("\n")
	return nil
}

func (f *jsonFormatter) value(indent int) error {
	token, err := f.dec.Token()
	if err != nil {
		return err
	}
	return f.valueToken(indent, token)
}

func (f *jsonFormatter) valueToken(indent int, token any) error {
	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '{':
			return f.object(indent)
		case '[':
			return f.array(indent)
		}
		return fmt.Errorf("unexpected token: %q", t)
	case bool:
		f.p.Set(core.Yellow)
		f.p.WriteString(strconv.FormatBool(t))
		f.p.Reset()
	case string:
		writeJSONString(f.p, t)
	case json.Number:
		f.p.Set(core.Cyan)
		f.p.WriteString(string(t))
		f.p.Reset()
	case nil:
		f.p.Set(core.Dim)
		f.p.WriteString("null")
		f.p.Reset()
	}
	return nil
}

func (f *jsonFormatter) newline(indent int) {
	if f.compact {
		return
	}
	f.p.WriteString("\n")
	writeIndent(f.p, indent)
}

func (f *jsonFormatter) object(indent int) error {
	f.p.WriteString("{")

	var hasFields bool
	for {
		tok, err := f.dec.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case json.Delim:
			if t != '}' {
				return fmt.Errorf("unexpected token: %q", string(t))
			}
			if hasFields {
				f.newline(indent)
			}
			f.p.WriteString("}")
			return nil
		case string:
			if hasFields {
				f.p.WriteString(",")
			}
			f.newline(indent + 1)
			hasFields = true
			writeJSONKey(f.p, t, f.compact)

			err = f.value(indent + 1)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unexpected token: %v", t)
		}
	}
}

func (f *jsonFormatter) array(indent int) error {
	f.p.WriteString("[")

	var hasFields bool
	for {
		tok, err := f.dec.Token()
		if err != nil {
			return err
		}

		if t, ok := tok.(json.Delim); ok && t == ']' {
			if hasFields {
				f.newline(indent)
			}
			f.p.WriteString("]")
			return nil
		}

		if hasFields {
			f.p.WriteString(",")
		}
		f.newline(indent + 1)
		hasFields = true

		err = f.valueToken(indent+1, tok)
		if err != nil {
			return err
		}
	}
}

func writeJSONKey(p *core.Printer, s string, compact bool) {
	p.WriteString("\"")
	p.Set(core.Blue)
	p.Set(core.Bold)
	escapeJSONString(p, s)
	p.Reset()
	if compact {
		p.WriteString("\":")
	} else {
		p.WriteString("\": ")
	}
}

func writeJSONString(p *core.Printer, s string) {
	p.WriteString("\"")
	p.Set(core.Green)
	escapeJSONString(p, s)
	p.Reset()
	p.WriteString("\"")
}

func escapeJSONString(p *core.Printer, s string) {
	const hex = "0123456789abcdef"
	for _, c := range s {
		switch c {
		case '\b':
			p.WriteString(`\b`)
		case '\f':
			p.WriteString(`\f`)
		case '\n':
			p.WriteString(`\n`)
		case '\r':
			p.WriteString(`\r`)
		case '\t':
			p.WriteString(`\t`)
		case '"':
			p.WriteString(`\"`)
		case '\\':
			p.WriteString(`\\`)
		default:
			if c < 0x20 {
				p.WriteString(`\u00`)
				p.WriteByte(hex[c>>4])
				p.WriteByte(hex[c&0xF])
				continue
			}
			p.WriteRune(c)
		}
	}
}

// jsonEncoder buffers all records and writes them as a single JSON array.
type jsonEncoder struct {
	p       *core.Printer
	records []*Record
}

func (e *jsonEncoder) Encode(r *Record) error {
	e.records = append(e.records, r)
	return nil
}

func (e *jsonEncoder) Close() error {
	records := e.records
	if records == nil {
		records = []*Record{}
	}
	buf, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err = FormatJSON(buf, e.p); err != nil {
		e.p.Discard()
		return err
	}
	return e.p.Flush()
}
