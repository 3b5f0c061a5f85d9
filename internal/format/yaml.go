package format

import (
	"bytes"
	"fmt"

	"github.com/ryanfowler/argv/internal/core"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/token"
)

// FormatYAML formats the provided raw YAML data to the Printer.
func FormatYAML(buf []byte, p *core.Printer) error {
	err := formatYAML(buf, p)
	if err != nil {
		p.Reset()
	}
	return err
}

func formatYAML(buf []byte, p *core.Printer) error {
	tokens := lexer.Tokenize(string(buf))

	if inv := tokens.InvalidToken(); inv != nil {
		return fmt.Errorf("invalid yaml: %s", inv.Error)
	}

	for _, tok := range tokens {
		writeYAMLToken(p, tok)
	}

	return nil
}

func writeYAMLToken(p *core.Printer, tok *token.Token) {
	switch tok.Type {
	case token.StringType, token.SingleQuoteType, token.DoubleQuoteType:
		if isYAMLKey(tok) {
			p.Set(core.Blue)
			p.Set(core.Bold)
			p.WriteString(tok.Origin)
			p.Reset()
		} else {
			p.Set(core.Green)
			p.WriteString(tok.Origin)
			p.Reset()
		}

	case token.IntegerType, token.BoolType, token.NullType:
		p.Set(core.Cyan)
		p.WriteString(tok.Origin)
		p.Reset()

	case token.CommentType, token.DocumentHeaderType, token.DocumentEndType:
		p.Set(core.Dim)
		p.WriteString(tok.Origin)
		p.Reset()

	default:
		p.WriteString(tok.Origin)
	}
}

func isYAMLKey(tok *token.Token) bool {
	return tok.Next != nil && tok.NextType() == token.MappingValueType
}

// yamlEncoder buffers all records and writes them as a YAML sequence.
type yamlEncoder struct {
	p       *core.Printer
	records []*Record
}

func (e *yamlEncoder) Encode(r *Record) error {
	e.records = append(e.records, r)
	return nil
}

func (e *yamlEncoder) Close() error {
	records := e.records
	if records == nil {
		records = []*Record{}
	}
	buf, err := yaml.Marshal(records)
	if err != nil {
		return err
	}
	buf = bytes.TrimRight(buf, "\n")
	if err = FormatYAML(buf, e.p); err != nil {
		e.p.Discard()
		return err
	}
	e.p.WriteString("\n")
	return e.p.Flush()
}
