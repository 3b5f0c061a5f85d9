package format

import (
	"io"

	"github.com/ryanfowler/argv/internal/core"
)

// Record is the result of splitting a single command line.
type Record struct {
	Source   string   `json:"source" yaml:"source"`
	Line     int      `json:"line" yaml:"line"`
	Input    string   `json:"input" yaml:"input"`
	Args     []string `json:"args" yaml:"args"`
	Native   []string `json:"native,omitempty" yaml:"native,omitempty"`
	Mismatch bool     `json:"mismatch,omitempty" yaml:"mismatch,omitempty"`
}

// Encoder writes Records to a Printer. Close must be called once all
// Records have been encoded, as some formats buffer their output.
type Encoder interface {
	Encode(r *Record) error
	Close() error
}

// Options configure the Encoders.
type Options struct {
	// Null terminates each argument with a NUL byte in text output.
	Null bool
	// Width is the maximum line width for table output, or 0 if unknown.
	Width int
}

// NewEncoder returns the Encoder for the provided Format. An unknown Format
// uses the text Encoder.
func NewEncoder(f core.Format, p *core.Printer, opts Options) Encoder {
	switch f {
	case core.FormatTable:
		return &tableEncoder{p: p, width: opts.Width}
	case core.FormatJSON:
		return &jsonEncoder{p: p}
	case core.FormatNDJSON:
		return &ndjsonEncoder{p: p}
	case core.FormatYAML:
		return &yamlEncoder{p: p}
	case core.FormatMsgPack:
		return &msgpackEncoder{p: p}
	case core.FormatProtobuf:
		return &protobufEncoder{p: p}
	default:
		return &textEncoder{p: p, null: opts.Null}
	}
}

// writeIndent writes the provided number of indents to the Printer.
func writeIndent(w io.StringWriter, indent int) {
	for range indent {
		w.WriteString("  ")
	}
}
