package format

import (
	"encoding/json"

	"github.com/ryanfowler/argv/internal/core"
)

// ndjsonEncoder writes each record as a compact JSON line as soon as it is
// encoded.
type ndjsonEncoder struct {
	p *core.Printer
}

func (e *ndjsonEncoder) Encode(r *Record) error {
	buf, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if err = FormatJSONLine(buf, e.p); err != nil {
		e.p.Discard()
		return err
	}
	return e.p.Flush()
}

func (e *ndjsonEncoder) Close() error {
	return e.p.Flush()
}
