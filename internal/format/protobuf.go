package format

import (
	"strings"

	"github.com/ryanfowler/argv/internal/core"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/types/known/structpb"
)

// protobufEncoder writes each record as a varint length-delimited
// google.protobuf.Struct message.
type protobufEncoder struct {
	p *core.Printer
}

func (e *protobufEncoder) Encode(r *Record) error {
	msg, err := recordStruct(r)
	if err != nil {
		return err
	}
	if _, err = protodelim.MarshalTo(e.p, msg); err != nil {
		e.p.Discard()
		return err
	}
	return e.p.Flush()
}

func (e *protobufEncoder) Close() error {
	return e.p.Flush()
}

func recordStruct(r *Record) (*structpb.Struct, error) {
	fields := map[string]any{
		"source": validUTF8(r.Source),
		"line":   r.Line,
		"input":  validUTF8(r.Input),
		"args":   stringsToAny(r.Args),
	}
	if r.Native != nil {
		fields["native"] = stringsToAny(r.Native)
	}
	if r.Mismatch {
		fields["mismatch"] = true
	}
	return structpb.NewStruct(fields)
}

func stringsToAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = validUTF8(s)
	}
	return out
}

// validUTF8 replaces invalid UTF-8, which protobuf strings cannot hold.
func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}
