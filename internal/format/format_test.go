package format

import (
	"bufio"
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/ryanfowler/argv/internal/core"

	"github.com/goccy/go-yaml"
	"github.com/tinylib/msgp/msgp"
	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/types/known/structpb"
)

func testRecords() []*Record {
	return []*Record{
		{Source: "argument", Line: 1, Input: `prog "a b"`, Args: []string{"prog", "a b"}},
		{Source: "stdin", Line: 3, Input: "x", Args: []string{"x"}, Native: []string{"y"}, Mismatch: true},
	}
}

func encodeAll(t *testing.T, f core.Format, opts Options, records []*Record) []byte {
	t.Helper()
	var buf bytes.Buffer
	p := core.NewTestHandle(&buf, nil).Stdout()
	enc := NewEncoder(f, p, opts)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			t.Fatalf("unable to encode record: %v", err)
		}
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("unable to close encoder: %v", err)
	}
	return buf.Bytes()
}

func TestTextEncoder(t *testing.T) {
	t.Run("decorated", func(t *testing.T) {
		got := string(encodeAll(t, core.FormatText, Options{}, testRecords()))
		want := "[0] prog\n[1] a b\n\n[0] x\nnative:\n[0] y\n"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("null separated", func(t *testing.T) {
		got := string(encodeAll(t, core.FormatUnknown, Options{Null: true}, testRecords()))
		want := "prog\x00a b\x00\nx\x00\n"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})
}

func TestTableEncoder(t *testing.T) {
	records := []*Record{
		{Source: "argument", Line: 1, Args: []string{"prog", "abcdefghij", "", "a\tb"}},
	}

	t.Run("full width", func(t *testing.T) {
		got := string(encodeAll(t, core.FormatTable, Options{}, records))
		lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
		if len(lines) != 5 {
			t.Fatalf("unexpected number of lines: %q", lines)
		}
		if lines[0] != "SOURCE      #  ARG" {
			t.Fatalf("unexpected header: %q", lines[0])
		}
		if lines[1] != "argument:1  0  prog" {
			t.Fatalf("unexpected first row: %q", lines[1])
		}
		if lines[2] != "            1  abcdefghij" {
			t.Fatalf("unexpected second row: %q", lines[2])
		}
		if !strings.HasSuffix(lines[3], `  ""`) || !strings.HasSuffix(lines[4], `  "a\tb"`) {
			t.Fatalf("special arguments not quoted: %q", lines[3:])
		}
	})

	t.Run("truncated", func(t *testing.T) {
		got := string(encodeAll(t, core.FormatTable, Options{Width: 20}, records))
		if !strings.Contains(got, "abcd…\n") {
			t.Fatalf("expected truncated argument, got %q", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		got := encodeAll(t, core.FormatTable, Options{}, nil)
		if len(got) != 0 {
			t.Fatalf("expected no output, got %q", got)
		}
	})
}

func TestJSONEncoder(t *testing.T) {
	out := encodeAll(t, core.FormatJSON, Options{}, testRecords())

	var got []*Record
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("invalid json output %q: %v", out, err)
	}
	if !reflect.DeepEqual(got, testRecords()) {
		t.Fatalf("unexpected records: %+v", got)
	}

	empty := encodeAll(t, core.FormatJSON, Options{}, nil)
	if string(empty) != "[]\n" {
		t.Fatalf("unexpected empty output: %q", empty)
	}
}

func TestJSONEscaping(t *testing.T) {
	records := []*Record{{Source: "s", Line: 1, Input: "a\x00b", Args: []string{"a\x00b", `q"\`}}}
	out := encodeAll(t, core.FormatNDJSON, Options{}, records)

	var got Record
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("invalid json output %q: %v", out, err)
	}
	if !reflect.DeepEqual(&got, records[0]) {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestNDJSONEncoder(t *testing.T) {
	out := encodeAll(t, core.FormatNDJSON, Options{}, testRecords())

	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	for i, line := range lines {
		var got Record
		if err := json.Unmarshal([]byte(line), &got); err != nil {
			t.Fatalf("invalid json line %q: %v", line, err)
		}
		if !reflect.DeepEqual(&got, testRecords()[i]) {
			t.Fatalf("unexpected record: %+v", got)
		}
	}
}

func TestYAMLEncoder(t *testing.T) {
	out := encodeAll(t, core.FormatYAML, Options{}, testRecords())

	var got []*Record
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("invalid yaml output %q: %v", out, err)
	}
	if !reflect.DeepEqual(got, testRecords()) {
		t.Fatalf("unexpected records: %+v", got)
	}
	if !bytes.HasSuffix(out, []byte("\n")) || bytes.HasSuffix(out, []byte("\n\n")) {
		t.Fatalf("output should end with a single newline: %q", out)
	}

	empty := encodeAll(t, core.FormatYAML, Options{}, nil)
	if string(empty) != "[]\n" {
		t.Fatalf("unexpected empty output: %q", empty)
	}
}

func TestFormatYAMLPreservesInput(t *testing.T) {
	inputs := []string{
		"",
		"key: value",
		"- args:\n  - a\n  - b",
		"- source: stdin\n  line: 2\n  mismatch: true",
	}
	for _, input := range inputs {
		var buf bytes.Buffer
		p := core.NewTestHandle(&buf, nil).Stdout()
		if err := FormatYAML([]byte(input), p); err != nil {
			t.Fatalf("FormatYAML(%q) error = %v", input, err)
		}
		if got := string(p.Bytes()); got != input {
			t.Errorf("FormatYAML(%q) = %q, want original preserved", input, got)
		}
	}
}

func TestMsgPackEncoder(t *testing.T) {
	out := encodeAll(t, core.FormatMsgPack, Options{}, testRecords())

	var js bytes.Buffer
	if _, err := msgp.CopyToJSON(&js, bytes.NewReader(out)); err != nil {
		t.Fatalf("invalid msgpack output: %v", err)
	}

	var got []*Record
	if err := json.Unmarshal(js.Bytes(), &got); err != nil {
		t.Fatalf("invalid json conversion %q: %v", js.Bytes(), err)
	}
	if !reflect.DeepEqual(got, testRecords()) {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestProtobufEncoder(t *testing.T) {
	records := testRecords()
	records[0].Args = append(records[0].Args, "bad\xffutf8")
	out := encodeAll(t, core.FormatProtobuf, Options{}, records)

	r := bufio.NewReader(bytes.NewReader(out))
	var msgs []*structpb.Struct
	for range records {
		var msg structpb.Struct
		if err := protodelim.UnmarshalFrom(r, &msg); err != nil {
			t.Fatalf("unable to read message: %v", err)
		}
		msgs = append(msgs, &msg)
	}

	first := msgs[0].AsMap()
	if first["source"] != "argument" || first["line"] != float64(1) {
		t.Fatalf("unexpected first message: %v", first)
	}
	args := first["args"].([]any)
	if len(args) != 3 || args[1] != "a b" || args[2] != "bad�utf8" {
		t.Fatalf("unexpected args: %v", args)
	}

	second := msgs[1].AsMap()
	if second["mismatch"] != true || !reflect.DeepEqual(second["native"], []any{"y"}) {
		t.Fatalf("unexpected second message: %v", second)
	}
}
