//go:build windows

package argv

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ryanfowler/argv/internal/core"
	"github.com/ryanfowler/argv/internal/format"
)

func TestRunNative(t *testing.T) {
	res := runRequest(t, &Request{
		Lines:  []string{`prog "a b" c\\\"d`, ""},
		Format: core.FormatJSON,
		Native: true,
	})
	if res.status != StatusOK {
		t.Fatalf("unexpected status %d: %s", res.status, res.stderr)
	}

	var got []*format.Record
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("invalid json %q: %v", res.stdout, err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0].Native, got[0].Args) || got[0].Mismatch {
		t.Fatalf("unexpected native comparison: %+v", got[0])
	}
	if got[1].Native != nil {
		t.Fatalf("empty command line should not be compared: %+v", got[1])
	}
}

func TestRunNativeEmbeddedNUL(t *testing.T) {
	res := runRequest(t, &Request{
		Lines:  []string{"prog a\x00b c", "\x00prog", "prog d"},
		Format: core.FormatJSON,
		Native: true,
	})
	if res.status != StatusOK {
		t.Fatalf("unexpected status %d: %s", res.status, res.stderr)
	}

	var got []*format.Record
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("invalid json %q: %v", res.stdout, err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0].Native, []string{"prog", "a"}) || got[0].Mismatch {
		t.Fatalf("unexpected native comparison: %+v", got[0])
	}
	if got[1].Native != nil {
		t.Fatalf("command line empty before NUL should not be compared: %+v", got[1])
	}
	if !reflect.DeepEqual(got[2].Native, []string{"prog", "d"}) {
		t.Fatalf("later lines should still be compared: %+v", got[2])
	}
}
