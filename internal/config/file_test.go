package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ryanfowler/argv/internal/core"
)

func TestParseFile(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		expFile *File
		expErr  string
	}{
		{
			name: "successful parse",
			config: `
				# comment
				format = json
				color = off
				keep-empty = true
				verbosity = 1`,
			expFile: &File{
				Path: "test/config",
				Global: &Config{
					isFile:    true,
					Color:     core.ColorOff,
					Format:    core.FormatJSON,
					KeepEmpty: core.PointerTo(true),
					Verbosity: core.PointerTo(1),
				},
			},
		},
		{
			name:   "invalid key",
			config: "format = json\ntimeout = 10",
			expErr: "config file 'test/config': line 2: invalid option: 'timeout'",
		},
		{
			name:   "invalid value",
			config: "format = xml",
			expErr: "config file 'test/config': line 1: invalid value 'xml' for option 'format': must be one of [text, table, json, ndjson, yaml, msgpack, protobuf]",
		},
		{
			name:   "missing equals",
			config: "format json",
			expErr: "config file 'test/config': line 1: invalid key/value pair 'format json'",
		},
		{
			name:   "sections",
			config: "\r\n[json]\r\nformat = json",
			expErr: "config file 'test/config': line 2: sections are not supported: '[json]'",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := parseFile("test/config", test.config)
			if test.expErr != "" {
				if err == nil {
					t.Fatalf("expected error %q, got nil", test.expErr)
				}
				if err.Error() != test.expErr {
					t.Fatalf("error = %q, want %q", err.Error(), test.expErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(f, test.expFile) {
				t.Fatalf("file = %+v, want %+v", f.Global, test.expFile.Global)
			}
		})
	}
}

func TestGetFile(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config")
		if err := os.WriteFile(path, []byte("format = yaml\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		f, err := GetFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f == nil || f.Global.Format != core.FormatYAML {
			t.Fatalf("unexpected file: %+v", f)
		}
	})

	t.Run("explicit path does not exist", func(t *testing.T) {
		_, err := GetFile(filepath.Join(t.TempDir(), "missing"))
		if err == nil || !strings.Contains(err.Error(), "does not exist") {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
