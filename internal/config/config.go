package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ryanfowler/argv/internal/core"

	"golang.org/x/text/encoding/ianaindex"
)

// Config represents the configuration options for argv.
type Config struct {
	isFile bool

	Color     core.Color
	Encoding  string
	Format    core.Format
	KeepEmpty *bool
	Silent    *bool
	Verbosity *int
}

// Merge merges the two Configs together, with "c" taking priority.
func (c *Config) Merge(c2 *Config) {
	if c2 == nil {
		return
	}
	if c.Color == core.ColorUnknown {
		c.Color = c2.Color
	}
	if c.Encoding == "" {
		c.Encoding = c2.Encoding
	}
	if c.Format == core.FormatUnknown {
		c.Format = c2.Format
	}
	if c.KeepEmpty == nil {
		c.KeepEmpty = c2.KeepEmpty
	}
	if c.Silent == nil {
		c.Silent = c2.Silent
	}
	if c.Verbosity == nil {
		c.Verbosity = c2.Verbosity
	}
}

// Set sets the provided key and value pair, returning any error encountered.
func (c *Config) Set(key, val string) error {
	var err error
	switch key {
	case "color", "colour":
		err = c.ParseColor(val)
	case "encoding":
		err = c.ParseEncoding(val)
	case "format":
		err = c.ParseFormat(val)
	case "keep-empty":
		err = c.ParseKeepEmpty(val)
	case "silent":
		err = c.ParseSilent(val)
	case "verbosity":
		err = c.ParseVerbosity(val)
	default:
		err = invalidOptionError(key)
	}
	return err
}

func (c *Config) ParseColor(value string) error {
	switch value {
	case "auto":
		c.Color = core.ColorAuto
	case "off":
		c.Color = core.ColorOff
	case "on":
		c.Color = core.ColorOn
	default:
		const usage = "must be one of [auto, off, on]"
		return core.NewValueError("color", value, usage, c.isFile)
	}
	return nil
}

func (c *Config) ParseEncoding(value string) error {
	switch strings.ToLower(value) {
	case "auto", "utf-8", "utf8", "utf-16le", "utf-16be":
		c.Encoding = strings.ToLower(value)
		return nil
	}

	enc, err := ianaindex.IANA.Encoding(value)
	if err != nil || enc == nil {
		return core.NewValueError("encoding", value, "must be a supported IANA charset name", c.isFile)
	}
	c.Encoding = value
	return nil
}

func (c *Config) ParseFormat(value string) error {
	f, ok := core.ParseFormat(value)
	if !ok {
		names := make([]string, 0, len(core.FormatValues))
		for _, kv := range core.FormatValues {
			names = append(names, kv.Key)
		}
		usage := fmt.Sprintf("must be one of [%s]", strings.Join(names, ", "))
		return core.NewValueError("format", value, usage, c.isFile)
	}
	c.Format = f
	return nil
}

func (c *Config) ParseKeepEmpty(value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return core.NewValueError("keep-empty", value, "must be a boolean", c.isFile)
	}
	c.KeepEmpty = &v
	return nil
}

func (c *Config) ParseSilent(value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return core.NewValueError("silent", value, "must be a boolean", c.isFile)
	}
	c.Silent = &v
	return nil
}

func (c *Config) ParseVerbosity(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil || v < 0 {
		return core.NewValueError("verbosity", value, "must be a valid integer", c.isFile)
	}
	c.Verbosity = &v
	return nil
}

type invalidOptionError string

func (err invalidOptionError) Error() string {
	return fmt.Sprintf("invalid option: '%s'", string(err))
}

func (err invalidOptionError) PrintTo(p *core.Printer) {
	p.WriteString("invalid option: '")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("'")
}
