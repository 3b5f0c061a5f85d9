package cli

import (
	"fmt"
	"strings"

	"github.com/ryanfowler/argv/internal/core"
)

type unknownFlagError string

func (err unknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag '%s'", string(err))
}

func (err unknownFlagError) PrintTo(p *core.Printer) {
	p.WriteString("unknown flag '")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("'")
}

type unsupportedFlagError struct {
	flag string
	os   []string
}

func (err unsupportedFlagError) Error() string {
	return fmt.Sprintf("flag '%s' is only supported on %s", err.flag, strings.Join(err.os, ", "))
}

func (err unsupportedFlagError) PrintTo(p *core.Printer) {
	p.WriteString("flag '")
	p.Set(core.Bold)
	p.WriteString(err.flag)
	p.Reset()
	p.WriteString("' is only supported on ")
	p.WriteString(strings.Join(err.os, ", "))
}

type exclusiveFlagsError struct {
	first, second string
}

func newExclusiveFlagsError(first, second string) exclusiveFlagsError {
	return exclusiveFlagsError{first: first, second: second}
}

func (err exclusiveFlagsError) Error() string {
	return fmt.Sprintf("flags '--%s' and '--%s' cannot be used together", err.first, err.second)
}

func (err exclusiveFlagsError) PrintTo(p *core.Printer) {
	p.WriteString("flags '")
	p.Set(core.Bold)
	p.WriteString("--")
	p.WriteString(err.first)
	p.Reset()
	p.WriteString("' and '")
	p.Set(core.Bold)
	p.WriteString("--")
	p.WriteString(err.second)
	p.Reset()
	p.WriteString("' cannot be used together")
}

type flagNoArgsError string

func (err flagNoArgsError) Error() string {
	return fmt.Sprintf("flag '%s' does not take any arguments", string(err))
}

func (err flagNoArgsError) PrintTo(p *core.Printer) {
	p.WriteString("flag '")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("' does not take any arguments")
}

type argRequiredError string

func (err argRequiredError) Error() string {
	return fmt.Sprintf("argument required for flag '%s'", string(err))
}

func (err argRequiredError) PrintTo(p *core.Printer) {
	p.WriteString("argument required for flag '")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("'")
}

// positionalExclusiveError is returned when a flag that provides its own
// command line is combined with positional command line arguments.
type positionalExclusiveError string

func (err positionalExclusiveError) Error() string {
	return fmt.Sprintf("'--%s' and a command line argument cannot be used together", string(err))
}

func (err positionalExclusiveError) PrintTo(p *core.Printer) {
	p.WriteString("'")
	p.Set(core.Bold)
	p.WriteString("--")
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("' and a ")
	p.Set(core.Bold)
	p.WriteString("command line")
	p.Reset()
	p.WriteString(" argument cannot be used together")
}
