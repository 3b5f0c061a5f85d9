package format

import (
	"strconv"
	"strings"

	"github.com/ryanfowler/argv/internal/core"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

type tableRow struct {
	source string
	index  string
	arg    string
	quoted bool
	native bool
}

// tableEncoder buffers all records and writes them as aligned columns once
// closed, truncating arguments that would overflow the terminal.
type tableEncoder struct {
	p     *core.Printer
	width int
	rows  []tableRow
}

func (e *tableEncoder) Encode(r *Record) error {
	source := r.Source + ":" + strconv.Itoa(r.Line)
	e.addRows(source, r.Args, false)
	if r.Mismatch {
		e.addRows(source, r.Native, true)
	}
	return nil
}

func (e *tableEncoder) addRows(source string, args []string, native bool) {
	for i, arg := range args {
		row := tableRow{index: strconv.Itoa(i), arg: arg, native: native}
		if i == 0 {
			row.source = source
		}
		if native {
			row.index = "n" + row.index
		}
		if arg == "" || strings.ContainsFunc(arg, isControl) {
			row.arg = strconv.Quote(arg)
			row.quoted = true
		}
		e.rows = append(e.rows, row)
	}
}

func (e *tableEncoder) Close() error {
	if len(e.rows) == 0 {
		return e.p.Flush()
	}

	sourceWidth := runewidth.StringWidth("SOURCE")
	indexWidth := runewidth.StringWidth("#")
	for _, row := range e.rows {
		sourceWidth = max(sourceWidth, runewidth.StringWidth(row.source))
		indexWidth = max(indexWidth, runewidth.StringWidth(row.index))
	}

	argWidth := 0
	if e.width > 0 {
		argWidth = e.width - sourceWidth - indexWidth - 4
		if argWidth < runewidth.StringWidth(ellipsis)+1 {
			argWidth = 0
		}
	}

	e.p.Set(core.Bold)
	e.p.WriteString(runewidth.FillRight("SOURCE", sourceWidth))
	e.p.WriteString("  ")
	e.p.WriteString(runewidth.FillLeft("#", indexWidth))
	e.p.WriteString("  ARG")
	e.p.Reset()
	e.p.WriteString("\n")

	for _, row := range e.rows {
		e.p.Set(core.Dim)
		e.p.WriteString(runewidth.FillRight(row.source, sourceWidth))
		e.p.WriteString("  ")
		e.p.WriteString(runewidth.FillLeft(row.index, indexWidth))
		e.p.Reset()
		e.p.WriteString("  ")

		arg := row.arg
		if argWidth > 0 {
			arg = runewidth.Truncate(arg, argWidth, ellipsis)
		}
		switch {
		case row.native:
			e.p.Set(core.Yellow)
		case row.quoted:
			e.p.Set(core.Cyan)
		}
		e.p.WriteString(arg)
		e.p.Reset()
		e.p.WriteString("\n")
	}
	return e.p.Flush()
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
