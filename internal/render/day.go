package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/wego/internal/forecast"
	"github.com/f3rmion/wego/internal/termtext"
)

const (
	columnSeparator = "│"
	dateLayout      = "Mon 02. Jan"
)

// periods name the four table columns.
var periods = [4]string{"Morning", "Noon", "Evening", "Night"}

// excludedHours are the hourly labels left out of a day table. The remaining
// three-hourly samples (900, 1200, 1800, 2100) fill the four period columns.
var excludedHours = map[string]struct{}{
	"0": {}, "100": {}, "200": {}, "300": {}, "400": {}, "500": {},
	"600": {}, "700": {}, "1400": {}, "1500": {}, "1600": {}, "2300": {},
}

// Shown reports whether an hourly sample with the given time label appears
// in a day table.
func Shown(label string) bool {
	_, excluded := excludedHours[label]
	return !excluded
}

// DayColumns renders the five data lines of a day table. Each line starts
// with a separator and gains one cell plus a separator per shown sample.
func DayColumns(d forecast.Day, opts Options) ([5]string, error) {
	var lines [5]strings.Builder
	for i := range lines {
		lines[i].WriteString(columnSeparator)
	}

	for _, h := range d.Hourly {
		if !Shown(h.Time) {
			continue
		}
		block, err := Condition(h, opts)
		if err != nil {
			return [5]string{}, fmt.Errorf("rendering %s %s: %w", d.Date.Format("2006-01-02"), h.Time, err)
		}
		for i, cell := range block {
			lines[i].WriteString(cell)
			lines[i].WriteString(columnSeparator)
		}
	}

	var out [5]string
	for i := range lines {
		out[i] = lines[i].String()
	}
	return out, nil
}

// Day renders a complete day table: four header lines, five data lines and
// a closing rule.
func Day(d forecast.Day, opts Options) ([]string, error) {
	header, err := dayHeader(d, opts)
	if err != nil {
		return nil, err
	}
	columns, err := DayColumns(d, opts)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(header)+len(columns)+1)
	lines = append(lines, header...)
	lines = append(lines, columns[:]...)
	lines = append(lines, rule(opts.CellWidth, "└", "┴", "┘"))
	return lines, nil
}

// dayHeader builds the date box that hangs over the middle separator, the
// period names and the rule under them.
func dayHeader(d forecast.Day, opts Options) ([]string, error) {
	w := opts.CellWidth
	total := 4*w + 5
	middle := 2*w + 2

	date := "┤ " + d.Date.Format(dateLayout) + " ├"
	box := utf8.RuneCountInString(date)
	left := middle - box/2
	right := total - left - box
	half := (box - 3) / 2

	top := strings.Repeat(" ", left) + "┌" + strings.Repeat("─", box-2) + "┐" + strings.Repeat(" ", right)
	dated := overlay(rule(w, "┌", "┬", "┐"), left, date)

	names := make([]string, len(periods))
	for i, p := range periods {
		cell, err := periodName(p, 1+i*(w+1), w, left, left+box, opts.Measurer)
		if err != nil {
			return nil, fmt.Errorf("rendering period %s: %w", p, err)
		}
		names[i] = cell
	}
	named := columnSeparator + strings.Join(names, columnSeparator) + columnSeparator
	named = overlay(named, left, "└"+strings.Repeat("─", half)+"┬"+strings.Repeat("─", box-3-half)+"┘")

	return []string{top, dated, named, rule(w, "├", "┼", "┤")}, nil
}

// periodName centers p in the w-column cell starting at column start. When
// the centered name would run under the date box spanning [boxFrom, boxTo),
// it is centered in the part of the cell the box leaves free instead.
func periodName(p string, start, w, boxFrom, boxTo int, m termtext.Measurer) (string, error) {
	nw := m.Width(p)
	from := start + (w-nw)/2
	if from+nw <= boxFrom || from >= boxTo {
		return m.Center(p, w)
	}

	freeFrom, freeTo := start, start+w
	switch {
	case boxFrom > start:
		freeTo = min(freeTo, boxFrom)
	case boxTo < start+w:
		freeFrom = max(freeFrom, boxTo)
	}
	if freeTo-freeFrom < nw {
		return m.Center(p, w)
	}
	pad := freeFrom - start + (freeTo-freeFrom-nw)/2
	return m.Fit(strings.Repeat(" ", pad)+p, w)
}

// rule draws a horizontal border across four columns.
func rule(w int, left, mid, right string) string {
	dashes := strings.Repeat("─", w)
	return left + strings.Join([]string{dashes, dashes, dashes, dashes}, mid) + right
}

// overlay replaces the runes of base starting at rune index at with s.
// base and s must consist of single-column runes.
func overlay(base string, at int, s string) string {
	r := []rune(base)
	if at < 0 || at >= len(r) {
		return base
	}
	copy(r[at:], []rune(s))
	return string(r)
}
