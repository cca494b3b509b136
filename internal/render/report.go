package render

import (
	"fmt"
	"io"

	"github.com/f3rmion/wego/internal/forecast"
)

// Current renders the current-condition block as five printable lines.
func Current(r forecast.Report, opts Options) ([]string, error) {
	block, err := Condition(r.Current, opts)
	if err != nil {
		return nil, fmt.Errorf("rendering current condition: %w", err)
	}
	return block[:], nil
}

// Days renders up to opts.Days day tables, one slice of lines per day.
func Days(r forecast.Report, opts Options) ([][]string, error) {
	n := min(opts.Days, len(r.Days))
	tables := make([][]string, 0, max(n, 0))
	for _, d := range r.Days[:max(n, 0)] {
		lines, err := Day(d, opts)
		if err != nil {
			return nil, err
		}
		tables = append(tables, lines)
	}
	return tables, nil
}

// Title is the heading printed above a report.
func Title(r forecast.Report) string {
	return "Weather for: " + r.Location
}

// Report writes the title, the current conditions and the day tables to w.
// Nothing is written if any part fails to render.
func Report(w io.Writer, r forecast.Report, opts Options) error {
	current, err := Current(r, opts)
	if err != nil {
		return err
	}
	tables, err := Days(r, opts)
	if err != nil {
		return err
	}

	lines := []string{Title(r), "", ""}
	lines = append(lines, current...)
	for _, t := range tables {
		lines = append(lines, t...)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
