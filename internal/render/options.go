// Package render lays out forecast records as fixed-width terminal tables.
package render

import (
	"github.com/f3rmion/wego/internal/forecast"
	"github.com/f3rmion/wego/internal/termtext"
)

// Defaults for Options.
const (
	DefaultCellWidth = 30
	DefaultDays      = 3
)

// Options configures rendering. It is built once at startup and passed by
// value; renderers never modify it.
type Options struct {
	CellWidth int               // terminal columns per data column
	Days      int               // number of day tables to print
	Language  forecast.Language // which description to show
	Romanize  bool              // show alternate Chinese descriptions as pinyin
	Measurer  termtext.Measurer // glyph width policy
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		CellWidth: DefaultCellWidth,
		Days:      DefaultDays,
		Language:  forecast.LanguageDefault,
		Measurer:  termtext.Default,
	}
}
