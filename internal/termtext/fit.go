package termtext

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnterminatedDirective means a style directive is never closed, so no
	// cut or padding point exists that keeps the output well formed.
	ErrUnterminatedDirective = errors.New("unterminated style directive")

	// ErrNegativeWidth is returned for a negative target width.
	ErrNegativeWidth = errors.New("negative target width")
)

// FormatError describes a string that could not be fitted to a cell.
type FormatError struct {
	Op     string // "pad" or "truncate"
	Input  string
	Target int
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("termtext: %s %q to %d columns: %v", e.Op, e.Input, e.Target, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// segment is either one complete directive or one glyph.
type segment struct {
	text      string
	directive bool
	width     int
}

// segments splits s into directives and glyphs. ok is false when s ends
// inside an open directive.
func (m Measurer) segments(s string) (segs []segment, ok bool) {
	start := -1
	for i, r := range s {
		if start >= 0 {
			if r == directiveEnd {
				segs = append(segs, segment{text: s[start : i+1], directive: true})
				start = -1
			}
			continue
		}
		if r == directiveStart {
			start = i
			continue
		}
		segs = append(segs, segment{text: string(r), width: m.RuneWidth(r)})
	}
	return segs, start < 0
}

// Fit pads or truncates s so that it occupies exactly target columns.
//
// Truncation walks whole glyphs and directives: glyphs are kept until the
// next one would overflow, and every directive is kept so that a reset
// following the cut still closes the color opened before it. A wide glyph
// straddling the boundary is replaced by padding.
func (m Measurer) Fit(s string, target int) (string, error) {
	if target < 0 {
		return "", &FormatError{Op: "fit", Input: s, Target: target, Err: ErrNegativeWidth}
	}

	w := m.Width(s)
	if w == target {
		return s, nil
	}

	segs, ok := m.segments(s)
	op := "truncate"
	if w < target {
		op = "pad"
	}
	if !ok {
		return "", &FormatError{Op: op, Input: s, Target: target, Err: ErrUnterminatedDirective}
	}

	if w < target {
		return s + strings.Repeat(" ", target-w), nil
	}

	var b strings.Builder
	b.Grow(len(s))
	cols := 0
	full := false
	lastKept := false
	for _, seg := range segs {
		switch {
		case seg.directive:
			b.WriteString(seg.text)
		case seg.width == 0:
			if lastKept {
				b.WriteString(seg.text)
			}
		case !full && cols+seg.width <= target:
			b.WriteString(seg.text)
			cols += seg.width
			lastKept = true
		default:
			full = true
			lastKept = false
		}
	}
	b.WriteString(strings.Repeat(" ", target-cols))
	return b.String(), nil
}

// Fit fits s with the Default measurer.
func Fit(s string, target int) (string, error) {
	return Default.Fit(s, target)
}

// Center pads s on the left so that it sits in the middle of width columns,
// then fits it to width.
func (m Measurer) Center(s string, width int) (string, error) {
	if w := m.Width(s); w < width {
		s = strings.Repeat(" ", (width-w)/2) + s
	}
	return m.Fit(s, width)
}

// Clip keeps at most n glyphs of s, counting glyphs rather than columns.
// Directives after the cut are kept so that trailing resets survive.
func Clip(s string, n int) string {
	var b strings.Builder
	count := 0
	inside := false
	for _, r := range s {
		switch {
		case r == directiveStart && !inside:
			inside = true
		case r == directiveEnd && inside:
			inside = false
		case !inside:
			if count == n {
				continue
			}
			count++
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Sanitize removes control characters, including the directive start marker,
// from text that did not originate in a trusted table.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
