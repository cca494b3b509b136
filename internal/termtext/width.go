// Package termtext measures and fits strings that embed ANSI style directives.
//
// A style directive starts with ESC and ends with the first 'm' that follows
// it. Directives occupy no terminal columns. Every other rune is a glyph that
// occupies one or two columns depending on the active GlyphPolicy.
package termtext

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	directiveStart = '\x1b'
	directiveEnd   = 'm'
)

// GlyphPolicy selects how many columns a visible rune occupies.
type GlyphPolicy string

const (
	GlyphsCJK     GlyphPolicy = "cjk"     // CJK ideograph and fullwidth blocks are wide
	GlyphsUnicode GlyphPolicy = "unicode" // Unicode East Asian Width tables
	GlyphsNarrow  GlyphPolicy = "none"    // every glyph is one column
)

// ParseGlyphPolicy converts a configuration value to a GlyphPolicy.
func ParseGlyphPolicy(s string) (GlyphPolicy, error) {
	switch p := GlyphPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case GlyphsCJK, GlyphsUnicode, GlyphsNarrow:
		return p, nil
	case "":
		return GlyphsCJK, nil
	default:
		return "", fmt.Errorf("unknown glyph width policy %q (want cjk, unicode or none)", s)
	}
}

// wideRanges are the code point blocks rendered two columns wide under GlyphsCJK.
var wideRanges = [][2]rune{
	{0x2E80, 0x2EFF},   // CJK Radicals Supplement
	{0x3000, 0x303F},   // CJK Symbols and Punctuation
	{0x31C0, 0x31EF},   // CJK Strokes
	{0x3400, 0x4DB5},   // Extension A
	{0x4E00, 0x9FA5},   // Unified Ideographs
	{0x9FA6, 0x9FBB},   // Unified Ideographs (4.1)
	{0xF900, 0xFA2D},   // Compatibility Ideographs
	{0xFA30, 0xFA6A},   // Compatibility Ideographs (3.2)
	{0xFA70, 0xFAD9},   // Compatibility Ideographs (4.1)
	{0xFF00, 0xFFEF},   // Halfwidth and Fullwidth Forms
	{0x20000, 0x2A6D6}, // Extension B
	{0x2F800, 0x2FA1D}, // Compatibility Supplement
}

func isWide(r rune) bool {
	for _, rg := range wideRanges {
		if r < rg[0] {
			return false
		}
		if r <= rg[1] {
			return true
		}
	}
	return false
}

var unicodeCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Measurer computes display widths under one GlyphPolicy.
// The zero value measures with GlyphsCJK.
type Measurer struct {
	policy GlyphPolicy
}

// Default is the Measurer used by the package-level helpers.
var Default = Measurer{policy: GlyphsCJK}

// NewMeasurer returns a Measurer for the given policy.
func NewMeasurer(p GlyphPolicy) Measurer {
	return Measurer{policy: p}
}

// Policy reports the glyph policy in use.
func (m Measurer) Policy() GlyphPolicy {
	if m.policy == "" {
		return GlyphsCJK
	}
	return m.policy
}

// RuneWidth returns the columns occupied by a single visible rune.
func (m Measurer) RuneWidth(r rune) int {
	switch m.Policy() {
	case GlyphsNarrow:
		return 1
	case GlyphsUnicode:
		return unicodeCond.RuneWidth(r)
	default:
		if isWide(r) {
			return 2
		}
		return 1
	}
}

// Width returns the number of terminal columns s occupies. Runes inside a
// style directive are not counted; an unterminated directive swallows the
// rest of the string.
func (m Measurer) Width(s string) int {
	n := 0
	inside := false
	for _, r := range s {
		switch {
		case r == directiveStart && !inside:
			inside = true
		case r == directiveEnd && inside:
			inside = false
		case !inside:
			n += m.RuneWidth(r)
		}
	}
	return n
}

// Width measures s with the Default measurer.
func Width(s string) int {
	return Default.Width(s)
}
