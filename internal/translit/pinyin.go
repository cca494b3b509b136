// Package translit romanizes Chinese weather descriptions.
package translit

import (
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
)

var args = func() gopinyin.Args {
	a := gopinyin.NewArgs()
	a.Style = gopinyin.Tone // 多云 -> duō yún
	return a
}()

// Pinyin replaces each Han character in s with its tone-marked pinyin
// syllable. Syllables are separated by spaces; other runs are kept as is.
func Pinyin(s string) string {
	var b strings.Builder
	prevSyllable := false
	for _, r := range s {
		if !unicode.Is(unicode.Han, r) {
			if prevSyllable && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
			prevSyllable = false
			continue
		}

		readings := gopinyin.SinglePinyin(r, args)
		if len(readings) == 0 {
			b.WriteRune(r)
			prevSyllable = false
			continue
		}
		if b.Len() > 0 && !endsWithSpace(b.String()) {
			b.WriteByte(' ')
		}
		b.WriteString(readings[0])
		prevSyllable = true
	}
	return b.String()
}

func endsWithSpace(s string) bool {
	return strings.HasSuffix(s, " ")
}
