// Package natsort orders strings the way a person reads them: runs of digits
// compare by numeric value, everything else compares byte-wise.
package natsort

import (
	"regexp"
	"sort"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// Token is one segment of a sort key. Numeric tokens keep their digits
// without leading zeros so arbitrarily long runs never overflow.
type Token struct {
	Text    string
	Numeric bool
}

// Key splits s into alternating text and digit tokens. The first token is
// always text (possibly empty), so keys of any two strings line up by kind.
func Key(s string) []Token {
	var key []Token
	last := 0
	for _, loc := range digitRun.FindAllStringIndex(s, -1) {
		key = append(key, Token{Text: s[last:loc[0]]})
		digits := strings.TrimLeft(s[loc[0]:loc[1]], "0")
		key = append(key, Token{Text: digits, Numeric: true})
		last = loc[1]
	}
	return append(key, Token{Text: s[last:]})
}

func compareTokens(a, b Token) int {
	if a.Numeric && b.Numeric {
		if len(a.Text) != len(b.Text) {
			if len(a.Text) < len(b.Text) {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a.Text, b.Text)
}

// Compare returns -1, 0 or 1. Names whose keys are equal ("img01" and
// "img1") fall back to plain string order so the result is total.
func Compare(a, b string) int {
	ka, kb := Key(a), Key(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if c := compareTokens(ka[i], kb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(ka) < len(kb):
		return -1
	case len(ka) > len(kb):
		return 1
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Strings sorts names in place in natural order.
func Strings(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return Less(names[i], names[j])
	})
}
