// Package textmatch does keyword matching that ignores case and Vietnamese
// diacritics, so "lua" finds "Lúa" and "DONG" finds "đồng".
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var dStroke = strings.NewReplacer("đ", "d", "Đ", "D")

// Fold strips combining marks and case-folds s.
func Fold(s string) string {
	// transformers carry state; build a fresh chain per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(dStroke.Replace(stripped))
}

// Contains reports whether keyword occurs in any of fields after folding.
// An empty keyword matches everything.
func Contains(keyword string, fields ...string) bool {
	needle := Fold(strings.TrimSpace(keyword))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), needle) {
			return true
		}
	}
	return false
}
