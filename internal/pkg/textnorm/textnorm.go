// Package textnorm implements the diacritic-insensitive text matching used
// by keyword filtering and highlight rendering. Matching decomposes text to
// NFD, drops combining marks, and lowercases before substring comparison, so
// "ação" and "acao" are equivalent.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize strips diacritics and lowercases the input
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Contains reports whether text contains term under normalization.
// An empty term always matches.
func Contains(text, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(Normalize(text), Normalize(term))
}

// ContainsAny reports whether text contains any of the terms under
// normalization. Empty terms are skipped.
func ContainsAny(text string, terms []string) bool {
	for _, term := range terms {
		if term == "" {
			continue
		}
		if Contains(text, term) {
			return true
		}
	}
	return false
}

// Range is an inclusive [Start,End] span of rune indices in the original text
type Range struct {
	Start int
	End   int
}

// MatchRanges returns the spans of text matching term under normalization,
// expressed as rune indices into the original text. Normalizing a rune can
// expand it to several characters, so matches are mapped back through a
// per-rune index table.
func MatchRanges(text, term string) []Range {
	normalizedTerm := strings.TrimSpace(Normalize(term))
	if normalizedTerm == "" {
		return nil
	}

	var normalized []rune
	var indexMap []int
	for i, r := range []rune(text) {
		expanded := Normalize(string(r))
		for _, nr := range expanded {
			normalized = append(normalized, nr)
			indexMap = append(indexMap, i)
		}
	}

	termRunes := []rune(normalizedTerm)
	var ranges []Range
	for from := 0; from+len(termRunes) <= len(normalized); {
		hit := indexRunes(normalized, termRunes, from)
		if hit == -1 {
			break
		}
		ranges = append(ranges, Range{
			Start: indexMap[hit],
			End:   indexMap[hit+len(termRunes)-1],
		})
		from = hit + len(termRunes)
	}
	return ranges
}

func indexRunes(haystack, needle []rune, from int) int {
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// Mark wraps every normalized match of term in text with open/close markers.
// Used by text renderers to highlight the active keyword.
func Mark(text, term, open, close string) string {
	ranges := MatchRanges(text, term)
	if len(ranges) == 0 {
		return text
	}

	textRunes := []rune(text)
	var b strings.Builder
	last := 0
	for _, r := range ranges {
		b.WriteString(string(textRunes[last:r.Start]))
		b.WriteString(open)
		b.WriteString(string(textRunes[r.Start : r.End+1]))
		b.WriteString(close)
		last = r.End + 1
	}
	b.WriteString(string(textRunes[last:]))
	return b.String()
}
