package grieks

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unstressedVowels and stressedVowels are parallel tables: the i-th rune of
// one is the (un)stressed counterpart of the i-th rune of the other.
var (
	unstressedVowels = []rune("αεηιουωϊϋ")
	stressedVowels   = []rune("άέήίόύώΐΰ")
)

var (
	stressOf   = make(map[rune]rune, len(unstressedVowels))
	unstressOf = make(map[rune]rune, len(stressedVowels))
)

func init() {
	for i, u := range unstressedVowels {
		stressOf[u] = stressedVowels[i]
		unstressOf[stressedVowels[i]] = u
	}
}

// StressChar maps an unstressed vowel to its stressed counterpart.
// Any other rune is returned unchanged.
func StressChar(r rune) rune {
	if s, ok := stressOf[r]; ok {
		return s
	}
	return r
}

// UnstressChar maps a stressed vowel to its unstressed counterpart.
// Any other rune is returned unchanged.
func UnstressChar(r rune) rune {
	if u, ok := unstressOf[r]; ok {
		return u
	}
	return r
}

// IsStressed reports whether r is one of the stressed vowels.
func IsStressed(r rune) bool {
	_, ok := unstressOf[r]
	return ok
}

// IsVowel reports whether r is a Greek vowel, stressed or not.
func IsVowel(r rune) bool {
	if _, ok := stressOf[r]; ok {
		return true
	}
	return IsStressed(r)
}

// IsGreekLetter reports whether r is a letter of the Greek script.
func IsGreekLetter(r rune) bool {
	return unicode.Is(unicode.Greek, r) && unicode.IsLetter(r)
}

// isConsonant reports whether r is a Greek letter that is not a vowel.
func isConsonant(r rune) bool {
	return IsGreekLetter(r) && !IsVowel(r)
}

// StressPosition returns the rune index of the first stressed vowel in s,
// or -1 when s carries no stress mark.
func StressPosition(s string) int {
	for i, r := range []rune(s) {
		if IsStressed(r) {
			return i
		}
	}
	return -1
}

// Unstress replaces the first stressed vowel of s with its unstressed form.
// Words carry a single stress mark, so at most one rune is replaced.
func Unstress(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		if IsStressed(r) {
			rs[i] = UnstressChar(r)
			return string(rs)
		}
	}
	return s
}

// ReplaceAt substitutes the rune at index i of s with r.
// Out-of-range indexes leave s unchanged.
func ReplaceAt(s string, i int, r rune) string {
	rs := []rune(s)
	if i < 0 || i >= len(rs) {
		return s
	}
	rs[i] = r
	return string(rs)
}

// removeAt drops the rune at index i of s; out-of-range indexes are a no-op.
func removeAt(s string, i int) string {
	rs := []rune(s)
	if i < 0 || i >= len(rs) {
		return s
	}
	return string(append(rs[:i], rs[i+1:]...))
}

// runeAt returns the rune at index i of s, or 0 when out of range.
func runeAt(s string, i int) rune {
	rs := []rune(s)
	if i < 0 || i >= len(rs) {
		return 0
	}
	return rs[i]
}

// sigmaReplacer maps final sigma onto the standard form.
var sigmaReplacer = strings.NewReplacer("ς", "σ")

// Normalize strips every diacritic (tonos, dialytika and any other
// combining mark) and maps final sigma to σ. The result is meant for
// matching only, never for display.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return sigmaReplacer.Replace(out)
}

// MatchGuess reports whether a typed answer matches the expected text,
// ignoring case, stress marks and sigma form.
func MatchGuess(guess, answer string) bool {
	lower := cases.Lower(language.Greek)
	g := Normalize(lower.String(strings.TrimSpace(guess)))
	a := Normalize(lower.String(strings.TrimSpace(answer)))
	return g == a
}
