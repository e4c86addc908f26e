package grieks

import (
	"regexp"
	"strings"
)

// WordType is the word-class tag the word store attaches to an entry.
type WordType string

const (
	Adjective WordType = "bijvoeglijk nw"
	Pronoun   WordType = "voornaamwoord"
	Numeral   WordType = "telwoord"
	Noun      WordType = "zelfstandig nw"
	Article   WordType = "lidwoord"
)

var (
	// reAdjective matches "καλός, -ή, -ό": stem, masculine ending,
	// feminine ending, neuter ending.
	reAdjective = regexp.MustCompile(`^\s*(\p{Greek}+?)(ούς|ους|ός|ος|ύς|υς|ής|ης|άς|ας|ών|ων)\s*,\s*-\s*(\p{Greek}+)\s*,\s*-\s*(\p{Greek}+)`)
	// reNoun matches "σπίτι, το": the noun, then its article.
	reNoun = regexp.MustCompile(`^\s*(\p{Greek}+(?:\s+\p{Greek}+)*)\s*,\s*(\p{Greek}+(?:/\p{Greek}+)?)`)
	// reBrackets matches parenthesized or bracketed annotations.
	reBrackets = regexp.MustCompile(`\s*(\([^)]*\)|\[[^\]]*\])`)
)

// defaultReplacer forces pauses where the display text uses dashes and
// equals signs.
var defaultReplacer = strings.NewReplacer(" - ", ", ", "=", ",", "\n", ", ")

// SpeechText rewrites display text into text for speech synthesis.
// Adjective-like entries are expanded to their three genders, nouns are
// read article first with a pause where the two vowels would merge, and
// annotations in brackets are dropped.
func SpeechText(text string, wt WordType) string {
	switch wt {
	case Adjective, Pronoun, Numeral:
		return joinSegments(text, adjectiveSegment)
	case Noun:
		return joinSegments(text, nounSegment)
	case Article:
		return strings.ReplaceAll(text, " ", ",")
	}
	return strings.TrimSpace(defaultReplacer.Replace(stripBrackets(text)))
}

// joinSegments rewrites every line of text with fn and concatenates the
// results, dropping the final trailing comma.
func joinSegments(text string, fn func(string) string) string {
	var segments []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		segments = append(segments, fn(line))
	}
	return strings.TrimSuffix(strings.Join(segments, " "), ",")
}

func adjectiveSegment(line string) string {
	m := reAdjective.FindStringSubmatch(line)
	if m == nil {
		return stripBrackets(line) + ","
	}
	stem := m[1]
	return stem + m[2] + ", " + stem + m[3] + ", " + stem + m[4] + ","
}

func nounSegment(line string) string {
	m := reNoun.FindStringSubmatch(line)
	if m == nil {
		return line + ","
	}
	noun, article := m[1], m[2]
	sep := " "
	if hiatus(article, noun) {
		sep = ", "
	}
	noun = strings.TrimPrefix(noun, article+" ")
	return article + sep + noun + ","
}

// iotaSounds are the spellings of the vowel /i/ at the start of a word.
var iotaSounds = []string{"ι", "η", "υ", "ει", "οι", "υι"}

// hiatus reports whether article and noun, read together, would merge
// their vowels: ο/το before ο, η/οι before an /i/ sound. The noun is
// checked as written on the line.
func hiatus(article, noun string) bool {
	a := Unstress(article)
	n := Unstress(strings.TrimSpace(noun))
	switch a {
	case "ο", "το":
		return strings.HasPrefix(n, "ο")
	case "η", "οι":
		for _, s := range iotaSounds {
			if strings.HasPrefix(n, s) {
				return true
			}
		}
	}
	return false
}

func stripBrackets(s string) string {
	return strings.TrimSpace(reBrackets.ReplaceAllString(s, ""))
}
