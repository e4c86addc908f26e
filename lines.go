package grieks

import "strings"

// Tense identifies one reference line of a verb's conjugation text.
// The numeric value is the line index.
type Tense int

const (
	Present Tense = iota
	Future
	Aorist
	Imperfect
)

// tenseCount is the number of reference lines a VerbText may carry.
const tenseCount = 4

// Tenses lists every tense in line order.
var Tenses = []Tense{Present, Future, Aorist, Imperfect}

func (t Tense) String() string {
	switch t {
	case Present:
		return "enestotas"
	case Future:
		return "mellontas"
	case Aorist:
		return "aoristos"
	case Imperfect:
		return "paratatikos"
	}
	return "unknown"
}

// ParseTense accepts the English or the Greek-transliterated tense name.
func ParseTense(s string) (Tense, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present", "enestotas":
		return Present, true
	case "future", "mellontas":
		return Future, true
	case "aorist", "past", "aoristos":
		return Aorist, true
	case "imperfect", "paratatikos":
		return Imperfect, true
	}
	return 0, false
}

// splitLines returns the raw reference lines of text, at most four.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > tenseCount {
		lines = lines[:tenseCount]
	}
	return lines
}

// leadingGreek returns the maximal run of Greek letters at the start of line.
func leadingGreek(line string) string {
	for i, r := range line {
		if !IsGreekLetter(r) {
			return line[:i]
		}
	}
	return line
}

// containsGreek reports whether line holds at least one Greek letter.
func containsGreek(line string) bool {
	for _, r := range line {
		if IsGreekLetter(r) {
			return true
		}
	}
	return false
}

// Headwords extracts the headword of every reference line of text.
// Absent lines, and lines that start with non-Greek text, yield "".
func Headwords(text string) [4]string {
	var out [4]string
	for i, line := range splitLines(text) {
		out[i] = leadingGreek(line)
	}
	return out
}

// hasLine reports whether text has a line for t that contains Greek.
func hasLine(text string, t Tense) bool {
	lines := splitLines(text)
	if int(t) >= len(lines) {
		return false
	}
	return containsGreek(lines[t])
}

// HasFuture reports whether text carries a future-tense line.
func HasFuture(text string) bool { return hasLine(text, Future) }

// HasAorist reports whether text carries a simple-past line.
func HasAorist(text string) bool { return hasLine(text, Aorist) }

// HasImperfect reports whether text carries an imperfect line.
func HasImperfect(text string) bool { return hasLine(text, Imperfect) }
