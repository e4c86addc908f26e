// Package grieks generates Modern Greek verb conjugations and speech text
// for a vocabulary trainer.
//
// A verb is described by up to four reference lines, one headword per
// tense: present, future, simple past (aorist) and imperfect:
//
//	γράφω
//	γράψω
//	έγραψα
//	έγραφα
//
// From these lines the package derives six-person tables for each tense
// and the imperative, shifting the stress mark between singular and plural
// forms the way the hand-curated rule tables prescribe. When no rule
// applies the result carries a diagnostic string instead of a table;
// diagnostics are meant to be shown to the learner as they are.
//
// Everything in this package is a pure function of its input and safe for
// concurrent use.
package grieks

// Verb holds the headwords of one verb's reference lines.
type Verb struct {
	text      string
	headwords [4]string
}

// ParseVerb extracts the headwords of text. text is newline-separated;
// lines past the fourth are ignored.
func ParseVerb(text string) *Verb {
	return &Verb{text: text, headwords: Headwords(text)}
}

// Text returns the raw text the verb was parsed from.
func (v *Verb) Text() string {
	return v.text
}

// Headword returns the headword of tense t, or "" when the line is absent.
func (v *Verb) Headword(t Tense) string {
	if t < 0 || int(t) >= tenseCount {
		return ""
	}
	return v.headwords[t]
}

// Has reports whether the reference line of tense t is present.
func (v *Verb) Has(t Tense) bool {
	if t == Present {
		return v.headwords[Present] != ""
	}
	return hasLine(v.text, t)
}

// Present builds the present-tense table.
func (v *Verb) Present() Conjugation {
	return conjugatePresent(v.Headword(Present))
}

// Future builds the future-tense table.
func (v *Verb) Future() Conjugation {
	return conjugateFuture(v.Headword(Future))
}

// Aorist builds the simple-past table.
func (v *Verb) Aorist() Conjugation {
	return conjugateAorist(v)
}

// Imperfect builds the imperfect table.
func (v *Verb) Imperfect() Conjugation {
	return conjugateImperfect(v)
}

// Conjugate builds the table of tense t.
func (v *Verb) Conjugate(t Tense) Conjugation {
	switch t {
	case Present:
		return v.Present()
	case Future:
		return v.Future()
	case Aorist:
		return v.Aorist()
	case Imperfect:
		return v.Imperfect()
	}
	return diagnostic(t, msgUnrecognized, t)
}

// Tables builds the table of every tense whose line is present, in line
// order. The present tense is always included so that a missing first
// line is reported.
func (v *Verb) Tables() []Conjugation {
	out := []Conjugation{v.Present()}
	for _, t := range Tenses[1:] {
		if v.Has(t) {
			out = append(out, v.Conjugate(t))
		}
	}
	return out
}

// Imperative builds the imperative mood.
func (v *Verb) Imperative() Imperative {
	return buildImperative(v)
}
