// Package view converts engine results into the JSON and YAML documents
// returned by the HTTP API and printed by the CLI.
package view

import (
	"github.com/woordkaart/grieks"
)

// Conjugation is the serialized form of a grieks.Conjugation.
type Conjugation struct {
	Tense      string   `json:"tense" yaml:"tense"`
	Paradigm   string   `json:"paradigm,omitempty" yaml:"paradigm,omitempty"`
	Forms      []string `json:"forms,omitempty" yaml:"forms,omitempty"`
	Table      string   `json:"table,omitempty" yaml:"table,omitempty"`
	Diagnostic string   `json:"diagnostic,omitempty" yaml:"diagnostic,omitempty"`
}

// Verb is the serialized result of conjugating one verb text.
type Verb struct {
	Headwords    []string      `json:"headwords" yaml:"headwords"` // indexed by grieks.Tense
	Conjugations []Conjugation `json:"conjugations" yaml:"conjugations"`
	Imperative   *Imperative   `json:"imperative,omitempty" yaml:"imperative,omitempty"`
}

// Imperative is the serialized form of a grieks.Imperative.
type Imperative struct {
	Singular   string `json:"singular,omitempty" yaml:"singular,omitempty"`
	Plural     string `json:"plural,omitempty" yaml:"plural,omitempty"`
	Text       string `json:"text" yaml:"text"`
	Diagnostic string `json:"diagnostic,omitempty" yaml:"diagnostic,omitempty"`
}

// FromConjugation converts c.
func FromConjugation(c grieks.Conjugation) Conjugation {
	out := Conjugation{Tense: c.Tense.String(), Diagnostic: c.Diagnostic}
	if c.OK() {
		out.Paradigm = c.Paradigm
		out.Forms = append([]string(nil), c.Forms[:]...)
		out.Table = c.Forms.String()
	}
	return out
}

// FromImperative converts im.
func FromImperative(im grieks.Imperative) Imperative {
	return Imperative{
		Singular:   im.Singular,
		Plural:     im.Plural,
		Text:       im.String(),
		Diagnostic: im.Diagnostic,
	}
}

// FromVerb converts the given conjugations of v. Headwords has one slot
// per tense in line order, "" for an absent line. A nil imperative is
// omitted from the document.
func FromVerb(v *grieks.Verb, cs []grieks.Conjugation, im *grieks.Imperative) Verb {
	out := Verb{Conjugations: make([]Conjugation, 0, len(cs))}
	for _, t := range grieks.Tenses {
		out.Headwords = append(out.Headwords, v.Headword(t))
	}
	for _, c := range cs {
		out.Conjugations = append(out.Conjugations, FromConjugation(c))
	}
	if im != nil {
		vi := FromImperative(*im)
		out.Imperative = &vi
	}
	return out
}
