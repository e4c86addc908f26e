package grieks

import (
	"fmt"
	"strings"
)

// Person indexes a Table; the order is fixed.
const (
	FirstSingular = iota
	SecondSingular
	ThirdSingular
	FirstPlural
	SecondPlural
	ThirdPlural
)

// Table holds one form per grammatical person, 1sg through 3pl.
type Table [6]string

// String joins the six forms with ", ".
func (t Table) String() string {
	return strings.Join(t[:], ", ")
}

// Diagnostics returned as data when no rule applies.
const (
	MsgPresentMissing   = "present tense missing on line 1"
	MsgFutureMissing    = "future tense missing on line 2"
	MsgAoristMissing    = "aorist missing on line 3"
	MsgImperfectMissing = "imperfect missing on line 4"
	msgUnrecognized     = "unrecognized verb form: %s"
	msgNoAoristStem     = "no conjugation found for aorist stem %s"
	msgNoImperfectStem  = "no conjugation found for imperfect stem %s"
	msgNoPassiveRule    = "no imperative rule for passive stem %s"
)

// Conjugation is the outcome of generating one tense.
// Exactly one of Forms and Diagnostic is meaningful.
type Conjugation struct {
	// Tense is the generated tense.
	Tense Tense
	// Paradigm names the rule that produced Forms, e.g. "A1" or "irregular".
	Paradigm string
	// Forms is the six-person table.
	Forms Table
	// Diagnostic describes why no table could be built.
	Diagnostic string
}

// OK reports whether a table was generated.
func (c Conjugation) OK() bool {
	return c.Diagnostic == ""
}

// String renders the table, or the diagnostic when there is none.
func (c Conjugation) String() string {
	if !c.OK() {
		return c.Diagnostic
	}
	return c.Forms.String()
}

func diagnostic(t Tense, format string, args ...any) Conjugation {
	return Conjugation{Tense: t, Diagnostic: fmt.Sprintf(format, args...)}
}

// Imperative holds the imperative mood of a verb.
type Imperative struct {
	Singular   string
	Plural     string
	Diagnostic string
}

// OK reports whether an imperative was built.
func (im Imperative) OK() bool {
	return im.Diagnostic == ""
}

// String renders "singular - plural". Exceptions that only have one of
// the two forms render that form alone.
func (im Imperative) String() string {
	switch {
	case !im.OK():
		return im.Diagnostic
	case im.Plural == "":
		return im.Singular
	case im.Singular == "":
		return im.Plural
	}
	return im.Singular + " - " + im.Plural
}
