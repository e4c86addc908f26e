package grieks

import (
	"fmt"
	"strings"
)

// imperativeExceptions are keyed by the present headword and replace the
// derived imperative entirely.
var imperativeExceptions = map[string]Imperative{
	"τρώω":      {Singular: "φάε", Plural: "φάτε"},
	"λέω":       {Singular: "πες", Plural: "πείτε"},
	"πάω":       {Singular: "πήγαινε", Plural: "πηγαίνετε"},
	"έρχομαι":   {Singular: "έλα", Plural: "ελάτε"},
	"βλέπω":     {Singular: "δες", Plural: "δείτε"},
	"βρίσκω":    {Singular: "βρες", Plural: "βρείτε"},
	"μπαίνω":    {Singular: "μπες", Plural: "μπείτε"},
	"βγαίνω":    {Singular: "βγες", Plural: "βγείτε"},
	"πίνω":      {Singular: "πιες", Plural: "πιείτε"},
	"κάθομαι":   {Singular: "κάτσε", Plural: "καθίστε"},
	"ανεβαίνω":  {Singular: "ανέβα", Plural: "ανεβείτε"},
	"κατεβαίνω": {Singular: "κατέβα", Plural: "κατεβείτε"},
	"αφήνω":     {Singular: "άσε", Plural: "αφήστε"},
	"φέρνω":     {Singular: "φέρε", Plural: "φέρτε"},
	"παίρνω":    {Singular: "πάρε", Plural: "πάρτε"},
	"δίνω":      {Singular: "δώσε", Plural: "δώστε"},
	"κάνω":      {Singular: "κάνε", Plural: "κάντε"},
	"ακούω":     {Singular: "άκου", Plural: "ακούστε"},
	"στέκομαι":  {Singular: "στάσου", Plural: "σταθείτε"},
	"σωπαίνω":   {Singular: "σώπα", Plural: "σωπάστε"},
	"είμαι":     {Singular: "να είσαι", Plural: "να είστε"},
	"έχω":       {Singular: "έχε"},
	"ορίζω":     {Plural: "ορίστε"},
}

// passiveSingulars turn the consonant cluster closing a passive aorist
// stem into the singular imperative ending. Longer clusters come first.
var passiveSingulars = []struct {
	cluster string
	ending  string
}{
	{"εύτ", "έψου"},
	{"αύτ", "άψου"},
	{"στ", "σου"},
	{"χτ", "ξου"},
	{"φτ", "ψου"},
	{"υτ", "ψου"},
	{"θ", "σου"},
}

// voicedFinals take the long plural ending -ετε (φύγετε); other stems take -τε.
const voicedFinals = "νγβθχ"

// buildImperative derives the imperative: exception table, then the
// passive-aorist rule, then the active rule on the future stem.
func buildImperative(v *Verb) Imperative {
	future := v.Headword(Future)
	if future == "" {
		return Imperative{Diagnostic: MsgFutureMissing}
	}
	if im, ok := imperativeExceptions[v.Headword(Present)]; ok {
		return im
	}
	if aorist := v.Headword(Aorist); strings.HasSuffix(aorist, "ηκα") {
		return passiveImperative(strings.TrimSuffix(aorist, "ηκα"))
	}
	return activeImperative(trimLast(future))
}

func passiveImperative(stem string) Imperative {
	plural := Unstress(stem) + "είτε"
	for _, p := range passiveSingulars {
		if strings.HasSuffix(stem, p.cluster) {
			return Imperative{
				Singular: strings.TrimSuffix(stem, p.cluster) + p.ending,
				Plural:   plural,
			}
		}
	}
	return Imperative{Diagnostic: fmt.Sprintf(msgNoPassiveRule, stem)}
}

func activeImperative(stem string) Imperative {
	if StressPosition(stem) < 0 {
		stem = stressLastVowel(stem)
	}
	plural := stem + "τε"
	if rs := []rune(stem); len(rs) > 0 && strings.ContainsRune(voicedFinals, rs[len(rs)-1]) {
		plural = stem + "ετε"
	}
	return Imperative{
		Singular: shiftStressLeft(stem + "ε"),
		Plural:   plural,
	}
}

func stressLastVowel(s string) string {
	rs := []rune(s)
	for i := len(rs) - 1; i >= 0; i-- {
		if IsVowel(rs[i]) {
			return ReplaceAt(s, i, StressChar(rs[i]))
		}
	}
	return s
}

// shiftStressLeft moves the stress of s one vowel sound to the left,
// stepping over the rest of a stressed cluster (ακούσε → άκουσε).
// Words with no earlier vowel keep their stress.
func shiftStressLeft(s string) string {
	p := StressPosition(s)
	if p < 0 {
		return s
	}
	flat := []rune(Unstress(s))
	q := p
	for q > 0 && clusterAt(flat, q-1, pairClusters) == 2 {
		q--
	}
	for j := q - 1; j >= 0; j-- {
		if IsVowel(flat[j]) {
			flat[j] = StressChar(flat[j])
			return string(flat)
		}
	}
	return s
}
