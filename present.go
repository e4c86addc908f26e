package grieks

import "strings"

// presentIrregulars are classified by exact match before any suffix rule.
var presentIrregulars = map[string]struct {
	paradigm PresentParadigm
	drop     bool
}{
	"λέω":       {A2, true},
	"πάω":       {A2, true},
	"φταίω":     {A2, true},
	"τρώω":      {A2, true},
	"ζω":        {B4, false},
	"εγκαθιστώ": {B3, false},
}

// presentSuffixes are tried in order; the first match wins.
var presentSuffixes = []struct {
	suffix   string
	paradigm PresentParadigm
}{
	{"ομαι", Γ1},
	{"άμαι", Γ2},
	{"ιέμαι", Γ3},
	{"ούμαι", Γ4},
	{"είμαι", Γ5},
	{"άω", B1},
	{"ώ", B2},
}

// ClassifyPresent determines the paradigm of a present-tense headword and
// returns the stem the paradigm's endings attach to.
func ClassifyPresent(headword string) (PresentParadigm, string) {
	p, _ := classifyPresent(headword)
	if p == PresentUnknown {
		return p, ""
	}
	return p, presentModels[p].stem(headword)
}

func classifyPresent(headword string) (PresentParadigm, bool) {
	if irr, ok := presentIrregulars[headword]; ok {
		return irr.paradigm, irr.drop
	}
	for _, s := range presentSuffixes {
		if strings.HasSuffix(headword, s.suffix) {
			return s.paradigm, false
		}
	}
	if strings.HasSuffix(headword, "ω") {
		return omegaParadigm(strings.TrimSuffix(headword, "ω")), false
	}
	return PresentUnknown, false
}

// omegaParadigm splits -ω verbs: consonant stems and stems in έ or εύ take
// the A1 endings, other vowel stems (ακού-ω) take A2.
func omegaParadigm(stem string) PresentParadigm {
	rs := []rune(stem)
	if len(rs) == 0 {
		return A2
	}
	if isConsonant(rs[len(rs)-1]) || strings.HasSuffix(stem, "έ") || strings.HasSuffix(stem, "εύ") {
		return A1
	}
	return A2
}

// conjugatePresent builds the present table for headword.
func conjugatePresent(headword string) Conjugation {
	if headword == "" {
		return Conjugation{Tense: Present, Diagnostic: MsgPresentMissing}
	}
	p, drop := classifyPresent(headword)
	if p == PresentUnknown {
		return diagnostic(Present, msgUnrecognized, headword)
	}
	m := presentModels[p]
	if drop {
		m.unstressed = oneSyllableDrop
	}
	return Conjugation{
		Tense:    Present,
		Paradigm: m.name,
		Forms:    m.apply(m.stem(headword)),
	}
}
