package grieks

import "strings"

// copulaPast is the simple past of είμαι.
var copulaPast = Table{"ήμουν", "ήσουν", "ήταν", "ήμασταν", "ήσασταν", "ήταν"}

// aoristPlurals are simple-past headwords whose plural keeps the singular
// stem unchanged.
var aoristPlurals = map[string]string{
	"βγήκα":  "βγήκ",
	"είδα":   "είδ",
	"βρήκα":  "βρήκ",
	"μπήκα":  "μπήκ",
	"ήρθα":   "ήρθ",
	"είπα":   "είπ",
	"πήγα":   "πήγ",
	"ήπια":   "ήπι",
	"υπήρξα": "υπήρξ",
}

// aoristStableSuffixes are compound families (κατείχα, προήλθα, ξαναπήρα)
// that keep the singular stem in the plural as well.
var aoristStableSuffixes = []string{"είχα", "ήλθα", "πήρα"}

// aoristByPresent overrides the plural stem for verbs identified by their
// present headword.
var aoristByPresent = map[string]string{
	"ταΐζω": "ταΐσ",
}

// irregularAoristPlural consults the lexicon for the plural stem.
func irregularAoristPlural(headword, present string) (string, bool) {
	if pl, ok := aoristPlurals[headword]; ok {
		return pl, true
	}
	for _, s := range aoristStableSuffixes {
		if strings.HasSuffix(headword, s) {
			return trimLast(headword), true
		}
	}
	if pl, ok := aoristByPresent[present]; ok {
		return pl, true
	}
	return "", false
}

// conjugateAorist builds the simple-past table. The irregular lexicon
// takes precedence over the structural rule.
func conjugateAorist(v *Verb) Conjugation {
	hw := v.Headword(Aorist)
	if hw == "" {
		return Conjugation{Tense: Aorist, Diagnostic: MsgAoristMissing}
	}
	if hw == copulaPast[FirstSingular] {
		return Conjugation{Tense: Aorist, Paradigm: "irregular", Forms: copulaPast}
	}
	if !strings.HasSuffix(hw, "α") {
		return diagnostic(Aorist, msgNoAoristStem, hw)
	}

	present := v.Headword(Present)
	singular := trimLast(hw)
	if plural, ok := irregularAoristPlural(hw, present); ok {
		return Conjugation{Tense: Aorist, Paradigm: "irregular", Forms: pastTable(singular, plural)}
	}
	plural := pastPlural(singular, hw, present, v.Headword(Future), aoristClusters)
	return Conjugation{Tense: Aorist, Paradigm: "regular", Forms: pastTable(singular, plural)}
}
