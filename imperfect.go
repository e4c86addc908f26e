package grieks

import "strings"

// imperfectThirdPlural maps a mediopassive present paradigm to the ending
// of its imperfect third person plural, attached to the present stem
// (έρχ-ονταν, κοιμ-ούνταν).
var imperfectThirdPlural = map[PresentParadigm]string{
	Γ1: "ονταν",
	Γ2: "ούνταν",
	Γ3: "ιούνταν",
	Γ4: "ούνταν",
}

// conjugateImperfect builds the imperfect table.
func conjugateImperfect(v *Verb) Conjugation {
	hw := v.Headword(Imperfect)
	if hw == "" {
		return Conjugation{Tense: Imperfect, Diagnostic: MsgImperfectMissing}
	}
	present := v.Headword(Present)

	switch {
	case strings.HasSuffix(hw, "ούσα"):
		stem := trimLast(hw)
		return Conjugation{Tense: Imperfect, Paradigm: "ούσα", Forms: pastTable(stem, stem)}

	case strings.HasSuffix(hw, "όμουν"):
		stem := strings.TrimSuffix(hw, "όμουν")
		return Conjugation{
			Tense:    Imperfect,
			Paradigm: "όμουν",
			Forms: Table{
				hw,
				stem + "όσουν",
				stem + "όταν",
				stem + "όμασταν",
				stem + "όσασταν",
				mediopassiveThirdPlural(present, stem),
			},
		}

	case strings.HasSuffix(present, "ω") && strings.HasSuffix(hw, "α"):
		singular := trimLast(hw)
		plural := pastPlural(singular, hw, present, v.Headword(Future), imperfectClusters)
		return Conjugation{Tense: Imperfect, Paradigm: "regular", Forms: pastTable(singular, plural)}
	}
	return diagnostic(Imperfect, msgNoImperfectStem, hw)
}

// mediopassiveThirdPlural derives the 3pl imperfect from the present stem.
// It does not consult the imperfect headword beyond the fallback.
func mediopassiveThirdPlural(present, imperfectStem string) string {
	p, stem := ClassifyPresent(present)
	if ending, ok := imperfectThirdPlural[p]; ok {
		return stem + ending
	}
	return Unstress(imperfectStem) + "όνταν"
}
