package grieks

import "strings"

var futureIrregulars = map[string]FutureParadigm{
	"είμαι": FutureIrregular4,
	"φάω":   FutureIrregular2,
	"πάω":   FutureIrregular2,
	"πιω":   FutureIrregular3,
	"δω":    FutureIrregular3,
	"βρω":   FutureIrregular3,
	"πω":    FutureIrregular3,
	"μπω":   FutureIrregular3,
	"βγω":   FutureIrregular3,
}

// ClassifyFuture determines the paradigm of a future-tense headword and
// returns its stem.
func ClassifyFuture(headword string) (FutureParadigm, string) {
	p := classifyFuture(headword)
	if p == FutureUnknown {
		return p, ""
	}
	return p, futureModels[p].stem(headword)
}

func classifyFuture(headword string) FutureParadigm {
	if p, ok := futureIrregulars[headword]; ok {
		return p
	}
	switch {
	case strings.HasSuffix(headword, "ω"):
		return FutureRegular
	case strings.HasSuffix(headword, "ώ"):
		return FutureIrregular1
	}
	return FutureUnknown
}

// conjugateFuture builds the future table for headword, every form
// preceded by the particle θα.
func conjugateFuture(headword string) Conjugation {
	if headword == "" {
		return Conjugation{Tense: Future, Diagnostic: MsgFutureMissing}
	}
	p := classifyFuture(headword)
	if p == FutureUnknown {
		return diagnostic(Future, msgUnrecognized, headword)
	}
	m := futureModels[p]
	forms := m.apply(m.stem(headword))
	for i := range forms {
		forms[i] = futureParticle + forms[i]
	}
	return Conjugation{Tense: Future, Paradigm: m.name, Forms: forms}
}
