package grieks

// PresentParadigm classifies a present-tense headword.
type PresentParadigm int

const (
	PresentUnknown PresentParadigm = iota
	A1
	A2
	B1
	B2
	B3
	B4
	Γ1
	Γ2
	Γ3
	Γ4
	Γ5
)

func (p PresentParadigm) String() string {
	if m, ok := presentModels[p]; ok {
		return m.name
	}
	return "unknown"
}

// FutureParadigm classifies a future-tense headword.
type FutureParadigm int

const (
	FutureUnknown FutureParadigm = iota
	FutureRegular
	// FutureIrregular1 covers -ώ futures (κοιμηθώ).
	FutureIrregular1
	// FutureIrregular2 covers φάω and πάω.
	FutureIrregular2
	// FutureIrregular3 covers the monosyllabic stems πιω, δω, βρω, πω, μπω, βγω.
	FutureIrregular3
	// FutureIrregular4 is the copula είμαι.
	FutureIrregular4
)

func (p FutureParadigm) String() string {
	if m, ok := futureModels[p]; ok {
		return m.name
	}
	return "unknown"
}

// model is a suffix family: the suffix cut from the headword to obtain the
// stem, and the six endings glued back onto it.
type model struct {
	name string
	// cut is the number of runes removed from the headword.
	cut int
	// endings are appended to the stem in person order.
	endings [6]string
	// unstressed marks persons whose stem loses its stress mark, either
	// because the ending carries it or because the form is monosyllabic.
	unstressed [6]bool
}

// apply builds the six forms for stem.
func (m model) apply(stem string) Table {
	var t Table
	for i, e := range m.endings {
		s := stem
		if m.unstressed[i] {
			s = Unstress(stem)
		}
		t[i] = s + e
	}
	return t
}

// stem cuts the model's suffix from headword.
func (m model) stem(headword string) string {
	rs := []rune(headword)
	if m.cut > len(rs) {
		return ""
	}
	return string(rs[:len(rs)-m.cut])
}

// oneSyllableDrop marks the second person singular of λέω-type verbs,
// whose monosyllabic form (λες, πας) carries no stress mark.
var oneSyllableDrop = [6]bool{false, true, false, false, false, false}

var presentModels = map[PresentParadigm]model{
	A1: {name: "A1", cut: 1, endings: [6]string{"ω", "εις", "ει", "ουμε", "ετε", "ουν"}},
	A2: {name: "A2", cut: 1, endings: [6]string{"ω", "ς", "ει", "με", "τε", "νε"}},
	B1: {name: "B1", cut: 2, endings: [6]string{"άω(ώ)", "άς", "άει(ά)", "άμε(ούμε)", "άτε", "άνε(ούν)"}},
	B2: {name: "B2", cut: 1, endings: [6]string{"ώ", "είς", "εί", "ούμε", "είτε", "ούν(ε)"}},
	B3: {name: "B3", cut: 1, endings: [6]string{"ώ", "άς", "ά", "ούμε", "άτε", "ούν"}},
	B4: {name: "B4", cut: 1, endings: [6]string{"ω", "εις", "ει", "ούμε", "είτε", "ουν"}},
	Γ1: {
		name:       "Γ1",
		cut:        4,
		endings:    [6]string{"ομαι", "εσαι", "εται", "όμαστε", "εστε", "ονται"},
		unstressed: [6]bool{false, false, false, true, false, false},
	},
	Γ2: {name: "Γ2", cut: 4, endings: [6]string{"άμαι", "άσαι", "άται", "όμαστε", "άστε", "ούνται"}},
	Γ3: {name: "Γ3", cut: 5, endings: [6]string{"ιέμαι", "ιέσαι", "ιέται", "ιόμαστε", "ιέστε", "ιούνται"}},
	Γ4: {name: "Γ4", cut: 5, endings: [6]string{"ούμαι", "είσαι", "είται", "ούμαστε", "είστε", "ούνται"}},
	Γ5: {name: "Γ5", cut: 5, endings: [6]string{"είμαι", "είσαι", "είναι", "είμαστε", "είστε", "είναι"}},
}

// futureParticle precedes every future form.
const futureParticle = "θα "

var futureModels = map[FutureParadigm]model{
	FutureRegular:    {name: "regular", cut: 1, endings: [6]string{"ω", "εις", "ει", "ουμε", "ετε", "ουν"}},
	FutureIrregular1: {name: "irregular1", cut: 1, endings: [6]string{"ώ", "είς", "εί", "ούμε", "είτε", "ούν"}},
	FutureIrregular2: {name: "irregular2", cut: 1, endings: [6]string{"ω", "ς", "ει", "με", "τε", "νε"}, unstressed: oneSyllableDrop},
	FutureIrregular3: {name: "irregular3", cut: 1, endings: [6]string{"ω", "εις", "ει", "ούμε", "είτε", "ουν"}},
	FutureIrregular4: {name: "irregular4", cut: 3, endings: [6]string{"μαι", "σαι", "ναι", "μαστε", "στε", "ναι"}},
}
