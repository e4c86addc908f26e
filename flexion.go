package grieks

// Vowel clusters that are spelled with several letters but carry a single
// stress mark, on their last letter (ακού-, αδειά-, διώ-).
var (
	vowelTriples = []string{"εια", "ειο", "ειω", "ιου", "οια", "οιο", "αια", "αιω", "υια"}
	vowelPairs   = []string{"αι", "ει", "οι", "ου", "αυ", "ευ", "υι", "ια", "ιε", "ιο", "ιω"}
)

// Cluster inventories, longest clusters first. The aorist honors
// three-letter clusters; the imperfect only pairs.
var (
	aoristClusters    = [][]string{vowelTriples, vowelPairs}
	pairClusters      = [][]string{vowelPairs}
	imperfectClusters = pairClusters
)

// clusterAt returns the length of the first cluster of inventory that
// starts at index i of rs, or 0 when none does.
func clusterAt(rs []rune, i int, inventory [][]string) int {
	for _, set := range inventory {
		for _, c := range set {
			cr := []rune(c)
			if i+len(cr) > len(rs) {
				continue
			}
			if string(rs[i:i+len(cr)]) == c {
				return len(cr)
			}
		}
	}
	return 0
}

// shiftStress moves the stress of stem onto the next vowel sound after the
// current stress. A cluster takes the stress on its last letter. When no
// vowel follows the stress, stem is returned as is.
func shiftStress(stem string, inventory [][]string) string {
	pos := StressPosition(stem)
	flat := []rune(Unstress(stem))
	for i := pos + 1; i < len(flat); i++ {
		if n := clusterAt(flat, i, inventory); n > 0 {
			return ReplaceAt(string(flat), i+n-1, StressChar(flat[i+n-1]))
		}
		if IsVowel(flat[i]) {
			return ReplaceAt(string(flat), i, StressChar(flat[i]))
		}
	}
	return stem
}

// dropAugment removes a leading ή or έ from plural when the past-tense
// headword starts with it but the present headword does not.
func dropAugment(plural, headword, present string) string {
	first := runeAt(headword, 0)
	if first != 'ή' && first != 'έ' {
		return plural
	}
	if UnstressChar(runeAt(present, 0)) == UnstressChar(first) {
		return plural
	}
	return removeAt(plural, 0)
}

// repairEpenthesis undoes an internal augment: when the headword is
// stressed on a non-initial έ and the future form has a different letter
// at that index, the plural takes the future's vowel there, or loses the
// epsilon when the future has a consonant (ανέπνευσα → αναπνεύσαμε,
// προέβλεψα → προβλέψαμε).
func repairEpenthesis(plural, headword, future string) string {
	if future == "" {
		return plural
	}
	i := StressPosition(headword)
	if i <= 0 || runeAt(headword, i) != 'έ' {
		return plural
	}
	f := UnstressChar(runeAt(future, i))
	switch {
	case f == 0 || f == 'ε':
		return plural
	case isConsonant(f):
		return removeAt(plural, i)
	}
	return ReplaceAt(plural, i, f)
}

// pastPlural derives the plural stem of a past tense from its singular
// stem: stress shift, augment drop, epenthesis repair.
func pastPlural(singular, headword, present, future string, inventory [][]string) string {
	plural := shiftStress(singular, inventory)
	plural = dropAugment(plural, headword, present)
	return repairEpenthesis(plural, headword, future)
}

// pastTable lays out the singular and plural stems in the past-tense template.
func pastTable(singular, plural string) Table {
	return Table{
		singular + "α",
		singular + "ες",
		singular + "ε",
		plural + "αμε",
		plural + "ατε",
		singular + "αν",
	}
}

// trimLast drops the final rune of s.
func trimLast(s string) string {
	rs := []rune(s)
	if len(rs) == 0 {
		return s
	}
	return string(rs[:len(rs)-1])
}
