package grieks

import "testing"

func TestSpeechText(t *testing.T) {
	tests := []struct {
		name string
		text string
		wt   WordType
		want string
	}{
		{"adjective", "καλός, -ή, -ό", Adjective, "καλός, καλή, καλό"},
		{"adjective two lines", "καλός, -ή, -ό\nωραίος, -α, -ο", Adjective, "καλός, καλή, καλό, ωραίος, ωραία, ωραίο"},
		{"adjective with note", "βαθύς, -ιά, -ύ (diep)", Adjective, "βαθύς, βαθιά, βαθύ"},
		{"adjective no match", "πολύ (veel)", Adjective, "πολύ"},
		{"pronoun", "αυτός, -ή, -ό", Pronoun, "αυτός, αυτή, αυτό"},
		{"numeral mixed", "πρώτος, -η, -ο\nένα [1]", Numeral, "πρώτος, πρώτη, πρώτο, ένα"},
		{"noun", "σπίτι, το", Noun, "το σπίτι"},
		{"noun with article", "το σπίτι, το", Noun, "το σπίτι"},
		{"noun hiatus ο", "ο άνθρωπος, ο", Noun, "ο, άνθρωπος"},
		{"noun hiatus το", "όνομα, το", Noun, "το, όνομα"},
		{"noun hiatus η", "ιστορία, η", Noun, "η, ιστορία"},
		{"noun hiatus οι", "υπάλληλοι, οι", Noun, "οι, υπάλληλοι"},
		{"noun hiatus η before ει", "ειρήνη, η", Noun, "η, ειρήνη"},
		{"noun no hiatus", "αγάπη, η", Noun, "η αγάπη"},
		// a noun written with its article is checked from the article
		{"noun with article ο", "ο δρόμος, ο", Noun, "ο, δρόμος"},
		{"noun with article η", "η μητέρα, η", Noun, "η, μητέρα"},
		{"noun with article οι", "οι φίλοι, οι", Noun, "οι, φίλοι"},
		{"noun with article τα", "τα παιδιά, τα", Noun, "τα παιδιά"},
		{"noun two lines", "σπίτι, το\nόνομα, το", Noun, "το σπίτι, το, όνομα"},
		{"noun no match", "σπίτι", Noun, "σπίτι"},
		{"article", "ο η το", Article, "ο,η,το"},
		{"default", "γεια σου (hallo) - γεια", WordType("uitdrukking"), "γεια σου, γεια"},
		{"default equals", "ευχαριστώ=dank je", WordType(""), "ευχαριστώ,dank je"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpeechText(tt.text, tt.wt); got != tt.want {
				t.Errorf("SpeechText(%q, %q) = %q, want %q", tt.text, tt.wt, got, tt.want)
			}
		})
	}
}

func TestHiatus(t *testing.T) {
	tests := []struct {
		article string
		noun    string
		want    bool
	}{
		{"ο", "όροφος", true},
		{"το", "σπίτι", false},
		{"το", "το σπίτι", false},
		{"η", "ημέρα", true},
		{"οι", "ιδέες", true},
		{"τα", "όνειρα", false},
		{"ο", "ήλιος", false},
	}
	for _, tt := range tests {
		if got := hiatus(tt.article, tt.noun); got != tt.want {
			t.Errorf("hiatus(%q, %q) = %v, want %v", tt.article, tt.noun, got, tt.want)
		}
	}
}
