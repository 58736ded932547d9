package words

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		word string
		want Category
	}{
		// Verbs.
		{"dantzatu", CategoryVerb},
		{"galdu", CategoryVerb},
		{"jaten", CategoryVerb},
		{"dantzatzen", CategoryVerb},
		// Plurals.
		{"mendiak", CategoryPlural},
		{"gizonek", CategoryPlural},
		// Abstract nouns.
		{"ederra", CategoryOther}, // -rra is not -era
		{"igoera", CategoryAbstract},
		{"altura", CategoryAbstract},
		{"edertasun", CategoryAbstract},
		{"herritasuna", CategoryAbstract}, // article -a ignored for tasun
		// Default.
		{"mahai", CategoryOther},
		{"etxe", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		if got := Classify(tt.word); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestClassifyNormalizes(t *testing.T) {
	if got := Classify("DANTZATU"); got != CategoryVerb {
		t.Errorf("Classify(DANTZATU) = %v, want verb", got)
	}
	if got := Classify("  mendiak\t"); got != CategoryPlural {
		t.Errorf("Classify with whitespace = %v, want plural", got)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// "batzen" ends in both -tzen (verb) and -en; verb rule wins.
	if got := Classify("batzen"); got != CategoryVerb {
		t.Errorf("Classify(batzen) = %v, want verb", got)
	}
	// "itsasontziak" could look abstract to a sloppier matcher but -ak wins first.
	if got := Classify("itsasontziak"); got != CategoryPlural {
		t.Errorf("Classify(itsasontziak) = %v, want plural", got)
	}
}
