package normalize

import "testing"

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"plain upper", "NONDICHAMY", "Nondichamy", true},
		{"multi word", "R LAKSHMANA PERUMAL", "R Lakshmana Perumal", true},
		{"initial with dots", "P.MARIMUTHU", "P.Marimuthu", true},
		{"honorific stripped", "MR. JOHN SMITH", "John Smith", true},
		{"suffix stripped", "JAMES KUMAR JR", "James Kumar", true},
		{"collapses whitespace", "  RAMYA   DEVI ", "Ramya Devi", true},
		{"policy number", "744091561", "", false},
		{"date shaped", "28/09/2025", "", false},
		{"too few letters", "AB", "", false},
		{"digit heavy", "A1 2345 6789", "", false},
		{"all stopwords", "TOTAL PREMIUM DUE", "", false},
		{"stopword dropped", "PREMIUM RAJENDRAN", "Rajendran", true},
		{"code token dropped", "KUMAR AB123", "Kumar", true},
		{"empty", "   ", "", false},
		{"too many words", "A B C D E F AAA BBB", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CleanName(tt.raw, DefaultMinNameAlpha)
			if ok != tt.ok {
				t.Fatalf("CleanName(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanNameDeterministic(t *testing.T) {
	a, _ := CleanName("R LAKSHMANA PERUMAL", 3)
	b, _ := CleanName("r lakshmana perumal", 3)
	if a != b {
		t.Errorf("case variants normalize differently: %q vs %q", a, b)
	}
}
