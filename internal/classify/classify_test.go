package classify

import (
	"strings"
	"testing"

	"github.com/rsubramani/policy-tracker/constants"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		sample   string
		want     constants.DocumentLayout
	}{
		{"commission by filename", "CM-0023170N-July.txt", "", constants.LayoutCommission},
		{"commission by content", "report.txt", "Commission Summary for July\nPH Name PolicyNo", constants.LayoutCommission},
		{"claims by filename", "claims-due-list.txt", "", constants.LayoutClaims},
		{"claims by content", "report.txt", "Claims Due for the quarter", constants.LayoutClaims},
		{"sb due content", "report.txt", "S.B. DUE REGISTER", constants.LayoutClaims},
		{"premium due by filename", "premium-due-0023170N.txt", "", constants.LayoutPremiumDue},
		{"premdue by filename", "PREMDUE_OCT.txt", "", constants.LayoutPremiumDue},
		{"premium due by content", "report.txt", "Name of the Assured FUP InstPrem", constants.LayoutPremiumDue},
		{"unknown", "notes.txt", "quarterly newsletter", constants.LayoutUnknown},
		{"empty", "", "", constants.LayoutUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.filename, tt.sample); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestClassifyMostSpecificWins(t *testing.T) {
	// a commission statement mentioning premiums must not classify as
	// premium-due
	sample := "Commission Summary\nPremium Due amounts follow"
	if got := Classify("report.txt", sample); got != constants.LayoutCommission {
		t.Errorf("Classify = %v, want %v", got, constants.LayoutCommission)
	}
}

func TestClassifyOnlySamplesLeadingText(t *testing.T) {
	sample := strings.Repeat("x", SampleLen) + "Commission Summary"
	if got := Classify("report.txt", sample); got != constants.LayoutUnknown {
		t.Errorf("marker beyond the sample window classified as %v", got)
	}
}
