// Package classify decides which known report layout a document follows,
// from its filename and a short excerpt of its text. Classification is a
// fixed priority list of marker tests; the first match wins.
package classify

import (
	"strings"

	"github.com/rsubramani/policy-tracker/constants"
)

// rule is one marker test in the priority list. A rule matches when the
// uppercased filename contains any filename marker or the excerpt contains
// any content marker.
type rule struct {
	layout          constants.DocumentLayout
	filenameMarkers []string
	contentMarkers  []string
}

// Most-specific first: commission statements carry the most distinctive
// headers, premium-due markers are the loosest.
var rules = []rule{
	{
		layout:          constants.LayoutCommission,
		filenameMarkers: []string{"CM-", "COMMISSION"},
		contentMarkers:  []string{"Commission Summary", "PH Name", "Policy Holder"},
	},
	{
		layout:          constants.LayoutClaims,
		filenameMarkers: []string{"CLAIM"},
		contentMarkers:  []string{"Claims Due", "Claimant", "S.B. DUE"},
	},
	{
		layout:          constants.LayoutPremiumDue,
		filenameMarkers: []string{"PREMDUE", "PREMIUM"},
		contentMarkers:  []string{"Premium Due", "Name of Assured", "Name of the Assured"},
	},
}

// SampleLen is how much leading text participates in content-marker tests.
const SampleLen = 2000

// Classify returns the layout tag for a document. LayoutUnknown means no
// rule matched; such documents always route to error and are never retried
// automatically.
func Classify(filename, sample string) constants.DocumentLayout {
	upperName := strings.ToUpper(filename)
	if len(sample) > SampleLen {
		sample = sample[:SampleLen]
	}
	for _, r := range rules {
		for _, m := range r.filenameMarkers {
			if strings.Contains(upperName, m) {
				return r.layout
			}
		}
		for _, m := range r.contentMarkers {
			if strings.Contains(sample, m) {
				return r.layout
			}
		}
	}
	return constants.LayoutUnknown
}
