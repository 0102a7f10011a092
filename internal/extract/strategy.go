// Package extract turns document text into candidate entity rows, one
// strategy per known layout. Each strategy is an ordered list of line
// grammars, most-specific first; a line matches at most one grammar and
// unmatched lines are skipped silently, because headers, totals and page
// breaks must never produce records.
package extract

import (
	"strings"

	"github.com/rsubramani/policy-tracker/constants"
)

// Strategy parses one document layout.
type Strategy interface {
	Layout() constants.DocumentLayout
	// Extract consumes the document text as lines and returns zero or more
	// candidates. Re-calling with the same input yields the same result.
	Extract(lines []string) []Candidate
}

// Options carries normalization tunables shared by all strategies.
type Options struct {
	// Minimum alphabetic characters for a name span to be believed.
	MinNameAlpha int
}

// ForLayout returns the strategy for a classified layout, or nil for
// LayoutUnknown.
func ForLayout(layout constants.DocumentLayout, opts Options) Strategy {
	switch layout {
	case constants.LayoutCommission:
		return &commissionStrategy{opts: opts}
	case constants.LayoutClaims:
		return &claimsStrategy{opts: opts}
	case constants.LayoutPremiumDue:
		return &premiumDueStrategy{opts: opts}
	default:
		return nil
	}
}

// Lines splits document text for extraction.
func Lines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// isHeaderLine filters column-header and separator lines common to all
// three report families.
func isHeaderLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "---") || strings.HasPrefix(trimmed, "===") {
		return true
	}
	upper := strings.ToUpper(trimmed)
	return strings.HasPrefix(upper, "S.NO") ||
		strings.Contains(upper, "POLICY NO") ||
		strings.Contains(upper, "POLICYNO") ||
		strings.Contains(upper, "PH NAME") ||
		strings.Contains(upper, "NAME OF ASSURED")
}
