package extract

import (
	"regexp"
	"strings"

	"github.com/rsubramani/policy-tracker/constants"
	"github.com/rsubramani/policy-tracker/internal/normalize"
)

// Claims-due list rows:
//
//	S.No PolicyNo Type DueDate Plan Name Amount NEFT
//	1 746503066 S.B. 16/12/2025 75 NONDICHAMY 20000.00 Y
var reClaimsRow = regexp.MustCompile(
	`^\s*(\d+)\s+(\d{9})\s+(\S+)\s+(\d{1,2}/\d{1,2}/\d{4})\s+(\d+)\s+([A-Z][A-Za-z\s.]{2,30}?)\s+(\d+\.\d+)\s*([YN])?\s*$`)

type claimsStrategy struct {
	opts Options
}

func (s *claimsStrategy) Layout() constants.DocumentLayout {
	return constants.LayoutClaims
}

func (s *claimsStrategy) Extract(lines []string) []Candidate {
	var out []Candidate
	for i, line := range lines {
		if isHeaderLine(line) {
			continue
		}
		m := reClaimsRow.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		name, ok := normalize.CleanName(m[6], s.opts.MinNameAlpha)
		if !ok {
			continue
		}
		due, err := normalize.ParseDate(m[4])
		if err != nil {
			continue
		}
		amount, err := normalize.ParseAmount(m[7])
		if err != nil {
			continue
		}

		claimType := m[3]
		c := Candidate{
			Layout:       constants.LayoutClaims,
			PolicyNumber: m[2],
			Name:         name,
			ClaimType:    strPtr(claimType),
			DueDate:      timePtr(due),
			PlanType:     strPtr(m[5]),
			ClaimAmount:  decPtr(amount),
			SourceLine:   i,
		}
		// a maturity payout approximates the sum assured; survival benefits
		// are only a fraction of it and say nothing about the full cover
		if isMaturityClaim(claimType) {
			c.SumAssured = decPtr(amount)
		}
		out = append(out, c)
	}
	return out
}

func isMaturityClaim(claimType string) bool {
	t := strings.ToUpper(strings.Trim(claimType, "."))
	return t == "MAT" || t == "MATURITY"
}
