package extract

import (
	"regexp"
	"strings"

	"github.com/rsubramani/policy-tracker/constants"
	"github.com/rsubramani/policy-tracker/internal/normalize"
)

// Commission statement rows:
//
//	S.No  PH Name  PolicyNo  Pln-Tm  DueDate  ...  Premium  Commission
//	1 R LAKSHMANA PERUMAL 744091561 174-20 28/09/2025 ... 2640.00 132.00
var (
	// full detail row with plan and optional due date
	reCommissionDetail = regexp.MustCompile(
		`^\s*(\d+)\s+([A-Z][A-Za-z\s.]{2,50}?)\s+(\d{9})\s+(\d{3}-\d{2})\s*(\d{1,2}/\d{1,2}/\d{4})?\s*(.*)$`)
	// degenerate row carrying only serial, name and policy number
	reCommissionPair = regexp.MustCompile(
		`^\s*(\d+)\s+([A-Z][A-Za-z\s.]{2,50}?)\s+(\d{9})\s*$`)

	reAmountToken = regexp.MustCompile(`\d+\.?\d*`)
)

type commissionStrategy struct {
	opts Options
}

func (s *commissionStrategy) Layout() constants.DocumentLayout {
	return constants.LayoutCommission
}

func (s *commissionStrategy) Extract(lines []string) []Candidate {
	var out []Candidate
	for i, line := range lines {
		if isHeaderLine(line) {
			continue
		}
		clean := strings.TrimSpace(line)

		if m := reCommissionDetail.FindStringSubmatch(clean); m != nil {
			c, ok := s.detailCandidate(m, i)
			if ok {
				out = append(out, c)
			}
			continue
		}
		if m := reCommissionPair.FindStringSubmatch(clean); m != nil {
			name, ok := normalize.CleanName(m[2], s.opts.MinNameAlpha)
			if !ok {
				continue
			}
			out = append(out, Candidate{
				Layout:       constants.LayoutCommission,
				PolicyNumber: m[3],
				Name:         name,
				SourceLine:   i,
			})
		}
	}
	return out
}

func (s *commissionStrategy) detailCandidate(m []string, line int) (Candidate, bool) {
	name, ok := normalize.CleanName(m[2], s.opts.MinNameAlpha)
	if !ok {
		return Candidate{}, false
	}
	c := Candidate{
		Layout:       constants.LayoutCommission,
		PolicyNumber: m[3],
		Name:         name,
		PlanType:     strPtr(m[4]),
		SourceLine:   line,
	}
	if m[5] != "" {
		if d, err := normalize.ParseDate(m[5]); err == nil {
			c.DueDate = timePtr(d)
		}
	}
	// trailing columns: the second-last numeric token is the premium, the
	// last is the commission
	amounts := reAmountToken.FindAllString(m[6], -1)
	if len(amounts) >= 2 {
		if prem, err := normalize.ParseAmount(amounts[len(amounts)-2]); err == nil {
			c.PremiumAmount = decPtr(prem)
		}
		if comm, err := normalize.ParseAmount(amounts[len(amounts)-1]); err == nil {
			c.Commission = decPtr(comm)
		}
	}
	return c, true
}
