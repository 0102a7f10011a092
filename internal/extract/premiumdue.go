package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rsubramani/policy-tracker/constants"
	"github.com/rsubramani/policy-tracker/internal/normalize"
)

// Premium-due list rows:
//
//	S.No PolicyNo Name D.o.C Pln/Tm Mod FUP InstPrem Due GST TotPrem EstCom
//	1 319566711 P.MARIMUTHU 14/10/2020 936/21 Hly 10/2024 14689.00 2 661.00 30039 1468.90
var rePremiumDueRow = regexp.MustCompile(
	`^\s*(\d+)\s+(\d{9})\s+([A-Z][A-Za-z\s.]{2,50}?)\s+(\d{1,2}/\d{1,2}/\d{4})\s+(\d{3}/\d{2})\s+([A-Za-z]{2,4})\s+(\d{1,2}/\d{4})\s*(.*)$`)

type premiumDueStrategy struct {
	opts Options
}

func (s *premiumDueStrategy) Layout() constants.DocumentLayout {
	return constants.LayoutPremiumDue
}

func (s *premiumDueStrategy) Extract(lines []string) []Candidate {
	var out []Candidate
	for i, line := range lines {
		if isHeaderLine(line) {
			continue
		}
		m := rePremiumDueRow.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		name, ok := normalize.CleanName(m[3], s.opts.MinNameAlpha)
		if !ok {
			continue
		}

		doc, err := normalize.ParseDate(m[4])
		if err != nil {
			continue
		}
		// FUP prints as MM/YYYY; normalized to the first of the month
		fup, err := normalize.ParseDate(m[7])
		if err != nil {
			continue
		}

		c := Candidate{
			Layout:                constants.LayoutPremiumDue,
			PolicyNumber:          m[2],
			Name:                  name,
			CommencementDate:      timePtr(doc),
			PaymentMode:           strPtr(m[6]),
			FUPDueDate:            timePtr(fup),
			HasPremiumObservation: true,
			SourceLine:            i,
		}
		plan, term := splitPlanTerm(m[5])
		c.PlanType = strPtr(plan)
		if term > 0 {
			c.PolicyTerm = intPtr(term)
		}

		// InstPrem Due GST TotPrem [EstCom]
		amounts := reAmountToken.FindAllString(m[8], -1)
		if len(amounts) >= 4 {
			if v, err := normalize.ParseAmount(amounts[0]); err == nil {
				c.PremiumAmount = decPtr(v)
			}
			if n, err := strconv.Atoi(strings.SplitN(amounts[1], ".", 2)[0]); err == nil {
				c.DueCount = intPtr(n)
			}
			if v, err := normalize.ParseAmount(amounts[2]); err == nil {
				c.Tax = decPtr(v)
			}
			if v, err := normalize.ParseAmount(amounts[3]); err == nil {
				c.Total = decPtr(v)
			}
			if len(amounts) >= 5 {
				if v, err := normalize.ParseAmount(amounts[4]); err == nil {
					c.Commission = decPtr(v)
				}
			}
		}
		out = append(out, c)
	}
	return out
}

// splitPlanTerm splits "936/21" into the plan code and the policy term.
func splitPlanTerm(planTerm string) (string, int) {
	parts := strings.SplitN(planTerm, "/", 2)
	if len(parts) != 2 {
		return planTerm, 0
	}
	term, err := strconv.Atoi(parts[1])
	if err != nil {
		return planTerm, 0
	}
	return planTerm, term
}
