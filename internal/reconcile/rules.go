package reconcile

import (
	"strings"
	"time"

	"github.com/rsubramani/policy-tracker/internal/config"
	"github.com/rsubramani/policy-tracker/internal/entity"
	"github.com/rsubramani/policy-tracker/internal/extract"
	"github.com/rsubramani/policy-tracker/internal/repository"
)

// ScaleSumAssured passes an extracted sum-assured value through the
// configured plausibility bands. The first band whose range contains the
// value (and whose policy prefixes, if any, match) applies; values outside
// every band are stored as-is.
func ScaleSumAssured(v float64, policyNumber string, rules []config.SumAssuredRule) float64 {
	for _, r := range rules {
		if v < r.Min || v >= r.MaxExclusive {
			continue
		}
		if len(r.PolicyPrefixes) > 0 && !hasAnyPrefix(policyNumber, r.PolicyPrefixes) {
			continue
		}
		return v * r.Factor
	}
	return v
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// mergeUpdate computes the field-set to write against an existing policy.
// An empty update means the candidate carried nothing new.
//
// Field policies:
//   - fup_due_date moves strictly forward, never backward.
//   - premium_amount tracks the latest extraction.
//   - sum_assured is scaled through the bands, then tracks the extraction.
//   - agent_code fills once and is never replaced.
//   - remaining descriptive fields fill only when unset.
func mergeUpdate(pol *entity.Policy, c extract.Candidate, rules []config.SumAssuredRule) repository.PolicyUpdate {
	var upd repository.PolicyUpdate

	if c.FUPDueDate != nil && laterThan(c.FUPDueDate, pol.FUPDueDate) {
		upd.FUPDueDate = c.FUPDueDate
	}
	if c.PremiumAmount != nil {
		v := c.PremiumAmount.InexactFloat64()
		if pol.PremiumAmount == nil || *pol.PremiumAmount != v {
			upd.PremiumAmount = &v
		}
	}
	if c.SumAssured != nil {
		v := ScaleSumAssured(c.SumAssured.InexactFloat64(), pol.PolicyNumber, rules)
		if pol.SumAssured == nil || *pol.SumAssured != v {
			upd.SumAssured = &v
		}
	}
	if c.AgentCode != nil && isUnset(pol.AgentCode) {
		upd.AgentCode = c.AgentCode
	}
	if c.PlanType != nil && isUnset(pol.PlanType) {
		upd.PlanType = c.PlanType
	}
	if c.PaymentMode != nil && isUnset(pol.PaymentMode) {
		upd.PaymentMode = c.PaymentMode
	}
	if c.PolicyTerm != nil && pol.PolicyTerm == nil {
		upd.PolicyTerm = c.PolicyTerm
	}
	if c.CommencementDate != nil && pol.CommencementDate == nil {
		upd.CommencementDate = c.CommencementDate
	}
	return upd
}

func laterThan(candidate, stored *time.Time) bool {
	return stored == nil || candidate.After(*stored)
}

func isUnset(s *string) bool {
	return s == nil || *s == ""
}
