package extract

import (
	"testing"
	"time"

	"github.com/rsubramani/policy-tracker/constants"
)

func TestCommissionExtractDetailRow(t *testing.T) {
	lines := []string{
		"Commission Summary",
		"S.No  PH Name  PolicyNo  Pln-Tm  DueDate  Premium  Commission",
		"-------------------------------------------------------------",
		"1 R LAKSHMANA PERUMAL 744091561 174-20 28/09/2025 2640.00 132.00",
	}
	s := &commissionStrategy{opts: Options{MinNameAlpha: 3}}
	got := s.Extract(lines)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}

	c := got[0]
	if c.Layout != constants.LayoutCommission {
		t.Errorf("layout = %v", c.Layout)
	}
	if c.PolicyNumber != "744091561" {
		t.Errorf("policy number = %q", c.PolicyNumber)
	}
	if c.Name != "R Lakshmana Perumal" {
		t.Errorf("name = %q", c.Name)
	}
	if c.PlanType == nil || *c.PlanType != "174-20" {
		t.Errorf("plan type = %v", c.PlanType)
	}
	wantDue := time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC)
	if c.DueDate == nil || !c.DueDate.Equal(wantDue) {
		t.Errorf("due date = %v, want %v", c.DueDate, wantDue)
	}
	if c.PremiumAmount == nil || c.PremiumAmount.String() != "2640" {
		t.Errorf("premium = %v", c.PremiumAmount)
	}
	if c.Commission == nil || c.Commission.String() != "132" {
		t.Errorf("commission = %v", c.Commission)
	}
	if c.HasPremiumObservation {
		t.Error("commission rows must not carry premium observations")
	}
}

func TestCommissionExtractPairRow(t *testing.T) {
	s := &commissionStrategy{opts: Options{MinNameAlpha: 3}}
	got := s.Extract([]string{"12 KUMARESAN 731200456"})
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].Name != "Kumaresan" || got[0].PolicyNumber != "731200456" {
		t.Errorf("candidate = %+v", got[0])
	}
	if got[0].PremiumAmount != nil {
		t.Errorf("pair row carries no premium, got %v", got[0].PremiumAmount)
	}
}

func TestCommissionExtractSkipsNoise(t *testing.T) {
	lines := []string{
		"",
		"GRAND TOTAL 45 120450.00 6022.50",
		"Page 3 of 7",
		"1 744091561 MISSING NAME COLUMN",
	}
	s := &commissionStrategy{opts: Options{MinNameAlpha: 3}}
	if got := s.Extract(lines); len(got) != 0 {
		t.Errorf("noise lines produced %d candidates: %+v", len(got), got)
	}
}

func TestCommissionExtractDeterministic(t *testing.T) {
	lines := []string{"1 R LAKSHMANA PERUMAL 744091561 174-20 28/09/2025 2640.00 132.00"}
	s := &commissionStrategy{opts: Options{MinNameAlpha: 3}}
	a := s.Extract(lines)
	b := s.Extract(lines)
	if len(a) != len(b) || a[0].PolicyNumber != b[0].PolicyNumber || a[0].Name != b[0].Name {
		t.Error("repeated extraction diverged")
	}
}
