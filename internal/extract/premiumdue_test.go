package extract

import (
	"testing"
	"time"
)

func TestPremiumDueExtract(t *testing.T) {
	lines := []string{
		"Premium Due List",
		"S.No PolicyNo Name D.o.C Pln/Tm Mod FUP InstPrem Due GST TotPrem EstCom",
		"1 319566711 P.MARIMUTHU 14/10/2020 936/21 Hly 10/2024 14689.00 2 661.00 30039.00 1468.90",
	}
	s := &premiumDueStrategy{opts: Options{MinNameAlpha: 3}}
	got := s.Extract(lines)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}

	c := got[0]
	if c.PolicyNumber != "319566711" || c.Name != "P.Marimuthu" {
		t.Errorf("identity = %q %q", c.PolicyNumber, c.Name)
	}
	wantDoC := time.Date(2020, 10, 14, 0, 0, 0, 0, time.UTC)
	if c.CommencementDate == nil || !c.CommencementDate.Equal(wantDoC) {
		t.Errorf("commencement = %v, want %v", c.CommencementDate, wantDoC)
	}
	if c.PlanType == nil || *c.PlanType != "936/21" {
		t.Errorf("plan = %v", c.PlanType)
	}
	if c.PolicyTerm == nil || *c.PolicyTerm != 21 {
		t.Errorf("term = %v", c.PolicyTerm)
	}
	if c.PaymentMode == nil || *c.PaymentMode != "Hly" {
		t.Errorf("mode = %v", c.PaymentMode)
	}
	wantFUP := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	if c.FUPDueDate == nil || !c.FUPDueDate.Equal(wantFUP) {
		t.Errorf("fup = %v, want %v", c.FUPDueDate, wantFUP)
	}
	if c.PremiumAmount == nil || c.PremiumAmount.String() != "14689" {
		t.Errorf("premium = %v", c.PremiumAmount)
	}
	if c.DueCount == nil || *c.DueCount != 2 {
		t.Errorf("due count = %v", c.DueCount)
	}
	if c.Tax == nil || c.Tax.String() != "661" {
		t.Errorf("tax = %v", c.Tax)
	}
	if c.Total == nil || c.Total.String() != "30039" {
		t.Errorf("total = %v", c.Total)
	}
	if c.Commission == nil || c.Commission.String() != "1468.9" {
		t.Errorf("commission = %v", c.Commission)
	}
	if !c.HasPremiumObservation {
		t.Error("premium-due rows must carry a premium observation")
	}
}

func TestPremiumDueExtractRejectsBadDates(t *testing.T) {
	lines := []string{
		// commencement 31/02 does not exist
		"1 319566711 P.MARIMUTHU 31/02/2020 936/21 Hly 10/2024 14689.00 2 661.00 30039.00",
	}
	s := &premiumDueStrategy{opts: Options{MinNameAlpha: 3}}
	if got := s.Extract(lines); len(got) != 0 {
		t.Errorf("invalid date produced %d candidates", len(got))
	}
}

func TestSplitPlanTerm(t *testing.T) {
	tests := []struct {
		in       string
		wantPlan string
		wantTerm int
	}{
		{"936/21", "936/21", 21},
		{"14/14", "14/14", 14},
		{"936", "936", 0},
		{"936/xx", "936/xx", 0},
	}
	for _, tt := range tests {
		plan, term := splitPlanTerm(tt.in)
		if plan != tt.wantPlan || term != tt.wantTerm {
			t.Errorf("splitPlanTerm(%q) = %q, %d", tt.in, plan, term)
		}
	}
}
