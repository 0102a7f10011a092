package extract

import (
	"testing"
	"time"
)

func TestClaimsExtractSurvivalBenefit(t *testing.T) {
	lines := []string{
		"Claims Due List",
		"S.No PolicyNo Type DueDate Plan Name Amount NEFT",
		"1 746503066 S.B. 16/12/2025 75 NONDICHAMY 20000.00 Y",
	}
	s := &claimsStrategy{opts: Options{MinNameAlpha: 3}}
	got := s.Extract(lines)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}

	c := got[0]
	if c.PolicyNumber != "746503066" || c.Name != "Nondichamy" {
		t.Errorf("identity = %q %q", c.PolicyNumber, c.Name)
	}
	if c.ClaimType == nil || *c.ClaimType != "S.B." {
		t.Errorf("claim type = %v", c.ClaimType)
	}
	wantDue := time.Date(2025, 12, 16, 0, 0, 0, 0, time.UTC)
	if c.DueDate == nil || !c.DueDate.Equal(wantDue) {
		t.Errorf("due date = %v", c.DueDate)
	}
	if c.ClaimAmount == nil || c.ClaimAmount.String() != "20000" {
		t.Errorf("claim amount = %v", c.ClaimAmount)
	}
	// a survival benefit says nothing about the full cover
	if c.SumAssured != nil {
		t.Errorf("sum assured = %v, want nil", c.SumAssured)
	}
}

func TestClaimsExtractMaturitySetsSumAssured(t *testing.T) {
	lines := []string{"2 744091561 MAT 05/11/2025 14 RAMYA DEVI 150000.00 N"}
	s := &claimsStrategy{opts: Options{MinNameAlpha: 3}}
	got := s.Extract(lines)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	c := got[0]
	if c.Name != "Ramya Devi" {
		t.Errorf("name = %q", c.Name)
	}
	if c.SumAssured == nil || c.SumAssured.String() != "150000" {
		t.Errorf("sum assured = %v", c.SumAssured)
	}
}

func TestClaimsExtractSkipsMalformedRows(t *testing.T) {
	lines := []string{
		"1 746503066 S.B. 31/02/2025 75 NONDICHAMY 20000.00 Y", // impossible date
		"1 74650 S.B. 16/12/2025 75 NONDICHAMY 20000.00 Y",     // short policy number
		"TOTAL 3 claims 60000.00",
	}
	s := &claimsStrategy{opts: Options{MinNameAlpha: 3}}
	if got := s.Extract(lines); len(got) != 0 {
		t.Errorf("malformed rows produced %d candidates", len(got))
	}
}
