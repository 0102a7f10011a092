package reconcile

import (
	"testing"

	"github.com/rsubramani/policy-tracker/internal/config"
)

func TestScaleSumAssured(t *testing.T) {
	rules := config.DefaultTracker().SumAssuredRules
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"lacs", 2, 200000},
		{"lacs upper edge", 9.5, 950000},
		{"thousands", 10, 10000},
		{"thousands upper", 99, 99000},
		{"absolute", 100, 100},
		{"absolute large", 250000, 250000},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleSumAssured(tt.v, "744091561", rules); got != tt.want {
				t.Errorf("ScaleSumAssured(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestScaleSumAssuredPolicyPrefixes(t *testing.T) {
	rules := []config.SumAssuredRule{
		{Min: 0, MaxExclusive: 10, Factor: 100000, PolicyPrefixes: []string{"74"}},
	}
	if got := ScaleSumAssured(5, "744091561", rules); got != 500000 {
		t.Errorf("prefixed policy not scaled: %v", got)
	}
	if got := ScaleSumAssured(5, "319566711", rules); got != 5 {
		t.Errorf("unprefixed policy scaled: %v", got)
	}
}
