package normalize

import (
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		tok     string
		want    string
		wantErr bool
	}{
		{"2640.00", "2640", false},
		{"14689.00", "14689", false},
		{"30039", "30039", false},
		{"0.50", "0.5", false},
		{"1,234.00", "", true},
		{"-5", "", true},
		{"₹100", "", true},
		{"", "", true},
		{"12.34.56", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.tok)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) err = %v, wantErr %v", tt.tok, err, tt.wantErr)
			continue
		}
		if err == nil && got.String() != tt.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.tok, got.String(), tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		tok     string
		want    time.Time
		wantErr bool
	}{
		{"16/12/2025", time.Date(2025, 12, 16, 0, 0, 0, 0, time.UTC), false},
		{"28-09-2025", time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC), false},
		{"2024-10-14", time.Date(2024, 10, 14, 0, 0, 0, 0, time.UTC), false},
		{"2024/10/14", time.Date(2024, 10, 14, 0, 0, 0, 0, time.UTC), false},
		{"10/2024", time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), false},
		{"31/02/2024", time.Time{}, true},
		{"16/13/2025", time.Time{}, true},
		{"16/12/1825", time.Time{}, true},
		{"tomorrow", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.tok)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) err = %v, wantErr %v", tt.tok, err, tt.wantErr)
			continue
		}
		if err == nil && !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}
