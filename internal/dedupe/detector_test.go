package dedupe

import (
	"context"
	"strings"
	"testing"
)

type fakeLookup struct {
	seen map[string]bool
}

func (f *fakeLookup) Seen(_ context.Context, key string) (bool, error) {
	return f.seen[key], nil
}

var patterns = []string{
	"claims-due-list",
	"claim-list",
	"premium-due",
	"premium-list",
	"policy-list",
	"customer-list",
}

func TestIsGenericFilename(t *testing.T) {
	d := NewDetector(patterns, DefaultPrefixLen, &fakeLookup{}, nil)
	tests := []struct {
		filename string
		want     bool
	}{
		{"premium-due-list.txt", true},
		{"Premium_Due_List.txt", true},
		{"PREMIUM DUE OCT.txt", true},
		{"claims-due-list.txt", true},
		{"customer-list-2025.txt", true},
		{"CM-0023170N-July.txt", false},
		{"statement-744091561.txt", false},
	}
	for _, tt := range tests {
		if got := d.IsGenericFilename(tt.filename); got != tt.want {
			t.Errorf("IsGenericFilename(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestContentHashDeterministic(t *testing.T) {
	text := "Premium Due List\n1 319566711 P.MARIMUTHU ..."
	if ContentHash(text, 1000) != ContentHash(text, 1000) {
		t.Fatal("same text hashed differently")
	}
	if ContentHash(text, 1000) == ContentHash(text+"x", 1000) {
		t.Error("distinct short texts collided")
	}
}

func TestContentHashOnlyCoversWindow(t *testing.T) {
	head := strings.Repeat("a", 1000)
	a := ContentHash(head+"tail one", 1000)
	b := ContentHash(head+"completely different tail", 1000)
	if a != b {
		t.Error("text beyond the window changed the hash")
	}
	c := ContentHash("b"+head[1:]+"tail one", 1000)
	if a == c {
		t.Error("text inside the window did not change the hash")
	}
}

func TestContentHashTrimsWindow(t *testing.T) {
	if ContentHash("  report  ", 1000) != ContentHash("report", 1000) {
		t.Error("surrounding whitespace changed the hash")
	}
}

func TestInspectGenericNameKeysByHash(t *testing.T) {
	text := "Premium Due List for October"
	hash := ContentHash(text, 1000)
	d := NewDetector(patterns, 1000, &fakeLookup{seen: map[string]bool{hash: true}}, nil)

	v, err := d.Inspect(context.Background(), "premium-due-list.txt", text)
	if err != nil {
		t.Fatal(err)
	}
	if v.KeyKind != KeyHash || v.Key != hash || v.HashHex != hash {
		t.Errorf("verdict = %+v", v)
	}
	if !v.IsDuplicate {
		t.Error("previously hashed content not flagged as duplicate")
	}

	// same generic name, different reporting period
	v2, err := d.Inspect(context.Background(), "premium-due-list.txt", "Premium Due List for November")
	if err != nil {
		t.Fatal(err)
	}
	if v2.IsDuplicate {
		t.Error("fresh content flagged as duplicate despite recurring name")
	}
}

func TestInspectSpecificNameKeysByFilename(t *testing.T) {
	d := NewDetector(patterns, 1000, &fakeLookup{seen: map[string]bool{"CM-0023170N-July.txt": true}}, nil)

	v, err := d.Inspect(context.Background(), "CM-0023170N-July.txt", "any content at all")
	if err != nil {
		t.Fatal(err)
	}
	if v.KeyKind != KeyFilename || v.Key != "CM-0023170N-July.txt" {
		t.Errorf("verdict = %+v", v)
	}
	if !v.IsDuplicate {
		t.Error("seen filename not flagged as duplicate")
	}
	if v.HashHex != "" {
		t.Errorf("filename-keyed verdict carries a hash: %q", v.HashHex)
	}
}
