package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SumAssuredRule is one plausibility band for stored sum-assured values.
// Extracted values v with Min <= v < MaxExclusive are multiplied by Factor
// before storage. When PolicyPrefixes is non-empty the band applies only to
// policy numbers starting with one of the prefixes.
type SumAssuredRule struct {
	Min            float64  `yaml:"min"`
	MaxExclusive   float64  `yaml:"max_exclusive"`
	Factor         float64  `yaml:"factor"`
	PolicyPrefixes []string `yaml:"policy_prefixes,omitempty"`
}

// Tracker holds the engine tunables that vary per document source.
type Tracker struct {
	// Filenames matching any of these substrings (case/separator-insensitive)
	// recur across unrelated reporting periods and are deduplicated by
	// content hash instead of by name.
	GenericFilenamePatterns []string `yaml:"generic_filename_patterns"`
	// Number of leading characters of extracted text fed to the content hash.
	ContentHashPrefixLen int `yaml:"content_hash_prefix_len"`
	// Minimum alphabetic characters for an extracted span to count as a name.
	MinNameAlpha int `yaml:"min_name_alpha"`
	// Plausibility bands guarding against unit-of-thousands misreads.
	SumAssuredRules []SumAssuredRule `yaml:"sum_assured_rules"`
}

// DefaultTracker returns the tunables observed in the source reports.
func DefaultTracker() Tracker {
	return Tracker{
		GenericFilenamePatterns: []string{
			"claims-due-list",
			"claim-list",
			"premium-due",
			"premium-list",
			"policy-list",
			"customer-list",
		},
		ContentHashPrefixLen: 1000,
		MinNameAlpha:         3,
		SumAssuredRules: []SumAssuredRule{
			// values quoted in lacs
			{Min: 0, MaxExclusive: 10, Factor: 100000},
			// values quoted in thousands
			{Min: 10, MaxExclusive: 100, Factor: 1000},
		},
	}
}

// LoadTracker reads the YAML tunables file, filling gaps from defaults.
// A missing file is not an error; defaults apply.
func LoadTracker(path string) (Tracker, error) {
	t := DefaultTracker()
	if path == "" {
		return t, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("read tracker config: %w", err)
	}
	var loaded Tracker
	if err := yaml.Unmarshal(b, &loaded); err != nil {
		return t, fmt.Errorf("parse tracker config: %w", err)
	}
	if len(loaded.GenericFilenamePatterns) > 0 {
		t.GenericFilenamePatterns = loaded.GenericFilenamePatterns
	}
	if loaded.ContentHashPrefixLen > 0 {
		t.ContentHashPrefixLen = loaded.ContentHashPrefixLen
	}
	if loaded.MinNameAlpha > 0 {
		t.MinNameAlpha = loaded.MinNameAlpha
	}
	if len(loaded.SumAssuredRules) > 0 {
		t.SumAssuredRules = loaded.SumAssuredRules
	}
	return t, nil
}
