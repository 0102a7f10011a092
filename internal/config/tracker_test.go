package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTrackerMissingFileUsesDefaults(t *testing.T) {
	got, err := LoadTracker(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultTracker()
	if got.ContentHashPrefixLen != want.ContentHashPrefixLen {
		t.Errorf("prefix len = %d", got.ContentHashPrefixLen)
	}
	if len(got.GenericFilenamePatterns) != len(want.GenericFilenamePatterns) {
		t.Errorf("patterns = %v", got.GenericFilenamePatterns)
	}
	if len(got.SumAssuredRules) != 2 {
		t.Errorf("rules = %v", got.SumAssuredRules)
	}
}

func TestLoadTrackerMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	body := `
content_hash_prefix_len: 500
sum_assured_rules:
  - min: 0
    max_exclusive: 10
    factor: 100000
    policy_prefixes: ["74"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadTracker(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.ContentHashPrefixLen != 500 {
		t.Errorf("prefix len = %d, want 500", got.ContentHashPrefixLen)
	}
	// untouched keys keep their defaults
	if got.MinNameAlpha != DefaultTracker().MinNameAlpha {
		t.Errorf("min name alpha = %d", got.MinNameAlpha)
	}
	if len(got.SumAssuredRules) != 1 || got.SumAssuredRules[0].PolicyPrefixes[0] != "74" {
		t.Errorf("rules = %+v", got.SumAssuredRules)
	}
}

func TestLoadTrackerRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	if err := os.WriteFile(path, []byte("content_hash_prefix_len: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTracker(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadAgents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.json")
	body := `[
  {"code": "0023170N", "name": "S. Rajendran", "branch_code": "731", "active": true},
  {"code": "0045512N", "name": "K. Meena"}
]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	agents, err := LoadAgents(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(agents) != 2 {
		t.Fatalf("got %d agents", len(agents))
	}
	if agents[0].Code != "0023170N" || agents[0].BranchCode == nil || *agents[0].BranchCode != "731" {
		t.Errorf("agent[0] = %+v", agents[0])
	}
	if !agents[1].Active {
		t.Error("active must default to true")
	}
}

func TestLoadAgentsRejectsInvalidShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.json")
	if err := os.WriteFile(path, []byte(`[{"name": "missing code"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAgents(path); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestLoadAgentsMissingFileIsEmpty(t *testing.T) {
	agents, err := LoadAgents(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if agents != nil {
		t.Errorf("agents = %v, want nil", agents)
	}
}
