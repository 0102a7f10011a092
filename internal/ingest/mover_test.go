package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rsubramani/policy-tracker/constants"
)

func newTestMover(t *testing.T) (*Mover, string) {
	t.Helper()
	root := t.TempDir()
	m := NewMover(
		filepath.Join(root, "processed"),
		filepath.Join(root, "duplicates"),
		filepath.Join(root, "errors"),
		nil,
	)
	m.now = func() time.Time {
		return time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC)
	}
	return m, root
}

func TestMoverApplyProcessedKeepsName(t *testing.T) {
	m, root := newTestMover(t)
	src := writeFile(t, root, "CM-July.txt", "x")

	dest, err := m.Apply(src, constants.RouteProcessed)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(dest) != "CM-July.txt" {
		t.Errorf("dest = %q", dest)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source file still present")
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("dest missing: %v", err)
	}
}

func TestMoverApplyDuplicateAddsTimestamp(t *testing.T) {
	m, root := newTestMover(t)
	src := writeFile(t, root, "premium-due-list.txt", "x")

	dest, err := m.Apply(src, constants.RouteDuplicate)
	if err != nil {
		t.Fatal(err)
	}
	want := "premium-due-list_20250714_093000.txt"
	if filepath.Base(dest) != want {
		t.Errorf("dest = %q, want %q", filepath.Base(dest), want)
	}
}

func TestMoverApplyErrorFolder(t *testing.T) {
	m, root := newTestMover(t)
	src := writeFile(t, root, "notes.txt", "x")

	dest, err := m.Apply(src, constants.RouteError)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dest, string(filepath.Separator)+"errors"+string(filepath.Separator)) {
		t.Errorf("dest = %q, want errors folder", dest)
	}
}

func TestMoverApplyUnknownOutcome(t *testing.T) {
	m, root := newTestMover(t)
	src := writeFile(t, root, "a.txt", "x")

	if _, err := m.Apply(src, constants.RouteOutcome("weird")); err == nil {
		t.Fatal("expected error for unknown outcome")
	}
}
