package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPlainText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "premium-due-list.txt", "Premium Due List\n")

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Filename != "premium-due-list.txt" {
		t.Errorf("filename = %q", doc.Filename)
	}
	if doc.Text != "Premium Due List\n" {
		t.Errorf("text = %q", doc.Text)
	}
}

func TestLoadPDFUsesSidecar(t *testing.T) {
	dir := t.TempDir()
	pdf := writeFile(t, dir, "CM-July.pdf", "%PDF-1.4 binary junk")
	writeFile(t, dir, "CM-July.txt", "Commission Summary\n")

	doc, err := Load(pdf)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Filename != "CM-July.pdf" {
		t.Errorf("filename = %q", doc.Filename)
	}
	if doc.Text != "Commission Summary\n" {
		t.Errorf("text = %q", doc.Text)
	}
}

func TestLoadPDFWithoutSidecarFails(t *testing.T) {
	dir := t.TempDir()
	pdf := writeFile(t, dir, "CM-July.pdf", "%PDF-1.4")

	if _, err := Load(pdf); err == nil {
		t.Fatal("expected error for missing sidecar")
	}
}

func TestLoadRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "report.csv", "a,b,c")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "claims-due-list.txt", "Claims Due\n")
	writeFile(t, dir, "notes.csv", "skip me")
	writeFile(t, dir, ".hidden.txt", "skip me too")

	sub := filepath.Join(dir, "july")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "CM-July.txt", "Commission Summary\n")

	docs, failures, err := Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(failures) != 0 {
		t.Errorf("failures = %v", failures)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	names := map[string]bool{}
	for _, d := range docs {
		names[d.Filename] = true
	}
	if !names["claims-due-list.txt"] || !names["CM-July.txt"] {
		t.Errorf("scanned names = %v", names)
	}
}

func TestScanReportsLoadFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "claims-due-list.txt", "Claims Due\n")
	pdf := writeFile(t, dir, "CM-July.pdf", "%PDF-1.4")

	docs, failures, err := Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	if len(failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(failures))
	}
	if failures[0].Path != pdf || failures[0].Filename != "CM-July.pdf" {
		t.Errorf("failure = %+v", failures[0])
	}
}

func TestScanEmptyRootFails(t *testing.T) {
	if _, _, err := Scan("  "); err == nil {
		t.Fatal("expected error for empty root")
	}
}
