// Package ingest handles the document folders: discovering incoming
// extracts, loading their text, and moving them to their routed destination.
package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rsubramani/policy-tracker/constants"
)

// Document is one incoming file with its extracted text loaded.
type Document struct {
	Path     string
	Filename string
	Text     string
}

// AllowedExt checks if a file extension is in the allowed set (txt/pdf).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// Load reads one document's text. Plain-text extracts are read directly;
// PDFs are read through their text sidecar (same name, .txt extension),
// produced upstream by the text-extraction step.
func Load(path string) (Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Document{}, err
	}
	ext := constants.NormalizeExt(filepath.Ext(abs))
	if !AllowedExt(ext) {
		return Document{}, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	textPath := abs
	if ext == "pdf" {
		textPath = strings.TrimSuffix(abs, filepath.Ext(abs)) + ".txt"
	}
	b, err := os.ReadFile(textPath)
	if err != nil {
		if ext == "pdf" && os.IsNotExist(err) {
			return Document{}, fmt.Errorf("no text sidecar for %s", filepath.Base(abs))
		}
		return Document{}, err
	}

	return Document{
		Path:     abs,
		Filename: filepath.Base(abs),
		Text:     string(b),
	}, nil
}

// Failure is a file the scan found but could not load, kept with its path
// so the caller can still route it to the errors folder.
type Failure struct {
	Path     string
	Filename string
	Err      error
}

// Scan walks root and loads every allowed, non-hidden document.
// A single unreadable file is reported in the second return value and does
// not abort the scan.
func Scan(root string) ([]Document, []Failure, error) {
	if strings.TrimSpace(root) == "" {
		return nil, nil, fmt.Errorf("root path is required")
	}

	var docs []Document
	var failures []Failure

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			failures = append(failures, Failure{Path: path, Filename: filepath.Base(path), Err: walkErr})
			return nil
		}
		if IsHidden(path) {
			if d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(constants.NormalizeExt(filepath.Ext(path))) {
			return nil
		}

		doc, err := Load(path)
		if err != nil {
			failures = append(failures, Failure{Path: path, Filename: filepath.Base(path), Err: err})
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return docs, failures, fmt.Errorf("walk: %w", err)
	}
	return docs, failures, nil
}
