// Package dedupe decides whether an incoming document has already been
// ingested. Documents with recurring generic report names are keyed by a
// content hash over the leading text, where report-specific dates and
// serials live; everything else is keyed by exact filename.
package dedupe

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
)

// HashAlgo names the digest recorded alongside every content hash, so a
// future algorithm change is detectable in the document log.
const HashAlgo = "sha256"

// DefaultPrefixLen is the leading-text window fed to the content hash.
const DefaultPrefixLen = 1000

// KeyKind tells which identity a verdict is keyed on.
type KeyKind string

const (
	KeyFilename KeyKind = "filename"
	KeyHash     KeyKind = "hash"
)

// Verdict is the outcome of duplicate inspection for one document.
type Verdict struct {
	IsDuplicate bool
	Key         string
	KeyKind     KeyKind
	HashHex     string // set for generic-name documents
	PrefixLen   int
}

// Lookup is the document-log read the detector depends on.
type Lookup interface {
	Seen(ctx context.Context, key string) (bool, error)
}

// Detector inspects documents against the document log.
type Detector struct {
	patterns  []string
	prefixLen int
	lookup    Lookup
	logger    *slog.Logger
}

func NewDetector(patterns []string, prefixLen int, lookup Lookup, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	if prefixLen <= 0 {
		prefixLen = DefaultPrefixLen
	}
	normalized := make([]string, len(patterns))
	for i, p := range patterns {
		normalized[i] = normalizeName(p)
	}
	return &Detector{
		patterns:  normalized,
		prefixLen: prefixLen,
		lookup:    lookup,
		logger:    logger,
	}
}

// Inspect computes the lookup key for a document and checks it against the
// document log. The verdict is computed once per document and threaded into
// reconciliation, so "restates known data" can be told apart from
// "unextractable data".
func (d *Detector) Inspect(ctx context.Context, filename, text string) (Verdict, error) {
	if d.IsGenericFilename(filename) {
		hash := ContentHash(text, d.prefixLen)
		seen, err := d.lookup.Seen(ctx, hash)
		if err != nil {
			return Verdict{}, fmt.Errorf("document log lookup by hash: %w", err)
		}
		d.logger.Debug("dedupe.inspect", "filename", filename, "key_kind", KeyHash, "hash", hash, "seen", seen)
		return Verdict{
			IsDuplicate: seen,
			Key:         hash,
			KeyKind:     KeyHash,
			HashHex:     hash,
			PrefixLen:   d.prefixLen,
		}, nil
	}

	seen, err := d.lookup.Seen(ctx, filename)
	if err != nil {
		return Verdict{}, fmt.Errorf("document log lookup by filename: %w", err)
	}
	d.logger.Debug("dedupe.inspect", "filename", filename, "key_kind", KeyFilename, "seen", seen)
	return Verdict{
		IsDuplicate: seen,
		Key:         filename,
		KeyKind:     KeyFilename,
	}, nil
}

// IsGenericFilename reports whether the filename matches one of the
// recurring report-name patterns, ignoring case and separator style.
func (d *Detector) IsGenericFilename(filename string) bool {
	name := normalizeName(filename)
	for _, p := range d.patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// ContentHash digests the first prefixLen characters of the extracted text.
// The window is counted in runes and trimmed of surrounding whitespace, so
// byte-identical drops always hash identically while distinct reporting
// periods diverge on the embedded dates and serials.
func ContentHash(text string, prefixLen int) string {
	if prefixLen <= 0 {
		prefixLen = DefaultPrefixLen
	}
	runes := []rune(text)
	if len(runes) > prefixLen {
		runes = runes[:prefixLen]
	}
	sample := strings.TrimSpace(string(runes))
	sum := sha256.Sum256([]byte(sample))
	return hex.EncodeToString(sum[:])
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	return s
}
