package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rsubramani/policy-tracker/constants"
)

// Mover relocates routed documents into their outcome folder.
type Mover struct {
	ProcessedDir  string
	DuplicatesDir string
	ErrorsDir     string

	logger *slog.Logger
	now    func() time.Time
}

func NewMover(processedDir, duplicatesDir, errorsDir string, logger *slog.Logger) *Mover {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mover{
		ProcessedDir:  processedDir,
		DuplicatesDir: duplicatesDir,
		ErrorsDir:     errorsDir,
		logger:        logger,
		now:           time.Now,
	}
}

// Apply moves a document to the folder for its outcome and returns the
// destination path. Duplicates keep every drop distinguishable by getting a
// timestamp suffix; processed and errored files keep their original name.
func (m *Mover) Apply(path string, outcome constants.RouteOutcome) (string, error) {
	var dir string
	switch outcome {
	case constants.RouteProcessed:
		dir = m.ProcessedDir
	case constants.RouteDuplicate:
		dir = m.DuplicatesDir
	case constants.RouteError:
		dir = m.ErrorsDir
	default:
		return "", fmt.Errorf("unknown outcome: %q", outcome)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	name := filepath.Base(path)
	if outcome == constants.RouteDuplicate {
		name = timestamped(name, m.now())
	}
	dest := filepath.Join(dir, name)
	if _, err := os.Stat(dest); err == nil {
		// name collision in the destination folder
		dest = filepath.Join(dir, timestamped(filepath.Base(path), m.now()))
	}

	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("move %s: %w", name, err)
	}
	m.logger.Info("document routed", "file", filepath.Base(path), "outcome", outcome, "dest", dest)
	return dest, nil
}

func timestamped(name string, at time.Time) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_%s%s", stem, at.Format("20060102_150405"), ext)
}
