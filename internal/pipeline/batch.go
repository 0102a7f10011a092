package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/rsubramani/policy-tracker/constants"
	"github.com/rsubramani/policy-tracker/internal/ingest"
)

// Report aggregates one batch run. All state for a run lives here; the
// batch carries nothing over between runs.
type Report struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Scanned    int `json:"scanned"`
	Processed  int `json:"processed"`
	Duplicated int `json:"duplicated"`
	Errored    int `json:"errored"`

	CustomersCreated int `json:"customers_created"`
	PoliciesCreated  int `json:"policies_created"`
	PoliciesUpdated  int `json:"policies_updated"`
	PremiumRecords   int `json:"premium_records"`

	Outcomes []DocumentOutcome `json:"outcomes"`
}

// Batch runs the processor over a folder of documents and routes each file
// on its outcome.
type Batch struct {
	logger    *slog.Logger
	processor *Processor
	mover     *ingest.Mover
}

func NewBatch(logger *slog.Logger, processor *Processor, mover *ingest.Mover) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	return &Batch{
		logger:    logger,
		processor: processor,
		mover:     mover,
	}
}

// Run scans the incoming directory and processes every document in turn.
// One document's failure is recorded in the report and never aborts the
// rest of the batch.
func (b *Batch) Run(ctx context.Context, incomingDir string) (*Report, error) {
	report := &Report{StartedAt: time.Now()}

	docs, failures, err := ingest.Scan(incomingDir)
	if err != nil {
		return nil, err
	}
	report.Scanned = len(docs) + len(failures)
	for _, f := range failures {
		report.Errored++
		report.Outcomes = append(report.Outcomes, DocumentOutcome{
			Filename: f.Filename,
			Outcome:  constants.RouteError,
			Reason:   f.Err.Error(),
		})
		if b.mover != nil {
			if _, err := b.mover.Apply(f.Path, constants.RouteError); err != nil {
				b.logger.Error("failed to route unreadable document", "filename", f.Filename, "error", err)
			}
		}
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		out := b.processor.ProcessDocument(ctx, doc)
		report.Outcomes = append(report.Outcomes, out)
		switch out.Outcome {
		case constants.RouteProcessed:
			report.Processed++
		case constants.RouteDuplicate:
			report.Duplicated++
		default:
			report.Errored++
		}
		report.CustomersCreated += out.CustomersCreated
		report.PoliciesCreated += out.PoliciesCreated
		report.PoliciesUpdated += out.PoliciesUpdated
		report.PremiumRecords += out.PremiumRecords

		if b.mover != nil {
			if _, err := b.mover.Apply(doc.Path, out.Outcome); err != nil {
				b.logger.Error("failed to route document", "filename", doc.Filename, "error", err)
			}
		}
	}

	report.FinishedAt = time.Now()
	b.logger.Info("batch finished",
		"scanned", report.Scanned,
		"processed", report.Processed,
		"duplicated", report.Duplicated,
		"errored", report.Errored)
	return report, nil
}
