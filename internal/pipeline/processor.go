// Package pipeline coordinates one document's trip through classification,
// duplicate inspection, extraction and reconciliation, and runs batches of
// documents against a folder.
package pipeline

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/rsubramani/policy-tracker/constants"
	"github.com/rsubramani/policy-tracker/internal/classify"
	"github.com/rsubramani/policy-tracker/internal/common"
	"github.com/rsubramani/policy-tracker/internal/dedupe"
	"github.com/rsubramani/policy-tracker/internal/extract"
	"github.com/rsubramani/policy-tracker/internal/ingest"
	"github.com/rsubramani/policy-tracker/internal/reconcile"
)

// reAgentCode finds a seven-digit agent code with its branch suffix
// embedded in a report filename, e.g. premium-due-0023170N.txt.
var reAgentCode = regexp.MustCompile(`(\d{7}N)`)

// DocumentOutcome is the per-document result surfaced in batch reports.
type DocumentOutcome struct {
	Filename string                   `json:"filename"`
	Layout   constants.DocumentLayout `json:"layout"`
	Outcome  constants.RouteOutcome   `json:"outcome"`
	Reason   string                   `json:"reason"`

	Rows             int `json:"rows"`
	CustomersCreated int `json:"customers_created"`
	PoliciesCreated  int `json:"policies_created"`
	PoliciesUpdated  int `json:"policies_updated"`
	PremiumRecords   int `json:"premium_records"`
}

// Processor runs the per-document stages.
type Processor struct {
	logger   *slog.Logger
	detector *dedupe.Detector
	engine   *reconcile.Engine
	opts     extract.Options
}

func NewProcessor(logger *slog.Logger, detector *dedupe.Detector, engine *reconcile.Engine, opts extract.Options) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:   logger,
		detector: detector,
		engine:   engine,
		opts:     opts,
	}
}

// ProcessDocument classifies, inspects, extracts and reconciles one
// document. Failures land in the outcome, never in a panic or a partial
// write; the caller routes the file on the outcome alone.
func (p *Processor) ProcessDocument(ctx context.Context, doc ingest.Document) DocumentOutcome {
	out := DocumentOutcome{Filename: doc.Filename}

	sample := doc.Text
	if len(sample) > classify.SampleLen {
		sample = sample[:classify.SampleLen]
	}
	layout := classify.Classify(doc.Filename, sample)
	out.Layout = layout
	if layout == constants.LayoutUnknown {
		out.Outcome = constants.RouteError
		out.Reason = common.ErrUnrecognizedLayout.Error()
		p.logger.Warn("document not classified", "filename", doc.Filename)
		return out
	}

	verdict, err := p.detector.Inspect(ctx, doc.Filename, doc.Text)
	if err != nil {
		out.Outcome = constants.RouteError
		out.Reason = "duplicate inspection failed: " + err.Error()
		return out
	}

	strategy := extract.ForLayout(layout, p.opts)
	candidates := strategy.Extract(extract.Lines(doc.Text))
	applyAgentCode(doc.Filename, candidates)

	res, err := p.engine.Reconcile(ctx, reconcile.Input{
		Filename:   doc.Filename,
		Layout:     layout,
		Verdict:    verdict,
		Candidates: candidates,
	})
	if err != nil {
		out.Outcome = constants.RouteError
		out.Reason = "reconcile failed: " + err.Error()
		p.logger.Error("reconcile failed", "filename", doc.Filename, "error", err)
		return out
	}

	out.Outcome = res.Outcome
	out.Reason = res.Reason
	out.Rows = len(res.Rows)
	out.CustomersCreated = res.CustomersCreated
	out.PoliciesCreated = res.PoliciesCreated
	out.PoliciesUpdated = res.PoliciesUpdated
	out.PremiumRecords = res.PremiumRecords
	return out
}

// applyAgentCode stamps a filename-derived agent code onto candidates that
// did not carry one of their own.
func applyAgentCode(filename string, candidates []extract.Candidate) {
	m := reAgentCode.FindStringSubmatch(filename)
	if m == nil {
		return
	}
	code := m[1]
	for i := range candidates {
		if candidates[i].AgentCode == nil {
			candidates[i].AgentCode = &code
		}
	}
}
