// Package reconcile merges extracted candidate records into the stored
// customer/policy/premium model under per-field merge policies, and decides
// each document's final routing outcome.
package reconcile

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rsubramani/policy-tracker/constants"
	"github.com/rsubramani/policy-tracker/internal/common"
	"github.com/rsubramani/policy-tracker/internal/config"
	"github.com/rsubramani/policy-tracker/internal/dedupe"
	"github.com/rsubramani/policy-tracker/internal/entity"
	"github.com/rsubramani/policy-tracker/internal/extract"
	"github.com/rsubramani/policy-tracker/internal/repository"
)

// NameMatcher decides whether a stored customer name and an extracted name
// refer to the same person. The default is case-insensitive equality.
type NameMatcher func(stored, extracted string) bool

func DefaultNameMatcher(stored, extracted string) bool {
	return strings.EqualFold(stored, extracted)
}

// Input is everything reconciliation needs for one document.
type Input struct {
	Filename   string
	Layout     constants.DocumentLayout
	Verdict    dedupe.Verdict
	Candidates []extract.Candidate
}

// RowResult is the per-candidate outcome.
type RowResult struct {
	PolicyNumber string
	Outcome      constants.RowOutcome
}

// Result summarizes one document's reconciliation.
type Result struct {
	Outcome constants.RouteOutcome
	Reason  string

	Rows             []RowResult
	CustomersCreated int
	PoliciesCreated  int
	PoliciesUpdated  int
	PremiumRecords   int
}

type Engine struct {
	tx     repository.TxStore
	rules  []config.SumAssuredRule
	match  NameMatcher
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Engine)

// WithNameMatcher overrides the stored-vs-extracted name comparison.
func WithNameMatcher(m NameMatcher) Option {
	return func(e *Engine) { e.match = m }
}

// WithClock overrides the engine clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(tx repository.TxStore, tracker config.Tracker, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		tx:     tx,
		rules:  tracker.SumAssuredRules,
		match:  DefaultNameMatcher,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reconcile applies one document's candidates. All writes happen inside a
// single transaction; the document-log entry is appended in that same
// transaction for processed and duplicate outcomes, so a crash can never
// leave a half-written document marked as seen.
func (e *Engine) Reconcile(ctx context.Context, in Input) (*Result, error) {
	if len(in.Candidates) == 0 {
		return &Result{
			Outcome: constants.RouteError,
			Reason:  common.ErrNoExtractableRows.Error(),
		}, nil
	}

	res := &Result{}
	err := e.tx.RunInTx(ctx, func(s repository.Store) error {
		*res = Result{}
		for _, c := range in.Candidates {
			row, err := e.applyCandidate(ctx, s, in.Filename, c, res)
			if err != nil {
				return err
			}
			res.Rows = append(res.Rows, row)
		}

		res.Outcome = constants.RouteProcessed
		res.Reason = "reconciled"
		// a document whose rows all match the store is a duplicate even
		// under a never-seen filename
		if allUnchanged(res.Rows) {
			res.Outcome = constants.RouteDuplicate
			res.Reason = "no new data"
		}
		if in.Verdict.IsDuplicate {
			// lookup key already logged on first sight
			return nil
		}
		return s.Documents.Append(ctx, documentLogEntry(in))
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("document reconciled",
		"filename", in.Filename,
		"layout", in.Layout,
		"outcome", res.Outcome,
		"rows", len(res.Rows),
		"policies_created", res.PoliciesCreated,
		"policies_updated", res.PoliciesUpdated,
		"premium_records", res.PremiumRecords)
	return res, nil
}

func (e *Engine) applyCandidate(ctx context.Context, s repository.Store, filename string, c extract.Candidate, res *Result) (RowResult, error) {
	cust, err := e.resolveCustomer(ctx, s, c.Name, res)
	if err != nil {
		return RowResult{}, err
	}

	pol, err := s.Policies.FindByNumber(ctx, c.PolicyNumber)
	if err != nil {
		return RowResult{}, err
	}

	row := RowResult{PolicyNumber: c.PolicyNumber}
	if pol == nil {
		pol, err = s.Policies.Create(ctx, e.newPolicy(cust, c))
		if err != nil {
			return RowResult{}, err
		}
		res.PoliciesCreated++
		row.Outcome = constants.RowCreated
	} else {
		upd := mergeUpdate(pol, c, e.rules)
		if upd.Empty() {
			row.Outcome = constants.RowUnchanged
		} else {
			pol, err = s.Policies.Update(ctx, pol.ID, upd)
			if err != nil {
				return RowResult{}, err
			}
			if err := s.Customers.Touch(ctx, cust.ID, e.now()); err != nil {
				return RowResult{}, err
			}
			res.PoliciesUpdated++
			row.Outcome = constants.RowUpdated
		}
	}

	if c.HasPremiumObservation {
		if _, err := s.Premiums.Append(ctx, e.premiumRecord(pol, c, filename)); err != nil {
			return RowResult{}, err
		}
		res.PremiumRecords++
	}
	return row, nil
}

func (e *Engine) resolveCustomer(ctx context.Context, s repository.Store, name string, res *Result) (*entity.Customer, error) {
	cust, err := s.Customers.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if cust != nil && !e.match(cust.Name, name) {
		cust = nil
	}
	if cust == nil {
		cust, err = s.Customers.Create(ctx, name, constants.ProvenanceLineRules)
		if err != nil {
			return nil, err
		}
		res.CustomersCreated++
	}
	return cust, nil
}

func (e *Engine) newPolicy(cust *entity.Customer, c extract.Candidate) *entity.Policy {
	p := &entity.Policy{
		PolicyNumber:     c.PolicyNumber,
		CustomerID:       cust.ID,
		AgentCode:        c.AgentCode,
		PlanType:         c.PlanType,
		PaymentMode:      c.PaymentMode,
		FUPDueDate:       c.FUPDueDate,
		PolicyTerm:       c.PolicyTerm,
		CommencementDate: c.CommencementDate,
		Status:           "Active",
		ExtractionMethod: constants.ProvenanceLineRules,
	}
	p.PremiumAmount = decFloat(c.PremiumAmount)
	if c.SumAssured != nil {
		v := ScaleSumAssured(c.SumAssured.InexactFloat64(), c.PolicyNumber, e.rules)
		p.SumAssured = &v
	}
	return p
}

func (e *Engine) premiumRecord(pol *entity.Policy, c extract.Candidate, filename string) *entity.PremiumRecord {
	return &entity.PremiumRecord{
		PolicyID:       pol.ID,
		DueDate:        c.FUPDueDate,
		Amount:         decFloat(c.PremiumAmount),
		Tax:            decFloat(c.Tax),
		Total:          decFloat(c.Total),
		DueCount:       c.DueCount,
		AgentCode:      c.AgentCode,
		SourceDocument: filename,
	}
}

func documentLogEntry(in Input) *entity.DocumentLog {
	entry := &entity.DocumentLog{
		LookupKey:    in.Verdict.Key,
		Filename:     in.Filename,
		DocumentType: string(in.Layout),
	}
	if in.Verdict.KeyKind == dedupe.KeyHash {
		hash := in.Verdict.HashHex
		algo := dedupe.HashAlgo
		prefix := in.Verdict.PrefixLen
		entry.ContentHash = &hash
		entry.HashAlgo = &algo
		entry.HashPrefixLen = &prefix
	}
	return entry
}

func allUnchanged(rows []RowResult) bool {
	for _, r := range rows {
		if r.Outcome != constants.RowUnchanged {
			return false
		}
	}
	return true
}

func decFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}
