package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rsubramani/policy-tracker/constants"
	"github.com/rsubramani/policy-tracker/internal/config"
	"github.com/rsubramani/policy-tracker/internal/dedupe"
	"github.com/rsubramani/policy-tracker/internal/entity"
	"github.com/rsubramani/policy-tracker/internal/extract"
	"github.com/rsubramani/policy-tracker/internal/ingest"
	"github.com/rsubramani/policy-tracker/internal/reconcile"
	"github.com/rsubramani/policy-tracker/internal/repository"
)

// minimal in-memory store backing a full processor run

type memStore struct {
	customers map[uuid.UUID]*entity.Customer
	policies  map[string]*entity.Policy
	premiums  []*entity.PremiumRecord
	documents map[string]*entity.DocumentLog
	agents    map[string]entity.Agent
}

func newMemStore() *memStore {
	return &memStore{
		customers: map[uuid.UUID]*entity.Customer{},
		policies:  map[string]*entity.Policy{},
		documents: map[string]*entity.DocumentLog{},
		agents:    map[string]entity.Agent{},
	}
}

func (m *memStore) Store() repository.Store {
	return repository.Store{
		Customers: (*memCustomers)(m),
		Policies:  (*memPolicies)(m),
		Premiums:  (*memPremiums)(m),
		Documents: (*memDocuments)(m),
		Agents:    (*memAgents)(m),
	}
}

func (m *memStore) RunInTx(_ context.Context, fn func(repository.Store) error) error {
	return fn(m.Store())
}

type memCustomers memStore

func (m *memCustomers) Get(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return m.customers[id], nil
}

func (m *memCustomers) FindByName(_ context.Context, name string) (*entity.Customer, error) {
	for _, c := range m.customers {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCustomers) Create(_ context.Context, name, extractionMethod string) (*entity.Customer, error) {
	c := &entity.Customer{ID: uuid.New(), Name: name, ExtractionMethod: extractionMethod}
	m.customers[c.ID] = c
	return c, nil
}

func (m *memCustomers) Touch(_ context.Context, id uuid.UUID, at time.Time) error {
	if c, ok := m.customers[id]; ok {
		c.UpdatedAt = at
	}
	return nil
}

type memPolicies memStore

func (m *memPolicies) FindByNumber(_ context.Context, policyNumber string) (*entity.Policy, error) {
	return m.policies[policyNumber], nil
}

func (m *memPolicies) Create(_ context.Context, p *entity.Policy) (*entity.Policy, error) {
	cp := *p
	cp.ID = uuid.New()
	m.policies[cp.PolicyNumber] = &cp
	return &cp, nil
}

func (m *memPolicies) Update(_ context.Context, id uuid.UUID, upd repository.PolicyUpdate) (*entity.Policy, error) {
	for _, p := range m.policies {
		if p.ID != id {
			continue
		}
		if upd.FUPDueDate != nil {
			p.FUPDueDate = upd.FUPDueDate
		}
		if upd.PremiumAmount != nil {
			p.PremiumAmount = upd.PremiumAmount
		}
		if upd.SumAssured != nil {
			p.SumAssured = upd.SumAssured
		}
		if upd.AgentCode != nil {
			p.AgentCode = upd.AgentCode
		}
		if upd.PlanType != nil {
			p.PlanType = upd.PlanType
		}
		if upd.PlanName != nil {
			p.PlanName = upd.PlanName
		}
		if upd.PaymentMode != nil {
			p.PaymentMode = upd.PaymentMode
		}
		if upd.PolicyTerm != nil {
			p.PolicyTerm = upd.PolicyTerm
		}
		if upd.CommencementDate != nil {
			p.CommencementDate = upd.CommencementDate
		}
		return p, nil
	}
	return nil, nil
}

func (m *memPolicies) CountByCustomer(_ context.Context, customerID uuid.UUID) (int, error) {
	n := 0
	for _, p := range m.policies {
		if p.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (m *memPolicies) List(_ context.Context) ([]*entity.Policy, error) {
	out := make([]*entity.Policy, 0, len(m.policies))
	for _, p := range m.policies {
		out = append(out, p)
	}
	return out, nil
}

type memPremiums memStore

func (m *memPremiums) Append(_ context.Context, rec *entity.PremiumRecord) (*entity.PremiumRecord, error) {
	cp := *rec
	cp.ID = uuid.New()
	m.premiums = append(m.premiums, &cp)
	return &cp, nil
}

func (m *memPremiums) ListByPolicy(_ context.Context, policyID uuid.UUID) ([]*entity.PremiumRecord, error) {
	var out []*entity.PremiumRecord
	for _, r := range m.premiums {
		if r.PolicyID == policyID {
			out = append(out, r)
		}
	}
	return out, nil
}

type memDocuments memStore

func (m *memDocuments) Seen(_ context.Context, key string) (bool, error) {
	_, ok := m.documents[key]
	return ok, nil
}

func (m *memDocuments) Append(_ context.Context, e *entity.DocumentLog) error {
	cp := *e
	cp.ID = uuid.New()
	m.documents[cp.LookupKey] = &cp
	return nil
}

type memAgents memStore

func (m *memAgents) Get(_ context.Context, code string) (*entity.Agent, error) {
	if a, ok := m.agents[code]; ok {
		return &a, nil
	}
	return nil, nil
}

func (m *memAgents) Upsert(_ context.Context, a entity.Agent) error {
	m.agents[a.Code] = a
	return nil
}

func newTestProcessor(store *memStore) *Processor {
	tracker := config.DefaultTracker()
	detector := dedupe.NewDetector(tracker.GenericFilenamePatterns, tracker.ContentHashPrefixLen, store.Store().Documents, nil)
	engine := reconcile.NewEngine(store, tracker, nil)
	return NewProcessor(nil, detector, engine, extract.Options{MinNameAlpha: tracker.MinNameAlpha})
}

const commissionText = `Commission Summary
S.No  PH Name  PolicyNo  Pln-Tm  DueDate  Premium  Commission
1 R LAKSHMANA PERUMAL 744091561 174-20 28/09/2025 2640.00 132.00
2 KUMARESAN 731200456 936-21 05/10/2025 1200.00 60.00
`

func TestProcessDocumentThenReprocessIsDuplicate(t *testing.T) {
	store := newMemStore()
	p := newTestProcessor(store)
	ctx := context.Background()
	doc := ingest.Document{Filename: "CM-0023170N-July.txt", Text: commissionText}

	first := p.ProcessDocument(ctx, doc)
	if first.Outcome != constants.RouteProcessed {
		t.Fatalf("first pass outcome = %v (%s)", first.Outcome, first.Reason)
	}
	if first.PoliciesCreated != 2 || first.CustomersCreated != 2 {
		t.Errorf("first pass created %d policies, %d customers", first.PoliciesCreated, first.CustomersCreated)
	}

	second := p.ProcessDocument(ctx, doc)
	if second.Outcome != constants.RouteDuplicate {
		t.Fatalf("second pass outcome = %v (%s)", second.Outcome, second.Reason)
	}
	if second.PoliciesCreated != 0 || second.PoliciesUpdated != 0 {
		t.Errorf("second pass wrote policies: %+v", second)
	}
	if len(store.policies) != 2 {
		t.Errorf("policy count = %d after reprocess", len(store.policies))
	}
}

func TestProcessDocumentAppliesFilenameAgentCode(t *testing.T) {
	store := newMemStore()
	p := newTestProcessor(store)

	out := p.ProcessDocument(context.Background(), ingest.Document{
		Filename: "CM-0023170N-July.txt",
		Text:     commissionText,
	})
	if out.Outcome != constants.RouteProcessed {
		t.Fatalf("outcome = %v", out.Outcome)
	}
	pol := store.policies["744091561"]
	if pol.AgentCode == nil || *pol.AgentCode != "0023170N" {
		t.Errorf("agent code = %v", pol.AgentCode)
	}
}

func TestProcessDocumentUnknownLayoutRoutesToError(t *testing.T) {
	store := newMemStore()
	p := newTestProcessor(store)

	out := p.ProcessDocument(context.Background(), ingest.Document{
		Filename: "notes.txt",
		Text:     "quarterly newsletter, nothing tabular",
	})
	if out.Outcome != constants.RouteError {
		t.Errorf("outcome = %v", out.Outcome)
	}
	if len(store.documents) != 0 {
		t.Error("unclassified document must not be logged")
	}
}

func TestProcessDocumentNoRowsRoutesToError(t *testing.T) {
	store := newMemStore()
	p := newTestProcessor(store)

	out := p.ProcessDocument(context.Background(), ingest.Document{
		Filename: "CM-empty.txt",
		Text:     "Commission Summary\nno detail rows this period\n",
	})
	if out.Outcome != constants.RouteError {
		t.Errorf("outcome = %v (%s)", out.Outcome, out.Reason)
	}
}

func TestGenericNameNewPeriodProcessesAgain(t *testing.T) {
	store := newMemStore()
	p := newTestProcessor(store)
	ctx := context.Background()

	october := ingest.Document{
		Filename: "premium-due-list.txt",
		Text: "Premium Due List October\n" +
			"1 319566711 P.MARIMUTHU 14/10/2020 936/21 Hly 10/2024 14689.00 2 661.00 30039.00\n",
	}
	november := ingest.Document{
		Filename: "premium-due-list.txt",
		Text: "Premium Due List November\n" +
			"1 319566711 P.MARIMUTHU 14/10/2020 936/21 Hly 11/2024 14689.00 1 661.00 15350.00\n",
	}

	if out := p.ProcessDocument(ctx, october); out.Outcome != constants.RouteProcessed {
		t.Fatalf("october outcome = %v (%s)", out.Outcome, out.Reason)
	}
	// same recurring filename, new period content: hash differs, processes
	out := p.ProcessDocument(ctx, november)
	if out.Outcome != constants.RouteProcessed {
		t.Fatalf("november outcome = %v (%s)", out.Outcome, out.Reason)
	}
	if got := store.policies["319566711"].FUPDueDate; got == nil || got.Month() != time.November {
		t.Errorf("fup after november = %v", got)
	}
	if len(store.premiums) != 2 {
		t.Errorf("premium history length = %d", len(store.premiums))
	}
}
