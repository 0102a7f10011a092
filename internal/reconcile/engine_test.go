package reconcile

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rsubramani/policy-tracker/constants"
	"github.com/rsubramani/policy-tracker/internal/config"
	"github.com/rsubramani/policy-tracker/internal/dedupe"
	"github.com/rsubramani/policy-tracker/internal/entity"
	"github.com/rsubramani/policy-tracker/internal/extract"
	"github.com/rsubramani/policy-tracker/internal/repository"
)

// in-memory store, good enough for merge-rule tests

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
	c := &entity.Customer{ID: uuid.New(), Name: name, ExtractionMethod: extractionMethod, CreatedAt: time.Now()}
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
	cp.ProcessedAt = time.Now()
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
	cp.ProcessedAt = time.Now()
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

// helpers

func dec(s string) *decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return &d
}

func date(y int, mo time.Month, d int) *time.Time {
	t := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func str(s string) *string { return &s }

func newTestEngine(store *memStore) *Engine {
	return NewEngine(store, config.DefaultTracker(), nil)
}

func filenameVerdict(name string, dup bool) dedupe.Verdict {
	return dedupe.Verdict{IsDuplicate: dup, Key: name, KeyKind: dedupe.KeyFilename}
}

func TestReconcileCreatesCustomerAndPolicy(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(store)

	res, err := e.Reconcile(context.Background(), Input{
		Filename: "CM-0023170N-July.txt",
		Layout:   constants.LayoutCommission,
		Verdict:  filenameVerdict("CM-0023170N-July.txt", false),
		Candidates: []extract.Candidate{{
			Layout:        constants.LayoutCommission,
			PolicyNumber:  "744091561",
			Name:          "R Lakshmana Perumal",
			PlanType:      str("174-20"),
			PremiumAmount: dec("2640.00"),
			AgentCode:     str("0023170N"),
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != constants.RouteProcessed {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if res.CustomersCreated != 1 || res.PoliciesCreated != 1 {
		t.Errorf("created counts = %d customers, %d policies", res.CustomersCreated, res.PoliciesCreated)
	}

	p := store.policies["744091561"]
	if p == nil {
		t.Fatal("policy not stored")
	}
	if p.Status != "Active" {
		t.Errorf("status = %q", p.Status)
	}
	if p.AgentCode == nil || *p.AgentCode != "0023170N" {
		t.Errorf("agent code = %v", p.AgentCode)
	}
	cust := store.customers[p.CustomerID]
	if cust == nil || cust.Name != "R Lakshmana Perumal" {
		t.Errorf("customer = %+v", cust)
	}
	if _, logged := store.documents["CM-0023170N-July.txt"]; !logged {
		t.Error("processed document not logged")
	}
}

func TestReconcileFUPMonotonicForward(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(store)
	ctx := context.Background()

	seed := extract.Candidate{
		PolicyNumber: "319566711",
		Name:         "P.Marimuthu",
		FUPDueDate:   date(2025, time.January, 1),
	}
	if _, err := e.Reconcile(ctx, Input{Filename: "a.txt", Verdict: filenameVerdict("a.txt", false), Candidates: []extract.Candidate{seed}}); err != nil {
		t.Fatal(err)
	}

	// earlier FUP must not move the date backward
	older := seed
	older.FUPDueDate = date(2024, time.October, 1)
	res, err := e.Reconcile(ctx, Input{Filename: "b.txt", Verdict: filenameVerdict("b.txt", false), Candidates: []extract.Candidate{older}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Rows[0].Outcome != constants.RowUnchanged {
		t.Errorf("older FUP row outcome = %v", res.Rows[0].Outcome)
	}
	if got := store.policies["319566711"].FUPDueDate; !got.Equal(*date(2025, time.January, 1)) {
		t.Errorf("fup moved backward to %v", got)
	}

	// later FUP advances it
	newer := seed
	newer.FUPDueDate = date(2025, time.July, 1)
	res, err = e.Reconcile(ctx, Input{Filename: "c.txt", Verdict: filenameVerdict("c.txt", false), Candidates: []extract.Candidate{newer}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Rows[0].Outcome != constants.RowUpdated {
		t.Errorf("newer FUP row outcome = %v", res.Rows[0].Outcome)
	}
	if got := store.policies["319566711"].FUPDueDate; !got.Equal(*date(2025, time.July, 1)) {
		t.Errorf("fup = %v", got)
	}
}

func TestReconcilePremiumAlwaysTracksLatest(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(store)
	ctx := context.Background()

	first := extract.Candidate{PolicyNumber: "746503066", Name: "Nondichamy", PremiumAmount: dec("5000.00")}
	if _, err := e.Reconcile(ctx, Input{Filename: "a.txt", Verdict: filenameVerdict("a.txt", false), Candidates: []extract.Candidate{first}}); err != nil {
		t.Fatal(err)
	}

	lower := first
	lower.PremiumAmount = dec("4500.00")
	res, err := e.Reconcile(ctx, Input{Filename: "b.txt", Verdict: filenameVerdict("b.txt", false), Candidates: []extract.Candidate{lower}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Rows[0].Outcome != constants.RowUpdated {
		t.Errorf("row outcome = %v", res.Rows[0].Outcome)
	}
	if got := *store.policies["746503066"].PremiumAmount; got != 4500 {
		t.Errorf("premium = %v, want 4500", got)
	}
}

func TestReconcileAgentCodeFillsOnce(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(store)
	ctx := context.Background()

	first := extract.Candidate{PolicyNumber: "746503066", Name: "Nondichamy", AgentCode: str("0023170N")}
	if _, err := e.Reconcile(ctx, Input{Filename: "a.txt", Verdict: filenameVerdict("a.txt", false), Candidates: []extract.Candidate{first}}); err != nil {
		t.Fatal(err)
	}

	other := first
	other.AgentCode = str("9999999N")
	res, err := e.Reconcile(ctx, Input{Filename: "b.txt", Verdict: filenameVerdict("b.txt", false), Candidates: []extract.Candidate{other}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Rows[0].Outcome != constants.RowUnchanged {
		t.Errorf("row outcome = %v", res.Rows[0].Outcome)
	}
	if got := *store.policies["746503066"].AgentCode; got != "0023170N" {
		t.Errorf("agent code replaced: %q", got)
	}
}

func TestReconcileSumAssuredScaling(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"lacs band", "5", 500000},
		{"thousands band", "50", 50000},
		{"already absolute", "150000", 150000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			e := newTestEngine(store)
			c := extract.Candidate{PolicyNumber: "744091561", Name: "Ramya Devi", SumAssured: dec(tt.raw)}
			if _, err := e.Reconcile(context.Background(), Input{Filename: "a.txt", Verdict: filenameVerdict("a.txt", false), Candidates: []extract.Candidate{c}}); err != nil {
				t.Fatal(err)
			}
			if got := *store.policies["744091561"].SumAssured; got != tt.want {
				t.Errorf("sum assured = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReconcilePremiumObservationsAppend(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(store)
	ctx := context.Background()

	obs := extract.Candidate{
		PolicyNumber:          "319566711",
		Name:                  "P.Marimuthu",
		FUPDueDate:            date(2024, time.October, 1),
		PremiumAmount:         dec("14689.00"),
		DueCount:              intp(2),
		Tax:                   dec("661.00"),
		Total:                 dec("30039.00"),
		HasPremiumObservation: true,
	}
	if _, err := e.Reconcile(ctx, Input{Filename: "premium-due-oct.txt", Verdict: filenameVerdict("premium-due-oct.txt", false), Candidates: []extract.Candidate{obs}}); err != nil {
		t.Fatal(err)
	}
	// same observation again: policy rows unchanged, history still grows
	res, err := e.Reconcile(ctx, Input{Filename: "premium-due-oct-2.txt", Verdict: filenameVerdict("premium-due-oct-2.txt", false), Candidates: []extract.Candidate{obs}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Rows[0].Outcome != constants.RowUnchanged {
		t.Errorf("row outcome = %v", res.Rows[0].Outcome)
	}
	if len(store.premiums) != 2 {
		t.Errorf("premium history length = %d, want 2", len(store.premiums))
	}
	if store.premiums[0].SourceDocument != "premium-due-oct.txt" {
		t.Errorf("source document = %q", store.premiums[0].SourceDocument)
	}
}

func TestReconcileNoCandidatesRoutesToError(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(store)

	res, err := e.Reconcile(context.Background(), Input{
		Filename: "empty.txt",
		Verdict:  filenameVerdict("empty.txt", false),
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != constants.RouteError {
		t.Errorf("outcome = %v", res.Outcome)
	}
	if len(store.documents) != 0 {
		t.Error("errored document must not be logged")
	}
	if len(store.policies) != 0 || len(store.customers) != 0 {
		t.Error("errored document must write nothing")
	}
}

func TestReconcileDuplicateWithNoNewData(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(store)
	ctx := context.Background()

	c := extract.Candidate{PolicyNumber: "744091561", Name: "Ramya Devi", PremiumAmount: dec("2640.00")}
	if _, err := e.Reconcile(ctx, Input{Filename: "a.txt", Verdict: filenameVerdict("a.txt", false), Candidates: []extract.Candidate{c}}); err != nil {
		t.Fatal(err)
	}

	// detector flags the re-drop; nothing in it is new
	res, err := e.Reconcile(ctx, Input{Filename: "a.txt", Verdict: filenameVerdict("a.txt", true), Candidates: []extract.Candidate{c}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != constants.RouteDuplicate {
		t.Errorf("outcome = %v", res.Outcome)
	}

	// a flagged duplicate that still carries new data reprocesses
	newer := c
	newer.PremiumAmount = dec("2700.00")
	res, err = e.Reconcile(ctx, Input{Filename: "a.txt", Verdict: filenameVerdict("a.txt", true), Candidates: []extract.Candidate{newer}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != constants.RouteProcessed {
		t.Errorf("outcome = %v", res.Outcome)
	}
}

func TestReconcileAllExistingPoliciesRouteDuplicate(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(store)
	ctx := context.Background()

	c := extract.Candidate{
		PolicyNumber:  "744091561",
		Name:          "Ramya Devi",
		PremiumAmount: dec("2640.00"),
	}
	if _, err := e.Reconcile(ctx, Input{Filename: "statement-july.txt", Verdict: filenameVerdict("statement-july.txt", false), Candidates: []extract.Candidate{c}}); err != nil {
		t.Fatal(err)
	}

	// same content under a novel specific filename: the detector has never
	// seen the key, but every policy already matches the store
	res, err := e.Reconcile(ctx, Input{Filename: "statement-july-copy.txt", Verdict: filenameVerdict("statement-july-copy.txt", false), Candidates: []extract.Candidate{c}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != constants.RouteDuplicate {
		t.Errorf("outcome = %v, want %v", res.Outcome, constants.RouteDuplicate)
	}
	if res.Rows[0].Outcome != constants.RowUnchanged {
		t.Errorf("row outcome = %v", res.Rows[0].Outcome)
	}
	// the novel key still gets logged so the next drop is caught by the
	// detector itself
	if _, logged := store.documents["statement-july-copy.txt"]; !logged {
		t.Error("novel filename of a duplicate document not logged")
	}
}

func TestReconcileLogsHashForGenericNames(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(store)

	v := dedupe.Verdict{
		Key:       "deadbeef",
		KeyKind:   dedupe.KeyHash,
		HashHex:   "deadbeef",
		PrefixLen: 1000,
	}
	c := extract.Candidate{PolicyNumber: "744091561", Name: "Ramya Devi"}
	if _, err := e.Reconcile(context.Background(), Input{Filename: "premium-due-list.txt", Layout: constants.LayoutPremiumDue, Verdict: v, Candidates: []extract.Candidate{c}}); err != nil {
		t.Fatal(err)
	}

	entry := store.documents["deadbeef"]
	if entry == nil {
		t.Fatal("document not logged under its hash")
	}
	if entry.ContentHash == nil || *entry.ContentHash != "deadbeef" {
		t.Errorf("content hash = %v", entry.ContentHash)
	}
	if entry.HashAlgo == nil || *entry.HashAlgo != "sha256" {
		t.Errorf("hash algo = %v", entry.HashAlgo)
	}
	if entry.DocumentType != string(constants.LayoutPremiumDue) {
		t.Errorf("document type = %q", entry.DocumentType)
	}
}

func intp(i int) *int { return &i }
