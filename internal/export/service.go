package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rsubramani/policy-tracker/internal/entity"
	"github.com/rsubramani/policy-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	store  repository.Store
	logger *slog.Logger
}

func NewService(store repository.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// ExportPoliciesXLSX returns an XLSX workbook with one sheet of policies and
// one sheet of their premium history, ordered by policy number.
func (s *Service) ExportPoliciesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	policies, err := s.store.Policies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query policies: %w", err)
	}

	f := excelize.NewFile()
	const policySheet = "Policies"
	const premiumSheet = "Premium Records"

	// excelize creates "Sheet1" by default; rename it for the first sheet
	if err := f.SetSheetName("Sheet1", policySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(premiumSheet); err != nil {
		return nil, err
	}
	activeIndex, _ := f.GetSheetIndex(policySheet)
	f.SetActiveSheet(activeIndex)

	if err := s.writePolicySheet(ctx, f, policySheet, policies); err != nil {
		return nil, err
	}
	premiumRows, err := s.writePremiumSheet(ctx, f, premiumSheet, policies)
	if err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"policies", len(policies),
		"premium_records", premiumRows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writePolicySheet(ctx context.Context, f *excelize.File, sheet string, policies []*entity.Policy) error {
	headers := []string{
		"Policy No",
		"Customer",
		"Agent Code",
		"Plan Type",
		"Commencement",
		"Mode",
		"FUP Due",
		"Sum Assured",
		"Premium",
		"Term",
		"Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range policies {
		customerName := ""
		if cust, err := s.store.Customers.Get(ctx, p.CustomerID); err == nil && cust != nil {
			customerName = cust.Name
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, p.PolicyNumber)
		write(2, customerName)
		write(3, strOrEmpty(p.AgentCode))
		write(4, strOrEmpty(p.PlanType))
		write(5, dateOrEmpty(p.CommencementDate))
		write(6, strOrEmpty(p.PaymentMode))
		write(7, dateOrEmpty(p.FUPDueDate))
		write(8, floatOrEmpty(p.SumAssured))
		write(9, floatOrEmpty(p.PremiumAmount))
		write(10, intOrEmpty(p.PolicyTerm))
		write(11, p.Status)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "D", 12)
	_ = f.SetColWidth(sheet, "E", "G", 14)
	_ = f.SetColWidth(sheet, "H", "I", 14)
	return nil
}

func (s *Service) writePremiumSheet(ctx context.Context, f *excelize.File, sheet string, policies []*entity.Policy) (int, error) {
	headers := []string{
		"Policy No",
		"Due Date",
		"Amount",
		"GST",
		"Total",
		"Due Count",
		"Agent Code",
		"Source Document",
		"Processed At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range policies {
		recs, err := s.store.Premiums.ListByPolicy(ctx, p.ID)
		if err != nil {
			return 0, fmt.Errorf("query premium records for %s: %w", p.PolicyNumber, err)
		}
		for _, r := range recs {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
			write(1, p.PolicyNumber)
			write(2, dateOrEmpty(r.DueDate))
			write(3, floatOrEmpty(r.Amount))
			write(4, floatOrEmpty(r.Tax))
			write(5, floatOrEmpty(r.Total))
			write(6, intOrEmpty(r.DueCount))
			write(7, strOrEmpty(r.AgentCode))
			write(8, r.SourceDocument)
			write(9, r.ProcessedAt.Format("2006-01-02 15:04:05"))
			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "E", 12)
	_ = f.SetColWidth(sheet, "H", "H", 40)
	_ = f.SetColWidth(sheet, "I", "I", 20)
	return row - 2, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func floatOrEmpty(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func intOrEmpty(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
