package service

import (
	"context"
	"time"

	"github.com/carson-networks/finance-ledger/internal/insights"
	"github.com/carson-networks/finance-ledger/internal/report"
)

// ReportService derives read-only views from the current snapshot.
type ReportService struct {
	operator ILedgerOperator
	advisor  *insights.Advisor
}

func NewReportService(op ILedgerOperator, advisor *insights.Advisor) *ReportService {
	return &ReportService{operator: op, advisor: advisor}
}

func (s *ReportService) BalanceSheet(_ context.Context) report.BalanceSheet {
	return report.BuildBalanceSheet(s.operator.Snapshot())
}

func (s *ReportService) BudgetSummary(_ context.Context, month report.Month) report.BudgetSummary {
	return report.BuildBudgetSummary(s.operator.Snapshot(), month)
}

func (s *ReportService) NetEarnings(_ context.Context, month report.Month) report.NetEarnings {
	return report.BuildNetEarnings(s.operator.Snapshot(), month)
}

func (s *ReportService) LabelsSummary(_ context.Context, month report.Month) report.LabelsSummary {
	return report.BuildLabelsSummary(s.operator.Snapshot(), month)
}

func (s *ReportService) Dashboard(_ context.Context, today time.Time) report.Dashboard {
	return report.BuildDashboard(s.operator.Snapshot(), today)
}

func (s *ReportService) ItemSummary(_ context.Context, month report.Month, categoryID string) report.ItemSummary {
	return report.BuildItemSummary(s.operator.Snapshot(), month, categoryID)
}

func (s *ReportService) Search(_ context.Context, query string) report.SearchResult {
	return report.Search(s.operator.Snapshot(), query)
}

// Insights asks the configured model about the current snapshot.
func (s *ReportService) Insights(ctx context.Context) string {
	return s.advisor.Insights(ctx, s.operator.Snapshot())
}
