// Package report exposes the read-only ledger views.
package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-ledger/internal/logging"
	"github.com/carson-networks/finance-ledger/internal/report"
)

type MonthInput struct {
	Month string `query:"month" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Month as YYYY-MM, defaults to the current month"`
}

type DashboardInput struct {
	Day string `query:"day" pattern:"^[0-9]{4}-[0-9]{2}-[0-9]{2}$" doc:"Day as YYYY-MM-DD, defaults to today"`
}

type ItemsInput struct {
	Month      string `query:"month" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Month as YYYY-MM, defaults to the current month"`
	CategoryID string `query:"category" doc:"List the month's transactions in this category"`
}

type SearchInput struct {
	Query string `query:"q" doc:"Search text, matched case and accent insensitively"`
}

type BalanceSheetOutput struct {
	Body report.BalanceSheet
}

type BudgetOutput struct {
	Body report.BudgetSummary
}

type NetEarningsOutput struct {
	Body report.NetEarnings
}

type LabelsOutput struct {
	Body report.LabelsSummary
}

type DashboardOutput struct {
	Body report.Dashboard
}

type ItemsOutput struct {
	Body report.ItemSummary
}

type SearchOutput struct {
	Body report.SearchResult
}

type InsightsOutput struct {
	Body struct {
		Text string `json:"text" doc:"Markdown advice, or a fallback message when no model is reachable"`
	}
}

type reporter interface {
	BalanceSheet(ctx context.Context) report.BalanceSheet
	BudgetSummary(ctx context.Context, month report.Month) report.BudgetSummary
	NetEarnings(ctx context.Context, month report.Month) report.NetEarnings
	LabelsSummary(ctx context.Context, month report.Month) report.LabelsSummary
	Dashboard(ctx context.Context, today time.Time) report.Dashboard
	ItemSummary(ctx context.Context, month report.Month, categoryID string) report.ItemSummary
	Search(ctx context.Context, query string) report.SearchResult
	Insights(ctx context.Context) string
}

// Handler serves /v1/report.
type Handler struct {
	ReportService reporter
	Now           func() time.Time
}

func NewHandler(svc reporter) *Handler {
	return &Handler{ReportService: svc, Now: time.Now}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "balance-sheet",
		Method:      http.MethodGet,
		Path:        "/v1/report/balance-sheet",
		Summary:     "Balance sheet",
		Description: "Assets and liabilities by account group, with net worth.",
		Tags:        []string{"Reports"},
	}, h.balanceSheet)

	huma.Register(api, huma.Operation{
		OperationID: "budget-summary",
		Method:      http.MethodGet,
		Path:        "/v1/report/budget",
		Summary:     "Budget summary",
		Description: "Spending per outcome category against its budget for one month.",
		Tags:        []string{"Reports"},
	}, h.budget)

	huma.Register(api, huma.Operation{
		OperationID: "net-earnings",
		Method:      http.MethodGet,
		Path:        "/v1/report/net-earnings",
		Summary:     "Net earnings",
		Description: "Income and expense per category compared with the previous month.",
		Tags:        []string{"Reports"},
	}, h.netEarnings)

	huma.Register(api, huma.Operation{
		OperationID: "labels-summary",
		Method:      http.MethodGet,
		Path:        "/v1/report/labels",
		Summary:     "Labels summary",
		Description: "Signed totals per label for one month.",
		Tags:        []string{"Reports"},
	}, h.labels)

	huma.Register(api, huma.Operation{
		OperationID: "dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/report/dashboard",
		Summary:     "Dashboard",
		Description: "Daily spending, spending per category group, a three month trend and net worth history.",
		Tags:        []string{"Reports"},
	}, h.dashboard)

	huma.Register(api, huma.Operation{
		OperationID: "item-summary",
		Method:      http.MethodGet,
		Path:        "/v1/report/items",
		Summary:     "Item summary",
		Description: "Net totals per category for one month, optionally with one category's transactions.",
		Tags:        []string{"Reports"},
	}, h.items)

	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/v1/search",
		Summary:     "Search",
		Description: "Finds transactions, accounts and categories.",
		Tags:        []string{"Reports"},
	}, h.search)

	huma.Register(api, huma.Operation{
		OperationID: "insights",
		Method:      http.MethodPost,
		Path:        "/v1/report/insights",
		Summary:     "Financial insights",
		Description: "Asks the configured language model for advice on recent activity.",
		Tags:        []string{"Reports"},
	}, h.insights)
}

// month resolves the query value. The pattern tag has already rejected
// malformed values, so only an impossible month like 2026-13 fails here.
func (h *Handler) month(value string) (report.Month, error) {
	if value == "" {
		return report.MonthOf(h.Now()), nil
	}
	m, err := report.ParseMonth(value)
	if err != nil {
		return report.Month{}, huma.NewError(http.StatusBadRequest, "invalid month", err)
	}
	return m, nil
}

func (h *Handler) balanceSheet(ctx context.Context, _ *struct{}) (*BalanceSheetOutput, error) {
	return &BalanceSheetOutput{Body: h.ReportService.BalanceSheet(ctx)}, nil
}

func (h *Handler) budget(ctx context.Context, input *MonthInput) (*BudgetOutput, error) {
	m, err := h.month(input.Month)
	if err != nil {
		return nil, err
	}
	return &BudgetOutput{Body: h.ReportService.BudgetSummary(ctx, m)}, nil
}

func (h *Handler) netEarnings(ctx context.Context, input *MonthInput) (*NetEarningsOutput, error) {
	m, err := h.month(input.Month)
	if err != nil {
		return nil, err
	}
	return &NetEarningsOutput{Body: h.ReportService.NetEarnings(ctx, m)}, nil
}

func (h *Handler) labels(ctx context.Context, input *MonthInput) (*LabelsOutput, error) {
	m, err := h.month(input.Month)
	if err != nil {
		return nil, err
	}
	return &LabelsOutput{Body: h.ReportService.LabelsSummary(ctx, m)}, nil
}

func (h *Handler) dashboard(ctx context.Context, input *DashboardInput) (*DashboardOutput, error) {
	today := h.Now()
	if input.Day != "" {
		parsed, err := time.Parse(time.DateOnly, input.Day)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid day", err)
		}
		today = parsed
	}
	return &DashboardOutput{Body: h.ReportService.Dashboard(ctx, today)}, nil
}

func (h *Handler) items(ctx context.Context, input *ItemsInput) (*ItemsOutput, error) {
	m, err := h.month(input.Month)
	if err != nil {
		return nil, err
	}
	return &ItemsOutput{Body: h.ReportService.ItemSummary(ctx, m, input.CategoryID)}, nil
}

func (h *Handler) search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	result := h.ReportService.Search(ctx, input.Query)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("searchHits", result.Total())
	}
	return &SearchOutput{Body: result}, nil
}

func (h *Handler) insights(ctx context.Context, _ *struct{}) (*InsightsOutput, error) {
	var stopTimer func()
	if logData := logging.GetLogData(ctx); logData != nil {
		stopTimer = logData.AddTiming("insightsMs")
	}
	out := &InsightsOutput{}
	out.Body.Text = h.ReportService.Insights(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	return out, nil
}
