package report

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/report"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) BalanceSheet(ctx context.Context) report.BalanceSheet {
	return m.Called(ctx).Get(0).(report.BalanceSheet)
}

func (m *mockReportService) BudgetSummary(ctx context.Context, month report.Month) report.BudgetSummary {
	return m.Called(ctx, month).Get(0).(report.BudgetSummary)
}

func (m *mockReportService) NetEarnings(ctx context.Context, month report.Month) report.NetEarnings {
	return m.Called(ctx, month).Get(0).(report.NetEarnings)
}

func (m *mockReportService) LabelsSummary(ctx context.Context, month report.Month) report.LabelsSummary {
	return m.Called(ctx, month).Get(0).(report.LabelsSummary)
}

func (m *mockReportService) Dashboard(ctx context.Context, today time.Time) report.Dashboard {
	return m.Called(ctx, today).Get(0).(report.Dashboard)
}

func (m *mockReportService) ItemSummary(ctx context.Context, month report.Month, categoryID string) report.ItemSummary {
	return m.Called(ctx, month, categoryID).Get(0).(report.ItemSummary)
}

func (m *mockReportService) Search(ctx context.Context, query string) report.SearchResult {
	return m.Called(ctx, query).Get(0).(report.SearchResult)
}

func (m *mockReportService) Insights(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

func newTestAPI(t *testing.T, svc *mockReportService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	h := NewHandler(svc)
	h.Now = func() time.Time { return time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC) }
	h.Register(api)
	return api
}

func TestHTTP_BalanceSheet(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("BalanceSheet", mock.Anything).Return(report.BalanceSheet{
		Assets:      []report.BalanceSheetGroup{},
		Liabilities: []report.BalanceSheetGroup{},
		Orphans:     []ledger.Account{},
		NetWorth:    decimal.NewFromInt(750),
	})

	resp := newTestAPI(t, mockSvc).Get("/v1/report/balance-sheet")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		NetWorth string `json:"netWorth"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "750", body.NetWorth)
}

func TestHTTP_Budget_DefaultsToCurrentMonth(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("BudgetSummary", mock.Anything, report.Month{Year: 2026, Month: time.April}).
		Return(report.BudgetSummary{Month: "2026-04"})

	resp := newTestAPI(t, mockSvc).Get("/v1/report/budget")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_MonthQuery(t *testing.T) {
	mockSvc := new(mockReportService)
	march := report.Month{Year: 2026, Month: time.March}
	mockSvc.On("NetEarnings", mock.Anything, march).Return(report.NetEarnings{})
	mockSvc.On("LabelsSummary", mock.Anything, march).Return(report.LabelsSummary{Month: "2026-03", Labels: []report.LabelTotal{}})
	api := newTestAPI(t, mockSvc)

	assert.Equal(t, http.StatusOK, api.Get("/v1/report/net-earnings?month=2026-03").Code)
	assert.Equal(t, http.StatusOK, api.Get("/v1/report/labels?month=2026-03").Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_MonthQuery_Invalid(t *testing.T) {
	mockSvc := new(mockReportService)
	api := newTestAPI(t, mockSvc)

	assert.Equal(t, http.StatusUnprocessableEntity, api.Get("/v1/report/budget?month=March").Code)
	assert.Equal(t, http.StatusBadRequest, api.Get("/v1/report/budget?month=2026-13").Code)
	mockSvc.AssertNotCalled(t, "BudgetSummary")
}

func TestHTTP_Dashboard(t *testing.T) {
	mockSvc := new(mockReportService)
	now := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)
	mockSvc.On("Dashboard", mock.Anything, now).Return(report.Dashboard{Date: "2026-04-15", DailyAverage: decimal.NewFromInt(20)})
	mockSvc.On("Dashboard", mock.Anything, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)).Return(report.Dashboard{Date: "2026-03-09"})
	api := newTestAPI(t, mockSvc)

	resp := api.Get("/v1/report/dashboard")
	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Date         string `json:"date"`
		DailyAverage string `json:"dailyAverage"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2026-04-15", body.Date)
	assert.Equal(t, "20", body.DailyAverage)

	assert.Equal(t, http.StatusOK, api.Get("/v1/report/dashboard?day=2026-03-09").Code)
	assert.Equal(t, http.StatusBadRequest, api.Get("/v1/report/dashboard?day=2026-02-30").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, api.Get("/v1/report/dashboard?day=yesterday").Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Items(t *testing.T) {
	mockSvc := new(mockReportService)
	march := report.Month{Year: 2026, Month: time.March}
	mockSvc.On("ItemSummary", mock.Anything, march, "food").Return(report.ItemSummary{
		Month:        "2026-03",
		Expense:      []report.Item{{ID: "food", Name: "Food", Total: decimal.NewFromInt(-200), Share: 100}},
		Income:       []report.Item{},
		CategoryID:   "food",
		Transactions: []ledger.Transaction{},
	})

	resp := newTestAPI(t, mockSvc).Get("/v1/report/items?month=2026-03&category=food")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Expense []struct {
			ID    string `json:"id"`
			Total string `json:"total"`
		} `json:"expense"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Expense, 1)
	assert.Equal(t, "-200", body.Expense[0].Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Search(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("Search", mock.Anything, "an uong").Return(report.SearchResult{
		Categories: []ledger.Category{{ID: "food", Name: "Ăn uống"}},
	})

	resp := newTestAPI(t, mockSvc).Get("/v1/search?q=an%20uong")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Categories []ledger.Category `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Categories, 1)
	assert.Equal(t, "food", body.Categories[0].ID)
}

func TestHTTP_Insights(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("Insights", mock.Anything).Return("Spend less on coffee.")

	resp := newTestAPI(t, mockSvc).Post("/v1/report/insights")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Spend less on coffee.", body.Text)
}
