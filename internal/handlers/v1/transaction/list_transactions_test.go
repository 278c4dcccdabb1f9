package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, filter service.TransactionFilter, cursor *service.TransactionCursor) ([]ledger.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, filter, cursor)
	txs, _ := args.Get(0).([]ledger.Transaction)
	next, _ := args.Get(1).(*service.TransactionCursor)
	return txs, next, args.Error(2)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_NoCursor(t *testing.T) {
	filter, cursor, err := parseListTransactionsInput(&ListTransactionsInput{})

	assert.NoError(t, err)
	assert.Nil(t, cursor)
	assert.Equal(t, service.TransactionFilter{}, filter)
}

func TestParseListTransactionsInput_WithCursorAndFilter(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			Filter: &ListTransactionsFilter{AccountID: "acc", Type: "Expense", From: "2026-01-01T00:00:00Z"},
			Cursor: &ListTransactionsCursor{Position: 40, Limit: 10},
		},
	}

	filter, cursor, err := parseListTransactionsInput(input)

	assert.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
	assert.Equal(t, "acc", filter.AccountID)
	assert.Equal(t, ledger.TransactionTypeExpense, filter.Type)
	assert.True(t, filter.From.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, filter.To.IsZero())
}

func TestParseListTransactionsInput_InvalidFilterDate(t *testing.T) {
	_, _, err := parseListTransactionsInput(&ListTransactionsInput{
		Body: ListTransactionsBody{Filter: &ListTransactionsFilter{To: "not-a-date"}},
	})

	assert.Error(t, err)
}

func TestParseListTransactionsInput_NegativePosition(t *testing.T) {
	_, _, err := parseListTransactionsInput(&ListTransactionsInput{
		Body: ListTransactionsBody{Cursor: &ListTransactionsCursor{Position: -1, Limit: 5}},
	})

	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_SinglePage(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, service.TransactionFilter{}, (*service.TransactionCursor)(nil)).
		Return([]ledger.Transaction{{
			ID: "tx-1", AccountID: "acc", Amount: decimal.RequireFromString("-10.00"),
			Type: ledger.TransactionTypeExpense, Date: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}}, (*service.TransactionCursor)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 1)
	assert.Equal(t, "tx-1", body.Transactions[0].ID)
	assert.Equal(t, "2025-06-01T12:00:00Z", body.Transactions[0].Date)
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_MultiplePages(t *testing.T) {
	svcDefaultLimit := 20
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything, (*service.TransactionCursor)(nil)).
		Return(make([]ledger.Transaction, 2), &service.TransactionCursor{
			Position: svcDefaultLimit,
			Limit:    svcDefaultLimit,
		}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 2)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, svcDefaultLimit, body.NextCursor.Position)
	assert.Equal(t, svcDefaultLimit, body.NextCursor.Limit)
}

func TestHTTP_ListTransactions_WithCursorAndFilter(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything,
		mock.MatchedBy(func(f service.TransactionFilter) bool { return f.LabelID == "trip" }),
		mock.MatchedBy(func(c *service.TransactionCursor) bool {
			return c != nil && c.Position == 40 && c.Limit == 10
		}),
	).Return(([]ledger.Transaction)(nil), (*service.TransactionCursor)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		Filter: &ListTransactionsFilter{LabelID: "trip"},
		Cursor: &ListTransactionsCursor{Position: 40, Limit: 10},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_LimitOutOfRange(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		Cursor: &ListTransactionsCursor{Position: 0, Limit: 500},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, errors.New("boom"))

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
