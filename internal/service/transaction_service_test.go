package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/operator/actions"
)

func newTestService(t *testing.T) (*TransactionService, *MockILedgerOperator) {
	t.Helper()
	op := NewMockILedgerOperator(t)
	return NewTransactionService(op), op
}

func makeTransactions(n int, date time.Time) []ledger.Transaction {
	rows := make([]ledger.Transaction, n)
	for i := range rows {
		rows[i] = ledger.Transaction{
			ID:        fmt.Sprintf("t-%d", i),
			AccountID: "acc",
			Amount:    decimal.RequireFromString("-5.00"),
			Type:      ledger.TransactionTypeExpense,
			Date:      date,
			Labels:    []string{},
		}
	}
	return rows
}

func stateWith(transactions []ledger.Transaction) *ledger.State {
	s := ledger.Empty()
	s.Transactions = transactions
	return s
}

// -- CreateTransaction tests --

func TestCreateTransaction_Success(t *testing.T) {
	svc, op := newTestService(t)
	amount := decimal.RequireFromString("42.50")

	op.EXPECT().Process(mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok && create.Data.Amount.Equal(amount) && create.Data.Note == "Groceries"
	})).RunAndReturn(func(_ context.Context, a actions.IAction) error {
		a.(*actions.CreateTransaction).Created = []ledger.Transaction{{ID: "new"}}
		return nil
	})

	created, err := svc.CreateTransaction(context.Background(), ledger.NewTransaction{
		Type:      ledger.TransactionTypeExpense,
		Amount:    amount,
		AccountID: "acc",
		Note:      "Groceries",
	})

	assert.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "new", created[0].ID)
}

func TestCreateTransaction_OperatorError(t *testing.T) {
	svc, op := newTestService(t)

	op.EXPECT().Process(mock.Anything, mock.Anything).Return(errors.New("operator: stopped"))

	created, err := svc.CreateTransaction(context.Background(), ledger.NewTransaction{})

	assert.Error(t, err)
	assert.Equal(t, "operator: stopped", err.Error())
	assert.Nil(t, created)
}

func TestMutations_DispatchActions(t *testing.T) {
	ctx := context.Background()
	cases := map[string]struct {
		call   func(s *TransactionService) error
		action actions.IAction
	}{
		"update": {
			call:   func(s *TransactionService) error { return s.UpdateTransaction(ctx, "t", ledger.TransactionPatch{Note: omit.From("x")}) },
			action: &actions.UpdateTransaction{ID: "t", Patch: ledger.TransactionPatch{Note: omit.From("x")}},
		},
		"delete":  {call: func(s *TransactionService) error { return s.DeleteTransaction(ctx, "t") }, action: &actions.DeleteTransaction{ID: "t"}},
		"restore": {call: func(s *TransactionService) error { return s.RestoreTransaction(ctx, "t") }, action: &actions.RestoreTransaction{ID: "t"}},
		"purge": {
			call:   func(s *TransactionService) error { return s.PermanentlyDeleteTransaction(ctx, "t") },
			action: &actions.PermanentlyDeleteTransaction{ID: "t"},
		},
		"empty trash": {call: func(s *TransactionService) error { return s.EmptyTrash(ctx) }, action: actions.EmptyTrash{}},
		"reset":       {call: func(s *TransactionService) error { return s.ResetTransactions(ctx) }, action: actions.ResetTransactions{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc, op := newTestService(t)
			op.EXPECT().Process(mock.Anything, tc.action).Return(nil)

			assert.NoError(t, tc.call(svc))
		})
	}
}

// -- GetTransaction tests --

func TestGetTransaction(t *testing.T) {
	svc, op := newTestService(t)
	op.EXPECT().Snapshot().Return(stateWith(makeTransactions(2, time.Now())))

	tx, err := svc.GetTransaction(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, "t-1", tx.ID)

	_, err = svc.GetTransaction(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// -- ListTransactions tests --

func TestListTransactions_NoResults(t *testing.T) {
	svc, op := newTestService(t)
	op.EXPECT().Snapshot().Return(ledger.Empty())

	txs, nextCursor, err := svc.ListTransactions(context.Background(), TransactionFilter{}, nil)

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_SinglePage(t *testing.T) {
	svc, op := newTestService(t)
	rows := makeTransactions(2, time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))
	op.EXPECT().Snapshot().Return(stateWith(rows))

	txs, nextCursor, err := svc.ListTransactions(context.Background(), TransactionFilter{}, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Nil(t, nextCursor)
	assert.Equal(t, rows[0].ID, txs[0].ID)
}

func TestListTransactions_HasNextPage(t *testing.T) {
	svc, op := newTestService(t)
	op.EXPECT().Snapshot().Return(stateWith(makeTransactions(defaultLimit+1, time.Now())))

	txs, nextCursor, err := svc.ListTransactions(context.Background(), TransactionFilter{}, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, defaultLimit, "truncated to default limit")
	require.NotNil(t, nextCursor)
	assert.Equal(t, defaultLimit, nextCursor.Position)
	assert.Equal(t, defaultLimit, nextCursor.Limit)
}

func TestListTransactions_WithCursor(t *testing.T) {
	svc, op := newTestService(t)
	op.EXPECT().Snapshot().Return(stateWith(makeTransactions(25, time.Now())))

	txs, nextCursor, err := svc.ListTransactions(context.Background(), TransactionFilter{}, &TransactionCursor{
		Position: 20,
		Limit:    2,
	})

	assert.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "t-20", txs[0].ID)
	require.NotNil(t, nextCursor)
	assert.Equal(t, 22, nextCursor.Position)
	assert.Equal(t, 2, nextCursor.Limit)
}

func TestListTransactions_LastPage(t *testing.T) {
	svc, op := newTestService(t)
	op.EXPECT().Snapshot().Return(stateWith(makeTransactions(25, time.Now())))

	txs, nextCursor, err := svc.ListTransactions(context.Background(), TransactionFilter{}, &TransactionCursor{Position: 20, Limit: 5})

	assert.NoError(t, err)
	assert.Len(t, txs, 5)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_Filter(t *testing.T) {
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	rows := []ledger.Transaction{
		{ID: "a", AccountID: "cash", CategoryID: "food", Type: ledger.TransactionTypeExpense, Date: jan, Labels: []string{"trip"}},
		{ID: "b", AccountID: "bank", ToAccountID: "cash", Type: ledger.TransactionTypeTransfer, Date: feb},
		{ID: "c", AccountID: "bank", CategoryID: "salary", Type: ledger.TransactionTypeIncome, Date: feb},
	}

	cases := map[string]struct {
		filter TransactionFilter
		want   []string
	}{
		"account matches either side": {filter: TransactionFilter{AccountID: "cash"}, want: []string{"a", "b"}},
		"category":                    {filter: TransactionFilter{CategoryID: "salary"}, want: []string{"c"}},
		"label":                       {filter: TransactionFilter{LabelID: "trip"}, want: []string{"a"}},
		"type":                        {filter: TransactionFilter{Type: ledger.TransactionTypeTransfer}, want: []string{"b"}},
		"date range":                  {filter: TransactionFilter{From: jan, To: feb}, want: []string{"a"}},
		"from is inclusive":           {filter: TransactionFilter{From: feb}, want: []string{"b", "c"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc, op := newTestService(t)
			op.EXPECT().Snapshot().Return(stateWith(rows))

			txs, _, err := svc.ListTransactions(context.Background(), tc.filter, nil)

			require.NoError(t, err)
			ids := []string{}
			for _, tx := range txs {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestListTransactions_CancelledContext(t *testing.T) {
	svc, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	txs, nextCursor, err := svc.ListTransactions(ctx, TransactionFilter{}, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTrash(t *testing.T) {
	svc, op := newTestService(t)
	s := ledger.Empty()
	s.DeletedTransactions = makeTransactions(3, time.Now())
	op.EXPECT().Snapshot().Return(s)

	assert.Len(t, svc.ListTrash(context.Background()), 3)
}
