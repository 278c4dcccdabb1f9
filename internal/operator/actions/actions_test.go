package actions

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

type fixedIDs struct{ n int }

func (f *fixedIDs) NewID() string {
	f.n++
	return "new-" + strconv.Itoa(f.n)
}

func env() ledger.Env {
	return ledger.Env{IDs: &fixedIDs{}, Now: func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }}
}

func TestCreateTransaction_RecordsCreatedLegs(t *testing.T) {
	action := &CreateTransaction{Data: ledger.NewTransaction{
		Type: ledger.TransactionTypeTransfer, Amount: decimal.NewFromInt(5), AccountID: "a", ToAccountID: "b",
	}}

	next, err := action.Perform(context.Background(), ledger.Empty(), env())

	require.NoError(t, err)
	assert.Len(t, next.Transactions, 2)
	assert.Len(t, action.Created, 2)
}

func TestCreateTransaction_Validation(t *testing.T) {
	cases := map[string]ledger.NewTransaction{
		"bad type":       {Type: "Refund", AccountID: "a"},
		"bad status":     {Type: ledger.TransactionTypeIncome, AccountID: "a", Status: "Pending"},
		"missing acount": {Type: ledger.TransactionTypeIncome},
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := (&CreateTransaction{Data: data}).Perform(context.Background(), ledger.Empty(), env())
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateTransaction_RejectsBadType(t *testing.T) {
	action := &UpdateTransaction{ID: "x", Patch: ledger.TransactionPatch{Type: omit.From(ledger.TransactionType("Nope"))}}

	_, err := action.Perform(context.Background(), ledger.Empty(), env())

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNoopActionsReturnSameState(t *testing.T) {
	state := ledger.Empty()
	noops := []IAction{
		&UpdateTransaction{ID: "x"},
		&DeleteTransaction{ID: "x"},
		&RestoreTransaction{ID: "x"},
		EmptyTrash{},
		&PermanentlyDeleteTransaction{ID: "x"},
		&UpdateAccount{ID: "x"},
		&DeleteAccount{ID: "x"},
		&UpdateAccountGroup{ID: "x"},
		&DeleteAccountGroup{ID: "x"},
		&UpdateCategory{ID: "x"},
		&DeleteCategory{ID: "x"},
		&UpdateCategoryGroup{ID: "x"},
		&DeleteCategoryGroup{ID: "x"},
		&UpdateLabel{ID: "x", Name: "n"},
		&DeleteLabel{ID: "x"},
	}
	for _, action := range noops {
		next, err := action.Perform(context.Background(), state, env())
		assert.NoError(t, err)
		assert.Same(t, state, next, "%T", action)
	}
}

func TestCatalogCreateActions(t *testing.T) {
	ctx := context.Background()
	e := env()
	state := ledger.Empty()

	group := &CreateAccountGroup{Data: ledger.AccountGroup{Type: ledger.AccountGroupTypeAsset, Name: "Bank"}}
	state, err := group.Perform(ctx, state, e)
	require.NoError(t, err)
	assert.NotEmpty(t, group.Created.ID)

	account := &CreateAccount{Data: ledger.NewAccount{GroupID: group.Created.ID, Name: "Main", BalanceStart: decimal.NewFromInt(10)}}
	state, err = account.Perform(ctx, state, e)
	require.NoError(t, err)
	assert.True(t, account.Created.BalanceNew.Equal(decimal.NewFromInt(10)))

	label := &CreateLabel{Name: "Trip"}
	state, err = label.Perform(ctx, state, e)
	require.NoError(t, err)
	assert.Len(t, state.Labels, 1)

	_, err = (&CreateAccountGroup{Data: ledger.AccountGroup{Type: "Equity"}}).Perform(ctx, state, e)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = (&CreateCategoryGroup{Data: ledger.CategoryGroup{Type: "Savings"}}).Perform(ctx, state, e)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = (&CreateLabel{}).Perform(ctx, state, e)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = (&CreateAccount{}).Perform(ctx, state, e)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
