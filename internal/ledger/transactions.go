package ledger

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

const (
	transferOutSuffix = " (transfer out)"
	transferInSuffix  = " (transfer in)"
)

// NewTransaction is the payload of AddTransaction. Amount is the magnitude
// as entered by the user; its sign is derived from Type.
type NewTransaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Type        TransactionType
	CategoryID  string
	AccountID   string
	ToAccountID string
	Note        string
	Labels      []string
	Status      TransactionStatus
}

// TransactionPatch lists the fields to overwrite in UpdateTransaction.
// Unset fields keep their current value.
type TransactionPatch struct {
	Date        omit.Val[time.Time]
	Amount      omit.Val[decimal.Decimal]
	Type        omit.Val[TransactionType]
	CategoryID  omit.Val[string]
	AccountID   omit.Val[string]
	ToAccountID omit.Val[string]
	Note        omit.Val[string]
	Labels      omit.Val[[]string]
	Status      omit.Val[TransactionStatus]
}

func (p TransactionPatch) apply(t Transaction) Transaction {
	if v, ok := p.Date.Get(); ok {
		t.Date = v
	}
	if v, ok := p.Amount.Get(); ok {
		t.Amount = v
	}
	if v, ok := p.Type.Get(); ok {
		t.Type = v
	}
	if v, ok := p.CategoryID.Get(); ok {
		t.CategoryID = v
	}
	if v, ok := p.AccountID.Get(); ok {
		t.AccountID = v
	}
	if v, ok := p.ToAccountID.Get(); ok {
		t.ToAccountID = v
	}
	if v, ok := p.Note.Get(); ok {
		t.Note = v
	}
	if v, ok := p.Labels.Get(); ok {
		t.Labels = append([]string{}, v...)
	}
	if v, ok := p.Status.Get(); ok {
		t.Status = v
	}
	return t
}

// AddTransaction books data and returns the new state together with the
// records that were created, most recent first. A transfer with a
// destination account produces two legs.
func (s *State) AddTransaction(env Env, data NewTransaction) (*State, []Transaction) {
	base := Transaction{
		Date:       data.Date,
		Type:       data.Type,
		CategoryID: data.CategoryID,
		AccountID:  data.AccountID,
		Note:       data.Note,
		Labels:     append([]string{}, data.Labels...),
		Status:     data.Status,
	}
	if base.Date.IsZero() {
		base.Date = env.Now()
	}
	if base.Status == "" {
		base.Status = TransactionStatusNone
	}
	magnitude := data.Amount.Abs()

	var created []Transaction
	if data.Type == TransactionTypeTransfer && data.ToAccountID != "" {
		out := base.clone()
		out.ID = env.IDs.NewID()
		out.Amount = magnitude.Neg()
		out.Note = data.Note + transferOutSuffix

		in := base.clone()
		in.ID = env.IDs.NewID()
		in.AccountID = data.ToAccountID
		in.Amount = magnitude
		in.Note = data.Note + transferInSuffix

		created = []Transaction{out, in}
	} else {
		single := base
		single.ID = env.IDs.NewID()
		if data.Type == TransactionTypeExpense {
			single.Amount = magnitude.Neg()
		} else {
			single.Amount = magnitude
		}
		created = []Transaction{single}
	}

	next := s.shallow()
	next.Transactions = prepended(s.Transactions, created...)
	next.withBalances()
	next.Settings = s.rememberSelection(data)
	return next, created
}

func (s *State) rememberSelection(data NewTransaction) Settings {
	settings := s.Settings
	if settings.RememberLastAccount {
		settings.LastAccountID = data.AccountID
	}
	if settings.RememberLastCategory {
		settings.LastCategoryID = data.CategoryID
	}
	if settings.RememberLastCurrency {
		if acc, ok := s.Account(data.AccountID); ok {
			settings.LastCurrency = acc.Currency
		}
	}
	return settings
}

// UpdateTransaction merges patch into the active transaction id. The amount
// is taken as given: the caller owns its sign. Unknown ids leave the state
// unchanged and report false.
func (s *State) UpdateTransaction(id string, patch TransactionPatch) (*State, bool) {
	i := indexOf(s.Transactions, id, txID)
	if i < 0 {
		return s, false
	}
	next := s.shallow()
	next.Transactions = replaced(s.Transactions, i, patch.apply(s.Transactions[i].clone()))
	return next.withBalances(), true
}

// DeleteTransaction moves an active transaction to the trash.
func (s *State) DeleteTransaction(id string) (*State, bool) {
	i := indexOf(s.Transactions, id, txID)
	if i < 0 {
		return s, false
	}
	next := s.shallow()
	next.DeletedTransactions = prepended(s.DeletedTransactions, s.Transactions[i])
	next.Transactions = without(s.Transactions, i)
	return next.withBalances(), true
}

// RestoreTransaction moves a trashed transaction back to the active list.
func (s *State) RestoreTransaction(id string) (*State, bool) {
	i := indexOf(s.DeletedTransactions, id, txID)
	if i < 0 {
		return s, false
	}
	next := s.shallow()
	next.Transactions = prepended(s.Transactions, s.DeletedTransactions[i])
	next.DeletedTransactions = without(s.DeletedTransactions, i)
	return next.withBalances(), true
}

// EmptyTrash drops every trashed transaction. Balances are untouched since
// trashed rows never count.
func (s *State) EmptyTrash() (*State, bool) {
	if len(s.DeletedTransactions) == 0 {
		return s, false
	}
	next := s.shallow()
	next.DeletedTransactions = []Transaction{}
	return next, true
}

// PermanentlyDeleteTransaction removes one entry from the trash.
func (s *State) PermanentlyDeleteTransaction(id string) (*State, bool) {
	i := indexOf(s.DeletedTransactions, id, txID)
	if i < 0 {
		return s, false
	}
	next := s.shallow()
	next.DeletedTransactions = without(s.DeletedTransactions, i)
	return next, true
}

// ResetTransactions forgets the whole transaction history, active and
// trashed, and brings every account back to its opening balance.
func (s *State) ResetTransactions() *State {
	next := s.shallow()
	next.Transactions = []Transaction{}
	next.DeletedTransactions = []Transaction{}
	next.Accounts = make([]Account, len(s.Accounts))
	for i, acc := range s.Accounts {
		acc.BalanceNew = acc.BalanceStart
		next.Accounts[i] = acc
	}
	return next
}

func txID(t Transaction) string { return t.ID }
