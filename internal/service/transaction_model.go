package service

import (
	"time"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

// TransactionFilter narrows ListTransactions. Zero fields match everything.
type TransactionFilter struct {
	// AccountID matches either leg side: the source account or the transfer destination.
	AccountID  string
	CategoryID string
	LabelID    string
	Type       ledger.TransactionType
	// From is inclusive, To is exclusive.
	From time.Time
	To   time.Time
}

func (f TransactionFilter) matches(t ledger.Transaction) bool {
	if f.AccountID != "" && t.AccountID != f.AccountID && t.ToAccountID != f.AccountID {
		return false
	}
	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}
	if f.LabelID != "" && !t.HasLabel(f.LabelID) {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !t.Date.Before(f.To) {
		return false
	}
	return true
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit so subsequent pages are consistent.
type TransactionCursor struct {
	Position int
	Limit    int
}
