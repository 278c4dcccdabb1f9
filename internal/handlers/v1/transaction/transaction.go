package transaction

import (
	"github.com/carson-networks/finance-ledger/internal/ledger"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string   `json:"id" doc:"Transaction ID"`
	Date        string   `json:"date" doc:"RFC3339 transaction date"`
	Amount      string   `json:"amount" doc:"Signed decimal amount"`
	Type        string   `json:"type" enum:"Income,Expense,Transfer" doc:"Transaction type"`
	CategoryID  string   `json:"categoryID" doc:"Category ID"`
	AccountID   string   `json:"accountID" doc:"Account ID"`
	ToAccountID string   `json:"toAccountID,omitempty" doc:"Counterpart account of a transfer leg"`
	Note        string   `json:"note" doc:"Free text note"`
	Labels      []string `json:"labels" doc:"Label IDs"`
	Status      string   `json:"status" enum:"None,Cleared,Reconciled" doc:"Reconciliation status"`
}

func fromLedger(t ledger.Transaction) Transaction {
	labels := t.Labels
	if labels == nil {
		labels = []string{}
	}
	return Transaction{
		ID:          t.ID,
		Date:        v1.FormatTime(t.Date),
		Amount:      t.Amount.String(),
		Type:        string(t.Type),
		CategoryID:  t.CategoryID,
		AccountID:   t.AccountID,
		ToAccountID: t.ToAccountID,
		Note:        t.Note,
		Labels:      labels,
		Status:      string(t.Status),
	}
}

func fromLedgerList(rows []ledger.Transaction) []Transaction {
	out := make([]Transaction, len(rows))
	for i, t := range rows {
		out[i] = fromLedger(t)
	}
	return out
}
