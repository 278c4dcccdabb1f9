package transaction

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/logging"
)

// UpdateTransactionBody lists the fields to overwrite. Absent fields are kept.
// The amount is stored as given; its sign is not re-derived from the type.
type UpdateTransactionBody struct {
	Date        *string   `json:"date,omitempty" doc:"RFC3339 transaction date"`
	Amount      *string   `json:"amount,omitempty" doc:"Signed decimal amount"`
	Type        *string   `json:"type,omitempty" enum:"Income,Expense,Transfer" doc:"Transaction type"`
	CategoryID  *string   `json:"categoryID,omitempty" doc:"Category ID"`
	AccountID   *string   `json:"accountID,omitempty" doc:"Account ID"`
	ToAccountID *string   `json:"toAccountID,omitempty" doc:"Counterpart account"`
	Note        *string   `json:"note,omitempty" doc:"Free text note"`
	Labels      *[]string `json:"labels,omitempty" doc:"Label IDs, replaces the current list"`
	Status      *string   `json:"status,omitempty" enum:"None,Cleared,Reconciled" doc:"Reconciliation status"`
}

type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction ID"`
	Body UpdateTransactionBody
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id string, patch ledger.TransactionPatch) error
}

// UpdateTransactionHandler handles PATCH /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPatch,
		Path:          "/v1/transaction/{id}",
		Summary:       "Update transaction",
		Description:   "Merges the given fields into an active transaction. Unknown IDs are ignored.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (ledger.TransactionPatch, error) {
	var patch ledger.TransactionPatch
	b := input.Body

	if b.Date != nil {
		date, err := v1.ParseTime("date", *b.Date)
		if err != nil {
			return patch, err
		}
		patch.Date = omit.From(date)
	}
	if b.Amount != nil {
		amount, err := v1.ParseDecimal("amount", *b.Amount)
		if err != nil {
			return patch, err
		}
		patch.Amount = omit.From(amount)
	}
	if b.Type != nil {
		patch.Type = omit.From(ledger.TransactionType(*b.Type))
	}
	if b.CategoryID != nil {
		patch.CategoryID = omit.From(*b.CategoryID)
	}
	if b.AccountID != nil {
		patch.AccountID = omit.From(*b.AccountID)
	}
	if b.ToAccountID != nil {
		patch.ToAccountID = omit.From(*b.ToAccountID)
	}
	if b.Note != nil {
		patch.Note = omit.From(*b.Note)
	}
	if b.Labels != nil {
		patch.Labels = omit.From(*b.Labels)
	}
	if b.Status != nil {
		patch.Status = omit.From(ledger.TransactionStatus(*b.Status))
	}
	return patch, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*struct{}, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("transactionID", input.ID)
	}

	patch, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}
	if err := h.TransactionService.UpdateTransaction(ctx, input.ID, patch); err != nil {
		return nil, v1.ServiceError("failed to update transaction", err)
	}
	return nil, nil
}
