package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/logging"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Type        string   `json:"type" enum:"Income,Expense,Transfer" doc:"Transaction type"`
	Amount      string   `json:"amount" minLength:"1" doc:"Decimal amount; the sign is derived from the type"`
	AccountID   string   `json:"accountID" minLength:"1" doc:"Account ID"`
	ToAccountID string   `json:"toAccountID,omitempty" doc:"Destination account, transfers only"`
	CategoryID  string   `json:"categoryID,omitempty" doc:"Category ID"`
	Date        string   `json:"date,omitempty" doc:"RFC3339 transaction date, defaults to now"`
	Note        string   `json:"note,omitempty" doc:"Free text note"`
	Labels      []string `json:"labels,omitempty" doc:"Label IDs"`
	Status      string   `json:"status,omitempty" enum:"None,Cleared,Reconciled" doc:"Reconciliation status, defaults to None"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse lists the stored rows: one, or two for a transfer.
type CreateTransactionResponse struct {
	Transactions []Transaction `json:"transactions" doc:"Created transaction rows"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, data ledger.NewTransaction) ([]ledger.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Records an income, expense or transfer. A transfer is stored as two linked legs.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput converts the body into a ledger.NewTransaction.
// Type and status values are checked again by the ledger action.
func parseCreateTransactionInput(input *CreateTransactionInput) (ledger.NewTransaction, error) {
	amount, err := v1.ParseDecimal("amount", input.Body.Amount)
	if err != nil {
		return ledger.NewTransaction{}, err
	}
	date, err := v1.ParseTime("date", input.Body.Date)
	if err != nil {
		return ledger.NewTransaction{}, err
	}

	return ledger.NewTransaction{
		Date:        date,
		Amount:      amount,
		Type:        ledger.TransactionType(input.Body.Type),
		CategoryID:  input.Body.CategoryID,
		AccountID:   input.Body.AccountID,
		ToAccountID: input.Body.ToAccountID,
		Note:        input.Body.Note,
		Labels:      input.Body.Labels,
		Status:      ledger.TransactionStatus(input.Body.Status),
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	data, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	created, err := h.TransactionService.CreateTransaction(ctx, data)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, v1.ServiceError("failed to create transaction", err)
	}

	if logData != nil && len(created) > 0 {
		logData.AddData("transactionID", created[0].ID)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{Transactions: fromLedgerList(created)},
	}, nil
}
