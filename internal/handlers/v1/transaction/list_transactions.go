package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/logging"
	"github.com/carson-networks/finance-ledger/internal/service"
)

// ListTransactionsCursor represents a pagination cursor in request and response bodies.
type ListTransactionsCursor struct {
	Position int `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit    int `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
}

// ListTransactionsFilter narrows the listing. Empty fields match everything.
type ListTransactionsFilter struct {
	AccountID  string `json:"accountID,omitempty" doc:"Source or destination account"`
	CategoryID string `json:"categoryID,omitempty" doc:"Category ID"`
	LabelID    string `json:"labelID,omitempty" doc:"Label ID"`
	Type       string `json:"type,omitempty" enum:"Income,Expense,Transfer" doc:"Transaction type"`
	From       string `json:"from,omitempty" doc:"Inclusive RFC3339 lower bound on the date"`
	To         string `json:"to,omitempty" doc:"Exclusive RFC3339 upper bound on the date"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	Filter *ListTransactionsFilter `json:"filter,omitempty" doc:"Optional filter"`
	Cursor *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, filter service.TransactionFilter, cursor *service.TransactionCursor) ([]ledger.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns a filtered, paginated list of active transactions, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
// Without a cursor, the service uses its default limit.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionFilter, *service.TransactionCursor, error) {
	var filter service.TransactionFilter
	if f := input.Body.Filter; f != nil {
		from, err := v1.ParseTime("filter.from", f.From)
		if err != nil {
			return filter, nil, err
		}
		to, err := v1.ParseTime("filter.to", f.To)
		if err != nil {
			return filter, nil, err
		}
		filter = service.TransactionFilter{
			AccountID:  f.AccountID,
			CategoryID: f.CategoryID,
			LabelID:    f.LabelID,
			Type:       ledger.TransactionType(f.Type),
			From:       from,
			To:         to,
		}
	}

	if input.Body.Cursor == nil {
		return filter, nil, nil
	}
	if input.Body.Cursor.Position < 0 {
		return filter, nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	return filter, &service.TransactionCursor{
		Position: input.Body.Cursor.Position,
		Limit:    input.Body.Cursor.Limit,
	}, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	filter, requestCursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, filter, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, v1.ServiceError("failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{Transactions: fromLedgerList(transactions)}
	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
