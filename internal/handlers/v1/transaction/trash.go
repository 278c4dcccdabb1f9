package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/logging"
)

type ListTrashOutput struct {
	Body struct {
		Transactions []Transaction `json:"transactions" doc:"Trashed transactions, most recently deleted first"`
	}
}

// trashManager covers soft delete, restore and purge.
type trashManager interface {
	DeleteTransaction(ctx context.Context, id string) error
	RestoreTransaction(ctx context.Context, id string) error
	PermanentlyDeleteTransaction(ctx context.Context, id string) error
	EmptyTrash(ctx context.Context) error
	ResetTransactions(ctx context.Context) error
	ListTrash(ctx context.Context) []ledger.Transaction
}

// TrashHandler serves the soft-delete lifecycle of transactions. Unknown IDs
// are ignored, so every mutation answers 204.
type TrashHandler struct {
	TransactionService trashManager
}

func NewTrashHandler(svc trashManager) *TrashHandler {
	return &TrashHandler{TransactionService: svc}
}

func (h *TrashHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transaction/{id}",
		Summary:       "Move transaction to trash",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.mutate("failed to delete transaction", h.TransactionService.DeleteTransaction))

	huma.Register(api, huma.Operation{
		OperationID:   "restore-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction/{id}/restore",
		Summary:       "Restore transaction from trash",
		Tags:          []string{"Trash"},
		DefaultStatus: http.StatusNoContent,
	}, h.mutate("failed to restore transaction", h.TransactionService.RestoreTransaction))

	huma.Register(api, huma.Operation{
		OperationID:   "purge-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/trash/{id}",
		Summary:       "Permanently delete a trashed transaction",
		Tags:          []string{"Trash"},
		DefaultStatus: http.StatusNoContent,
	}, h.mutate("failed to purge transaction", h.TransactionService.PermanentlyDeleteTransaction))

	huma.Register(api, huma.Operation{
		OperationID: "list-trash",
		Method:      http.MethodGet,
		Path:        "/v1/trash",
		Summary:     "List trashed transactions",
		Tags:        []string{"Trash"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID:   "empty-trash",
		Method:        http.MethodDelete,
		Path:          "/v1/trash",
		Summary:       "Empty the trash",
		Tags:          []string{"Trash"},
		DefaultStatus: http.StatusNoContent,
	}, h.bulk("failed to empty trash", h.TransactionService.EmptyTrash))

	huma.Register(api, huma.Operation{
		OperationID:   "reset-transactions",
		Method:        http.MethodPost,
		Path:          "/v1/transaction/reset",
		Summary:       "Reset transactions",
		Description:   "Drops every active and trashed transaction and zeroes all account balances.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.bulk("failed to reset transactions", h.TransactionService.ResetTransactions))
}

func (h *TrashHandler) mutate(msg string, fn func(context.Context, string) error) func(context.Context, *TransactionIDInput) (*struct{}, error) {
	return func(ctx context.Context, input *TransactionIDInput) (*struct{}, error) {
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("transactionID", input.ID)
		}
		if err := fn(ctx, input.ID); err != nil {
			return nil, v1.ServiceError(msg, err)
		}
		return nil, nil
	}
}

func (h *TrashHandler) bulk(msg string, fn func(context.Context) error) func(context.Context, *struct{}) (*struct{}, error) {
	return func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		if err := fn(ctx); err != nil {
			return nil, v1.ServiceError(msg, err)
		}
		return nil, nil
	}
}

func (h *TrashHandler) list(ctx context.Context, _ *struct{}) (*ListTrashOutput, error) {
	out := &ListTrashOutput{}
	out.Body.Transactions = fromLedgerList(h.TransactionService.ListTrash(ctx))
	return out, nil
}
