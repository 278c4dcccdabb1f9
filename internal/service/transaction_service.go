package service

import (
	"context"

	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/operator/actions"
)

// TransactionService handles transaction and trash business logic.
type TransactionService struct {
	operator ILedgerOperator
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(op ILedgerOperator) *TransactionService {
	return &TransactionService{operator: op}
}

// CreateTransaction records a transaction and returns the stored rows, two for a transfer.
func (s *TransactionService) CreateTransaction(ctx context.Context, data ledger.NewTransaction) ([]ledger.Transaction, error) {
	action := &actions.CreateTransaction{Data: data}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Created, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, id string, patch ledger.TransactionPatch) error {
	return s.operator.Process(ctx, &actions.UpdateTransaction{ID: id, Patch: patch})
}

// DeleteTransaction moves a transaction to the trash.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	return s.operator.Process(ctx, &actions.DeleteTransaction{ID: id})
}

func (s *TransactionService) RestoreTransaction(ctx context.Context, id string) error {
	return s.operator.Process(ctx, &actions.RestoreTransaction{ID: id})
}

func (s *TransactionService) PermanentlyDeleteTransaction(ctx context.Context, id string) error {
	return s.operator.Process(ctx, &actions.PermanentlyDeleteTransaction{ID: id})
}

func (s *TransactionService) EmptyTrash(ctx context.Context) error {
	return s.operator.Process(ctx, actions.EmptyTrash{})
}

// ResetTransactions clears active and trashed transactions and zeroes every account.
func (s *TransactionService) ResetTransactions(ctx context.Context) error {
	return s.operator.Process(ctx, actions.ResetTransactions{})
}

// GetTransaction looks id up among the active transactions.
func (s *TransactionService) GetTransaction(_ context.Context, id string) (*ledger.Transaction, error) {
	t, ok := s.operator.Snapshot().Transaction(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

// ListTransactions returns a page of active transactions, newest first, using
// cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, filter TransactionFilter, cursor *TransactionCursor) ([]ledger.Transaction, *TransactionCursor, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	limit := defaultLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}

	var matched []ledger.Transaction
	for _, t := range s.operator.Snapshot().Transactions {
		if filter.matches(t) {
			matched = append(matched, t)
		}
	}

	rows, more := paginate(matched, offset, limit)
	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if more {
		nextCursor = &TransactionCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}
	return rows, nextCursor, nil
}

// ListTrash returns the soft-deleted transactions, most recently deleted first.
func (s *TransactionService) ListTrash(_ context.Context) []ledger.Transaction {
	return s.operator.Snapshot().DeletedTransactions
}
