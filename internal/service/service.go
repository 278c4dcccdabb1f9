package service

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-ledger/internal/insights"
	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/operator/actions"
)

const defaultLimit = 20

var ErrNotFound = errors.New("service: not found")

// ILedgerOperator applies actions to the ledger and exposes its current snapshot.
//
//go:generate mockery --name ILedgerOperator --output mock_ILedgerOperator.go
type ILedgerOperator interface {
	Process(ctx context.Context, action actions.IAction) error
	Snapshot() *ledger.State
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Catalog     *CatalogService
	Report      *ReportService
}

// NewService creates a new Service on top of the ledger operator.
func NewService(op ILedgerOperator, advisor *insights.Advisor) *Service {
	return &Service{
		Transaction: NewTransactionService(op),
		Account:     NewAccountService(op),
		Catalog:     NewCatalogService(op),
		Report:      NewReportService(op, advisor),
	}
}

// paginate returns the window [position, position+limit) of items and
// whether more items follow it.
func paginate[T any](items []T, position, limit int) ([]T, bool) {
	if position >= len(items) {
		return nil, false
	}
	end := position + limit
	if end >= len(items) {
		return items[position:], false
	}
	return items[position:end], true
}
