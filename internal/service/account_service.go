package service

import (
	"context"

	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/operator/actions"
)

// AccountService handles account and account group business logic.
type AccountService struct {
	operator ILedgerOperator
}

// NewAccountService creates a new AccountService.
func NewAccountService(op ILedgerOperator) *AccountService {
	return &AccountService{operator: op}
}

// CreateAccount creates an account. A non-zero opening balance is booked as a
// reconciled income transaction.
func (s *AccountService) CreateAccount(ctx context.Context, data ledger.NewAccount) (ledger.Account, error) {
	action := &actions.CreateAccount{Data: data}
	if err := s.operator.Process(ctx, action); err != nil {
		return ledger.Account{}, err
	}
	return action.Created, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(_ context.Context, id string) (*ledger.Account, error) {
	acc, ok := s.operator.Snapshot().Account(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &acc, nil
}

// ListAccounts returns a page of accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]ledger.Account, *AccountCursor, error) {
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

	accounts, more := paginate(s.operator.Snapshot().Accounts, offset, limit)
	if len(accounts) == 0 {
		return nil, nil, nil
	}

	var nextCursor *AccountCursor
	if more {
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}
	return accounts, nextCursor, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, id string, patch ledger.AccountPatch) error {
	return s.operator.Process(ctx, &actions.UpdateAccount{ID: id, Patch: patch})
}

// DeleteAccount removes the account only. Its transactions stay and report as "Unknown".
func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	return s.operator.Process(ctx, &actions.DeleteAccount{ID: id})
}

func (s *AccountService) CreateAccountGroup(ctx context.Context, group ledger.AccountGroup) (ledger.AccountGroup, error) {
	action := &actions.CreateAccountGroup{Data: group}
	if err := s.operator.Process(ctx, action); err != nil {
		return ledger.AccountGroup{}, err
	}
	return action.Created, nil
}

func (s *AccountService) ListAccountGroups(_ context.Context) []ledger.AccountGroup {
	return s.operator.Snapshot().AccountGroups
}

func (s *AccountService) UpdateAccountGroup(ctx context.Context, id string, patch ledger.AccountGroupPatch) error {
	return s.operator.Process(ctx, &actions.UpdateAccountGroup{ID: id, Patch: patch})
}

func (s *AccountService) DeleteAccountGroup(ctx context.Context, id string) error {
	return s.operator.Process(ctx, &actions.DeleteAccountGroup{ID: id})
}
