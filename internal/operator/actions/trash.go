package actions

import (
	"context"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

// DeleteTransaction moves an active transaction to the trash.
type DeleteTransaction struct {
	ID string
}

func (d *DeleteTransaction) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	next, _ := state.DeleteTransaction(d.ID)
	return next, nil
}

type RestoreTransaction struct {
	ID string
}

func (r *RestoreTransaction) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	next, _ := state.RestoreTransaction(r.ID)
	return next, nil
}

type EmptyTrash struct{}

func (EmptyTrash) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	next, _ := state.EmptyTrash()
	return next, nil
}

type PermanentlyDeleteTransaction struct {
	ID string
}

func (p *PermanentlyDeleteTransaction) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	next, _ := state.PermanentlyDeleteTransaction(p.ID)
	return next, nil
}

// ResetTransactions drops every active and trashed transaction.
type ResetTransactions struct{}

func (ResetTransactions) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	return state.ResetTransactions(), nil
}
