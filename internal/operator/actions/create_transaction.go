package actions

import (
	"context"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

type CreateTransaction struct {
	Data ledger.NewTransaction

	// Created holds the booked records once Perform succeeded: one, or two
	// for a transfer between accounts.
	Created []ledger.Transaction
}

func (c *CreateTransaction) Perform(_ context.Context, state *ledger.State, env ledger.Env) (*ledger.State, error) {
	if !c.Data.Type.Valid() {
		return nil, invalid("unknown transaction type %q", c.Data.Type)
	}
	if c.Data.Status != "" && !c.Data.Status.Valid() {
		return nil, invalid("unknown transaction status %q", c.Data.Status)
	}
	if c.Data.AccountID == "" {
		return nil, invalid("accountId is required")
	}

	next, created := state.AddTransaction(env, c.Data)
	c.Created = created
	return next, nil
}

type UpdateTransaction struct {
	ID    string
	Patch ledger.TransactionPatch
}

func (u *UpdateTransaction) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	if v, ok := u.Patch.Type.Get(); ok && !v.Valid() {
		return nil, invalid("unknown transaction type %q", v)
	}
	if v, ok := u.Patch.Status.Get(); ok && !v.Valid() {
		return nil, invalid("unknown transaction status %q", v)
	}

	next, _ := state.UpdateTransaction(u.ID, u.Patch)
	return next, nil
}
