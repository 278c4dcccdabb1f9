package actions

import (
	"context"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

type CreateAccount struct {
	Data ledger.NewAccount

	Created ledger.Account
}

func (c *CreateAccount) Perform(_ context.Context, state *ledger.State, env ledger.Env) (*ledger.State, error) {
	if c.Data.Name == "" {
		return nil, invalid("account name is required")
	}

	next, created := state.AddAccount(env, c.Data)
	c.Created = created
	return next, nil
}

type UpdateAccount struct {
	ID    string
	Patch ledger.AccountPatch
}

func (u *UpdateAccount) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	if v, ok := u.Patch.Name.Get(); ok && v == "" {
		return nil, invalid("account name is required")
	}

	next, _ := state.UpdateAccount(u.ID, u.Patch)
	return next, nil
}

type DeleteAccount struct {
	ID string
}

func (d *DeleteAccount) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	next, _ := state.DeleteAccount(d.ID)
	return next, nil
}

type CreateAccountGroup struct {
	Data ledger.AccountGroup

	Created ledger.AccountGroup
}

func (c *CreateAccountGroup) Perform(_ context.Context, state *ledger.State, env ledger.Env) (*ledger.State, error) {
	if !c.Data.Type.Valid() {
		return nil, invalid("unknown account group type %q", c.Data.Type)
	}

	next, created := state.AddAccountGroup(env, c.Data)
	c.Created = created
	return next, nil
}

type UpdateAccountGroup struct {
	ID    string
	Patch ledger.AccountGroupPatch
}

func (u *UpdateAccountGroup) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	if v, ok := u.Patch.Type.Get(); ok && !v.Valid() {
		return nil, invalid("unknown account group type %q", v)
	}

	next, _ := state.UpdateAccountGroup(u.ID, u.Patch)
	return next, nil
}

type DeleteAccountGroup struct {
	ID string
}

func (d *DeleteAccountGroup) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	next, _ := state.DeleteAccountGroup(d.ID)
	return next, nil
}
