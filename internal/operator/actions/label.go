package actions

import (
	"context"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

type CreateLabel struct {
	Name string

	Created ledger.Label
}

func (c *CreateLabel) Perform(_ context.Context, state *ledger.State, env ledger.Env) (*ledger.State, error) {
	if c.Name == "" {
		return nil, invalid("label name is required")
	}

	next, created := state.AddLabel(env, c.Name)
	c.Created = created
	return next, nil
}

type UpdateLabel struct {
	ID   string
	Name string
}

func (u *UpdateLabel) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	if u.Name == "" {
		return nil, invalid("label name is required")
	}

	next, _ := state.UpdateLabel(u.ID, u.Name)
	return next, nil
}

type DeleteLabel struct {
	ID string
}

func (d *DeleteLabel) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	next, _ := state.DeleteLabel(d.ID)
	return next, nil
}

type UpdateSettings struct {
	Patch ledger.SettingsPatch
}

func (u *UpdateSettings) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	return state.UpdateSettings(u.Patch), nil
}
