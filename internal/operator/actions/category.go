package actions

import (
	"context"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

type CreateCategory struct {
	Data ledger.Category

	Created ledger.Category
}

func (c *CreateCategory) Perform(_ context.Context, state *ledger.State, env ledger.Env) (*ledger.State, error) {
	if c.Data.Name == "" {
		return nil, invalid("category name is required")
	}

	next, created := state.AddCategory(env, c.Data)
	c.Created = created
	return next, nil
}

type UpdateCategory struct {
	ID    string
	Patch ledger.CategoryPatch
}

func (u *UpdateCategory) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	next, _ := state.UpdateCategory(u.ID, u.Patch)
	return next, nil
}

type DeleteCategory struct {
	ID string
}

func (d *DeleteCategory) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	next, _ := state.DeleteCategory(d.ID)
	return next, nil
}

type CreateCategoryGroup struct {
	Data ledger.CategoryGroup

	Created ledger.CategoryGroup
}

func (c *CreateCategoryGroup) Perform(_ context.Context, state *ledger.State, env ledger.Env) (*ledger.State, error) {
	if !c.Data.Type.Valid() {
		return nil, invalid("unknown category group type %q", c.Data.Type)
	}

	next, created := state.AddCategoryGroup(env, c.Data)
	c.Created = created
	return next, nil
}

type UpdateCategoryGroup struct {
	ID    string
	Patch ledger.CategoryGroupPatch
}

func (u *UpdateCategoryGroup) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	if v, ok := u.Patch.Type.Get(); ok && !v.Valid() {
		return nil, invalid("unknown category group type %q", v)
	}

	next, _ := state.UpdateCategoryGroup(u.ID, u.Patch)
	return next, nil
}

type DeleteCategoryGroup struct {
	ID string
}

func (d *DeleteCategoryGroup) Perform(_ context.Context, state *ledger.State, _ ledger.Env) (*ledger.State, error) {
	next, _ := state.DeleteCategoryGroup(d.ID)
	return next, nil
}
