package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
	"github.com/carson-networks/finance-ledger/internal/ledger"
)

type CreateAccountGroupBody struct {
	Type        string `json:"type" enum:"Asset,Liabilities" doc:"Balance sheet side"`
	Name        string `json:"name" minLength:"1" doc:"Group name"`
	Description string `json:"description,omitempty" doc:"Description"`
	Icon        string `json:"icon,omitempty" doc:"Icon name"`
}

type CreateAccountGroupInput struct {
	Body CreateAccountGroupBody
}

type AccountGroupOutput struct {
	Status int
	Body   AccountGroup
}

type ListAccountGroupsOutput struct {
	Body struct {
		Groups []AccountGroup `json:"groups" doc:"Every account group"`
	}
}

type UpdateAccountGroupBody struct {
	Type        *string `json:"type,omitempty" enum:"Asset,Liabilities" doc:"Balance sheet side"`
	Name        *string `json:"name,omitempty" minLength:"1" doc:"Group name"`
	Description *string `json:"description,omitempty" doc:"Description"`
	Icon        *string `json:"icon,omitempty" doc:"Icon name"`
}

type UpdateAccountGroupInput struct {
	ID   string `path:"id" doc:"Account group ID"`
	Body UpdateAccountGroupBody
}

type AccountGroupIDInput struct {
	ID string `path:"id" doc:"Account group ID"`
}

type accountGroupManager interface {
	CreateAccountGroup(ctx context.Context, group ledger.AccountGroup) (ledger.AccountGroup, error)
	ListAccountGroups(ctx context.Context) []ledger.AccountGroup
	UpdateAccountGroup(ctx context.Context, id string, patch ledger.AccountGroupPatch) error
	DeleteAccountGroup(ctx context.Context, id string) error
}

// AccountGroupHandler serves /v1/account-group.
type AccountGroupHandler struct {
	AccountService accountGroupManager
}

func NewAccountGroupHandler(svc accountGroupManager) *AccountGroupHandler {
	return &AccountGroupHandler{AccountService: svc}
}

func (h *AccountGroupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account-group",
		Method:        http.MethodPost,
		Path:          "/v1/account-group",
		Summary:       "Create account group",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "list-account-groups",
		Method:      http.MethodGet,
		Path:        "/v1/account-groups",
		Summary:     "List account groups",
		Tags:        []string{"Accounts"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID:   "update-account-group",
		Method:        http.MethodPatch,
		Path:          "/v1/account-group/{id}",
		Summary:       "Update account group",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-account-group",
		Method:        http.MethodDelete,
		Path:          "/v1/account-group/{id}",
		Summary:       "Delete account group",
		Description:   "Removes the group. Its accounts are kept and show up as orphans on the balance sheet.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *AccountGroupHandler) create(ctx context.Context, input *CreateAccountGroupInput) (*AccountGroupOutput, error) {
	created, err := h.AccountService.CreateAccountGroup(ctx, ledger.AccountGroup{
		Type:        ledger.AccountGroupType(input.Body.Type),
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Icon:        input.Body.Icon,
	})
	if err != nil {
		return nil, v1.ServiceError("failed to create account group", err)
	}
	return &AccountGroupOutput{Status: http.StatusCreated, Body: groupFromLedger(created)}, nil
}

func (h *AccountGroupHandler) list(ctx context.Context, _ *struct{}) (*ListAccountGroupsOutput, error) {
	groups := h.AccountService.ListAccountGroups(ctx)
	out := &ListAccountGroupsOutput{}
	out.Body.Groups = make([]AccountGroup, len(groups))
	for i, g := range groups {
		out.Body.Groups[i] = groupFromLedger(g)
	}
	return out, nil
}

func (h *AccountGroupHandler) update(ctx context.Context, input *UpdateAccountGroupInput) (*struct{}, error) {
	b := input.Body
	patch := ledger.AccountGroupPatch{
		Name:        v1.Optional(b.Name),
		Description: v1.Optional(b.Description),
		Icon:        v1.Optional(b.Icon),
	}
	if b.Type != nil {
		patch.Type.Set(ledger.AccountGroupType(*b.Type))
	}
	if err := h.AccountService.UpdateAccountGroup(ctx, input.ID, patch); err != nil {
		return nil, v1.ServiceError("failed to update account group", err)
	}
	return nil, nil
}

func (h *AccountGroupHandler) delete(ctx context.Context, input *AccountGroupIDInput) (*struct{}, error) {
	if err := h.AccountService.DeleteAccountGroup(ctx, input.ID); err != nil {
		return nil, v1.ServiceError("failed to delete account group", err)
	}
	return nil, nil
}
