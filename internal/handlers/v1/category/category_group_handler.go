package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
	"github.com/carson-networks/finance-ledger/internal/ledger"
)

type CreateCategoryGroupBody struct {
	Type         string `json:"type" enum:"Income,Outcome,Transfer,New Account" doc:"Which transactions may use the group"`
	Name         string `json:"name" minLength:"1" doc:"Group name"`
	Budget       string `json:"budget,omitempty" doc:"Decimal monthly budget, defaults to 0"`
	EnableBudget bool   `json:"enableBudget,omitempty" doc:"Whether the budget is tracked"`
	Description  string `json:"description,omitempty" doc:"Description"`
	Icon         string `json:"icon,omitempty" doc:"Icon name"`
}

type CreateCategoryGroupInput struct {
	Body CreateCategoryGroupBody
}

type CategoryGroupOutput struct {
	Status int
	Body   CategoryGroup
}

type ListCategoryGroupsOutput struct {
	Body struct {
		Groups []CategoryGroup `json:"groups" doc:"Every category group"`
	}
}

type UpdateCategoryGroupBody struct {
	Type         *string `json:"type,omitempty" enum:"Income,Outcome,Transfer,New Account" doc:"Which transactions may use the group"`
	Name         *string `json:"name,omitempty" minLength:"1" doc:"Group name"`
	Budget       *string `json:"budget,omitempty" doc:"Decimal monthly budget"`
	EnableBudget *bool   `json:"enableBudget,omitempty" doc:"Whether the budget is tracked"`
	Description  *string `json:"description,omitempty" doc:"Description"`
	Icon         *string `json:"icon,omitempty" doc:"Icon name"`
}

type UpdateCategoryGroupInput struct {
	ID   string `path:"id" doc:"Category group ID"`
	Body UpdateCategoryGroupBody
}

type CategoryGroupIDInput struct {
	ID string `path:"id" doc:"Category group ID"`
}

type categoryGroupManager interface {
	CreateCategoryGroup(ctx context.Context, group ledger.CategoryGroup) (ledger.CategoryGroup, error)
	ListCategoryGroups(ctx context.Context) []ledger.CategoryGroup
	UpdateCategoryGroup(ctx context.Context, id string, patch ledger.CategoryGroupPatch) error
	DeleteCategoryGroup(ctx context.Context, id string) error
}

// CategoryGroupHandler serves /v1/category-group.
type CategoryGroupHandler struct {
	CatalogService categoryGroupManager
}

func NewCategoryGroupHandler(svc categoryGroupManager) *CategoryGroupHandler {
	return &CategoryGroupHandler{CatalogService: svc}
}

func (h *CategoryGroupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category-group",
		Method:        http.MethodPost,
		Path:          "/v1/category-group",
		Summary:       "Create category group",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "list-category-groups",
		Method:      http.MethodGet,
		Path:        "/v1/category-groups",
		Summary:     "List category groups",
		Tags:        []string{"Categories"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID:   "update-category-group",
		Method:        http.MethodPatch,
		Path:          "/v1/category-group/{id}",
		Summary:       "Update category group",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-category-group",
		Method:        http.MethodDelete,
		Path:          "/v1/category-group/{id}",
		Summary:       "Delete category group",
		Description:   "Removes the group. Its categories are kept.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *CategoryGroupHandler) create(ctx context.Context, input *CreateCategoryGroupInput) (*CategoryGroupOutput, error) {
	budget, err := v1.ParseDecimal("budget", input.Body.Budget)
	if err != nil {
		return nil, err
	}
	created, err := h.CatalogService.CreateCategoryGroup(ctx, ledger.CategoryGroup{
		Type:         ledger.CategoryGroupType(input.Body.Type),
		Name:         input.Body.Name,
		Budget:       budget,
		EnableBudget: input.Body.EnableBudget,
		Description:  input.Body.Description,
		Icon:         input.Body.Icon,
	})
	if err != nil {
		return nil, v1.ServiceError("failed to create category group", err)
	}
	return &CategoryGroupOutput{Status: http.StatusCreated, Body: groupFromLedger(created)}, nil
}

func (h *CategoryGroupHandler) list(ctx context.Context, _ *struct{}) (*ListCategoryGroupsOutput, error) {
	groups := h.CatalogService.ListCategoryGroups(ctx)
	out := &ListCategoryGroupsOutput{}
	out.Body.Groups = make([]CategoryGroup, len(groups))
	for i, g := range groups {
		out.Body.Groups[i] = groupFromLedger(g)
	}
	return out, nil
}

func (h *CategoryGroupHandler) update(ctx context.Context, input *UpdateCategoryGroupInput) (*struct{}, error) {
	b := input.Body
	budget, err := v1.OptionalDecimal("budget", b.Budget)
	if err != nil {
		return nil, err
	}
	patch := ledger.CategoryGroupPatch{
		Name:         v1.Optional(b.Name),
		Budget:       budget,
		EnableBudget: v1.Optional(b.EnableBudget),
		Description:  v1.Optional(b.Description),
		Icon:         v1.Optional(b.Icon),
	}
	if b.Type != nil {
		patch.Type.Set(ledger.CategoryGroupType(*b.Type))
	}
	if err := h.CatalogService.UpdateCategoryGroup(ctx, input.ID, patch); err != nil {
		return nil, v1.ServiceError("failed to update category group", err)
	}
	return nil, nil
}

func (h *CategoryGroupHandler) delete(ctx context.Context, input *CategoryGroupIDInput) (*struct{}, error) {
	if err := h.CatalogService.DeleteCategoryGroup(ctx, input.ID); err != nil {
		return nil, v1.ServiceError("failed to delete category group", err)
	}
	return nil, nil
}
