package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/logging"
)

type CreateCategoryBody struct {
	GroupID      string `json:"groupID" minLength:"1" doc:"Category group ID"`
	Name         string `json:"name" minLength:"1" doc:"Category name"`
	Icon         string `json:"icon,omitempty" doc:"Icon name"`
	Color        string `json:"color,omitempty" doc:"Display color"`
	Budget       string `json:"budget,omitempty" doc:"Decimal monthly budget, defaults to 0"`
	EnableBudget bool   `json:"enableBudget,omitempty" doc:"Whether the budget is tracked"`
	Description  string `json:"description,omitempty" doc:"Description"`
}

type CreateCategoryInput struct {
	Body CreateCategoryBody
}

type CategoryOutput struct {
	Status int
	Body   Category
}

type ListCategoriesOutput struct {
	Body struct {
		Categories []Category `json:"categories" doc:"Every category"`
	}
}

type UpdateCategoryBody struct {
	GroupID      *string `json:"groupID,omitempty" doc:"Category group ID"`
	Name         *string `json:"name,omitempty" minLength:"1" doc:"Category name"`
	Icon         *string `json:"icon,omitempty" doc:"Icon name"`
	Color        *string `json:"color,omitempty" doc:"Display color"`
	Budget       *string `json:"budget,omitempty" doc:"Decimal monthly budget"`
	EnableBudget *bool   `json:"enableBudget,omitempty" doc:"Whether the budget is tracked"`
	Description  *string `json:"description,omitempty" doc:"Description"`
}

type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category ID"`
	Body UpdateCategoryBody
}

type CategoryIDInput struct {
	ID string `path:"id" doc:"Category ID"`
}

type categoryManager interface {
	CreateCategory(ctx context.Context, category ledger.Category) (ledger.Category, error)
	ListCategories(ctx context.Context) []ledger.Category
	UpdateCategory(ctx context.Context, id string, patch ledger.CategoryPatch) error
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryHandler serves /v1/category.
type CategoryHandler struct {
	CatalogService categoryManager
}

func NewCategoryHandler(svc categoryManager) *CategoryHandler {
	return &CategoryHandler{CatalogService: svc}
}

func (h *CategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID:   "update-category",
		Method:        http.MethodPatch,
		Path:          "/v1/category/{id}",
		Summary:       "Update category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/category/{id}",
		Summary:       "Delete category",
		Description:   "Removes the category. Transactions that use it are kept.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *CategoryHandler) create(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	budget, err := v1.ParseDecimal("budget", input.Body.Budget)
	if err != nil {
		return nil, err
	}
	created, err := h.CatalogService.CreateCategory(ctx, ledger.Category{
		GroupID:      input.Body.GroupID,
		Name:         input.Body.Name,
		Icon:         input.Body.Icon,
		Color:        input.Body.Color,
		Budget:       budget,
		EnableBudget: input.Body.EnableBudget,
		Description:  input.Body.Description,
	})
	if err != nil {
		return nil, v1.ServiceError("failed to create category", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("categoryID", created.ID)
	}
	return &CategoryOutput{Status: http.StatusCreated, Body: fromLedger(created)}, nil
}

func (h *CategoryHandler) list(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	categories := h.CatalogService.ListCategories(ctx)
	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]Category, len(categories))
	for i, c := range categories {
		out.Body.Categories[i] = fromLedger(c)
	}
	return out, nil
}

func (h *CategoryHandler) update(ctx context.Context, input *UpdateCategoryInput) (*struct{}, error) {
	b := input.Body
	budget, err := v1.OptionalDecimal("budget", b.Budget)
	if err != nil {
		return nil, err
	}
	patch := ledger.CategoryPatch{
		GroupID:      v1.Optional(b.GroupID),
		Name:         v1.Optional(b.Name),
		Icon:         v1.Optional(b.Icon),
		Color:        v1.Optional(b.Color),
		Budget:       budget,
		EnableBudget: v1.Optional(b.EnableBudget),
		Description:  v1.Optional(b.Description),
	}
	if err := h.CatalogService.UpdateCategory(ctx, input.ID, patch); err != nil {
		return nil, v1.ServiceError("failed to update category", err)
	}
	return nil, nil
}

func (h *CategoryHandler) delete(ctx context.Context, input *CategoryIDInput) (*struct{}, error) {
	if err := h.CatalogService.DeleteCategory(ctx, input.ID); err != nil {
		return nil, v1.ServiceError("failed to delete category", err)
	}
	return nil, nil
}
