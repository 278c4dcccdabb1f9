package label

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
	"github.com/carson-networks/finance-ledger/internal/ledger"
)

// Label is the API model for a transaction label.
type Label struct {
	ID        string `json:"id" doc:"Label ID"`
	Name      string `json:"name" doc:"Label name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromLedger(l ledger.Label) Label {
	return Label{ID: l.ID, Name: l.Name, CreatedAt: v1.FormatTime(l.CreatedAt)}
}

type LabelBody struct {
	Name string `json:"name" minLength:"1" doc:"Label name"`
}

type CreateLabelInput struct {
	Body LabelBody
}

type LabelOutput struct {
	Status int
	Body   Label
}

type ListLabelsOutput struct {
	Body struct {
		Labels []Label `json:"labels" doc:"Every label"`
	}
}

type UpdateLabelInput struct {
	ID   string `path:"id" doc:"Label ID"`
	Body LabelBody
}

type LabelIDInput struct {
	ID string `path:"id" doc:"Label ID"`
}

type labelManager interface {
	CreateLabel(ctx context.Context, name string) (ledger.Label, error)
	ListLabels(ctx context.Context) []ledger.Label
	UpdateLabel(ctx context.Context, id, name string) error
	DeleteLabel(ctx context.Context, id string) error
}

// Handler serves /v1/label.
type Handler struct {
	CatalogService labelManager
}

func NewHandler(svc labelManager) *Handler {
	return &Handler{CatalogService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-label",
		Method:        http.MethodPost,
		Path:          "/v1/label",
		Summary:       "Create label",
		Tags:          []string{"Labels"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "list-labels",
		Method:      http.MethodGet,
		Path:        "/v1/labels",
		Summary:     "List labels",
		Tags:        []string{"Labels"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID:   "rename-label",
		Method:        http.MethodPut,
		Path:          "/v1/label/{id}",
		Summary:       "Rename label",
		Tags:          []string{"Labels"},
		DefaultStatus: http.StatusNoContent,
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-label",
		Method:        http.MethodDelete,
		Path:          "/v1/label/{id}",
		Summary:       "Delete label",
		Description:   "Removes the label and strips it from every transaction.",
		Tags:          []string{"Labels"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *Handler) create(ctx context.Context, input *CreateLabelInput) (*LabelOutput, error) {
	created, err := h.CatalogService.CreateLabel(ctx, input.Body.Name)
	if err != nil {
		return nil, v1.ServiceError("failed to create label", err)
	}
	return &LabelOutput{Status: http.StatusCreated, Body: fromLedger(created)}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListLabelsOutput, error) {
	labels := h.CatalogService.ListLabels(ctx)
	out := &ListLabelsOutput{}
	out.Body.Labels = make([]Label, len(labels))
	for i, l := range labels {
		out.Body.Labels[i] = fromLedger(l)
	}
	return out, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateLabelInput) (*struct{}, error) {
	if err := h.CatalogService.UpdateLabel(ctx, input.ID, input.Body.Name); err != nil {
		return nil, v1.ServiceError("failed to rename label", err)
	}
	return nil, nil
}

func (h *Handler) delete(ctx context.Context, input *LabelIDInput) (*struct{}, error) {
	if err := h.CatalogService.DeleteLabel(ctx, input.ID); err != nil {
		return nil, v1.ServiceError("failed to delete label", err)
	}
	return nil, nil
}
