package service

import (
	"context"

	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/operator/actions"
)

// CatalogService handles categories, category groups, labels and settings.
type CatalogService struct {
	operator ILedgerOperator
}

func NewCatalogService(op ILedgerOperator) *CatalogService {
	return &CatalogService{operator: op}
}

func (s *CatalogService) CreateCategory(ctx context.Context, category ledger.Category) (ledger.Category, error) {
	action := &actions.CreateCategory{Data: category}
	if err := s.operator.Process(ctx, action); err != nil {
		return ledger.Category{}, err
	}
	return action.Created, nil
}

func (s *CatalogService) ListCategories(_ context.Context) []ledger.Category {
	return s.operator.Snapshot().Categories
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, patch ledger.CategoryPatch) error {
	return s.operator.Process(ctx, &actions.UpdateCategory{ID: id, Patch: patch})
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.operator.Process(ctx, &actions.DeleteCategory{ID: id})
}

func (s *CatalogService) CreateCategoryGroup(ctx context.Context, group ledger.CategoryGroup) (ledger.CategoryGroup, error) {
	action := &actions.CreateCategoryGroup{Data: group}
	if err := s.operator.Process(ctx, action); err != nil {
		return ledger.CategoryGroup{}, err
	}
	return action.Created, nil
}

func (s *CatalogService) ListCategoryGroups(_ context.Context) []ledger.CategoryGroup {
	return s.operator.Snapshot().CategoryGroups
}

func (s *CatalogService) UpdateCategoryGroup(ctx context.Context, id string, patch ledger.CategoryGroupPatch) error {
	return s.operator.Process(ctx, &actions.UpdateCategoryGroup{ID: id, Patch: patch})
}

func (s *CatalogService) DeleteCategoryGroup(ctx context.Context, id string) error {
	return s.operator.Process(ctx, &actions.DeleteCategoryGroup{ID: id})
}

func (s *CatalogService) CreateLabel(ctx context.Context, name string) (ledger.Label, error) {
	action := &actions.CreateLabel{Name: name}
	if err := s.operator.Process(ctx, action); err != nil {
		return ledger.Label{}, err
	}
	return action.Created, nil
}

func (s *CatalogService) ListLabels(_ context.Context) []ledger.Label {
	return s.operator.Snapshot().Labels
}

func (s *CatalogService) UpdateLabel(ctx context.Context, id, name string) error {
	return s.operator.Process(ctx, &actions.UpdateLabel{ID: id, Name: name})
}

func (s *CatalogService) DeleteLabel(ctx context.Context, id string) error {
	return s.operator.Process(ctx, &actions.DeleteLabel{ID: id})
}

func (s *CatalogService) GetSettings(_ context.Context) ledger.Settings {
	return s.operator.Snapshot().Settings
}

// UpdateSettings applies patch and returns the resulting settings.
func (s *CatalogService) UpdateSettings(ctx context.Context, patch ledger.SettingsPatch) (ledger.Settings, error) {
	if err := s.operator.Process(ctx, &actions.UpdateSettings{Patch: patch}); err != nil {
		return ledger.Settings{}, err
	}
	return s.operator.Snapshot().Settings, nil
}
