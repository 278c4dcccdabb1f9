package category

import (
	"github.com/carson-networks/finance-ledger/internal/ledger"
)

// Category is the API model for a category.
type Category struct {
	ID           string `json:"id" doc:"Category ID"`
	GroupID      string `json:"groupID" doc:"Category group ID"`
	Name         string `json:"name" doc:"Category name"`
	Icon         string `json:"icon" doc:"Icon name"`
	Color        string `json:"color" doc:"Display color"`
	Budget       string `json:"budget" doc:"Decimal monthly budget"`
	EnableBudget bool   `json:"enableBudget" doc:"Whether the budget is tracked"`
	Description  string `json:"description" doc:"Description"`
}

// CategoryGroup is the API model for a category group.
type CategoryGroup struct {
	ID           string `json:"id" doc:"Category group ID"`
	Type         string `json:"type" enum:"Income,Outcome,Transfer,New Account" doc:"Which transactions may use the group"`
	Name         string `json:"name" doc:"Group name"`
	Budget       string `json:"budget" doc:"Decimal monthly budget"`
	EnableBudget bool   `json:"enableBudget" doc:"Whether the budget is tracked"`
	Description  string `json:"description" doc:"Description"`
	Icon         string `json:"icon" doc:"Icon name"`
}

func fromLedger(c ledger.Category) Category {
	return Category{
		ID:           c.ID,
		GroupID:      c.GroupID,
		Name:         c.Name,
		Icon:         c.Icon,
		Color:        c.Color,
		Budget:       c.Budget.String(),
		EnableBudget: c.EnableBudget,
		Description:  c.Description,
	}
}

func groupFromLedger(g ledger.CategoryGroup) CategoryGroup {
	return CategoryGroup{
		ID:           g.ID,
		Type:         string(g.Type),
		Name:         g.Name,
		Budget:       g.Budget.String(),
		EnableBudget: g.EnableBudget,
		Description:  g.Description,
		Icon:         g.Icon,
	}
}
