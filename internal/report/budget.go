package report

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

var hundred = decimal.NewFromInt(100)

type BudgetLine struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Spent     decimal.Decimal `json:"spent"`
	Budget    decimal.Decimal `json:"budget"`
	HasBudget bool            `json:"hasBudget"`
	Percent   float64         `json:"percent"`
}

type BudgetGroup struct {
	BudgetLine
	Categories []BudgetLine `json:"categories"`
}

type BudgetSummary struct {
	Month                  string          `json:"month"`
	Groups                 []BudgetGroup   `json:"groups"`
	TotalBudget            decimal.Decimal `json:"totalBudget"`
	TotalSpent             decimal.Decimal `json:"totalSpent"`
	TotalSpentWithinBudget decimal.Decimal `json:"totalSpentWithinBudget"`
	Percent                float64         `json:"percent"`
}

// BuildBudgetSummary reports Expense spending for month against the budgets of
// every Outcome category group.
//
// A category budget only counts when it is enabled. A group with its own
// budget enabled uses it; otherwise its budget is the sum of its enabled
// category budgets.
func BuildBudgetSummary(s *ledger.State, month Month) BudgetSummary {
	txs := month.filter(s.Transactions)
	summary := BudgetSummary{Month: month.String(), Groups: []BudgetGroup{}}

	for _, group := range s.CategoryGroups {
		if group.Type != ledger.CategoryGroupTypeOutcome {
			continue
		}

		row := BudgetGroup{Categories: []BudgetLine{}}
		row.ID, row.Name = group.ID, group.Name
		if group.EnableBudget {
			row.Budget = group.Budget
		}

		for _, cat := range s.Categories {
			if cat.GroupID != group.ID {
				continue
			}
			spent := expenseSpent(txs, cat.ID)
			line := BudgetLine{ID: cat.ID, Name: cat.Name, Spent: spent}
			if cat.EnableBudget {
				line.Budget = cat.Budget
				if !group.EnableBudget {
					row.Budget = row.Budget.Add(cat.Budget)
				}
			}
			line.HasBudget = cat.EnableBudget && cat.Budget.IsPositive()
			line.Percent = percent(spent, cat.Budget)
			row.Spent = row.Spent.Add(spent)
			row.Categories = append(row.Categories, line)
		}

		row.HasBudget = row.Budget.IsPositive()
		row.Percent = percent(row.Spent, row.Budget)

		if row.HasBudget {
			summary.TotalSpentWithinBudget = summary.TotalSpentWithinBudget.Add(row.Spent)
		}
		summary.TotalBudget = summary.TotalBudget.Add(row.Budget)
		summary.TotalSpent = summary.TotalSpent.Add(row.Spent)
		summary.Groups = append(summary.Groups, row)
	}

	summary.Percent = percent(summary.TotalSpent, summary.TotalBudget)
	return summary
}

func expenseSpent(txs []ledger.Transaction, categoryID string) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if t.CategoryID == categoryID && t.Type == ledger.TransactionTypeExpense {
			sum = sum.Add(t.Amount)
		}
	}
	return sum.Abs()
}

func percent(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}
