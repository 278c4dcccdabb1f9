package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

type Item struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
	// Share is the item's size relative to the largest item on its side, in percent.
	Share float64 `json:"share"`
}

type ItemSummary struct {
	Month        string               `json:"month"`
	Expense      []Item               `json:"expense"`
	Income       []Item               `json:"income"`
	TotalExpense decimal.Decimal      `json:"totalExpense"`
	TotalIncome  decimal.Decimal      `json:"totalIncome"`
	CategoryID   string               `json:"categoryId,omitempty"`
	Transactions []ledger.Transaction `json:"transactions"`
}

// BuildItemSummary nets the month's non-transfer transactions per category.
// A negative net lands on the expense side, anything else on the income
// side; zero nets are dropped. When categoryID is set, the month's
// transactions in that category are listed as well.
func BuildItemSummary(s *ledger.State, month Month, categoryID string) ItemSummary {
	txs := month.filter(s.Transactions)

	totals := map[string]decimal.Decimal{}
	for _, t := range txs {
		if t.Type == ledger.TransactionTypeTransfer {
			continue
		}
		totals[t.CategoryID] = totals[t.CategoryID].Add(t.Amount)
	}

	summary := ItemSummary{
		Month:        month.String(),
		Expense:      []Item{},
		Income:       []Item{},
		CategoryID:   categoryID,
		Transactions: []ledger.Transaction{},
	}
	for id, total := range totals {
		if total.IsZero() {
			continue
		}
		item := Item{ID: id, Name: CategoryName(s, id), Total: total}
		if total.IsNegative() {
			summary.Expense = append(summary.Expense, item)
			summary.TotalExpense = summary.TotalExpense.Add(total)
		} else {
			summary.Income = append(summary.Income, item)
			summary.TotalIncome = summary.TotalIncome.Add(total)
		}
	}
	rankItems(summary.Expense)
	rankItems(summary.Income)

	if categoryID != "" {
		for _, t := range txs {
			if t.CategoryID == categoryID {
				summary.Transactions = append(summary.Transactions, t)
			}
		}
	}
	return summary
}

func rankItems(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		if c := items[i].Total.Abs().Cmp(items[j].Total.Abs()); c != 0 {
			return c > 0
		}
		return items[i].Name < items[j].Name
	})
	if len(items) == 0 {
		return
	}
	largest := items[0].Total.Abs()
	for i := range items {
		items[i].Share = items[i].Total.Abs().Div(largest).Mul(hundred).InexactFloat64()
	}
}
