package report

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

type MonthTotals struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

type EarningsLine struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Previous decimal.Decimal `json:"previous"`
	Current  decimal.Decimal `json:"current"`
	// Change is the percentage difference against Previous, zero when Previous is not positive.
	Change float64 `json:"change"`
}

type EarningsGroup struct {
	EarningsLine
	Categories []EarningsLine `json:"categories"`
}

type EarningsSection struct {
	Groups        []EarningsGroup `json:"groups"`
	TotalPrevious decimal.Decimal `json:"totalPrevious"`
	TotalCurrent  decimal.Decimal `json:"totalCurrent"`
}

type NetEarnings struct {
	Current  MonthTotals     `json:"current"`
	Previous MonthTotals     `json:"previous"`
	Income   EarningsSection `json:"income"`
	Expense  EarningsSection `json:"expense"`
}

// BuildNetEarnings compares month against the month before it. Rows whose
// amounts are zero in both months are left out.
func BuildNetEarnings(s *ledger.State, month Month) NetEarnings {
	prevMonth := month.Previous()
	curr := month.filter(s.Transactions)
	prev := prevMonth.filter(s.Transactions)

	return NetEarnings{
		Current:  monthTotals(month, curr),
		Previous: monthTotals(prevMonth, prev),
		Income:   earningsSection(s, ledger.CategoryGroupTypeIncome, prev, curr),
		Expense:  earningsSection(s, ledger.CategoryGroupTypeOutcome, prev, curr),
	}
}

func monthTotals(month Month, txs []ledger.Transaction) MonthTotals {
	totals := MonthTotals{Month: month.String()}
	expense := decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case ledger.TransactionTypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case ledger.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	totals.Expense = expense.Abs()
	totals.Net = totals.Income.Sub(totals.Expense)
	return totals
}

func earningsSection(s *ledger.State, kind ledger.CategoryGroupType, prev, curr []ledger.Transaction) EarningsSection {
	section := EarningsSection{Groups: []EarningsGroup{}}

	for _, group := range s.CategoryGroups {
		if group.Type != kind {
			continue
		}

		ids := map[string]bool{}
		row := EarningsGroup{Categories: []EarningsLine{}}
		for _, cat := range s.Categories {
			if cat.GroupID != group.ID {
				continue
			}
			ids[cat.ID] = true
			line := earningsLine(cat.ID, cat.Name, prev, curr, map[string]bool{cat.ID: true})
			if !line.Previous.IsZero() || !line.Current.IsZero() {
				row.Categories = append(row.Categories, line)
			}
		}

		row.EarningsLine = earningsLine(group.ID, group.Name, prev, curr, ids)
		if row.Previous.IsZero() && row.Current.IsZero() {
			continue
		}
		section.TotalPrevious = section.TotalPrevious.Add(row.Previous)
		section.TotalCurrent = section.TotalCurrent.Add(row.Current)
		section.Groups = append(section.Groups, row)
	}
	return section
}

func earningsLine(id, name string, prev, curr []ledger.Transaction, categoryIDs map[string]bool) EarningsLine {
	line := EarningsLine{
		ID:       id,
		Name:     name,
		Previous: categorySum(prev, categoryIDs),
		Current:  categorySum(curr, categoryIDs),
	}
	if line.Previous.IsPositive() {
		line.Change = line.Current.Sub(line.Previous).Div(line.Previous).Mul(hundred).InexactFloat64()
	}
	return line
}

func categorySum(txs []ledger.Transaction, categoryIDs map[string]bool) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if categoryIDs[t.CategoryID] {
			sum = sum.Add(t.Amount)
		}
	}
	return sum.Abs()
}
