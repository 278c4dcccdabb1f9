package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

const (
	dailyWindow     = 7
	trendMonths     = 3
	netWorthMonths  = 6
	maxBudgetGroups = 8
)

type DailySpend struct {
	Date    string          `json:"date"`
	Weekday string          `json:"weekday"`
	Spent   decimal.Decimal `json:"spent"`
}

type GroupSpend struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Spent decimal.Decimal `json:"spent"`
}

type CalendarDay struct {
	Day        int  `json:"day"`
	HasIncome  bool `json:"hasIncome"`
	HasExpense bool `json:"hasExpense"`
}

type NetWorthPoint struct {
	Month       string          `json:"month"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetWorth    decimal.Decimal `json:"netWorth"`
}

type Dashboard struct {
	Date         string          `json:"date"`
	Daily        []DailySpend    `json:"daily"`
	DailyAverage decimal.Decimal `json:"dailyAverage"`
	BudgetGroups []GroupSpend    `json:"budgetGroups"`
	Calendar     []CalendarDay   `json:"calendar"`
	Trend        []MonthTotals   `json:"trend"`
	NetWorth     []NetWorthPoint `json:"netWorth"`
}

// BuildDashboard derives the overview widgets as of today. Days and months
// are UTC calendar days and months.
func BuildDashboard(s *ledger.State, today time.Time) Dashboard {
	today = today.UTC()
	month := MonthOf(today)

	daily, average := dailySpending(s.Transactions, today)
	return Dashboard{
		Date:         today.Format(time.DateOnly),
		Daily:        daily,
		DailyAverage: average,
		BudgetGroups: budgetByGroup(s, month),
		Calendar:     calendar(s.Transactions, month),
		Trend:        trend(s.Transactions, month),
		NetWorth:     netWorthHistory(s, month),
	}
}

// dailySpending sums Expense amounts for each of the last seven days,
// today included, oldest first.
func dailySpending(txs []ledger.Transaction, today time.Time) ([]DailySpend, decimal.Decimal) {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := make([]DailySpend, 0, dailyWindow)
	total := decimal.Zero

	for i := dailyWindow - 1; i >= 0; i-- {
		from := start.AddDate(0, 0, -i)
		to := from.AddDate(0, 0, 1)
		spent := decimal.Zero
		for _, t := range txs {
			if t.Type == ledger.TransactionTypeExpense && !t.Date.Before(from) && t.Date.Before(to) {
				spent = spent.Add(t.Amount)
			}
		}
		spent = spent.Abs()
		total = total.Add(spent)
		days = append(days, DailySpend{Date: from.Format(time.DateOnly), Weekday: from.Weekday().String()[:3], Spent: spent})
	}
	return days, total.Div(decimal.NewFromInt(dailyWindow))
}

// budgetByGroup totals the month's Expense amounts per category group,
// largest first, keeping the top eight.
func budgetByGroup(s *ledger.State, month Month) []GroupSpend {
	byGroup := map[string]decimal.Decimal{}
	for _, t := range month.filter(s.Transactions) {
		if t.Type != ledger.TransactionTypeExpense {
			continue
		}
		groupID := ""
		if cat, ok := s.Category(t.CategoryID); ok {
			groupID = cat.GroupID
		}
		byGroup[groupID] = byGroup[groupID].Add(t.Amount.Abs())
	}

	out := make([]GroupSpend, 0, len(byGroup))
	for id, spent := range byGroup {
		name := Unknown
		if group, ok := s.CategoryGroup(id); ok {
			name = group.Name
		}
		out = append(out, GroupSpend{ID: id, Name: name, Spent: spent})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Spent.Cmp(out[j].Spent); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > maxBudgetGroups {
		out = out[:maxBudgetGroups]
	}
	return out
}

func calendar(txs []ledger.Transaction, month Month) []CalendarDay {
	days := make([]CalendarDay, month.Days())
	for i := range days {
		days[i].Day = i + 1
	}
	for _, t := range month.filter(txs) {
		d := &days[t.Date.UTC().Day()-1]
		switch t.Type {
		case ledger.TransactionTypeIncome:
			d.HasIncome = true
		case ledger.TransactionTypeExpense:
			d.HasExpense = true
		}
	}
	return days
}

// trend returns income and expense for the last three months, oldest first.
func trend(txs []ledger.Transaction, month Month) []MonthTotals {
	out := make([]MonthTotals, 0, trendMonths)
	for _, m := range monthsEndingAt(month, trendMonths) {
		out = append(out, monthTotals(m, m.filter(txs)))
	}
	return out
}

// netWorthHistory walks back from the current balances: the balance at the
// end of a month is today's balance minus every later transaction. Only
// accounts in Asset or Liabilities groups take part.
func netWorthHistory(s *ledger.State, month Month) []NetWorthPoint {
	kinds := map[string]ledger.AccountGroupType{}
	assetsNow, liabilitiesNow := decimal.Zero, decimal.Zero
	for _, acc := range s.Accounts {
		group, ok := s.AccountGroup(acc.GroupID)
		if !ok {
			continue
		}
		kinds[acc.ID] = group.Type
		switch group.Type {
		case ledger.AccountGroupTypeAsset:
			assetsNow = assetsNow.Add(acc.BalanceNew)
		case ledger.AccountGroupTypeLiabilities:
			liabilitiesNow = liabilitiesNow.Add(acc.BalanceNew)
		}
	}

	out := make([]NetWorthPoint, 0, netWorthMonths)
	for _, m := range monthsEndingAt(month, netWorthMonths) {
		end := m.end()
		assets, liabilities := assetsNow, liabilitiesNow
		for _, t := range s.Transactions {
			if t.Date.Before(end) {
				continue
			}
			switch kinds[t.AccountID] {
			case ledger.AccountGroupTypeAsset:
				assets = assets.Sub(t.Amount)
			case ledger.AccountGroupTypeLiabilities:
				liabilities = liabilities.Sub(t.Amount)
			}
		}
		out = append(out, NetWorthPoint{
			Month:       m.String(),
			Assets:      assets,
			Liabilities: liabilities.Abs(),
			NetWorth:    assets.Sub(liabilities.Abs()),
		})
	}
	return out
}

func monthsEndingAt(month Month, n int) []Month {
	out := make([]Month, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = month
		month = month.Previous()
	}
	return out
}
