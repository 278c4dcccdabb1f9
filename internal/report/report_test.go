package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func day(month time.Month, dayOfMonth int) time.Time {
	return time.Date(2026, month, dayOfMonth, 9, 0, 0, 0, time.UTC)
}

func tx(id string, typ ledger.TransactionType, amount int64, categoryID string, date time.Time, labels ...string) ledger.Transaction {
	return ledger.Transaction{
		ID: id, Type: typ, Amount: d(amount), CategoryID: categoryID, AccountID: "cash",
		Date: date, Labels: append([]string{}, labels...), Status: ledger.TransactionStatusNone,
	}
}

func fixture() *ledger.State {
	s := ledger.Empty()
	s.Settings.DefaultCurrency = "USD"
	s.AccountGroups = []ledger.AccountGroup{
		{ID: "ag-bank", Type: ledger.AccountGroupTypeAsset, Name: "Bank"},
		{ID: "ag-card", Type: ledger.AccountGroupTypeLiabilities, Name: "Cards"},
	}
	s.Accounts = []ledger.Account{
		{ID: "cash", GroupID: "ag-bank", Name: "Tiền mặt", Description: "Ví", BalanceNew: d(300), Currency: "USD"},
		{ID: "bank", GroupID: "ag-bank", Name: "Checking", Description: "Main bank", BalanceNew: d(700), Currency: "USD"},
		{ID: "visa", GroupID: "ag-card", Name: "Visa", BalanceNew: d(-250), Currency: "USD"},
		{ID: "lost", GroupID: "ag-gone", Name: "Lost", BalanceNew: d(5), Currency: "USD"},
	}
	s.CategoryGroups = []ledger.CategoryGroup{
		{ID: "g-living", Type: ledger.CategoryGroupTypeOutcome, Name: "Living", Budget: d(1000), EnableBudget: true},
		{ID: "g-fun", Type: ledger.CategoryGroupTypeOutcome, Name: "Fun"},
		{ID: "g-pay", Type: ledger.CategoryGroupTypeIncome, Name: "Pay"},
	}
	s.Categories = []ledger.Category{
		{ID: "food", GroupID: "g-living", Name: "Ăn uống", Budget: d(400), EnableBudget: true},
		{ID: "rent", GroupID: "g-living", Name: "Rent"},
		{ID: "games", GroupID: "g-fun", Name: "Games", Budget: d(100), EnableBudget: true},
		{ID: "movies", GroupID: "g-fun", Name: "Movies", Budget: d(50), EnableBudget: false},
		{ID: "salary", GroupID: "g-pay", Name: "Salary"},
	}
	s.Labels = []ledger.Label{{ID: "l-trip", Name: "Trip"}, {ID: "l-work", Name: "Work"}, {ID: "l-idle", Name: "Idle"}}
	s.Transactions = []ledger.Transaction{
		tx("t1", ledger.TransactionTypeExpense, -120, "food", day(time.March, 2), "l-trip"),
		tx("t2", ledger.TransactionTypeExpense, -80, "food", day(time.March, 5)),
		tx("t3", ledger.TransactionTypeExpense, -500, "rent", day(time.March, 1), "l-trip", "l-work"),
		tx("t4", ledger.TransactionTypeExpense, -60, "games", day(time.March, 9)),
		tx("t5", ledger.TransactionTypeIncome, 2000, "salary", day(time.March, 25), "l-work"),
		tx("t6", ledger.TransactionTypeTransfer, -300, ledger.TransferCategoryID, day(time.March, 26), "l-trip"),
		tx("t7", ledger.TransactionTypeIncome, 1500, "salary", day(time.February, 25)),
		tx("t8", ledger.TransactionTypeExpense, -200, "food", day(time.February, 3)),
		tx("t9", ledger.TransactionTypeExpense, -999, "food", day(time.April, 1)),
	}
	return s
}

var march = Month{Year: 2026, Month: time.March}

// -- balance sheet --

func TestBuildBalanceSheet(t *testing.T) {
	sheet := BuildBalanceSheet(fixture())

	require.Len(t, sheet.Assets, 1)
	require.Len(t, sheet.Liabilities, 1)
	assert.Len(t, sheet.Assets[0].Accounts, 2)
	assert.True(t, sheet.TotalAssets.Equal(d(1000)))
	assert.True(t, sheet.TotalLiabilities.Equal(d(250)), "liabilities are reported as an absolute value")
	assert.True(t, sheet.NetWorth.Equal(d(750)))
	require.Len(t, sheet.Orphans, 1)
	assert.Equal(t, "lost", sheet.Orphans[0].ID)
	assert.Equal(t, int64(70), sheet.Assets[0].Share(fixture().Accounts[1]))
}

func TestBuildBalanceSheet_Empty(t *testing.T) {
	sheet := BuildBalanceSheet(ledger.Empty())

	assert.Empty(t, sheet.Assets)
	assert.True(t, sheet.NetWorth.IsZero())
}

// -- budget --

func TestBuildBudgetSummary(t *testing.T) {
	summary := BuildBudgetSummary(fixture(), march)

	assert.Equal(t, "2026-03", summary.Month)
	require.Len(t, summary.Groups, 2)

	living := summary.Groups[0]
	assert.True(t, living.Budget.Equal(d(1000)), "group budget wins when enabled")
	assert.True(t, living.Spent.Equal(d(700)))
	assert.InDelta(t, 70.0, living.Percent, 0.001)
	require.Len(t, living.Categories, 2)
	assert.True(t, living.Categories[0].Spent.Equal(d(200)))
	assert.InDelta(t, 50.0, living.Categories[0].Percent, 0.001)
	assert.False(t, living.Categories[1].HasBudget)

	fun := summary.Groups[1]
	assert.True(t, fun.Budget.Equal(d(100)), "only enabled category budgets roll up")
	assert.True(t, fun.Spent.Equal(d(60)))
	assert.False(t, fun.Categories[1].HasBudget)
	assert.True(t, fun.Categories[1].Budget.IsZero())

	assert.True(t, summary.TotalBudget.Equal(d(1100)))
	assert.True(t, summary.TotalSpent.Equal(d(760)))
	assert.True(t, summary.TotalSpentWithinBudget.Equal(d(760)))
}

func TestBuildBudgetSummary_QuietMonth(t *testing.T) {
	summary := BuildBudgetSummary(fixture(), Month{Year: 2025, Month: time.January})

	assert.True(t, summary.TotalSpent.IsZero())
	assert.Zero(t, summary.Groups[0].Percent)
}

// -- net earnings --

func TestBuildNetEarnings(t *testing.T) {
	report := BuildNetEarnings(fixture(), march)

	assert.Equal(t, "2026-02", report.Previous.Month)
	assert.True(t, report.Current.Income.Equal(d(2000)))
	assert.True(t, report.Current.Expense.Equal(d(760)))
	assert.True(t, report.Current.Net.Equal(d(1240)))
	assert.True(t, report.Previous.Net.Equal(d(1300)))

	require.Len(t, report.Income.Groups, 1)
	assert.InDelta(t, 33.333, report.Income.Groups[0].Change, 0.01)

	require.Len(t, report.Expense.Groups, 2)
	living := report.Expense.Groups[0]
	assert.True(t, living.Previous.Equal(d(200)))
	assert.True(t, living.Current.Equal(d(700)))
	assert.True(t, report.Expense.TotalCurrent.Equal(d(760)))

	fun := report.Expense.Groups[1]
	require.Len(t, fun.Categories, 1, "movies has no activity in either month")
	assert.Equal(t, "games", fun.Categories[0].ID)
	assert.Zero(t, fun.Change)
}

func TestMonth_PreviousWrapsYear(t *testing.T) {
	assert.Equal(t, Month{Year: 2025, Month: time.December}, Month{Year: 2026, Month: time.January}.Previous())
	assert.Equal(t, 29, Month{Year: 2028, Month: time.February}.Days())

	m, err := ParseMonth("2026-03")
	require.NoError(t, err)
	assert.Equal(t, march, m)

	_, err = ParseMonth("March")
	assert.Error(t, err)
}

// -- labels --

func TestBuildLabelsSummary(t *testing.T) {
	summary := BuildLabelsSummary(fixture(), march)

	require.Len(t, summary.Labels, 3)
	assert.Equal(t, "l-work", summary.Labels[0].ID)
	assert.True(t, summary.Labels[0].Total.Equal(d(1500)))
	assert.Equal(t, "l-trip", summary.Labels[1].ID)
	assert.True(t, summary.Labels[1].Total.Equal(d(-620)), "transfers are ignored")
	assert.Equal(t, NoLabelsName, summary.Labels[2].Name)
	assert.True(t, summary.Labels[2].Total.Equal(d(-140)))
}

// -- search --

func TestSearch(t *testing.T) {
	s := fixture()

	cases := map[string]struct {
		query                    string
		txs, accounts, categories int
	}{
		"accent insensitive category": {query: "an uong", txs: 4, categories: 1},
		"accent insensitive account":  {query: "TIEN", txs: 9, accounts: 1},
		"account description":         {query: "main bank", accounts: 1},
		"blank":                       {query: "   "},
		"no match":                    {query: "zzz"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			result := Search(s, tc.query)

			assert.Len(t, result.Transactions, tc.txs)
			assert.Len(t, result.Accounts, tc.accounts)
			assert.Len(t, result.Categories, tc.categories)
		})
	}
}

func TestSearch_CapsTransactions(t *testing.T) {
	s := fixture()
	for i := 0; i < 15; i++ {
		s.Transactions = append(s.Transactions, tx("x", ledger.TransactionTypeExpense, -1, "food", day(time.May, 1)))
	}

	assert.Len(t, Search(s, "cash").Transactions, 0)
	assert.Len(t, Search(s, "tien mat").Transactions, maxTransactionHits)
}

// -- rendering --

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$1,234.50", FormatAmount(decimal.RequireFromString("1234.5"), "USD"))
	assert.Equal(t, "+$10.00", FormatSigned(d(10), "USD"))
	assert.Equal(t, "12 XYZ", FormatAmount(d(12), "XYZ"))
}

func TestNames_FallBackToUnknown(t *testing.T) {
	s := fixture()

	assert.Equal(t, "Rent", CategoryName(s, "rent"))
	assert.Equal(t, Unknown, CategoryName(s, "gone"))
	assert.Equal(t, Unknown, AccountName(s, "gone"))
}

func TestMarkdown(t *testing.T) {
	s := fixture()

	sheet := BalanceSheetMarkdown(s, BuildBalanceSheet(s))
	assert.Contains(t, sheet, "# Balance sheet")
	assert.Contains(t, sheet, "**Net worth:** $750.00")
	assert.Contains(t, sheet, "| Checking | $700.00 | 70% |")
	assert.Contains(t, sheet, "## Unknown")

	budget := BudgetMarkdown(s, BuildBudgetSummary(s, march))
	assert.Contains(t, budget, "# Budget 2026-03")
	assert.Contains(t, budget, "| **Living** | $700.00 | $1,000.00 | 70% |")
	assert.Contains(t, budget, "| Rent | $500.00 | - | - |")

	earnings := NetEarningsMarkdown(s, BuildNetEarnings(s, march))
	assert.Contains(t, earnings, "| **Net** | +$1,300.00 | +$1,240.00 |")

	labels := LabelsMarkdown(s, BuildLabelsSummary(s, march))
	assert.Contains(t, labels, "| Work | +$1,500.00 |")
	assert.Contains(t, LabelsMarkdown(s, BuildLabelsSummary(s, Month{Year: 2020, Month: time.May})), "_Nothing recorded_")
}
