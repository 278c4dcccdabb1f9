package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

// -- dashboard --

func TestBuildDashboard_DailySpending(t *testing.T) {
	dash := BuildDashboard(fixture(), day(time.March, 9))

	assert.Equal(t, "2026-03-09", dash.Date)
	require.Len(t, dash.Daily, 7)
	assert.Equal(t, "2026-03-03", dash.Daily[0].Date)
	assert.Equal(t, "Tue", dash.Daily[0].Weekday)
	assert.True(t, dash.Daily[2].Spent.Equal(d(80)))
	assert.Equal(t, "2026-03-09", dash.Daily[6].Date)
	assert.True(t, dash.Daily[6].Spent.Equal(d(60)))
	assert.True(t, dash.DailyAverage.Equal(d(20)))
}

func TestBuildDashboard_BudgetGroupsAndCalendar(t *testing.T) {
	dash := BuildDashboard(fixture(), day(time.March, 9))

	require.Len(t, dash.BudgetGroups, 2)
	assert.Equal(t, "Living", dash.BudgetGroups[0].Name)
	assert.True(t, dash.BudgetGroups[0].Spent.Equal(d(700)))
	assert.Equal(t, "Fun", dash.BudgetGroups[1].Name)
	assert.True(t, dash.BudgetGroups[1].Spent.Equal(d(60)))

	require.Len(t, dash.Calendar, 31)
	assert.True(t, dash.Calendar[4].HasExpense)
	assert.True(t, dash.Calendar[24].HasIncome)
	assert.False(t, dash.Calendar[25].HasIncome || dash.Calendar[25].HasExpense, "transfers mark nothing")
}

func TestBuildDashboard_UnknownCategoryGroup(t *testing.T) {
	s := fixture()
	s.Transactions = append(s.Transactions, tx("orphan", ledger.TransactionTypeExpense, -5, "gone", day(time.March, 3)))

	dash := BuildDashboard(s, day(time.March, 9))

	require.Len(t, dash.BudgetGroups, 3)
	assert.Equal(t, Unknown, dash.BudgetGroups[2].Name)
}

func TestBuildDashboard_Trend(t *testing.T) {
	dash := BuildDashboard(fixture(), day(time.March, 9))

	require.Len(t, dash.Trend, 3)
	assert.Equal(t, "2026-01", dash.Trend[0].Month)
	assert.True(t, dash.Trend[0].Net.IsZero())
	assert.True(t, dash.Trend[1].Net.Equal(d(1300)))
	assert.Equal(t, "2026-03", dash.Trend[2].Month)
	assert.True(t, dash.Trend[2].Income.Equal(d(2000)))
	assert.True(t, dash.Trend[2].Expense.Equal(d(760)))
}

func TestBuildDashboard_NetWorthWalksBackFromCurrentBalances(t *testing.T) {
	dash := BuildDashboard(fixture(), day(time.March, 9))

	require.Len(t, dash.NetWorth, 6)
	assert.Equal(t, "2025-10", dash.NetWorth[0].Month)

	mar := dash.NetWorth[5]
	assert.Equal(t, "2026-03", mar.Month)
	assert.True(t, mar.Assets.Equal(d(1999)), "the April expense is undone")
	assert.True(t, mar.Liabilities.Equal(d(250)))
	assert.True(t, mar.NetWorth.Equal(d(1749)))

	feb := dash.NetWorth[4]
	assert.True(t, feb.Assets.Equal(d(1059)))
	assert.True(t, feb.NetWorth.Equal(d(809)))

	assert.True(t, dash.NetWorth[0].Assets.Equal(d(-241)))
}

// -- item summary --

func TestBuildItemSummary(t *testing.T) {
	summary := BuildItemSummary(fixture(), march, "")

	assert.Equal(t, "2026-03", summary.Month)
	require.Len(t, summary.Expense, 3)
	assert.Equal(t, "rent", summary.Expense[0].ID)
	assert.InDelta(t, 100, summary.Expense[0].Share, 0.001)
	assert.Equal(t, "food", summary.Expense[1].ID)
	assert.InDelta(t, 40, summary.Expense[1].Share, 0.001)
	assert.Equal(t, "games", summary.Expense[2].ID)
	assert.True(t, summary.TotalExpense.Equal(d(-760)))

	require.Len(t, summary.Income, 1)
	assert.Equal(t, "Salary", summary.Income[0].Name)
	assert.True(t, summary.TotalIncome.Equal(d(2000)))
	assert.Empty(t, summary.Transactions)
}

func TestBuildItemSummary_DrillDown(t *testing.T) {
	summary := BuildItemSummary(fixture(), march, "food")

	assert.Equal(t, "food", summary.CategoryID)
	require.Len(t, summary.Transactions, 2)
	assert.Equal(t, "t1", summary.Transactions[0].ID)
	assert.Equal(t, "t2", summary.Transactions[1].ID)
}

func TestBuildItemSummary_ZeroNetIsDropped(t *testing.T) {
	s := fixture()
	s.Transactions = append(s.Transactions, tx("refund", ledger.TransactionTypeIncome, 60, "games", day(time.March, 10)))

	summary := BuildItemSummary(s, march, "")

	assert.Len(t, summary.Expense, 2)
	for _, item := range summary.Expense {
		assert.NotEqual(t, "games", item.ID)
	}
}

func TestItemsMarkdown(t *testing.T) {
	s := fixture()

	md := ItemsMarkdown(s, BuildItemSummary(s, march, ""))

	assert.Contains(t, md, "# Items 2026-03")
	assert.Contains(t, md, "| Rent | -$500.00 |")
	assert.Contains(t, md, "| Salary | +$2,000.00 |")
	assert.Contains(t, ItemsMarkdown(s, BuildItemSummary(s, Month{Year: 2020, Month: time.May}, "")), "_Nothing recorded_")
}
