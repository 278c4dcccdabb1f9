package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

// BalanceSheetMarkdown renders the balance sheet as a markdown document in the
// default currency.
func BalanceSheetMarkdown(s *ledger.State, sheet BalanceSheet) string {
	cur := s.Settings.DefaultCurrency
	var b strings.Builder

	b.WriteString("# Balance sheet\n\n")
	fmt.Fprintf(&b, "**Net worth:** %s\n\n", FormatAmount(sheet.NetWorth, cur))

	fmt.Fprintf(&b, "## Assets (%s)\n\n", FormatAmount(sheet.TotalAssets, cur))
	writeAccountGroups(&b, sheet.Assets, cur)

	fmt.Fprintf(&b, "## Liabilities (%s)\n\n", FormatAmount(sheet.TotalLiabilities, cur))
	writeAccountGroups(&b, sheet.Liabilities, cur)

	if len(sheet.Orphans) > 0 {
		b.WriteString("## " + Unknown + "\n\n")
		b.WriteString("| Account | Balance |\n|---|---:|\n")
		for _, acc := range sheet.Orphans {
			fmt.Fprintf(&b, "| %s | %s |\n", escape(acc.Name), FormatAmount(acc.BalanceNew, acc.Currency))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeAccountGroups(b *strings.Builder, groups []BalanceSheetGroup, cur string) {
	for _, g := range groups {
		fmt.Fprintf(b, "### %s: %s\n\n", escape(g.Group.Name), FormatAmount(g.Total, cur))
		if len(g.Accounts) == 0 {
			b.WriteString("_No accounts_\n\n")
			continue
		}
		b.WriteString("| Account | Balance | Share |\n|---|---:|---:|\n")
		for _, acc := range g.Accounts {
			fmt.Fprintf(b, "| %s | %s | %d%% |\n", escape(acc.Name), FormatAmount(acc.BalanceNew, acc.Currency), g.Share(acc))
		}
		b.WriteString("\n")
	}
}

// BudgetMarkdown renders a budget summary as a markdown document.
func BudgetMarkdown(s *ledger.State, summary BudgetSummary) string {
	cur := s.Settings.DefaultCurrency
	var b strings.Builder

	fmt.Fprintf(&b, "# Budget %s\n\n", summary.Month)
	fmt.Fprintf(&b, "Spent %s of %s (%.0f%%)\n\n",
		FormatAmount(summary.TotalSpent, cur), FormatAmount(summary.TotalBudget, cur), summary.Percent)

	b.WriteString("| Group / category | Spent | Budget | % |\n|---|---:|---:|---:|\n")
	for _, g := range summary.Groups {
		fmt.Fprintf(&b, "| **%s** | %s | %s | %s |\n",
			escape(g.Name), FormatAmount(g.Spent, cur), budgetCell(g.BudgetLine, cur), percentCell(g.BudgetLine))
		for _, c := range g.Categories {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				escape(c.Name), FormatAmount(c.Spent, cur), budgetCell(c, cur), percentCell(c))
		}
	}
	return b.String()
}

// NetEarningsMarkdown renders the month-over-month comparison.
func NetEarningsMarkdown(s *ledger.State, report NetEarnings) string {
	cur := s.Settings.DefaultCurrency
	var b strings.Builder

	fmt.Fprintf(&b, "# Net earnings %s\n\n", report.Current.Month)
	b.WriteString("| | " + report.Previous.Month + " | " + report.Current.Month + " |\n|---|---:|---:|\n")
	writeCompareRow(&b, "Income", report.Previous.Income, report.Current.Income, cur)
	writeCompareRow(&b, "Expense", report.Previous.Expense, report.Current.Expense, cur)
	fmt.Fprintf(&b, "| **Net** | %s | %s |\n\n", FormatSigned(report.Previous.Net, cur), FormatSigned(report.Current.Net, cur))

	for _, section := range []struct {
		title string
		data  EarningsSection
	}{{"Income", report.Income}, {"Expense", report.Expense}} {
		if len(section.data.Groups) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n| | Previous | Current |\n|---|---:|---:|\n", section.title)
		for _, g := range section.data.Groups {
			writeCompareRow(&b, "**"+escape(g.Name)+"**", g.Previous, g.Current, cur)
			for _, c := range g.Categories {
				writeCompareRow(&b, escape(c.Name), c.Previous, c.Current, cur)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// LabelsMarkdown renders the per-label totals of a month.
func LabelsMarkdown(s *ledger.State, summary LabelsSummary) string {
	cur := s.Settings.DefaultCurrency
	var b strings.Builder

	fmt.Fprintf(&b, "# Labels %s\n\n", summary.Month)
	if len(summary.Labels) == 0 {
		b.WriteString("_Nothing recorded_\n")
		return b.String()
	}
	b.WriteString("| Label | Total |\n|---|---:|\n")
	for _, l := range summary.Labels {
		fmt.Fprintf(&b, "| %s | %s |\n", escape(l.Name), FormatSigned(l.Total, cur))
	}
	return b.String()
}

// ItemsMarkdown renders the per-category nets of a month, expense side first.
func ItemsMarkdown(s *ledger.State, summary ItemSummary) string {
	cur := s.Settings.DefaultCurrency
	var b strings.Builder

	fmt.Fprintf(&b, "# Items %s\n\n", summary.Month)
	if len(summary.Expense) == 0 && len(summary.Income) == 0 {
		b.WriteString("_Nothing recorded_\n")
		return b.String()
	}
	b.WriteString("| Category | Total |\n|---|---:|\n")
	for _, item := range append(append([]Item{}, summary.Expense...), summary.Income...) {
		fmt.Fprintf(&b, "| %s | %s |\n", escape(item.Name), FormatSigned(item.Total, cur))
	}
	fmt.Fprintf(&b, "\n**Expense:** %s  \n**Income:** %s\n",
		FormatSigned(summary.TotalExpense, cur), FormatSigned(summary.TotalIncome, cur))
	return b.String()
}

func writeCompareRow(b *strings.Builder, name string, prev, curr decimal.Decimal, cur string) {
	fmt.Fprintf(b, "| %s | %s | %s |\n", name, FormatAmount(prev, cur), FormatAmount(curr, cur))
}

func budgetCell(line BudgetLine, cur string) string {
	if !line.HasBudget {
		return "-"
	}
	return FormatAmount(line.Budget, cur)
}

func percentCell(line BudgetLine) string {
	if !line.HasBudget {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", line.Percent)
}

func escape(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}
