package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/report"
)

var reportNames = []string{"balance-sheet", "budget", "net-earnings", "labels", "items"}

func reportCommand(c *cli.Context) error {
	month := report.MonthOf(time.Now())
	if value := c.String("month"); value != "" {
		parsed, err := report.ParseMonth(value)
		if err != nil {
			return err
		}
		month = parsed
	}

	_, _, store, err := setup(c.Context)
	if err != nil {
		return err
	}
	defer store.Close()

	md, err := reportMarkdown(store.Load(c.Context), c.Args().First(), month)
	if err != nil {
		return err
	}
	if c.Bool("raw") {
		_, err = io.WriteString(c.App.Writer, md)
		return err
	}

	out, err := glamour.Render(md, c.String("style"))
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	_, err = io.WriteString(c.App.Writer, out)
	return err
}

// reportMarkdown builds the named report, or every report for "" and "all".
func reportMarkdown(s *ledger.State, name string, month report.Month) (string, error) {
	switch name {
	case "balance-sheet":
		return report.BalanceSheetMarkdown(s, report.BuildBalanceSheet(s)), nil
	case "budget":
		return report.BudgetMarkdown(s, report.BuildBudgetSummary(s, month)), nil
	case "net-earnings":
		return report.NetEarningsMarkdown(s, report.BuildNetEarnings(s, month)), nil
	case "labels":
		return report.LabelsMarkdown(s, report.BuildLabelsSummary(s, month)), nil
	case "items":
		return report.ItemsMarkdown(s, report.BuildItemSummary(s, month, "")), nil
	case "", "all":
		parts := make([]string, len(reportNames))
		for i, n := range reportNames {
			parts[i], _ = reportMarkdown(s, n, month)
		}
		return strings.Join(parts, "\n---\n\n"), nil
	}
	return "", fmt.Errorf("unknown report %q, want one of %s", name, strings.Join(reportNames, ", "))
}

func dumpCommand(c *cli.Context) error {
	_, _, store, err := setup(c.Context)
	if err != nil {
		return err
	}
	defer store.Close()

	dumpState(c.App.Writer, store.Load(c.Context))
	return nil
}

func dumpState(w io.Writer, s *ledger.State) {
	cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
	cfg.Fdump(w, s)
}
