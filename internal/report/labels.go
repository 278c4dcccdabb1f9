package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

const (
	NoLabelsID   = "none"
	NoLabelsName = "(No Labels)"
)

type LabelTotal struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

type LabelsSummary struct {
	Month  string       `json:"month"`
	Labels []LabelTotal `json:"labels"`
}

// BuildLabelsSummary totals the signed amounts of the month's non-transfer
// transactions per label. A transaction counts once for each of its labels;
// unlabelled ones go to the "(No Labels)" row. Zero rows are dropped and the
// rest sorted by absolute total, largest first.
func BuildLabelsSummary(s *ledger.State, month Month) LabelsSummary {
	totals := map[string]decimal.Decimal{}
	unlabelled := decimal.Zero

	for _, t := range month.filter(s.Transactions) {
		if t.Type == ledger.TransactionTypeTransfer {
			continue
		}
		if len(t.Labels) == 0 {
			unlabelled = unlabelled.Add(t.Amount)
			continue
		}
		for _, id := range t.Labels {
			totals[id] = totals[id].Add(t.Amount)
		}
	}

	summary := LabelsSummary{Month: month.String(), Labels: []LabelTotal{}}
	for _, label := range s.Labels {
		total := totals[label.ID]
		if total.IsZero() {
			continue
		}
		summary.Labels = append(summary.Labels, LabelTotal{ID: label.ID, Name: label.Name, Total: total})
	}
	if !unlabelled.IsZero() {
		summary.Labels = append(summary.Labels, LabelTotal{ID: NoLabelsID, Name: NoLabelsName, Total: unlabelled})
	}

	sort.SliceStable(summary.Labels, func(i, j int) bool {
		return summary.Labels[i].Total.Abs().GreaterThan(summary.Labels[j].Total.Abs())
	})
	return summary
}
