package report

import (
	"fmt"
	"time"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

// Month identifies a calendar month. Transaction dates are compared in UTC.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	t = t.UTC()
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth accepts the "2006-01" form.
func ParseMonth(value string) (Month, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return Month{}, fmt.Errorf("parse month %q: %w", value, err)
	}
	return MonthOf(t), nil
}

func (m Month) Previous() Month {
	return MonthOf(time.Date(m.Year, m.Month-1, 1, 0, 0, 0, 0, time.UTC))
}

func (m Month) Contains(t time.Time) bool {
	return MonthOf(t) == m
}

func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// end is the first instant of the following month.
func (m Month) end() time.Time {
	return time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) filter(transactions []ledger.Transaction) []ledger.Transaction {
	out := []ledger.Transaction{}
	for _, t := range transactions {
		if m.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}
