package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/report"
)

const (
	recentTransactions = 50

	// FallbackMessage is returned when the model cannot be reached.
	FallbackMessage = "Không thể kết nối với chuyên gia AI lúc này. Vui lòng thử lại sau."
)

var ErrUnavailable = errors.New("insights: generator unavailable")

// IGenerator turns a prompt into free text.
//
//go:generate mockery --name IGenerator --output mock_IGenerator.go
type IGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Unavailable is used when no model client could be created.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, string) (string, error) {
	return "", ErrUnavailable
}

type Advisor struct {
	Generator IGenerator
	Logger    *logrus.Logger
}

func NewAdvisor(generator IGenerator, logger *logrus.Logger) *Advisor {
	return &Advisor{Generator: generator, Logger: logger}
}

// Insights asks the model for a short analysis of the snapshot. Failures are
// logged and answered with FallbackMessage.
func (a *Advisor) Insights(ctx context.Context, s *ledger.State) string {
	text, err := a.Generator.Generate(ctx, BuildPrompt(s))
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("empty response from model")
	}
	if err != nil {
		a.Logger.WithError(err).Error("Insights.Generate.Error")
		return FallbackMessage
	}
	return text
}

// BuildPrompt summarizes account balances and the most recent transactions.
func BuildPrompt(s *ledger.State) string {
	balances := make([]string, 0, len(s.Accounts))
	for _, acc := range s.Accounts {
		balances = append(balances, fmt.Sprintf("%s: %s", acc.Name, acc.BalanceNew))
	}

	txs := s.Transactions
	if len(txs) > recentTransactions {
		txs = txs[:recentTransactions]
	}
	lines := make([]string, 0, len(txs))
	for _, t := range txs {
		lines = append(lines, fmt.Sprintf("%s: %s %s (%s) via %s - %s",
			t.Date.Format("2006-01-02"), t.Amount, t.Type,
			report.CategoryName(s, t.CategoryID), report.AccountName(s, t.AccountID), t.Note))
	}

	return "As a professional financial advisor, analyze my recent transactions and overall net worth.\n" +
		"Current Accounts: " + strings.Join(balances, ", ") + "\n" +
		"Recent Transactions:\n" + strings.Join(lines, "\n") + "\n\n" +
		"Provide:\n" +
		"1. A short summary of my spending habits this month.\n" +
		"2. One specific tip to save more money based on the data.\n" +
		"3. An overall \"Financial Health Score\" from 0-100.\n" +
		"4. Categorize my spending into \"Needs\", \"Wants\", and \"Savings/Debt\".\n\n" +
		"Keep the response concise and friendly in Vietnamese.\n"
}
