package account

import (
	"github.com/carson-networks/finance-ledger/internal/ledger"

	v1 "github.com/carson-networks/finance-ledger/internal/handlers/v1"
)

// Account is the API response model for an account.
type Account struct {
	ID              string `json:"id" doc:"Account ID"`
	GroupID         string `json:"groupID" doc:"Account group ID"`
	Name            string `json:"name" doc:"Account name"`
	Description     string `json:"description" doc:"Description"`
	DateStart       string `json:"dateStart" doc:"RFC3339 opening date"`
	BalanceStart    string `json:"balanceStart" doc:"Decimal starting balance. Reads back as 0 for accounts created through the API, whose opening amount is booked as a transaction"`
	OpeningBalance  string `json:"openingBalance" doc:"Decimal opening amount entered at creation, for reference only"`
	BalanceNew      string `json:"balanceNew" doc:"Decimal current balance"`
	Currency        string `json:"currency" doc:"ISO 4217 currency code"`
	Note            string `json:"note" doc:"Free text note"`
	ShowInSelection bool   `json:"showInSelection" doc:"Offered when picking an account for a transaction"`
}

// AccountGroup is the API model for an account group.
type AccountGroup struct {
	ID          string `json:"id" doc:"Account group ID"`
	Type        string `json:"type" enum:"Asset,Liabilities" doc:"Balance sheet side"`
	Name        string `json:"name" doc:"Group name"`
	Description string `json:"description" doc:"Description"`
	Icon        string `json:"icon" doc:"Icon name"`
}

func fromLedger(acc ledger.Account) Account {
	return Account{
		ID:              acc.ID,
		GroupID:         acc.GroupID,
		Name:            acc.Name,
		Description:     acc.Description,
		DateStart:       v1.FormatTime(acc.DateStart),
		BalanceStart:    acc.BalanceStart.String(),
		OpeningBalance:  acc.OpeningBalance.String(),
		BalanceNew:      acc.BalanceNew.String(),
		Currency:        acc.Currency,
		Note:            acc.Note,
		ShowInSelection: acc.ShowInSelection,
	}
}

func groupFromLedger(g ledger.AccountGroup) AccountGroup {
	return AccountGroup{
		ID:          g.ID,
		Type:        string(g.Type),
		Name:        g.Name,
		Description: g.Description,
		Icon:        g.Icon,
	}
}
