package report

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

type BalanceSheetGroup struct {
	Group    ledger.AccountGroup `json:"group"`
	Accounts []ledger.Account    `json:"accounts"`
	Total    decimal.Decimal     `json:"total"`
}

// BalanceSheet splits accounts by the type of their group. Accounts whose group
// no longer exists are listed under Orphans and count toward neither side.
type BalanceSheet struct {
	Assets           []BalanceSheetGroup `json:"assets"`
	Liabilities      []BalanceSheetGroup `json:"liabilities"`
	Orphans          []ledger.Account    `json:"orphans"`
	TotalAssets      decimal.Decimal     `json:"totalAssets"`
	TotalLiabilities decimal.Decimal     `json:"totalLiabilities"`
	NetWorth         decimal.Decimal     `json:"netWorth"`
}

func BuildBalanceSheet(s *ledger.State) BalanceSheet {
	sheet := BalanceSheet{
		Assets:      []BalanceSheetGroup{},
		Liabilities: []BalanceSheetGroup{},
		Orphans:     []ledger.Account{},
	}

	liabilities := decimal.Zero
	for _, group := range s.AccountGroups {
		row := BalanceSheetGroup{Group: group, Accounts: []ledger.Account{}, Total: decimal.Zero}
		for _, acc := range s.Accounts {
			if acc.GroupID == group.ID {
				row.Accounts = append(row.Accounts, acc)
				row.Total = row.Total.Add(acc.BalanceNew)
			}
		}

		switch group.Type {
		case ledger.AccountGroupTypeAsset:
			sheet.Assets = append(sheet.Assets, row)
			sheet.TotalAssets = sheet.TotalAssets.Add(row.Total)
		case ledger.AccountGroupTypeLiabilities:
			sheet.Liabilities = append(sheet.Liabilities, row)
			liabilities = liabilities.Add(row.Total)
		}
	}

	for _, acc := range s.Accounts {
		if _, ok := s.AccountGroup(acc.GroupID); !ok {
			sheet.Orphans = append(sheet.Orphans, acc)
		}
	}

	sheet.TotalLiabilities = liabilities.Abs()
	sheet.NetWorth = sheet.TotalAssets.Sub(sheet.TotalLiabilities)
	return sheet
}

// Share is the account's percentage of its group total, rounded to a whole number.
func (g BalanceSheetGroup) Share(acc ledger.Account) int64 {
	if !g.Total.IsPositive() {
		return 0
	}
	return acc.BalanceNew.Div(g.Total).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
