package ledger

import (
	"github.com/shopspring/decimal"
)

// RecalculateBalances returns a copy of accounts where every BalanceNew is
// BalanceStart plus the sum of the amounts of transactions booked on the
// account. Only active transactions must be passed in. The inputs are not
// modified.
func RecalculateBalances(transactions []Transaction, accounts []Account) []Account {
	sums := make(map[string]decimal.Decimal, len(accounts))
	for _, t := range transactions {
		sums[t.AccountID] = sums[t.AccountID].Add(t.Amount)
	}

	out := make([]Account, len(accounts))
	for i, acc := range accounts {
		acc.BalanceNew = acc.BalanceStart.Add(sums[acc.ID])
		out[i] = acc
	}
	return out
}

// withBalances recomputes the account cache of s in place. s must be a
// fresh copy owned by the caller.
func (s *State) withBalances() *State {
	s.Accounts = RecalculateBalances(s.Transactions, s.Accounts)
	return s
}
