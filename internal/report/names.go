package report

import "github.com/carson-networks/finance-ledger/internal/ledger"

// Unknown stands in for a category or account that no longer exists.
const Unknown = "Unknown"

func CategoryName(s *ledger.State, id string) string {
	if cat, ok := s.Category(id); ok {
		return cat.Name
	}
	return Unknown
}

func AccountName(s *ledger.State, id string) string {
	if acc, ok := s.Account(id); ok {
		return acc.Name
	}
	return Unknown
}
