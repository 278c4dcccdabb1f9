package report

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

const maxTransactionHits = 10

type SearchResult struct {
	Transactions []ledger.Transaction `json:"transactions"`
	Accounts     []ledger.Account     `json:"accounts"`
	Categories   []ledger.Category    `json:"categories"`
}

func (r SearchResult) Total() int {
	return len(r.Transactions) + len(r.Accounts) + len(r.Categories)
}

// Search matches query case- and accent-insensitively against transactions
// (note, category name, account name), accounts (name, description) and
// categories (name). At most ten transactions are returned. A blank query
// matches nothing.
func Search(s *ledger.State, query string) SearchResult {
	result := SearchResult{
		Transactions: []ledger.Transaction{},
		Accounts:     []ledger.Account{},
		Categories:   []ledger.Category{},
	}
	if strings.TrimSpace(query) == "" {
		return result
	}
	q := fold(query)

	for _, t := range s.Transactions {
		if len(result.Transactions) == maxTransactionHits {
			break
		}
		cat, _ := s.Category(t.CategoryID)
		acc, _ := s.Account(t.AccountID)
		if strings.Contains(fold(t.Note+" "+cat.Name+" "+acc.Name), q) {
			result.Transactions = append(result.Transactions, t)
		}
	}
	for _, acc := range s.Accounts {
		if strings.Contains(fold(acc.Name+" "+acc.Description), q) {
			result.Accounts = append(result.Accounts, acc)
		}
	}
	for _, cat := range s.Categories {
		if strings.Contains(fold(cat.Name), q) {
			result.Categories = append(result.Categories, cat)
		}
	}
	return result
}

// fold lower-cases value and strips combining marks, so "Tiền Mặt" matches "tien mat".
func fold(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(value))
	if err != nil {
		return strings.ToLower(value)
	}
	return folded
}
