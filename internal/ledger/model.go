package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "Income"
	TransactionTypeExpense  TransactionType = "Expense"
	TransactionTypeTransfer TransactionType = "Transfer"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// TransactionStatus is the reconciliation state of a transaction.
type TransactionStatus string

const (
	TransactionStatusNone       TransactionStatus = "None"
	TransactionStatusCleared    TransactionStatus = "Cleared"
	TransactionStatusReconciled TransactionStatus = "Reconciled"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusNone, TransactionStatusCleared, TransactionStatusReconciled:
		return true
	}
	return false
}

// AccountGroupType splits account groups for the balance sheet.
type AccountGroupType string

const (
	AccountGroupTypeAsset       AccountGroupType = "Asset"
	AccountGroupTypeLiabilities AccountGroupType = "Liabilities"
)

func (t AccountGroupType) Valid() bool {
	return t == AccountGroupTypeAsset || t == AccountGroupTypeLiabilities
}

// CategoryGroupType decides which transaction types may use a category.
type CategoryGroupType string

const (
	CategoryGroupTypeIncome     CategoryGroupType = "Income"
	CategoryGroupTypeOutcome    CategoryGroupType = "Outcome"
	CategoryGroupTypeTransfer   CategoryGroupType = "Transfer"
	CategoryGroupTypeNewAccount CategoryGroupType = "New Account"
)

func (t CategoryGroupType) Valid() bool {
	switch t {
	case CategoryGroupTypeIncome, CategoryGroupTypeOutcome, CategoryGroupTypeTransfer, CategoryGroupTypeNewAccount:
		return true
	}
	return false
}

// Reserved categories from the seed dataset.
const (
	TransferCategoryID   = "cat-12"
	NewAccountCategoryID = "cat-13"
)

// Transaction is one ledger row. A transfer is stored as two rows, one per leg.
type Transaction struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        TransactionType   `json:"type"`
	CategoryID  string            `json:"categoryId"`
	AccountID   string            `json:"accountId"`
	ToAccountID string            `json:"toAccountId,omitempty"`
	Note        string            `json:"note"`
	Labels      []string          `json:"labels"`
	Status      TransactionStatus `json:"status"`
}

// HasLabel reports whether the transaction is tagged with labelID.
func (t Transaction) HasLabel(labelID string) bool {
	for _, id := range t.Labels {
		if id == labelID {
			return true
		}
	}
	return false
}

func (t Transaction) clone() Transaction {
	t.Labels = append([]string{}, t.Labels...)
	return t
}

// Account holds money. BalanceNew is derived, see RecalculateBalances.
//
// OpeningBalance records the amount entered when the account was created.
// That amount is booked as a transaction, so BalanceStart stays zero and
// OpeningBalance takes no part in any balance.
type Account struct {
	ID              string          `json:"id"`
	GroupID         string          `json:"groupId"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	DateStart       time.Time       `json:"dateStart"`
	BalanceStart    decimal.Decimal `json:"balanceStart"`
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	BalanceNew      decimal.Decimal `json:"balanceNew"`
	Currency        string          `json:"currency"`
	Note            string          `json:"note"`
	ShowInSelection bool            `json:"showInSelection"`
}

type AccountGroup struct {
	ID          string           `json:"id"`
	Type        AccountGroupType `json:"type"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
}

type Category struct {
	ID           string          `json:"id"`
	GroupID      string          `json:"groupId"`
	Name         string          `json:"name"`
	Icon         string          `json:"icon"`
	Color        string          `json:"color"`
	Budget       decimal.Decimal `json:"budget"`
	EnableBudget bool            `json:"enableBudget"`
	Description  string          `json:"description"`
}

type CategoryGroup struct {
	ID           string            `json:"id"`
	Type         CategoryGroupType `json:"type"`
	Name         string            `json:"name"`
	Budget       decimal.Decimal   `json:"budget"`
	EnableBudget bool              `json:"enableBudget"`
	Description  string            `json:"description"`
	Icon         string            `json:"icon"`
}

type Label struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Settings are process-wide preferences.
type Settings struct {
	DefaultCurrency      string `json:"defaultCurrency"`
	Theme                string `json:"theme"`
	Language             string `json:"language"`
	RememberLastAccount  bool   `json:"rememberLastAccount"`
	RememberLastCategory bool   `json:"rememberLastCategory"`
	RememberLastCurrency bool   `json:"rememberLastCurrency"`
	LastAccountID        string `json:"lastAccountId,omitempty"`
	LastCategoryID       string `json:"lastCategoryId,omitempty"`
	LastCurrency         string `json:"lastCurrency,omitempty"`
}

// DefaultSettings are used by the seed dataset.
func DefaultSettings() Settings {
	return Settings{
		DefaultCurrency:      "VND",
		Theme:                "blue",
		Language:             "vi",
		RememberLastAccount:  true,
		RememberLastCategory: true,
		RememberLastCurrency: true,
	}
}
