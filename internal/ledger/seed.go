package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seed returns the dataset used when no usable persisted state exists.
// Opening balances are booked as new-account transactions, so every
// seeded account starts from zero.
func Seed() *State {
	s := &State{
		Transactions:        seedTransactions(),
		DeletedTransactions: []Transaction{},
		Accounts:            seedAccounts(),
		AccountGroups:       seedAccountGroups(),
		CategoryGroups:      seedCategoryGroups(),
		Categories:          seedCategories(),
		Labels:              seedLabels(),
		Settings:            DefaultSettings(),
	}
	return s.withBalances()
}

func seedAccountGroups() []AccountGroup {
	return []AccountGroup{
		{ID: "ag-1", Type: AccountGroupTypeAsset, Name: "Real estate", Description: "Real estate", Icon: "🏠"},
		{ID: "ag-2", Type: AccountGroupTypeAsset, Name: "Bank", Description: "Bank", Icon: "🏦"},
		{ID: "ag-3", Type: AccountGroupTypeAsset, Name: "Receivables", Description: "Money owed to me", Icon: "📑"},
		{ID: "ag-4", Type: AccountGroupTypeAsset, Name: "Cash", Description: "Cash", Icon: "💵"},
		{ID: "ag-5", Type: AccountGroupTypeAsset, Name: "Investments", Description: "Investments", Icon: "📈"},
		{ID: "ag-6", Type: AccountGroupTypeLiabilities, Name: "Credit card", Description: "Credit cards", Icon: "💳"},
		{ID: "ag-7", Type: AccountGroupTypeLiabilities, Name: "Mortgage", Description: "Mortgage", Icon: "🤝"},
	}
}

func seedAccounts() []Account {
	acc := func(id, group, name, description, start string) Account {
		return Account{
			ID:              id,
			GroupID:         group,
			Name:            name,
			Description:     description,
			DateStart:       seedDate(start),
			BalanceStart:    decimal.Zero,
			BalanceNew:      decimal.Zero,
			Currency:        "VND",
			ShowInSelection: true,
		}
	}
	return []Account{
		acc("acc-1", "ag-1", "Real estate", "Real estate", "2023-01-01"),
		acc("acc-2", "ag-2", "Savings", "Savings 1", "2025-01-01"),
		acc("acc-3", "ag-2", "Savings 2", "Savings 2", "2025-01-01"),
		acc("acc-4", "ag-3", "Receivable 1", "Receivable 1", "2025-01-01"),
		acc("acc-5", "ag-4", "Wallet", "Cash", "2025-01-01"),
		acc("acc-6", "ag-4", "Debit card", "Bank card", "2025-01-01"),
		acc("acc-7", "ag-5", "Gold", "Gold", "2025-01-01"),
		acc("acc-8", "ag-5", "Brokerage", "Brokerage account", "2025-01-01"),
		acc("acc-9", "ag-6", "Credit card", "Card 1", "2025-01-01"),
		acc("acc-10", "ag-7", "Home mortgage", "Home mortgage", "2025-01-01"),
	}
}

func seedCategoryGroups() []CategoryGroup {
	group := func(id string, t CategoryGroupType, name, description, icon string, budget int64) CategoryGroup {
		return CategoryGroup{
			ID:           id,
			Type:         t,
			Name:         name,
			Budget:       decimal.NewFromInt(budget),
			EnableBudget: budget > 0,
			Description:  description,
			Icon:         icon,
		}
	}
	return []CategoryGroup{
		group("cg-1", CategoryGroupTypeOutcome, "Utilities", "Daily utilities", "⚡", 0),
		group("cg-2", CategoryGroupTypeOutcome, "Vehicles", "Vehicle costs", "🚗", 0),
		group("cg-3", CategoryGroupTypeOutcome, "Household", "Household spending", "🏠", 2000000),
		group("cg-4", CategoryGroupTypeOutcome, "Other", "Other", "📦", 0),
		group("cg-5", CategoryGroupTypeOutcome, "Entertainment", "Entertainment", "🎮", 0),
		group("cg-6", CategoryGroupTypeIncome, "Work", "Earned income", "🛠️", 0),
		group("cg-7", CategoryGroupTypeTransfer, "(Transfer)", "Transfers", "🔄", 0),
		group("cg-8", CategoryGroupTypeNewAccount, "(New account)", "(New account)", "🆕", 0),
	}
}

func seedCategories() []Category {
	cat := func(id, group, name, icon, color, description string, budget int64) Category {
		return Category{
			ID:           id,
			GroupID:      group,
			Name:         name,
			Icon:         icon,
			Color:        color,
			Budget:       decimal.NewFromInt(budget),
			EnableBudget: budget > 0,
			Description:  description,
		}
	}
	return []Category{
		cat("cat-1", "cg-1", "Homeware", "🛋️", "#3B82F6", "Things for the house", 0),
		cat("cat-2", "cg-1", "Clothes", "👕", "#6366F1", "Clothes", 0),
		cat("cat-3", "cg-2", "Fuel", "⛽", "#F59E0B", "Fuel", 0),
		cat("cat-4", "cg-2", "Repairs", "🔧", "#7C3AED", "Vehicle repairs", 0),
		cat("cat-5", "cg-3", "Medicine", "💊", "#10B981", "Medicine", 0),
		cat("cat-6", "cg-3", "Food", "🍲", "#EF4444", "Food and drinks", 2000000),
		cat("cat-7", "cg-4", "Other", "📦", "#94A3B8", "Other", 0),
		cat("cat-8", "cg-1", "Electricity", "⚡", "#EAB308", "Electricity bill", 0),
		cat("cat-9", "cg-1", "Rent", "🔑", "#EC4899", "Rent", 0),
		cat("cat-10", "cg-6", "Salary", "💰", "#059669", "Salary", 0),
		cat("cat-11", "cg-6", "Bonus", "🏆", "#8B5CF6", "Bonus", 0),
		cat(TransferCategoryID, "cg-7", "(Transfer)", "🔄", "#64748B", "Transfer", 0),
		cat(NewAccountCategoryID, "cg-8", "(New account)", "🆕", "#0EA5E9", "(New account)", 0),
		cat("cat-14", "cg-5", "Gifts", "🎁", "#F43F5E", "Gifts", 0),
	}
}

func seedLabels() []Label {
	return []Label{
		{ID: "lbl-1", Name: "Business", CreatedAt: seedDate("2025-01-01")},
		{ID: "lbl-2", Name: "Bonus", CreatedAt: seedDate("2025-02-01")},
		{ID: "lbl-3", Name: "Education", CreatedAt: seedDate("2025-03-01")},
		{ID: "lbl-4", Name: "Other", CreatedAt: seedDate("2025-01-01")},
	}
}

func seedTransactions() []Transaction {
	tx := func(id, date string, amount int64, t TransactionType, category, account, note string, status TransactionStatus, labels ...string) Transaction {
		if labels == nil {
			labels = []string{}
		}
		return Transaction{
			ID:         id,
			Date:       seedDate(date),
			Amount:     decimal.NewFromInt(amount),
			Type:       t,
			CategoryID: category,
			AccountID:  account,
			Note:       note,
			Labels:     labels,
			Status:     status,
		}
	}
	const (
		income   = TransactionTypeIncome
		expense  = TransactionTypeExpense
		transfer = TransactionTypeTransfer
		none     = TransactionStatusNone
		cleared  = TransactionStatusCleared
		recon    = TransactionStatusReconciled
	)
	return []Transaction{
		tx("t-1-out", "2026-01-15T12:41:47", -47000000, transfer, TransferCategoryID, "acc-5", "January savings (transfer out)", none),
		tx("t-1-in", "2026-01-15T12:41:47", 47000000, transfer, TransferCategoryID, "acc-2", "January savings (transfer in)", none),
		tx("t-2", "2026-01-15T12:38:44", -315000, expense, "cat-1", "acc-5", "Bed sheets", none),
		tx("t-3", "2026-01-15T12:38:22", -480000, expense, "cat-2", "acc-5", "Dress for mum", none, "lbl-1"),
		tx("t-4", "2026-01-15T12:37:50", 52000000, income, "cat-10", "acc-5", "Salary", none),
		tx("t-5", "2026-01-14T16:40:26", -174000, expense, "cat-6", "acc-5", "Groceries", none),
		tx("t-6", "2026-01-14T16:39:49", -200000, expense, "cat-6", "acc-5", "Drinks", none),
		tx("t-7", "2026-01-12T11:15:32", -500000, expense, "cat-6", "acc-5", "Groceries", none),
		tx("t-8", "2026-01-12T11:12:48", -3367000, expense, "cat-14", "acc-5", "Shopping with grandma", none),
		tx("t-9", "2026-01-11T07:36:16", -49000, expense, "cat-7", "acc-5", "Face masks", none, "lbl-4"),
		tx("t-11-out", "2026-01-10T15:54:59", -3112000, transfer, TransferCategoryID, "acc-5", "Vaccination (transfer out)", none),
		tx("t-11-in", "2026-01-10T15:54:59", 3112000, transfer, TransferCategoryID, "acc-9", "Vaccination (transfer in)", none),
		tx("t-13", "2026-01-10T10:40:25", -200000, expense, "cat-5", "acc-5", "Eye drops", none),
		tx("t-16-out", "2026-01-10T10:38:03", -15000000, transfer, TransferCategoryID, "acc-5", "Brokerage (transfer out)", none),
		tx("t-16-in", "2026-01-10T10:38:03", 15000000, transfer, TransferCategoryID, "acc-8", "Brokerage (transfer in)", none),
		tx("t-17", "2026-01-09T10:44:07", 100000, income, "cat-7", "acc-2", "Interest", none),
		tx("t-20", "2026-01-09T10:25:15", -3799000, expense, "cat-7", "acc-5", "School fees", none, "lbl-1"),
		tx("t-21", "2026-01-08T12:24:20", -100000, expense, "cat-3", "acc-5", "Fuel", none),
		tx("t-22", "2026-01-08T12:24:00", -15000, expense, "cat-6", "acc-5", "Coffee", none),
		tx("t-24", "2026-01-08T12:20:17", -192000, expense, "cat-7", "acc-5", "Books", none, "lbl-4"),
		tx("t-29", "2026-01-06T06:12:50", -100000, expense, "cat-8", "acc-5", "Phone top-up", none),
		tx("t-39", "2026-01-06T06:04:28", -472000, expense, "cat-8", "acc-5", "Electricity", none),
		tx("t-46", "2026-01-03T23:40:09", -5200000, expense, "cat-9", "acc-5", "Rent", cleared),
		tx("t-47", "2026-01-03T23:30:43", 57000000, income, "cat-7", "acc-8", "Adjustment", none),
		tx("t-sb-1", "2026-01-01T23:27:44", 169000000, income, NewAccountCategoryID, "acc-3", "Savings 2", recon),
		tx("t-sb-2", "2026-01-01T23:20:49", 44000000, income, NewAccountCategoryID, "acc-5", "Wallet", recon),
		tx("t-sb-3", "2025-12-13T00:16:35", -3112000, expense, "cat-5", "acc-9", "Vaccination", none),
		tx("t-sb-4", "2025-12-01T00:10:32", -7500000, expense, "cat-7", "acc-9", "Dentist", none),
		tx("t-sb-5", "2025-10-01T23:25:50", 140000000, income, NewAccountCategoryID, "acc-4", "Loan to a friend", recon),
		tx("t-sb-6", "2025-08-01T00:28:22", 15000000, income, NewAccountCategoryID, "acc-8", "Brokerage (family)", recon),
		tx("t-sb-8", "2025-01-01T23:29:35", 223000000, income, NewAccountCategoryID, "acc-8", "Brokerage", recon),
		tx("t-sb-9", "2023-02-01T23:24:42", 1350000000, income, NewAccountCategoryID, "acc-1", "Land", recon),
	}
}

func seedDate(value string) time.Time {
	for _, layout := range []string{"2006-01-02T15:04:05", time.DateOnly} {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t
		}
	}
	panic("ledger: bad seed date " + value)
}
