package ledger

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Deleting an account, category or group never touches the transactions
// that reference it. Such orphans are shown as unknown by the reports.

// NewAccount is the payload of AddAccount. BalanceStart is the opening
// balance entered by the user.
type NewAccount struct {
	GroupID         string
	Name            string
	Description     string
	DateStart       time.Time
	BalanceStart    decimal.Decimal
	Currency        string
	Note            string
	ShowInSelection bool
}

type AccountPatch struct {
	GroupID         omit.Val[string]
	Name            omit.Val[string]
	Description     omit.Val[string]
	DateStart       omit.Val[time.Time]
	BalanceStart    omit.Val[decimal.Decimal]
	Currency        omit.Val[string]
	Note            omit.Val[string]
	ShowInSelection omit.Val[bool]
}

// AddAccount creates an account and books its opening balance as a
// reconciled Income transaction in the reserved new-account category. The
// stored account starts from zero so the opening amount is counted once,
// through its transaction.
func (s *State) AddAccount(env Env, data NewAccount) (*State, Account) {
	now := env.Now()
	acc := Account{
		ID:              env.IDs.NewID(),
		GroupID:         data.GroupID,
		Name:            data.Name,
		Description:     data.Description,
		DateStart:       data.DateStart,
		BalanceStart:    decimal.Zero,
		OpeningBalance:  data.BalanceStart,
		Currency:        data.Currency,
		Note:            data.Note,
		ShowInSelection: data.ShowInSelection,
	}
	if acc.DateStart.IsZero() {
		acc.DateStart = now
	}
	if acc.Currency == "" {
		acc.Currency = s.Settings.DefaultCurrency
	}

	opening := Transaction{
		ID:         env.IDs.NewID(),
		Date:       now,
		Amount:     data.BalanceStart,
		Type:       TransactionTypeIncome,
		CategoryID: NewAccountCategoryID,
		AccountID:  acc.ID,
		Note:       "Opening balance: " + data.Name,
		Labels:     []string{},
		Status:     TransactionStatusReconciled,
	}

	next := s.shallow()
	next.Accounts = appended(s.Accounts, acc)
	next.Transactions = prepended(s.Transactions, opening)
	next.withBalances()
	acc, _ = next.Account(acc.ID)
	return next, acc
}

func (s *State) UpdateAccount(id string, patch AccountPatch) (*State, bool) {
	i := indexOf(s.Accounts, id, func(a Account) string { return a.ID })
	if i < 0 {
		return s, false
	}
	acc := s.Accounts[i]
	if v, ok := patch.GroupID.Get(); ok {
		acc.GroupID = v
	}
	if v, ok := patch.Name.Get(); ok {
		acc.Name = v
	}
	if v, ok := patch.Description.Get(); ok {
		acc.Description = v
	}
	if v, ok := patch.DateStart.Get(); ok {
		acc.DateStart = v
	}
	if v, ok := patch.BalanceStart.Get(); ok {
		acc.BalanceStart = v
	}
	if v, ok := patch.Currency.Get(); ok {
		acc.Currency = v
	}
	if v, ok := patch.Note.Get(); ok {
		acc.Note = v
	}
	if v, ok := patch.ShowInSelection.Get(); ok {
		acc.ShowInSelection = v
	}
	next := s.shallow()
	next.Accounts = replaced(s.Accounts, i, acc)
	return next.withBalances(), true
}

func (s *State) DeleteAccount(id string) (*State, bool) {
	i := indexOf(s.Accounts, id, func(a Account) string { return a.ID })
	if i < 0 {
		return s, false
	}
	next := s.shallow()
	next.Accounts = without(s.Accounts, i)
	return next, true
}

type AccountGroupPatch struct {
	Type        omit.Val[AccountGroupType]
	Name        omit.Val[string]
	Description omit.Val[string]
	Icon        omit.Val[string]
}

// AddAccountGroup stores g under a fresh id, ignoring g.ID.
func (s *State) AddAccountGroup(env Env, g AccountGroup) (*State, AccountGroup) {
	g.ID = env.IDs.NewID()
	next := s.shallow()
	next.AccountGroups = appended(s.AccountGroups, g)
	return next, g
}

func (s *State) UpdateAccountGroup(id string, patch AccountGroupPatch) (*State, bool) {
	i := indexOf(s.AccountGroups, id, func(g AccountGroup) string { return g.ID })
	if i < 0 {
		return s, false
	}
	g := s.AccountGroups[i]
	if v, ok := patch.Type.Get(); ok {
		g.Type = v
	}
	if v, ok := patch.Name.Get(); ok {
		g.Name = v
	}
	if v, ok := patch.Description.Get(); ok {
		g.Description = v
	}
	if v, ok := patch.Icon.Get(); ok {
		g.Icon = v
	}
	next := s.shallow()
	next.AccountGroups = replaced(s.AccountGroups, i, g)
	return next, true
}

func (s *State) DeleteAccountGroup(id string) (*State, bool) {
	i := indexOf(s.AccountGroups, id, func(g AccountGroup) string { return g.ID })
	if i < 0 {
		return s, false
	}
	next := s.shallow()
	next.AccountGroups = without(s.AccountGroups, i)
	return next, true
}

type CategoryPatch struct {
	GroupID      omit.Val[string]
	Name         omit.Val[string]
	Icon         omit.Val[string]
	Color        omit.Val[string]
	Budget       omit.Val[decimal.Decimal]
	EnableBudget omit.Val[bool]
	Description  omit.Val[string]
}

// AddCategory stores c under a fresh id, ignoring c.ID.
func (s *State) AddCategory(env Env, c Category) (*State, Category) {
	c.ID = env.IDs.NewID()
	next := s.shallow()
	next.Categories = appended(s.Categories, c)
	return next, c
}

func (s *State) UpdateCategory(id string, patch CategoryPatch) (*State, bool) {
	i := indexOf(s.Categories, id, func(c Category) string { return c.ID })
	if i < 0 {
		return s, false
	}
	c := s.Categories[i]
	if v, ok := patch.GroupID.Get(); ok {
		c.GroupID = v
	}
	if v, ok := patch.Name.Get(); ok {
		c.Name = v
	}
	if v, ok := patch.Icon.Get(); ok {
		c.Icon = v
	}
	if v, ok := patch.Color.Get(); ok {
		c.Color = v
	}
	if v, ok := patch.Budget.Get(); ok {
		c.Budget = v
	}
	if v, ok := patch.EnableBudget.Get(); ok {
		c.EnableBudget = v
	}
	if v, ok := patch.Description.Get(); ok {
		c.Description = v
	}
	next := s.shallow()
	next.Categories = replaced(s.Categories, i, c)
	return next, true
}

func (s *State) DeleteCategory(id string) (*State, bool) {
	i := indexOf(s.Categories, id, func(c Category) string { return c.ID })
	if i < 0 {
		return s, false
	}
	next := s.shallow()
	next.Categories = without(s.Categories, i)
	return next, true
}

type CategoryGroupPatch struct {
	Type         omit.Val[CategoryGroupType]
	Name         omit.Val[string]
	Budget       omit.Val[decimal.Decimal]
	EnableBudget omit.Val[bool]
	Description  omit.Val[string]
	Icon         omit.Val[string]
}

// AddCategoryGroup stores g under a fresh id, ignoring g.ID.
func (s *State) AddCategoryGroup(env Env, g CategoryGroup) (*State, CategoryGroup) {
	g.ID = env.IDs.NewID()
	next := s.shallow()
	next.CategoryGroups = appended(s.CategoryGroups, g)
	return next, g
}

func (s *State) UpdateCategoryGroup(id string, patch CategoryGroupPatch) (*State, bool) {
	i := indexOf(s.CategoryGroups, id, func(g CategoryGroup) string { return g.ID })
	if i < 0 {
		return s, false
	}
	g := s.CategoryGroups[i]
	if v, ok := patch.Type.Get(); ok {
		g.Type = v
	}
	if v, ok := patch.Name.Get(); ok {
		g.Name = v
	}
	if v, ok := patch.Budget.Get(); ok {
		g.Budget = v
	}
	if v, ok := patch.EnableBudget.Get(); ok {
		g.EnableBudget = v
	}
	if v, ok := patch.Description.Get(); ok {
		g.Description = v
	}
	if v, ok := patch.Icon.Get(); ok {
		g.Icon = v
	}
	next := s.shallow()
	next.CategoryGroups = replaced(s.CategoryGroups, i, g)
	return next, true
}

func (s *State) DeleteCategoryGroup(id string) (*State, bool) {
	i := indexOf(s.CategoryGroups, id, func(g CategoryGroup) string { return g.ID })
	if i < 0 {
		return s, false
	}
	next := s.shallow()
	next.CategoryGroups = without(s.CategoryGroups, i)
	return next, true
}

func (s *State) AddLabel(env Env, name string) (*State, Label) {
	l := Label{ID: env.IDs.NewID(), Name: name, CreatedAt: env.Now()}
	next := s.shallow()
	next.Labels = appended(s.Labels, l)
	return next, l
}

func (s *State) UpdateLabel(id, name string) (*State, bool) {
	i := indexOf(s.Labels, id, func(l Label) string { return l.ID })
	if i < 0 {
		return s, false
	}
	l := s.Labels[i]
	l.Name = name
	next := s.shallow()
	next.Labels = replaced(s.Labels, i, l)
	return next, true
}

// DeleteLabel removes the label. Transactions keep the dangling label id.
func (s *State) DeleteLabel(id string) (*State, bool) {
	i := indexOf(s.Labels, id, func(l Label) string { return l.ID })
	if i < 0 {
		return s, false
	}
	next := s.shallow()
	next.Labels = without(s.Labels, i)
	return next, true
}

type SettingsPatch struct {
	DefaultCurrency      omit.Val[string]
	Theme                omit.Val[string]
	Language             omit.Val[string]
	RememberLastAccount  omit.Val[bool]
	RememberLastCategory omit.Val[bool]
	RememberLastCurrency omit.Val[bool]
	LastAccountID        omit.Val[string]
	LastCategoryID       omit.Val[string]
	LastCurrency         omit.Val[string]
}

func (s *State) UpdateSettings(patch SettingsPatch) *State {
	settings := s.Settings
	if v, ok := patch.DefaultCurrency.Get(); ok {
		settings.DefaultCurrency = v
	}
	if v, ok := patch.Theme.Get(); ok {
		settings.Theme = v
	}
	if v, ok := patch.Language.Get(); ok {
		settings.Language = v
	}
	if v, ok := patch.RememberLastAccount.Get(); ok {
		settings.RememberLastAccount = v
	}
	if v, ok := patch.RememberLastCategory.Get(); ok {
		settings.RememberLastCategory = v
	}
	if v, ok := patch.RememberLastCurrency.Get(); ok {
		settings.RememberLastCurrency = v
	}
	if v, ok := patch.LastAccountID.Get(); ok {
		settings.LastAccountID = v
	}
	if v, ok := patch.LastCategoryID.Get(); ok {
		settings.LastCategoryID = v
	}
	if v, ok := patch.LastCurrency.Get(); ok {
		settings.LastCurrency = v
	}
	next := s.shallow()
	next.Settings = settings
	return next
}
