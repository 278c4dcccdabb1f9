package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// State is the whole ledger aggregate. A State is never modified after it
// has been returned by one of the mutation functions: every mutation builds
// a new State that shares the untouched collections with its predecessor.
type State struct {
	Transactions        []Transaction   `json:"transactions"`
	DeletedTransactions []Transaction   `json:"deletedTransactions"`
	Accounts            []Account       `json:"accounts"`
	AccountGroups       []AccountGroup  `json:"accountGroups"`
	CategoryGroups      []CategoryGroup `json:"categoryGroups"`
	Categories          []Category      `json:"categories"`
	Labels              []Label         `json:"labels"`
	Settings            Settings        `json:"settings"`
}

// IDSource produces fresh entity identifiers.
type IDSource interface {
	NewID() string
}

// UUIDSource issues random v4 UUIDs.
type UUIDSource struct{}

func (UUIDSource) NewID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// Env carries the non-deterministic inputs of the mutations.
type Env struct {
	IDs IDSource
	Now func() time.Time
}

// DefaultEnv uses random UUIDs and the wall clock.
func DefaultEnv() Env {
	return Env{IDs: UUIDSource{}, Now: time.Now}
}

// Empty returns a state with no entities and default settings.
func Empty() *State {
	return &State{
		Transactions:        []Transaction{},
		DeletedTransactions: []Transaction{},
		Accounts:            []Account{},
		AccountGroups:       []AccountGroup{},
		CategoryGroups:      []CategoryGroup{},
		Categories:          []Category{},
		Labels:              []Label{},
		Settings:            DefaultSettings(),
	}
}

// Normalize replaces nil collections with empty ones so that the state
// always serializes every collection as an array.
func (s *State) Normalize() *State {
	next := s.shallow()
	if next.Transactions == nil {
		next.Transactions = []Transaction{}
	}
	if next.DeletedTransactions == nil {
		next.DeletedTransactions = []Transaction{}
	}
	if next.Accounts == nil {
		next.Accounts = []Account{}
	}
	if next.AccountGroups == nil {
		next.AccountGroups = []AccountGroup{}
	}
	if next.CategoryGroups == nil {
		next.CategoryGroups = []CategoryGroup{}
	}
	if next.Categories == nil {
		next.Categories = []Category{}
	}
	if next.Labels == nil {
		next.Labels = []Label{}
	}
	return next
}

func (s *State) shallow() *State {
	next := *s
	return &next
}

func (s *State) Transaction(id string) (Transaction, bool) {
	return find(s.Transactions, id, func(t Transaction) string { return t.ID })
}

func (s *State) DeletedTransaction(id string) (Transaction, bool) {
	return find(s.DeletedTransactions, id, func(t Transaction) string { return t.ID })
}

func (s *State) Account(id string) (Account, bool) {
	return find(s.Accounts, id, func(a Account) string { return a.ID })
}

func (s *State) AccountGroup(id string) (AccountGroup, bool) {
	return find(s.AccountGroups, id, func(g AccountGroup) string { return g.ID })
}

func (s *State) Category(id string) (Category, bool) {
	return find(s.Categories, id, func(c Category) string { return c.ID })
}

func (s *State) CategoryGroup(id string) (CategoryGroup, bool) {
	return find(s.CategoryGroups, id, func(g CategoryGroup) string { return g.ID })
}

func (s *State) Label(id string) (Label, bool) {
	return find(s.Labels, id, func(l Label) string { return l.ID })
}

// CategoryType returns the type a category inherits from its group.
func (s *State) CategoryType(categoryID string) (CategoryGroupType, bool) {
	cat, ok := s.Category(categoryID)
	if !ok {
		return "", false
	}
	group, ok := s.CategoryGroup(cat.GroupID)
	if !ok {
		return "", false
	}
	return group.Type, true
}

func find[T any](items []T, id string, key func(T) string) (T, bool) {
	for _, item := range items {
		if key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func indexOf[T any](items []T, id string, key func(T) string) int {
	for i, item := range items {
		if key(item) == id {
			return i
		}
	}
	return -1
}

// without returns a copy of items minus the element at i.
func without[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// replaced returns a copy of items with the element at i set to item.
func replaced[T any](items []T, i int, item T) []T {
	out := append([]T{}, items...)
	out[i] = item
	return out
}

// prepended returns a new slice holding head followed by items.
func prepended[T any](items []T, head ...T) []T {
	out := make([]T, 0, len(head)+len(items))
	out = append(out, head...)
	return append(out, items...)
}

func appended[T any](items []T, tail T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, tail)
}
