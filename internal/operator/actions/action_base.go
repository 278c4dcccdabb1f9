package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

var ErrInvalidInput = errors.New("invalid input")

// IAction is one mutation of the ledger. Perform returns the next state, or
// the state it was given when the mutation turned out to be a no-op.
type IAction interface {
	Perform(ctx context.Context, state *ledger.State, env ledger.Env) (*ledger.State, error)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
