package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/carson-networks/finance-ledger/internal/ledger"
)

var ErrMalformedState = errors.New("storage: malformed state document")

// requiredArrays are the collections a document must carry to be accepted.
var requiredArrays = []string{"accounts", "transactions"}

func EncodeState(state *ledger.State) ([]byte, error) {
	data, err := json.Marshal(state.Normalize())
	if err != nil {
		return nil, fmt.Errorf("storage: encode state: %w", err)
	}
	return data, nil
}

// DecodeState parses a saved document. The document must be a JSON object
// whose accounts and transactions are arrays; collections it lacks are
// empty and settings it lacks take their defaults. Cached balances are
// recomputed from the decoded transactions.
func DecodeState(data []byte) (*ledger.State, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: not an object", ErrMalformedState)
	}

	for _, name := range requiredArrays {
		var items []json.RawMessage
		raw, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformedState, name)
		}
		if err := json.Unmarshal(raw, &items); err != nil || items == nil {
			return nil, fmt.Errorf("%w: %s is not an array", ErrMalformedState, name)
		}
	}

	state := ledger.Empty()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}

	state = state.Normalize()
	state.Accounts = ledger.RecalculateBalances(state.Transactions, state.Accounts)
	return state, nil
}
