package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-ledger/internal/operator"
	"github.com/carson-networks/finance-ledger/internal/operator/actions"
	"github.com/carson-networks/finance-ledger/internal/service"
)

func TestServiceError(t *testing.T) {
	cases := map[string]struct {
		err  error
		want int
	}{
		"invalid input": {err: fmt.Errorf("wrap: %w", actions.ErrInvalidInput), want: http.StatusBadRequest},
		"not found":     {err: service.ErrNotFound, want: http.StatusNotFound},
		"stopped":       {err: operator.ErrStopped, want: http.StatusServiceUnavailable},
		"cancelled":     {err: context.Canceled, want: http.StatusServiceUnavailable},
		"other":         {err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var statusErr huma.StatusError
			require.ErrorAs(t, ServiceError("failed", tc.err), &statusErr)
			assert.Equal(t, tc.want, statusErr.GetStatus())
		})
	}
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("amount", "")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = ParseDecimal("amount", "12.5")
	require.NoError(t, err)
	assert.Equal(t, "12.5", d.String())

	_, err = ParseDecimal("amount", "twelve")
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	ts, err := ParseTime("date", "2026-01-02T03:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), ts)
	assert.Equal(t, "2026-01-02T03:04:05Z", FormatTime(ts))
	assert.Equal(t, "", FormatTime(time.Time{}))

	_, err = ParseTime("date", "yesterday")
	assert.Error(t, err)
}

func TestOptionalHelpers(t *testing.T) {
	name := "x"
	assert.False(t, Optional[string](nil).IsValue())
	assert.Equal(t, "x", Optional(&name).GetOrZero())

	amount := "12.5"
	d, err := OptionalDecimal("amount", &amount)
	require.NoError(t, err)
	assert.Equal(t, "12.5", d.GetOrZero().String())

	bad := "abc"
	_, err = OptionalDecimal("amount", &bad)
	assert.Error(t, err)

	unset, err := OptionalTime("date", nil)
	require.NoError(t, err)
	assert.False(t, unset.IsValue())
}
