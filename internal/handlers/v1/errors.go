// Package v1 holds helpers shared by the /v1 handlers.
package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-ledger/internal/operator"
	"github.com/carson-networks/finance-ledger/internal/operator/actions"
	"github.com/carson-networks/finance-ledger/internal/service"
)

// ServiceError maps an error from the service layer to an HTTP error.
func ServiceError(msg string, err error) error {
	switch {
	case errors.Is(err, actions.ErrInvalidInput):
		return huma.NewError(http.StatusBadRequest, msg, err)
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, msg, err)
	case errors.Is(err, operator.ErrStopped),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusServiceUnavailable, msg, err)
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}

// ParseDecimal parses an optional decimal field; empty means zero.
func ParseDecimal(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return d, nil
}

// ParseTime parses an optional RFC3339 field; empty means the zero time.
func ParseTime(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return t, nil
}

// FormatTime renders t as RFC3339, or "" for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// Optional turns an absent JSON field into an unset patch value.
func Optional[T any](v *T) omit.Val[T] {
	if v == nil {
		return omit.Val[T]{}
	}
	return omit.From(*v)
}

// OptionalDecimal is Optional for decimal strings.
func OptionalDecimal(field string, v *string) (omit.Val[decimal.Decimal], error) {
	if v == nil {
		return omit.Val[decimal.Decimal]{}, nil
	}
	d, err := ParseDecimal(field, *v)
	if err != nil {
		return omit.Val[decimal.Decimal]{}, err
	}
	return omit.From(d), nil
}

// OptionalTime is Optional for RFC3339 strings.
func OptionalTime(field string, v *string) (omit.Val[time.Time], error) {
	if v == nil {
		return omit.Val[time.Time]{}, nil
	}
	t, err := ParseTime(field, *v)
	if err != nil {
		return omit.Val[time.Time]{}, err
	}
	return omit.From(t), nil
}
