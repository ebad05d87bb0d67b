// Package common holds the request parsing and error mapping shared by the
// v1 handlers.
package common

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/service"
	"github.com/carson-networks/money-tracker/internal/storage"
)

// DateLayout is the calendar-day form accepted and rendered by the API.
const DateLayout = "2006-01-02"

// FormatAmount renders money with two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatTime renders t as RFC3339, or "" for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// ParseDate accepts RFC3339 or a YYYY-MM-DD calendar day, the latter taken
// as midnight in loc. An empty string yields the zero time.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation(DateLayout, raw, loc)
}

// ErrInvalidAmount is returned for amounts the ledger would count as zero.
var ErrInvalidAmount = errors.New("amount must be a non-negative decimal")

// ParseAmount accepts exactly the amounts ledger.ParseAmount counts.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, ok := ledger.ParseAmount(raw)
	if !ok {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// ParseID parses a path identifier, answering 400 when malformed.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	return id, nil
}

// ToHTTPError maps service and storage errors onto HTTP statuses.
func ToHTTPError(msg string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return huma.NewError(http.StatusNotFound, msg, err)
	case errors.Is(err, service.ErrInvalidInput):
		return huma.NewError(http.StatusBadRequest, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
