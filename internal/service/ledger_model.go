package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-tracker/internal/ledger"
)

// TransactionInput is the user-supplied content of a transaction.
type TransactionInput struct {
	Type        ledger.TransactionType
	Amount      decimal.Decimal
	Description string
	Party       string
	Tags        []string
	Date        time.Time // zero means "now" on create
}

// GoalInput is the user-supplied content of a goal.
type GoalInput struct {
	ID          uuid.UUID
	Text        string
	Notes       string
	IsCompleted bool
}

// Summary is the headline of the dashboard.
type Summary struct {
	Balance    decimal.Decimal
	Statistics ledger.Statistics
}
