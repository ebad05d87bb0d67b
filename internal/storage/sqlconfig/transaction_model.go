package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
// Amount and the dates are returned as stored; rows written by older clients
// may carry values that do not parse, and callers decide how to degrade.
type Transaction struct {
	ID          uuid.UUID
	Type        string
	Amount      string
	Description string
	Party       string
	Tags        []string
	Date        time.Time // zero when absent or unparsable
	CreatedAt   time.Time
	UpdatedAt   time.Time // zero when never updated
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Type        string
	Amount      decimal.Decimal
	Description string
	Party       string
	Tags        []string
	Date        time.Time // defaults to CreatedAt if zero
}

// TransactionUpdate replaces the mutable fields of a transaction.
type TransactionUpdate struct {
	ID          uuid.UUID
	Type        string
	Amount      decimal.Decimal
	Description string
	Party       string
	Tags        []string
	Date        time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, update *TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Transaction, error)
}
