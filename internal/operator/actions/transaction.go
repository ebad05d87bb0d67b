package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-tracker/internal/storage"
	"github.com/carson-networks/money-tracker/internal/storage/sqlconfig"
)

// CreateTransaction inserts a transaction and registers any tags it uses.
// ID is set once Perform succeeds.
type CreateTransaction struct {
	Type        string
	Amount      decimal.Decimal
	Description string
	Party       string
	Tags        []string
	Date        time.Time

	ID uuid.UUID
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Party:       t.Party,
		Tags:        t.Tags,
		Date:        t.Date,
	})
	if err != nil {
		return err
	}

	if err := registerTags(ctx, writer, t.Tags); err != nil {
		return err
	}

	t.ID = id
	return nil
}

func (t *CreateTransaction) Change() Change {
	return Change{Collection: CollectionTransactions, Op: OpCreate, ID: t.ID.String()}
}

// UpdateTransaction replaces every mutable field of an existing transaction.
type UpdateTransaction struct {
	ID          uuid.UUID
	Type        string
	Amount      decimal.Decimal
	Description string
	Party       string
	Tags        []string
	Date        time.Time
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	err := writer.Transactions.Update(ctx, &sqlconfig.TransactionUpdate{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Party:       t.Party,
		Tags:        t.Tags,
		Date:        t.Date,
	})
	if err != nil {
		return err
	}

	return registerTags(ctx, writer, t.Tags)
}

func (t *UpdateTransaction) Change() Change {
	return Change{Collection: CollectionTransactions, Op: OpUpdate, ID: t.ID.String()}
}

type DeleteTransaction struct {
	ID uuid.UUID
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, t.ID)
}

func (t *DeleteTransaction) Change() Change {
	return Change{Collection: CollectionTransactions, Op: OpDelete, ID: t.ID.String()}
}

func registerTags(ctx context.Context, writer *storage.Writer, tags []string) error {
	for _, tag := range tags {
		if err := writer.Tags.Insert(ctx, tag); err != nil {
			return err
		}
	}
	return nil
}
