package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/bob/dialect/sqlite/um"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

var transactionColumns = []any{
	"id", "type", "amount", "description", "party", "tags", "date", "created_at", "updated_at",
}

type transactionRow struct {
	ID          string         `db:"id"`
	Type        string         `db:"type"`
	Amount      string         `db:"amount"`
	Description string         `db:"description"`
	Party       sql.NullString `db:"party"`
	Tags        string         `db:"tags"`
	Date        sql.NullString `db:"date"`
	CreatedAt   sql.NullString `db:"created_at"`
	UpdatedAt   sql.NullString `db:"updated_at"`
}

type TransactionsTable struct {
	exec bob.Executor
	now  func() time.Time
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec, now: time.Now}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := sqlite.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id.String()))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction %s: %w", id, err)
	}
	return rowToTransaction(row), nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate transaction id: %w", err)
	}
	tags, err := encodeTags(create.Tags)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode tags: %w", err)
	}

	createdAt := t.now()
	date := create.Date
	if date.IsZero() {
		date = createdAt
	}

	q := sqlite.Insert(
		im.Into("transactions", "id", "type", "amount", "description", "party", "tags", "date", "created_at"),
		im.Values(sqlite.Arg(
			id.String(),
			create.Type,
			create.Amount.String(),
			create.Description,
			nullString(create.Party),
			tags,
			formatTime(date),
			formatTime(createdAt),
		)),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return uuid.Nil, fmt.Errorf("insert transaction: %w", err)
	}
	return id, nil
}

// Update replaces the mutable fields and stamps updated_at. The stored date
// is only replaced when update.Date is set.
func (t *TransactionsTable) Update(ctx context.Context, update *TransactionUpdate) error {
	tags, err := encodeTags(update.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("transactions"),
		um.SetCol("type").ToArg(update.Type),
		um.SetCol("amount").ToArg(update.Amount.String()),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("party").ToArg(nullString(update.Party)),
		um.SetCol("tags").ToArg(tags),
		um.SetCol("updated_at").ToArg(formatTime(t.now())),
		um.Where(sqlite.Quote("id").EQ(sqlite.Arg(update.ID.String()))),
	}
	// A zero Date keeps the stored one.
	if !update.Date.IsZero() {
		mods = append(mods, um.SetCol("date").ToArg(formatTime(update.Date)))
	}

	q := sqlite.Update(mods...)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return fmt.Errorf("update transaction %s: %w", update.ID, err)
	}
	return requireAffected(res)
}

// Delete removes a transaction.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := sqlite.Delete(
		dm.From("transactions"),
		dm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id.String()))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return requireAffected(res)
}

// List returns every transaction, newest record first.
func (t *TransactionsTable) List(ctx context.Context) ([]*Transaction, error) {
	q := sqlite.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

func rowToTransaction(row transactionRow) *Transaction {
	return &Transaction{
		ID:          uuid.FromStringOrNil(row.ID),
		Type:        row.Type,
		Amount:      row.Amount,
		Description: row.Description,
		Party:       row.Party.String,
		Tags:        decodeTags(row.Tags),
		Date:        parseTime(row.Date),
		CreatedAt:   parseTime(row.CreatedAt),
		UpdatedAt:   parseTime(row.UpdatedAt),
	}
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
