package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/bob/dialect/sqlite/um"
	"github.com/stephenafamo/scan"
)

var _ IGoalTable = (*GoalsTable)(nil)

type goalRow struct {
	ID          string         `db:"id"`
	Text        string         `db:"text"`
	Notes       sql.NullString `db:"notes"`
	IsCompleted bool           `db:"is_completed"`
	CreatedAt   sql.NullString `db:"created_at"`
	UpdatedAt   sql.NullString `db:"updated_at"`
}

type GoalsTable struct {
	exec bob.Executor
	now  func() time.Time
}

func NewGoalsTable(exec bob.Executor) *GoalsTable {
	return &GoalsTable{exec: exec, now: time.Now}
}

// Insert creates a pending goal and returns its generated ID.
func (t *GoalsTable) Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate goal id: %w", err)
	}
	q := sqlite.Insert(
		im.Into("goals", "id", "text", "notes", "is_completed", "created_at"),
		im.Values(sqlite.Arg(id.String(), create.Text, nullString(create.Notes), false, formatTime(t.now()))),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return uuid.Nil, fmt.Errorf("insert goal: %w", err)
	}
	return id, nil
}

// Update replaces text, notes and completion and stamps updated_at.
func (t *GoalsTable) Update(ctx context.Context, update *GoalUpdate) error {
	q := sqlite.Update(
		um.Table("goals"),
		um.SetCol("text").ToArg(update.Text),
		um.SetCol("notes").ToArg(nullString(update.Notes)),
		um.SetCol("is_completed").ToArg(update.IsCompleted),
		um.SetCol("updated_at").ToArg(formatTime(t.now())),
		um.Where(sqlite.Quote("id").EQ(sqlite.Arg(update.ID.String()))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return fmt.Errorf("update goal %s: %w", update.ID, err)
	}
	return requireAffected(res)
}

func (t *GoalsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := sqlite.Delete(
		dm.From("goals"),
		dm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id.String()))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return fmt.Errorf("delete goal %s: %w", id, err)
	}
	return requireAffected(res)
}

// List returns every goal, newest first.
func (t *GoalsTable) List(ctx context.Context) ([]*Goal, error) {
	q := sqlite.Select(
		sm.Columns("id", "text", "notes", "is_completed", "created_at", "updated_at"),
		sm.From("goals"),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[goalRow]())
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	result := make([]*Goal, len(rows))
	for i, row := range rows {
		result[i] = &Goal{
			ID:          uuid.FromStringOrNil(row.ID),
			Text:        row.Text,
			Notes:       row.Notes.String,
			IsCompleted: row.IsCompleted,
			CreatedAt:   parseTime(row.CreatedAt),
			UpdatedAt:   parseTime(row.UpdatedAt),
		}
	}
	return result, nil
}
