package sqlconfig

import (
	"context"
	"fmt"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"
)

// ITagTable defines the interface for tag storage operations.
// Tags are keyed by name; transactions reference them by name only.
//
//go:generate mockery --name ITagTable --output mock_ITagTable.go
type ITagTable interface {
	Insert(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
}

var _ ITagTable = (*TagsTable)(nil)

type TagsTable struct {
	exec bob.Executor
	now  func() time.Time
}

func NewTagsTable(exec bob.Executor) *TagsTable {
	return &TagsTable{exec: exec, now: time.Now}
}

// Insert adds a tag. Inserting an existing name is a no-op.
func (t *TagsTable) Insert(ctx context.Context, name string) error {
	q := sqlite.Insert(
		im.Into("tags", "name", "created_at"),
		im.Values(sqlite.Arg(name, formatTime(t.now()))),
		im.OnConflict("name").DoNothing(),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return fmt.Errorf("insert tag %q: %w", name, err)
	}
	return nil
}

// Delete removes a tag. Transactions keep the name in their tag sets.
func (t *TagsTable) Delete(ctx context.Context, name string) error {
	q := sqlite.Delete(
		dm.From("tags"),
		dm.Where(sqlite.Quote("name").EQ(sqlite.Arg(name))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return fmt.Errorf("delete tag %q: %w", name, err)
	}
	return requireAffected(res)
}

// List returns tag names in insertion order.
func (t *TagsTable) List(ctx context.Context) ([]string, error) {
	q := sqlite.Select(
		sm.Columns("name"),
		sm.From("tags"),
		sm.OrderBy("rowid").Asc(),
	)
	names, err := bob.All(ctx, t.exec, q, scan.SingleColumnMapper[string])
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return names, nil
}
