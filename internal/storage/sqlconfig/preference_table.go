package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/bob/dialect/sqlite/um"
	"github.com/stephenafamo/scan"
)

// IPreferenceTable is a small key/value store for UI preferences.
//
//go:generate mockery --name IPreferenceTable --output mock_IPreferenceTable.go
type IPreferenceTable interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

var _ IPreferenceTable = (*PreferencesTable)(nil)

type PreferencesTable struct {
	exec bob.Executor
}

func NewPreferencesTable(exec bob.Executor) *PreferencesTable {
	return &PreferencesTable{exec: exec}
}

// Get returns ErrNotFound when the key was never set.
func (t *PreferencesTable) Get(ctx context.Context, key string) (string, error) {
	q := sqlite.Select(
		sm.Columns("value"),
		sm.From("preferences"),
		sm.Where(sqlite.Quote("key").EQ(sqlite.Arg(key))),
	)
	value, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, nil
}

// Set updates the key, inserting it when missing.
func (t *PreferencesTable) Set(ctx context.Context, key, value string) error {
	update := sqlite.Update(
		um.Table("preferences"),
		um.SetCol("value").ToArg(value),
		um.Where(sqlite.Quote("key").EQ(sqlite.Arg(key))),
	)
	res, err := bob.Exec(ctx, t.exec, update)
	if err != nil {
		return fmt.Errorf("update preference %q: %w", key, err)
	}
	if err := requireAffected(res); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	insert := sqlite.Insert(
		im.Into("preferences", "key", "value"),
		im.Values(sqlite.Arg(key, value)),
	)
	if _, err := bob.Exec(ctx, t.exec, insert); err != nil {
		return fmt.Errorf("insert preference %q: %w", key, err)
	}
	return nil
}
