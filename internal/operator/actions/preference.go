package actions

import (
	"context"

	"github.com/carson-networks/money-tracker/internal/storage"
)

type SetPreference struct {
	Key   string
	Value string
}

func (p *SetPreference) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Preferences.Set(ctx, p.Key, p.Value)
}

func (p *SetPreference) Change() Change {
	return Change{Collection: CollectionPreferences, Op: OpUpdate, ID: p.Key}
}
