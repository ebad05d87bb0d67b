package actions

import (
	"context"

	"github.com/carson-networks/money-tracker/internal/storage"
)

type CreateTag struct {
	Name string
}

func (t *CreateTag) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Tags.Insert(ctx, t.Name)
}

func (t *CreateTag) Change() Change {
	return Change{Collection: CollectionTags, Op: OpCreate, ID: t.Name}
}

// DeleteTag removes the tag from the tag list only. Transactions keep it.
type DeleteTag struct {
	Name string
}

func (t *DeleteTag) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Tags.Delete(ctx, t.Name)
}

func (t *DeleteTag) Change() Change {
	return Change{Collection: CollectionTags, Op: OpDelete, ID: t.Name}
}
