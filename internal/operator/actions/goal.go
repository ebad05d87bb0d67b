package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/money-tracker/internal/storage"
	"github.com/carson-networks/money-tracker/internal/storage/sqlconfig"
)

// CreateGoal inserts a pending goal. ID is set once Perform succeeds.
type CreateGoal struct {
	Text  string
	Notes string

	ID uuid.UUID
}

func (g *CreateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Goals.Insert(ctx, &sqlconfig.GoalCreate{Text: g.Text, Notes: g.Notes})
	if err != nil {
		return err
	}
	g.ID = id
	return nil
}

func (g *CreateGoal) Change() Change {
	return Change{Collection: CollectionGoals, Op: OpCreate, ID: g.ID.String()}
}

type UpdateGoal struct {
	ID          uuid.UUID
	Text        string
	Notes       string
	IsCompleted bool
}

func (g *UpdateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Goals.Update(ctx, &sqlconfig.GoalUpdate{
		ID:          g.ID,
		Text:        g.Text,
		Notes:       g.Notes,
		IsCompleted: g.IsCompleted,
	})
}

func (g *UpdateGoal) Change() Change {
	return Change{Collection: CollectionGoals, Op: OpUpdate, ID: g.ID.String()}
}

type DeleteGoal struct {
	ID uuid.UUID
}

func (g *DeleteGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Goals.Delete(ctx, g.ID)
}

func (g *DeleteGoal) Change() Change {
	return Change{Collection: CollectionGoals, Op: OpDelete, ID: g.ID.String()}
}
