package actions

import (
	"context"

	"github.com/carson-networks/money-tracker/internal/storage"
)

// Collections named in a Change.
const (
	CollectionTransactions = "transactions"
	CollectionTags         = "tags"
	CollectionGoals        = "goals"
	CollectionPreferences  = "preferences"
)

// Ops named in a Change.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Change describes what a committed action touched.
type Change struct {
	Collection string
	Op         string
	ID         string
}

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
	Change() Change
}
