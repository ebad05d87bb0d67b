package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Goal represents a bucket-list entry.
type Goal struct {
	ID          uuid.UUID
	Text        string
	Notes       string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GoalCreate is the input for creating a new goal.
type GoalCreate struct {
	Text  string
	Notes string
}

// GoalUpdate replaces the mutable fields of a goal.
type GoalUpdate struct {
	ID          uuid.UUID
	Text        string
	Notes       string
	IsCompleted bool
}

// IGoalTable defines the interface for goal storage operations.
//
//go:generate mockery --name IGoalTable --output mock_IGoalTable.go
type IGoalTable interface {
	Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error)
	Update(ctx context.Context, update *GoalUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Goal, error)
}
