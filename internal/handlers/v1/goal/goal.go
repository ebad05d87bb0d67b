package goal

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/service"
)

// Goal is the API response model for a bucket-list entry.
type Goal struct {
	ID          string `json:"id" doc:"Goal UUID"`
	Text        string `json:"text"`
	Notes       string `json:"notes,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
	CreatedAt   string `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
	UpdatedAt   string `json:"updatedAt,omitempty" doc:"RFC3339 last edit time"`
}

type goalService interface {
	Goals(ctx context.Context) []ledger.Goal
	GoalProgress(ctx context.Context) ledger.GoalProgress
	CreateGoal(ctx context.Context, input service.GoalInput) (uuid.UUID, error)
	UpdateGoal(ctx context.Context, input service.GoalInput) error
	DeleteGoal(ctx context.Context, id uuid.UUID) error
}

func toResponse(g ledger.Goal) Goal {
	return Goal{
		ID:          g.ID,
		Text:        g.Text,
		Notes:       g.Notes,
		IsCompleted: g.IsCompleted,
		CreatedAt:   common.FormatTime(g.CreatedAt),
		UpdatedAt:   common.FormatTime(g.UpdatedAt),
	}
}
