package ledger

import (
	"sort"
	"time"
)

// Goal is a bucket-list entry. Goals are independent of transactions.
type Goal struct {
	ID          string
	Text        string
	Notes       string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GoalProgress counts completed and pending goals.
type GoalProgress struct {
	Total     int
	Completed int
	Pending   int
}

// Progress summarizes a goal snapshot.
func Progress(goals []Goal) GoalProgress {
	progress := GoalProgress{Total: len(goals)}
	for _, g := range goals {
		if g.IsCompleted {
			progress.Completed++
		}
	}
	progress.Pending = progress.Total - progress.Completed
	return progress
}

// SortGoals returns a copy with pending goals first, newest first within
// each group.
func SortGoals(goals []Goal) []Goal {
	out := make([]Goal, len(goals))
	copy(out, goals)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsCompleted != out[j].IsCompleted {
			return !out[i].IsCompleted
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
