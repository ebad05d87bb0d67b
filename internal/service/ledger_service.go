package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/live"
	"github.com/carson-networks/money-tracker/internal/logging"
	"github.com/carson-networks/money-tracker/internal/operator/actions"
)

// LedgerService answers reads from the latest snapshot and forwards
// intents to the operator. Derived views are recomputed on every call.
type LedgerService struct {
	agg       *ledger.Aggregator
	processor actionProcessor
	snapshot  atomic.Pointer[live.Snapshot]
}

func NewLedgerService(hub *live.Hub, agg *ledger.Aggregator, processor actionProcessor) *LedgerService {
	s := &LedgerService{agg: agg, processor: processor}
	s.snapshot.Store(&live.Snapshot{})
	hub.Subscribe(func(snapshot live.Snapshot) {
		s.snapshot.Store(&snapshot)
	})
	return s
}

// Location is the zone used for calendar-day bucketing.
func (s *LedgerService) Location() *time.Location {
	return s.agg.Location()
}

func (s *LedgerService) current(ctx context.Context) *live.Snapshot {
	snapshot := s.snapshot.Load()
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("snapshotVersion", snapshot.Version)
	}
	return snapshot
}

func (s *LedgerService) Summary(ctx context.Context) Summary {
	ts := s.current(ctx).Transactions
	return Summary{
		Balance:    s.agg.Balance(ts),
		Statistics: s.agg.Statistics(ts),
	}
}

func (s *LedgerService) ListTransactions(ctx context.Context, filters ledger.Filters, order ledger.SortOrder) []ledger.Transaction {
	ts := s.current(ctx).Transactions
	return s.agg.Sort(s.agg.Filter(ts, filters), order)
}

func (s *LedgerService) CalendarMarkers(ctx context.Context, year int, month time.Month) []int {
	return s.agg.CalendarMarkers(s.current(ctx).Transactions, year, month)
}

func (s *LedgerService) WeeklySeries(ctx context.Context, anchor time.Time) [7]ledger.DayBucket {
	return s.agg.WeeklySeries(s.current(ctx).Transactions, anchor)
}

func (s *LedgerService) MonthlySummary(ctx context.Context, anchor time.Time) ledger.MonthlySummary {
	return s.agg.MonthlySummary(s.current(ctx).Transactions, anchor)
}

func (s *LedgerService) Tags(ctx context.Context) []string {
	return s.current(ctx).Tags
}

// Goals returns pending goals first, newest first.
func (s *LedgerService) Goals(ctx context.Context) []ledger.Goal {
	return ledger.SortGoals(s.current(ctx).Goals)
}

func (s *LedgerService) GoalProgress(ctx context.Context) ledger.GoalProgress {
	return ledger.Progress(s.current(ctx).Goals)
}

func (s *LedgerService) CreateTransaction(ctx context.Context, input TransactionInput) (uuid.UUID, error) {
	if err := validateTransaction(&input); err != nil {
		return uuid.Nil, err
	}
	action := &actions.CreateTransaction{
		Type:        string(input.Type),
		Amount:      input.Amount,
		Description: input.Description,
		Party:       input.Party,
		Tags:        input.Tags,
		Date:        input.Date,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

func (s *LedgerService) UpdateTransaction(ctx context.Context, id uuid.UUID, input TransactionInput) error {
	if err := validateTransaction(&input); err != nil {
		return err
	}
	return s.processor.Process(ctx, &actions.UpdateTransaction{
		ID:          id,
		Type:        string(input.Type),
		Amount:      input.Amount,
		Description: input.Description,
		Party:       input.Party,
		Tags:        input.Tags,
		Date:        input.Date,
	})
}

func (s *LedgerService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteTransaction{ID: id})
}

func (s *LedgerService) CreateTag(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: tag name is empty", ErrInvalidInput)
	}
	return s.processor.Process(ctx, &actions.CreateTag{Name: name})
}

func (s *LedgerService) DeleteTag(ctx context.Context, name string) error {
	return s.processor.Process(ctx, &actions.DeleteTag{Name: name})
}

func (s *LedgerService) CreateGoal(ctx context.Context, input GoalInput) (uuid.UUID, error) {
	if err := validateGoal(&input); err != nil {
		return uuid.Nil, err
	}
	action := &actions.CreateGoal{Text: input.Text, Notes: input.Notes}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

func (s *LedgerService) UpdateGoal(ctx context.Context, input GoalInput) error {
	if err := validateGoal(&input); err != nil {
		return err
	}
	return s.processor.Process(ctx, &actions.UpdateGoal{
		ID:          input.ID,
		Text:        input.Text,
		Notes:       input.Notes,
		IsCompleted: input.IsCompleted,
	})
}

func (s *LedgerService) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteGoal{ID: id})
}

// validateTransaction rejects unknown types, negative amounts and blank
// descriptions, and normalises the tag set (trimmed, non-empty, first
// occurrence kept).
func validateTransaction(input *TransactionInput) error {
	if !input.Type.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidInput, input.Type)
	}
	if input.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(input.Tags))
	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	input.Tags = tags
	input.Description = strings.TrimSpace(input.Description)
	if input.Description == "" {
		return fmt.Errorf("%w: description is empty", ErrInvalidInput)
	}
	input.Party = strings.TrimSpace(input.Party)
	return nil
}

func validateGoal(input *GoalInput) error {
	input.Text = strings.TrimSpace(input.Text)
	if input.Text == "" {
		return fmt.Errorf("%w: goal text is empty", ErrInvalidInput)
	}
	input.Notes = strings.TrimSpace(input.Notes)
	return nil
}
