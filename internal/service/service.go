package service

import (
	"context"
	"errors"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/live"
	"github.com/carson-networks/money-tracker/internal/operator/actions"
	"github.com/carson-networks/money-tracker/internal/storage"
)

// ErrInvalidInput marks intents rejected before they reach storage.
var ErrInvalidInput = errors.New("invalid input")

// actionProcessor is satisfied by *operator.OperatorDelegator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Ledger      *LedgerService
	Preferences *PreferenceService
}

// NewService wires the services to the hub for reads and the operator for writes.
func NewService(store *storage.Storage, hub *live.Hub, agg *ledger.Aggregator, processor actionProcessor) *Service {
	return &Service{
		Ledger:      NewLedgerService(hub, agg, processor),
		Preferences: NewPreferenceService(store.Preferences, processor),
	}
}
