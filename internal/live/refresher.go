package live

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/storage"
	"github.com/carson-networks/money-tracker/internal/storage/sqlconfig"
)

// Refresher reloads every collection and publishes the result on a Hub.
type Refresher struct {
	reader  *storage.Reader
	hub     *Hub
	logger  *logrus.Logger
	mu      sync.Mutex
	version uint64
}

func NewRefresher(reader *storage.Reader, hub *Hub, logger *logrus.Logger) *Refresher {
	return &Refresher{reader: reader, hub: hub, logger: logger}
}

// Refresh loads a fresh snapshot and publishes it. Concurrent calls are
// serialised so that versions follow load order.
func (r *Refresher) Refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	transactions, err := r.reader.Transactions.List(ctx)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	goals, err := r.reader.Goals.List(ctx)
	if err != nil {
		return fmt.Errorf("load goals: %w", err)
	}
	tags, err := r.reader.Tags.List(ctx)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}

	r.version++
	snapshot := Snapshot{
		Version:      r.version,
		Transactions: make([]ledger.Transaction, len(transactions)),
		Goals:        make([]ledger.Goal, len(goals)),
		Tags:         tags,
	}
	for i, t := range transactions {
		snapshot.Transactions[i] = TransactionFromStorage(t)
	}
	for i, g := range goals {
		snapshot.Goals[i] = GoalFromStorage(g)
	}

	r.hub.Publish(snapshot)
	r.logger.WithFields(logrus.Fields{
		"version":      snapshot.Version,
		"transactions": len(snapshot.Transactions),
		"goals":        len(snapshot.Goals),
		"tags":         len(snapshot.Tags),
	}).Debug("Refresher.Refresh.published")
	return nil
}

func TransactionFromStorage(t *sqlconfig.Transaction) ledger.Transaction {
	return ledger.Transaction{
		ID:          t.ID.String(),
		Type:        ledger.TransactionType(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		Party:       t.Party,
		Tags:        t.Tags,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func GoalFromStorage(g *sqlconfig.Goal) ledger.Goal {
	return ledger.Goal{
		ID:          g.ID.String(),
		Text:        g.Text,
		Notes:       g.Notes,
		IsCompleted: g.IsCompleted,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
