// Package live keeps subscribers in step with the stored collections.
// Every write ends with a full reload published as a versioned Snapshot;
// subscribers always see whole collections, never partial updates.
package live

import (
	"sync"

	"github.com/carson-networks/money-tracker/internal/ledger"
)

// Snapshot is the full contents of every collection at one version.
type Snapshot struct {
	Version      uint64
	Transactions []ledger.Transaction
	Goals        []ledger.Goal
	Tags         []string
}

type Token uint64

type subscriber struct {
	token Token
	fn    func(Snapshot)
}

// Hub fans snapshots out to subscribers. Snapshots older than the last one
// delivered are dropped, so a slow reload can never overwrite a newer one.
// Callbacks run synchronously while the hub is locked and must not call
// back into it.
type Hub struct {
	mu     sync.Mutex
	next   Token
	subs   []subscriber
	latest *Snapshot
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers fn and immediately delivers the latest snapshot, if any.
func (h *Hub) Subscribe(fn func(Snapshot)) Token {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	token := h.next
	h.subs = append(h.subs, subscriber{token: token, fn: fn})
	if h.latest != nil {
		fn(*h.latest)
	}
	return token
}

// Unsubscribe removes a subscription. Unknown tokens are ignored.
func (h *Hub) Unsubscribe(token Token) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.subs {
		if s.token == token {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers snapshot to every subscriber in subscription order. It
// returns false, delivering nothing, when snapshot is not newer than the
// last one published.
func (h *Hub) Publish(snapshot Snapshot) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.latest != nil && snapshot.Version <= h.latest.Version {
		return false
	}
	h.latest = &snapshot
	for _, s := range h.subs {
		s.fn(snapshot)
	}
	return true
}

// Latest returns the last published snapshot.
func (h *Hub) Latest() (Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.latest == nil {
		return Snapshot{}, false
	}
	return *h.latest, true
}
