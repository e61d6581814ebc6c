// Package feed keeps a local ordered message list synchronized with
// the remote append-only channel collection.
package feed

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/B4-art/chatapp/contract"
	"github.com/B4-art/chatapp/domain"
	"github.com/B4-art/chatapp/errors"
)

// Synchronizer owns exactly one standing subscription at a time. Each
// delivered snapshot replaces the local list wholesale; no local
// sorting or deduplication is performed, the provider's ascending
// timestamp order is trusted. Message IDs matter for rendering
// identity only, not correctness.
type Synchronizer struct {
	log  *slog.Logger
	feed contract.FeedProvider
	path string

	mu          sync.Mutex
	generation  uint64
	unsubscribe contract.Unsubscribe
	snapshot    []domain.Message
	onChange    func([]domain.Message)
}

func NewSynchronizer(log *slog.Logger, feed contract.FeedProvider, path string) *Synchronizer {
	return &Synchronizer{log: log, feed: feed, path: path}
}

// OnChange registers the listener notified with each new snapshot.
// Must be set before Activate.
func (s *Synchronizer) OnChange(fn func([]domain.Message)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Activate opens the standing subscription for the given identity's
// session. Idempotent while active. A subscription failure is logged
// and returned as a wrapped ErrSubscription; the stale list is kept
// and no retry is scheduled.
func (s *Synchronizer) Activate(identity domain.Identity) error {
	s.mu.Lock()
	if s.unsubscribe != nil {
		s.mu.Unlock()
		return nil
	}
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	unsubscribe, err := s.feed.SubscribeOrderedCollection(s.path, func(snapshot []domain.Message) {
		s.apply(gen, snapshot)
	})
	if err != nil {
		s.log.Error("Feed subscription failed, keeping stale list", "path", s.path, "error", err)
		return fmt.Errorf("%w: %v", errors.ErrSubscription, err)
	}

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()

	s.log.Info("Feed subscription opened", "path", s.path, "identity", string(identity))
	return nil
}

// Deactivate closes the subscription. Snapshots delivered by an
// already-cancelled subscription are discarded; the last list stays
// readable. Re-activation opens a fresh subscription, handles are
// never reused across identities.
func (s *Synchronizer) Deactivate() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.generation++
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
		s.log.Info("Feed subscription closed", "path", s.path)
	}
}

// Active reports whether a subscription is currently open.
func (s *Synchronizer) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unsubscribe != nil
}

// Snapshot returns a copy of the most recently delivered list.
func (s *Synchronizer) Snapshot() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// apply installs a delivered snapshot, unless the subscription that
// produced it has been cancelled in the meantime.
func (s *Synchronizer) apply(gen uint64, snapshot []domain.Message) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.snapshot = snapshot
	listener := s.onChange
	s.mu.Unlock()

	if listener != nil {
		listener(snapshot)
	}
}
