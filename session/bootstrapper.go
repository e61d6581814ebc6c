// Package session establishes an authenticated identity before any
// feed access is attempted, and publishes session state transitions.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/B4-art/chatapp/contract"
	"github.com/B4-art/chatapp/domain"
	"github.com/B4-art/chatapp/errors"
)

// Bootstrapper drives the sign-in lifecycle:
// Uninitialized -> Authenticating -> Ready(identity) | Ready(empty).
// A failed sign-in leaves the session not-ready, with no automatic
// retry; the error is logged and returned to the caller.
type Bootstrapper struct {
	log   *slog.Logger
	auth  contract.AuthProvider
	token string

	mu           sync.Mutex
	state        domain.Session
	onTransition func(domain.Session)
	unobserve    contract.Unsubscribe
	started      bool
}

// NewBootstrapper prepares a bootstrapper. When token is non-empty the
// sign-in uses it, otherwise an anonymous grant is requested.
func NewBootstrapper(log *slog.Logger, auth contract.AuthProvider, token string) *Bootstrapper {
	return &Bootstrapper{log: log, auth: auth, token: token}
}

// OnTransition registers the single listener invoked on every state
// edge. Must be set before Start.
func (b *Bootstrapper) OnTransition(fn func(domain.Session)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onTransition = fn
}

// State returns the current session snapshot.
func (b *Bootstrapper) State() domain.Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Start registers the auth-state observer, then performs the one-shot
// sign-in. The observer is registered first so that the resolution of
// the sign-in (or any later sign-out) arrives through a single path.
// Returns a wrapped ErrAuthInit when the sign-in fails; the session
// then stays not-ready indefinitely.
func (b *Bootstrapper) Start(ctx context.Context) error {
	b.mu.Lock()
	if b.started {
		b.mu.Unlock()
		return nil
	}
	b.started = true
	b.mu.Unlock()

	b.transition(func(s domain.Session) domain.Session {
		return s.Authenticating()
	})

	unobserve := b.auth.ObserveAuthState(func(identity *domain.Identity) {
		b.transition(func(s domain.Session) domain.Session {
			if identity == nil {
				return s.Resolved("")
			}
			return s.Resolved(*identity)
		})
	})
	b.mu.Lock()
	b.unobserve = unobserve
	b.mu.Unlock()

	var err error
	if b.token != "" {
		_, err = b.auth.SignInWithToken(ctx, b.token)
	} else {
		_, err = b.auth.SignInAnonymously(ctx)
	}
	if err != nil {
		b.log.Error("Sign-in failed, session stays not-ready", "error", err)
		return fmt.Errorf("%w: %v", errors.ErrAuthInit, err)
	}
	return nil
}

// Close releases the auth-state observer. Further auth changes are no
// longer reported.
func (b *Bootstrapper) Close() {
	b.mu.Lock()
	unobserve := b.unobserve
	b.unobserve = nil
	b.mu.Unlock()
	if unobserve != nil {
		unobserve()
	}
}

// transition applies fn to the current state and notifies the listener
// outside the lock when the state actually changed.
func (b *Bootstrapper) transition(fn func(domain.Session) domain.Session) {
	b.mu.Lock()
	prev := b.state
	next := fn(prev)
	if next == prev {
		b.mu.Unlock()
		return
	}
	b.state = next
	listener := b.onTransition
	b.mu.Unlock()

	b.log.Debug("Session transition", "from", prev.Phase.String(), "to", next.Phase.String(), "identity", string(next.Identity))
	if listener != nil {
		listener(next)
	}
}
