// Package services wires the bootstrapper, synchronizer, and composer
// into one view model for the UI layer.
package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/B4-art/chatapp/composer"
	"github.com/B4-art/chatapp/domain"
	"github.com/B4-art/chatapp/feed"
	"github.com/B4-art/chatapp/session"
)

type IChatService interface {
	Start(ctx context.Context) error
	Stop()
	State() domain.Session
	Snapshot() []domain.Message
	Draft() string
	SetDraft(text string)
	Submit(ctx context.Context) (composer.Outcome, error)
	Notice() string
	OnChange(fn func())
}

// ChatService drives the feed lifecycle off the session state machine:
// every bootstrapper transition edge either activates the synchronizer
// (ready with identity) or deactivates it (anything else). The feed
// flag and the identity therefore can never disagree.
type ChatService struct {
	log          *slog.Logger
	bootstrapper *session.Bootstrapper
	synchronizer *feed.Synchronizer
	composer     *composer.Composer

	mu         sync.Mutex
	feedActive bool
	identity   domain.Identity
	notice     string
	onChange   func()
}

func NewChatService(log *slog.Logger, b *session.Bootstrapper, s *feed.Synchronizer, c *composer.Composer) *ChatService {
	return &ChatService{log: log, bootstrapper: b, synchronizer: s, composer: c}
}

// OnChange registers the listener invoked whenever the rendered state
// may have changed (session edge, new snapshot, notice update).
func (s *ChatService) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Start hooks the observers and kicks off the sign-in. A sign-in
// failure is returned after being logged; the session then shows the
// loading state indefinitely, there is no automatic recovery.
func (s *ChatService) Start(ctx context.Context) error {
	s.synchronizer.OnChange(func([]domain.Message) { s.emit() })
	s.bootstrapper.OnTransition(s.handleTransition)
	return s.bootstrapper.Start(ctx)
}

// Stop releases the auth observer and the feed subscription.
func (s *ChatService) Stop() {
	s.synchronizer.Deactivate()
	s.bootstrapper.Close()
	s.mu.Lock()
	s.feedActive = false
	s.mu.Unlock()
	s.log.Debug("Chat service stopped")
}

// State composes the bootstrap state with the feed flag.
func (s *ChatService) State() domain.Session {
	s.mu.Lock()
	active := s.feedActive
	s.mu.Unlock()
	return s.bootstrapper.State().WithFeed(active)
}

func (s *ChatService) Snapshot() []domain.Message {
	return s.synchronizer.Snapshot()
}

func (s *ChatService) Draft() string {
	return s.composer.Draft()
}

func (s *ChatService) SetDraft(text string) {
	s.composer.SetDraft(text)
}

// Submit forwards to the composer and keeps the user-visible notice in
// sync: cleared on success, set on failure. Surfacing the failure in
// the frame is a deliberate deviation from silent log-only reporting.
func (s *ChatService) Submit(ctx context.Context) (composer.Outcome, error) {
	outcome, err := s.composer.Submit(ctx)
	s.mu.Lock()
	switch outcome {
	case composer.Appended:
		s.notice = ""
	case composer.Failed:
		s.notice = "message not sent, press enter to retry"
	}
	s.mu.Unlock()
	s.emit()
	return outcome, err
}

// Notice returns the last user-visible failure, empty for none.
func (s *ChatService) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

// handleTransition is invoked on every session edge and applies the
// lifecycle deterministically instead of re-triggering on arbitrary
// value changes.
func (s *ChatService) handleTransition(state domain.Session) {
	if state.CanChat() {
		s.mu.Lock()
		changed := s.identity != "" && s.identity != state.Identity
		s.identity = state.Identity
		s.mu.Unlock()
		// Subscriptions are never reused across identities: a direct
		// identity change closes the old one before opening a fresh one.
		if changed {
			s.synchronizer.Deactivate()
		}
		s.composer.SetIdentity(state.Identity)
		err := s.synchronizer.Activate(state.Identity)
		s.mu.Lock()
		s.feedActive = err == nil
		if err != nil {
			s.notice = "live feed unavailable"
		}
		s.mu.Unlock()
	} else {
		s.composer.SetIdentity("")
		s.synchronizer.Deactivate()
		s.mu.Lock()
		s.feedActive = false
		s.identity = ""
		s.mu.Unlock()
	}
	s.emit()
}

func (s *ChatService) emit() {
	s.mu.Lock()
	listener := s.onChange
	s.mu.Unlock()
	if listener != nil {
		listener()
	}
}
