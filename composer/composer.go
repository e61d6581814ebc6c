// Package composer holds the pending outgoing text and appends it to
// the channel on submit.
package composer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/B4-art/chatapp/contract"
	"github.com/B4-art/chatapp/domain"
	"github.com/B4-art/chatapp/errors"
)

// Outcome reports what a Submit call did, so callers can assert on
// the skip paths instead of inferring them from logs.
type Outcome int

const (
	// Appended means the provider acknowledged the new message.
	Appended Outcome = iota
	// SkippedEmptyDraft means the draft was empty or whitespace-only.
	SkippedEmptyDraft
	// SkippedNotReady means no identity was available.
	SkippedNotReady
	// Failed means the provider rejected the append; the draft is
	// preserved for a manual retry.
	Failed
)

// Composer owns the draft exclusively. The draft is cleared only after
// a successful append acknowledgment.
type Composer struct {
	log  *slog.Logger
	feed contract.FeedProvider
	path string

	mu       sync.Mutex
	draft    string
	identity domain.Identity
}

func NewComposer(log *slog.Logger, feed contract.FeedProvider, path string) *Composer {
	return &Composer{log: log, feed: feed, path: path}
}

// SetIdentity installs or clears (empty string) the sender identity.
func (c *Composer) SetIdentity(identity domain.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.identity = identity
}

// SetDraft replaces the pending text. Called on every keystroke.
func (c *Composer) SetDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = text
}

func (c *Composer) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Submit appends the draft to the channel. Blank drafts and missing
// identity are silent no-ops that leave the draft untouched. The
// append is fire-and-forget with respect to the feed: the new message
// is observed later through the subscription, typically sub-second.
func (c *Composer) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	fields := domain.OutgoingMessage{Text: c.draft, SenderID: c.identity}
	c.mu.Unlock()

	if fields.IsBlank() {
		return SkippedEmptyDraft, nil
	}
	if fields.SenderID == "" {
		return SkippedNotReady, nil
	}

	if err := c.feed.AppendDocument(ctx, c.path, fields); err != nil {
		c.log.Error("Append failed, draft preserved", "path", c.path, "error", err)
		return Failed, fmt.Errorf("%w: %v", errors.ErrAppend, err)
	}

	c.mu.Lock()
	// Clear only if the user did not type over the submitted draft
	// while the append was in flight.
	if c.draft == fields.Text {
		c.draft = ""
	}
	c.mu.Unlock()
	return Appended, nil
}
