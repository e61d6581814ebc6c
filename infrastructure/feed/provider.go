// Package feed is the in-process document feed provider: an
// append-only, timestamp-ordered message collection per channel path,
// persisted in BadgerDB, with full-snapshot delivery to subscribers on
// every change.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/B4-art/chatapp/contract"
	"github.com/B4-art/chatapp/domain"
	"github.com/B4-art/chatapp/errors"
)

// storedMessage is the on-disk document shape.
type storedMessage struct {
	ID       string `cbor:"id"`
	Text     string `cbor:"text"`
	SenderID string `cbor:"sender_id"`
	At       int64  `cbor:"at"` // unix nanoseconds, server-assigned
}

// Provider implements contract.FeedProvider over a local store.
// Ordering and durability live here, not in the client core.
type Provider struct {
	db          *badger.DB
	log         *slog.Logger
	subscribers *registry

	mu        sync.Mutex
	lastStamp time.Time
}

func NewProvider(db *badger.DB, log *slog.Logger) *Provider {
	return &Provider{db: db, log: log, subscribers: newRegistry()}
}

// messageKey formats the storage key as "msg:{path}:{timestamp}:{id}".
// The 19-digit zero padding makes lexicographic key order equal
// chronological order; the UUID disambiguates identical stamps.
func messageKey(path string, at time.Time, id string) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", path, at.UnixNano(), id))
}

func messagePrefix(path string) []byte {
	return []byte(fmt.Sprintf("msg:%s:", path))
}

// SubscribeOrderedCollection registers fn and delivers the full
// current snapshot immediately, then again after every accepted
// append on the path.
func (p *Provider) SubscribeOrderedCollection(path string, fn func(snapshot []domain.Message)) (contract.Unsubscribe, error) {
	if path == "" {
		return nil, errors.ErrUnknownChannel
	}
	snapshot, err := p.snapshot(path)
	if err != nil {
		return nil, fmt.Errorf("initial snapshot: %w", err)
	}
	unsubscribe := p.subscribers.Subscribe(path, fn)
	fn(snapshot)
	return unsubscribe, nil
}

// AppendDocument validates the fields, assigns the document ID and the
// server timestamp, persists, and broadcasts the new snapshot.
func (p *Provider) AppendDocument(_ context.Context, path string, fields domain.OutgoingMessage) error {
	if path == "" {
		return errors.ErrUnknownChannel
	}
	if fields.IsBlank() {
		return errors.ErrEmptyText
	}

	stored := storedMessage{
		ID:       uuid.NewString(),
		Text:     fields.Text,
		SenderID: string(fields.SenderID),
		At:       p.stamp().UnixNano(),
	}
	value, err := cbor.Marshal(stored)
	if err != nil {
		return err
	}
	key := messageKey(path, time.Unix(0, stored.At), stored.ID)
	err = p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return err
	}

	p.broadcast(path)
	return nil
}

// stamp returns the server-assigned timestamp for the next document.
// Stamps never go backwards, even when the wall clock does.
func (p *Provider) stamp() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	at := time.Now().UTC()
	if !at.After(p.lastStamp) {
		at = p.lastStamp.Add(time.Nanosecond)
	}
	p.lastStamp = at
	return at
}

// snapshot reads the full ordered collection for a path. A forward
// prefix scan is enough: the padded timestamp in the key yields
// ascending chronological order for free.
func (p *Provider) snapshot(path string) ([]domain.Message, error) {
	var stored []storedMessage
	err := p.db.View(func(txn *badger.Txn) error {
		prefix := messagePrefix(path)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var msg storedMessage
				if err := cbor.Unmarshal(value, &msg); err != nil {
					return err
				}
				stored = append(stored, msg)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(stored, func(msg storedMessage, _ int) domain.Message {
		at := time.Unix(0, msg.At).UTC()
		return domain.Message{
			ID:       msg.ID,
			Text:     msg.Text,
			SenderID: domain.Identity(msg.SenderID),
			SentAt:   &at,
		}
	}), nil
}

// broadcast delivers the post-append snapshot to every subscriber of
// the path. A snapshot read failure is logged and the delivery skipped;
// subscribers keep their last consistent view.
func (p *Provider) broadcast(path string) {
	listeners := p.subscribers.Listeners(path)
	if len(listeners) == 0 {
		return
	}
	snapshot, err := p.snapshot(path)
	if err != nil {
		p.log.Error("Snapshot read failed, delivery skipped", "path", path, "error", err)
		return
	}
	for _, fn := range listeners {
		fn(snapshot)
	}
}
