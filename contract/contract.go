//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"github.com/B4-art/chatapp/domain"
)

// Unsubscribe releases a standing observer or subscription. Calling it
// more than once is a no-op.
type Unsubscribe func()

// AuthProvider is the external identity collaborator. Sign-in calls
// are one-shot; ObserveAuthState keeps reporting identity changes
// (nil means signed out) until the returned handle is called.
type AuthProvider interface {
	SignInAnonymously(ctx context.Context) (domain.Identity, error)
	SignInWithToken(ctx context.Context, token string) (domain.Identity, error)
	ObserveAuthState(fn func(identity *domain.Identity)) Unsubscribe
}

// FeedProvider is the external document feed collaborator.
// SubscribeOrderedCollection delivers the full current snapshot,
// ordered ascending by server timestamp, immediately on subscribe and
// again on every change. AppendDocument stores the fields with a
// server-assigned timestamp.
type FeedProvider interface {
	SubscribeOrderedCollection(path string, fn func(snapshot []domain.Message)) (Unsubscribe, error)
	AppendDocument(ctx context.Context, path string, fields domain.OutgoingMessage) error
}
