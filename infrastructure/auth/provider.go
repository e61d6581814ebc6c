// Package auth is the in-process auth provider: anonymous identity
// grants and HS256 token sign-in, with an observable auth state.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/B4-art/chatapp/contract"
	"github.com/B4-art/chatapp/domain"
	"github.com/B4-art/chatapp/errors"
)

var validate = validator.New()

// tokenRequest is validated before any cryptographic work happens.
type tokenRequest struct {
	Token string `validate:"required,jwt"`
}

// Provider implements contract.AuthProvider. The current identity and
// the observer set are guarded together so observers always see
// transitions in order.
type Provider struct {
	log    *slog.Logger
	secret []byte

	mu        sync.Mutex
	current   *domain.Identity
	resolved  bool
	observers map[int]func(*domain.Identity)
	nextID    int
}

func NewProvider(log *slog.Logger, secret []byte) *Provider {
	return &Provider{
		log:       log,
		secret:    secret,
		observers: make(map[int]func(*domain.Identity)),
	}
}

// SignInAnonymously grants a fresh opaque identity.
func (p *Provider) SignInAnonymously(_ context.Context) (domain.Identity, error) {
	identity := domain.Identity(uuid.NewString())
	p.setIdentity(&identity)
	p.log.Info("Anonymous sign-in", "identity", string(identity))
	return identity, nil
}

// SignInWithToken validates the supplied credential token and adopts
// the user ID carried in its claims as the identity.
func (p *Provider) SignInWithToken(_ context.Context, token string) (domain.Identity, error) {
	if err := validate.Struct(tokenRequest{Token: token}); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}
	claims, err := ValidateToken(token, p.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}
	identity := domain.Identity(claims.UserID)
	p.setIdentity(&identity)
	p.log.Info("Token sign-in", "identity", string(identity))
	return identity, nil
}

// SignOut clears the identity; observers are told with a nil value.
func (p *Provider) SignOut() {
	p.setIdentity(nil)
	p.log.Info("Signed out")
}

// ObserveAuthState registers fn. Observers arriving after an auth
// check already resolved are caught up immediately; before the first
// resolution nothing is reported, so a pending sign-in is not
// mistaken for a completed signed-out check. The returned handle is
// idempotent.
func (p *Provider) ObserveAuthState(fn func(identity *domain.Identity)) contract.Unsubscribe {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.observers[id] = fn
	current := p.current
	resolved := p.resolved
	p.mu.Unlock()

	if resolved {
		fn(current)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.observers, id)
			p.mu.Unlock()
		})
	}
}

func (p *Provider) setIdentity(identity *domain.Identity) {
	p.mu.Lock()
	p.current = identity
	p.resolved = true
	observers := make([]func(*domain.Identity), 0, len(p.observers))
	for _, fn := range p.observers {
		observers = append(observers, fn)
	}
	p.mu.Unlock()

	for _, fn := range observers {
		fn(identity)
	}
}
