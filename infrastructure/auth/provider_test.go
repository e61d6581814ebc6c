package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/B4-art/chatapp/domain"
	"github.com/B4-art/chatapp/errors"
)

var secret = []byte("test_signing_secret_for_chatapp")

func TestProvider_SignInAnonymously(t *testing.T) {
	req := require.New(t)
	p := NewProvider(slog.Default(), secret)

	var reported []*domain.Identity
	unsubscribe := p.ObserveAuthState(func(identity *domain.Identity) {
		reported = append(reported, identity)
	})
	defer unsubscribe()

	// No report before the first auth check resolves: a pending
	// sign-in must not look like a completed signed-out check
	req.Empty(reported)

	identity, err := p.SignInAnonymously(context.Background())
	req.NoError(err)
	req.NotEmpty(identity)

	req.Len(reported, 1)
	req.Equal(identity, *reported[0])
}

func TestProvider_SignInWithToken_RoundTrip(t *testing.T) {
	req := require.New(t)
	p := NewProvider(slog.Default(), secret)

	token, err := GenerateToken("u1", secret, time.Hour)
	req.NoError(err)

	identity, err := p.SignInWithToken(context.Background(), token)
	req.NoError(err)
	req.Equal(domain.Identity("u1"), identity)
}

func TestProvider_SignInWithToken_Invalid(t *testing.T) {
	req := require.New(t)
	p := NewProvider(slog.Default(), secret)

	// Not even token-shaped
	_, err := p.SignInWithToken(context.Background(), "not-a-token")
	req.ErrorIs(err, errors.ErrInvalidToken)

	// Well-formed but signed with a different key
	token, err := GenerateToken("u1", []byte("another_secret_entirely_here"), time.Hour)
	req.NoError(err)
	_, err = p.SignInWithToken(context.Background(), token)
	req.ErrorIs(err, errors.ErrInvalidToken)
}

func TestProvider_SignInWithToken_Expired(t *testing.T) {
	req := require.New(t)
	p := NewProvider(slog.Default(), secret)

	token, err := GenerateToken("u1", secret, -time.Minute)
	req.NoError(err)

	_, err = p.SignInWithToken(context.Background(), token)
	req.ErrorIs(err, errors.ErrInvalidToken)
}

func TestProvider_SignOut_NotifiesNil(t *testing.T) {
	req := require.New(t)
	p := NewProvider(slog.Default(), secret)
	_, err := p.SignInAnonymously(context.Background())
	req.NoError(err)

	var last *domain.Identity
	unsubscribe := p.ObserveAuthState(func(identity *domain.Identity) { last = identity })
	defer unsubscribe()
	req.NotNil(last)

	p.SignOut()
	req.Nil(last)
}

func TestProvider_Unsubscribe_StopsNotifications(t *testing.T) {
	req := require.New(t)
	p := NewProvider(slog.Default(), secret)

	count := 0
	unsubscribe := p.ObserveAuthState(func(*domain.Identity) { count++ })
	req.Zero(count)

	unsubscribe()
	unsubscribe() // second call is a no-op

	_, err := p.SignInAnonymously(context.Background())
	req.NoError(err)
	req.Zero(count)
}
