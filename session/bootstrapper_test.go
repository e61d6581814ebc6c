package session

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/B4-art/chatapp/contract"
	"github.com/B4-art/chatapp/domain"
	"github.com/B4-art/chatapp/errors"
)

// fakeAuth drives the observer callback by hand, like a real provider
// resolving sign-ins asynchronously through the auth-state stream.
type fakeAuth struct {
	observer     func(*domain.Identity)
	unsubscribed bool
	signInErr    error
	identity     domain.Identity
	tokenSeen    string
}

func (f *fakeAuth) SignInAnonymously(context.Context) (domain.Identity, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	f.observer(&f.identity)
	return f.identity, nil
}

func (f *fakeAuth) SignInWithToken(_ context.Context, token string) (domain.Identity, error) {
	f.tokenSeen = token
	if f.signInErr != nil {
		return "", f.signInErr
	}
	f.observer(&f.identity)
	return f.identity, nil
}

func (f *fakeAuth) ObserveAuthState(fn func(*domain.Identity)) contract.Unsubscribe {
	f.observer = fn
	return func() { f.unsubscribed = true }
}

func TestBootstrapper_AnonymousSignIn(t *testing.T) {
	req := require.New(t)
	auth := &fakeAuth{identity: "u1"}
	b := NewBootstrapper(slog.Default(), auth, "")

	var edges []domain.Session
	b.OnTransition(func(s domain.Session) { edges = append(edges, s) })

	// When the bootstrap runs
	req.NoError(b.Start(context.Background()))

	// Then the session went Authenticating -> Ready(u1)
	req.Len(edges, 2)
	req.Equal(domain.PhaseAuthenticating, edges[0].Phase)
	req.Equal(domain.PhaseReady, edges[1].Phase)
	req.Equal(domain.Identity("u1"), edges[1].Identity)
	req.True(b.State().CanChat())
}

func TestBootstrapper_TokenSignIn(t *testing.T) {
	req := require.New(t)
	auth := &fakeAuth{identity: "token-user"}
	b := NewBootstrapper(slog.Default(), auth, "some-token")

	req.NoError(b.Start(context.Background()))

	// The provided credential token is used instead of the anonymous grant
	req.Equal("some-token", auth.tokenSeen)
	req.Equal(domain.Identity("token-user"), b.State().Identity)
}

func TestBootstrapper_SignInFailure_StaysNotReady(t *testing.T) {
	req := require.New(t)
	auth := &fakeAuth{signInErr: fmt.Errorf("provider down")}
	b := NewBootstrapper(slog.Default(), auth, "")

	err := b.Start(context.Background())

	// The failure is surfaced as an explicit result, not a crash,
	// and the session stays not-ready with no retry
	req.ErrorIs(err, errors.ErrAuthInit)
	req.Equal(domain.PhaseAuthenticating, b.State().Phase)
	req.False(b.State().CanChat())
}

func TestBootstrapper_SignOut_ReportsReadyWithoutIdentity(t *testing.T) {
	req := require.New(t)
	auth := &fakeAuth{identity: "u1"}
	b := NewBootstrapper(slog.Default(), auth, "")
	req.NoError(b.Start(context.Background()))

	// When the provider reports a sign-out through the observer
	auth.observer(nil)

	// Then the session is Ready with no identity: downstream must
	// not subscribe or compose
	state := b.State()
	req.Equal(domain.PhaseReady, state.Phase)
	req.Empty(state.Identity)
	req.False(state.CanChat())
}

func TestBootstrapper_Close_ReleasesObserver(t *testing.T) {
	req := require.New(t)
	auth := &fakeAuth{identity: "u1"}
	b := NewBootstrapper(slog.Default(), auth, "")
	req.NoError(b.Start(context.Background()))

	b.Close()
	req.True(auth.unsubscribed)
}

func TestBootstrapper_Start_IsIdempotent(t *testing.T) {
	req := require.New(t)
	auth := &fakeAuth{identity: "u1"}
	b := NewBootstrapper(slog.Default(), auth, "")

	req.NoError(b.Start(context.Background()))
	state := b.State()
	req.NoError(b.Start(context.Background()))
	req.Equal(state, b.State())
}
