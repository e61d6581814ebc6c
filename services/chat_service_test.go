package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/B4-art/chatapp/composer"
	"github.com/B4-art/chatapp/contract"
	"github.com/B4-art/chatapp/domain"
	"github.com/B4-art/chatapp/feed"
	infraauth "github.com/B4-art/chatapp/infrastructure/auth"
	"github.com/B4-art/chatapp/session"
)

const channelPath = "artifacts/demo-app/public/data/messages"

// fakeFeed records appends and lets the test push snapshots through
// the standing subscription.
type fakeFeed struct {
	deliver    func([]domain.Message)
	appended   []domain.OutgoingMessage
	appendErr  error
	subscribed int
	cancelled  int
}

func (f *fakeFeed) SubscribeOrderedCollection(_ string, fn func([]domain.Message)) (contract.Unsubscribe, error) {
	f.subscribed++
	f.deliver = fn
	fn(nil)
	return func() { f.cancelled++ }, nil
}

func (f *fakeFeed) AppendDocument(_ context.Context, _ string, fields domain.OutgoingMessage) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, fields)
	return nil
}

func newService(t *testing.T, feedProvider contract.FeedProvider) (*ChatService, *infraauth.Provider) {
	t.Helper()
	log := slog.Default()
	authProvider := infraauth.NewProvider(log, []byte("test_signing_secret_for_chatapp"))
	bootstrapper := session.NewBootstrapper(log, authProvider, "")
	synchronizer := feed.NewSynchronizer(log, feedProvider, channelPath)
	compose := composer.NewComposer(log, feedProvider, channelPath)
	return NewChatService(log, bootstrapper, synchronizer, compose), authProvider
}

func TestChatService_SignIn_ActivatesFeed(t *testing.T) {
	req := require.New(t)
	feedProvider := &fakeFeed{}
	chat, _ := newService(t, feedProvider)
	defer chat.Stop()

	req.NoError(chat.Start(context.Background()))

	state := chat.State()
	req.True(state.CanChat())
	req.True(state.FeedActive)
	req.Equal(1, feedProvider.subscribed)
}

func TestChatService_SignOut_DeactivatesFeed(t *testing.T) {
	req := require.New(t)
	feedProvider := &fakeFeed{}
	chat, authProvider := newService(t, feedProvider)
	defer chat.Stop()
	req.NoError(chat.Start(context.Background()))

	// When the identity goes away
	authProvider.SignOut()

	// Then the subscription is closed on the transition edge
	state := chat.State()
	req.False(state.CanChat())
	req.False(state.FeedActive)
	req.Equal(1, feedProvider.cancelled)
}

func TestChatService_Submit_RoundTrip(t *testing.T) {
	req := require.New(t)
	feedProvider := &fakeFeed{}
	chat, _ := newService(t, feedProvider)
	defer chat.Stop()
	req.NoError(chat.Start(context.Background()))
	identity := chat.State().Identity

	chat.SetDraft("hello")
	outcome, err := chat.Submit(context.Background())
	req.NoError(err)
	req.Equal(composer.Appended, outcome)
	req.Empty(chat.Draft())
	req.Empty(chat.Notice())

	// The appended fields carry the draft and the current identity
	req.Len(feedProvider.appended, 1)
	req.Equal(domain.OutgoingMessage{Text: "hello", SenderID: identity}, feedProvider.appended[0])

	// The new message arrives through the subscription, not the append
	sent := feedProvider.appended[0]
	feedProvider.deliver([]domain.Message{{ID: "m1", Text: sent.Text, SenderID: sent.SenderID}})
	req.Len(chat.Snapshot(), 1)
}

func TestChatService_SubmitFailure_SetsNotice(t *testing.T) {
	req := require.New(t)
	feedProvider := &fakeFeed{appendErr: fmt.Errorf("permission denied")}
	chat, _ := newService(t, feedProvider)
	defer chat.Stop()
	req.NoError(chat.Start(context.Background()))

	chat.SetDraft("hello")
	outcome, err := chat.Submit(context.Background())

	req.Error(err)
	req.Equal(composer.Failed, outcome)
	req.Equal("hello", chat.Draft())
	req.NotEmpty(chat.Notice())

	// A later successful send clears the notice
	feedProvider.appendErr = nil
	_, err = chat.Submit(context.Background())
	req.NoError(err)
	req.Empty(chat.Notice())
}

func TestChatService_IdentityChange_CyclesSubscription(t *testing.T) {
	req := require.New(t)
	feedProvider := &fakeFeed{}
	chat, authProvider := newService(t, feedProvider)
	defer chat.Stop()
	req.NoError(chat.Start(context.Background()))
	first := chat.State().Identity

	// When the provider reports a different identity directly
	second, err := authProvider.SignInAnonymously(context.Background())
	req.NoError(err)
	req.NotEqual(first, second)

	// Then the old subscription was closed and a fresh one opened
	req.Equal(1, feedProvider.cancelled)
	req.Equal(2, feedProvider.subscribed)
	req.Equal(second, chat.State().Identity)
	req.True(chat.State().FeedActive)
}

func TestChatService_OnChange_FiresOnSnapshotAndEdges(t *testing.T) {
	req := require.New(t)
	feedProvider := &fakeFeed{}
	chat, authProvider := newService(t, feedProvider)
	defer chat.Stop()

	changes := 0
	chat.OnChange(func() { changes++ })

	req.NoError(chat.Start(context.Background()))
	afterStart := changes
	req.Positive(afterStart)

	feedProvider.deliver([]domain.Message{{ID: "m1", Text: "hi", SenderID: "u9"}})
	req.Equal(afterStart+1, changes)

	authProvider.SignOut()
	req.Greater(changes, afterStart+1)
}
