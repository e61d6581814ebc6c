package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"github.com/B4-art/chatapp/composer"
	"github.com/B4-art/chatapp/domain"
	"github.com/B4-art/chatapp/feed"
	infraauth "github.com/B4-art/chatapp/infrastructure/auth"
	infrafeed "github.com/B4-art/chatapp/infrastructure/feed"
	"github.com/B4-art/chatapp/internal"
	"github.com/B4-art/chatapp/presenter"
	"github.com/B4-art/chatapp/services"
	"github.com/B4-art/chatapp/session"
)

// Exit codes for the chat client.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chatapp error: %v\n", err)
	}
	os.Exit(code)
}

// run owns the whole client lifecycle: configuration, storage, the
// session state machine, and the terminal loop. Returning instead of
// exiting keeps the defers (badger close, unsubscribes) reliable.
func run() (int, error) {
	// 1. Configuration
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Local store backing the feed provider
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Providers and view model
	path := domain.ChannelPath(config.AppID, config.Channel)
	authProvider := infraauth.NewProvider(log, []byte(config.AuthSecret))
	feedProvider := infrafeed.NewProvider(db, log)

	bootstrapper := session.NewBootstrapper(log, authProvider, config.AuthToken)
	synchronizer := feed.NewSynchronizer(log, feedProvider, path)
	compose := composer.NewComposer(log, feedProvider, path)
	chat := services.NewChatService(log, bootstrapper, synchronizer, compose)
	defer chat.Stop()

	render := presenter.NewPresenter(config.RenderWidth)

	// 4. Context & signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Repaint on every change; a full redraw is the terminal
	// analog of the scroll-to-latest cue.
	frames := make(chan struct{}, 1)
	chat.OnChange(func() {
		select {
		case frames <- struct{}{}:
		default:
		}
	})

	if err := chat.Start(ctx); err != nil {
		// Session stays not-ready; the frame shows the indefinite
		// loading state, mirroring the logged failure.
		log.Error("Bootstrap failed", "error", err)
	}

	// 6. Terminal input loop
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	paint := func() {
		frame := render.Render(chat.State(), chat.Snapshot(), chat.Draft(), chat.Notice())
		fmt.Print("\033[2J\033[H")
		fmt.Print(frame.Text)
	}
	paint()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		case <-frames:
			paint()
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			chat.SetDraft(line)
			// Submit failures are already logged and surfaced in
			// the frame; the draft is kept for a manual retry.
			_, _ = chat.Submit(ctx)
			paint()
		}
	}
}
