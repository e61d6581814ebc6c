// Package domain contains core concepts of the chat client.
// This file defines Message entities and related rules.
// Messages are immutable and owned by the remote feed provider;
// the client only caches a read view.
package domain

import (
	"strings"
	"time"
)

// Identity is an opaque handle for the current caller, granted by the
// auth provider. Held for the session lifetime, never mutated.
type Identity string

// Message represents an immutable chat entry.
// SentAt is assigned server-side at acceptance and may be nil for the
// short window between the write and the server stamping it.
type Message struct {
	ID       string
	Text     string
	SenderID Identity
	SentAt   *time.Time
}

// OutgoingMessage carries the fields of an append request. The feed
// provider assigns the ID and the server timestamp.
type OutgoingMessage struct {
	Text     string
	SenderID Identity
}

// IsBlank reports whether the text is empty or whitespace-only.
// Blank submissions are silent no-ops.
func (o OutgoingMessage) IsBlank() bool {
	return strings.TrimSpace(o.Text) == ""
}
