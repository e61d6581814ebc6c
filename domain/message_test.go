package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutgoingMessage_IsBlank(t *testing.T) {
	req := require.New(t)

	req.True(OutgoingMessage{Text: ""}.IsBlank())
	req.True(OutgoingMessage{Text: "   \t\n"}.IsBlank())
	req.False(OutgoingMessage{Text: "hello"}.IsBlank())
	req.False(OutgoingMessage{Text: "  hello  "}.IsBlank())
}

func TestChannelPath(t *testing.T) {
	req := require.New(t)
	req.Equal(
		"artifacts/demo-app/public/data/messages",
		ChannelPath("demo-app", "messages"),
	)
}
