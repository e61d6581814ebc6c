// Package presenter renders the chat frame. It is a pure function of
// the session state, the message list, and the draft; the only hint it
// emits for side effects is the message count, which the caller
// compares across frames to trigger its scroll-to-latest cue.
package presenter

import (
	"fmt"
	"strings"
	"time"

	"github.com/gookit/color"

	"github.com/B4-art/chatapp/domain"
)

const (
	// senderRunes is the deterministic truncation applied to a
	// non-self sender identity when no richer profile exists.
	senderRunes = 8

	defaultWidth = 80
	minWidth     = 20
)

// Frame is one rendered view of the chat.
type Frame struct {
	Text         string
	MessageCount int
}

// Presenter holds only render settings, no state of consequence.
type Presenter struct {
	width int
	self  color.Style
	other color.Style
	faint color.Style
}

func NewPresenter(width int) *Presenter {
	if width < minWidth {
		width = defaultWidth
	}
	return &Presenter{
		width: width,
		self:  color.New(color.FgGreen),
		other: color.New(color.FgCyan),
		faint: color.New(color.FgGray),
	}
}

// Render produces the frame for the given state. Not-ready sessions
// show the loading indicator (indefinite when the bootstrap failed);
// notice carries the last send/subscription failure, empty for none.
func (p *Presenter) Render(state domain.Session, messages []domain.Message, draft, notice string) Frame {
	var b strings.Builder

	if state.Phase != domain.PhaseReady {
		b.WriteString(p.faint.Render("Connecting..."))
		b.WriteString("\n")
		return Frame{Text: b.String()}
	}
	if state.Identity == "" {
		b.WriteString(p.faint.Render("Signed out."))
		b.WriteString("\n")
		return Frame{Text: b.String()}
	}

	if len(messages) == 0 {
		b.WriteString(p.faint.Render("No messages yet."))
		b.WriteString("\n")
	}
	for _, msg := range messages {
		b.WriteString(p.bubble(state.Identity, msg))
		b.WriteString("\n")
	}

	if notice != "" {
		b.WriteString(p.faint.Render("! " + notice))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("> %s", draft))
	b.WriteString("\n")

	return Frame{Text: b.String(), MessageCount: len(messages)}
}

// bubble renders one message line: self messages right-aligned and
// labeled "You", others left-aligned with the truncated sender.
func (p *Presenter) bubble(self domain.Identity, msg domain.Message) string {
	stamp := "..."
	if msg.SentAt != nil {
		stamp = msg.SentAt.Format(time.TimeOnly)
	}

	if msg.SenderID == self {
		line := fmt.Sprintf("%s  You  %s", msg.Text, stamp)
		return p.pad(line) + p.self.Render(line)
	}
	line := fmt.Sprintf("%s  %s  %s", TruncateSender(msg.SenderID), stamp, msg.Text)
	return p.other.Render(line)
}

// pad left-pads a line so its end sits at the render width.
func (p *Presenter) pad(line string) string {
	gap := p.width - len([]rune(line))
	if gap <= 0 {
		return ""
	}
	return strings.Repeat(" ", gap)
}

// TruncateSender shortens an identity to its first runes for display.
func TruncateSender(identity domain.Identity) string {
	r := []rune(string(identity))
	if len(r) <= senderRunes {
		return string(r)
	}
	return string(r[:senderRunes])
}
