package domain

// SessionPhase tracks the bootstrap lifecycle:
// Uninitialized -> Authenticating -> Ready.
type SessionPhase int

const (
	PhaseUninitialized SessionPhase = iota
	PhaseAuthenticating
	PhaseReady
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseAuthenticating:
		return "authenticating"
	case PhaseReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Session is the single tagged session state. Ready with an empty
// Identity means an auth check completed signed-out: downstream
// components must not subscribe or compose in that state.
// Transitions go through the helpers below so that illegal flag
// combinations (e.g. an active feed without an identity) cannot be
// represented.
type Session struct {
	Phase      SessionPhase
	Identity   Identity
	FeedActive bool
}

// Authenticating returns the state while a sign-in attempt is in flight.
func (s Session) Authenticating() Session {
	return Session{Phase: PhaseAuthenticating}
}

// Resolved returns the Ready state for the given identity. An empty
// identity models the signed-out resolution; it always clears the
// feed flag.
func (s Session) Resolved(identity Identity) Session {
	next := Session{Phase: PhaseReady, Identity: identity}
	if identity != "" {
		next.FeedActive = s.FeedActive
	}
	return next
}

// WithFeed marks the feed subscription open or closed. The flag can
// only be raised when the session can chat.
func (s Session) WithFeed(active bool) Session {
	if active && !s.CanChat() {
		return s
	}
	s.FeedActive = active
	return s
}

// CanChat reports whether the feed may be subscribed and messages
// composed: the session is ready and an identity is present.
func (s Session) CanChat() bool {
	return s.Phase == PhaseReady && s.Identity != ""
}
