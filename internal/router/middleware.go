// Package router assembles the SSH middleware chain and carries per-session
// routing metadata through the session context.
package router

import (
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"portfolio-terminal/internal/theme"
)

type contextKey string

const (
	sessionIdentityKey contextKey = "identity"
	sessionMetadataKey contextKey = "session"
)

// Descriptor names a middleware so the startup log can show the chain.
type Descriptor struct {
	Name       string
	Middleware wish.Middleware
}

// Identity is what the username resolved to.
type Identity struct {
	Username string
	Variant  theme.Variant
	// Routed is true when the username picked the variant explicitly.
	Routed bool
}

// SessionInfo is the metadata recorded once per session.
type SessionInfo struct {
	Identity   Identity
	SessionID  string
	RemoteAddr string
	Client     string
	Term       string
	Width      int
	Height     int
	StartedAt  time.Time
}

// DefaultChain returns the routing middleware in execution order. Users
// that do not name a variant get fallback.
func DefaultChain(fallback theme.Variant) []Descriptor {
	return []Descriptor{
		{Name: "username-routing", Middleware: usernameRouting(fallback)},
		{Name: "session-metadata", Middleware: sessionMetadata(time.Now)},
	}
}

// MiddlewareFromDescriptors unwraps descriptors, keeping execution order.
func MiddlewareFromDescriptors(chain []Descriptor) []wish.Middleware {
	out := make([]wish.Middleware, 0, len(chain))
	for _, d := range chain {
		out = append(out, d.Middleware)
	}
	return out
}

// Names lists descriptor names in execution order.
func Names(chain []Descriptor) []string {
	out := make([]string, 0, len(chain))
	for _, d := range chain {
		out = append(out, d.Name)
	}
	return out
}

// Compose wraps h so that chain[0] runs first.
func Compose(chain []Descriptor, h ssh.Handler) ssh.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i].Middleware(h)
	}
	return h
}

// IdentityFromContext returns the identity set by username routing.
func IdentityFromContext(ctx ssh.Context) (Identity, bool) {
	identity, ok := ctx.Value(sessionIdentityKey).(Identity)
	return identity, ok
}

// SessionInfoFromContext returns the metadata set for the session.
func SessionInfoFromContext(ctx ssh.Context) (SessionInfo, bool) {
	info, ok := ctx.Value(sessionMetadataKey).(SessionInfo)
	return info, ok
}

// usernameRouting maps the SSH user to a theme variant. Only exact
// lower-case variant names route; everything else gets the fallback.
func usernameRouting(fallback theme.Variant) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			user := s.User()
			identity := Identity{Username: user, Variant: fallback}
			if v, err := theme.ParseVariant(user); err == nil && string(v) == user {
				identity.Variant = v
				identity.Routed = true
			}
			s.Context().SetValue(sessionIdentityKey, identity)
			next(s)
		}
	}
}

func sessionMetadata(now func() time.Time) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			ctx := s.Context()
			identity, _ := IdentityFromContext(ctx)
			info := SessionInfo{
				Identity:  identity,
				SessionID: ctx.SessionID(),
				Client:    ctx.ClientVersion(),
				StartedAt: now().UTC(),
			}
			if remote := s.RemoteAddr(); remote != nil {
				info.RemoteAddr = remote.String()
			}
			if pty, _, ok := s.Pty(); ok {
				info.Term = pty.Term
				info.Width, info.Height = pty.Window.Width, pty.Window.Height
			}
			ctx.SetValue(sessionMetadataKey, info)
			next(s)
		}
	}
}
