package server

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
)

// MaxSessionsMiddleware caps concurrent sessions. A slot is released when
// the handler returns, panics, or the session context ends, whichever
// happens first.
func MaxSessionsMiddleware(limit int) wish.Middleware {
	if limit <= 0 {
		limit = 1
	}
	slots := make(chan struct{}, limit)

	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			select {
			case slots <- struct{}{}:
			default:
				log.Warn("max_sessions_exceeded", "remote_ip", remoteIP(s), "limit", limit)
				_, _ = s.Write([]byte("max sessions exceeded\n"))
				return
			}

			var once sync.Once
			release := func() { once.Do(func() { <-slots }) }

			done := make(chan struct{})
			defer close(done)
			go func() {
				select {
				case <-s.Context().Done():
					release()
				case <-done:
				}
			}()

			defer func() {
				if r := recover(); r != nil {
					log.Error("session_panic", "remote_ip", remoteIP(s), "panic", r)
				}
			}()
			defer release()

			next(s)
		}
	}
}
