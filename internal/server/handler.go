package server

import (
	"io"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish/bubbletea"

	"portfolio-terminal/internal/content"
	"portfolio-terminal/internal/effect"
	"portfolio-terminal/internal/router"
	"portfolio-terminal/internal/theme"
	"portfolio-terminal/internal/tui"
)

// sessionHandler builds one portfolio program per SSH session. Sessions
// share only the read-only portfolio.
func sessionHandler(tuning effect.Tuning, portfolio content.Portfolio, fallback theme.Variant) bubbletea.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := s.Pty()
		bundle, background := sessionTheme(s, fallback)

		remote := ""
		if addr := s.RemoteAddr(); addr != nil {
			remote = addr.String()
		}

		m := tui.NewModel(tui.Options{
			Width:      pty.Window.Width,
			Height:     pty.Window.Height,
			RemoteAddr: remote,
			Theme:      bundle,
			Renderer:   bubbletea.MakeRenderer(s),
			Background: background,
			Tuning:     tuning,
			Portfolio:  portfolio,
			Copy:       osc52Copier(s, pty.Term),
		})

		log.Info("session_start",
			"user", s.User(),
			"remote_ip", remoteIP(s),
			"term", pty.Term,
			"variant", bundle.Variant,
			"width", pty.Window.Width,
			"height", pty.Window.Height,
		)
		return m, []tea.ProgramOption{tea.WithAltScreen()}
	}
}

// sessionTheme picks the palette from the routed identity and the client's
// TERM. The background runs only on terminals that can color it.
func sessionTheme(s ssh.Session, fallback theme.Variant) (theme.Bundle, bool) {
	pty, _, _ := s.Pty()
	term := pty.Term
	if term == "" {
		term = "dumb"
	}

	variant := fallback
	if identity, ok := router.IdentityFromContext(s.Context()); ok {
		variant = identity.Variant
	}
	bundle, err := theme.Resolve(variant, term)
	if err != nil {
		log.Warn("theme_fallback", "variant", variant, "err", err)
		bundle, _ = theme.Resolve(theme.VariantMono, term)
	}
	profile := theme.DetectTermProfile(term)
	return bundle, profile.IsTTY && profile.Colors > 0
}

// osc52Copier asks the visitor's terminal to set its clipboard.
func osc52Copier(w io.Writer, term string) func(string) error {
	return func(text string) error {
		seq := osc52.New(text)
		switch {
		case strings.HasPrefix(term, "tmux"):
			seq = seq.Tmux()
		case strings.HasPrefix(term, "screen"):
			seq = seq.Screen()
		}
		_, err := seq.WriteTo(w)
		return err
	}
}
