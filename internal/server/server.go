package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"portfolio-terminal/internal/config"
	"portfolio-terminal/internal/content"
	"portfolio-terminal/internal/router"
	"portfolio-terminal/internal/theme"
	"portfolio-terminal/internal/web"
)

const (
	version         = "dev"
	shutdownTimeout = 10 * time.Second
)

// Runtime wires config + middleware + Wish server as a testable unit.
type Runtime struct {
	cfg           config.Config
	middlewareIDs []string
	ssh           *ssh.Server
	http          *http.Server
}

// New builds the SSH server and, unless disabled, the HTTP side listener.
func New(cfg config.Config, portfolio content.Portfolio) (*Runtime, error) {
	fallback, err := theme.ParseVariant(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("configure theme: %w", err)
	}

	chain := Chain(cfg, fallback, portfolio)
	middleware := router.MiddlewareFromDescriptors(chain)
	// wish runs the last middleware first.
	slices.Reverse(middleware)

	sshServer, err := wish.NewServer(
		wish.WithAddress(cfg.Address()),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(middleware...),
	)
	if err != nil {
		return nil, fmt.Errorf("create ssh server: %w", err)
	}

	r := &Runtime{cfg: cfg, middlewareIDs: router.Names(chain), ssh: sshServer}
	if cfg.HTTPAddr != "" {
		r.http = &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           web.NewRouter(portfolio, SSHCommand(cfg)),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	return r, nil
}

// Chain returns the session middleware in execution order, ending with the
// Bubble Tea program.
func Chain(cfg config.Config, fallback theme.Variant, portfolio content.Portfolio) []router.Descriptor {
	chain := []router.Descriptor{
		{Name: "logging", Middleware: logging.Middleware()},
		{Name: "rate-limit", Middleware: RateLimitMiddleware(cfg.RateLimitPerMinute, cfg.RateLimitBurst)},
		{Name: "max-sessions", Middleware: MaxSessionsMiddleware(cfg.MaxSessions)},
		{Name: "active-term", Middleware: activeterm.Middleware()},
	}
	chain = append(chain, router.DefaultChain(fallback)...)
	return append(chain, router.Descriptor{
		Name:       "bubbletea",
		Middleware: bubbletea.Middleware(sessionHandler(cfg.Effects(), portfolio, fallback)),
	})
}

// SSHCommand is the command visitors run to connect.
func SSHCommand(cfg config.Config) string {
	host := cfg.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if cfg.Port == 22 {
		return "ssh " + host
	}
	return fmt.Sprintf("ssh -p %d %s", cfg.Port, host)
}

func (r *Runtime) MiddlewareIDs() []string {
	out := make([]string, len(r.middlewareIDs))
	copy(out, r.middlewareIDs)
	return out
}

func (r *Runtime) Address() string {
	return r.ssh.Addr
}

// HTTPAddress is empty when the HTTP listener is disabled.
func (r *Runtime) HTTPAddress() string {
	if r.http == nil {
		return ""
	}
	return r.http.Addr
}

// Run serves until ctx is cancelled or a signal arrives, then shuts both
// listeners down.
func (r *Runtime) Run(ctx context.Context) error {
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	g, ctx := errgroup.WithContext(ctx)

	log.Info("startup",
		"version", version,
		"addr", r.Address(),
		"http_addr", r.HTTPAddress(),
		"middleware", strings.Join(r.middlewareIDs, ","),
		"host_key_path", r.cfg.HostKeyPath,
		"idle_timeout", r.cfg.IdleTimeout,
		"max_sessions", r.cfg.MaxSessions,
		"theme", r.cfg.Theme,
	)

	g.Go(func() error {
		err := r.ssh.ListenAndServe()
		if err == nil || errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh listener: %w", err)
	})

	if r.http != nil {
		g.Go(func() error {
			err := r.http.ListenAndServe()
			if err == nil || errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("http listener: %w", err)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutdown", "timeout", shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if err := r.ssh.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errs = append(errs, fmt.Errorf("shutdown ssh: %w", err))
		}
		if r.http != nil {
			if err := r.http.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown http: %w", err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
