package server

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"portfolio-terminal/internal/config"
	"portfolio-terminal/internal/content"
	"portfolio-terminal/internal/theme"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Host = "127.0.0.1"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_ed25519")
	cfg.HTTPAddr = "127.0.0.1:8088"
	return cfg
}

func TestNewRuntimeStartupPipeline(t *testing.T) {
	runtime, err := New(testConfig(t), content.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := runtime.Address(); got != "127.0.0.1:2222" {
		t.Fatalf("Address() = %q, want %q", got, "127.0.0.1:2222")
	}
	if got := runtime.HTTPAddress(); got != "127.0.0.1:8088" {
		t.Fatalf("HTTPAddress() = %q", got)
	}

	want := []string{"logging", "rate-limit", "max-sessions", "active-term", "username-routing", "session-metadata", "bubbletea"}
	got := runtime.MiddlewareIDs()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("MiddlewareIDs() = %v, want %v", got, want)
	}

	got[0] = "mutated"
	if runtime.MiddlewareIDs()[0] != "logging" {
		t.Fatal("MiddlewareIDs() should return a copy")
	}
}

func TestNewRuntimeHTTPDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.HTTPAddr = ""
	runtime, err := New(cfg, content.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if runtime.HTTPAddress() != "" {
		t.Fatalf("HTTPAddress() = %q, want empty", runtime.HTTPAddress())
	}
}

func TestNewRuntimeRejectsUnknownTheme(t *testing.T) {
	cfg := testConfig(t)
	cfg.Theme = "sepia"
	_, err := New(cfg, content.Default())
	if !errors.Is(err, theme.ErrUnknownVariant) {
		t.Fatalf("New() error = %v, want ErrUnknownVariant", err)
	}
}

func TestSSHCommand(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{host: "0.0.0.0", port: 2222, want: "ssh -p 2222 localhost"},
		{host: "", port: 2222, want: "ssh -p 2222 localhost"},
		{host: "portfolio.example.com", port: 22, want: "ssh portfolio.example.com"},
		{host: "2001:db8::1", port: 2200, want: "ssh -p 2200 [2001:db8::1]"},
	}
	for _, tc := range tests {
		cfg := config.Default()
		cfg.Host, cfg.Port = tc.host, tc.port
		if got := SSHCommand(cfg); got != tc.want {
			t.Fatalf("SSHCommand(%q, %d) = %q, want %q", tc.host, tc.port, got, tc.want)
		}
	}
}
