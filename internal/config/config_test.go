package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("LoadFromEnv() = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Address() != "0.0.0.0:2222" {
		t.Fatalf("Address() = %q", cfg.Address())
	}
	if cfg.RainTick != 120*time.Millisecond || cfg.LinePause != 1200*time.Millisecond || cfg.CarouselInterval != 5*time.Second {
		t.Fatalf("unexpected animation defaults: %+v", cfg)
	}
}

func TestLoadFromEnvInvalidPort(t *testing.T) {
	t.Setenv("PORTFOLIO_SSH_PORT", "not-a-number")
	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("LoadFromEnv() expected error for invalid port")
	}
}

func TestLoadFromEnvPortOutOfRange(t *testing.T) {
	t.Setenv("PORTFOLIO_SSH_PORT", "70000")
	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("LoadFromEnv() expected error for out-of-range port")
	}
}

func TestLoadFromEnvWhitespaceHost(t *testing.T) {
	t.Setenv("PORTFOLIO_SSH_HOST", "   ")
	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("LoadFromEnv() expected error for whitespace host")
	}
}

func TestLoadFromEnvInvalidHostKeyPath(t *testing.T) {
	t.Setenv("PORTFOLIO_SSH_HOST_KEY_PATH", ".")
	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("LoadFromEnv() expected error for host key path resolving to current directory")
	}
}

func TestLoadFromEnvHostKeyPathCleaned(t *testing.T) {
	t.Setenv("PORTFOLIO_SSH_HOST_KEY_PATH", "keys/../keys//host_ed25519")
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() unexpected error: %v", err)
	}
	if cfg.HostKeyPath != "keys/host_ed25519" {
		t.Fatalf("HostKeyPath = %q", cfg.HostKeyPath)
	}
}

func TestLoadFromEnvInvalidIdleTimeout(t *testing.T) {
	t.Setenv("PORTFOLIO_SSH_IDLE_TIMEOUT", "not-duration")
	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("LoadFromEnv() expected error for invalid duration")
	}
}

func TestLoadFromEnvNonPositiveDurations(t *testing.T) {
	for _, key := range []string{
		"PORTFOLIO_SSH_IDLE_TIMEOUT",
		"PORTFOLIO_RAIN_TICK",
		"PORTFOLIO_TYPING_MIN_DELAY",
		"PORTFOLIO_LINE_PAUSE",
		"PORTFOLIO_CAROUSEL_INTERVAL",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "0s")
			_, err := LoadFromEnv()
			if err == nil {
				t.Fatalf("LoadFromEnv() expected error for %s=0s", key)
			}
			if !strings.Contains(err.Error(), key) {
				t.Fatalf("expected %s error context, got: %v", key, err)
			}
		})
	}
}

func TestLoadFromEnvInvalidMaxSessions(t *testing.T) {
	for _, v := range []string{"0", "1025"} {
		t.Setenv("PORTFOLIO_SSH_MAX_SESSIONS", v)
		if _, err := LoadFromEnv(); err == nil {
			t.Fatalf("LoadFromEnv() expected error for max sessions %s", v)
		}
	}
}

func TestLoadFromEnvInvalidRateLimit(t *testing.T) {
	t.Setenv("PORTFOLIO_RATE_LIMIT_PER_MINUTE", "0")
	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("LoadFromEnv() expected error for invalid rate limit")
	}
}

func TestLoadFromEnvVeryLargeIntError(t *testing.T) {
	t.Setenv("PORTFOLIO_RATE_LIMIT_BURST", "999999999999999999999999")

	_, err := LoadFromEnv()
	if err == nil {
		t.Fatal("LoadFromEnv() expected error for very large integer")
	}
	if !strings.Contains(err.Error(), "PORTFOLIO_RATE_LIMIT_BURST") {
		t.Fatalf("expected PORTFOLIO_RATE_LIMIT_BURST error context, got: %v", err)
	}
}

func TestLoadFromEnvHTTPAddr(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "custom", raw: "127.0.0.1:9090", want: "127.0.0.1:9090"},
		{name: "disabled", raw: "off", want: ""},
		{name: "disabled-upper", raw: "OFF", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PORTFOLIO_HTTP_ADDR", tc.raw)
			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() unexpected error: %v", err)
			}
			if cfg.HTTPAddr != tc.want {
				t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, tc.want)
			}
		})
	}
}

func TestLoadFromEnvThemeNormalized(t *testing.T) {
	t.Setenv("PORTFOLIO_THEME", " Matrix ")
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() unexpected error: %v", err)
	}
	if cfg.Theme != "matrix" {
		t.Fatalf("Theme = %q, want matrix", cfg.Theme)
	}
}

func TestLoadFromEnvResetChanceRange(t *testing.T) {
	t.Setenv("PORTFOLIO_RAIN_RESET_CHANCE", "1.5")
	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("LoadFromEnv() expected error for reset chance above 1")
	}

	t.Setenv("PORTFOLIO_RAIN_RESET_CHANCE", "0.1")
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() unexpected error: %v", err)
	}
	if cfg.Effects().Rain.ResetChance != 0.1 {
		t.Fatalf("Effects().Rain.ResetChance = %v, want 0.1", cfg.Effects().Rain.ResetChance)
	}
}

func TestLoadFromEnvTypingBoundsOrdered(t *testing.T) {
	t.Setenv("PORTFOLIO_TYPING_MIN_DELAY", "90ms")
	t.Setenv("PORTFOLIO_TYPING_MAX_DELAY", "40ms")
	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("LoadFromEnv() expected error when max typing delay is below min")
	}
}

func TestEffectsCarriesTuning(t *testing.T) {
	t.Setenv("PORTFOLIO_TYPING_MIN_DELAY", "10ms")
	t.Setenv("PORTFOLIO_TYPING_MAX_DELAY", "20ms")
	t.Setenv("PORTFOLIO_LINE_PAUSE", "2s")
	t.Setenv("PORTFOLIO_RAIN_TICK", "60ms")
	t.Setenv("PORTFOLIO_CAROUSEL_INTERVAL", "7s")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() unexpected error: %v", err)
	}
	tuning := cfg.Effects()
	if tuning.Typist.MinDelay != 10*time.Millisecond || tuning.Typist.MaxDelay != 20*time.Millisecond || tuning.Typist.LinePause != 2*time.Second {
		t.Fatalf("typist tuning = %+v", tuning.Typist)
	}
	if tuning.RainTick != 60*time.Millisecond || tuning.CarouselInterval != 7*time.Second {
		t.Fatalf("timer tuning = %+v", tuning)
	}
	if len(tuning.Rain.Palette) == 0 || tuning.Rain.GlyphSize <= 0 {
		t.Fatalf("rain tuning lost its defaults: %+v", tuning.Rain)
	}
}
