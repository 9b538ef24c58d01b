package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"portfolio-terminal/internal/effect"
)

const (
	defaultHost               = "0.0.0.0"
	defaultPort               = 2222
	defaultHostKeyPath        = ".data/host_ed25519"
	defaultIdleTimeout        = 10 * time.Minute
	defaultMaxSessions        = 64
	defaultRateLimitPerMinute = 30
	defaultRateLimitBurst     = 10
	defaultHTTPAddr           = ":8080"
	defaultTheme              = "ocean"
	maximumConfiguredSessions = 1024

	// httpDisabled turns off the HTTP side listener.
	httpDisabled = "off"
)

// Config captures startup settings for the portfolio entrypoints.
type Config struct {
	Host               string
	Port               int
	HostKeyPath        string
	IdleTimeout        time.Duration
	MaxSessions        int
	RateLimitPerMinute int
	RateLimitBurst     int
	// HTTPAddr is empty when the HTTP listener is disabled.
	HTTPAddr string
	Theme    string

	RainTick         time.Duration
	RainResetChance  float64
	TypingMinDelay   time.Duration
	TypingMaxDelay   time.Duration
	LinePause        time.Duration
	CarouselInterval time.Duration
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	tuning := effect.DefaultTuning()
	return Config{
		Host:               defaultHost,
		Port:               defaultPort,
		HostKeyPath:        defaultHostKeyPath,
		IdleTimeout:        defaultIdleTimeout,
		MaxSessions:        defaultMaxSessions,
		RateLimitPerMinute: defaultRateLimitPerMinute,
		RateLimitBurst:     defaultRateLimitBurst,
		HTTPAddr:           defaultHTTPAddr,
		Theme:              defaultTheme,
		RainTick:           tuning.RainTick,
		RainResetChance:    tuning.Rain.ResetChance,
		TypingMinDelay:     tuning.Typist.MinDelay,
		TypingMaxDelay:     tuning.Typist.MaxDelay,
		LinePause:          tuning.Typist.LinePause,
		CarouselInterval:   tuning.CarouselInterval,
	}
}

// LoadFromEnv loads runtime configuration from environment variables.
func LoadFromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Host, err = readRequiredOrDefault("PORTFOLIO_SSH_HOST", cfg.Host); err != nil {
		return Config{}, err
	}
	if cfg.Port, err = readInt("PORTFOLIO_SSH_PORT", cfg.Port, 1, 65535); err != nil {
		return Config{}, err
	}

	hostKeyPath, err := readRequiredOrDefault("PORTFOLIO_SSH_HOST_KEY_PATH", cfg.HostKeyPath)
	if err != nil {
		return Config{}, err
	}
	cfg.HostKeyPath = filepath.Clean(hostKeyPath)
	if cfg.HostKeyPath == "." {
		return Config{}, fmt.Errorf("PORTFOLIO_SSH_HOST_KEY_PATH must not resolve to current directory")
	}

	if cfg.IdleTimeout, err = readDuration("PORTFOLIO_SSH_IDLE_TIMEOUT", cfg.IdleTimeout); err != nil {
		return Config{}, err
	}
	if cfg.MaxSessions, err = readInt("PORTFOLIO_SSH_MAX_SESSIONS", cfg.MaxSessions, 1, maximumConfiguredSessions); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitPerMinute, err = readInt("PORTFOLIO_RATE_LIMIT_PER_MINUTE", cfg.RateLimitPerMinute, 1, 10000); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = readInt("PORTFOLIO_RATE_LIMIT_BURST", cfg.RateLimitBurst, 1, 1000); err != nil {
		return Config{}, err
	}

	httpAddr, err := readRequiredOrDefault("PORTFOLIO_HTTP_ADDR", cfg.HTTPAddr)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTPAddr = httpAddr
	if strings.EqualFold(httpAddr, httpDisabled) {
		cfg.HTTPAddr = ""
	}

	theme, err := readRequiredOrDefault("PORTFOLIO_THEME", cfg.Theme)
	if err != nil {
		return Config{}, err
	}
	cfg.Theme = strings.ToLower(theme)

	if cfg.RainTick, err = readDuration("PORTFOLIO_RAIN_TICK", cfg.RainTick); err != nil {
		return Config{}, err
	}
	if cfg.RainResetChance, err = readFloat("PORTFOLIO_RAIN_RESET_CHANCE", cfg.RainResetChance, 0, 1); err != nil {
		return Config{}, err
	}
	if cfg.TypingMinDelay, err = readDuration("PORTFOLIO_TYPING_MIN_DELAY", cfg.TypingMinDelay); err != nil {
		return Config{}, err
	}
	if cfg.TypingMaxDelay, err = readDuration("PORTFOLIO_TYPING_MAX_DELAY", cfg.TypingMaxDelay); err != nil {
		return Config{}, err
	}
	if cfg.TypingMaxDelay < cfg.TypingMinDelay {
		return Config{}, fmt.Errorf("PORTFOLIO_TYPING_MAX_DELAY must be >= PORTFOLIO_TYPING_MIN_DELAY")
	}
	if cfg.LinePause, err = readDuration("PORTFOLIO_LINE_PAUSE", cfg.LinePause); err != nil {
		return Config{}, err
	}
	if cfg.CarouselInterval, err = readDuration("PORTFOLIO_CAROUSEL_INTERVAL", cfg.CarouselInterval); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Address is the SSH listen address.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Effects converts the animation settings into engine tuning.
func (c Config) Effects() effect.Tuning {
	tuning := effect.DefaultTuning()
	tuning.RainTick = c.RainTick
	tuning.Rain.ResetChance = c.RainResetChance
	tuning.Typist = effect.TypistConfig{
		MinDelay:  c.TypingMinDelay,
		MaxDelay:  c.TypingMaxDelay,
		LinePause: c.LinePause,
	}
	tuning.CarouselInterval = c.CarouselInterval
	return tuning
}

func readRequiredOrDefault(key, fallback string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%s must not be empty", key)
	}

	return strings.TrimSpace(raw), nil
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}

	return parsed, nil
}

func readFloat(key string, fallback, min, max float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %g and %g", key, min, max)
	}

	return parsed, nil
}

func readDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}
