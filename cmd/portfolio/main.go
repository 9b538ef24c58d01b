package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	"github.com/peterbourgon/ff/v3/ffcli"

	"portfolio-terminal/internal/canvas"
	"portfolio-terminal/internal/config"
	"portfolio-terminal/internal/content"
	"portfolio-terminal/internal/effect"
	"portfolio-terminal/internal/theme"
	"portfolio-terminal/internal/tui"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return buildCLI(cfg).ParseAndRun(context.Background(), os.Args[1:])
}

func buildCLI(cfg config.Config) *ffcli.Command {
	runFlagSet := flag.NewFlagSet("portfolio run", flag.ExitOnError)
	runTheme := runFlagSet.String("theme", cfg.Theme, "Palette: ocean, matrix, amber, mono")
	runSeed := runFlagSet.Uint64("seed", 0, "Random seed for the animations (0 picks one)")
	runNoBackground := runFlagSet.Bool("no-background", false, "Disable the falling-glyph background")

	runCmd := &ffcli.Command{
		Name:       "run",
		ShortUsage: "portfolio run [flags]",
		ShortHelp:  "Open the portfolio in this terminal",
		FlagSet:    runFlagSet,
		Exec: func(_ context.Context, _ []string) error {
			return execRun(cfg, runConfig{
				theme:        *runTheme,
				seed:         *runSeed,
				noBackground: *runNoBackground,
			})
		},
	}

	snapFlagSet := flag.NewFlagSet("portfolio snapshot", flag.ExitOnError)
	snapWidth := snapFlagSet.Int("width", 1280, "Image width in pixels")
	snapHeight := snapFlagSet.Int("height", 720, "Image height in pixels")
	snapTicks := snapFlagSet.Int("ticks", 150, "Animation frames to run before capturing")
	snapSeed := snapFlagSet.Uint64("seed", 1, "Random seed")
	snapGlyph := snapFlagSet.Int("glyph", effect.DefaultRainConfig().GlyphSize, "Glyph size in pixels")
	snapOut := snapFlagSet.String("out", "rain.png", "Output PNG path")

	snapshotCmd := &ffcli.Command{
		Name:       "snapshot",
		ShortUsage: "portfolio snapshot [flags]",
		ShortHelp:  "Render the background animation to a PNG",
		FlagSet:    snapFlagSet,
		Exec: func(_ context.Context, _ []string) error {
			return execSnapshot(cfg, snapshotConfig{
				width:  *snapWidth,
				height: *snapHeight,
				ticks:  *snapTicks,
				seed:   *snapSeed,
				glyph:  *snapGlyph,
				out:    *snapOut,
			})
		},
	}

	return &ffcli.Command{
		ShortUsage:  "portfolio [flags] <subcommand>",
		ShortHelp:   "Terminal portfolio with a falling-glyph background",
		LongHelp:    "Controls:\n  r        Replay the terminal\n  [ ] 1-9  Browse recommendations\n  tab      Switch skill category\n  y        Copy email\n  q        Quit",
		FlagSet:     flag.NewFlagSet("portfolio", flag.ExitOnError),
		Subcommands: []*ffcli.Command{runCmd, snapshotCmd},
		Exec: func(_ context.Context, _ []string) error {
			return execRun(cfg, runConfig{theme: cfg.Theme})
		},
	}
}

type runConfig struct {
	theme        string
	seed         uint64
	noBackground bool
}

func execRun(cfg config.Config, rc runConfig) error {
	variant, err := theme.ParseVariant(rc.theme)
	if err != nil {
		return err
	}
	term := os.Getenv("TERM")
	bundle, err := theme.Resolve(variant, term)
	if err != nil {
		return err
	}
	profile := theme.DetectTermProfile(term)

	var copyFn func(string) error
	if !clipboard.Unsupported {
		copyFn = clipboard.WriteAll
	}

	model := tui.NewModel(tui.Options{
		Theme:      bundle,
		Renderer:   lipgloss.DefaultRenderer(),
		Background: !rc.noBackground && profile.IsTTY && profile.Colors > 0,
		Tuning:     cfg.Effects(),
		Portfolio:  content.Default(),
		Seed:       rc.seed,
		Copy:       copyFn,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

type snapshotConfig struct {
	width  int
	height int
	ticks  int
	seed   uint64
	glyph  int
	out    string
}

func execSnapshot(cfg config.Config, sc snapshotConfig) error {
	if sc.width <= 0 || sc.height <= 0 {
		return fmt.Errorf("snapshot size must be positive, got %dx%d", sc.width, sc.height)
	}
	surface, err := canvas.New(sc.glyph)
	if err != nil {
		return err
	}

	rainCfg := cfg.Effects().Rain
	rainCfg.GlyphSize = sc.glyph
	rain := effect.NewRain(surface, effect.NewSource(sc.seed), rainCfg)
	rain.Resize(sc.width, sc.height)
	for i := 0; i < sc.ticks; i++ {
		rain.Tick()
	}

	if err := surface.SavePNG(sc.out); err != nil {
		return err
	}
	log.Info("snapshot_written", "path", sc.out, "width", sc.width, "height", sc.height, "ticks", sc.ticks, "columns", rain.Columns())
	return nil
}
