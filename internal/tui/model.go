// Package tui is the Bubble Tea program for one portfolio session: the
// falling-glyph background, the typing terminal, the recommendation
// carousel, skills and details, composed into one screen.
package tui

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portfolio-terminal/internal/content"
	"portfolio-terminal/internal/effect"
	"portfolio-terminal/internal/theme"
)

// Options configures one portfolio session.
type Options struct {
	Width      int
	Height     int
	RemoteAddr string

	Theme    theme.Bundle
	Renderer *lipgloss.Renderer
	// Background turns the falling-glyph effect on. Terminals that cannot
	// draw it leave it off and the effect never starts.
	Background bool

	Tuning    effect.Tuning
	Portfolio content.Portfolio
	// Seed feeds the per-component random sources; zero picks one from the clock.
	Seed uint64
	Now  func() time.Time
	// Copy puts text on the visitor's clipboard. Nil disables the binding.
	Copy func(string) error
}

type copyResultMsg struct{ err error }

// Model is the Bubble Tea model for one visitor.
type Model struct {
	width  int
	height int

	portfolio content.Portfolio
	styles    styles
	keys      keyMap
	help      help.Model

	rain    *rainModel
	typist  *typistModel
	quotes  *carouselModel
	details *detailsModel

	skillTab int
	visitor  string
	copyFn   func(string) error
	status   string
}

// NewModel builds a session model. Zero-valued tuning falls back to defaults.
func NewModel(opts Options) Model {
	tuning := opts.Tuning
	defaults := effect.DefaultTuning()
	if tuning.RainTick <= 0 {
		tuning.RainTick = defaults.RainTick
	}
	if tuning.CarouselInterval <= 0 {
		tuning.CarouselInterval = defaults.CarouselInterval
	}
	if len(tuning.Rain.Palette) == 0 {
		tuning.Rain = defaults.Rain
	}
	if opts.Theme.Variant == "" {
		opts.Theme, _ = theme.Resolve(theme.VariantOcean, "xterm-256color")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	st := newStyles(opts.Theme, opts.Renderer)
	rain := newRainModel(tuning.Rain, tuning.RainTick, effect.NewSource(seed), opts.Background)
	rain.head, rain.trail, rain.faint = st.rainHead, st.rainTrail, st.rainFaint

	glamourStyle := "dark"
	if opts.Theme.Variant == theme.VariantMono {
		glamourStyle = "notty"
	}

	m := Model{
		width:     opts.Width,
		height:    opts.Height,
		portfolio: opts.Portfolio,
		styles:    st,
		keys:      defaultKeyMap(),
		help:      help.New(),
		rain:      rain,
		typist:    newTypistModel(opts.Portfolio.Commands, effect.NewSource(seed+1), tuning.Typist),
		quotes:    newCarouselModel(len(opts.Portfolio.Recommendations), tuning.CarouselInterval, opts.Now),
		details:   newDetailsModel(opts.Portfolio.Markdown(), glamourStyle),
		visitor:   deriveObserverHash(opts.RemoteAddr),
		copyFn:    opts.Copy,
	}
	m.help.Width = opts.Width
	if m.copyFn == nil {
		m.keys.Copy.SetEnabled(false)
	}
	return m
}

// Init starts the typist and the carousel, and the background when the
// window size is already known.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.typist.schedule(), m.quotes.arm()}
	if m.width > 0 && m.height > 0 {
		cmds = append(cmds, m.rain.resize(m.width, m.height))
		m.resizeDetails()
	}
	return tea.Batch(cmds...)
}

// Update advances model state in response to events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resizeDetails()
		return m, m.rain.resize(msg.Width, msg.Height)
	case rainTickMsg:
		return m, m.rain.update(msg)
	case typistTickMsg:
		return m, m.typist.update(msg)
	case carouselTickMsg:
		return m, m.quotes.update(msg)
	case copyResultMsg:
		if msg.err != nil {
			m.status = "clipboard unavailable"
		} else {
			m.status = "copied " + m.portfolio.Profile.Email
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Replay):
		return m, m.typist.restart()
	case key.Matches(msg, m.keys.NextQuote):
		m.quotes.step(1)
	case key.Matches(msg, m.keys.PrevQuote):
		m.quotes.step(-1)
	case key.Matches(msg, m.keys.PickQuote):
		m.quotes.selectIndex(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.NextSkills):
		m.skillTab = wrapIndex(m.skillTab+1, len(m.portfolio.Skills))
	case key.Matches(msg, m.keys.PrevSkills):
		m.skillTab = wrapIndex(m.skillTab-1, len(m.portfolio.Skills))
	case key.Matches(msg, m.keys.Copy):
		email, copyFn := m.portfolio.Profile.Email, m.copyFn
		return m, func() tea.Msg { return copyResultMsg{err: copyFn(email)} }
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeDetails()
	default:
		return m, m.details.update(msg)
	}
	return m, nil
}

// Close releases every timer the session owns. Ticks already queued are
// dropped when they arrive.
func (m Model) Close() {
	m.rain.stop()
	m.typist.stop()
	m.quotes.stop()
}

func (m Model) resizeDetails() {
	r := m.layout().details
	// One row of the panel is the title.
	m.details.resize(r.w-4, r.h-3)
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func normalizeRemoteAddr(remoteAddr string) string {
	addr := strings.TrimSpace(remoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")
}

func deriveObserverHash(remoteAddr string) string {
	sum := sha256.Sum256([]byte(normalizeRemoteAddr(remoteAddr)))
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:12]
}
