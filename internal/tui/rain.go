package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portfolio-terminal/internal/effect"
)

const (
	rainHeadIntensity  = 0.75
	rainTrailIntensity = 0.35
)

type rainTickMsg struct {
	id  int
	tag int
}

// rainModel drives the falling-glyph background on a repeating tick.
type rainModel struct {
	id       int
	tag      int
	interval time.Duration
	surface  *effect.CellSurface
	rain     *effect.Rain
	running  bool

	head  lipgloss.Style
	trail lipgloss.Style
	faint lipgloss.Style
}

// newRainModel builds the background. With enabled false there is no surface
// and the effect never starts.
func newRainModel(cfg effect.RainConfig, interval time.Duration, rng effect.Source, enabled bool) *rainModel {
	m := &rainModel{id: nextID(), interval: interval}

	// One terminal cell per glyph.
	cfg.GlyphSize = 1
	var surface effect.Surface
	if enabled {
		m.surface = effect.NewCellSurface(0, 0)
		surface = m.surface
	}
	m.rain = effect.NewRain(surface, rng, cfg)
	return m
}

// resize follows the window. It arms the tick the first time a usable
// surface exists.
func (m *rainModel) resize(width, height int) tea.Cmd {
	if !m.rain.Active() {
		return nil
	}
	m.rain.Resize(width, height)
	if m.running || m.rain.Columns() == 0 || height <= 0 {
		return nil
	}
	m.running = true
	return m.tick()
}

func (m *rainModel) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return rainTickMsg{id: id, tag: tag}
	})
}

func (m *rainModel) update(msg rainTickMsg) tea.Cmd {
	if msg.id != m.id || msg.tag != m.tag || !m.running {
		return nil
	}
	m.rain.Tick()
	return m.tick()
}

// stop invalidates the in-flight tick.
func (m *rainModel) stop() {
	m.running = false
	m.tag++
}

// segment renders cells [from, to) of row y.
func (m *rainModel) segment(y, from, to int) string {
	if to <= from {
		return ""
	}
	if m.surface == nil {
		return strings.Repeat(" ", to-from)
	}

	var b strings.Builder
	var run strings.Builder
	class := -1
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(m.styleFor(class).Render(run.String()))
		run.Reset()
	}
	for x := from; x < to; x++ {
		cell := m.surface.At(x, y)
		c, glyph := classify(cell)
		if c != class {
			flush()
			class = c
		}
		run.WriteRune(glyph)
	}
	flush()
	return b.String()
}

const (
	classBlank = iota
	classFaint
	classTrail
	classHead
)

func classify(cell effect.Cell) (int, rune) {
	switch {
	case cell.Blank():
		return classBlank, ' '
	case cell.Intensity >= rainHeadIntensity:
		return classHead, cell.Glyph
	case cell.Intensity >= rainTrailIntensity:
		return classTrail, cell.Glyph
	default:
		return classFaint, cell.Glyph
	}
}

func (m *rainModel) styleFor(class int) lipgloss.Style {
	switch class {
	case classHead:
		return m.head
	case classTrail:
		return m.trail
	case classFaint:
		return m.faint
	default:
		return lipgloss.NewStyle()
	}
}
