package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"portfolio-terminal/internal/effect"
)

type carouselTickMsg struct {
	id  int
	tag int
}

// carouselModel rotates quotes on a fixed interval. Manual selection only
// moves the index; it never re-arms the tick.
type carouselModel struct {
	id       int
	tag      int
	interval time.Duration
	carousel *effect.Carousel
	now      func() time.Time
	next     time.Time
	armed    bool
}

func newCarouselModel(size int, interval time.Duration, now func() time.Time) *carouselModel {
	if now == nil {
		now = time.Now
	}
	return &carouselModel{
		id:       nextID(),
		interval: interval,
		carousel: effect.NewCarousel(size),
		now:      now,
	}
}

func (m *carouselModel) arm() tea.Cmd {
	if m.carousel.Len() < 2 {
		return nil
	}
	m.armed = true
	m.next = m.now().Add(m.interval)
	id, tag := m.id, m.tag
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return carouselTickMsg{id: id, tag: tag}
	})
}

func (m *carouselModel) update(msg carouselTickMsg) tea.Cmd {
	if msg.id != m.id || msg.tag != m.tag {
		return nil
	}
	m.carousel.Advance()
	return m.arm()
}

// selectIndex jumps to i and leaves the schedule alone.
func (m *carouselModel) selectIndex(i int) bool {
	return m.carousel.Select(i)
}

func (m *carouselModel) step(delta int) bool {
	n := m.carousel.Len()
	if n == 0 {
		return false
	}
	return m.carousel.Select(((m.carousel.Index()+delta)%n + n) % n)
}

// nextFiring reports when the pending tick is due.
func (m *carouselModel) nextFiring() (time.Time, bool) {
	return m.next, m.armed
}

func (m *carouselModel) stop() {
	m.armed = false
	m.tag++
}
