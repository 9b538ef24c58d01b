package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"portfolio-terminal/internal/effect"
)

type typistTickMsg struct {
	id  int
	tag int
}

// typistModel keeps exactly one one-shot tick in flight until the typist is
// done. Bumping tag orphans whatever tick is pending.
type typistModel struct {
	id     int
	tag    int
	script []string
	typist *effect.Typist
}

func newTypistModel(script []string, rng effect.Source, cfg effect.TypistConfig) *typistModel {
	return &typistModel{
		id:     nextID(),
		script: append([]string(nil), script...),
		typist: effect.NewTypist(script, rng, cfg),
	}
}

func (m *typistModel) schedule() tea.Cmd {
	delay, ok := m.typist.NextDelay()
	if !ok {
		return nil
	}
	id, tag := m.id, m.tag
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return typistTickMsg{id: id, tag: tag}
	})
}

func (m *typistModel) update(msg typistTickMsg) tea.Cmd {
	if msg.id != m.id || msg.tag != m.tag {
		return nil
	}
	m.typist.Advance()
	return m.schedule()
}

// restart replays the script from the top.
func (m *typistModel) restart() tea.Cmd {
	m.tag++
	m.typist.Restart(m.script)
	return m.schedule()
}

// stop cancels the pending tick without touching what is on screen.
func (m *typistModel) stop() {
	m.tag++
}
