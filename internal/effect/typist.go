package effect

import (
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

const (
	defaultMinTypingDelay = 30 * time.Millisecond
	defaultMaxTypingDelay = 80 * time.Millisecond
	defaultLinePause      = 1200 * time.Millisecond
)

// TypistConfig tunes typing cadence.
type TypistConfig struct {
	MinDelay  time.Duration
	MaxDelay  time.Duration
	LinePause time.Duration
}

// DefaultTypistConfig returns the stock cadence.
func DefaultTypistConfig() TypistConfig {
	return TypistConfig{
		MinDelay:  defaultMinTypingDelay,
		MaxDelay:  defaultMaxTypingDelay,
		LinePause: defaultLinePause,
	}
}

func (c TypistConfig) withDefaults() TypistConfig {
	d := DefaultTypistConfig()
	if c.MinDelay <= 0 {
		c.MinDelay = d.MinDelay
	}
	if c.MaxDelay < c.MinDelay {
		c.MaxDelay = c.MinDelay
	}
	if c.LinePause <= 0 {
		c.LinePause = d.LinePause
	}
	return c
}

// Phase is the typist's position in its line cycle.
type Phase int

const (
	// PhaseTyping reveals the current line one grapheme at a time.
	PhaseTyping Phase = iota
	// PhaseLinePause holds a fully revealed line before moving on.
	PhaseLinePause
	// PhaseDone is terminal.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseTyping:
		return "typing"
	case PhaseLinePause:
		return "line-pause"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Typist reveals a fixed script the way a person types it.
//
// The caller drives it: NextDelay says how long to wait before the single
// pending transition, Advance applies that transition.
type Typist struct {
	cfg TypistConfig
	rng Source

	script   []string
	lines    [][]string
	index    int
	revealed int
	done     bool
}

// NewTypist starts at the first line of script. An empty script starts Done.
func NewTypist(script []string, rng Source, cfg TypistConfig) *Typist {
	if rng == nil {
		rng = NewSource(0)
	}
	t := &Typist{cfg: cfg.withDefaults(), rng: rng}
	t.Restart(script)
	return t
}

// Restart replaces the script and rewinds to its first line.
func (t *Typist) Restart(script []string) {
	t.script = append([]string(nil), script...)
	t.lines = make([][]string, len(t.script))
	for i, line := range t.script {
		t.lines[i] = graphemes(line)
	}
	t.index = 0
	t.revealed = 0
	t.done = len(t.script) == 0
}

// Phase reports the current state.
func (t *Typist) Phase() Phase {
	switch {
	case t.done:
		return PhaseDone
	case t.revealed < len(t.lines[t.index]):
		return PhaseTyping
	default:
		return PhaseLinePause
	}
}

// NextDelay returns the wait before the pending transition. Typing delays are
// re-rolled on every call. ok is false once the typist is Done.
func (t *Typist) NextDelay() (delay time.Duration, ok bool) {
	switch t.Phase() {
	case PhaseTyping:
		spread := float64(t.cfg.MaxDelay - t.cfg.MinDelay)
		return t.cfg.MinDelay + time.Duration(t.rng.Float64()*spread), true
	case PhaseLinePause:
		return t.cfg.LinePause, true
	default:
		return 0, false
	}
}

// Advance applies one transition and returns the resulting phase.
func (t *Typist) Advance() Phase {
	switch t.Phase() {
	case PhaseTyping:
		t.revealed++
	case PhaseLinePause:
		if t.index < len(t.lines)-1 {
			t.index++
			t.revealed = 0
		} else {
			t.done = true
		}
	}
	return t.Phase()
}

// Done reports whether the last line has been typed and its pause elapsed.
func (t *Typist) Done() bool { return t.done }

// Index is the line currently being typed.
func (t *Typist) Index() int { return t.index }

// RevealedLen is the number of graphemes shown on the current line.
func (t *Typist) RevealedLen() int { return t.revealed }

// LineLen is the grapheme length of line i, or 0 when out of range.
func (t *Typist) LineLen(i int) int {
	if i < 0 || i >= len(t.lines) {
		return 0
	}
	return len(t.lines[i])
}

// Len is the script length.
func (t *Typist) Len() int { return len(t.script) }

// Revealed is the visible prefix of the current line. After Done it is the
// full last line.
func (t *Typist) Revealed() string {
	if len(t.lines) == 0 {
		return ""
	}
	return strings.Join(t.lines[t.index][:t.revealed], "")
}

// History returns the lines finished before the current one.
func (t *Typist) History() []string {
	if t.index == 0 {
		return nil
	}
	return append([]string(nil), t.script[:t.index]...)
}

func graphemes(s string) []string {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
