package effect

// DefaultPalette is the glyph set the background samples from.
const DefaultPalette = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@#$%^&*()"

const (
	defaultGlyphSize   = 12
	defaultResetChance = 0.025
	defaultFadeAlpha   = 0.05
	defaultStartRow    = 1
)

// RainConfig tunes the falling-glyph background.
type RainConfig struct {
	// GlyphSize is the width and height of one glyph in surface units.
	GlyphSize int
	Palette   []rune
	// ResetChance is the per-tick probability that a drop which has left the
	// surface restarts at the top.
	ResetChance float64
	FadeAlpha   float64
	StartRow    float64
}

// DefaultRainConfig returns the stock tuning for a pixel canvas.
func DefaultRainConfig() RainConfig {
	return RainConfig{
		GlyphSize:   defaultGlyphSize,
		Palette:     []rune(DefaultPalette),
		ResetChance: defaultResetChance,
		FadeAlpha:   defaultFadeAlpha,
		StartRow:    defaultStartRow,
	}
}

func (c RainConfig) withDefaults() RainConfig {
	d := DefaultRainConfig()
	if c.GlyphSize <= 0 {
		c.GlyphSize = d.GlyphSize
	}
	if len(c.Palette) == 0 {
		c.Palette = d.Palette
	}
	c.ResetChance = clamp01(c.ResetChance)
	c.FadeAlpha = clamp01(c.FadeAlpha)
	if c.StartRow < 0 {
		c.StartRow = 0
	}
	return c
}

// Rain paints the falling-glyph curtain onto a Surface.
type Rain struct {
	cfg     RainConfig
	surface Surface
	rng     Source

	width  int
	height int
	drops  []float64
}

// NewRain binds a renderer to surface. A nil surface yields an inactive
// renderer whose Resize and Tick do nothing.
func NewRain(surface Surface, rng Source, cfg RainConfig) *Rain {
	if rng == nil {
		rng = NewSource(0)
	}
	return &Rain{cfg: cfg.withDefaults(), surface: surface, rng: rng}
}

// Active reports whether the renderer has a surface to draw on.
func (r *Rain) Active() bool { return r.surface != nil }

// Resize resizes the surface and restarts every column at the start row.
func (r *Rain) Resize(width, height int) {
	if r.surface == nil {
		return
	}
	r.width = max(width, 0)
	r.height = max(height, 0)
	r.surface.Resize(r.width, r.height)

	columns := r.width / r.cfg.GlyphSize
	r.drops = make([]float64, columns)
	for i := range r.drops {
		r.drops[i] = r.cfg.StartRow
	}
}

// Tick paints one frame: a fade overlay, then one glyph per column.
func (r *Rain) Tick() {
	if r.surface == nil || len(r.drops) == 0 {
		return
	}

	g := r.cfg.GlyphSize
	r.surface.Fade(r.cfg.FadeAlpha)
	for i := range r.drops {
		glyph := r.cfg.Palette[r.rng.IntN(len(r.cfg.Palette))]
		r.surface.DrawGlyph(i*g, int(r.drops[i])*g, glyph)

		if r.drops[i]*float64(g) > float64(r.height) && r.rng.Float64() < r.cfg.ResetChance {
			r.drops[i] = 0
		}
		r.drops[i]++
	}
}

// Columns is the current column count.
func (r *Rain) Columns() int { return len(r.drops) }

// Drops returns a copy of the per-column row counters.
func (r *Rain) Drops() []float64 {
	out := make([]float64, len(r.drops))
	copy(out, r.drops)
	return out
}

// Size is the last size passed to Resize.
func (r *Rain) Size() (width, height int) { return r.width, r.height }

// GlyphSize is the effective glyph size after defaults.
func (r *Rain) GlyphSize() int { return r.cfg.GlyphSize }
