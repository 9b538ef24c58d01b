package tui

import (
	"github.com/charmbracelet/lipgloss"

	"portfolio-terminal/internal/theme"
)

type styles struct {
	renderer *lipgloss.Renderer
	mono     bool

	header  lipgloss.Style
	accent  lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	prompt  lipgloss.Style
	banner  lipgloss.Style
	history lipgloss.Style
	panel   lipgloss.Style

	rainHead  lipgloss.Style
	rainTrail lipgloss.Style
	rainFaint lipgloss.Style
}

func newStyles(b theme.Bundle, r *lipgloss.Renderer) styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	panel := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if b.Border.Foreground != "" {
		panel = panel.BorderForeground(lipgloss.Color(b.Border.Foreground))
	}
	return styles{
		renderer:  r,
		mono:      b.Variant == theme.VariantMono,
		header:    b.Header.Lipgloss(r),
		accent:    b.Accent.Lipgloss(r),
		text:      b.Text.Lipgloss(r),
		muted:     b.Muted.Lipgloss(r),
		prompt:    b.Prompt.Lipgloss(r),
		banner:    b.Banner.Lipgloss(r),
		history:   b.Muted.Lipgloss(r).Faint(true),
		panel:     panel,
		rainHead:  b.RainHead.Lipgloss(r),
		rainTrail: b.RainTrail.Lipgloss(r),
		rainFaint: b.RainFaint.Lipgloss(r),
	}
}

// swatch colors a skill bar with the category color unless the session is
// monochrome.
func (s styles) swatch(color string) lipgloss.Style {
	if s.mono || color == "" {
		return s.accent
	}
	return s.renderer.NewStyle().Foreground(lipgloss.Color(color))
}
