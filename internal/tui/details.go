package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// detailsModel shows the long-form sections in a scrollable viewport.
type detailsModel struct {
	markdown string
	style    string
	viewport viewport.Model

	renderedWidth int
}

func newDetailsModel(markdown, style string) *detailsModel {
	return &detailsModel{markdown: markdown, style: style, viewport: viewport.New(0, 0)}
}

func (m *detailsModel) resize(width, height int) {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	if width <= 0 || width == m.renderedWidth {
		return
	}
	m.renderedWidth = width
	m.viewport.SetContent(renderMarkdown(m.markdown, m.style, width))
}

func (m *detailsModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *detailsModel) view() string {
	return m.viewport.View()
}

// renderMarkdown falls back to the raw text when glamour cannot render.
func renderMarkdown(md, style string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
