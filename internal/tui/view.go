package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	cursorGlyph  = "█"
	bannerTitle  = "Ready for your next challenge"
	bannerDetail = "Enterprise-scale engineer ready to drive your team's success"
	skillBarSize = 10
)

// View renders the foreground panels over the background.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	l := m.layout()
	layers := []layer{{x: 0, y: 0, lines: []string{m.headerView()}}}
	add := func(r rect, lines []string) {
		if r.empty() {
			return
		}
		layers = append(layers, layer{x: r.x, y: r.y, lines: m.box(r, lines)})
	}
	add(l.terminal, m.terminalLines(l.terminal))
	add(l.metrics, m.metricsLines(l.metrics))
	add(l.skills, m.skillsLines(l.skills))
	add(l.quotes, m.quoteLines(l.quotes))
	add(l.details, m.detailsLines())
	layers = append(layers, layer{x: 0, y: l.footerY, lines: strings.Split(m.footerView(), "\n")})

	return composite(m.width, m.height, m.rain.segment, layers)
}

// box draws a bordered panel of exactly r's size.
func (m Model) box(r rect, lines []string) []string {
	inner, rows := r.w-4, r.h-2
	clip := m.styles.renderer.NewStyle().MaxWidth(inner)
	body := make([]string, rows)
	for i := 0; i < rows && i < len(lines); i++ {
		body[i] = clip.Render(lines[i])
	}
	out := m.styles.panel.Width(r.w - 2).Height(rows).Render(strings.Join(body, "\n"))
	return strings.Split(out, "\n")
}

func (m Model) headerView() string {
	p := m.portfolio.Profile
	right := fmt.Sprintf("✔ %s · visitor %s ", p.Availability, m.visitor)
	line := fmt.Sprintf(" [%s] %s", p.Initials, p.Name)
	for _, left := range []string{
		fmt.Sprintf(" [%s] %s · %s · %s", p.Initials, p.Name, p.Title, p.Tagline),
		fmt.Sprintf(" [%s] %s · %s", p.Initials, p.Name, p.Title),
		line,
	} {
		if gap := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right); gap > 0 {
			line = left + strings.Repeat(" ", gap) + right
			break
		}
	}
	line = runewidth.FillRight(runewidth.Truncate(line, m.width, ""), m.width)
	return m.styles.header.Render(line)
}

func (m Model) footerView() string {
	if m.status != "" {
		return m.styles.banner.Render(" " + m.status)
	}
	return m.help.View(m.keys)
}

func (m Model) terminalLines(r rect) []string {
	inner, rows := r.w-4, r.h-2
	if rows <= 0 {
		return nil
	}
	t := m.typist.typist
	title := m.styles.accent.Render("● ● ●") + " " + m.styles.muted.Render(truncate(m.portfolio.Profile.Prompt, inner-6))

	var body []string
	for _, line := range t.History() {
		body = append(body, m.styles.history.Render(truncate("$ "+line, inner)))
	}
	if t.Len() > 0 {
		active := m.styles.prompt.Render(truncate("$ "+t.Revealed(), inner-1))
		if !t.Done() {
			active += m.styles.accent.Render(cursorGlyph)
		}
		body = append(body, active)
	}
	if t.Done() {
		body = append(body,
			"",
			m.styles.banner.Render(truncate("✔ "+bannerTitle, inner)),
			m.styles.muted.Render(truncate(bannerDetail, inner)),
		)
	}
	if keep := rows - 1; len(body) > keep {
		body = body[len(body)-keep:]
	}
	return append([]string{title}, body...)
}

func (m Model) metricsLines(r rect) []string {
	inner := r.w - 4
	lines := []string{m.styles.accent.Render("Impact"), ""}
	for _, mt := range m.portfolio.Metrics {
		value := fmt.Sprintf("%-5s", mt.Value)
		rest := truncate(mt.Label+" · "+mt.Detail, inner-len(value)-1)
		lines = append(lines, m.styles.accent.Render(value)+" "+m.styles.text.Render(rest))
	}
	return lines
}

func (m Model) skillsLines(r rect) []string {
	inner := r.w - 4
	cats := m.portfolio.Skills
	if len(cats) == 0 {
		return nil
	}

	titles := make([]string, len(cats))
	total := 0
	for i, c := range cats {
		titles[i] = c.Title
		total += runewidth.StringWidth(c.Title) + 3
	}
	if total > inner {
		for i, c := range cats {
			titles[i] = c.Key
		}
	}
	tabs := make([]string, len(cats))
	for i, title := range titles {
		if i == m.skillTab {
			tabs[i] = m.styles.accent.Underline(true).Render(title)
		} else {
			tabs[i] = m.styles.muted.Render(title)
		}
	}

	cat := cats[m.skillTab]
	nameW := min(22, inner/3)
	swatch := m.styles.swatch(cat.Color)
	lines := []string{strings.Join(tabs, m.styles.muted.Render(" │ ")), ""}
	for _, s := range cat.Items {
		filled := max(0, min(skillBarSize, s.Level*skillBarSize/100))
		bar := strings.Repeat("█", filled) + strings.Repeat("░", skillBarSize-filled)
		name := runewidth.FillRight(truncate(s.Name, nameW), nameW)
		level := fmt.Sprintf(" %3d%% ", s.Level)
		rest := truncate(s.Experience, inner-nameW-skillBarSize-len(level)-1)
		lines = append(lines, m.styles.text.Render(name)+" "+swatch.Render(bar)+m.styles.text.Render(level)+m.styles.muted.Render(rest))
	}
	return lines
}

func (m Model) quoteLines(r rect) []string {
	inner, rows := r.w-4, r.h-2
	recs := m.portfolio.Recommendations
	if len(recs) == 0 || rows < 4 {
		return nil
	}
	idx := m.quotes.carousel.Index()
	rec := recs[idx]

	stars := strings.Repeat("★", max(0, min(5, rec.Rating)))
	lines := []string{m.styles.accent.Render(stars) + "  " + m.styles.muted.Render(truncate(rec.Company, inner-7))}

	textRows := rows - 3
	wrapped := wrapText(m.styles.renderer, "“"+rec.Text+"”", inner)
	if len(wrapped) > textRows {
		last := strings.Join(wrapped[textRows-1:], " ")
		wrapped = append(wrapped[:textRows-1], truncate(last, inner))
	}
	for _, line := range wrapped {
		lines = append(lines, m.styles.text.Italic(true).Render(line))
	}
	for len(lines) < rows-2 {
		lines = append(lines, "")
	}
	lines = append(lines, m.styles.text.Bold(true).Render(truncate("- "+rec.Name, inner)))

	dots := make([]string, len(recs))
	for i := range recs {
		if i == idx {
			dots[i] = m.styles.accent.Render("●")
		} else {
			dots[i] = m.styles.muted.Render("○")
		}
	}
	return append(lines, strings.Join(dots, " "))
}

func (m Model) detailsLines() []string {
	title := m.styles.accent.Render("Details") + m.styles.muted.Render(fmt.Sprintf("  %3.0f%%", m.details.viewport.ScrollPercent()*100))
	return append([]string{title}, strings.Split(m.details.view(), "\n")...)
}

func wrapText(r *lipgloss.Renderer, text string, width int) []string {
	if width <= 0 {
		return nil
	}
	lines := strings.Split(r.NewStyle().Width(width).Render(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
