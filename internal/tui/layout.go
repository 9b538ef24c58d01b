package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	wideLayoutWidth = 100
	heroHeight      = 12
	cardHeight      = 9
	minPanelWidth   = 20
	minDetailsRows  = 5
)

type rect struct {
	x, y, w, h int
}

func (r rect) empty() bool { return r.w <= 0 || r.h <= 0 }

func (r rect) bottom() int { return r.y + r.h }

type layoutRects struct {
	terminal rect
	metrics  rect
	skills   rect
	quotes   rect
	details  rect
	footerY  int
}

// layout places the panels for the current window. Panels that would run
// into the footer are dropped.
func (m Model) layout() layoutRects {
	var l layoutRects
	w, h := m.width, m.height
	l.footerY = h - lipgloss.Height(m.footerView())
	if w-4 < minPanelWidth {
		return l
	}

	fits := func(r rect) rect {
		if r.bottom() > l.footerY {
			return rect{}
		}
		return r
	}

	top := 2
	if w >= wideLayoutWidth {
		colW := (w - 6) / 2
		rightX := 4 + colW
		rightW := w - 2 - rightX
		l.terminal = fits(rect{x: 2, y: top, w: colW, h: heroHeight})
		l.metrics = fits(rect{x: rightX, y: top, w: rightW, h: heroHeight})
		mid := top + heroHeight + 1
		l.skills = fits(rect{x: 2, y: mid, w: colW, h: cardHeight})
		l.quotes = fits(rect{x: rightX, y: mid, w: rightW, h: cardHeight})
		l.details = m.detailsRect(mid+cardHeight+1, w, l.footerY)
		return l
	}

	cw := w - 4
	y := top
	l.terminal = fits(rect{x: 2, y: y, w: cw, h: heroHeight})
	y += heroHeight + 1
	l.quotes = fits(rect{x: 2, y: y, w: cw, h: cardHeight})
	y += cardHeight + 1
	l.skills = fits(rect{x: 2, y: y, w: cw, h: cardHeight})
	y += cardHeight + 1
	l.details = m.detailsRect(y, w, l.footerY)
	return l
}

func (m Model) detailsRect(y, width, footerY int) rect {
	h := footerY - 1 - y
	if h < minDetailsRows {
		return rect{}
	}
	return rect{x: 2, y: y, w: width - 4, h: h}
}

type layer struct {
	x, y  int
	lines []string
}

type span struct {
	x     int
	width int
	line  string
}

// composite lays the foreground layers over the background row by row.
// Every cell no layer covers is filled from bg.
func composite(width, height int, bg func(y, from, to int) string, layers []layer) string {
	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var spans []span
		for _, l := range layers {
			if y < l.y || y >= l.y+len(l.lines) {
				continue
			}
			line := l.lines[y-l.y]
			spans = append(spans, span{x: l.x, width: lipgloss.Width(line), line: line})
		}
		sort.Slice(spans, func(i, j int) bool { return spans[i].x < spans[j].x })

		var b strings.Builder
		cursor := 0
		for _, s := range spans {
			if s.x < cursor || s.x+s.width > width {
				continue
			}
			b.WriteString(bg(y, cursor, s.x))
			b.WriteString(s.line)
			cursor = s.x + s.width
		}
		b.WriteString(bg(y, cursor, width))
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}
