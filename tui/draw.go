package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mkts/internal/layout"
	"mkts/internal/render"
	"mkts/tui/styles"
)

// sparkLevels are the column glyphs for the sparkline, shortest first.
var sparkLevels = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Draw translates a composed panel tree into one terminal frame. Each leaf is
// rendered to exactly its rectangle; splits reassemble with lipgloss joins, so
// the frame has the viewport's exact geometry.
func Draw(n *render.Node) string {
	if n == nil {
		return ""
	}
	if n.Panel != nil {
		return drawPanel(n.Panel)
	}

	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Rect.W <= 0 || c.Rect.H <= 0 {
			continue
		}
		parts = append(parts, Draw(c))
	}
	if len(parts) == 0 {
		return ""
	}
	if n.Dir == layout.Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func drawPanel(p *render.Panel) string {
	w, h := p.Rect.W, p.Rect.H
	if w <= 0 || h <= 0 {
		return ""
	}

	border := p.Border && w >= 4 && h >= 2
	contentW, contentH := w, h
	if border {
		// Rounded border plus one cell of horizontal padding.
		contentW, contentH = w-4, h-2
	}
	if contentW < 0 {
		contentW = 0
	}

	lines := make([]string, 0, contentH)
	if p.Title != "" && contentH > 0 {
		lines = append(lines, styles.TitleStyle.Render(p.Title))
	}
	avail := contentH - len(lines)
	if avail > 0 {
		lines = append(lines, drawContent(p.Content, contentW, avail)...)
	}
	if len(lines) > contentH {
		lines = lines[:contentH]
	}
	content := strings.Join(lines, "\n")

	if border {
		return styles.PanelStyle.
			Width(w - 2).Height(h - 2).
			MaxWidth(w).MaxHeight(h).
			Render(content)
	}
	return styles.PlainStyle.
		Width(w).Height(h).
		MaxWidth(w).MaxHeight(h).
		Render(content)
}

func drawContent(c render.Content, w, h int) []string {
	switch c := c.(type) {
	case render.Paragraph:
		return drawParagraph(c)
	case render.Table:
		return drawTable(c, h)
	case render.List:
		return drawList(c, h)
	case render.Gauge:
		return drawGauge(c, w)
	case render.Sparkline:
		return drawSparkline(c, w, h)
	}
	return nil
}

func drawParagraph(p render.Paragraph) []string {
	lines := make([]string, 0, len(p.Lines))
	for _, line := range p.Lines {
		var b strings.Builder
		for _, span := range line {
			b.WriteString(styleFor(span.Style).Render(span.Text))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func drawTable(t render.Table, h int) []string {
	lines := make([]string, 0, len(t.Rows)+1)

	header := make([]string, len(t.Header))
	for i, col := range t.Header {
		header[i] = pad(col, colWidth(t.Widths, i))
	}
	lines = append(lines, styles.HeaderRowStyle.Render(strings.Join(header, " ")))

	for _, row := range t.Rows {
		if len(lines) >= h {
			break
		}
		cells := make([]string, len(row.Cells))
		if row.Selected {
			// Row highlight wins over per-cell coloring.
			for i, cell := range row.Cells {
				cells[i] = pad(cell.Text, colWidth(t.Widths, i))
			}
			lines = append(lines, styles.SelectedRowStyle.Render(strings.Join(cells, " ")))
			continue
		}
		for i, cell := range row.Cells {
			cells[i] = styleFor(cell.Style).Render(pad(cell.Text, colWidth(t.Widths, i)))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}

func drawList(l render.List, h int) []string {
	lines := make([]string, 0, len(l.Items))
	for i, item := range l.Items {
		if len(lines) >= h {
			break
		}
		if i == l.Selected {
			lines = append(lines, styles.SelectedItemStyle.Render(item.Text))
			continue
		}
		lines = append(lines, styleFor(item.Style).Render(item.Text))
	}
	return lines
}

func drawGauge(g render.Gauge, w int) []string {
	if w <= 0 {
		return nil
	}
	filled := int(g.Ratio*float64(w) + 0.5)
	if filled > w {
		filled = w
	}
	bar := styles.GaugeFillStyle.Render(strings.Repeat("█", filled)) +
		styles.GaugeEmptyStyle.Render(strings.Repeat("░", w-filled))
	return []string{
		styles.ValueStyle.Render(g.Label),
		bar,
	}
}

func drawSparkline(s render.Sparkline, w, h int) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	samples := s.Samples
	if len(samples) > w {
		samples = samples[len(samples)-w:]
	}

	var maxVal uint64
	for _, v := range samples {
		if v > maxVal {
			maxVal = v
		}
	}

	var b strings.Builder
	for _, v := range samples {
		idx := 0
		if maxVal > 0 {
			idx = int(v * uint64(len(sparkLevels)) / (maxVal + 1))
		}
		b.WriteRune(sparkLevels[idx])
	}

	// The series sits on the panel floor, like a bar chart.
	lines := make([]string, h)
	lines[h-1] = styles.SparkStyle.Render(b.String())
	return lines
}

func styleFor(s render.Style) lipgloss.Style {
	switch s {
	case render.StyleBrand:
		return styles.BrandStyle
	case render.StyleTitle:
		return styles.TitleStyle
	case render.StyleHeader:
		return styles.HeaderRowStyle
	case render.StyleValue:
		return styles.ValueStyle
	case render.StyleGain:
		return styles.GainStyle
	case render.StyleLoss:
		return styles.LossStyle
	case render.StyleAccent:
		return styles.AccentStyle
	case render.StyleWarn:
		return styles.WarnStyle
	case render.StyleMuted:
		return styles.MutedStyle
	case render.StyleBold:
		return styles.BoldStyle
	}
	return styles.TextStyle
}

// pad left-aligns s into a fixed-width cell.
func pad(s string, w int) string {
	return fmt.Sprintf("%-*s", w, s)
}

func colWidth(widths []int, i int) int {
	if i < len(widths) {
		return widths[i]
	}
	return 8
}
