package tui

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"mkts/internal/app"
	"mkts/internal/layout"
	"mkts/internal/render"
)

func newTestState() *app.State {
	return app.NewState(app.DefaultConfig(), rand.New(rand.NewSource(1)))
}

func TestDrawMatchesViewportGeometry(t *testing.T) {
	st := newTestState()

	for _, size := range []struct{ w, h int }{
		{120, 40},
		{100, 30},
		{80, 24},
	} {
		viewport := layout.Rect{W: size.w, H: size.h}
		frame := Draw(render.Compose(st, viewport))

		if got := lipgloss.Height(frame); got != size.h {
			t.Errorf("%dx%d: frame height %d", size.w, size.h, got)
		}
		if got := lipgloss.Width(frame); got != size.w {
			t.Errorf("%dx%d: frame width %d", size.w, size.h, got)
		}
	}
}

func TestDrawContainsPanelTitles(t *testing.T) {
	st := newTestState()
	frame := Draw(render.Compose(st, layout.Rect{W: 120, H: 40}))

	for _, title := range []string{"WATCHLIST", "QUOTE", "DAY RANGE", "INTRADAY", "TOP HEADLINES", "EXPLORER", "NEWS TICKER", "SETTINGS"} {
		if !strings.Contains(frame, title) {
			t.Errorf("frame missing panel title %q", title)
		}
	}
	if !strings.Contains(frame, render.AppTitle) {
		t.Error("frame missing header brand")
	}
}

func TestDrawGaugeBarWidth(t *testing.T) {
	lines := drawGauge(render.Gauge{Ratio: 0.5, Label: "x"}, 10)
	if len(lines) != 2 {
		t.Fatalf("expected label and bar, got %d lines", len(lines))
	}
	bar := lines[1]
	if got := lipgloss.Width(bar); got != 10 {
		t.Errorf("bar width %d, want 10", got)
	}
	if !strings.Contains(bar, strings.Repeat("█", 5)) {
		t.Errorf("expected 5 filled cells at ratio 0.5: %q", bar)
	}
}

func TestDrawGaugeEmptyAndFull(t *testing.T) {
	empty := drawGauge(render.Gauge{Ratio: 0}, 8)[1]
	if strings.Contains(empty, "█") {
		t.Error("zero ratio should render no fill")
	}
	full := drawGauge(render.Gauge{Ratio: 1}, 8)[1]
	if strings.Contains(full, "░") {
		t.Error("full ratio should leave no empty cells")
	}
}

func TestDrawSparklineWindowsToWidth(t *testing.T) {
	samples := make([]uint64, 200)
	for i := range samples {
		samples[i] = uint64(i%100) + 1
	}
	lines := drawSparkline(render.Sparkline{Samples: samples}, 30, 5)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	spark := lines[len(lines)-1]
	if got := lipgloss.Width(spark); got != 30 {
		t.Errorf("sparkline width %d, want 30 (most recent samples only)", got)
	}
}

func TestDrawSparklineFlatSeries(t *testing.T) {
	lines := drawSparkline(render.Sparkline{Samples: []uint64{1, 1, 1, 1}}, 10, 3)
	spark := lines[len(lines)-1]
	// A flat series renders one glyph repeated, never panics.
	trimmed := strings.TrimSpace(stripANSI(spark))
	first, _ := utf8.DecodeRuneInString(trimmed)
	for _, r := range trimmed {
		if r != first && r != ' ' {
			t.Errorf("flat series rendered uneven glyphs: %q", trimmed)
		}
		break
	}
}

func TestDrawTableTruncatesToHeight(t *testing.T) {
	table := render.Table{
		Header: []string{"A"},
		Widths: []int{4},
	}
	for i := 0; i < 20; i++ {
		table.Rows = append(table.Rows, render.TableRow{Cells: []render.Span{{Text: "row"}}})
	}
	lines := drawTable(table, 5)
	if len(lines) > 5 {
		t.Errorf("table rendered %d lines for height 5", len(lines))
	}
}

func TestDrawZeroSizePanel(t *testing.T) {
	p := &render.Panel{Name: "x", Rect: layout.Rect{W: 0, H: 0}, Content: render.Paragraph{}}
	if got := drawPanel(p); got != "" {
		t.Errorf("zero-size panel drew %q", got)
	}
}

// stripANSI removes escape sequences so glyph checks see plain runes.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
