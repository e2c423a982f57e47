package render

import (
	"fmt"

	"mkts/internal/app"
	"mkts/internal/feed"
	"mkts/internal/layout"
)

// AppTitle is the brand block shown in the header.
const AppTitle = "MKTS // MINI BLOOMBERG"

// maxHeadlines caps the news panel regardless of source length.
const maxHeadlines = 3

// Compose maps the full application state onto a viewport: a deterministic
// recursive partition of the rectangle with one formatter per leaf panel.
// It never mutates state.
func Compose(st *app.State, viewport layout.Rect) *Node {
	rows := layout.Split(layout.Vertical, viewport,
		layout.Length(3), // header
		layout.Length(2), // banner
		layout.Min(10),   // body
		layout.Length(1), // footer
	)

	return split(layout.Vertical, viewport,
		composeHeader(st, rows[0]),
		composeBanner(st, rows[1]),
		composeBody(st, rows[2]),
		composeFooter(st, rows[3]),
	)
}

func composeHeader(st *app.State, area layout.Rect) *Node {
	line := Line{
		{Text: AppTitle, Style: StyleBrand},
		{Text: "  "},
		{Text: fmt.Sprintf("SESSION %s  |  SYMBOLS %d", st.Session, len(st.Instruments)), Style: StyleAccent},
	}
	return framed("header", "", area, Paragraph{Lines: []Line{line}})
}

func composeBanner(st *app.State, area layout.Rect) *Node {
	line := Line{{Text: " " + st.BannerText() + " ", Style: StyleWarn}}
	// Two rows only: a frame would swallow the marquee entirely.
	return titled("banner", "NEWS TICKER", area, Paragraph{Lines: []Line{line}})
}

func composeBody(st *app.State, area layout.Rect) *Node {
	cols := layout.Split(layout.Horizontal, area,
		layout.Percentage(70), // main
		layout.Percentage(30), // sidebar
	)
	return split(layout.Horizontal, area,
		composeMain(st, cols[0]),
		composeSidebar(st, cols[1]),
	)
}

func composeMain(st *app.State, area layout.Rect) *Node {
	rows := layout.Split(layout.Vertical, area,
		layout.Length(5), // settings
		layout.Min(10),   // lower
	)
	lower := layout.Split(layout.Horizontal, rows[1],
		layout.Percentage(45), // watchlist
		layout.Percentage(55), // details
	)
	return split(layout.Vertical, area,
		composeSettings(st, rows[0]),
		split(layout.Horizontal, rows[1],
			composeWatchlist(st, lower[0]),
			composeDetails(st, lower[1]),
		),
	)
}

func composeSettings(st *app.State, area layout.Rect) *Node {
	apiDisplay := "<not set>"
	if st.APIKey != "" {
		apiDisplay = "********"
	}
	lines := []Line{
		{
			{Text: "USER", Style: StyleBold},
			{Text: "  "},
			{Text: st.User, Style: StyleValue},
		},
		{
			{Text: "API KEY "},
			{Text: apiDisplay, Style: StyleWarn},
			{Text: "  "},
			{Text: "read-only in simulated session", Style: StyleMuted},
		},
	}
	return framed("settings", "SETTINGS", area, Paragraph{Lines: lines})
}

func composeWatchlist(st *app.State, area layout.Rect) *Node {
	table := Table{
		Header: []string{"SYMBOL", "LAST", "CHG", "CHG%"},
		Widths: []int{8, 10, 8, 8},
		Rows:   make([]TableRow, 0, len(st.Instruments)),
	}
	for i, inst := range st.Instruments {
		table.Rows = append(table.Rows, TableRow{
			Cells: []Span{
				{Text: inst.Symbol},
				{Text: fmt.Sprintf("%.2f", inst.Price)},
				{Text: fmt.Sprintf("%+.2f", inst.Change), Style: changeStyle(inst.Change)},
				{Text: fmt.Sprintf("%+.2f%%", inst.ChangePct), Style: changeStyle(inst.Change)},
			},
			Selected: i == st.Selected,
		})
	}
	return framed("watchlist", "WATCHLIST", area, table)
}

func composeDetails(st *app.State, area layout.Rect) *Node {
	rows := layout.Split(layout.Vertical, area,
		layout.Length(7), // quote + gauge
		layout.Min(10),   // chart
		layout.Length(5), // news
	)
	quote := layout.Split(layout.Horizontal, rows[0],
		layout.Percentage(70),
		layout.Percentage(30),
	)
	inst := st.Current()
	return split(layout.Vertical, area,
		split(layout.Horizontal, rows[0],
			composeQuote(inst, quote[0]),
			composeGauge(inst, quote[1]),
		),
		composeChart(inst, rows[1]),
		composeNews(st, rows[2]),
	)
}

func composeQuote(inst *feed.Instrument, area layout.Rect) *Node {
	chg := changeStyle(inst.Change)
	lines := []Line{
		{
			{Text: inst.Symbol, Style: StyleBold},
			{Text: "  "},
			{Text: inst.Name, Style: StyleMuted},
		},
		{
			{Text: "LAST "},
			{Text: fmt.Sprintf("%.2f", inst.Price), Style: StyleValue},
			{Text: "  CHG "},
			{Text: fmt.Sprintf("%+.2f", inst.Change), Style: chg},
			{Text: "  CHG% "},
			{Text: fmt.Sprintf("%+.2f%%", inst.ChangePct), Style: chg},
		},
		{
			{Text: "VOL "},
			{Text: fmt.Sprintf("%.2fM", inst.Volume/1_000_000), Style: StyleWarn},
			{Text: "  VWAP "},
			{Text: fmt.Sprintf("%.2f", inst.VWAP), Style: StyleValue},
			{Text: "  OPEN "},
			{Text: fmt.Sprintf("%.2f", inst.Open), Style: StyleValue},
		},
	}
	return framed("quote", "QUOTE", area, Paragraph{Lines: lines})
}

func composeGauge(inst *feed.Instrument, area layout.Rect) *Node {
	g := Gauge{
		Ratio: GaugeRatio(inst.Price, inst.DayLow, inst.DayHigh),
		Label: fmt.Sprintf("%.2f  |  %.2f - %.2f", inst.Price, inst.DayLow, inst.DayHigh),
	}
	return framed("gauge", "DAY RANGE", area, g)
}

func composeChart(inst *feed.Instrument, area layout.Rect) *Node {
	s := Sparkline{Samples: NormalizeHistory(inst.History.Values())}
	return framed("chart", "INTRADAY", area, s)
}

func composeNews(st *app.State, area layout.Rect) *Node {
	n := len(st.Headlines)
	if n > maxHeadlines {
		n = maxHeadlines
	}
	items := make([]Span, 0, n)
	for _, h := range st.Headlines[:n] {
		items = append(items, Span{Text: h, Style: StyleMuted})
	}
	return framed("news", "TOP HEADLINES", area, List{Items: items, Selected: -1})
}

func composeSidebar(st *app.State, area layout.Rect) *Node {
	items := make([]Span, 0, len(st.Explorer))
	for _, it := range st.Explorer {
		items = append(items, Span{Text: it, Style: StyleMuted})
	}
	return framed("sidebar", "EXPLORER", area, List{Items: items, Selected: st.ExplorerSelected})
}

func composeFooter(st *app.State, area layout.Rect) *Node {
	line := Line{{
		Text:  fmt.Sprintf("VIM KEYS: q quit  j/k move  r reset  |  %s", st.MarketStatus()),
		Style: StyleMuted,
	}}
	return leaf("footer", area, Paragraph{Lines: []Line{line}})
}

// changeStyle colors a change value: non-negative (including exactly zero)
// counts as a gain.
func changeStyle(change float64) Style {
	if change >= 0 {
		return StyleGain
	}
	return StyleLoss
}

// GaugeRatio positions price within [low, high], clamped to [0, 1].
// A degenerate range yields 0 rather than NaN.
func GaugeRatio(price, low, high float64) float64 {
	span := high - low
	if span <= 0 {
		return 0
	}
	ratio := (price - low) / span
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// NormalizeHistory min-max scales a price series to integer samples in
// [1, 101] for the sparkline. An empty series yields a single zero sample; a
// near-zero span is widened to 1 so a flat series normalizes without dividing
// by zero.
func NormalizeHistory(history []float64) []uint64 {
	if len(history) == 0 {
		return []uint64{0}
	}
	minVal, maxVal := history[0], history[0]
	for _, v := range history[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	span := maxVal - minVal
	if span <= 0.0001 {
		span = 1.0
	}
	out := make([]uint64, len(history))
	for i, v := range history {
		out[i] = uint64((v-minVal)/span*100) + 1
	}
	return out
}
