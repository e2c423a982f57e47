// Package app holds the single application state value: the watchlist with
// its selection, the headline/banner sources, and session labels. The state
// is exclusively owned by the event loop and mutated only between frames.
package app

import (
	"math"
	"math/rand"
	"strings"

	"mkts/internal/feed"
)

// BannerEmpty is returned by BannerText when there are no banner lines.
const BannerEmpty = "NO HEADLINES"

// bannerPad separates banner lines in the concatenated marquee text.
const bannerPad = "   "

// State aggregates everything the render pipeline projects onto the screen.
type State struct {
	Instruments []*feed.Instrument
	Selected    int

	Headlines    []string
	Banner       []string
	BannerOffset uint64

	Explorer         []string
	ExplorerSelected int

	User    string
	APIKey  string
	Session string

	engine *feed.Engine
}

// NewState seeds the watchlist and reference data from cfg. The random source
// drives both the seeded histories and every later simulation tick.
func NewState(cfg Config, rng *rand.Rand) *State {
	engine := feed.NewEngine(cfg.Feed, rng)

	instruments := make([]*feed.Instrument, 0, len(cfg.Watchlist))
	for _, s := range cfg.Watchlist {
		instruments = append(instruments, engine.Seed(s.Symbol, s.Name, s.Price))
	}

	return &State{
		Instruments: instruments,
		Headlines:   cfg.Headlines,
		Banner:      cfg.Banner,
		Explorer:    cfg.Explorer,
		User:        cfg.User,
		APIKey:      cfg.APIKey,
		Session:     cfg.Session,
		engine:      engine,
	}
}

// SelectNext moves the watchlist selection forward, clamped at the last entry.
func (s *State) SelectNext() {
	if s.Selected < len(s.Instruments)-1 {
		s.Selected++
	}
}

// SelectPrev moves the watchlist selection backward, clamped at zero.
func (s *State) SelectPrev() {
	if s.Selected > 0 {
		s.Selected--
	}
}

// ResetSelection moves the watchlist selection back to the first entry.
func (s *State) ResetSelection() {
	s.Selected = 0
}

// Current returns the selected instrument. The watchlist is seeded non-empty
// and never shrinks, so the index is always valid.
func (s *State) Current() *feed.Instrument {
	return s.Instruments[s.Selected]
}

// UpdatePrices advances every instrument by one simulation tick.
func (s *State) UpdatePrices() {
	s.engine.AdvanceAll(s.Instruments)
}

// AdvanceBanner scrolls the marquee one character. The offset saturates
// instead of wrapping and is not advanced when there is nothing to scroll.
func (s *State) AdvanceBanner() {
	if len(s.Banner) > 0 && s.BannerOffset < math.MaxUint64 {
		s.BannerOffset++
	}
}

// BannerText returns the marquee window for the current offset: the banner
// lines joined with fixed padding, rotated character-wise by the offset, plus
// one trailing space. Output length is the same for every offset.
func (s *State) BannerText() string {
	var b strings.Builder
	for _, line := range s.Banner {
		b.WriteString(line)
		b.WriteString(bannerPad)
	}
	joined := []rune(b.String())
	if len(joined) == 0 {
		return BannerEmpty
	}

	offset := int(s.BannerOffset % uint64(len(joined)))
	var out strings.Builder
	out.Grow(len(joined) + 1)
	for i := 0; i < len(joined); i++ {
		out.WriteRune(joined[(offset+i)%len(joined)])
	}
	out.WriteByte(' ')
	return out.String()
}

// MarketStatus returns the static session-hours label for the footer.
func (s *State) MarketStatus() string {
	return "NYSE 09:30-16:00 ET"
}
