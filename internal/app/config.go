package app

import (
	"time"

	"mkts/internal/feed"
)

// InstrumentSeed describes one watchlist entry to create at startup.
type InstrumentSeed struct {
	Symbol string
	Name   string
	Price  float64
}

// Config holds configuration for the application state and its timers.
type Config struct {
	// Watchlist is the fixed set of instruments to simulate, in display order.
	Watchlist []InstrumentSeed
	// Headlines feed the news panel.
	Headlines []string
	// Banner feeds the scrolling marquee.
	Banner []string
	// Explorer feeds the sidebar.
	Explorer []string
	// User and Session are the static session labels.
	User    string
	Session string
	// APIKey is an optional credential; it is never rendered in clear.
	APIKey string
	// PriceUpdateRate is the simulation tick interval.
	PriceUpdateRate time.Duration
	// BannerTickRate is the marquee scroll interval.
	BannerTickRate time.Duration
	// Feed is the configuration for the simulation engine.
	Feed feed.Config
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Watchlist: []InstrumentSeed{
			{Symbol: "AAPL", Name: "Apple Inc.", Price: 182.42},
			{Symbol: "MSFT", Name: "Microsoft", Price: 413.18},
			{Symbol: "NVDA", Name: "NVIDIA", Price: 738.44},
			{Symbol: "TSLA", Name: "Tesla", Price: 196.08},
			{Symbol: "AMZN", Name: "Amazon", Price: 171.52},
			{Symbol: "META", Name: "Meta Platforms", Price: 485.36},
			{Symbol: "JPM", Name: "JPMorgan", Price: 178.22},
			{Symbol: "XOM", Name: "Exxon Mobil", Price: 104.26},
		},
		Headlines: []string{
			"RATES: CPI cools, traders price first cut in Q3",
			"EARNINGS: Cloud spend accelerates across mega-cap",
			"ENERGY: OPEC+ signals steady supply through summer",
			"FX: USD softer as risk appetite improves",
		},
		Banner: []string{
			"MARKET: Futures edge higher ahead of Fed minutes",
			"TECH: Semis lead gains as AI capex expands",
			"MACRO: Treasury yields slip, curve steepens",
		},
		Explorer: []string{"Stocks", "Bonds", "Crypto", "Commodities", "FX", "News"},
		User:     "guest",
		Session:  "OPEN",

		PriceUpdateRate: 900 * time.Millisecond,
		BannerTickRate:  120 * time.Millisecond,

		Feed: feed.DefaultConfig(),
	}
}
