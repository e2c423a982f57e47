// Package feed models the simulated market-data feed: instrument quote
// records and the stochastic engine that advances them tick by tick.
package feed

// Instrument holds one tradable instrument's live quote state plus a bounded
// buffer of recent prices.
type Instrument struct {
	Symbol string
	Name   string

	Price     float64
	PrevClose float64
	Change    float64
	ChangePct float64
	Volume    float64
	VWAP      float64
	Open      float64
	DayLow    float64
	DayHigh   float64

	History *History
}
