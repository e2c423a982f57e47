package feed

import "math/rand"

// Engine advances instruments via a bounded random walk. The random source is
// injected so tests can run deterministically.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// NewEngine creates an Engine with the given config and random source.
// Zero or inverted config fields fall back to defaults.
func NewEngine(cfg Config, rng *rand.Rand) *Engine {
	def := DefaultConfig()
	if cfg.HistoryLen <= 0 {
		cfg.HistoryLen = def.HistoryLen
	}
	if cfg.DeltaMax <= cfg.DeltaMin {
		cfg.DeltaMin, cfg.DeltaMax = def.DeltaMin, def.DeltaMax
	}
	if cfg.PriceFloor <= 0 {
		cfg.PriceFloor = def.PriceFloor
	}
	if cfg.VolumeMax <= cfg.VolumeMin {
		cfg.VolumeMin, cfg.VolumeMax = def.VolumeMin, def.VolumeMax
	}
	if cfg.SeedNoise <= 0 {
		cfg.SeedNoise = def.SeedNoise
	}
	if cfg.SeedVolume <= 0 {
		cfg.SeedVolume = def.SeedVolume
	}
	return &Engine{cfg: cfg, rng: rng}
}

// Seed creates an Instrument at the given price with a synthetic starting
// history: a short multiplicative walk around the seed price. Previous close,
// open and the day range are fixed fractions of the seed price, so all derived
// fields are consistent from the first frame.
func (e *Engine) Seed(symbol, name string, price float64) *Instrument {
	hist := NewHistory(e.cfg.HistoryLen)
	val := price
	for i := 0; i < e.cfg.HistoryLen; i++ {
		val *= 1.0 + (e.rng.Float64()-0.5)*e.cfg.SeedNoise
		hist.Push(val)
	}

	prevClose := price * 0.995
	open := price * 0.99
	change := price - prevClose

	return &Instrument{
		Symbol:    symbol,
		Name:      name,
		Price:     price,
		PrevClose: prevClose,
		Change:    change,
		ChangePct: change / prevClose * 100,
		Volume:    e.cfg.SeedVolume,
		VWAP:      (price + open) / 2,
		Open:      open,
		DayLow:    price * 0.98,
		DayHigh:   price * 1.02,
		History:   hist,
	}
}

// Advance mutates one instrument by a single simulation tick: bounded random
// walk on the price, history push, derived-field recompute, volume increment,
// vwap blend and day-range update.
//
// The vwap update (vwap+price)/2 is a recency-weighted blend, not a true
// volume-weighted average; no per-trade volume is modeled.
func (e *Engine) Advance(inst *Instrument) {
	delta := e.cfg.DeltaMin + e.rng.Float64()*(e.cfg.DeltaMax-e.cfg.DeltaMin)
	inst.Price += delta
	if inst.Price < e.cfg.PriceFloor {
		inst.Price = e.cfg.PriceFloor
	}

	inst.History.Push(inst.Price)

	// PrevClose is seeded > 0 and never mutated, so the division is safe.
	inst.Change = inst.Price - inst.PrevClose
	inst.ChangePct = inst.Change / inst.PrevClose * 100

	inst.Volume += e.cfg.VolumeMin + e.rng.Float64()*(e.cfg.VolumeMax-e.cfg.VolumeMin)
	inst.VWAP = (inst.VWAP + inst.Price) / 2

	if inst.Price < inst.DayLow {
		inst.DayLow = inst.Price
	}
	if inst.Price > inst.DayHigh {
		inst.DayHigh = inst.Price
	}
}

// AdvanceAll applies Advance to every instrument. Instruments do not interact.
func (e *Engine) AdvanceAll(instruments []*Instrument) {
	for _, inst := range instruments {
		e.Advance(inst)
	}
}
