package feed

// Config holds tuning parameters for the simulation engine.
type Config struct {
	// HistoryLen is the capacity of each instrument's price history.
	HistoryLen int
	// DeltaMin and DeltaMax bound the uniform per-tick price delta.
	// The range is asymmetric to express a slight upward drift.
	DeltaMin float64
	DeltaMax float64
	// PriceFloor is the lowest price an instrument can reach.
	PriceFloor float64
	// VolumeMin and VolumeMax bound the uniform per-tick volume increment.
	VolumeMin float64
	VolumeMax float64
	// SeedNoise is the magnitude of the centered multiplicative noise used
	// when generating an instrument's synthetic starting history.
	SeedNoise float64
	// SeedVolume is the cumulative volume an instrument starts the session with.
	SeedVolume float64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		HistoryLen: 64,
		DeltaMin:   -0.8,
		DeltaMax:   0.9,
		PriceFloor: 1.0,
		VolumeMin:  20_000,
		VolumeMax:  180_000,
		SeedNoise:  0.003,
		SeedVolume: 2_500_000,
	}
}
