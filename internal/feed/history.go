package feed

// History is a fixed-capacity ring buffer of recent prices. When full, a push
// evicts the oldest sample.
type History struct {
	buf   []float64
	start int
	count int
}

// NewHistory creates a History with the given capacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultConfig().HistoryLen
	}
	return &History{buf: make([]float64, capacity)}
}

// Push appends a sample, evicting the oldest one when the buffer is full.
func (h *History) Push(v float64) {
	if h.count < len(h.buf) {
		h.buf[(h.start+h.count)%len(h.buf)] = v
		h.count++
		return
	}
	// overwrite oldest
	h.buf[h.start] = v
	h.start = (h.start + 1) % len(h.buf)
}

// Values returns the samples in chronological order (oldest first).
// Returns a copy (not internal references).
func (h *History) Values() []float64 {
	out := make([]float64, h.count)
	for i := 0; i < h.count; i++ {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}
	return out
}

// Len returns the number of samples currently held.
func (h *History) Len() int {
	return h.count
}

// Cap returns the buffer capacity.
func (h *History) Cap() int {
	return len(h.buf)
}
