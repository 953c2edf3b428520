package model

// defaultHistorySize keeps enough states to spot period 1 to 3 cycles
const defaultHistorySize = 5

// History remembers fingerprints of recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history holding up to size fingerprints
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds the current state of w and drops the oldest entry once full
func (h *History) Record(w *World) {
	h.hashes = append(h.hashes, w.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether w matches one of the last three recorded
// states, i.e. it is static or cycling with a period of at most 3
func (h *History) IsStagnant(w *World) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := w.Hash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}
