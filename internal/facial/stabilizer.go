package facial

import "sort"

// DefaultHistorySize is the rolling window used to stabilize the noisy
// per-frame emotion label stream.
const DefaultHistorySize = 5

// Stabilizer smooths frame-to-frame emotion jitter with a majority vote
// over the most recent labels. It is a plain in-memory buffer; callers
// provide their own locking if needed.
type Stabilizer struct {
	labels []string
	size   int
}

func NewStabilizer(size int) *Stabilizer {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &Stabilizer{size: size}
}

// Push appends a raw label, evicting the oldest entry once the window
// is full.
func (s *Stabilizer) Push(label string) {
	s.labels = append(s.labels, label)
	if len(s.labels) > s.size {
		s.labels = s.labels[1:]
	}
}

// MostCommon returns the label with the highest occurrence count in the
// window. Ties break to the lexicographically smallest label so the
// result is deterministic. ok is false when the window is empty.
func (s *Stabilizer) MostCommon() (label string, ok bool) {
	if len(s.labels) == 0 {
		return "", false
	}
	counts := map[string]int{}
	for _, l := range s.labels {
		counts[l]++
	}
	unique := make([]string, 0, len(counts))
	for l := range counts {
		unique = append(unique, l)
	}
	sort.Strings(unique)
	best := unique[0]
	for _, l := range unique[1:] {
		if counts[l] > counts[best] {
			best = l
		}
	}
	return best, true
}

// Len reports how many labels are currently buffered.
func (s *Stabilizer) Len() int { return len(s.labels) }

// Reset clears the window.
func (s *Stabilizer) Reset() { s.labels = s.labels[:0] }
