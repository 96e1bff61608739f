package gesture

// Prediction is one class score from the classifier.
type Prediction struct {
	Class       string  `json:"className"`
	Probability float64 `json:"probability"`
}

// Stabilizer debounces per-frame classifier output. A label is reported only
// once it was the confident top class in a majority of the recent frames.
type Stabilizer struct {
	threshold float64
	window    []string
	next      int
	filled    int
}

// Default stabilizer parameters.
const (
	DefaultThreshold = 0.85
	DefaultWindow    = 5
)

// NewStabilizer creates a stabilizer. Non-positive arguments use the defaults.
func NewStabilizer(threshold float64, frames int) *Stabilizer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if frames <= 0 {
		frames = DefaultWindow
	}
	return &Stabilizer{threshold: threshold, window: make([]string, frames)}
}

// Stabilize records one frame of predictions and returns the stable label, if any.
func (s *Stabilizer) Stabilize(preds []Prediction) (string, bool) {
	top := ""
	best := -1.0
	for _, p := range preds {
		if p.Probability > best {
			best = p.Probability
			top = p.Class
		}
	}
	if best < s.threshold {
		top = ""
	}
	return s.push(top)
}

// Observe records a single label with its confidence.
func (s *Stabilizer) Observe(label string, confidence float64) (string, bool) {
	return s.Stabilize([]Prediction{{Class: label, Probability: confidence}})
}

func (s *Stabilizer) push(label string) (string, bool) {
	s.window[s.next] = label
	s.next = (s.next + 1) % len(s.window)
	if s.filled < len(s.window) {
		s.filled++
	}

	counts := make(map[string]int, s.filled)
	for i := 0; i < s.filled; i++ {
		if l := s.window[i]; l != "" {
			counts[l]++
		}
	}
	need := len(s.window)/2 + 1
	for l, n := range counts {
		if n >= need {
			return l, true
		}
	}
	return "", false
}

// Reset forgets all recorded frames.
func (s *Stabilizer) Reset() {
	for i := range s.window {
		s.window[i] = ""
	}
	s.next = 0
	s.filled = 0
}
