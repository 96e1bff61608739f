package gesture

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// frameLine is one JSON line from an external classifier. Either a full
// prediction list or a single label with its confidence is accepted.
type frameLine struct {
	Predictions []Prediction `json:"predictions"`
	Label       string       `json:"label"`
	Confidence  *float64     `json:"confidence"`
}

// ParseLine decodes one line of classifier output. Plain text lines are a
// label with full confidence. Blank lines and malformed JSON yield nothing.
func ParseLine(line string) ([]Prediction, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false
	}
	if !strings.HasPrefix(line, "{") {
		return []Prediction{{Class: line, Probability: 1}}, true
	}

	var f frameLine
	if err := json.Unmarshal([]byte(line), &f); err != nil {
		return nil, false
	}
	if len(f.Predictions) > 0 {
		return f.Predictions, true
	}
	if f.Label == "" {
		return nil, false
	}
	conf := 1.0
	if f.Confidence != nil {
		conf = *f.Confidence
	}
	return []Prediction{{Class: f.Label, Probability: conf}}, true
}

// Stream reads classifier frames from r in a goroutine and sends every
// stabilized label on the returned channel. The channel is closed when r is
// exhausted, a read fails, or ctx is cancelled. Read errors are logged to
// logger; a nil logger discards them.
func Stream(ctx context.Context, r io.Reader, stab *Stabilizer, logger *log.Logger) <-chan string {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out := make(chan string, 16)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			preds, ok := ParseLine(scanner.Text())
			if !ok {
				continue
			}
			label, ok := stab.Stabilize(preds)
			if !ok {
				continue
			}
			select {
			case out <- label:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Warn("gesture feed stopped", "err", err)
		}
	}()
	return out
}

// Collect reads every classifier frame from r and returns one entry per frame:
// the stable label after that frame, or "" while no label is stable.
func Collect(r io.Reader, stab *Stabilizer) ([]string, error) {
	var labels []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		preds, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		label, ok := stab.Stabilize(preds)
		if !ok {
			label = ""
		}
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return labels, fmt.Errorf("gesture: read frames: %w", err)
	}
	return labels, nil
}
