package lengthmetrics

import (
	"sync"

	"github.com/Cloud-Foundations/Dominator/lib/log"
)

// Recorder tracks the current and peak length of a list and exports them as
// tricorder metrics.
type Recorder struct {
	dirname string
	logger  log.DebugLogger
	mutex   sync.Mutex // Protect everything below.
	current uint
	peak    uint
}

// New creates a Recorder and registers the current-length and peak-length
// metrics under the tricorder directory dirname. New peak lengths are logged
// to logger at debug level 1.
// An error is returned if the metrics could not be registered, which happens
// if dirname was already used.
func New(dirname string, logger log.DebugLogger) (*Recorder, error) {
	return newRecorder(dirname, logger)
}

// Current returns the most recently recorded length.
func (r *Recorder) Current() uint {
	return r.getCurrent()
}

// Peak returns the largest recorded length.
func (r *Recorder) Peak() uint {
	return r.getPeak()
}

// Record records a new length. It may be passed to list.NewWithLengthRecorder.
func (r *Recorder) Record(length uint) {
	r.record(length)
}
