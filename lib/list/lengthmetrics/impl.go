package lengthmetrics

import (
	"fmt"
	"path"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/tricorder/go/tricorder"
	"github.com/Cloud-Foundations/tricorder/go/tricorder/units"
)

func newRecorder(dirname string, logger log.DebugLogger) (*Recorder, error) {
	r := &Recorder{dirname: dirname, logger: logger}
	currentName := path.Join(dirname, "current-length")
	if err := tricorder.RegisterMetric(currentName, r.getCurrent, units.None,
		"current number of entries in list"); err != nil {
		return nil, fmt.Errorf("error registering: %s: %s", currentName, err)
	}
	peakName := path.Join(dirname, "peak-length")
	if err := tricorder.RegisterMetric(peakName, r.getPeak, units.None,
		"maximum number of entries in list"); err != nil {
		tricorder.UnregisterPath(currentName)
		return nil, fmt.Errorf("error registering: %s: %s", peakName, err)
	}
	return r, nil
}

func (r *Recorder) getCurrent() uint {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.current
}

func (r *Recorder) getPeak() uint {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.peak
}

func (r *Recorder) record(length uint) {
	r.mutex.Lock()
	r.current = length
	newPeak := length > r.peak
	if newPeak {
		r.peak = length
	}
	r.mutex.Unlock()
	if newPeak && r.logger != nil {
		r.logger.Debugf(1, "%s: new peak length: %d\n", r.dirname, length)
	}
}
