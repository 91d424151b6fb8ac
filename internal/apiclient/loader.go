package apiclient

import "sync/atomic"

// Loader counts calls in flight. Loading reports true while at least one call is running.
type Loader struct {
	inFlight atomic.Int64
}

func (l *Loader) start() {
	l.inFlight.Add(1)
}

func (l *Loader) done() {
	l.inFlight.Add(-1)
}

// InFlight returns the number of calls currently running.
func (l *Loader) InFlight() int64 {
	return l.inFlight.Load()
}

// Loading reports whether any call is running.
func (l *Loader) Loading() bool {
	return l.InFlight() > 0
}
