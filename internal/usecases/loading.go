package usecases

import "sync/atomic"

// loadingFlag is true while at least one run of a workflow is in progress.
type loadingFlag struct {
	active atomic.Int32
}

// start marks a run as started and returns the func that ends it.
func (f *loadingFlag) start() func() {
	f.active.Add(1)
	return func() { f.active.Add(-1) }
}

func (f *loadingFlag) on() bool {
	return f.active.Load() > 0
}
