package posenet

import (
	"sync/atomic"
)

// Gate admits at most one decode at a time.  Frames offered while a decode
// is in flight are dropped, never queued.
type Gate struct {
	// slot holds a token while a run is in flight
	slot    chan struct{}
	dropped atomic.Uint64
	ran     atomic.Uint64
}

// NewGate returns an idle Gate
func NewGate() *Gate {
	return &Gate{
		slot: make(chan struct{}, 1),
	}
}

// TryRun runs fn synchronously if no other run is in flight and returns its
// error.  If a run is already in flight the frame is dropped and ran is
// false.  The in flight flag is always released when fn returns, including
// when it fails or panics.
func (g *Gate) TryRun(fn func() error) (ran bool, err error) {

	select {
	case g.slot <- struct{}{}:
	default:
		// busy, drop the frame
		g.dropped.Add(1)
		return false, nil
	}

	defer func() {
		<-g.slot
	}()

	g.ran.Add(1)

	return true, fn()
}

// Busy reports if a run is currently in flight
func (g *Gate) Busy() bool {
	return len(g.slot) > 0
}

// Dropped returns the number of frames dropped because a run was in flight
func (g *Gate) Dropped() uint64 {
	return g.dropped.Load()
}

// Ran returns the number of frames admitted
func (g *Gate) Ran() uint64 {
	return g.ran.Load()
}
