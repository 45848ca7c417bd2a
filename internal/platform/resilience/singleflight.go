package resilience

import "sync"

// SingleFlight collapses concurrent calls for the same key into one
// execution; waiters receive the leader's result.
type SingleFlight struct {
	mu       sync.Mutex
	inflight map[string]*flightResult
}

type flightResult struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn unless a call for key is already in flight, in which case
// it blocks until that call finishes and returns its result. The third
// return reports whether the result was shared.
func (f *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	f.mu.Lock()
	if f.inflight == nil {
		f.inflight = make(map[string]*flightResult)
	}
	if existing, ok := f.inflight[key]; ok {
		f.mu.Unlock()
		<-existing.done
		return existing.val, existing.err, true
	}

	result := &flightResult{done: make(chan struct{})}
	f.inflight[key] = result
	f.mu.Unlock()

	result.val, result.err = fn()
	close(result.done)

	f.mu.Lock()
	delete(f.inflight, key)
	f.mu.Unlock()

	return result.val, result.err, false
}
