package resilience

import "sync"

// SingleFlight collapses concurrent calls for the same key into one
// execution. The cache store leans on it so a cold key costs a single corpus
// scan no matter how many requests race for it. The zero value is ready to
// use.
type SingleFlight struct {
	mu       sync.Mutex
	inflight map[string]*flightResult
}

type flightResult struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn once per key at a time. Callers that arrive while fn is running
// block until it returns and receive the same value and error; the third
// return reports whether the result was shared from another caller's run.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.inflight == nil {
		g.inflight = make(map[string]*flightResult)
	}
	if res, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		<-res.done
		return res.val, res.err, true
	}

	res := &flightResult{done: make(chan struct{})}
	g.inflight[key] = res
	g.mu.Unlock()

	res.val, res.err = fn()
	close(res.done)

	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()

	return res.val, res.err, false
}
