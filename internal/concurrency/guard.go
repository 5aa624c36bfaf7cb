package concurrency

import "sync"

// Guard admits at most one holder per key. A second caller is turned away
// instead of queued, so a player cannot start a spin while one is still
// revealing.
type Guard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewGuard creates an empty Guard.
func NewGuard() *Guard {
	return &Guard{active: make(map[string]struct{})}
}

// TryAcquire claims key. It returns a release func and true on success, or
// nil and false when key is already held. Release is idempotent.
func (g *Guard) TryAcquire(key string) (func(), bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return nil, false
	}
	g.active[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, key)
			g.mu.Unlock()
		})
	}, true
}

// Busy reports whether key is currently held.
func (g *Guard) Busy(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.active[key]
	return busy
}
