package player

import (
	"runtime"
	"sync"
	"weak"

	"github.com/osse101/SpinVault_Go/internal/ledger"
)

// liveLedgers tracks every ledger instance that is still referenced, cached
// or not. A ledger evicted from the LRU while a request holds it is handed
// out again instead of being reloaded, so one process never runs two
// instances for the same player.
type liveLedgers struct {
	mu      sync.Mutex
	entries map[string]weak.Pointer[ledger.Ledger]
}

func newLiveLedgers() *liveLedgers {
	return &liveLedgers{entries: make(map[string]weak.Pointer[ledger.Ledger])}
}

// Get returns the instance for id if anything still references it.
func (s *liveLedgers) Get(id string) (*ledger.Ledger, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wp, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	l := wp.Value()
	if l == nil {
		delete(s.entries, id)
		return nil, false
	}
	return l, true
}

// Track records l as the instance for id. The entry is dropped once l has
// been collected.
func (s *liveLedgers) Track(id string, l *ledger.Ledger) {
	wp := weak.Make(l)
	s.mu.Lock()
	s.entries[id] = wp
	s.mu.Unlock()
	runtime.AddCleanup(l, s.release, id)
}

func (s *liveLedgers) release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if wp, ok := s.entries[id]; ok && wp.Value() == nil {
		delete(s.entries, id)
	}
}

func (s *liveLedgers) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
