package cart

import "sync"

// lineSequencer hands out a monotonically increasing sequence per cart line
// and remembers the newest one issued. Mutations stamp their line with the
// sequence they were issued under; a persistence result arriving after a
// newer mutation was issued is recognized as stale and discarded, so a slow
// store call can never clobber a later edit. This implements "last write wins
// by issuance order".
type lineSequencer struct {
	mu     sync.Mutex
	latest map[string]int64
}

func newLineSequencer() *lineSequencer {
	return &lineSequencer{latest: make(map[string]int64)}
}

// next issues the sequence number for a new mutation of the line.
func (s *lineSequencer) next(lineID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[lineID]++
	return s.latest[lineID]
}

// isCurrent reports whether the given sequence is still the newest issued for
// the line.
func (s *lineSequencer) isCurrent(lineID string, seq int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[lineID] == seq
}

// forget drops tracking for a removed line.
func (s *lineSequencer) forget(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.latest, lineID)
}
