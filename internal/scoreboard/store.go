package scoreboard

import "sync"

// entry owns one stored match. Its lock guards the score so both sides are
// always read and written together.
type entry struct {
	mu    sync.RWMutex
	match Match
	seq   uint64
}

func (e *entry) setScore(home, away int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.match.Score = Score{Home: home, Away: away, Valid: true}
}

func (e *entry) snapshot() Match {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.match
}

// matchStore maps match ids to entries. The map lock is held only for
// membership changes, so score updates on different ids never wait on each
// other.
type matchStore struct {
	mu   sync.RWMutex
	m    map[string]*entry
	next uint64
}

func newMatchStore() *matchStore {
	return &matchStore{
		m: make(map[string]*entry),
	}
}

// Create stores m under matchID and reports false if the id is taken.
func (s *matchStore) Create(matchID string, m Match) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[matchID]; ok {
		return false
	}
	s.next++
	s.m[matchID] = &entry{match: m, seq: s.next}
	return true
}

func (s *matchStore) Get(matchID string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.m[matchID]
	return e, ok
}

func (s *matchStore) Delete(matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, matchID)
}

// All returns the current entries in no particular order.
func (s *matchStore) All() []*entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entry, 0, len(s.m))
	for _, e := range s.m {
		out = append(out, e)
	}
	return out
}

func (s *matchStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
