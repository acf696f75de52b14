package game

import (
	"strconv"
	"strings"
	"sync"
)

// BestScoreStore is the single persisted best-score slot.
// Get is read once when an engine is built; Set is called on every new best
// and must not fail loudly: implementations report their own errors.
type BestScoreStore interface {
	Get() int
	Set(score int)
}

// ParseBestScore decodes a stored best score.
// Missing, non-numeric or negative values decode to 0.
func ParseBestScore(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FormatBestScore encodes a best score for storage.
func FormatBestScore(score int) string {
	return strconv.Itoa(score)
}

// MemoryStore keeps the best score in memory.
// Used when no database is available and in tests.
type MemoryStore struct {
	mu     sync.Mutex
	best   int
	writes int
}

// NewMemoryStore returns a store seeded with best.
func NewMemoryStore(best int) *MemoryStore {
	return &MemoryStore{best: best}
}

// Get returns the stored best score.
func (m *MemoryStore) Get() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best
}

// Set stores score.
func (m *MemoryStore) Set(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = score
	m.writes++
}

// Writes returns how many times Set was called.
func (m *MemoryStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

var _ BestScoreStore = (*MemoryStore)(nil)

// Shared wraps a store used by several engines at once, such as one per SSH
// session. Set only writes when score beats what is already stored, so a
// session that started from a stale best cannot lower it.
type Shared struct {
	mu    sync.Mutex
	inner BestScoreStore
}

// NewShared wraps inner.
func NewShared(inner BestScoreStore) *Shared {
	return &Shared{inner: inner}
}

// Get returns the stored best score.
func (s *Shared) Get() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get()
}

// Set stores score if it is higher than the stored value.
func (s *Shared) Set(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score > s.inner.Get() {
		s.inner.Set(score)
	}
}

var _ BestScoreStore = (*Shared)(nil)
