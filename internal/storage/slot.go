package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colormatch/internal/slot"
)

// BestScoreSlot returns the best-score slot kept in the kv table under key.
// A nil logger discards messages.
func (s *Store) BestScoreSlot(key string, logger *log.Logger) *slot.Slot {
	return slot.New(s, key, logger)
}

var _ slot.Backend = (*Store)(nil)
