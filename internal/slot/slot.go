// Package slot keeps the best score in one key of a key-value backend.
// Both the SQLite store and the bbolt file provide such a backend.
package slot

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colormatch/internal/game"
)

// BestScoreKey is the key holding the best score.
const BestScoreKey = "bestScore"

// Backend stores string values by key.
type Backend interface {
	GetValue(key string) (string, bool, error)
	SetValue(key, value string) error
	DeleteValue(key string) error
}

// Slot adapts one backend key to game.BestScoreStore.
// Read and write failures are logged and otherwise swallowed: the game keeps
// running with whatever it has in memory.
type Slot struct {
	backend Backend
	key     string
	logger  *log.Logger
}

// New returns the slot for key. A nil logger discards messages.
func New(b Backend, key string, logger *log.Logger) *Slot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Slot{backend: b, key: key, logger: logger}
}

// Get returns the stored best score, or 0 when missing or unparsable.
func (s *Slot) Get() int {
	raw, ok, err := s.backend.GetValue(s.key)
	if err != nil {
		s.logger.Warn("could not read best score", "key", s.key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	return game.ParseBestScore(raw)
}

// Set stores score.
func (s *Slot) Set(score int) {
	if err := s.backend.SetValue(s.key, game.FormatBestScore(score)); err != nil {
		s.logger.Warn("could not save best score", "key", s.key, "score", score, "error", err)
	}
}

// Reset removes the stored best score.
func (s *Slot) Reset() error {
	return s.backend.DeleteValue(s.key)
}

var _ game.BestScoreStore = (*Slot)(nil)
