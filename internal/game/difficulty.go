package game

import (
	"errors"
	"strings"
)

// ErrUnknownDifficulty is returned by ParseDifficulty for unrecognized names.
var ErrUnknownDifficulty = errors.New("game: unknown difficulty")

// Difficulty selects how many candidate swatches a round offers.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every difficulty in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Candidates returns the candidate set size for the difficulty.
func (d Difficulty) Candidates() int {
	switch d {
	case Easy:
		return 3
	case Hard:
		return 9
	default:
		return 6
	}
}

// Next cycles Easy -> Medium -> Hard -> Easy.
func (d Difficulty) Next() Difficulty {
	switch d {
	case Easy:
		return Medium
	case Medium:
		return Hard
	default:
		return Easy
	}
}

// String returns the lowercase name used in flags, config and storage.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Title returns the display name.
func (d Difficulty) Title() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// ParseDifficulty maps "easy", "medium" or "hard" (any case) to a Difficulty.
// "normal" is accepted as an alias for medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "normal":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Medium, ErrUnknownDifficulty
}
