package game

import "time"

// TransitionKind names the work a deferred transition performs.
type TransitionKind int

const (
	// TransitionNextRound deals a fresh round after a correct guess.
	TransitionNextRound TransitionKind = iota + 1
	// TransitionResetSession zeroes the score and deals a fresh round after game over.
	TransitionResetSession
)

// String returns a human-readable name for the kind.
func (k TransitionKind) String() string {
	switch k {
	case TransitionNextRound:
		return "NextRound"
	case TransitionResetSession:
		return "ResetSession"
	default:
		return "None"
	}
}

// Deferred is a transition the engine wants run after Delay.
// The host schedules it however it likes and hands Token back to
// Engine.Resolve. A token that no longer matches the pending transition
// (because the session was reset or a new round was dealt in between)
// resolves to nothing.
type Deferred struct {
	Token uint64
	Kind  TransitionKind
	Delay time.Duration
}
