// Package game implements the color-matching rules: dealing rounds of
// candidate swatches, judging guesses, keeping score and the best score.
//
// The engine is pure. Randomness, best-score persistence and the timers behind
// deferred transitions are all supplied by the caller, so the rules can be
// driven step by step from tests or from any presentation layer.
package game

import (
	"sync/atomic"
	"time"
)

// MaxAttempts is the number of wrong guesses that ends a session.
const MaxAttempts = 2

// Default pauses before deferred transitions run.
const (
	DefaultCorrectDelay  = 800 * time.Millisecond
	DefaultGameOverDelay = 1000 * time.Millisecond
)

// Status is the state of the current round.
type Status int

const (
	StatusIdle Status = iota
	StatusCorrect
	StatusWrong
	StatusGameOver
)

// String returns a short name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusCorrect:
		return "Correct"
	case StatusWrong:
		return "Wrong"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Message returns the line shown to the player for the status.
func (s Status) Message() string {
	switch s {
	case StatusCorrect:
		return "Correct! 🎉 New round..."
	case StatusWrong:
		return "Wrong! One more try. ❌"
	case StatusGameOver:
		return "Game Over! Resetting..."
	default:
		return ""
	}
}

// Round is one target plus its candidate set.
type Round struct {
	Candidates   []Color
	Target       Color
	Selected     Color // empty until the player guesses
	AttemptsUsed int
	Status       Status
	Hinted       bool
}

// Session spans rounds that share a running score.
type Session struct {
	Score      int
	BestScore  int
	Difficulty Difficulty
	Hints      int // rounds this session in which a hint was revealed
}

// Outcome describes what a guess did.
type Outcome struct {
	Status Status
	// Ignored is set when the guess arrived while a transition was pending.
	Ignored bool
	// NewBest is set when the guess raised the best score.
	NewBest bool
	// FinalScore is the score the session ended with; only meaningful for
	// StatusGameOver.
	FinalScore int
	// Deferred is the transition the host must schedule, if any.
	Deferred *Deferred
}

// Option configures an Engine.
type Option func(*Engine)

// WithDelays sets the pauses before the next round and before the session
// reset. Zero means the host may resolve immediately.
func WithDelays(correct, gameOver time.Duration) Option {
	return func(e *Engine) {
		e.correctDelay = correct
		e.gameOverDelay = gameOver
	}
}

// Engine holds the round and session state.
// It is not safe for concurrent use; events are applied one at a time.
type Engine struct {
	src   Source
	store BestScoreStore

	round   Round
	session Session

	pending *Deferred

	correctDelay  time.Duration
	gameOverDelay time.Duration
}

// New creates an engine, reads the persisted best score and deals the first
// round. A nil store keeps the best score in memory.
func New(src Source, store BestScoreStore, d Difficulty, opts ...Option) *Engine {
	if store == nil {
		store = NewMemoryStore(0)
	}
	e := &Engine{
		src:           src,
		store:         store,
		correctDelay:  DefaultCorrectDelay,
		gameOverDelay: DefaultGameOverDelay,
	}
	for _, opt := range opts {
		opt(e)
	}

	best := store.Get()
	if best < 0 {
		best = 0
	}
	e.session = Session{BestScore: best, Difficulty: d}
	e.GenerateRound(d)
	return e
}

// GenerateRound deals a fresh round for d. Candidates are independent random
// colors, so duplicates can occur. The target is picked by uniform index.
// Any pending transition is dropped.
func (e *Engine) GenerateRound(d Difficulty) {
	e.pending = nil
	e.session.Difficulty = d

	candidates := make([]Color, d.Candidates())
	for i := range candidates {
		candidates[i] = RandomColor(e.src)
	}

	e.round = Round{
		Candidates: candidates,
		Target:     candidates[e.src.Intn(len(candidates))],
		Status:     StatusIdle,
	}
}

// SubmitGuess judges c against the target.
//
// A match scores a point, updates the best score and schedules the next
// round. A miss uses an attempt; the second miss ends the session and
// schedules a reset. Guesses made while a transition is pending are ignored.
func (e *Engine) SubmitGuess(c Color) Outcome {
	if e.pending != nil {
		return Outcome{Status: e.round.Status, Ignored: true}
	}

	e.round.Selected = c

	if c == e.round.Target {
		e.round.Status = StatusCorrect
		e.session.Score++

		out := Outcome{Status: StatusCorrect}
		if e.session.Score > e.session.BestScore {
			e.session.BestScore = e.session.Score
			e.store.Set(e.session.BestScore)
			out.NewBest = true
		}
		out.Deferred = e.schedule(TransitionNextRound, e.correctDelay)
		return out
	}

	e.round.AttemptsUsed++
	if e.round.AttemptsUsed >= MaxAttempts {
		e.round.Status = StatusGameOver
		return Outcome{
			Status:     StatusGameOver,
			FinalScore: e.session.Score,
			Deferred:   e.schedule(TransitionResetSession, e.gameOverDelay),
		}
	}

	e.round.Status = StatusWrong
	return Outcome{Status: StatusWrong}
}

// RevealHint returns a hint naming the first two hex digits of the target.
// Asking again in the same round counts once.
func (e *Engine) RevealHint() string {
	if !e.round.Hinted {
		e.round.Hinted = true
		e.session.Hints++
	}
	return HintFor(e.round.Target)
}

// HintFor formats the hint for target.
func HintFor(target Color) string {
	hex := target.Hex()
	if len(hex) > 2 {
		hex = hex[:2]
	}
	return "Hint: The color starts with " + hex
}

// ResetSession drops any pending transition, zeroes the score and deals a
// fresh round for d.
func (e *Engine) ResetSession(d Difficulty) {
	e.Cancel()
	e.session.Score = 0
	e.session.Hints = 0
	e.GenerateRound(d)
}

// Pending returns the transition waiting to be resolved, if any.
func (e *Engine) Pending() (Deferred, bool) {
	if e.pending == nil {
		return Deferred{}, false
	}
	return *e.pending, true
}

// Resolve runs the pending transition if token still identifies it.
// Stale tokens are ignored and Resolve reports false.
func (e *Engine) Resolve(token uint64) bool {
	if e.pending == nil || e.pending.Token != token {
		return false
	}

	kind := e.pending.Kind
	e.pending = nil

	switch kind {
	case TransitionNextRound:
		e.GenerateRound(e.session.Difficulty)
	case TransitionResetSession:
		e.ResetSession(e.session.Difficulty)
	}
	return true
}

// Cancel drops the pending transition, if any.
func (e *Engine) Cancel() {
	e.pending = nil
}

// Round returns a copy of the current round.
func (e *Engine) Round() Round {
	r := e.round
	r.Candidates = append([]Color(nil), e.round.Candidates...)
	return r
}

// Session returns a copy of the session state.
func (e *Engine) Session() Session {
	return e.session
}

// lastToken numbers transitions across every engine in the process, so a
// timer left over from one engine can never match another's pending token.
var lastToken atomic.Uint64

func (e *Engine) schedule(kind TransitionKind, delay time.Duration) *Deferred {
	d := &Deferred{Token: lastToken.Add(1), Kind: kind, Delay: delay}
	e.pending = d
	out := *d
	return &out
}
