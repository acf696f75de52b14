package game

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

// scriptedSource replays fixed draws, then falls back to a seeded RNG.
type scriptedSource struct {
	script   []int
	fallback *rand.Rand
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.script) > 0 {
		v := s.script[0]
		s.script = s.script[1:]
		return v % n
	}
	return s.fallback.Intn(n)
}

// roundScript returns the draws that deal candidates and pick target index.
func roundScript(t *testing.T, target int, candidates ...string) []int {
	t.Helper()
	var draws []int
	for _, c := range candidates {
		for _, ch := range strings.TrimPrefix(c, "#") {
			idx := strings.IndexRune(hexDigits, ch)
			if idx < 0 {
				t.Fatalf("bad test color %q", c)
			}
			draws = append(draws, idx)
		}
	}
	return append(draws, target)
}

func newScripted(script ...[]int) *scriptedSource {
	var all []int
	for _, s := range script {
		all = append(all, s...)
	}
	return &scriptedSource{script: all, fallback: rand.New(rand.NewSource(42))}
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func wrongGuess(r Round) Color {
	for _, c := range r.Candidates {
		if c != r.Target {
			return c
		}
	}
	return "#GGGGGG"
}

func TestGenerateRoundSizes(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		expected   int
	}{
		{Easy, 3},
		{Medium, 6},
		{Hard, 9},
	}

	for _, tc := range tests {
		t.Run(tc.difficulty.String(), func(t *testing.T) {
			e := New(seeded(1), nil, tc.difficulty)
			for i := 0; i < 50; i++ {
				e.GenerateRound(tc.difficulty)
				r := e.Round()
				if len(r.Candidates) != tc.expected {
					t.Fatalf("len(Candidates) = %d, expected %d", len(r.Candidates), tc.expected)
				}
				found := false
				for _, c := range r.Candidates {
					if c == r.Target {
						found = true
					}
					if _, err := ParseColor(string(c)); err != nil || string(c) != strings.ToUpper(string(c)) {
						t.Fatalf("candidate %q is not an uppercase #RRGGBB color", c)
					}
				}
				if !found {
					t.Fatalf("target %s not among candidates %v", r.Target, r.Candidates)
				}
				if r.Status != StatusIdle || r.AttemptsUsed != 0 || r.Selected != "" {
					t.Fatalf("fresh round not reset: %+v", r)
				}
			}
		})
	}
}

func TestGenerateRoundKeepsDuplicates(t *testing.T) {
	src := newScripted(roundScript(t, 1, "#ABCDEF", "#ABCDEF", "#123456"))
	e := New(src, nil, Easy)

	r := e.Round()
	if r.Candidates[0] != r.Candidates[1] {
		t.Fatalf("expected duplicate candidates to be kept, got %v", r.Candidates)
	}
	if r.Target != "#ABCDEF" {
		t.Errorf("Target = %s, expected #ABCDEF", r.Target)
	}
}

func TestCorrectGuessScenario(t *testing.T) {
	candidates := []string{"#111111", "#222222", "#333333", "#444444", "#555555", "#666666"}
	src := newScripted(roundScript(t, 2, candidates...))
	e := New(src, nil, Medium)

	if got := e.Round().Target; got != "#333333" {
		t.Fatalf("Target = %s, expected #333333", got)
	}

	out := e.SubmitGuess("#333333")
	if out.Status != StatusCorrect {
		t.Fatalf("Status = %v, expected Correct", out.Status)
	}
	if s := e.Session(); s.Score != 1 || s.BestScore != 1 {
		t.Fatalf("Session = %+v, expected score 1 best 1", s)
	}
	if !out.NewBest {
		t.Error("first point should be a new best")
	}
	if out.Deferred == nil || out.Deferred.Kind != TransitionNextRound {
		t.Fatalf("expected a NextRound transition, got %+v", out.Deferred)
	}
	if e.Round().Selected != "#333333" {
		t.Errorf("Selected = %s, expected #333333", e.Round().Selected)
	}

	if !e.Resolve(out.Deferred.Token) {
		t.Fatal("Resolve() should run the pending transition")
	}

	r := e.Round()
	if len(r.Candidates) != 6 {
		t.Fatalf("new round has %d candidates, expected 6", len(r.Candidates))
	}
	if r.Status != StatusIdle || r.Selected != "" || r.AttemptsUsed != 0 {
		t.Errorf("new round not reset: %+v", r)
	}
	if e.Session().Score != 1 {
		t.Errorf("score should carry across rounds, got %d", e.Session().Score)
	}
}

func TestCorrectAfterWrongStillScoresOne(t *testing.T) {
	src := newScripted(roundScript(t, 0, "#AABBCC", "#000000", "#FFFFFF"))
	e := New(src, nil, Easy)

	if out := e.SubmitGuess("#000000"); out.Status != StatusWrong {
		t.Fatalf("Status = %v, expected Wrong", out.Status)
	}
	if e.Round().AttemptsUsed != 1 {
		t.Fatalf("AttemptsUsed = %d, expected 1", e.Round().AttemptsUsed)
	}

	out := e.SubmitGuess("#AABBCC")
	if out.Status != StatusCorrect {
		t.Fatalf("Status = %v, expected Correct", out.Status)
	}
	if e.Session().Score != 1 {
		t.Errorf("Score = %d, expected 1", e.Session().Score)
	}
}

func TestWrongGuessKeepsRound(t *testing.T) {
	e := New(seeded(7), nil, Hard)
	before := e.Round()

	out := e.SubmitGuess(wrongGuess(before))
	if out.Status != StatusWrong {
		t.Fatalf("Status = %v, expected Wrong", out.Status)
	}
	if out.Deferred != nil {
		t.Error("first wrong guess should not schedule anything")
	}

	after := e.Round()
	if after.Target != before.Target {
		t.Error("target changed after a retryable miss")
	}
	for i := range before.Candidates {
		if after.Candidates[i] != before.Candidates[i] {
			t.Fatal("candidates changed after a retryable miss")
		}
	}
}

func TestGameOverScenario(t *testing.T) {
	candidates := []string{"#AABBCC", "#010101", "#020202", "#030303", "#040404", "#050505"}
	src := newScripted(
		roundScript(t, 2, "#999999", "#888888", "#777777", "#666666", "#555555", "#444444"),
		roundScript(t, 0, candidates...),
	)
	e := New(src, nil, Medium)

	// Score a point first so the reset is observable.
	out := e.SubmitGuess("#777777")
	if out.Status != StatusCorrect {
		t.Fatalf("setup guess: Status = %v, expected Correct", out.Status)
	}
	e.Resolve(out.Deferred.Token)
	if e.Round().Target != "#AABBCC" {
		t.Fatalf("Target = %s, expected #AABBCC", e.Round().Target)
	}

	e.SubmitGuess("#010101")
	out = e.SubmitGuess("#020202")
	if out.Status != StatusGameOver {
		t.Fatalf("Status = %v, expected GameOver", out.Status)
	}
	if out.FinalScore != 1 {
		t.Errorf("FinalScore = %d, expected 1", out.FinalScore)
	}
	if out.Deferred == nil || out.Deferred.Kind != TransitionResetSession {
		t.Fatalf("expected ResetSession transition, got %+v", out.Deferred)
	}

	e.Resolve(out.Deferred.Token)

	s := e.Session()
	if s.Score != 0 {
		t.Errorf("Score after reset = %d, expected 0", s.Score)
	}
	if s.BestScore != 1 {
		t.Errorf("BestScore after reset = %d, expected 1", s.BestScore)
	}
	r := e.Round()
	if r.Status != StatusIdle || r.AttemptsUsed != 0 || len(r.Candidates) != 6 {
		t.Errorf("expected fresh round after reset, got %+v", r)
	}
}

func TestGuessesIgnoredWhileTransitionPending(t *testing.T) {
	e := New(seeded(3), nil, Easy)
	target := e.Round().Target

	first := e.SubmitGuess(target)
	second := e.SubmitGuess(target)

	if !second.Ignored {
		t.Fatal("second guess during pending transition should be ignored")
	}
	if e.Session().Score != 1 {
		t.Errorf("Score = %d, expected 1", e.Session().Score)
	}
	if d, ok := e.Pending(); !ok || d.Token != first.Deferred.Token {
		t.Error("pending transition should be unchanged by ignored guess")
	}
}

func TestResetCancelsStaleTransition(t *testing.T) {
	e := New(seeded(11), nil, Medium)
	r := e.Round()

	e.SubmitGuess(wrongGuess(r))
	out := e.SubmitGuess(wrongGuess(r))
	if out.Status != StatusGameOver {
		t.Fatalf("Status = %v, expected GameOver", out.Status)
	}

	// Player starts a new game before the timer fires.
	e.ResetSession(Hard)
	fresh := e.Round()

	if _, ok := e.Pending(); ok {
		t.Fatal("ResetSession should cancel the pending transition")
	}
	if e.Resolve(out.Deferred.Token) {
		t.Fatal("stale token should not resolve")
	}

	after := e.Round()
	if after.Target != fresh.Target || len(after.Candidates) != 9 {
		t.Error("stale callback overwrote the freshly reset round")
	}
	if e.Session().Difficulty != Hard {
		t.Errorf("Difficulty = %v, expected Hard", e.Session().Difficulty)
	}
}

func TestStaleNextRoundAfterCorrect(t *testing.T) {
	e := New(seeded(5), nil, Easy)
	out := e.SubmitGuess(e.Round().Target)

	e.ResetSession(Easy)
	if e.Session().Score != 0 {
		t.Fatalf("Score = %d, expected 0", e.Session().Score)
	}
	snapshot := e.Round()

	if e.Resolve(out.Deferred.Token) {
		t.Error("stale NextRound should not resolve")
	}
	if e.Round().Target != snapshot.Target {
		t.Error("round changed after stale resolve")
	}
}

func TestTokensAreUnique(t *testing.T) {
	e := New(seeded(9), nil, Easy)
	seen := make(map[uint64]bool)
	for i := 0; i < 20; i++ {
		out := e.SubmitGuess(e.Round().Target)
		if seen[out.Deferred.Token] {
			t.Fatalf("token %d reused", out.Deferred.Token)
		}
		seen[out.Deferred.Token] = true
		e.Resolve(out.Deferred.Token)
	}
}

func TestTokensDifferAcrossEngines(t *testing.T) {
	a := New(seeded(3), nil, Easy)
	b := New(seeded(3), nil, Easy)

	outA := a.SubmitGuess(a.Round().Target)
	outB := b.SubmitGuess(b.Round().Target)
	if outA.Deferred.Token == outB.Deferred.Token {
		t.Fatalf("both engines issued token %d", outA.Deferred.Token)
	}
	if b.Resolve(outA.Deferred.Token) {
		t.Error("an engine must not resolve another engine's token")
	}
	if !b.Resolve(outB.Deferred.Token) {
		t.Error("own token should resolve")
	}
}

func TestBestScoreMonotonic(t *testing.T) {
	store := NewMemoryStore(3)
	e := New(seeded(21), store, Medium)
	rng := seeded(99)

	best := e.Session().BestScore
	if best != 3 {
		t.Fatalf("BestScore = %d, expected persisted value 3", best)
	}

	for i := 0; i < 500; i++ {
		r := e.Round()
		guess := r.Candidates[rng.Intn(len(r.Candidates))]
		out := e.SubmitGuess(guess)
		if out.Deferred != nil {
			e.Resolve(out.Deferred.Token)
		}

		s := e.Session()
		if s.BestScore < best {
			t.Fatalf("best score decreased from %d to %d", best, s.BestScore)
		}
		if s.BestScore < s.Score {
			t.Fatalf("best score %d below score %d", s.BestScore, s.Score)
		}
		best = s.BestScore
	}

	if store.Get() != best {
		t.Errorf("persisted best = %d, expected %d", store.Get(), best)
	}
}

func TestBestScorePersistedOnlyWhenBeaten(t *testing.T) {
	store := NewMemoryStore(2)
	e := New(seeded(4), store, Easy)

	for i := 0; i < 2; i++ {
		out := e.SubmitGuess(e.Round().Target)
		if out.NewBest {
			t.Fatalf("point %d should not beat best of 2", i+1)
		}
		e.Resolve(out.Deferred.Token)
	}
	if store.Writes() != 0 {
		t.Fatalf("store written %d times, expected 0", store.Writes())
	}

	out := e.SubmitGuess(e.Round().Target)
	if !out.NewBest {
		t.Fatal("third point should beat best of 2")
	}
	if store.Get() != 3 || store.Writes() != 1 {
		t.Errorf("store = %d after %d writes, expected 3 after 1", store.Get(), store.Writes())
	}
}

func TestNegativePersistedBestClamped(t *testing.T) {
	e := New(seeded(1), NewMemoryStore(-4), Easy)
	if e.Session().BestScore != 0 {
		t.Errorf("BestScore = %d, expected 0", e.Session().BestScore)
	}
}

func TestRevealHint(t *testing.T) {
	src := newScripted(roundScript(t, 1, "#123456", "#AABBCC", "#FEDCBA"))
	e := New(src, nil, Easy)

	target := e.Round().Target
	hint := e.RevealHint()
	if hint != "Hint: The color starts with AA" {
		t.Errorf("RevealHint() = %q", hint)
	}
	if want := "Hint: The color starts with " + target.Hex()[:2]; hint != want {
		t.Errorf("RevealHint() = %q, expected %q", hint, want)
	}
	if !strings.Contains(hint, target.Hex()[:2]) {
		t.Error("hint should contain the first two digits of the target")
	}
	if !e.Round().Hinted {
		t.Error("round should be marked as hinted")
	}
	e.RevealHint()
	if e.Session().Hints != 1 {
		t.Errorf("Hints = %d, expected 1 for repeated hint in one round", e.Session().Hints)
	}
	e.ResetSession(Easy)
	if e.Session().Hints != 0 {
		t.Errorf("Hints = %d after reset, expected 0", e.Session().Hints)
	}
	if e.RevealHint() != HintFor(e.Round().Target) {
		t.Error("hint after reset should describe the new target")
	}
}

func TestDelays(t *testing.T) {
	e := New(seeded(2), nil, Easy, WithDelays(0, 5*time.Second))

	out := e.SubmitGuess(e.Round().Target)
	if out.Deferred.Delay != 0 {
		t.Errorf("correct delay = %v, expected 0", out.Deferred.Delay)
	}
	e.Resolve(out.Deferred.Token)

	r := e.Round()
	e.SubmitGuess(wrongGuess(r))
	out = e.SubmitGuess(wrongGuess(r))
	if out.Deferred.Delay != 5*time.Second {
		t.Errorf("game over delay = %v, expected 5s", out.Deferred.Delay)
	}
}

func TestRoundReturnsCopy(t *testing.T) {
	e := New(seeded(8), nil, Easy)
	r := e.Round()
	r.Candidates[0] = "#XXXXXX"

	if e.Round().Candidates[0] == "#XXXXXX" {
		t.Error("Round() leaked internal candidate slice")
	}
}

func TestStatusMessages(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusIdle, ""},
		{StatusCorrect, "Correct! 🎉 New round..."},
		{StatusWrong, "Wrong! One more try. ❌"},
		{StatusGameOver, "Game Over! Resetting..."},
	}
	for _, tc := range tests {
		if got := tc.status.Message(); got != tc.expected {
			t.Errorf("%v.Message() = %q, expected %q", tc.status, got, tc.expected)
		}
	}
}
