package game

import "testing"

func TestParseBestScore(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{"12", 12},
		{" 7\n", 7},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"3.5", 0},
		{"-4", 0},
		{"99999999999999999999999", 0},
	}

	for _, tc := range tests {
		if got := ParseBestScore(tc.raw); got != tc.expected {
			t.Errorf("ParseBestScore(%q) = %d, expected %d", tc.raw, got, tc.expected)
		}
	}
}

func TestFormatBestScoreRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 42, 1000} {
		if got := ParseBestScore(FormatBestScore(n)); got != n {
			t.Errorf("round trip of %d gave %d", n, got)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore(5)
	if m.Get() != 5 {
		t.Fatalf("Get() = %d, expected 5", m.Get())
	}
	m.Set(8)
	if m.Get() != 8 || m.Writes() != 1 {
		t.Errorf("after Set(8): Get() = %d, Writes() = %d", m.Get(), m.Writes())
	}
}

func TestSharedNeverLowers(t *testing.T) {
	inner := NewMemoryStore(10)
	shared := NewShared(inner)

	// An engine that loaded before another session reached 10.
	shared.Set(4)
	if got := inner.Get(); got != 10 {
		t.Errorf("stored best = %d after lower Set, expected 10", got)
	}
	if inner.Writes() != 0 {
		t.Errorf("inner written %d times, expected 0", inner.Writes())
	}

	shared.Set(11)
	if got := shared.Get(); got != 11 {
		t.Errorf("Get() = %d, expected 11", got)
	}
}
