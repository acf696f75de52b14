package paths

import (
	"path/filepath"
	"testing"
)

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"home", "~/.colormatch/scores.db", filepath.Join(home, ".colormatch", "scores.db")},
		{"absolute", "/tmp/x.db", "/tmp/x.db"},
		{"relative", "scores.db", "scores.db"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.in)
			if err != nil {
				t.Fatalf("Expand(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, expected %q", tt.in, got, tt.want)
			}
		})
	}
}
