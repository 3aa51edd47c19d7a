package strength

import (
	"math"
	"testing"
)

func TestDefaultDenylist(t *testing.T) {
	d := DefaultDenylist()
	if d.Len() != 23 {
		t.Errorf("Len() = %d, want 23", d.Len())
	}
	if d != DefaultDenylist() {
		t.Error("DefaultDenylist() should return the shared instance")
	}

	tests := []struct {
		in   string
		want bool
	}{
		{"password", true},
		{"PASSWORD", true},
		{"TrustNo1", true},
		{"password!", false},
		{" password", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := d.Contains(tt.in); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewDenylist(t *testing.T) {
	d := NewDenylist("Hunter2", "", "  ", " letmein ")
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	if !d.Contains("HUNTER2") || !d.Contains("letmein") {
		t.Error("expected entries to be matched case-insensitively")
	}
}

func TestEntropy(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"abc", 3 * math.Sqrt(26)},
		{"ABC1", 4 * math.Sqrt(36)},
		{"aA1!", 4 * math.Sqrt(94)},
		{"é", math.Sqrt(32)},
	}
	for _, tt := range tests {
		if got := Entropy(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Entropy(%q) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, Weak}, {2, Weak}, {3, Moderate}, {4, Moderate},
		{5, Strong}, {6, Strong}, {7, VeryStrong}, {10, VeryStrong},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score); got != tt.want {
			t.Errorf("LevelFor(%d) = %q, want %q", tt.score, got.Name, tt.want.Name)
		}
	}
}
