package textutil

import (
	"math"
	"testing"
)

func TestMatchScoreExact(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"identical", "Acme Corp", "Acme Corp"},
		{"case and punctuation", "ACME Corp.", "acme corp"},
		{"quote variants", "Bob’s Diner", "Bob's Diner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchScore(tt.a, tt.b); got != 1.0 {
				t.Errorf("MatchScore(%q, %q) = %v, want 1.0", tt.a, tt.b, got)
			}
		})
	}
}

func TestMatchScoreContainment(t *testing.T) {
	if got := MatchScore("Acme", "Acme Corporation"); got != 0.8 {
		t.Errorf("MatchScore(substring) = %v, want 0.8", got)
	}
	if got := MatchScore("Acme Corporation", "Acme"); got != 0.8 {
		t.Errorf("MatchScore(superstring) = %v, want 0.8", got)
	}
}

func TestMatchScoreJaccard(t *testing.T) {
	// "acme west" vs "acme east": intersection 1, union 3.
	got := MatchScore("Acme West", "Acme East")
	want := 1.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("MatchScore(jaccard) = %v, want %v", got, want)
	}

	if got := MatchScore("Zyndrax Labs", "Acme Corp"); got != 0 {
		t.Errorf("MatchScore(disjoint) = %v, want 0", got)
	}
}

func TestMatchScoreSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Acme Corp", "ACME Corporation"},
		{"Bob's Diner", "Diner"},
		{"Zyndrax Labs", "Acme Corp"},
		{"Acme West Coast", "West Coast Acme"},
	}
	for _, p := range pairs {
		ab := MatchScore(p[0], p[1])
		ba := MatchScore(p[1], p[0])
		if ab != ba {
			t.Errorf("MatchScore not symmetric for (%q, %q): %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestMatchScoreRange(t *testing.T) {
	pairs := [][2]string{
		{"Acme Corp", "ACME Corp."},
		{"Acme Corp", "Acme Corporation"},
		{"one two three", "two three four"},
		{"", ""},
	}
	for _, p := range pairs {
		got := MatchScore(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("MatchScore(%q, %q) = %v, outside [0,1]", p[0], p[1], got)
		}
	}
}
