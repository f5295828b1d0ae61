package elo

import "testing"

func TestExpected(t *testing.T) {
	if got := Expected(1000, 1000); got != 0.5 {
		t.Errorf("Expected() = %v, want 0.5", got)
	}
	if got := Expected(1400, 1000); got < 0.909 || got > 0.910 {
		t.Errorf("Expected() = %v, want ~0.909", got)
	}
}

func TestPoints_Opposite(t *testing.T) {
	for p, want := range map[Points]Points{Win: Lose, Draw: Draw, Lose: Win} {
		if got := p.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", p, got, want)
		}
	}
}
