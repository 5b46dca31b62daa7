package xp

import "testing"

func TestLevelBoundaries(t *testing.T) {
	cases := map[int]int{
		0:   1,
		99:  1,
		100: 2,
		199: 2,
		200: 3,
	}
	for in, want := range cases {
		if got := Level(in); got != want {
			t.Fatalf("Level(%d)=%d, want %d", in, got, want)
		}
	}
	if got := Level(-5); got != 1 {
		t.Fatalf("Level(-5)=%d, want 1", got)
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(0); got != 0 {
		t.Fatalf("Progress(0)=%d, want 0", got)
	}
	if got := Progress(250); got != 50 {
		t.Fatalf("Progress(250)=%d, want 50", got)
	}
	if got := Progress(-1); got != 0 {
		t.Fatalf("Progress(-1)=%d, want 0", got)
	}
}

func TestDeductFloor(t *testing.T) {
	if got := Deduct(5, PerTask); got != 0 {
		t.Fatalf("Deduct(5, 10)=%d, want floor at 0", got)
	}
	if got := Deduct(0, PerTask); got != 0 {
		t.Fatalf("Deduct(0, 10)=%d, want 0", got)
	}
	if got := Deduct(25, PerTask); got != 15 {
		t.Fatalf("Deduct(25, 10)=%d, want 15", got)
	}
}

func TestAwardDeductSymmetry(t *testing.T) {
	start := 40
	if got := Deduct(Award(start, PerTask), PerTask); got != start {
		t.Fatalf("award then deduct = %d, want %d", got, start)
	}
}
