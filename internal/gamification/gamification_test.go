package gamification

import "testing"

func TestToggleCompletionAwardsAndRevokes(t *testing.T) {
	t.Parallel()

	completed, delta := ToggleCompletion(false)
	if !completed || delta != CompletionXP {
		t.Fatalf("toggle incomplete = (%t, %d), want (true, %d)", completed, delta, CompletionXP)
	}

	completed, delta = ToggleCompletion(true)
	if completed || delta != -CompletionXP {
		t.Fatalf("toggle complete = (%t, %d), want (false, %d)", completed, delta, -CompletionXP)
	}
}

func TestToggleSymmetryRestoresXP(t *testing.T) {
	t.Parallel()

	for _, start := range []int{0, 50, 100, 499, 500, 1234} {
		state := false
		xp := start

		state, delta := ToggleCompletion(state)
		xp = ApplyXP(xp, delta)
		state, delta = ToggleCompletion(state)
		xp = ApplyXP(xp, delta)

		if state {
			t.Fatalf("expected state restored to incomplete")
		}
		if xp != start {
			t.Fatalf("xp after double toggle = %d, want %d", xp, start)
		}
		if Level(xp) != Level(start) {
			t.Fatalf("level after double toggle = %d, want %d", Level(xp), Level(start))
		}
	}
}

func TestApplyXPClampsAtZero(t *testing.T) {
	t.Parallel()

	if got := ApplyXP(50, -100); got != 0 {
		t.Fatalf("ApplyXP(50, -100) = %d, want 0", got)
	}
	if got := ApplyXP(0, -100); got != 0 {
		t.Fatalf("ApplyXP(0, -100) = %d, want 0", got)
	}
	if got := ApplyXP(100, -100); got != 0 {
		t.Fatalf("ApplyXP(100, -100) = %d, want 0", got)
	}
	if got := ApplyXP(300, 100); got != 400 {
		t.Fatalf("ApplyXP(300, 100) = %d, want 400", got)
	}
}

func TestLevelLaw(t *testing.T) {
	t.Parallel()

	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{100, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{5000, 11},
	}
	for _, tc := range cases {
		if got := Level(tc.xp); got != tc.level {
			t.Fatalf("Level(%d) = %d, want %d", tc.xp, got, tc.level)
		}
	}
}

func TestXPPercent(t *testing.T) {
	t.Parallel()

	if got := XPPercent(0); got != 0 {
		t.Fatalf("XPPercent(0) = %v, want 0", got)
	}
	if got := XPPercent(250); got != 50 {
		t.Fatalf("XPPercent(250) = %v, want 50", got)
	}
	if got := XPPercent(750); got != 50 {
		t.Fatalf("XPPercent(750) = %v, want 50", got)
	}
	if got := XPPercent(500); got != 0 {
		t.Fatalf("XPPercent(500) = %v, want 0", got)
	}
}

func TestProgress(t *testing.T) {
	t.Parallel()

	cases := []struct {
		completed int
		total     int
		want      int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{2, 3, 66},
		{3, 3, 100},
		{1, 2, 50},
		{1, 7, 14},
	}
	for _, tc := range cases {
		if got := Progress(tc.completed, tc.total); got != tc.want {
			t.Fatalf("Progress(%d, %d) = %d, want %d", tc.completed, tc.total, got, tc.want)
		}
	}
}
