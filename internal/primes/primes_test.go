package primes

import (
	"context"
	"testing"
	"time"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n      int
		expect bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{5, true},
		{9, false},
		{25, false},
		{29, true},
		{49, false},
		{97, true},
		{7919, true},
		{7920, false},
	}
	for _, tc := range tests {
		if got := IsPrime(tc.n); got != tc.expect {
			t.Errorf("IsPrime(%d) = %v, want %v", tc.n, got, tc.expect)
		}
	}
}

func TestCountUpTo(t *testing.T) {
	// There are 25 primes below 100, the largest being 97.
	rep := CountUpTo(100)
	if rep.Count != 25 {
		t.Errorf("Count = %d, want 25", rep.Count)
	}
	if rep.Largest != 97 {
		t.Errorf("Largest = %d, want 97", rep.Largest)
	}
	if rep.Checked != 101 {
		t.Errorf("Checked = %d, want 101", rep.Checked)
	}
}

func TestCountUpToZero(t *testing.T) {
	rep := CountUpTo(0)
	if rep.Count != 0 || rep.Largest != 0 {
		t.Errorf("CountUpTo(0) = %+v, want no primes", rep)
	}
}

func TestRunForStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep := RunFor(ctx, time.Hour)
	if rep.Elapsed > time.Second {
		t.Errorf("RunFor kept going for %v after cancellation", rep.Elapsed)
	}
}

func TestRunForStopsOnDeadline(t *testing.T) {
	rep := RunFor(context.Background(), 10*time.Millisecond)
	if rep.Elapsed > time.Second {
		t.Errorf("RunFor ran for %v, well past its duration", rep.Elapsed)
	}
	if rep.Checked == 0 {
		t.Error("RunFor checked no candidates")
	}
}
