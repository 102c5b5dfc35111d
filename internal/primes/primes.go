// Package primes implements the prime-counting demo workload, a pure CPU
// burner useful as a profiling target.
package primes

import (
	"context"
	"time"
)

// IsPrime reports whether n is prime using 6k±1 trial division.
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Report summarizes one run of the workload.
type Report struct {
	Checked int           `json:"checked"`
	Count   int           `json:"count"`
	Largest int           `json:"largest"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// CountUpTo checks every integer in [0, limit] and reports how many primes
// were found and the largest one.
func CountUpTo(limit int) Report {
	start := time.Now()
	rep := Report{}
	for i := 0; i <= limit; i++ {
		rep.Checked++
		if IsPrime(i) {
			rep.Count++
			rep.Largest = i
		}
	}
	rep.Elapsed = time.Since(start)
	return rep
}

// checkInterval is the number of candidates tested between context checks.
const checkInterval = 1 << 16

// RunFor counts primes upward from zero until d has elapsed or ctx is
// cancelled, whichever comes first.
func RunFor(ctx context.Context, d time.Duration) Report {
	start := time.Now()
	deadline := start.Add(d)
	rep := Report{}
	for i := 0; ; i++ {
		if i%checkInterval == 0 {
			if ctx.Err() != nil || !time.Now().Before(deadline) {
				break
			}
		}
		rep.Checked++
		if IsPrime(i) {
			rep.Count++
			rep.Largest = i
		}
	}
	rep.Elapsed = time.Since(start)
	return rep
}
