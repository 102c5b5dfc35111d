// Package allocdemo implements the allocation-tracing demo workload: a short
// chain of functions that each allocate a known size, printing every
// allocation. Memory profilers pointed at the binary should see one sample
// per call site, with func31 attributed through its caller since it is
// eligible for inlining.
package allocdemo

import (
	"fmt"
	"io"
	"runtime"
)

//go:noinline
func func1(w io.Writer) {
	p := make([]byte, 10)
	fmt.Fprintf(w, "func1 alloc(10): %p\n", &p[0])
	runtime.KeepAlive(p)
}

//go:noinline
func func21(w io.Writer) {
	p := make([]byte, 20)
	fmt.Fprintf(w, "func21 alloc(20): %p\n", &p[0])
	runtime.KeepAlive(p)
}

//go:noinline
func func2(w io.Writer) {
	func21(w)
}

func func31(w io.Writer) {
	p := make([]byte, 30)
	fmt.Fprintf(w, "func31 alloc(30): %p\n", &p[0])
	runtime.KeepAlive(p)
}

//go:noinline
func func3(w io.Writer) {
	func31(w)
}

// Run performs the staged allocations, writing one line per allocation plus
// start and end markers to w.
func Run(w io.Writer) {
	fmt.Fprintln(w, "start")
	func1(w)
	func2(w)
	func3(w)
	fmt.Fprintln(w, "end")
}
