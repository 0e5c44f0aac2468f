package crypto

import "runtime"

// Wipe zeroes b. Best-effort: the loop is kept out of line and b is
// held live past it to reduce the chance of the compiler eliding the
// writes.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
