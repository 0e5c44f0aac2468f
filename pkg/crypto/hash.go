package crypto

import (
	"fmt"

	"github.com/strand-protocol/strand-go/pkg/wire"
)

// HashMaxOutput is the maximum supported hash output size in bytes.
// Large enough for SHA-512.
const HashMaxOutput = 64

// Output is a hash output, stored as a value. It holds up to
// HashMaxOutput bytes inline, so producing one never allocates.
// Outputs of equal digests compare equal with ==.
type Output struct {
	buf  [HashMaxOutput]byte
	used int
}

// NewOutput copies b into an Output value.
// Panics if b exceeds HashMaxOutput bytes; digests that large are a
// backend bug, not a runtime condition.
func NewOutput(b []byte) Output {
	if len(b) > HashMaxOutput {
		panic(fmt.Sprintf("hash output of %d bytes exceeds maximum %d", len(b), HashMaxOutput))
	}
	var o Output
	o.used = copy(o.buf[:], b)
	return o
}

// Bytes returns a view of the output sized to its digest length.
// The view aliases the Output's storage; callers must not modify it.
func (o *Output) Bytes() []byte {
	return o.buf[:o.used]
}

// Len returns the digest length in bytes.
func (o *Output) Len() int {
	return o.used
}

// Hash describes one digest algorithm of a backend.
//
// Implementations are process-wide singletons, immutable and safe for
// concurrent use.
type Hash interface {
	// Algorithm returns the protocol identity of this digest.
	Algorithm() wire.HashAlgorithm

	// OutputLen returns the digest length in bytes.
	OutputLen() int

	// Start begins a new incremental computation over the empty input.
	Start() Context

	// Compute hashes data in one shot.
	Compute(data []byte) Output

	// ComputeEmpty returns the digest of the empty input.
	// Backends precompute this value; transcript initialization hits
	// it on every connection.
	ComputeEmpty() Output
}

// Context is one in-progress incremental hash computation.
//
// A Context must not be copied; duplication goes through Fork, which
// guarantees the two sides share no mutable state afterwards.
type Context interface {
	// Update appends data to the computation. May be called any number
	// of times, including zero.
	Update(data []byte)

	// Fork returns an independent continuation sharing the prefix
	// hashed so far. Subsequent updates on either side do not affect
	// the other.
	Fork() Context

	// ForkFinish returns the digest of everything hashed so far
	// without ending the computation; the context stays live and
	// accepts further updates. Equivalent to Fork followed by Finish,
	// but need not allocate a second live context.
	ForkFinish() Output

	// Finish ends the computation and returns the final digest.
	// The context is dead afterwards; any further call on it is a
	// contract violation and panics.
	Finish() Output
}
