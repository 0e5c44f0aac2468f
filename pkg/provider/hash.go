package provider

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding"
	"fmt"
	"hash"

	"github.com/strand-protocol/strand-go/pkg/crypto"
	"github.com/strand-protocol/strand-go/pkg/wire"
)

// Digest singletons for the supported transcript algorithms.
var (
	// SHA256 is the SHA-256 transcript digest.
	SHA256 crypto.Hash = &hashSpec{
		newDigest: sha256.New,
		algorithm: wire.HashSHA256,
		outputLen: sha256.Size,
		emptyHash: []byte{
			0xe3, 0xb0, 0xc4, 0x42, 0x98, 0xfc, 0x1c, 0x14,
			0x9a, 0xfb, 0xf4, 0xc8, 0x99, 0x6f, 0xb9, 0x24,
			0x27, 0xae, 0x41, 0xe4, 0x64, 0x9b, 0x93, 0x4c,
			0xa4, 0x95, 0x99, 0x1b, 0x78, 0x52, 0xb8, 0x55,
		},
	}

	// SHA384 is the SHA-384 transcript digest.
	SHA384 crypto.Hash = &hashSpec{
		newDigest: sha512.New384,
		algorithm: wire.HashSHA384,
		outputLen: sha512.Size384,
		emptyHash: []byte{
			0x38, 0xb0, 0x60, 0xa7, 0x51, 0xac, 0x96, 0x38,
			0x4c, 0xd9, 0x32, 0x7e, 0xb1, 0xb1, 0xe3, 0x6a,
			0x21, 0xfd, 0xb7, 0x11, 0x14, 0xbe, 0x07, 0x43,
			0x4c, 0x0c, 0xc7, 0xbf, 0x63, 0xf6, 0xe1, 0xda,
			0x27, 0x4e, 0xde, 0xbf, 0xe7, 0x6f, 0x65, 0xfb,
			0xd5, 0x1a, 0xd2, 0xf1, 0x48, 0x98, 0xb9, 0x5b,
		},
	}
)

func init() {
	// The empty-input literals above are compiled-in constants. A silent
	// mismatch would be invisible to any test of non-empty inputs, so
	// verify each against a fresh computation before anything can hash.
	for _, h := range []crypto.Hash{SHA256, SHA384} {
		if h.ComputeEmpty() != h.Compute(nil) {
			panic(fmt.Sprintf("provider: precompiled empty digest for %v does not match computed value", h.Algorithm()))
		}
	}
}

// hashSpec binds a platform digest constructor to its protocol identity
// and the precompiled digest of the empty input.
type hashSpec struct {
	newDigest func() hash.Hash
	algorithm wire.HashAlgorithm
	outputLen int
	emptyHash []byte
}

func (s *hashSpec) Algorithm() wire.HashAlgorithm {
	return s.algorithm
}

func (s *hashSpec) OutputLen() int {
	return s.outputLen
}

func (s *hashSpec) Start() crypto.Context {
	return &hashContext{spec: s, digest: s.newDigest()}
}

func (s *hashSpec) Compute(data []byte) crypto.Output {
	d := s.newDigest()
	d.Write(data)
	return crypto.NewOutput(d.Sum(nil))
}

func (s *hashSpec) ComputeEmpty() crypto.Output {
	return crypto.NewOutput(s.emptyHash)
}

// hashContext is one incremental computation over a platform digest.
type hashContext struct {
	spec   *hashSpec
	digest hash.Hash
}

func (c *hashContext) Update(data []byte) {
	c.digest.Write(data)
}

func (c *hashContext) Fork() crypto.Context {
	// The SHA-2 digests marshal their full internal state, so the
	// clone continues from the current prefix without rehashing it.
	state, err := c.digest.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("provider: digest state marshal failed: %v", err))
	}

	fresh := c.spec.newDigest()
	if err := fresh.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err != nil {
		panic(fmt.Sprintf("provider: digest state unmarshal failed: %v", err))
	}
	return &hashContext{spec: c.spec, digest: fresh}
}

func (c *hashContext) ForkFinish() crypto.Output {
	// Sum does not disturb the running state; no clone needed.
	return crypto.NewOutput(c.digest.Sum(nil))
}

func (c *hashContext) Finish() crypto.Output {
	out := crypto.NewOutput(c.digest.Sum(nil))
	c.digest = nil // any later call is a contract violation; fail loudly
	return out
}
