package crypto

import "github.com/strand-protocol/strand-go/pkg/wire"

// SupportedCipherSuite describes one cipher suite a backend endorses.
// The bulk cipher and MAC live behind interfaces outside this core;
// here a suite pins its protocol identity and the digest used for its
// transcript.
//
// Instances are immutable singletons owned by the backend.
type SupportedCipherSuite struct {
	// ID is the suite's registry value.
	ID wire.CipherSuite

	// Hash is the transcript digest the suite prescribes.
	Hash Hash
}

// HashAlgorithm returns the protocol identity of the suite's
// transcript digest.
func (s *SupportedCipherSuite) HashAlgorithm() wire.HashAlgorithm {
	return s.Hash.Algorithm()
}

// String returns the suite name.
func (s *SupportedCipherSuite) String() string {
	return s.ID.String()
}
