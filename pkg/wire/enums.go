package wire

import "fmt"

// HashAlgorithm identifies a transcript digest algorithm.
// Values are from the TLS HashAlgorithm registry (RFC 5246 §7.4.1.4.1).
type HashAlgorithm uint8

const (
	// HashSHA256 is the SHA-256 digest algorithm.
	HashSHA256 HashAlgorithm = 4

	// HashSHA384 is the SHA-384 digest algorithm.
	HashSHA384 HashAlgorithm = 5

	// HashSHA512 is the SHA-512 digest algorithm.
	// Reserved in the registry; no Strand suite currently uses it.
	HashSHA512 HashAlgorithm = 6
)

// String returns the hash algorithm name.
func (h HashAlgorithm) String() string {
	switch h {
	case HashSHA256:
		return "SHA256"
	case HashSHA384:
		return "SHA384"
	case HashSHA512:
		return "SHA512"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(h))
	}
}

// NamedGroup identifies a key exchange group.
// Values are from the TLS Supported Groups registry (RFC 8446 §4.2.7).
type NamedGroup uint16

const (
	// GroupSecp256r1 is the NIST P-256 curve.
	GroupSecp256r1 NamedGroup = 0x0017

	// GroupSecp384r1 is the NIST P-384 curve.
	GroupSecp384r1 NamedGroup = 0x0018

	// GroupX25519 is Curve25519 (RFC 7748).
	GroupX25519 NamedGroup = 0x001d
)

// String returns the group name.
func (g NamedGroup) String() string {
	switch g {
	case GroupSecp256r1:
		return "secp256r1"
	case GroupSecp384r1:
		return "secp384r1"
	case GroupX25519:
		return "x25519"
	default:
		return fmt.Sprintf("UNKNOWN(0x%04x)", uint16(g))
	}
}

// CipherSuite identifies a negotiable cipher suite.
// Values are from the TLS Cipher Suites registry (RFC 8446 §B.4).
type CipherSuite uint16

const (
	// SuiteAES128GCMSHA256 is AES-128-GCM with a SHA-256 transcript.
	SuiteAES128GCMSHA256 CipherSuite = 0x1301

	// SuiteAES256GCMSHA384 is AES-256-GCM with a SHA-384 transcript.
	SuiteAES256GCMSHA384 CipherSuite = 0x1302

	// SuiteCHACHA20POLY1305SHA256 is ChaCha20-Poly1305 with a SHA-256 transcript.
	SuiteCHACHA20POLY1305SHA256 CipherSuite = 0x1303
)

// String returns the cipher suite name.
func (s CipherSuite) String() string {
	switch s {
	case SuiteAES128GCMSHA256:
		return "AES_128_GCM_SHA256"
	case SuiteAES256GCMSHA384:
		return "AES_256_GCM_SHA384"
	case SuiteCHACHA20POLY1305SHA256:
		return "CHACHA20_POLY1305_SHA256"
	default:
		return fmt.Sprintf("UNKNOWN(0x%04x)", uint16(s))
	}
}

// ProtocolVersion identifies a protocol version.
// Values are from the TLS ProtocolVersion registry.
type ProtocolVersion uint16

const (
	// Version13 is the TLS 1.3 wire version. Strand speaks nothing older.
	Version13 ProtocolVersion = 0x0304
)

// String returns the version name.
func (v ProtocolVersion) String() string {
	switch v {
	case Version13:
		return "1.3"
	default:
		return fmt.Sprintf("UNKNOWN(0x%04x)", uint16(v))
	}
}

// DefaultVersions is the version list a fresh configuration starts with,
// most-preferred first.
func DefaultVersions() []ProtocolVersion {
	return []ProtocolVersion{Version13}
}
