// Package wire defines the protocol-registry identifiers shared between
// the Strand crypto core and the handshake engine.
//
// Every identifier in this package carries the externally standardized
// registry value for the corresponding TLS code point. The numbers are
// part of the wire protocol: they are advertised to and compared against
// peers, and must never be renumbered independently of the registry.
//
// # Identifier Families
//
//   - HashAlgorithm: transcript digest algorithms
//   - NamedGroup: key exchange groups (curves)
//   - CipherSuite: negotiable cipher suites
//   - ProtocolVersion: protocol versions
//
// The enums are plain value types with String() methods for diagnostics.
// They carry no behavior; capability interfaces over them live in the
// crypto package.
package wire
