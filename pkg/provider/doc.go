// Package provider is the default Strand crypto backend.
//
// Digests wrap the platform SHA-2 implementations, which pick up
// hardware acceleration where available. Forking a hash context clones
// the digest state through its binary marshalling support, so taking a
// transcript checkpoint never recomputes the prefix.
//
// Key exchange offers X25519 (via cloudflare/circl), P-256 and P-384.
// Randomness comes from the operating system CSPRNG only; there is no
// fallback source.
//
// Each digest carries a precompiled literal for the empty-input hash,
// the value transcript initialization needs on every connection. The
// literals are verified against a fresh computation at package
// initialization; a mismatch is unrecoverable and panics.
package provider
