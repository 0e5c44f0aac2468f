// Package crypto defines the backend-neutral capability surface between
// the Strand protocol engine and a concrete cryptographic backend.
//
// The handshake engine, key schedule and record layer are written once
// against these interfaces; a backend (see the provider package for the
// default one) supplies the concrete primitives. A backend is selected
// when the configuration is built and never swapped afterwards, so every
// table a Provider exposes must be immutable after process start.
//
// # Hashing
//
// Hash describes one digest algorithm; Context is one in-progress
// computation. The transcript engine relies on two properties beyond
// plain incremental hashing:
//
//   - Fork produces an independent continuation sharing the prefix
//     hashed so far. Either side can then be extended without affecting
//     the other, which is how the same transcript prefix is bound into
//     two different derivations.
//   - ForkFinish is a non-destructive checkpoint: the digest as of now,
//     with the context remaining live for further updates.
//
// Independent contexts (including forks of a common parent) may be used
// from different goroutines without coordination. A single Context is
// not safe for concurrent use.
//
// # Key Exchange
//
// SupportedGroup describes one named group compiled into a backend;
// KeyExchange is one in-flight ephemeral exchange. Complete hands the
// shared secret to a caller-supplied derivation callback and zeroes it
// before returning: the raw secret never escapes the call. An exchange
// is consumed by its first Complete or Release; later calls fail with
// ErrExchangeConsumed.
//
// # Errors
//
// All failures surface as typed sentinel errors (ErrRandomGeneration,
// ErrUnsupportedGroup, ErrKeyExchangeFailed, ErrHandshakeFailure).
// Nothing is retried here; group fallback and abort policy belong to
// the protocol engine. Callers presenting errors to a peer should
// collapse them into a single opaque handshake failure rather than
// reveal which kind occurred.
package crypto
