package crypto

import "errors"

// Failure kinds surfaced by backends. None are retried inside this
// package; the protocol engine decides whether to try another group or
// abort the handshake.
var (
	// ErrRandomGeneration indicates secure entropy was unavailable.
	// Fatal wherever it occurs; callers must never fall back to a
	// weaker randomness source.
	ErrRandomGeneration = errors.New("secure random generation failed")

	// ErrUnsupportedGroup indicates the requested named group is not
	// compiled into the backend. Recoverable: the caller may try
	// another group or abort negotiation.
	ErrUnsupportedGroup = errors.New("unsupported key exchange group")

	// ErrKeyExchangeFailed indicates an exchange could not be started.
	// It wraps ErrRandomGeneration when entropy was the cause.
	ErrKeyExchangeFailed = errors.New("key exchange failed")

	// ErrHandshakeFailure is the opaque failure for a completing
	// exchange. It deliberately carries no detail about the underlying
	// cause so that error handling cannot become a decision oracle.
	ErrHandshakeFailure = errors.New("handshake failure")

	// ErrExchangeConsumed indicates a KeyExchange was used after its
	// Complete or Release call.
	ErrExchangeConsumed = errors.New("key exchange already consumed")
)
