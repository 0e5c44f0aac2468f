package crypto

import "time"

// Provider binds the protocol engine to one concrete cryptographic
// backend. A Provider is chosen when a configuration is built and held
// as an immutable handle for the life of the process; it is never
// swapped at runtime. Everything a Provider returns must be safe for
// concurrent use.
type Provider interface {
	// TicketGenerator builds a fresh session-ticket encryption object.
	// Fails with an error wrapping ErrRandomGeneration if secure
	// entropy is unavailable.
	TicketGenerator() (TicketGenerator, error)

	// FillRandom fills buf with cryptographically secure random bytes.
	// Fails with an error wrapping ErrRandomGeneration; callers must
	// treat that as fatal, never falling back to a weaker source.
	//
	// May block while the system gathers entropy.
	FillRandom(buf []byte) error

	// DefaultCipherSuites returns the static suite list this backend
	// endorses, most-preferred first. The slice and its entries are
	// immutable.
	DefaultCipherSuites() []*SupportedCipherSuite

	// KeyExchangeGroups returns every group compiled into this
	// backend, most-preferred first. Used both for advertisement and
	// as the candidate set for ChooseKeyExchange.
	KeyExchangeGroups() []SupportedGroup
}

// TicketGenerator encrypts and decrypts session tickets: opaque tokens
// a server hands out so a client can reconnect without a full
// handshake.
type TicketGenerator interface {
	// Enabled reports whether tickets from this generator should be
	// offered at all.
	Enabled() bool

	// Lifetime returns how long issued tickets remain acceptable.
	Lifetime() time.Duration

	// Encrypt seals plain into an opaque ticket. Returns nil on
	// failure.
	Encrypt(plain []byte) []byte

	// Decrypt opens a ticket previously produced by Encrypt. Returns
	// nil for tickets it cannot open, without distinguishing why.
	Decrypt(ticket []byte) []byte
}
