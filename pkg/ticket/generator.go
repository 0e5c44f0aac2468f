package ticket

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/strand-protocol/strand-go/pkg/crypto"
)

// DefaultLifetime is how long issued tickets remain acceptable.
const DefaultLifetime = 6 * time.Hour

// ticketEncMode is the CBOR encoder mode for ticket envelopes.
// Deterministic encoding; indefinite lengths forbidden.
var ticketEncMode cbor.EncMode

// ticketDecMode is the CBOR decoder mode for ticket envelopes.
var ticketDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	ticketEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create ticket CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	ticketDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create ticket CBOR decoder mode: %v", err))
	}
}

// envelope is the CBOR wire form of a sealed ticket.
type envelope struct {
	KeyName []byte `cbor:"1,keyasint"`
	Nonce   []byte `cbor:"2,keyasint"`
	Sealed  []byte `cbor:"3,keyasint"`
}

// Generator seals and opens session tickets under one in-memory key.
// Safe for concurrent use. The key is generated at construction and
// never leaves the process; restarting the process invalidates all
// outstanding tickets, which is the desired failure mode.
type Generator struct {
	keyName  uuid.UUID
	aead     cipher.AEAD
	lifetime time.Duration
}

// NewGenerator creates a generator with a fresh random key and the
// default lifetime. Fails with an error wrapping ErrRandomGeneration
// if secure entropy is unavailable.
func NewGenerator() (*Generator, error) {
	keyName, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrRandomGeneration, err)
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrRandomGeneration, err)
	}

	aead, err := chacha20poly1305.New(key)
	crypto.Wipe(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket AEAD: %w", err)
	}

	return &Generator{
		keyName:  keyName,
		aead:     aead,
		lifetime: DefaultLifetime,
	}, nil
}

// Enabled reports whether tickets should be offered. Always true for
// this generator; a server that wants to disable resumption simply
// does not install one.
func (g *Generator) Enabled() bool {
	return true
}

// Lifetime returns how long issued tickets remain acceptable.
func (g *Generator) Lifetime() time.Duration {
	return g.lifetime
}

// KeyName returns the identity of the sealing key, for rotation
// bookkeeping.
func (g *Generator) KeyName() uuid.UUID {
	return g.keyName
}

// Encrypt seals plain into an opaque ticket. Returns nil on failure.
func (g *Generator) Encrypt(plain []byte) []byte {
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil
	}

	// The key name is authenticated as associated data so an envelope
	// cannot be re-pointed at another key.
	sealed := g.aead.Seal(nil, nonce, plain, g.keyName[:])

	out, err := ticketEncMode.Marshal(envelope{
		KeyName: g.keyName[:],
		Nonce:   nonce,
		Sealed:  sealed,
	})
	if err != nil {
		return nil
	}
	return out
}

// Decrypt opens a ticket previously produced by Encrypt. Returns nil
// for anything this generator cannot open, with no indication why.
func (g *Generator) Decrypt(ticket []byte) []byte {
	var env envelope
	if err := ticketDecMode.Unmarshal(ticket, &env); err != nil {
		return nil
	}
	if len(env.KeyName) != len(g.keyName) || uuid.UUID(env.KeyName) != g.keyName {
		return nil
	}
	if len(env.Nonce) != chacha20poly1305.NonceSize {
		return nil
	}

	plain, err := g.aead.Open(nil, env.Nonce, env.Sealed, g.keyName[:])
	if err != nil {
		return nil
	}
	return plain
}
