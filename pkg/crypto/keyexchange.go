package crypto

import (
	"fmt"

	"github.com/strand-protocol/strand-go/pkg/wire"
)

// SupportedGroup describes one named key exchange group compiled into a
// backend. Implementations are immutable singletons.
type SupportedGroup interface {
	// Name returns the protocol identity of the group.
	Name() wire.NamedGroup

	// Start generates fresh ephemeral key material and returns a live
	// exchange over this group. Fails with an error wrapping both
	// ErrKeyExchangeFailed and ErrRandomGeneration if secure
	// randomness is unavailable.
	Start() (KeyExchange, error)
}

// KeyExchange is one in-flight ephemeral exchange. It is exclusively
// owned by its creator and consumed by exactly one Complete call, or
// abandoned with Release. Either way the ephemeral secret material is
// zeroed.
type KeyExchange interface {
	// Group returns the group this exchange is operating over.
	Group() wire.NamedGroup

	// PubKey returns the public key to send to the peer, in the
	// group's standard wire encoding. The slice aliases the
	// exchange's internal state; callers must not modify it.
	PubKey() []byte

	// Complete derives the shared secret from the peer's public key
	// and passes it to derive. The secret is only valid for the
	// duration of the call: it is zeroed before Complete returns, and
	// derive must not retain the slice. Complete never returns the
	// raw secret.
	//
	// Complete consumes the exchange; a second call fails with
	// ErrExchangeConsumed. A failure inside derive surfaces as the
	// bare ErrHandshakeFailure, with the callback's own error
	// deliberately discarded.
	Complete(peerPubKey []byte, derive func(sharedSecret []byte) error) error

	// Release abandons the exchange without completing it, zeroing
	// ephemeral secret material. Releasing a consumed exchange is a
	// no-op.
	Release()
}

// ChooseKeyExchange starts an exchange over the element of supported
// whose identity matches name. Returns ErrUnsupportedGroup if no
// element matches, including when supported is empty.
func ChooseKeyExchange(name wire.NamedGroup, supported []SupportedGroup) (KeyExchange, error) {
	for _, group := range supported {
		if group.Name() == name {
			return group.Start()
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedGroup, name)
}
