package provider

import (
	"crypto/ecdh"
	"crypto/rand"
	"fmt"

	"github.com/cloudflare/circl/dh/x25519"

	"github.com/strand-protocol/strand-go/pkg/crypto"
	"github.com/strand-protocol/strand-go/pkg/wire"
)

// Key exchange group singletons.
var (
	// X25519 is Curve25519 ECDH.
	X25519 crypto.SupportedGroup = &x25519Group{}

	// P256 is NIST P-256 ECDH.
	P256 crypto.SupportedGroup = &nistGroup{name: wire.GroupSecp256r1, curve: ecdh.P256()}

	// P384 is NIST P-384 ECDH.
	P384 crypto.SupportedGroup = &nistGroup{name: wire.GroupSecp384r1, curve: ecdh.P384()}
)

// allKxGroups is the full compiled-in group set, most-preferred first.
var allKxGroups = []crypto.SupportedGroup{X25519, P256, P384}

func startFailed(err error) error {
	return fmt.Errorf("%w: %w: %v", crypto.ErrKeyExchangeFailed, crypto.ErrRandomGeneration, err)
}

// x25519Group implements X25519 over cloudflare/circl.
type x25519Group struct{}

func (*x25519Group) Name() wire.NamedGroup {
	return wire.GroupX25519
}

func (*x25519Group) Start() (crypto.KeyExchange, error) {
	kx := &x25519Exchange{}
	if _, err := rand.Read(kx.secret[:]); err != nil {
		return nil, startFailed(err)
	}
	x25519.KeyGen(&kx.public, &kx.secret)
	return kx, nil
}

type x25519Exchange struct {
	secret   x25519.Key
	public   x25519.Key
	consumed bool
}

func (e *x25519Exchange) Group() wire.NamedGroup {
	return wire.GroupX25519
}

func (e *x25519Exchange) PubKey() []byte {
	return e.public[:]
}

func (e *x25519Exchange) Complete(peerPubKey []byte, derive func([]byte) error) error {
	if e.consumed {
		return crypto.ErrExchangeConsumed
	}
	defer e.Release()

	if len(peerPubKey) != x25519.Size {
		return crypto.ErrHandshakeFailure
	}
	var peer, shared x25519.Key
	copy(peer[:], peerPubKey)

	// Shared rejects low-order peer points.
	if !x25519.Shared(&shared, &e.secret, &peer) {
		return crypto.ErrHandshakeFailure
	}

	err := derive(shared[:])
	crypto.Wipe(shared[:])
	if err != nil {
		// Deliberately opaque: the callback's failure detail must not
		// become observable.
		return crypto.ErrHandshakeFailure
	}
	return nil
}

func (e *x25519Exchange) Release() {
	crypto.Wipe(e.secret[:])
	e.consumed = true
}

// nistGroup implements ECDH over a NIST curve via crypto/ecdh.
type nistGroup struct {
	name  wire.NamedGroup
	curve ecdh.Curve
}

func (g *nistGroup) Name() wire.NamedGroup {
	return g.name
}

func (g *nistGroup) Start() (crypto.KeyExchange, error) {
	priv, err := g.curve.GenerateKey(rand.Reader)
	if err != nil {
		return nil, startFailed(err)
	}
	return &nistExchange{
		group:  g,
		priv:   priv,
		pubKey: priv.PublicKey().Bytes(),
	}, nil
}

type nistExchange struct {
	group    *nistGroup
	priv     *ecdh.PrivateKey
	pubKey   []byte // uncompressed point encoding
	consumed bool
}

func (e *nistExchange) Group() wire.NamedGroup {
	return e.group.name
}

func (e *nistExchange) PubKey() []byte {
	return e.pubKey
}

func (e *nistExchange) Complete(peerPubKey []byte, derive func([]byte) error) error {
	if e.consumed {
		return crypto.ErrExchangeConsumed
	}
	defer e.Release()

	peer, err := e.group.curve.NewPublicKey(peerPubKey)
	if err != nil {
		return crypto.ErrHandshakeFailure
	}

	shared, err := e.priv.ECDH(peer)
	if err != nil {
		return crypto.ErrHandshakeFailure
	}

	err = derive(shared)
	crypto.Wipe(shared)
	if err != nil {
		return crypto.ErrHandshakeFailure
	}
	return nil
}

func (e *nistExchange) Release() {
	// ecdh.PrivateKey offers no zeroization hook; dropping the
	// reference is the best available storage-release discipline.
	e.priv = nil
	e.consumed = true
}
