package strand_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/strand-protocol/strand-go/pkg/config"
	"github.com/strand-protocol/strand-go/pkg/crypto"
	"github.com/strand-protocol/strand-go/pkg/provider"
	"github.com/strand-protocol/strand-go/pkg/wire"
)

// trustEverything stands in for a real verifier; the crypto core does
// not care what the verifier decides.
type trustEverything struct{}

func (trustEverything) VerifyServerCert([][]byte, string, time.Time) error {
	return nil
}

// TestHandshakeFlow walks the crypto core the way a handshake engine
// would: build a config, pick a group from its tables, run the
// exchange from both sides, and bind the derived secrets to a forked
// transcript hash.
func TestHandshakeFlow(t *testing.T) {
	cfg := config.NewBuilder(provider.Default).
		WithCustomCertificateVerifier(trustEverything{}).
		WithNoClientAuth()

	// Suite negotiation (outside this core) would pick from the
	// config's table; take the most preferred.
	suite := cfg.CipherSuites()[0]
	transcriptHash := suite.Hash

	// Transcript starts at the well-known empty digest.
	transcript := transcriptHash.Start()
	if transcript.ForkFinish() != transcriptHash.ComputeEmpty() {
		t.Fatal("fresh transcript does not equal the empty digest")
	}

	// Client advertises its groups; the "server" answers with the
	// client's first preference.
	serverChoice := cfg.KeyExchangeGroups()[0].Name()
	clientKx, err := crypto.ChooseKeyExchange(serverChoice, cfg.KeyExchangeGroups())
	if err != nil {
		t.Fatalf("client ChooseKeyExchange() error = %v", err)
	}
	serverKx, err := crypto.ChooseKeyExchange(serverChoice, provider.Default.KeyExchangeGroups())
	if err != nil {
		t.Fatalf("server ChooseKeyExchange() error = %v", err)
	}

	// Both key shares enter the transcript, and a checkpoint is taken
	// at the message boundary while the transcript keeps growing.
	transcript.Update(clientKx.PubKey())
	transcript.Update(serverKx.PubKey())
	helloDigest := transcript.ForkFinish()
	transcript.Update([]byte("EncryptedExtensions"))

	derive := func(label string) func([]byte) []byte {
		return func(secret []byte) []byte {
			// A stand-in for the key schedule: mix the secret with the
			// transcript checkpoint.
			ctx := transcriptHash.Start()
			ctx.Update([]byte(label))
			ctx.Update(secret)
			ctx.Update(helloDigest.Bytes())
			out := ctx.Finish()
			return append([]byte(nil), out.Bytes()...)
		}
	}

	var clientKey, serverKey []byte
	if err := clientKx.Complete(serverKx.PubKey(), func(secret []byte) error {
		clientKey = derive("hs traffic")(secret)
		return nil
	}); err != nil {
		t.Fatalf("client Complete() error = %v", err)
	}
	if err := serverKx.Complete(clientKx.PubKey(), func(secret []byte) error {
		serverKey = derive("hs traffic")(secret)
		return nil
	}); err != nil {
		t.Fatalf("server Complete() error = %v", err)
	}

	if !bytes.Equal(clientKey, serverKey) {
		t.Fatal("client and server derived different traffic keys")
	}

	// The live transcript moved on past the checkpoint.
	final := transcript.Finish()
	if final == helloDigest {
		t.Fatal("transcript did not advance past its checkpoint")
	}

	// Resumption: the server seals session state into a ticket the
	// client can bring back.
	ticketer, err := cfg.Provider().TicketGenerator()
	if err != nil {
		t.Fatalf("TicketGenerator() error = %v", err)
	}
	state := append([]byte("resumption:"), serverKey...)
	sealed := ticketer.Encrypt(state)
	if sealed == nil {
		t.Fatal("Encrypt() returned nil")
	}
	if got := ticketer.Decrypt(sealed); !bytes.Equal(got, state) {
		t.Fatal("ticket round trip lost session state")
	}
}

// TestConfigBoundToOneBackend checks the provider handle installed at
// build time is the one every later operation reaches.
func TestConfigBoundToOneBackend(t *testing.T) {
	cfg := config.NewBuilder(provider.Default).
		WithCustomCertificateVerifier(trustEverything{}).
		WithNoClientAuth()

	if cfg.Provider() != provider.Default {
		t.Fatal("config is not bound to the backend it was built with")
	}

	buf := make([]byte, 32)
	if err := cfg.Provider().FillRandom(buf); err != nil {
		t.Fatalf("FillRandom() through the config handle: %v", err)
	}

	for _, group := range cfg.KeyExchangeGroups() {
		kx, err := group.Start()
		if err != nil {
			t.Fatalf("%v Start() error = %v", group.Name(), err)
		}
		kx.Release()
	}

	if _, err := crypto.ChooseKeyExchange(wire.NamedGroup(0xfafa), cfg.KeyExchangeGroups()); err == nil {
		t.Fatal("unknown group accepted")
	}
}
