package provider

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/strand-protocol/strand-go/pkg/crypto"
	"github.com/strand-protocol/strand-go/pkg/ticket"
	"github.com/strand-protocol/strand-go/pkg/wire"
)

// Cipher suite singletons endorsed by this backend.
var (
	// AES128GCMSHA256 is TLS_AES_128_GCM_SHA256.
	AES128GCMSHA256 = &crypto.SupportedCipherSuite{
		ID:   wire.SuiteAES128GCMSHA256,
		Hash: SHA256,
	}

	// AES256GCMSHA384 is TLS_AES_256_GCM_SHA384.
	AES256GCMSHA384 = &crypto.SupportedCipherSuite{
		ID:   wire.SuiteAES256GCMSHA384,
		Hash: SHA384,
	}

	// CHACHA20POLY1305SHA256 is TLS_CHACHA20_POLY1305_SHA256.
	CHACHA20POLY1305SHA256 = &crypto.SupportedCipherSuite{
		ID:   wire.SuiteCHACHA20POLY1305SHA256,
		Hash: SHA256,
	}
)

// defaultCipherSuites is the endorsed suite list, most-preferred first.
var defaultCipherSuites = []*crypto.SupportedCipherSuite{
	AES256GCMSHA384,
	AES128GCMSHA256,
	CHACHA20POLY1305SHA256,
}

// Provider is the default backend. The zero value is ready to use; the
// exported Default handle is what configurations normally reference.
type Provider struct{}

// Default is the process-wide handle to the default backend.
var Default crypto.Provider = Provider{}

// TicketGenerator builds a fresh session-ticket generator keyed from
// the system CSPRNG.
func (Provider) TicketGenerator() (crypto.TicketGenerator, error) {
	return ticket.NewGenerator()
}

// FillRandom fills buf from the system CSPRNG.
func (Provider) FillRandom(buf []byte) error {
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return fmt.Errorf("%w: %v", crypto.ErrRandomGeneration, err)
	}
	return nil
}

// DefaultCipherSuites returns the endorsed suite list, most-preferred
// first.
func (Provider) DefaultCipherSuites() []*crypto.SupportedCipherSuite {
	return defaultCipherSuites
}

// KeyExchangeGroups returns every compiled-in group, most-preferred
// first.
func (Provider) KeyExchangeGroups() []crypto.SupportedGroup {
	return allKxGroups
}
