package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-protocol/strand-go/pkg/config"
	"github.com/strand-protocol/strand-go/pkg/crypto"
	"github.com/strand-protocol/strand-go/pkg/provider"
	"github.com/strand-protocol/strand-go/pkg/wire"
)

// acceptAll is a test verifier that trusts everything.
type acceptAll struct{}

func (acceptAll) VerifyServerCert([][]byte, string, time.Time) error {
	return nil
}

// rejectAll is a test verifier that trusts nothing.
type rejectAll struct{}

func (rejectAll) VerifyServerCert([][]byte, string, time.Time) error {
	return errors.New("rejected")
}

func TestBuilderDefaults(t *testing.T) {
	cfg := config.NewBuilder(provider.Default).
		WithCustomCertificateVerifier(acceptAll{}).
		WithNoClientAuth()

	assert.Equal(t, provider.Default, cfg.Provider())
	assert.Equal(t, provider.Default.DefaultCipherSuites(), cfg.CipherSuites())
	assert.Equal(t, provider.Default.KeyExchangeGroups(), cfg.KeyExchangeGroups())
	assert.Equal(t, wire.DefaultVersions(), cfg.Versions())
	assert.True(t, cfg.EnableSNI())
	assert.Empty(t, cfg.ALPNProtocols())
	assert.IsType(t, config.NoKeyLog{}, cfg.KeyLog())
}

func TestBuilderCarriesAccumulatedState(t *testing.T) {
	suites := []*crypto.SupportedCipherSuite{provider.AES128GCMSHA256}
	groups := []crypto.SupportedGroup{provider.X25519}

	cfg := config.NewBuilder(provider.Default).
		WithCipherSuites(suites).
		WithKeyExchangeGroups(groups).
		WithProtocolVersions([]wire.ProtocolVersion{wire.Version13}).
		WithCustomCertificateVerifier(rejectAll{}).
		WithNoClientAuth()

	assert.Equal(t, suites, cfg.CipherSuites())
	assert.Equal(t, groups, cfg.KeyExchangeGroups())
	assert.Equal(t, []wire.ProtocolVersion{wire.Version13}, cfg.Versions())

	// The verifier supplied mid-chain survives to the config.
	require.NotNil(t, cfg.Verifier())
	assert.Error(t, cfg.Verifier().VerifyServerCert(nil, "example.com", time.Now()))
}

func TestNoClientAuthResolver(t *testing.T) {
	cfg := config.NewBuilder(provider.Default).
		WithCustomCertificateVerifier(acceptAll{}).
		WithNoClientAuth()

	resolver := cfg.ClientCertResolver()
	require.NotNil(t, resolver)
	assert.False(t, resolver.HasCerts())

	// Declines promptly, whatever the server asks for.
	for _, issuers := range [][][]byte{nil, {}, {[]byte("CN=Some CA")}} {
		cert, ok := resolver.ResolveClientCert(issuers)
		assert.Nil(t, cert)
		assert.False(t, ok)
	}
}

// customResolver is a test resolver that always offers one chain.
type customResolver struct {
	chain [][]byte
}

func (r *customResolver) ResolveClientCert([][]byte) (*config.ClientCertificate, bool) {
	return &config.ClientCertificate{Chain: r.chain}, true
}

func (r *customResolver) HasCerts() bool {
	return true
}

func TestWithClientCertResolver(t *testing.T) {
	resolver := &customResolver{chain: [][]byte{[]byte("leaf der")}}

	cfg := config.NewBuilder(provider.Default).
		WithCustomCertificateVerifier(acceptAll{}).
		WithClientCertResolver(resolver)

	require.True(t, cfg.ClientCertResolver().HasCerts())
	cert, ok := cfg.ClientCertResolver().ResolveClientCert(nil)
	require.True(t, ok)
	assert.Equal(t, [][]byte{[]byte("leaf der")}, cert.Chain)
}

func TestConfigKnobs(t *testing.T) {
	cfg := config.NewBuilder(provider.Default).
		WithCustomCertificateVerifier(acceptAll{}).
		WithNoClientAuth()

	cfg.SetALPNProtocols([]string{"strand/1"})
	cfg.SetEnableSNI(false)

	assert.Equal(t, []string{"strand/1"}, cfg.ALPNProtocols())
	assert.False(t, cfg.EnableSNI())

	logged := 0
	cfg.SetKeyLog(countingKeyLog{&logged})
	cfg.KeyLog().Log("CLIENT_HANDSHAKE_TRAFFIC_SECRET", []byte("rnd"), []byte("sec"))
	assert.Equal(t, 1, logged)
}

type countingKeyLog struct {
	calls *int
}

func (k countingKeyLog) Log(string, []byte, []byte) {
	*k.calls++
}

func TestNoKeyLogDiscards(t *testing.T) {
	// Just must not panic or retain anything.
	config.NoKeyLog{}.Log("label", nil, nil)
	config.NoKeyLog{}.Log("label", []byte("r"), []byte("s"))
}
