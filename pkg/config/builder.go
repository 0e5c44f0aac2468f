package config

import (
	"github.com/strand-protocol/strand-go/pkg/crypto"
	"github.com/strand-protocol/strand-go/pkg/wire"
)

// Builder collects the negotiable parameters of a client
// configuration. It still wants a certificate verifier; no
// ClientConfig can be produced from this stage.
type Builder struct {
	provider crypto.Provider
	suites   []*crypto.SupportedCipherSuite
	groups   []crypto.SupportedGroup
	versions []wire.ProtocolVersion
}

// NewBuilder starts a configuration over the given backend, seeded
// with the backend's default cipher suites and key exchange groups and
// the default protocol versions.
func NewBuilder(p crypto.Provider) *Builder {
	return &Builder{
		provider: p,
		suites:   p.DefaultCipherSuites(),
		groups:   p.KeyExchangeGroups(),
		versions: wire.DefaultVersions(),
	}
}

// WithCipherSuites replaces the suite list, most-preferred first.
func (b *Builder) WithCipherSuites(suites []*crypto.SupportedCipherSuite) *Builder {
	b.suites = suites
	return b
}

// WithKeyExchangeGroups replaces the group list, most-preferred first.
// Every group must belong to the backend this Builder was started
// with.
func (b *Builder) WithKeyExchangeGroups(groups []crypto.SupportedGroup) *Builder {
	b.groups = groups
	return b
}

// WithProtocolVersions replaces the enabled protocol versions.
func (b *Builder) WithProtocolVersions(versions []wire.ProtocolVersion) *Builder {
	b.versions = versions
	return b
}

// WithCustomCertificateVerifier supplies the server certificate
// verifier and moves construction to the client-auth decision.
func (b *Builder) WithCustomCertificateVerifier(verifier ServerCertVerifier) *VerifiedBuilder {
	return &VerifiedBuilder{
		provider: b.provider,
		suites:   b.suites,
		groups:   b.groups,
		versions: b.versions,
		verifier: verifier,
	}
}

// VerifiedBuilder is a configuration that has its verifier and wants a
// client-auth decision.
type VerifiedBuilder struct {
	provider crypto.Provider
	suites   []*crypto.SupportedCipherSuite
	groups   []crypto.SupportedGroup
	versions []wire.ProtocolVersion
	verifier ServerCertVerifier
}

// WithNoClientAuth finishes the configuration with a resolver that
// always declines to present a client certificate.
func (b *VerifiedBuilder) WithNoClientAuth() *ClientConfig {
	return b.WithClientCertResolver(noClientAuth{})
}

// WithClientCertResolver finishes the configuration with the given
// client certificate resolver.
func (b *VerifiedBuilder) WithClientCertResolver(resolver ClientCertResolver) *ClientConfig {
	return &ClientConfig{
		provider: b.provider,
		suites:   b.suites,
		groups:   b.groups,
		versions: b.versions,
		verifier: b.verifier,
		resolver: resolver,
		keyLog:   NoKeyLog{},
		sni:      true,
	}
}

// ClientConfig is a finished client configuration. Only the builder
// path above can produce one, so a ClientConfig always carries a
// verifier and a client-auth decision.
//
// The negotiation tables are fixed at construction; the remaining
// knobs (ALPN, SNI, key logging) may be set before the config is
// handed to connections, after which it must be treated as immutable
// and may be shared freely.
type ClientConfig struct {
	provider crypto.Provider
	suites   []*crypto.SupportedCipherSuite
	groups   []crypto.SupportedGroup
	versions []wire.ProtocolVersion
	verifier ServerCertVerifier
	resolver ClientCertResolver

	keyLog        KeyLog
	alpnProtocols []string
	sni           bool
}

// Provider returns the backend this configuration is bound to.
func (c *ClientConfig) Provider() crypto.Provider {
	return c.provider
}

// CipherSuites returns the enabled suites, most-preferred first.
func (c *ClientConfig) CipherSuites() []*crypto.SupportedCipherSuite {
	return c.suites
}

// KeyExchangeGroups returns the enabled groups, most-preferred first.
func (c *ClientConfig) KeyExchangeGroups() []crypto.SupportedGroup {
	return c.groups
}

// Versions returns the enabled protocol versions.
func (c *ClientConfig) Versions() []wire.ProtocolVersion {
	return c.versions
}

// Verifier returns the server certificate verifier.
func (c *ClientConfig) Verifier() ServerCertVerifier {
	return c.verifier
}

// ClientCertResolver returns the client certificate resolver.
func (c *ClientConfig) ClientCertResolver() ClientCertResolver {
	return c.resolver
}

// KeyLog returns the key log sink, NoKeyLog unless overridden.
func (c *ClientConfig) KeyLog() KeyLog {
	return c.keyLog
}

// SetKeyLog installs a key log sink.
func (c *ClientConfig) SetKeyLog(kl KeyLog) {
	c.keyLog = kl
}

// ALPNProtocols returns the application protocols to offer, in
// preference order.
func (c *ClientConfig) ALPNProtocols() []string {
	return c.alpnProtocols
}

// SetALPNProtocols sets the application protocols to offer.
func (c *ClientConfig) SetALPNProtocols(protocols []string) {
	c.alpnProtocols = protocols
}

// EnableSNI reports whether the server name is sent in the clear
// during the handshake. On by default.
func (c *ClientConfig) EnableSNI() bool {
	return c.sni
}

// SetEnableSNI toggles sending the server name.
func (c *ClientConfig) SetEnableSNI(enable bool) {
	c.sni = enable
}
