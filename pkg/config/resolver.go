package config

import stdcrypto "crypto"

// ClientCertificate is a certificate chain and its signing key, offered
// for client authentication.
type ClientCertificate struct {
	// Chain is the DER-encoded certificate chain, leaf first.
	Chain [][]byte

	// PrivateKey is the leaf certificate's signing key.
	PrivateKey stdcrypto.Signer
}

// ClientCertResolver chooses a client certificate when the server
// requests one. Implementations must be safe for concurrent use and
// must return promptly; a resolver that blocks stalls the handshake.
type ClientCertResolver interface {
	// ResolveClientCert picks a certificate acceptable to the issuers
	// the server named (DER-encoded distinguished names). Returning
	// (nil, false) declines; the handshake proceeds without client
	// auth and the server decides whether that is acceptable.
	ResolveClientCert(acceptableIssuers [][]byte) (*ClientCertificate, bool)

	// HasCerts reports whether this resolver could ever produce a
	// certificate. Used to decide whether to advertise client-auth
	// capability at all.
	HasCerts() bool
}

// noClientAuth declines every certificate request. Installed by
// WithNoClientAuth.
type noClientAuth struct{}

func (noClientAuth) ResolveClientCert([][]byte) (*ClientCertificate, bool) {
	return nil, false
}

func (noClientAuth) HasCerts() bool {
	return false
}
