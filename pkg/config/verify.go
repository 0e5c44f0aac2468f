package config

import "time"

// ServerCertVerifier decides whether to trust the certificate chain a
// server presented during the handshake.
//
// Implementations receive the raw DER chain, leaf first, exactly as it
// arrived; parsing and policy are entirely theirs. Returning nil
// accepts the server. Implementations must be safe for concurrent use
// across handshakes.
type ServerCertVerifier interface {
	// VerifyServerCert checks rawCerts against serverName at time now.
	VerifyServerCert(rawCerts [][]byte, serverName string, now time.Time) error
}
