package config

// KeyLog receives handshake secrets for debugging, in the spirit of
// SSLKEYLOGFILE. Anything written here defeats the secrecy of the
// connection; production configurations keep the default NoKeyLog.
type KeyLog interface {
	// Log records a secret under its key-schedule label, bound to the
	// connection's client random. Implementations must copy the
	// slices if they keep them.
	Log(label string, clientRandom, secret []byte)
}

// NoKeyLog discards everything. The default.
type NoKeyLog struct{}

// Log discards the secret.
func (NoKeyLog) Log(string, []byte, []byte) {}
