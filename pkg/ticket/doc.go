// Package ticket implements session-ticket encryption for the default
// Strand backend.
//
// A ticket is state the server would rather not keep, sealed with
// ChaCha20-Poly1305 under a key that lives only in process memory and
// handed to the client as an opaque token. The client returns it on
// reconnection; if the server can still open it, the session resumes
// without a full handshake.
//
// Tickets are wrapped in a small CBOR envelope carrying the key name
// and nonce. The key name lets a server rotate generators and discard
// tickets sealed under retired keys without attempting decryption.
//
// Decrypt answers only "valid" or nil. Expired, tampered, foreign and
// malformed tickets are indistinguishable to the caller, and therefore
// to the peer.
package ticket
