// Package config assembles client configurations for the Strand
// protocol engine.
//
// Construction is staged so that an incomplete configuration cannot be
// observed. A Builder collects cipher suites, key exchange groups and
// protocol versions; supplying a certificate verifier moves it to a
// VerifiedBuilder; only then can a client-auth decision produce a
// ClientConfig. There is no other path to a ClientConfig, so every
// config is guaranteed to carry a verifier.
//
// The explicit WithNoClientAuth step installs a resolver that always
// declines to present a certificate. "I will not authenticate" is an
// auditable decision, distinct from an unconfigured resolver.
//
// This staged continuation lives in the core rather than in any
// backend: if each backend contributed its own builder steps, two
// backends could not be linked into one program without their
// extensions colliding. The core owns the extension point and backends
// plug in underneath it.
package config
