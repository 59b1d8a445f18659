// Package crypto exposes the primitives the cipher suite and envelope
// codec are built from.
//
// Contents
//
//   - RSA-4096 key pair generation and OAEP session-key wrapping
//     (GenerateKeyPair, WrapKey, UnwrapKey)
//   - Root symmetric key generation (NewSymmetricKey)
//   - HKDF-SHA256 per-purpose key derivation (DeriveKey)
//   - HMAC-SHA256 envelope signatures with constant-time verification
//     (Sign, Verify)
//   - Short public-key fingerprints for display and trust lookups
//     (Fingerprint)
//
// All functions are stateless. Callers should treat returned secrets as
// sensitive and rely on memzero.Zero when practical to reduce lifetime
// in memory.
package crypto
