// Package suite implements the four-tier cipher suite engine.
//
// Each tier is a pure function of (plaintext, key material, fresh
// randomness); no tier reads or writes shared state. Dispatch on the
// level enum is exhaustive and level-aware: a blob produced under one
// tier never decrypts under another.
//
// Tier formats (all lengths in bytes):
//
//	basic        nonce(12) || aead-sealed
//	enhanced     nonce(16) || tag(16) || ciphertext
//	military     wrapped-session-key(512) || nonce(16) || tag(16) || ciphertext
//	quantum-prep sha3-512(64) || military-payload || sha-512(64)
//
// Basic uses ChaCha20-Poly1305 under the root symmetric key. Enhanced
// uses AES-256-GCM under an HKDF-derived key. Military bulk-encrypts
// with the enhanced framing under a fresh session key and wraps that
// key RSA-OAEP to the device's 4096-bit public key. QuantumPrep is a
// tamper-evidence placeholder reserved for a future post-quantum
// substitution; the cascaded digests carry no quantum-resistance claim.
package suite
