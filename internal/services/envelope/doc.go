// Package envelope implements the codec that turns plaintext into
// authenticated encrypted envelopes and back.
//
// Open enforces a strict order: freshness window first, then a
// constant-time signature check, then decryption. Expensive or
// oracle-prone work never runs on unauthenticated data, and every
// failure path returns no plaintext at all.
package envelope
