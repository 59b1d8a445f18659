// Package keys implements the key store service: generation, lazy
// expiry-driven rotation and fingerprints for per-device key material.
//
// Rotation is checked on use, not on a timer, and is serialised per
// device ID: concurrent callers encrypting under the same device never
// observe a half-rotated record and never trigger redundant
// regenerations.
package keys
