// Package store provides file-based persistence for Cloak's state.
//
// It contains concrete implementations of the domain storage
// interfaces, serialising data as JSON on disk with owner-only
// permissions. Writes go to a temp file in the same directory followed
// by an atomic rename, so a crash mid-write never corrupts a
// previously valid file. All methods are concurrency-safe via internal
// locking.
//
// The package includes:
//   - Key material (KeyFile) — sealed at rest under a key derived from
//     a per-store machine secret
//   - Trust records (TrustFile) — public material, plain JSON
package store
