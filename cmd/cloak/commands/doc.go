// Package commands implements the cloak CLI.
//
// The CLI is a demonstration caller for the encryption subsystem: it
// seals and opens JSON-encoded envelopes, manages device trust and
// reports status. A real transport would carry the same envelopes in
// whatever encoding it prefers.
package commands
