// Package domain defines the types shared across Cloak.
//
// It contains the key material record, the encryption level and message
// type enums, the encrypted envelope that crosses the subsystem
// boundary, trust records, the error taxonomy, and the store/service
// interfaces implemented by internal/store and internal/services.
package domain
