// Package trust records and queries trusted remote devices by public
// key fingerprint.
//
// Trust is advisory metadata for the caller: the seal/open path never
// consults it, and no automatic trust escalation ever happens. A trust
// level changes only through an explicit VerifyDevice call.
package trust
