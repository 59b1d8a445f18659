// Package app wires stores and services into the subsystem's boundary
// surface. Configuration is explicit: no ambient singletons, no
// environment lookups.
package app
