// Package orchestrator wires the builder → selector → renderer → validator
// pipeline behind a single entry point. Every stage can be replaced through
// functional options; missing stages fall back to the built-in
// implementations.
package orchestrator
