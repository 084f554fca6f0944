// Package schema carries the machine-readable catalog of the command
// protocol and validates raw payloads against it.
//
// The catalog is an embedded CUE document with one closed definition
// per command tag. Validation happens on bytes, before decoding into
// Go values, so a caller can reject malformed input without trusting
// the sender's encoder. Export produces a deterministic description of
// the catalog for tooling and documentation.
//
// Layering: schema depends on nothing above it. The cmds package and
// the catalog describe the same protocol; TestCatalogCoversRegistry
// keeps them aligned.
package schema
