// Package journal is an append-only SQLite log of wire-encoded
// commands, plans and responses.
//
// The journal stores encodings verbatim; serialization guarantees come
// from the wire package, and rows are deduplicated by content id, so
// re-appending the same command or plan is a no-op. Commands carry a
// strictly increasing sequence number from a logical clock, which
// makes replay order deterministic and lets a restarted session resume
// from the last recorded position.
//
// SQLite runs in WAL mode with a single writer connection; concurrent
// readers are fine, concurrent writers would trade correctness for
// SQLITE_BUSY errors.
package journal
