// Package wire is the versioned codec between in-memory commands or
// plans and their portable representations.
//
// The text form is internally tagged JSON: every command, response and
// instruction carries a "type" field naming its variant, and decoding
// rejects unknown tags and unknown fields so producer/consumer skew
// surfaces as an error instead of silent data loss. Forward tolerance
// is explicit: a decoder built with AllowUnknown skips unknown entries
// and reports their tags.
//
// The round-trip law holds for every valid value: decoding an encoding
// yields a structurally equal value, with float64 fields preserved to
// full precision and byte fields byte-for-byte.
//
// Canonical encoding (RFC 8785 key order, NFC strings, shortest
// numbers) exists for content addressing and golden tests; the framed
// binary form is the same JSON behind a uvarint length prefix.
package wire
