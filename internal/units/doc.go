// Package units provides dimensioned scalar values for the modeling
// protocol.
//
// A Value pairs a float64 magnitude with a Unit. Units belong to a Kind
// (length or angle); conversion is only defined between units of the
// same kind and always produces a new Value, never mutating the source.
// Converting across kinds fails with *MismatchError.
//
// This package sits at the bottom of the import graph: every other
// internal package may import units; units imports nothing internal.
package units
