// Package cmds defines the modeling command catalog: one strongly-typed
// variant per operation a client can ask the engine to perform, plus
// the typed responses the engine sends back.
//
// Every command carries a stable snake_case wire tag returned by
// ModelingCmdName. Catalog evolution is append-only: new variants may
// be added, but existing tags and field meanings are never repurposed.
// Construction-time range checks live in each variant's Validate
// method; violations return *ValidationError and are never silently
// clamped.
//
// Commands are immutable value data. Variants that reference scene
// entities do so through ObjectID, which is either a concrete UUID, a
// symbolic variable name (resolved by the plan compiler), or a plan
// slot index (after compilation). Variants holding bulk binary data
// (mesh buffers, snapshots) carry it as opaque []byte so it crosses
// the wire without a second layer of structural encoding.
package cmds
