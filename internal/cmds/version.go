package cmds

// Version constants for the command protocol.
const (
	// ProtocolVersion is the wire protocol schema version. Bumped only
	// for incompatible changes; the catalog itself evolves by
	// appending variants under the same version.
	ProtocolVersion = "1"

	// LibraryVersion is the chisel library version.
	LibraryVersion = "0.1.0"
)
