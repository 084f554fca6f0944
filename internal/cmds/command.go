package cmds

// Command is a single typed modeling operation request.
//
// Implementations are value types: mutating helpers like MapObjectIDs
// return modified copies, leaving the original untouched.
type Command interface {
	// ModelingCmdName returns the command's stable wire tag.
	ModelingCmdName() string
	// Validate enforces the documented range of every parameter,
	// returning *ValidationError on the first violation.
	Validate() error
}

// RefBearing is implemented by commands whose parameters reference
// scene entities. The plan compiler uses it to find and rewrite
// symbolic references without knowing each command's shape.
type RefBearing interface {
	Command
	// MapObjectIDs applies fn to every entity reference in the
	// command, returning a copy with the results substituted.
	MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error)
}

// Response is the typed result of executing a command. Payload shapes
// are shared across command families; correlation travels on the
// envelope, which carries the originating command's tag and id.
type Response interface {
	// response marks the closed set of payload shapes in this package.
	response()
}
