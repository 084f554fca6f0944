package cmds

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/chiselcad/chisel/internal/geom"
)

// StartPath begins a new empty path. The engine replies with the new
// path's entity id.
type StartPath struct{}

// ModelingCmdName returns the command's stable wire tag.
func (StartPath) ModelingCmdName() string { return "start_path" }

// Validate enforces parameter constraints.
func (StartPath) Validate() error { return nil }

// MovePathPen moves the path's "pen" without drawing, starting the next
// segment at To.
type MovePathPen struct {
	// Path being edited.
	Path ObjectID `json:"path"`
	// To is where the pen should go.
	To geom.Point3D `json:"to"`
}

// ModelingCmdName returns the command's stable wire tag.
func (MovePathPen) ModelingCmdName() string { return "move_path_pen" }

// Validate enforces parameter constraints.
func (c MovePathPen) Validate() error {
	if err := wrapField("move_path_pen", "path", c.Path.Validate()); err != nil {
		return err
	}
	return wrapField("move_path_pen", "to", c.To.Validate())
}

// MapObjectIDs rewrites entity references.
func (c MovePathPen) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	p, err := fn(c.Path)
	if err != nil {
		return nil, err
	}
	c.Path = p
	return c, nil
}

// ExtendPath appends one segment to a path.
type ExtendPath struct {
	// Path being extended.
	Path ObjectID `json:"path"`
	// Segment to append.
	Segment PathSegment `json:"segment"`
}

// ModelingCmdName returns the command's stable wire tag.
func (ExtendPath) ModelingCmdName() string { return "extend_path" }

// Validate enforces parameter constraints.
func (c ExtendPath) Validate() error {
	if err := wrapField("extend_path", "path", c.Path.Validate()); err != nil {
		return err
	}
	if c.Segment == nil {
		return fieldError("extend_path", "segment", "segment is required")
	}
	return c.Segment.Validate()
}

// MapObjectIDs rewrites entity references.
func (c ExtendPath) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	p, err := fn(c.Path)
	if err != nil {
		return nil, err
	}
	c.Path = p
	return c, nil
}

// extendPathJSON is the wire shape; Segment needs tag dispatch.
type extendPathJSON struct {
	Path    ObjectID        `json:"path"`
	Segment json.RawMessage `json:"segment"`
}

// MarshalJSON encodes the segment with its type tag.
func (c ExtendPath) MarshalJSON() ([]byte, error) {
	if c.Segment == nil {
		return nil, fmt.Errorf("extend_path: segment is required")
	}
	seg, err := MarshalPathSegment(c.Segment)
	if err != nil {
		return nil, err
	}
	return json.Marshal(extendPathJSON{Path: c.Path, Segment: seg})
}

// UnmarshalJSON decodes the tagged segment, rejecting unknown fields.
func (c *ExtendPath) UnmarshalJSON(data []byte) error {
	var raw extendPathJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if len(raw.Segment) == 0 {
		return fmt.Errorf("extend_path: segment is required")
	}
	seg, err := UnmarshalPathSegment(raw.Segment)
	if err != nil {
		return err
	}
	c.Path = raw.Path
	c.Segment = seg
	return nil
}

// ClosePath closes a path, joining the pen back to the path's start.
type ClosePath struct {
	// PathID of the path to close.
	PathID ObjectID `json:"path_id"`
}

// ModelingCmdName returns the command's stable wire tag.
func (ClosePath) ModelingCmdName() string { return "close_path" }

// Validate enforces parameter constraints.
func (c ClosePath) Validate() error {
	return wrapField("close_path", "path_id", c.PathID.Validate())
}

// MapObjectIDs rewrites entity references.
func (c ClosePath) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	p, err := fn(c.PathID)
	if err != nil {
		return nil, err
	}
	c.PathID = p
	return c, nil
}
