package cmds

import (
	"github.com/google/uuid"

	"github.com/chiselcad/chisel/internal/geom"
	"github.com/chiselcad/chisel/internal/units"
)

// Extrude sweeps a closed sketch into a solid along its normal.
type Extrude struct {
	// Target is the closed path to extrude.
	Target ObjectID `json:"target"`
	// Distance to extrude. Must be a positive length.
	Distance units.Value `json:"distance"`
	// Cap closes the top face of the extrusion.
	Cap bool `json:"cap"`
}

// ModelingCmdName returns the command's stable wire tag.
func (Extrude) ModelingCmdName() string { return "extrude" }

// Validate enforces parameter constraints.
func (c Extrude) Validate() error {
	if err := wrapField("extrude", "target", c.Target.Validate()); err != nil {
		return err
	}
	if c.Distance.Unit.Kind() != units.KindLength {
		return fieldError("extrude", "distance", "requires a length unit, got %q", c.Distance.Unit)
	}
	return requirePositive("extrude", "distance", c.Distance.Magnitude)
}

// MapObjectIDs rewrites entity references.
func (c Extrude) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	t, err := fn(c.Target)
	if err != nil {
		return nil, err
	}
	c.Target = t
	return c, nil
}

// Solid3DFilletEdge cuts (fillets or chamfers) an edge of a solid.
type Solid3DFilletEdge struct {
	// ObjectID of the solid whose edge is cut.
	ObjectID ObjectID `json:"object_id"`
	// EdgeID of the edge to cut.
	EdgeID uuid.UUID `json:"edge_id"`
	// Radius of the cut. Must be a positive length.
	Radius units.Value `json:"radius"`
	// Tolerance for the cut computation. Must be positive.
	Tolerance float64 `json:"tolerance"`
	// CutType selects fillet or chamfer.
	CutType CutType `json:"cut_type"`
}

// ModelingCmdName returns the command's stable wire tag.
func (Solid3DFilletEdge) ModelingCmdName() string { return "solid3d_fillet_edge" }

// Validate enforces parameter constraints.
func (c Solid3DFilletEdge) Validate() error {
	if err := wrapField("solid3d_fillet_edge", "object_id", c.ObjectID.Validate()); err != nil {
		return err
	}
	if c.Radius.Unit.Kind() != units.KindLength {
		return fieldError("solid3d_fillet_edge", "radius", "requires a length unit, got %q", c.Radius.Unit)
	}
	if err := requirePositive("solid3d_fillet_edge", "radius", c.Radius.Magnitude); err != nil {
		return err
	}
	if err := requirePositive("solid3d_fillet_edge", "tolerance", c.Tolerance); err != nil {
		return err
	}
	if !c.CutType.Valid() {
		return fieldError("solid3d_fillet_edge", "cut_type", "unknown cut type %q", c.CutType)
	}
	return nil
}

// MapObjectIDs rewrites entity references.
func (c Solid3DFilletEdge) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	o, err := fn(c.ObjectID)
	if err != nil {
		return nil, err
	}
	c.ObjectID = o
	return c, nil
}

// EntityLinearPatternTransform replicates an entity once per transform
// in the list.
type EntityLinearPatternTransform struct {
	// EntityID of the entity being replicated.
	EntityID ObjectID `json:"entity_id"`
	// Transform holds one entry per desired replica.
	Transform []LinearTransform `json:"transform"`
}

// ModelingCmdName returns the command's stable wire tag.
func (EntityLinearPatternTransform) ModelingCmdName() string {
	return "entity_linear_pattern_transform"
}

// Validate enforces parameter constraints.
func (c EntityLinearPatternTransform) Validate() error {
	if err := wrapField("entity_linear_pattern_transform", "entity_id", c.EntityID.Validate()); err != nil {
		return err
	}
	if len(c.Transform) == 0 {
		return fieldError("entity_linear_pattern_transform", "transform", "at least one transform is required")
	}
	for _, t := range c.Transform {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MapObjectIDs rewrites entity references.
func (c EntityLinearPatternTransform) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	e, err := fn(c.EntityID)
	if err != nil {
		return nil, err
	}
	c.EntityID = e
	return c, nil
}

// EntityMirror mirrors entities across a plane through Point, normal
// to Axis.
type EntityMirror struct {
	// IDs of the entities to mirror.
	IDs []ObjectID `json:"ids"`
	// Axis normal to the mirror plane.
	Axis GlobalAxis `json:"axis"`
	// Point the mirror plane passes through.
	Point geom.Point3D `json:"point"`
}

// ModelingCmdName returns the command's stable wire tag.
func (EntityMirror) ModelingCmdName() string { return "entity_mirror" }

// Validate enforces parameter constraints.
func (c EntityMirror) Validate() error {
	if len(c.IDs) == 0 {
		return fieldError("entity_mirror", "ids", "at least one entity is required")
	}
	for _, id := range c.IDs {
		if err := wrapField("entity_mirror", "ids", id.Validate()); err != nil {
			return err
		}
	}
	if !c.Axis.Valid() {
		return fieldError("entity_mirror", "axis", "unknown axis %q", c.Axis)
	}
	return wrapField("entity_mirror", "point", c.Point.Validate())
}

// MapObjectIDs rewrites entity references.
func (c EntityMirror) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	ids := make([]ObjectID, len(c.IDs))
	for i, id := range c.IDs {
		mapped, err := fn(id)
		if err != nil {
			return nil, err
		}
		ids[i] = mapped
	}
	c.IDs = ids
	return c, nil
}

// MakePlane creates a construction plane. The engine replies with the
// plane's entity id.
type MakePlane struct {
	// Origin of the plane.
	Origin geom.Point3D `json:"origin"`
	// XAxis direction of the plane's local x.
	XAxis geom.Point3D `json:"x_axis"`
	// YAxis direction of the plane's local y.
	YAxis geom.Point3D `json:"y_axis"`
	// Size is the rendered extent of the plane. Must be a positive
	// length.
	Size units.Value `json:"size"`
	// Clobber replaces any plane with the same id.
	Clobber bool `json:"clobber"`
	// Hide creates the plane without showing it.
	Hide bool `json:"hide"`
}

// ModelingCmdName returns the command's stable wire tag.
func (MakePlane) ModelingCmdName() string { return "make_plane" }

// Validate enforces parameter constraints.
func (c MakePlane) Validate() error {
	if err := wrapField("make_plane", "origin", c.Origin.Validate()); err != nil {
		return err
	}
	if err := wrapField("make_plane", "x_axis", c.XAxis.Validate()); err != nil {
		return err
	}
	if err := wrapField("make_plane", "y_axis", c.YAxis.Validate()); err != nil {
		return err
	}
	if c.Size.Unit.Kind() != units.KindLength {
		return fieldError("make_plane", "size", "requires a length unit, got %q", c.Size.Unit)
	}
	return requirePositive("make_plane", "size", c.Size.Magnitude)
}
