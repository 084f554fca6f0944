package cmds

import (
	"github.com/chiselcad/chisel/internal/geom"
	"github.com/chiselcad/chisel/internal/units"
)

// SelectWithPoint selects whatever lies under a window-space point.
// The engine replies with the selected entity ids.
type SelectWithPoint struct {
	// SelectedAtWindow is the pick location in window coordinates.
	SelectedAtWindow geom.Point2D `json:"selected_at_window"`
	// SelectionType says how the pick interacts with the current
	// selection set.
	SelectionType SceneSelectionType `json:"selection_type"`
}

// ModelingCmdName returns the command's stable wire tag.
func (SelectWithPoint) ModelingCmdName() string { return "select_with_point" }

// Validate enforces parameter constraints.
func (c SelectWithPoint) Validate() error {
	if err := wrapField("select_with_point", "selected_at_window", c.SelectedAtWindow.Validate()); err != nil {
		return err
	}
	if !c.SelectionType.Valid() {
		return fieldError("select_with_point", "selection_type", "unknown selection type %q", c.SelectionType)
	}
	return nil
}

// SelectAdd adds entities to the current selection.
type SelectAdd struct {
	// Entities to add.
	Entities []ObjectID `json:"entities"`
}

// ModelingCmdName returns the command's stable wire tag.
func (SelectAdd) ModelingCmdName() string { return "select_add" }

// Validate enforces parameter constraints.
func (c SelectAdd) Validate() error { return validateEntityList("select_add", c.Entities) }

// MapObjectIDs rewrites entity references.
func (c SelectAdd) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	mapped, err := mapEntityList(c.Entities, fn)
	if err != nil {
		return nil, err
	}
	c.Entities = mapped
	return c, nil
}

// SelectRemove removes entities from the current selection.
type SelectRemove struct {
	// Entities to remove.
	Entities []ObjectID `json:"entities"`
}

// ModelingCmdName returns the command's stable wire tag.
func (SelectRemove) ModelingCmdName() string { return "select_remove" }

// Validate enforces parameter constraints.
func (c SelectRemove) Validate() error { return validateEntityList("select_remove", c.Entities) }

// MapObjectIDs rewrites entity references.
func (c SelectRemove) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	mapped, err := mapEntityList(c.Entities, fn)
	if err != nil {
		return nil, err
	}
	c.Entities = mapped
	return c, nil
}

// SelectClear empties the current selection.
type SelectClear struct{}

// ModelingCmdName returns the command's stable wire tag.
func (SelectClear) ModelingCmdName() string { return "select_clear" }

// Validate enforces parameter constraints.
func (SelectClear) Validate() error { return nil }

func validateEntityList(cmd string, ids []ObjectID) error {
	if len(ids) == 0 {
		return fieldError(cmd, "entities", "at least one entity is required")
	}
	for _, id := range ids {
		if err := wrapField(cmd, "entities", id.Validate()); err != nil {
			return err
		}
	}
	return nil
}

func mapEntityList(ids []ObjectID, fn func(ObjectID) (ObjectID, error)) ([]ObjectID, error) {
	out := make([]ObjectID, len(ids))
	for i, id := range ids {
		mapped, err := fn(id)
		if err != nil {
			return nil, err
		}
		out[i] = mapped
	}
	return out, nil
}

// ObjectVisible shows or hides an object.
type ObjectVisible struct {
	// ObjectID of the object.
	ObjectID ObjectID `json:"object_id"`
	// Hidden hides the object when true.
	Hidden bool `json:"hidden"`
}

// ModelingCmdName returns the command's stable wire tag.
func (ObjectVisible) ModelingCmdName() string { return "object_visible" }

// Validate enforces parameter constraints.
func (c ObjectVisible) Validate() error {
	return wrapField("object_visible", "object_id", c.ObjectID.Validate())
}

// MapObjectIDs rewrites entity references.
func (c ObjectVisible) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	o, err := fn(c.ObjectID)
	if err != nil {
		return nil, err
	}
	c.ObjectID = o
	return c, nil
}

// SetTool changes the scene's active tool.
type SetTool struct {
	// Tool to activate.
	Tool SceneToolType `json:"tool"`
}

// ModelingCmdName returns the command's stable wire tag.
func (SetTool) ModelingCmdName() string { return "set_tool" }

// Validate enforces parameter constraints.
func (c SetTool) Validate() error {
	if !c.Tool.Valid() {
		return fieldError("set_tool", "tool", "unknown tool %q", c.Tool)
	}
	return nil
}

// SetBackgroundColor changes the scene background.
type SetBackgroundColor struct {
	// Color to set.
	Color geom.Color `json:"color"`
}

// ModelingCmdName returns the command's stable wire tag.
func (SetBackgroundColor) ModelingCmdName() string { return "set_background_color" }

// Validate enforces parameter constraints.
func (c SetBackgroundColor) Validate() error {
	return wrapField("set_background_color", "color", c.Color.Validate())
}

// SetSceneUnits declares which length unit scene coordinates are in.
type SetSceneUnits struct {
	// Unit for scene lengths. Must be a length unit.
	Unit units.Unit `json:"unit"`
}

// ModelingCmdName returns the command's stable wire tag.
func (SetSceneUnits) ModelingCmdName() string { return "set_scene_units" }

// Validate enforces parameter constraints.
func (c SetSceneUnits) Validate() error {
	if c.Unit.Kind() != units.KindLength {
		return fieldError("set_scene_units", "unit", "requires a length unit, got %q", c.Unit)
	}
	return nil
}

// SetPostEffect selects the renderer's post effect.
type SetPostEffect struct {
	// EffectType to apply.
	EffectType PostEffectType `json:"effect_type"`
}

// ModelingCmdName returns the command's stable wire tag.
func (SetPostEffect) ModelingCmdName() string { return "set_post_effect" }

// Validate enforces parameter constraints.
func (c SetPostEffect) Validate() error {
	if !c.EffectType.Valid() {
		return fieldError("set_post_effect", "effect_type", "unknown post effect %q", c.EffectType)
	}
	return nil
}

// EnableSketchMode enters sketch mode on a plane or planar face.
type EnableSketchMode struct {
	// EntityID of the plane or face to sketch on.
	EntityID ObjectID `json:"entity_id"`
	// Ortho switches the camera to orthographic for the sketch.
	Ortho bool `json:"ortho"`
	// Animated eases the camera into place.
	Animated bool `json:"animated"`
	// AdjustCamera re-aims the camera at the sketch plane.
	AdjustCamera bool `json:"adjust_camera"`
}

// ModelingCmdName returns the command's stable wire tag.
func (EnableSketchMode) ModelingCmdName() string { return "enable_sketch_mode" }

// Validate enforces parameter constraints.
func (c EnableSketchMode) Validate() error {
	return wrapField("enable_sketch_mode", "entity_id", c.EntityID.Validate())
}

// MapObjectIDs rewrites entity references.
func (c EnableSketchMode) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	e, err := fn(c.EntityID)
	if err != nil {
		return nil, err
	}
	c.EntityID = e
	return c, nil
}

// SketchModeDisable leaves sketch mode.
type SketchModeDisable struct{}

// ModelingCmdName returns the command's stable wire tag.
func (SketchModeDisable) ModelingCmdName() string { return "sketch_mode_disable" }

// Validate enforces parameter constraints.
func (SketchModeDisable) Validate() error { return nil }
