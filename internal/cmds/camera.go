package cmds

import "github.com/chiselcad/chisel/internal/geom"

// DefaultCameraLookAt aims the default camera.
type DefaultCameraLookAt struct {
	// Vantage is the camera position.
	Vantage geom.Point3D `json:"vantage"`
	// Center is the look-at point.
	Center geom.Point3D `json:"center"`
	// Up is the camera's up vector.
	Up geom.Point3D `json:"up"`
}

// ModelingCmdName returns the command's stable wire tag.
func (DefaultCameraLookAt) ModelingCmdName() string { return "default_camera_look_at" }

// Validate enforces parameter constraints.
func (c DefaultCameraLookAt) Validate() error {
	if err := wrapField("default_camera_look_at", "vantage", c.Vantage.Validate()); err != nil {
		return err
	}
	if err := wrapField("default_camera_look_at", "center", c.Center.Validate()); err != nil {
		return err
	}
	return wrapField("default_camera_look_at", "up", c.Up.Validate())
}

// DefaultCameraZoom zooms the default camera. The engine replies with
// the resulting camera settings.
type DefaultCameraZoom struct {
	// Magnitude of the zoom. Positive zooms in, negative zooms out;
	// zero is rejected because it is a no-op the client should not
	// send.
	Magnitude float64 `json:"magnitude"`
}

// ModelingCmdName returns the command's stable wire tag.
func (DefaultCameraZoom) ModelingCmdName() string { return "default_camera_zoom" }

// Validate enforces parameter constraints.
func (c DefaultCameraZoom) Validate() error {
	if err := requireFinite("default_camera_zoom", "magnitude", c.Magnitude); err != nil {
		return err
	}
	if c.Magnitude == 0 {
		return fieldError("default_camera_zoom", "magnitude", "must be non-zero")
	}
	return nil
}

// DefaultCameraPerspectiveSettings configures the default camera's
// perspective projection.
type DefaultCameraPerspectiveSettings struct {
	// Parameters of the perspective projection. FovY, when present,
	// must be in (0, 180) degrees; ZNear and ZFar must be positive
	// with ZNear < ZFar when both are present.
	Parameters PerspectiveCameraParameters `json:"parameters"`
}

// ModelingCmdName returns the command's stable wire tag.
func (DefaultCameraPerspectiveSettings) ModelingCmdName() string {
	return "default_camera_perspective_settings"
}

// Validate enforces parameter constraints.
func (c DefaultCameraPerspectiveSettings) Validate() error {
	p := c.Parameters
	if p.FovY != nil {
		if err := requireFinite("default_camera_perspective_settings", "parameters.fov_y", *p.FovY); err != nil {
			return err
		}
		if *p.FovY <= 0 || *p.FovY >= 180 {
			return fieldError("default_camera_perspective_settings", "parameters.fov_y",
				"must be in (0, 180) degrees, got %v", *p.FovY)
		}
	}
	if p.ZNear != nil {
		if err := requirePositive("default_camera_perspective_settings", "parameters.z_near", *p.ZNear); err != nil {
			return err
		}
	}
	if p.ZFar != nil {
		if err := requirePositive("default_camera_perspective_settings", "parameters.z_far", *p.ZFar); err != nil {
			return err
		}
	}
	if p.ZNear != nil && p.ZFar != nil && *p.ZNear >= *p.ZFar {
		return fieldError("default_camera_perspective_settings", "parameters.z_near",
			"near plane %v must be closer than far plane %v", *p.ZNear, *p.ZFar)
	}
	return nil
}

// CameraDragStart begins an interactive camera drag.
type CameraDragStart struct {
	// InteractionType of the drag.
	InteractionType CameraDragInteractionType `json:"interaction_type"`
	// Window is the drag's starting point in window coordinates.
	Window geom.Point2D `json:"window"`
}

// ModelingCmdName returns the command's stable wire tag.
func (CameraDragStart) ModelingCmdName() string { return "camera_drag_start" }

// Validate enforces parameter constraints.
func (c CameraDragStart) Validate() error {
	if !c.InteractionType.Valid() {
		return fieldError("camera_drag_start", "interaction_type", "unknown interaction type %q", c.InteractionType)
	}
	return wrapField("camera_drag_start", "window", c.Window.Validate())
}

// CameraDragMove continues an interactive camera drag. The engine
// replies with the in-flight camera settings.
type CameraDragMove struct {
	// InteractionType of the drag. Must match the drag's start.
	InteractionType CameraDragInteractionType `json:"interaction_type"`
	// Window is the pointer's current window position.
	Window geom.Point2D `json:"window"`
}

// ModelingCmdName returns the command's stable wire tag.
func (CameraDragMove) ModelingCmdName() string { return "camera_drag_move" }

// Validate enforces parameter constraints.
func (c CameraDragMove) Validate() error {
	if !c.InteractionType.Valid() {
		return fieldError("camera_drag_move", "interaction_type", "unknown interaction type %q", c.InteractionType)
	}
	return wrapField("camera_drag_move", "window", c.Window.Validate())
}

// CameraDragEnd finishes an interactive camera drag. The engine
// replies with the settled camera settings.
type CameraDragEnd struct {
	// InteractionType of the drag. Must match the drag's start.
	InteractionType CameraDragInteractionType `json:"interaction_type"`
	// Window is the pointer's final window position.
	Window geom.Point2D `json:"window"`
}

// ModelingCmdName returns the command's stable wire tag.
func (CameraDragEnd) ModelingCmdName() string { return "camera_drag_end" }

// Validate enforces parameter constraints.
func (c CameraDragEnd) Validate() error {
	if !c.InteractionType.Valid() {
		return fieldError("camera_drag_end", "interaction_type", "unknown interaction type %q", c.InteractionType)
	}
	return wrapField("camera_drag_end", "window", c.Window.Validate())
}

// ZoomToFit frames the given entities (or the whole scene when empty)
// in the view. The engine replies with the resulting camera settings.
type ZoomToFit struct {
	// ObjectIDs to frame. Empty frames everything.
	ObjectIDs []ObjectID `json:"object_ids"`
	// Padding around the framed objects as a fraction of the view,
	// in [0, 1].
	Padding float64 `json:"padding"`
}

// ModelingCmdName returns the command's stable wire tag.
func (ZoomToFit) ModelingCmdName() string { return "zoom_to_fit" }

// Validate enforces parameter constraints.
func (c ZoomToFit) Validate() error {
	for _, id := range c.ObjectIDs {
		if err := wrapField("zoom_to_fit", "object_ids", id.Validate()); err != nil {
			return err
		}
	}
	return requireRange("zoom_to_fit", "padding", c.Padding, 0, 1)
}

// MapObjectIDs rewrites entity references.
func (c ZoomToFit) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	mapped, err := mapEntityList(c.ObjectIDs, fn)
	if err != nil {
		return nil, err
	}
	c.ObjectIDs = mapped
	return c, nil
}

// ViewIsometric snaps the camera to the isometric view. The engine
// replies with the resulting camera settings.
type ViewIsometric struct{}

// ModelingCmdName returns the command's stable wire tag.
func (ViewIsometric) ModelingCmdName() string { return "view_isometric" }

// Validate enforces parameter constraints.
func (ViewIsometric) Validate() error { return nil }
