package cmds

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Codec holds the decode functions registered for one command tag.
// Decoding is total over the schema: unknown fields are rejected, and
// the decoded value is returned untouched (validation is the caller's
// separate, explicit step).
type Codec struct {
	// Tag is the command's wire tag.
	Tag string
	// DecodeCommand decodes the command payload (fields other than the
	// envelope tag).
	DecodeCommand func(data []byte) (Command, error)
	// DecodeResponse decodes the payload of this command's response.
	DecodeResponse func(data []byte) (Response, error)
}

func decodeCommand[T Command](data []byte) (Command, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeResponse[T Response](data []byte) (Response, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func register[C Command, R Response](m map[string]Codec, tag string) {
	m[tag] = Codec{
		Tag:            tag,
		DecodeCommand:  decodeCommand[C],
		DecodeResponse: decodeResponse[R],
	}
}

// registry pairs every command tag with its decode functions. The
// catalog is append-only: entries are added, never removed or
// repurposed.
var registry = buildRegistry()

func buildRegistry() map[string]Codec {
	m := make(map[string]Codec)

	// Sketching.
	register[StartPath, NewEntityID](m, "start_path")
	register[MovePathPen, Empty](m, "move_path_pen")
	register[ExtendPath, Empty](m, "extend_path")
	register[ClosePath, Empty](m, "close_path")

	// Solids.
	register[Extrude, NewEntityID](m, "extrude")
	register[Solid3DFilletEdge, Empty](m, "solid3d_fillet_edge")
	register[EntityLinearPatternTransform, Selection](m, "entity_linear_pattern_transform")
	register[EntityMirror, Selection](m, "entity_mirror")
	register[MakePlane, NewEntityID](m, "make_plane")

	// Scene.
	register[SelectWithPoint, Selection](m, "select_with_point")
	register[SelectAdd, Empty](m, "select_add")
	register[SelectRemove, Empty](m, "select_remove")
	register[SelectClear, Empty](m, "select_clear")
	register[ObjectVisible, Empty](m, "object_visible")
	register[SetTool, Empty](m, "set_tool")
	register[SetBackgroundColor, Empty](m, "set_background_color")
	register[SetSceneUnits, Empty](m, "set_scene_units")
	register[SetPostEffect, Empty](m, "set_post_effect")
	register[EnableSketchMode, Empty](m, "enable_sketch_mode")
	register[SketchModeDisable, Empty](m, "sketch_mode_disable")

	// Camera.
	register[DefaultCameraLookAt, Empty](m, "default_camera_look_at")
	register[DefaultCameraZoom, CameraView](m, "default_camera_zoom")
	register[DefaultCameraPerspectiveSettings, Empty](m, "default_camera_perspective_settings")
	register[CameraDragStart, Empty](m, "camera_drag_start")
	register[CameraDragMove, CameraView](m, "camera_drag_move")
	register[CameraDragEnd, CameraView](m, "camera_drag_end")
	register[ZoomToFit, CameraView](m, "zoom_to_fit")
	register[ViewIsometric, CameraView](m, "view_isometric")

	// Annotations.
	register[NewAnnotation, NewEntityID](m, "new_annotation")
	register[EditAnnotation, Empty](m, "edit_annotation")

	// Import/export.
	register[Export, ExportData](m, "export")
	register[ImportFiles, NewEntityID](m, "import_files")
	register[TakeSnapshot, Snapshot](m, "take_snapshot")

	return m
}

// Lookup returns the codec registered for a tag.
func Lookup(tag string) (Codec, bool) {
	c, ok := registry[tag]
	return c, ok
}

// Tags returns every registered command tag in sorted order.
// The ordering is stable so schema exports and goldens are
// deterministic.
func Tags() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
