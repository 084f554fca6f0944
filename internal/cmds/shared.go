package cmds

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/chiselcad/chisel/internal/geom"
	"github.com/chiselcad/chisel/internal/units"
)

// PathSegment is one segment of a sketched path. Segments form a small
// closed sum; on the wire each carries a "type" tag alongside its
// fields, mirroring the command envelope layout.
type PathSegment interface {
	// SegmentName returns the segment's stable wire tag.
	SegmentName() string
	// Validate enforces the segment's numeric constraints.
	Validate() error
}

// SegmentLine is a straight line from the current path pen to End.
type SegmentLine struct {
	// End point of the line.
	End geom.Point3D `json:"end"`
	// Relative makes End an offset from the pen rather than absolute.
	Relative bool `json:"relative"`
}

// SegmentName returns the segment's wire tag.
func (SegmentLine) SegmentName() string { return "line" }

// Validate enforces the segment's numeric constraints.
func (s SegmentLine) Validate() error {
	return wrapField("extend_path", "segment.end", s.End.Validate())
}

// SegmentArc is a circular arc. Arcs run clockwise when start > end.
type SegmentArc struct {
	// Center of the circle.
	Center geom.Point2D `json:"center"`
	// Radius of the circle. Must be a positive length.
	Radius units.Value `json:"radius"`
	// Start of the arc along the circle's perimeter.
	Start units.Angle `json:"start"`
	// End of the arc along the circle's perimeter.
	End units.Angle `json:"end"`
	// Relative makes the center an offset from the pen.
	Relative bool `json:"relative"`
}

// SegmentName returns the segment's wire tag.
func (SegmentArc) SegmentName() string { return "arc" }

// Validate enforces the segment's numeric constraints.
func (s SegmentArc) Validate() error {
	if err := wrapField("extend_path", "segment.center", s.Center.Validate()); err != nil {
		return err
	}
	if s.Radius.Unit.Kind() != units.KindLength {
		return fieldError("extend_path", "segment.radius", "requires a length unit, got %q", s.Radius.Unit)
	}
	if err := requirePositive("extend_path", "segment.radius", s.Radius.Magnitude); err != nil {
		return err
	}
	if err := wrapField("extend_path", "segment.start", s.Start.Validate()); err != nil {
		return err
	}
	return wrapField("extend_path", "segment.end", s.End.Validate())
}

// SegmentBezier is a cubic bezier curve from the pen through two
// control points to End.
type SegmentBezier struct {
	// Control1 is the first control point.
	Control1 geom.Point3D `json:"control1"`
	// Control2 is the second control point.
	Control2 geom.Point3D `json:"control2"`
	// End is the final point of the curve.
	End geom.Point3D `json:"end"`
	// Relative makes the points offsets from the pen.
	Relative bool `json:"relative"`
}

// SegmentName returns the segment's wire tag.
func (SegmentBezier) SegmentName() string { return "bezier" }

// Validate enforces the segment's numeric constraints.
func (s SegmentBezier) Validate() error {
	if err := wrapField("extend_path", "segment.control1", s.Control1.Validate()); err != nil {
		return err
	}
	if err := wrapField("extend_path", "segment.control2", s.Control2.Validate()); err != nil {
		return err
	}
	return wrapField("extend_path", "segment.end", s.End.Validate())
}

// SegmentTangentialArc adds an arc tangent to the pen's heading with
// the given radius, sweeping through offset. Negative offsets arc
// clockwise.
type SegmentTangentialArc struct {
	// Radius of the arc. Must be a positive length.
	Radius units.Value `json:"radius"`
	// Offset swept by the arc.
	Offset units.Angle `json:"offset"`
}

// SegmentName returns the segment's wire tag.
func (SegmentTangentialArc) SegmentName() string { return "tangential_arc" }

// Validate enforces the segment's numeric constraints.
func (s SegmentTangentialArc) Validate() error {
	if s.Radius.Unit.Kind() != units.KindLength {
		return fieldError("extend_path", "segment.radius", "requires a length unit, got %q", s.Radius.Unit)
	}
	if err := requirePositive("extend_path", "segment.radius", s.Radius.Magnitude); err != nil {
		return err
	}
	return wrapField("extend_path", "segment.offset", s.Offset.Validate())
}

// SegmentTangentialArcTo adds an arc tangent to the pen's heading that
// ends at To. To must lie in the pen's plane and must not be colinear
// with the pen position.
type SegmentTangentialArcTo struct {
	// To is where the arc ends.
	To geom.Point3D `json:"to"`
	// AngleSnapIncrement, when present, snaps the arc's sweep.
	AngleSnapIncrement *units.Angle `json:"angle_snap_increment,omitempty"`
}

// SegmentName returns the segment's wire tag.
func (SegmentTangentialArcTo) SegmentName() string { return "tangential_arc_to" }

// Validate enforces the segment's numeric constraints.
func (s SegmentTangentialArcTo) Validate() error {
	if err := wrapField("extend_path", "segment.to", s.To.Validate()); err != nil {
		return err
	}
	if s.AngleSnapIncrement != nil {
		return wrapField("extend_path", "segment.angle_snap_increment", s.AngleSnapIncrement.Validate())
	}
	return nil
}

// segmentDecoders maps segment tags to strict decode functions.
var segmentDecoders = map[string]func([]byte) (PathSegment, error){
	"line":              decodeSegment[SegmentLine],
	"arc":               decodeSegment[SegmentArc],
	"bezier":            decodeSegment[SegmentBezier],
	"tangential_arc":    decodeSegment[SegmentTangentialArc],
	"tangential_arc_to": decodeSegment[SegmentTangentialArcTo],
}

func decodeSegment[T PathSegment](data []byte) (PathSegment, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// MarshalPathSegment encodes a segment with its "type" tag first.
func MarshalPathSegment(s PathSegment) ([]byte, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return injectTag(s.SegmentName(), body)
}

// UnmarshalPathSegment decodes a tagged segment, rejecting unknown tags
// and unknown fields.
func UnmarshalPathSegment(data []byte) (PathSegment, error) {
	tag, rest, err := splitTag(data)
	if err != nil {
		return nil, err
	}
	decode, ok := segmentDecoders[tag]
	if !ok {
		return nil, fmt.Errorf("unknown path segment type %q", tag)
	}
	return decode(rest)
}

// injectTag prepends {"type":tag, ...} to an already-encoded object.
func injectTag(tag string, body []byte) ([]byte, error) {
	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("tagged value must encode as an object")
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"type":%q`, tag)
	if !bytes.Equal(body, []byte("{}")) {
		buf.WriteByte(',')
		buf.Write(body[1 : len(body)-1])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// splitTag extracts the "type" tag from a tagged object and returns the
// remaining fields re-encoded without it.
func splitTag(data []byte) (string, []byte, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", nil, err
	}
	tagRaw, ok := raw["type"]
	if !ok {
		return "", nil, fmt.Errorf("missing type tag")
	}
	var tag string
	if err := json.Unmarshal(tagRaw, &tag); err != nil {
		return "", nil, fmt.Errorf("type tag must be a string: %w", err)
	}
	delete(raw, "type")
	rest, err := json.Marshal(raw)
	if err != nil {
		return "", nil, err
	}
	return tag, rest, nil
}

// LinearTransform describes how one replica in a repeating pattern is
// transformed relative to the original.
type LinearTransform struct {
	// Translate moves the replica this far along each dimension.
	Translate geom.Point3D `json:"translate"`
	// Scale resizes the replica along each axis. (1,1,1) keeps the
	// original size. Components must be positive.
	Scale geom.Point3D `json:"scale"`
	// Replicate controls whether this instance is produced at all.
	Replicate bool `json:"replicate"`
}

// Validate enforces the transform's constraints.
func (t LinearTransform) Validate() error {
	if err := wrapField("entity_linear_pattern_transform", "transform.translate", t.Translate.Validate()); err != nil {
		return err
	}
	for _, c := range []struct {
		name string
		v    float64
	}{{"x", t.Scale.X}, {"y", t.Scale.Y}, {"z", t.Scale.Z}} {
		if err := requirePositive("entity_linear_pattern_transform", "transform.scale."+c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

// AnnotationTextOptions styles an annotation's text.
type AnnotationTextOptions struct {
	// X is the horizontal alignment.
	X AnnotationTextAlignmentX `json:"x"`
	// Y is the vertical alignment.
	Y AnnotationTextAlignmentY `json:"y"`
	// Text displayed on the annotation.
	Text string `json:"text"`
	// PointSize is the font's point size. Must be positive.
	PointSize int `json:"point_size"`
}

// AnnotationLineEndOptions styles the start and end of the line.
type AnnotationLineEndOptions struct {
	// Start style of the annotation line.
	Start AnnotationLineEnd `json:"start"`
	// End style of the annotation line.
	End AnnotationLineEnd `json:"end"`
}

// AnnotationOptions collects the optional pieces of an annotation.
type AnnotationOptions struct {
	// Text displayed on the annotation.
	Text *AnnotationTextOptions `json:"text,omitempty"`
	// LineEnds styles the start and end of the line.
	LineEnds *AnnotationLineEndOptions `json:"line_ends,omitempty"`
	// LineWidth of the annotation's line.
	LineWidth *float64 `json:"line_width,omitempty"`
	// Color to render the annotation.
	Color *geom.Color `json:"color,omitempty"`
	// Position to put the annotation.
	Position *geom.Point3D `json:"position,omitempty"`
}

func (o AnnotationOptions) validate(cmd string) error {
	if o.Text != nil {
		if !o.Text.X.Valid() {
			return fieldError(cmd, "options.text.x", "unknown alignment %q", o.Text.X)
		}
		if !o.Text.Y.Valid() {
			return fieldError(cmd, "options.text.y", "unknown alignment %q", o.Text.Y)
		}
		if o.Text.PointSize <= 0 {
			return fieldError(cmd, "options.text.point_size", "must be greater than zero, got %d", o.Text.PointSize)
		}
	}
	if o.LineEnds != nil {
		if !o.LineEnds.Start.Valid() {
			return fieldError(cmd, "options.line_ends.start", "unknown line end %q", o.LineEnds.Start)
		}
		if !o.LineEnds.End.Valid() {
			return fieldError(cmd, "options.line_ends.end", "unknown line end %q", o.LineEnds.End)
		}
	}
	if o.LineWidth != nil {
		if err := requirePositive(cmd, "options.line_width", *o.LineWidth); err != nil {
			return err
		}
	}
	if o.Color != nil {
		if err := wrapField(cmd, "options.color", o.Color.Validate()); err != nil {
			return err
		}
	}
	if o.Position != nil {
		if err := wrapField(cmd, "options.position", o.Position.Validate()); err != nil {
			return err
		}
	}
	return nil
}

// CameraSettings is the engine's camera state: position, look-at
// center, orientation and projection parameters.
type CameraSettings struct {
	// Pos is the camera position (vantage).
	Pos geom.Point3D `json:"pos"`
	// Center is the camera's look-at center; center-pos gives the
	// viewing vector.
	Center geom.Point3D `json:"center"`
	// Up is the camera's world-space up vector.
	Up geom.Point3D `json:"up"`
	// Orientation of the camera as a quaternion.
	Orientation geom.Quaternion `json:"orientation"`
	// FovY is the vertical field-of-view angle when Ortho is false.
	FovY *float64 `json:"fov_y,omitempty"`
	// OrthoScale is the ortho scale when Ortho is true.
	OrthoScale *float64 `json:"ortho_scale,omitempty"`
	// Ortho reports whether the camera is in orthographic mode.
	Ortho bool `json:"ortho"`
}

// PerspectiveCameraParameters defines a perspective projection.
type PerspectiveCameraParameters struct {
	// FovY is the camera frustum's vertical field of view in degrees.
	FovY *float64 `json:"fov_y,omitempty"`
	// ZNear is the frustum near plane.
	ZNear *float64 `json:"z_near,omitempty"`
	// ZFar is the frustum far plane.
	ZFar *float64 `json:"z_far,omitempty"`
}

// ExportFile is one file produced by an export, with raw contents.
type ExportFile struct {
	// Name of the file.
	Name string `json:"name"`
	// Contents of the file. Base64 on the text wire, byte-for-byte
	// preserved.
	Contents []byte `json:"contents"`
}

// ImportFile is one source file handed to the engine for import.
type ImportFile struct {
	// Path of the file, used to resolve cross-file references in
	// multi-file formats.
	Path string `json:"path"`
	// Data is the raw file contents, carried opaquely.
	Data []byte `json:"data"`
}
