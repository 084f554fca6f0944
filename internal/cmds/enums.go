package cmds

// Closed string enums shared across the catalog. Each enum's wire
// values are stable; evolution is append-only.

// CutType selects what kind of edge cut to perform.
type CutType string

const (
	// CutFillet rounds off an edge.
	CutFillet CutType = "fillet"
	// CutChamfer cuts away an edge.
	CutChamfer CutType = "chamfer"
)

var validCutTypes = map[CutType]bool{CutFillet: true, CutChamfer: true}

// Valid reports whether the value is a known cut type.
func (c CutType) Valid() bool { return validCutTypes[c] }

// GlobalAxis names one of the world axes.
type GlobalAxis string

// The global axes.
const (
	AxisX GlobalAxis = "x"
	AxisY GlobalAxis = "y"
	AxisZ GlobalAxis = "z"
)

var validAxes = map[GlobalAxis]bool{AxisX: true, AxisY: true, AxisZ: true}

// Valid reports whether the value is a known axis.
func (a GlobalAxis) Valid() bool { return validAxes[a] }

// SceneSelectionType says how a selection interacts with the current
// selection set.
type SceneSelectionType string

const (
	// SelectionReplace replaces the selection.
	SelectionReplace SceneSelectionType = "replace"
	// SelectionAdd adds to the selection.
	SelectionAdd SceneSelectionType = "add"
	// SelectionRemove removes from the selection.
	SelectionRemove SceneSelectionType = "remove"
)

var validSelectionTypes = map[SceneSelectionType]bool{
	SelectionReplace: true,
	SelectionAdd:     true,
	SelectionRemove:  true,
}

// Valid reports whether the value is a known selection type.
func (s SceneSelectionType) Valid() bool { return validSelectionTypes[s] }

// SceneToolType is the scene's active tool.
type SceneToolType string

// Scene tools.
const (
	ToolCameraRevolve       SceneToolType = "camera_revolve"
	ToolSelect              SceneToolType = "select"
	ToolMove                SceneToolType = "move"
	ToolSketchLine          SceneToolType = "sketch_line"
	ToolSketchTangentialArc SceneToolType = "sketch_tangential_arc"
	ToolSketchCurve         SceneToolType = "sketch_curve"
	ToolSketchCurveMod      SceneToolType = "sketch_curve_mod"
)

var validTools = map[SceneToolType]bool{
	ToolCameraRevolve:       true,
	ToolSelect:              true,
	ToolMove:                true,
	ToolSketchLine:          true,
	ToolSketchTangentialArc: true,
	ToolSketchCurve:         true,
	ToolSketchCurveMod:      true,
}

// Valid reports whether the value is a known tool.
func (s SceneToolType) Valid() bool { return validTools[s] }

// CameraDragInteractionType is the kind of camera drag interaction.
type CameraDragInteractionType string

const (
	// CameraDragPan pans the camera.
	CameraDragPan CameraDragInteractionType = "pan"
	// CameraDragRotate orbits the camera around the reference point.
	CameraDragRotate CameraDragInteractionType = "rotate"
	// CameraDragZoom changes the distance to the reference point.
	CameraDragZoom CameraDragInteractionType = "zoom"
)

var validCameraDrags = map[CameraDragInteractionType]bool{
	CameraDragPan:    true,
	CameraDragRotate: true,
	CameraDragZoom:   true,
}

// Valid reports whether the value is a known interaction type.
func (c CameraDragInteractionType) Valid() bool { return validCameraDrags[c] }

// AnnotationType distinguishes screen-space from world-space
// annotations.
type AnnotationType string

const (
	// Annotation2D is rendered in screen or planar space.
	Annotation2D AnnotationType = "t2d"
	// Annotation3D is rendered in world space.
	Annotation3D AnnotationType = "t3d"
)

var validAnnotationTypes = map[AnnotationType]bool{Annotation2D: true, Annotation3D: true}

// Valid reports whether the value is a known annotation type.
func (a AnnotationType) Valid() bool { return validAnnotationTypes[a] }

// AnnotationTextAlignmentX is horizontal text alignment.
type AnnotationTextAlignmentX string

// Horizontal alignments.
const (
	AlignLeft   AnnotationTextAlignmentX = "left"
	AlignCenterX AnnotationTextAlignmentX = "center"
	AlignRight  AnnotationTextAlignmentX = "right"
)

var validAlignX = map[AnnotationTextAlignmentX]bool{AlignLeft: true, AlignCenterX: true, AlignRight: true}

// Valid reports whether the value is a known alignment.
func (a AnnotationTextAlignmentX) Valid() bool { return validAlignX[a] }

// AnnotationTextAlignmentY is vertical text alignment.
type AnnotationTextAlignmentY string

// Vertical alignments.
const (
	AlignBottom  AnnotationTextAlignmentY = "bottom"
	AlignCenterY AnnotationTextAlignmentY = "center"
	AlignTop     AnnotationTextAlignmentY = "top"
)

var validAlignY = map[AnnotationTextAlignmentY]bool{AlignBottom: true, AlignCenterY: true, AlignTop: true}

// Valid reports whether the value is a known alignment.
func (a AnnotationTextAlignmentY) Valid() bool { return validAlignY[a] }

// AnnotationLineEnd styles the ends of an annotation line.
type AnnotationLineEnd string

const (
	// LineEndNone draws a bare line end.
	LineEndNone AnnotationLineEnd = "none"
	// LineEndArrow draws an arrow head.
	LineEndArrow AnnotationLineEnd = "arrow"
)

var validLineEnds = map[AnnotationLineEnd]bool{LineEndNone: true, LineEndArrow: true}

// Valid reports whether the value is a known line end.
func (a AnnotationLineEnd) Valid() bool { return validLineEnds[a] }

// PostEffectType selects the renderer's post effect.
type PostEffectType string

// Post effects.
const (
	EffectPhosphor PostEffectType = "phosphor"
	EffectSSAO     PostEffectType = "ssao"
	EffectNone     PostEffectType = "noeffect"
)

var validEffects = map[PostEffectType]bool{EffectPhosphor: true, EffectSSAO: true, EffectNone: true}

// Valid reports whether the value is a known post effect.
func (p PostEffectType) Valid() bool { return validEffects[p] }

// FileExportFormat is an output file format the engine can produce.
type FileExportFormat string

// Export formats.
const (
	ExportFbx  FileExportFormat = "fbx"
	ExportGlb  FileExportFormat = "glb"
	ExportGltf FileExportFormat = "gltf"
	ExportObj  FileExportFormat = "obj"
	ExportPly  FileExportFormat = "ply"
	ExportStep FileExportFormat = "step"
	ExportStl  FileExportFormat = "stl"
)

var validExportFormats = map[FileExportFormat]bool{
	ExportFbx: true, ExportGlb: true, ExportGltf: true, ExportObj: true,
	ExportPly: true, ExportStep: true, ExportStl: true,
}

// Valid reports whether the value is a known export format.
func (f FileExportFormat) Valid() bool { return validExportFormats[f] }

// FileImportFormat is a source file format the engine can ingest.
type FileImportFormat string

// Import formats.
const (
	ImportFbx    FileImportFormat = "fbx"
	ImportGltf   FileImportFormat = "gltf"
	ImportObj    FileImportFormat = "obj"
	ImportPly    FileImportFormat = "ply"
	ImportSldprt FileImportFormat = "sldprt"
	ImportStep   FileImportFormat = "step"
	ImportStl    FileImportFormat = "stl"
)

var validImportFormats = map[FileImportFormat]bool{
	ImportFbx: true, ImportGltf: true, ImportObj: true, ImportPly: true,
	ImportSldprt: true, ImportStep: true, ImportStl: true,
}

// Valid reports whether the value is a known import format.
func (f FileImportFormat) Valid() bool { return validImportFormats[f] }

// ImageFormat is a raster format for snapshots.
type ImageFormat string

const (
	// ImagePng is lossless PNG.
	ImagePng ImageFormat = "png"
	// ImageJpeg is lossy JPEG.
	ImageJpeg ImageFormat = "jpeg"
)

var validImageFormats = map[ImageFormat]bool{ImagePng: true, ImageJpeg: true}

// Valid reports whether the value is a known image format.
func (f ImageFormat) Valid() bool { return validImageFormats[f] }
