package cmds

import "github.com/google/uuid"

// Response payload shapes. A response travels in an envelope carrying
// the originating command's tag and id; the payload shape here is
// determined by that tag through the registry's codecs. Several
// commands share a shape; every fire-and-forget command answers with
// Empty.

// Empty is the payload of commands that return no data.
type Empty struct{}

func (Empty) response() {}

// NewEntityID is the payload of commands that create one entity.
type NewEntityID struct {
	// EntityID of the created entity.
	EntityID uuid.UUID `json:"entity_id"`
}

func (NewEntityID) response() {}

// Selection is the payload of selection queries.
type Selection struct {
	// EntityIDs currently selected. May be empty.
	EntityIDs []uuid.UUID `json:"entity_ids"`
}

func (Selection) response() {}

// ExportData is the payload of an export: the produced files.
type ExportData struct {
	// Files produced by the export.
	Files []ExportFile `json:"files"`
}

func (ExportData) response() {}

// Snapshot is the payload of a snapshot: raw image bytes.
type Snapshot struct {
	// Contents is the encoded image, byte-for-byte.
	Contents []byte `json:"contents"`
}

func (Snapshot) response() {}

// CameraView is the payload of camera commands that report the
// resulting camera state.
type CameraView struct {
	// Settings after the command took effect.
	Settings CameraSettings `json:"settings"`
}

func (CameraView) response() {}
