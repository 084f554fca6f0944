package cmds

// Export asks the engine to export entities to files in the given
// format. The engine replies with the produced files.
type Export struct {
	// EntityIDs to export. Empty exports the whole scene.
	EntityIDs []ObjectID `json:"entity_ids"`
	// Format of the exported files.
	Format FileExportFormat `json:"format"`
}

// ModelingCmdName returns the command's stable wire tag.
func (Export) ModelingCmdName() string { return "export" }

// Validate enforces parameter constraints.
func (c Export) Validate() error {
	for _, id := range c.EntityIDs {
		if err := wrapField("export", "entity_ids", id.Validate()); err != nil {
			return err
		}
	}
	if !c.Format.Valid() {
		return fieldError("export", "format", "unknown export format %q", c.Format)
	}
	return nil
}

// MapObjectIDs rewrites entity references.
func (c Export) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	mapped, err := mapEntityList(c.EntityIDs, fn)
	if err != nil {
		return nil, err
	}
	c.EntityIDs = mapped
	return c, nil
}

// ImportFiles hands source files to the engine for import. File bytes
// travel as opaque blobs; the engine replies with the id of the
// imported object tree.
type ImportFiles struct {
	// Files to import. Multi-file formats list every referenced file.
	Files []ImportFile `json:"files"`
	// Format of the source files.
	Format FileImportFormat `json:"format"`
}

// ModelingCmdName returns the command's stable wire tag.
func (ImportFiles) ModelingCmdName() string { return "import_files" }

// Validate enforces parameter constraints.
func (c ImportFiles) Validate() error {
	if len(c.Files) == 0 {
		return fieldError("import_files", "files", "at least one file is required")
	}
	for i, f := range c.Files {
		if f.Path == "" {
			return fieldError("import_files", "files", "file %d has an empty path", i)
		}
		if len(f.Data) == 0 {
			return fieldError("import_files", "files", "file %q has no data", f.Path)
		}
	}
	if !c.Format.Valid() {
		return fieldError("import_files", "format", "unknown import format %q", c.Format)
	}
	return nil
}

// TakeSnapshot renders the current view to an image. The engine
// replies with the raw image bytes.
type TakeSnapshot struct {
	// Format of the snapshot image.
	Format ImageFormat `json:"format"`
}

// ModelingCmdName returns the command's stable wire tag.
func (TakeSnapshot) ModelingCmdName() string { return "take_snapshot" }

// Validate enforces parameter constraints.
func (c TakeSnapshot) Validate() error {
	if !c.Format.Valid() {
		return fieldError("take_snapshot", "format", "unknown image format %q", c.Format)
	}
	return nil
}
