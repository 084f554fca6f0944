package cmds

// NewAnnotation creates an annotation in the scene. The engine replies
// with the annotation's entity id.
type NewAnnotation struct {
	// Options for the annotation.
	Options AnnotationOptions `json:"options"`
	// Clobber replaces any annotation with the same id.
	Clobber bool `json:"clobber"`
	// AnnotationType places the annotation in screen or world space.
	AnnotationType AnnotationType `json:"annotation_type"`
}

// ModelingCmdName returns the command's stable wire tag.
func (NewAnnotation) ModelingCmdName() string { return "new_annotation" }

// Validate enforces parameter constraints.
func (c NewAnnotation) Validate() error {
	if !c.AnnotationType.Valid() {
		return fieldError("new_annotation", "annotation_type", "unknown annotation type %q", c.AnnotationType)
	}
	return c.Options.validate("new_annotation")
}

// EditAnnotation updates an existing annotation's options.
type EditAnnotation struct {
	// AnnotationID of the annotation to edit.
	AnnotationID ObjectID `json:"annotation_id"`
	// Options replacing the annotation's current options.
	Options AnnotationOptions `json:"options"`
}

// ModelingCmdName returns the command's stable wire tag.
func (EditAnnotation) ModelingCmdName() string { return "edit_annotation" }

// Validate enforces parameter constraints.
func (c EditAnnotation) Validate() error {
	if err := wrapField("edit_annotation", "annotation_id", c.AnnotationID.Validate()); err != nil {
		return err
	}
	return c.Options.validate("edit_annotation")
}

// MapObjectIDs rewrites entity references.
func (c EditAnnotation) MapObjectIDs(fn func(ObjectID) (ObjectID, error)) (Command, error) {
	a, err := fn(c.AnnotationID)
	if err != nil {
		return nil, err
	}
	c.AnnotationID = a
	return c, nil
}
