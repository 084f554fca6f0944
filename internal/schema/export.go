package schema

import (
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/format"
)

// FieldDoc describes one field of a command payload. Schema is the
// field's constraint rendered as CUE source with definitions resolved.
type FieldDoc struct {
	Name     string `json:"name"`
	Optional bool   `json:"optional,omitempty"`
	Schema   string `json:"schema"`
}

// CommandDoc describes one command's request payload.
type CommandDoc struct {
	Tag    string     `json:"tag"`
	Fields []FieldDoc `json:"fields,omitempty"`
}

// Doc is the exported catalog. Commands appear in tag order, fields in
// declaration order, so the output is byte-stable for a given catalog.
type Doc struct {
	ProtocolVersion string       `json:"protocol_version"`
	Commands        []CommandDoc `json:"commands"`
}

// Export renders the catalog as a Doc.
func (c *Catalog) Export() (*Doc, error) {
	version, err := c.protocolVersion()
	if err != nil {
		return nil, err
	}

	doc := &Doc{ProtocolVersion: version}
	for _, tag := range c.Tags() {
		cmd := c.commands.LookupPath(cue.MakePath(cue.Str(tag)))
		fields, err := fieldDocs(cmd)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", tag, err)
		}
		doc.Commands = append(doc.Commands, CommandDoc{Tag: tag, Fields: fields})
	}
	return doc, nil
}

// ExportJSON renders the catalog as indented JSON, suitable for golden
// files and docs pipelines.
func (c *Catalog) ExportJSON() ([]byte, error) {
	doc, err := c.Export()
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func (c *Catalog) protocolVersion() (string, error) {
	v := c.root.LookupPath(cue.MakePath(cue.Def("#protocol_version")))
	if !v.Exists() {
		return "", fmt.Errorf("catalog has no #protocol_version")
	}
	return v.String()
}

func fieldDocs(cmd cue.Value) ([]FieldDoc, error) {
	iter, err := cmd.Fields(cue.Optional(true))
	if err != nil {
		return nil, err
	}
	var fields []FieldDoc
	for iter.Next() {
		src, err := renderSchema(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", iter.Label(), err)
		}
		fields = append(fields, FieldDoc{
			Name:     iter.Label(),
			Optional: iter.IsOptional(),
			Schema:   src,
		})
	}
	return fields, nil
}

func renderSchema(v cue.Value) (string, error) {
	node := v.Syntax(cue.Raw(), cue.Docs(false), cue.Attributes(false))
	out, err := format.Node(node, format.Simplify())
	if err != nil {
		return "", err
	}
	return string(out), nil
}
