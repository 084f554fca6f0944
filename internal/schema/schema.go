package schema

import (
	_ "embed"
	"fmt"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed catalog.cue
var catalogSource string

// Issue is one problem found while validating a payload. Path points at
// the offending field using dotted notation.
type Issue struct {
	Tag     string `json:"tag"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path != "" {
		return fmt.Sprintf("%s: %s: %s", i.Tag, i.Path, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.Tag, i.Message)
}

// Catalog is the compiled protocol schema. Safe for concurrent reads.
type Catalog struct {
	ctx       *cue.Context
	root      cue.Value
	commands  cue.Value
	responses cue.Value
}

// Load compiles the embedded catalog. It fails only if the embedded
// source is broken, which a test catches at build time.
func Load() (*Catalog, error) {
	ctx := cuecontext.New()
	root := ctx.CompileString(catalogSource, cue.Filename("catalog.cue"))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("compile catalog: %w", err)
	}
	commands := root.LookupPath(cue.MakePath(cue.Def("#commands")))
	if !commands.Exists() {
		return nil, fmt.Errorf("catalog has no #commands definition")
	}
	responses := root.LookupPath(cue.MakePath(cue.Def("#responses")))
	if !responses.Exists() {
		return nil, fmt.Errorf("catalog has no #responses definition")
	}
	return &Catalog{ctx: ctx, root: root, commands: commands, responses: responses}, nil
}

// Tags returns every command tag in the catalog, sorted.
func (c *Catalog) Tags() []string {
	var tags []string
	iter, err := c.commands.Fields()
	if err != nil {
		return nil
	}
	for iter.Next() {
		tags = append(tags, iter.Label())
	}
	sort.Strings(tags)
	return tags
}

// Has reports whether the catalog knows the command tag.
func (c *Catalog) Has(tag string) bool {
	return c.commands.LookupPath(cue.MakePath(cue.Str(tag))).Exists()
}

// ValidatePayload checks a raw command payload against the catalog
// entry for tag. It collects every problem it can find rather than
// stopping at the first, so a caller can report them all at once. A nil
// result means the payload is valid.
func (c *Catalog) ValidatePayload(tag string, payload []byte) []Issue {
	sch := c.commands.LookupPath(cue.MakePath(cue.Str(tag)))
	if !sch.Exists() {
		return []Issue{{Tag: tag, Message: "unknown command tag"}}
	}
	return c.validateAgainst(tag, sch, payload)
}

// ValidateResponse checks a raw response payload against the named
// response shape.
func (c *Catalog) ValidateResponse(shape string, payload []byte) []Issue {
	sch := c.responses.LookupPath(cue.MakePath(cue.Str(shape)))
	if !sch.Exists() {
		return []Issue{{Tag: shape, Message: "unknown response shape"}}
	}
	return c.validateAgainst(shape, sch, payload)
}

// validateAgainst unifies a strict-JSON payload with a catalog entry
// and converts any failure into issues.
func (c *Catalog) validateAgainst(tag string, sch cue.Value, payload []byte) []Issue {
	expr, err := cuejson.Extract("payload.json", payload)
	if err != nil {
		return issuesFromError(tag, err)
	}
	data := c.ctx.BuildExpr(expr)
	if err := data.Err(); err != nil {
		return issuesFromError(tag, err)
	}

	merged := sch.Unify(data)
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return issuesFromError(tag, err)
	}
	return nil
}

// issuesFromError splits a CUE error list into issues, one per
// underlying problem, with the field path when CUE knows it.
func issuesFromError(tag string, err error) []Issue {
	var issues []Issue
	for _, e := range cueerrors.Errors(err) {
		path := ""
		if p := e.Path(); len(p) > 0 {
			for i, seg := range p {
				if i > 0 {
					path += "."
				}
				path += seg
			}
		}
		issues = append(issues, Issue{Tag: tag, Path: path, Message: e.Error()})
	}
	if len(issues) == 0 {
		issues = append(issues, Issue{Tag: tag, Message: err.Error()})
	}
	return issues
}
