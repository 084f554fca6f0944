package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chiselcad/chisel/internal/schema"
)

// ValidationResult holds validation results for one input file.
type ValidationResult struct {
	Valid  bool           `json:"valid"`
	Count  int            `json:"count"`
	Issues []schema.Issue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <payload.json>",
		Short: "Validate command payloads against the catalog schema",
		Long: `Validate tagged command payloads against the embedded catalog schema.

The input file holds one tagged command object {"type":"<tag>",...} or
a JSON array of them. Every payload is checked and all issues are
reported together.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	payloads, err := loadPayloads(path)
	if err != nil {
		_ = formatter.Error("E_INPUT", err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	formatter.VerboseLog("Validating %d payload(s) from %s", len(payloads), path)

	catalog, err := schema.Load()
	if err != nil {
		_ = formatter.Error("E_SCHEMA", err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	var issues []schema.Issue
	for i, payload := range payloads {
		tag, rest, err := splitPayloadTag(payload)
		if err != nil {
			issues = append(issues, schema.Issue{Tag: fmt.Sprintf("payload[%d]", i), Message: err.Error()})
			continue
		}
		issues = append(issues, catalog.ValidatePayload(tag, rest)...)
	}

	result := ValidationResult{Valid: len(issues) == 0, Count: len(payloads), Issues: issues}
	if result.Valid {
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintf(formatter.Writer, "✓ %d payload(s) valid\n", result.Count)
		return nil
	}

	if formatter.Format == "json" {
		_ = formatter.Error("E_VALIDATION", fmt.Sprintf("%d issue(s)", len(issues)), result)
	} else {
		fmt.Fprintln(formatter.Writer, "✗ Validation failed")
		for _, issue := range issues {
			fmt.Fprintf(formatter.Writer, "  %s\n", issue)
		}
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(issues)))
}

// loadPayloads reads one tagged object or an array of them.
func loadPayloads(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var batch []json.RawMessage
	if err := json.Unmarshal(data, &batch); err == nil {
		return batch, nil
	}
	var single json.RawMessage
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return []json.RawMessage{single}, nil
}

// splitPayloadTag pops the "type" field off a tagged payload.
func splitPayloadTag(payload json.RawMessage) (string, []byte, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return "", nil, err
	}
	tagRaw, ok := raw["type"]
	if !ok {
		return "", nil, fmt.Errorf("missing type tag")
	}
	var tag string
	if err := json.Unmarshal(tagRaw, &tag); err != nil {
		return "", nil, fmt.Errorf("type tag must be a string")
	}
	delete(raw, "type")
	rest, err := json.Marshal(raw)
	if err != nil {
		return "", nil, err
	}
	return tag, rest, nil
}
