package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chiselcad/chisel/internal/schema"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Export the command catalog as JSON",
		Long: `Export the embedded command catalog to machine-readable JSON.

The export lists every command tag with its field names, optionality,
and rendered schema fragments. Output is deterministic so it can be
diffed across releases.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(rootOpts, output, cmd)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the export to this file")
	return cmd
}

func runSchema(opts *RootOptions, output string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	catalog, err := schema.Load()
	if err != nil {
		_ = formatter.Error("E_SCHEMA", err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	data, err := catalog.ExportJSON()
	if err != nil {
		_ = formatter.Error("E_SCHEMA", err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if output == "" {
		fmt.Fprint(formatter.Writer, string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		_ = formatter.Error("E_OUTPUT", err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	formatter.VerboseLog("Wrote catalog export to %s", output)
	return nil
}
