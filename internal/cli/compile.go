package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chiselcad/chisel/internal/cmds"
	"github.com/chiselcad/chisel/internal/plan"
	"github.com/chiselcad/chisel/internal/wire"
)

// CompileResult summarizes a compiled sequence.
type CompileResult struct {
	Name         string `json:"name"`
	PlanID       string `json:"plan_id"`
	Slots        int    `json:"slots"`
	Instructions int    `json:"instructions"`
	Output       string `json:"output,omitempty"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compile <sequence.yaml>",
		Short: "Compile a step sequence into an execution plan",
		Long: `Compile a YAML step sequence into a versioned execution plan.

Named bindings are resolved against strictly earlier steps and each
command is validated before lowering. The encoded plan is written to
the output file, or to stdout when no output is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(rootOpts, args[0], output, cmd)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the encoded plan to this file")
	return cmd
}

func runCompile(opts *RootOptions, path, output string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	seq, err := LoadSequence(path)
	if err != nil {
		_ = formatter.Error("E_INPUT", err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	formatter.VerboseLog("Compiling %q (%d steps)", seq.Name, len(seq.Steps))

	p, err := plan.Compile(seq.Steps)
	if err != nil {
		code := "E_COMPILE"
		var invalid *cmds.ValidationError
		if _, ok := plan.AsUnresolvedBinding(err); ok {
			code = "E_UNRESOLVED"
		} else if errors.As(err, &invalid) {
			code = "E_VALIDATION"
		}
		_ = formatter.Error(code, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	encoded, err := wire.EncodePlan(p)
	if err != nil {
		_ = formatter.Error("E_ENCODE", err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}
	id, err := wire.PlanID(p)
	if err != nil {
		_ = formatter.Error("E_ENCODE", err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	result := CompileResult{
		Name:         seq.Name,
		PlanID:       id,
		Slots:        p.Slots,
		Instructions: len(p.Instructions),
		Output:       output,
	}

	if output == "" {
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintf(formatter.Writer, "%s\n", encoded)
		return nil
	}

	if err := os.WriteFile(output, append(encoded, '\n'), 0o644); err != nil {
		_ = formatter.Error("E_OUTPUT", err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ compiled %q: %d instruction(s), %d slot(s)\n", seq.Name, result.Instructions, result.Slots)
	fmt.Fprintf(formatter.Writer, "  plan %s -> %s\n", id, output)
	return nil
}
