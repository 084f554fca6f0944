package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chiselcad/chisel/internal/journal"
	"github.com/chiselcad/chisel/internal/wire"
)

// JournalAppendResult reports the outcome of appending a plan.
type JournalAppendResult struct {
	PlanID string `json:"plan_id"`
}

// JournalListResult lists journaled plans.
type JournalListResult struct {
	Plans []journal.PlanRecord `json:"plans"`
}

// NewJournalCommand creates the journal command group.
func NewJournalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect and append to a plan journal",
	}
	cmd.AddCommand(newJournalAppendCommand(rootOpts))
	cmd.AddCommand(newJournalListCommand(rootOpts))
	return cmd
}

func newJournalAppendCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "append <journal.db> <plan.json>",
		Short:         "Append an encoded plan to the journal",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournalAppend(rootOpts, args[0], args[1], cmd)
		},
	}
}

func newJournalListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "ls <journal.db>",
		Short:         "List journaled plans, newest first",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournalList(rootOpts, args[0], cmd)
		},
	}
}

func runJournalAppend(opts *RootOptions, dbPath, planPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(planPath)
	if err != nil {
		_ = formatter.Error("E_INPUT", err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	p, err := wire.DecodePlan(data)
	if err != nil {
		_ = formatter.Error("E_DECODE", err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	j, err := journal.Open(dbPath)
	if err != nil {
		_ = formatter.Error("E_JOURNAL", err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	defer j.Close()

	id, err := j.AppendPlan(cmd.Context(), p)
	if err != nil {
		_ = formatter.Error("E_JOURNAL", err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(JournalAppendResult{PlanID: id})
	}
	fmt.Fprintf(formatter.Writer, "✓ plan %s\n", id)
	return nil
}

func runJournalList(opts *RootOptions, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	j, err := journal.Open(dbPath)
	if err != nil {
		_ = formatter.Error("E_JOURNAL", err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	defer j.Close()

	plans, err := j.ListPlans(cmd.Context())
	if err != nil {
		_ = formatter.Error("E_JOURNAL", err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(JournalListResult{Plans: plans})
	}
	if len(plans) == 0 {
		fmt.Fprintln(formatter.Writer, "no plans recorded")
		return nil
	}
	for _, rec := range plans {
		fmt.Fprintf(formatter.Writer, "%s  %2d instruction(s)  %2d slot(s)  %s\n",
			rec.ID[:12], rec.Instructions, rec.Slots, rec.RecordedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
