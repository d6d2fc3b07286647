package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cognicore/lexis/pkg/lexis/store"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect stored collocation runs",
	}
	cmd.AddCommand(newRunsListCommand(ctx))
	cmd.AddCommand(newRunsShowCommand(ctx))
	cmd.AddCommand(newRunsDeleteCommand(ctx))
	cmd.AddCommand(newRunsTopCommand(ctx))
	return cmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := ctx.components(cmd)
			if err != nil {
				return err
			}
			runs, err := comps.Analyzer.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if ctx.jsonOutput(cmd) {
				if runs == nil {
					runs = []store.Run{}
				}
				return writeJSON(cmd, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs stored")
				return nil
			}
			rows := make([][]string, len(runs))
			for i, r := range runs {
				rows[i] = []string{r.ID, r.Pattern, strconv.Itoa(r.Width), r.Source, r.CreatedAt.Local().Format(time.DateTime)}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Pattern", "Width", "Source", "Created"}, rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight}))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list (0 for all)")
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the counts of one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := ctx.components(cmd)
			if err != nil {
				return err
			}
			run, err := comps.Analyzer.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if ctx.jsonOutput(cmd) {
				return writeJSON(cmd, run)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s: pattern %q, width %d, %d words, %d total\n",
				run.ID, run.Pattern, run.Width, len(run.Counts), run.Total())
			fmt.Fprintln(out, renderPairs(run.Counts))
			return nil
		},
	}
}

func newRunsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := ctx.components(cmd)
			if err != nil {
				return err
			}
			return comps.Analyzer.DeleteRun(cmd.Context(), args[0])
		},
	}
}

func newRunsTopCommand(ctx *commandContext) *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "top <pattern>",
		Short: "Sum collocate counts over every run of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := ctx.components(cmd)
			if err != nil {
				return err
			}
			pairs, err := comps.Analyzer.TopCollocates(cmd.Context(), args[0], k)
			if err != nil {
				return err
			}
			if ctx.jsonOutput(cmd) {
				return writeJSON(cmd, pairs)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderPairs(pairs))
			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "top", "n", 20, "Number of words (0 for all)")
	return cmd
}
