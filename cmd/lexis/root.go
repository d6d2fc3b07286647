package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// run executes the CLI with args and releases whatever the command opened.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	root, cc := newRootCommand()
	defer func() {
		if cerr := cc.close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCommand() (*cobra.Command, *commandContext) {
	var flags globalFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "lexis",
		Short:         "Concordance, collocation and co-occurrence analysis of text",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flags.stoplist, "stoplist", "", "Stoplist YAML file replacing the built-in English list")
	rootCmd.PersistentFlags().StringVar(&flags.store, "store", "", "SQLite database for collocation runs")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flags.json, "json", false, "Write JSON instead of tables")

	rootCmd.AddCommand(newConcordanceCommand(ctx))
	rootCmd.AddCommand(newCollocationCommand(ctx))
	rootCmd.AddCommand(newCooccurrenceCommand(ctx))
	rootCmd.AddCommand(newTagCommand(ctx))
	rootCmd.AddCommand(newPOSCommand(ctx))
	rootCmd.AddCommand(newRunsCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))

	return rootCmd, ctx
}
