package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cognicore/lexis/internal/source"
	"github.com/cognicore/lexis/pkg/lexis"
	"github.com/cognicore/lexis/pkg/lexis/concordance"
	"github.com/cognicore/lexis/pkg/lexis/freq"
	"github.com/cognicore/lexis/pkg/lexis/pos"
)

type inputFlags struct {
	input string
	text  string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Input file (.txt, .html, .jsonl); stdin when empty or -")
	cmd.Flags().StringVarP(&f.text, "text", "t", "", "Analyse this text instead of reading input")
}

// load returns the documents to analyse and a label naming where they came
// from. Each document is analysed on its own.
func (f *inputFlags) load(cmd *cobra.Command) ([]string, string, error) {
	if f.text != "" {
		return []string{f.text}, "inline", nil
	}
	var (
		docs []source.Document
		err  error
	)
	name := f.input
	if name == "" || name == "-" {
		name = "stdin"
		docs, err = source.Read(cmd.InOrStdin(), name)
	} else {
		docs, err = source.Open(name)
	}
	if err != nil {
		return nil, "", err
	}
	slog.Debug("input loaded", "source", name, "documents", len(docs))
	return source.Texts(docs), name, nil
}

// widthFlag returns the flag value when set, otherwise the configured default.
func widthFlag(cmd *cobra.Command, name string, value, configured int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return configured
}

func newConcordanceCommand(ctx *commandContext) *cobra.Command {
	var in inputFlags
	var width int

	cmd := &cobra.Command{
		Use:   "concordance <pattern>",
		Short: "Show every match of a pattern with the words around it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := ctx.components(cmd)
			if err != nil {
				return err
			}
			docs, _, err := in.load(cmd)
			if err != nil {
				return err
			}
			width = widthFlag(cmd, "width", width, comps.Config.Width)

			var matches []concordance.Match
			for _, doc := range docs {
				found, err := comps.Analyzer.ConcordanceMatches(doc, args[0], width)
				if err != nil {
					return err
				}
				matches = append(matches, found...)
			}
			if ctx.jsonOutput(cmd) {
				windows := make([]string, len(matches))
				for i, m := range matches {
					windows[i] = m.Window
				}
				return writeJSON(cmd, windows)
			}

			rows := make([][]string, len(matches))
			for i, m := range matches {
				rows[i] = []string{strconv.Itoa(m.Index), m.Word, m.Window}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Position", "Match", "Window"}, rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft}))
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().IntVarP(&width, "width", "w", 10, "Window width in words")
	return cmd
}

func newCollocationCommand(ctx *commandContext) *cobra.Command {
	var in inputFlags
	var width, top int
	var ascending, save bool

	cmd := &cobra.Command{
		Use:   "collocation <pattern>",
		Short: "Count the words that appear near a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := ctx.components(cmd)
			if err != nil {
				return err
			}
			docs, name, err := in.load(cmd)
			if err != nil {
				return err
			}
			width = widthFlag(cmd, "width", width, comps.Config.Width)

			run, err := comps.Analyzer.Collocate(cmd.Context(), lexis.CollocationRequest{
				Source:    name,
				Documents: docs,
				Pattern:   args[0],
				Width:     width,
				Save:      save,
			})
			if err != nil {
				return err
			}
			if save {
				slog.Info("collocation run saved", "id", run.ID, "words", len(run.Counts))
			}

			// run.Counts is the descending order; its reverse is the ascending one.
			pairs := run.Counts
			if ascending {
				pairs = make([]freq.Pair, len(run.Counts))
				for i, p := range run.Counts {
					pairs[len(pairs)-1-i] = p
				}
			}
			if top > 0 && len(pairs) > top {
				pairs = pairs[:top]
			}

			if ctx.jsonOutput(cmd) {
				run.Counts = pairs
				return writeJSON(cmd, run)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderPairs(pairs))
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().IntVarP(&width, "width", "w", 10, "Window width in words")
	cmd.Flags().IntVarP(&top, "top", "n", 0, "Show only the first n words (0 for all)")
	cmd.Flags().BoolVar(&ascending, "ascending", false, "Sort by increasing count")
	cmd.Flags().BoolVar(&save, "save", false, "Store the run (requires --store or store.path)")
	return cmd
}

func renderPairs(pairs []freq.Pair) string {
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{p.Key, strconv.Itoa(p.Value)}
	}
	return renderTable([]string{"Word", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}

func newCooccurrenceCommand(ctx *commandContext) *cobra.Command {
	var in inputFlags
	var maxDistance int

	cmd := &cobra.Command{
		Use:   "cooccurrence <word1> <word2>",
		Short: "List sentences where two words appear close together",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := ctx.components(cmd)
			if err != nil {
				return err
			}
			docs, _, err := in.load(cmd)
			if err != nil {
				return err
			}
			maxDistance = widthFlag(cmd, "max-distance", maxDistance, comps.Config.MaxDistance)

			var sentences []string
			for _, doc := range docs {
				found, err := comps.Analyzer.Cooccurrence(doc, args[0], args[1], maxDistance)
				if err != nil {
					return err
				}
				sentences = append(sentences, found...)
			}
			if ctx.jsonOutput(cmd) {
				if sentences == nil {
					sentences = []string{}
				}
				return writeJSON(cmd, sentences)
			}
			for _, s := range sentences {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().IntVarP(&maxDistance, "max-distance", "d", 5, "Maximum token distance between the words")
	return cmd
}

func newTagCommand(ctx *commandContext) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Tag words with their part of speech",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := ctx.components(cmd)
			if err != nil {
				return err
			}
			docs, _, err := in.load(cmd)
			if err != nil {
				return err
			}

			var tagged []pos.TaggedToken
			for _, doc := range docs {
				found, err := comps.Analyzer.Tag(doc)
				if err != nil {
					return err
				}
				tagged = append(tagged, found...)
			}
			if ctx.jsonOutput(cmd) {
				if tagged == nil {
					tagged = []pos.TaggedToken{}
				}
				return writeJSON(cmd, tagged)
			}
			rows := make([][]string, len(tagged))
			for i, t := range tagged {
				rows[i] = []string{t.Text, t.Tag, string(t.Category)}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Word", "Tag", "Category"}, rows, nil))
			return nil
		},
	}
	in.register(cmd)
	return cmd
}
