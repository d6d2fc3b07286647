package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/lexis/pkg/lexis/pos"
)

type tagRow struct {
	Tag         string       `json:"tag"`
	Category    pos.Category `json:"category"`
	WordNet     string       `json:"wordnet,omitempty"`
	Description string       `json:"description,omitempty"`
}

func newPOSCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pos [tag...]",
		Short: "Describe Penn Treebank tags and their coarse categories",
		Long:  "Without arguments every known tag is listed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := args
			if len(tags) == 0 {
				tags = pos.Tags()
			}

			out := make([]tagRow, len(tags))
			for i, tag := range tags {
				tag = strings.TrimSpace(tag)
				d, _ := pos.Describe(tag)
				out[i] = tagRow{
					Tag:         tag,
					Category:    pos.CoarseCategory(tag),
					WordNet:     pos.WordNetCode(tag),
					Description: d,
				}
			}

			if ctx.jsonOutput(cmd) {
				return writeJSON(cmd, out)
			}
			rows := make([][]string, len(out))
			for i, r := range out {
				rows[i] = []string{r.Tag, string(r.Category), r.WordNet, r.Description}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Tag", "Category", "WordNet", "Description"}, rows, nil))
			return nil
		},
	}
}
