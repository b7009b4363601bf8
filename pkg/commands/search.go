package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "search the item catalog",
		Example: `
vita search asp
vita search --category symptom head
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := co.Resolve()
			if err != nil {
				return err
			}
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := search.Search{
				ShowID:      io.ShowID,
				Persistence: p,
				Query:       strings.Join(args, " "),
				Category:    category,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
