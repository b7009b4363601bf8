package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove [id]",
		Short:   "remove an entry",
		Aliases: []string{"rm", "delete"},
		Example: `
vita remove 171dff69
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := remove.Remove{
				Persistence: p,
				ID:          args[0],
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
