package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/runner/detail"
)

func addDetail(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "detail [id]",
		Short: "show one entry in full",
		Example: `
vita detail 171dff69
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := detail.Detail{
				Persistence: p,
				ID:          args[0],
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
