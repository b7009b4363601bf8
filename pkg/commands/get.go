package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	do := &options.DayOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "get journal entries",
		Example: `
vita get
vita get --category mood
vita get --on 2026-08-12
vita get --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := co.Resolve()
			if err != nil {
				return err
			}
			on, err := do.Resolve()
			if err != nil {
				return err
			}
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Persistence: p,
				Category:    category,
				On:          on,
				All:         do.All,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddDayArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
