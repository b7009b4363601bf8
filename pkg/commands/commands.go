package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/vita/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
	so = &options.StoreOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "vita",
		Short: base.Wrap80("Health journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddPathArg(cmd, so)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addDetail(topLevel)
	addRemove(topLevel)
	addSearch(topLevel)
	addRemind(topLevel)
	addReport(topLevel)
	addUser(topLevel)
	addVersion(topLevel)
}
