package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/store"
)

// StoreOptions lets a command pin the database directory.
type StoreOptions struct {
	Path string
}

func AddPathArg(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Database directory; defaults to the configured path.")
}

// Load opens the persistence layer honoring --path.
func (o *StoreOptions) Load() (store.Persistence, error) {
	if o.Path != "" {
		return store.Load(store.FixedConfig{Path: o.Path})
	}
	return store.Load(nil)
}
