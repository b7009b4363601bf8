package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/health"
)

// CategoryOptions filters by log category; empty means all.
type CategoryOptions struct {
	Category string
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Filter by category: note, mood, medication, nutrition, symptom, activity.")
}

// Resolve parses the flag, accepting aliases; empty stays empty.
func (o *CategoryOptions) Resolve() (health.Category, error) {
	if o.Category == "" {
		return "", nil
	}
	return health.ParseCategory(o.Category)
}
