package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/health"
)

const layoutISO = "2006-01-02"

// DayOptions selects which day (or all days) a query covers.
type DayOptions struct {
	On  string
	All bool
}

func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVar(&o.On, "on", "today",
		"The day to show, 'today', 'yesterday', or 2006-01-02.")
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show every day.")
}

// Resolve parses the --on value to a local calendar day.
func (o *DayOptions) Resolve() (time.Time, error) {
	switch o.On {
	case "", "today":
		return health.Now().DayKey(), nil
	case "yesterday":
		return health.Now().DayKey().AddDate(0, 0, -1), nil
	}
	t, err := time.ParseInLocation(layoutISO, o.On, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
