// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/health"
)

// LogOptions captures the create-log flags shared by the add subcommands.
type LogOptions struct {
	Notes    string
	Item     string
	Dosage   string
	Amount   string
	Severity string
	Duration time.Duration
	Mood     string
}

func AddNotesArg(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Free-form notes for the entry.")
}

func AddItemArg(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().StringVarP(&o.Item, "item", "i", "",
		"Catalog item name; created on first use.")
}

func AddDosageArg(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().StringVarP(&o.Dosage, "dosage", "d", "",
		"Dosage taken, e.g. '200mg'.")
}

func AddAmountArg(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().StringVarP(&o.Amount, "amount", "a", "",
		"Amount consumed, e.g. '1 cup'.")
}

func AddSeverityArg(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().StringVarP(&o.Severity, "severity", "s", "mild",
		"Severity: none, mild, moderate, severe, extreme.")
}

func AddDurationArg(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().DurationVarP(&o.Duration, "for", "f", 0,
		"How long the activity lasted, e.g. '45m'.")
}

// ParseSeverity resolves the flag value.
func (o *LogOptions) ParseSeverity() (health.Severity, error) {
	return health.ParseSeverity(o.Severity)
}
