package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	var moodWindow, symptomWindow string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "show mood and symptom trends",
		Example: `
vita report
vita report --mood-window 4w --symptom-window 8w
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := report.Report{
				Persistence:   p,
				MoodWindow:    moodWindow,
				SymptomWindow: symptomWindow,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&moodWindow, "mood-window", "",
		"Override the mood window for this report, e.g. '4w'.")
	cmd.Flags().StringVar(&symptomWindow, "symptom-window", "",
		"Override the symptom window for this report, e.g. '8w'.")

	topLevel.AddCommand(cmd)
}
