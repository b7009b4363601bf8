package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a journal entry",
		Example: `
vita add note "slept badly"
vita add mood good
vita add med --item aspirin --dosage 200mg
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddNote(cmd)
	addAddMood(cmd)
	addAddMedication(cmd)
	addAddNutrition(cmd)
	addAddSymptom(cmd)
	addAddActivity(cmd)

	topLevel.AddCommand(cmd)
}

func addAddNote(topLevel *cobra.Command) {
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:     "note [title]",
		Short:   "add a free-form note",
		Aliases: []string{"notes"},
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := add.Add{
				Persistence: p,
				Category:    health.CategoryNote,
				Title:       strings.Join(args, " "),
				Notes:       lo.Notes,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddNotesArg(cmd, lo)
	topLevel.AddCommand(cmd)
}

func addAddMood(topLevel *cobra.Command) {
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:       "mood [rank]",
		Short:     "add a mood entry (terrible, bad, neutral, good, great, or 1-5)",
		Aliases:   []string{"moods"},
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"terrible", "bad", "neutral", "good", "great"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := health.ParseMoodRank(args[0])
			if err != nil {
				return err
			}
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := add.Add{
				Persistence: p,
				Category:    health.CategoryMood,
				Title:       rank.String(),
				Notes:       lo.Notes,
				Mood:        rank,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddNotesArg(cmd, lo)
	topLevel.AddCommand(cmd)
}

func addAddMedication(topLevel *cobra.Command) {
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:     "medication",
		Short:   "add a medication entry",
		Aliases: []string{"med", "meds"},
		Example: `
vita add med --item aspirin --dosage 200mg
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := add.Add{
				Persistence: p,
				Category:    health.CategoryMedication,
				Title:       strings.Join(args, " "),
				Notes:       lo.Notes,
				Item:        lo.Item,
				Dosage:      lo.Dosage,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddNotesArg(cmd, lo)
	options.AddItemArg(cmd, lo)
	options.AddDosageArg(cmd, lo)
	topLevel.AddCommand(cmd)
}

func addAddNutrition(topLevel *cobra.Command) {
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:     "nutrition",
		Short:   "add a food or drink entry",
		Aliases: []string{"food"},
		Example: `
vita add food --item coffee --amount "2 cups"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := add.Add{
				Persistence: p,
				Category:    health.CategoryNutrition,
				Title:       strings.Join(args, " "),
				Notes:       lo.Notes,
				Item:        lo.Item,
				Amount:      lo.Amount,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddNotesArg(cmd, lo)
	options.AddItemArg(cmd, lo)
	options.AddAmountArg(cmd, lo)
	topLevel.AddCommand(cmd)
}

func addAddSymptom(topLevel *cobra.Command) {
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:     "symptom",
		Short:   "add a symptom entry",
		Aliases: []string{"symptoms"},
		Example: `
vita add symptom --item headache --severity moderate
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			severity, err := lo.ParseSeverity()
			if err != nil {
				return err
			}
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := add.Add{
				Persistence: p,
				Category:    health.CategorySymptom,
				Title:       strings.Join(args, " "),
				Notes:       lo.Notes,
				Item:        lo.Item,
				Severity:    severity,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddNotesArg(cmd, lo)
	options.AddItemArg(cmd, lo)
	options.AddSeverityArg(cmd, lo)
	topLevel.AddCommand(cmd)
}

func addAddActivity(topLevel *cobra.Command) {
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:     "activity",
		Short:   "add an activity entry",
		Aliases: []string{"activities"},
		Example: `
vita add activity --item "walk" --for 45m
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := add.Add{
				Persistence: p,
				Category:    health.CategoryActivity,
				Title:       strings.Join(args, " "),
				Notes:       lo.Notes,
				Item:        lo.Item,
				Duration:    lo.Duration,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddNotesArg(cmd, lo)
	options.AddItemArg(cmd, lo)
	options.AddDurationArg(cmd, lo)
	topLevel.AddCommand(cmd)
}
