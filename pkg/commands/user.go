package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/runner/user"
)

func addUser(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "show or manage the journal owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := user.Show{Persistence: p}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	addUserSettings(cmd)
	addUserLink(cmd)
	addUserRestore(cmd)

	topLevel.AddCommand(cmd)
}

func addUserSettings(topLevel *cobra.Command) {
	var moodWindow, symptomWindow string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "update analytics windows",
		Example: `
vita user settings --mood-window 4w
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := user.Settings{
				Persistence:   p,
				MoodWindow:    moodWindow,
				SymptomWindow: symptomWindow,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&moodWindow, "mood-window", "",
		"Mood analytics window, e.g. '2w'.")
	cmd.Flags().StringVar(&symptomWindow, "symptom-window", "",
		"Symptom analytics window, e.g. '4w'.")

	topLevel.AddCommand(cmd)
}

func addUserLink(topLevel *cobra.Command) {
	var provider string

	cmd := &cobra.Command{
		Use:   "link [account-id]",
		Short: "link an external account for restore",
		Args:  cobra.ExactArgs(1),
		Example: `
vita user link --provider icloud me@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := user.Link{
				Persistence: p,
				Provider:    provider,
				AccountID:   args[0],
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "icloud",
		"Account provider.")

	topLevel.AddCommand(cmd)
}

func addUserRestore(topLevel *cobra.Command) {
	var provider string

	cmd := &cobra.Command{
		Use:   "restore [account-id]",
		Short: "switch to the journal linked to an account",
		Args:  cobra.ExactArgs(1),
		Example: `
vita user restore --provider icloud me@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := user.Restore{
				Persistence: p,
				Provider:    provider,
				AccountID:   args[0],
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "icloud",
		"Account provider.")

	topLevel.AddCommand(cmd)
}
