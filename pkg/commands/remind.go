package commands

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remind",
		Short:   "manage reminders",
		Aliases: []string{"reminders", "reminder"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRemindList(cmd)
	addRemindAdd(cmd)
	addRemindComplete(cmd)
	addRemindSkip(cmd)
	addRemindDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addRemindList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list reminders, soonest first",
		Example: `
vita remind list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := remind.List{
				ShowID:      io.ShowID,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addRemindAdd(topLevel *cobra.Command) {
	lo := &options.LogOptions{}
	var (
		category = "mood"
		at       string
		every    time.Duration
		push     bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "schedule a reminder",
		Example: `
vita remind add "evening check-in" --at 20:00 --every 24h
vita remind add --category med --item aspirin --at 08:00 --every 24h --push
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := health.ParseCategory(category)
			if err != nil {
				return err
			}
			fireAt, err := parseFireTime(at)
			if err != nil {
				return err
			}
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := remind.Add{
				Persistence: p,
				Category:    c,
				Title:       strings.Join(args, " "),
				Item:        lo.Item,
				At:          fireAt,
				Interval:    every,
				Push:        push,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "mood",
		"Category of the log the reminder creates.")
	cmd.Flags().StringVar(&at, "at", "",
		"First fire time, '15:04' today or RFC3339.")
	cmd.Flags().DurationVar(&every, "every", 0,
		"Repeat interval; omit for a one-shot reminder.")
	cmd.Flags().BoolVar(&push, "push", false,
		"Schedule a push notification slot.")
	options.AddItemArg(cmd, lo)

	topLevel.AddCommand(cmd)
}

func addRemindComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "complete [id]",
		Short:   "complete a reminder without logging",
		Aliases: []string{"done"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := remind.Complete{Persistence: p, ID: args[0]}
			return oo.HandleError(s.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addRemindSkip(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "skip [id]",
		Short: "push a reminder to its next slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := remind.Skip{Persistence: p, ID: args[0]}
			return oo.HandleError(s.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addRemindDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete [id]",
		Short:   "delete a reminder",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := so.Load()
			if err != nil {
				return err
			}
			s := remind.Delete{Persistence: p, ID: args[0]}
			return oo.HandleError(s.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

// parseFireTime accepts '15:04' (today, or tomorrow when already past) or a
// full RFC3339 timestamp.
func parseFireTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().Add(time.Hour), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	clock, err := time.Parse("15:04", raw)
	if err != nil {
		return time.Time{}, err
	}
	now := time.Now()
	at := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
	if at.Before(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at, nil
}
