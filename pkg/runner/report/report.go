package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/services"
	"tableflip.dev/vita/pkg/store"
	"tableflip.dev/vita/pkg/timeutil"
)

// Report prints the analytics dashboard and this month's tracking grid.
// Window overrides apply to this run only; the persisted settings stay.
type Report struct {
	Persistence store.Persistence

	MoodWindow    string
	SymptomWindow string
}

func (n *Report) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not report, no persistence")
	}
	user, err := services.ResolveCurrentUser(ctx, services.NewUserService(n.Persistence))
	if err != nil {
		return err
	}

	if n.MoodWindow != "" {
		_, label, err := timeutil.ParseWindow(n.MoodWindow)
		if err != nil {
			return err
		}
		user.Settings.MoodWindow = label
	}
	if n.SymptomWindow != "" {
		_, label, err := timeutil.ParseWindow(n.SymptomWindow)
		if err != nil {
			return err
		}
		user.Settings.SymptomWindow = label
	}

	analytics := services.NewAnalyticsService(n.Persistence, time.Now)
	got, err := analytics.GetAll(ctx, user)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Report(got)

	logs, err := services.NewLogService(n.Persistence).GetLogs(ctx, user, services.ListOptions{})
	if err != nil {
		return err
	}
	pp.Tracking(logs...)
	return nil
}
