package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/services"
	"tableflip.dev/vita/pkg/store"
)

const layoutUS = "January 2, 2006"

// Get prints logs for one day, or every day when All is set, optionally
// filtered by category.
type Get struct {
	ShowID      bool
	Persistence store.Persistence

	Category health.Category
	On       time.Time
	All      bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	logs := services.NewLogService(n.Persistence)
	user, err := services.ResolveCurrentUser(ctx, services.NewUserService(n.Persistence))
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	opts := services.ListOptions{Category: n.Category}
	if !n.All {
		day := health.Timestamp{Time: n.On}.DayKey()
		opts.From = day
		opts.To = day.Add(24 * time.Hour)
	}

	all, err := logs.GetLogs(ctx, user, opts)
	if err != nil {
		return err
	}

	if !n.All {
		pp.TitleWithCount(n.On.Format(layoutUS), len(all))
		pp.Logs(all...)
		return nil
	}

	byDay := make(map[string][]*health.Log)
	order := make([]string, 0)
	for _, l := range all {
		key := l.Created.DayKeyString()
		if _, ok := byDay[key]; !ok {
			order = append(order, key)
		}
		byDay[key] = append(byDay[key], l)
	}
	for _, key := range order {
		pp.TitleWithCount(key, len(byDay[key]))
		pp.Logs(byDay[key]...)
	}
	return nil
}
