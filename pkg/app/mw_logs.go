package app

import (
	"context"
	"time"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/services"
	"tableflip.dev/vita/pkg/store"
)

const recentLogsLimit = 20

// LogMiddleware serves log fetches, detail hydration, and deletion.
func LogMiddleware(svc Services) Middleware {
	return func(ctx context.Context, s AppState, a Action, d Dispatch) {
		user := s.Global.User
		switch act := a.(type) {
		case DaySelected, DayLogsRequested:
			day := s.ViewLogs.Date
			go fetchDay(ctx, svc, user, day, d)
		case HomeOpened:
			go func() {
				if user == nil {
					return
				}
				logs, err := svc.Logs.GetLogs(ctx, user, services.ListOptions{Limit: recentLogsLimit})
				if err != nil {
					return // the dashboard just shows what it has
				}
				d(RecentLogsLoaded{Logs: logs})
			}()
		case LogDetailOpened:
			if act.Log == nil || act.Log.ItemID() == "" {
				return
			}
			go func() {
				if user == nil {
					d(LogDetailHydrateFailed{Err: errNoUser})
					return
				}
				hydrated, err := svc.Logs.InitLogDetails(ctx, act.Log, user)
				if err != nil {
					d(LogDetailHydrateFailed{Err: err})
					return
				}
				d(LogDetailHydrated{Log: hydrated})
			}()
		case LogDeleteRequested:
			go func() {
				if user == nil {
					d(LogDeleteFailed{Err: errNoUser})
					return
				}
				if err := svc.Logs.DeleteLog(ctx, act.ID, user); err != nil && !services.IsNotFound(err) {
					d(LogDeleteFailed{Err: err})
					return
				}
				// Deleting an already-gone log still succeeds.
				d(LogDeleteSucceeded{ID: act.ID})
			}()
		case StorageChanged:
			if act.Kind != store.KindLog {
				return
			}
			day := s.ViewLogs.Date
			go fetchDay(ctx, svc, user, day, d)
		}
	}
}

func fetchDay(ctx context.Context, svc Services, user *health.User, day time.Time, d Dispatch) {
	if user == nil {
		d(DayLogsLoadFailed{Err: errNoUser})
		return
	}
	start := health.Timestamp{Time: day}.DayKey()
	logs, err := svc.Logs.GetLogs(ctx, user, services.ListOptions{
		From: start,
		To:   start.Add(24 * time.Hour),
	})
	if err != nil {
		d(DayLogsLoadFailed{Err: err})
		return
	}
	d(DayLogsLoaded{DayKey: health.Timestamp{Time: start}.DayKeyString(), Logs: logs})
}
