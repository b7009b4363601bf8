package app

import (
	"context"

	"tableflip.dev/vita/pkg/store"
)

// AnalyticsMiddleware recomputes the dashboard whenever it is opened,
// explicitly refreshed, or the log store changed underneath it.
func AnalyticsMiddleware(svc Services) Middleware {
	return func(ctx context.Context, s AppState, a Action, d Dispatch) {
		switch act := a.(type) {
		case HomeOpened, AnalyticsRequested:
		case StorageChanged:
			if act.Kind != store.KindLog {
				return
			}
		default:
			return
		}
		user := s.Global.User
		go func() {
			if user == nil {
				d(AnalyticsLoadFailed{Err: errNoUser})
				return
			}
			got, err := svc.Analytics.GetAll(ctx, user)
			if err != nil {
				d(AnalyticsLoadFailed{Err: err})
				return
			}
			d(AnalyticsLoaded{Analytics: got})
		}()
	}
}
