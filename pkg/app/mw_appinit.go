package app

import (
	"context"

	"tableflip.dev/vita/pkg/services"
)

// AppInitMiddleware resolves the active user on launch: reuse the
// bookmarked user when one exists, otherwise create a fresh record and
// bookmark it. A bookmark pointing at a user that no longer exists is
// cleared before the failure surfaces, so the next launch starts clean;
// any other fetch error leaves the bookmark alone. A failure here is
// terminal for the session; there is no retry action.
func AppInitMiddleware(svc Services) Middleware {
	return func(ctx context.Context, s AppState, a Action, d Dispatch) {
		if _, ok := a.(AppLaunched); !ok {
			return
		}
		go func() {
			id, err := svc.Users.CurrentUserID()
			if err != nil {
				d(UserInitFailed{Err: err})
				return
			}
			if id != "" {
				u, err := svc.Users.Get(ctx, id)
				if err == nil {
					d(UserInitialized{User: u})
					return
				}
				if services.IsNotFound(err) {
					_ = svc.Users.SetCurrentUserID("")
				}
				d(UserInitFailed{Err: err})
				return
			}
			u, err := svc.Users.CreateUser(ctx)
			if err != nil {
				d(UserInitFailed{Err: err})
				return
			}
			if err := svc.Users.SetCurrentUserID(u.ID); err != nil {
				d(UserInitFailed{Err: err})
				return
			}
			d(UserInitialized{User: u})
		}()
	}
}
