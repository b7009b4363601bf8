package app

import (
	"context"

	"tableflip.dev/vita/pkg/health"
)

// CreateLogMiddleware persists the create form on save. When the form came
// from a fired reminder, a successful save also completes that reminder and
// re-syncs its notification slot; notification failures are silenced, they
// never fail the save.
func CreateLogMiddleware(svc Services) Middleware {
	return func(ctx context.Context, s AppState, a Action, d Dispatch) {
		if _, ok := a.(CreateSaveRequested); !ok {
			return
		}
		form := s.CreateLog
		user := s.Global.User
		reminder := reminderByID(s.Global.Reminders, form.FromReminderID)
		go func() {
			if user == nil {
				d(CreateSaveFailed{Err: errNoUser})
				return
			}
			l, err := buildLog(form)
			if err != nil {
				d(CreateSaveFailed{Err: err})
				return
			}
			if err := svc.Logs.SaveLog(ctx, l, user); err != nil {
				d(CreateSaveFailed{Err: err})
				return
			}

			result := CreateSaveSucceeded{Log: l}
			if reminder != nil {
				completed, didDelete, err := svc.Reminders.Complete(ctx, reminder, user)
				if err != nil {
					// The log is already saved; report success with the
					// reminder failure attached.
					result.ReminderErr = err
					d(result)
					return
				}
				result.CompletedReminder = completed
				result.ReminderDeleted = didDelete
				if didDelete {
					_ = svc.Notifications.CancelForReminder(ctx, completed.ID, user)
				} else {
					_, _ = svc.Notifications.Schedule(ctx, completed, user)
				}
			}
			d(result)
		}()
	}
}

func reminderByID(list []*health.Reminder, id string) *health.Reminder {
	if id == "" {
		return nil
	}
	for _, r := range list {
		if r.ID == id {
			return r
		}
	}
	return nil
}
