package app

import (
	"context"

	"tableflip.dev/vita/pkg/store"
)

// ReminderMiddleware serves the reminder list and its mutations. Every
// mutation re-syncs the reminder's notification slot; notification errors
// are dropped on the floor, the reminder operation already succeeded.
func ReminderMiddleware(svc Services) Middleware {
	return func(ctx context.Context, s AppState, a Action, d Dispatch) {
		user := s.Global.User
		switch act := a.(type) {
		case RemindersRequested:
			go func() {
				if user == nil {
					d(RemindersLoadFailed{Err: errNoUser})
					return
				}
				all, err := svc.Reminders.GetAll(ctx, user)
				if err != nil {
					d(RemindersLoadFailed{Err: err})
					return
				}
				d(RemindersLoaded{Reminders: all})
			}()
		case ReminderSkipRequested:
			go func() {
				if user == nil {
					d(ReminderSkipFailed{Err: errNoUser})
					return
				}
				skipped, err := svc.Reminders.Skip(ctx, act.Reminder, user)
				if err != nil {
					d(ReminderSkipFailed{Err: err})
					return
				}
				deleted := !act.Reminder.Recurring()
				if deleted {
					_ = svc.Notifications.CancelForReminder(ctx, skipped.ID, user)
				} else {
					_, _ = svc.Notifications.Schedule(ctx, skipped, user)
				}
				d(ReminderSkipped{Reminder: skipped, Deleted: deleted})
			}()
		case ReminderSaveRequested:
			go func() {
				if user == nil {
					d(ReminderSaveFailed{Err: errNoUser})
					return
				}
				saved, err := svc.Reminders.SaveOrUpdate(ctx, act.Reminder, user)
				if err != nil {
					d(ReminderSaveFailed{Err: err})
					return
				}
				_, _ = svc.Notifications.Schedule(ctx, saved, user)
				d(ReminderSaved{Reminder: saved})
			}()
		case ReminderDeleteRequested:
			reminder := reminderByID(s.Global.Reminders, act.ID)
			go func() {
				if user == nil {
					d(ReminderDeleteFailed{Err: errNoUser})
					return
				}
				if reminder != nil {
					if _, err := svc.Reminders.Delete(ctx, reminder, user); err != nil {
						d(ReminderDeleteFailed{Err: err})
						return
					}
				}
				_ = svc.Notifications.CancelForReminder(ctx, act.ID, user)
				d(ReminderDeleted{ID: act.ID})
			}()
		case StorageChanged:
			if act.Kind != store.KindReminder {
				return
			}
			d(RemindersRequested{})
		}
	}
}
