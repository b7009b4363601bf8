package app

import "context"

// SettingsMiddleware persists settings edits and drives the external-account
// link and restore flows.
func SettingsMiddleware(svc Services) Middleware {
	return func(ctx context.Context, s AppState, a Action, d Dispatch) {
		user := s.Global.User
		switch act := a.(type) {
		case SettingsSaveRequested:
			mood := s.Settings.MoodWindow
			symptom := s.Settings.SymptomWindow
			go func() {
				if user == nil {
					d(SettingsSaveFailed{Err: errNoUser})
					return
				}
				updated := user.Clone()
				updated.Settings.MoodWindow = mood
				updated.Settings.SymptomWindow = symptom
				if err := svc.Users.Save(ctx, updated); err != nil {
					d(SettingsSaveFailed{Err: err})
					return
				}
				d(SettingsSaved{User: updated})
			}()
		case AccountLinkRequested:
			go func() {
				if user == nil {
					d(AccountActionFailed{Err: errNoUser})
					return
				}
				linked := user.Clone()
				account := act.Account
				linked.Account = &account
				if err := svc.Users.Save(ctx, linked); err != nil {
					d(AccountActionFailed{Err: err})
					return
				}
				d(AccountLinked{User: linked})
			}()
		case AccountRestoreRequested:
			go func() {
				restored, err := svc.Users.FindByAccount(ctx, act.Account)
				if err != nil {
					d(AccountActionFailed{Err: err})
					return
				}
				if err := svc.Users.SetCurrentUserID(restored.ID); err != nil {
					d(AccountActionFailed{Err: err})
					return
				}
				d(AccountRestored{User: restored})
			}()
		}
	}
}
