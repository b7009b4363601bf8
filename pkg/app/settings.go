package app

import "tableflip.dev/vita/pkg/health"

// SettingsOpened resets the settings form from the current user.
type SettingsOpened struct{}

func (SettingsOpened) Name() string     { return "settings/opened" }
func (SettingsOpened) feature() feature { return featureSettings }

// MoodWindowChanged tracks the mood analytics window field.
type MoodWindowChanged struct{ Window string }

func (MoodWindowChanged) Name() string     { return "settings/moodWindowDidChange" }
func (MoodWindowChanged) feature() feature { return featureSettings }

// SymptomWindowChanged tracks the symptom analytics window field.
type SymptomWindowChanged struct{ Window string }

func (SymptomWindowChanged) Name() string     { return "settings/symptomWindowDidChange" }
func (SymptomWindowChanged) feature() feature { return featureSettings }

// SettingsSaveRequested persists the edited windows to the user record.
type SettingsSaveRequested struct{}

func (SettingsSaveRequested) Name() string     { return "settings/onSavePressed" }
func (SettingsSaveRequested) feature() feature { return featureSettings }

// SettingsSaved lands the updated user.
type SettingsSaved struct{ User *health.User }

func (SettingsSaved) Name() string     { return "settings/onSaveSuccess" }
func (SettingsSaved) feature() feature { return featureSettings }

// SettingsSaveFailed surfaces a save error on the settings screen.
type SettingsSaveFailed struct{ Err error }

func (SettingsSaveFailed) Name() string     { return "settings/onSaveFailure" }
func (SettingsSaveFailed) feature() feature { return featureSettings }

// AccountLinkRequested links the current user to an external account so the
// journal can be restored on another device.
type AccountLinkRequested struct{ Account health.ExternalAccount }

func (AccountLinkRequested) Name() string     { return "settings/onLinkPressed" }
func (AccountLinkRequested) feature() feature { return featureSettings }

// AccountLinked lands the user with the account attached.
type AccountLinked struct{ User *health.User }

func (AccountLinked) Name() string     { return "settings/accountDidLink" }
func (AccountLinked) feature() feature { return featureSettings }

// AccountRestoreRequested looks up the user owning an external account and
// switches to it.
type AccountRestoreRequested struct{ Account health.ExternalAccount }

func (AccountRestoreRequested) Name() string     { return "settings/onRestorePressed" }
func (AccountRestoreRequested) feature() feature { return featureSettings }

// AccountRestored swaps the whole app over to the restored user. Every cache
// and screen resets; only the settings values survive, re-seeded from the
// restored user's record.
type AccountRestored struct{ User *health.User }

func (AccountRestored) Name() string     { return "settings/accountDidRestore" }
func (AccountRestored) feature() feature { return featureSettings }

// AccountActionFailed surfaces a link or restore error.
type AccountActionFailed struct{ Err error }

func (AccountActionFailed) Name() string     { return "settings/accountActionFailed" }
func (AccountActionFailed) feature() feature { return featureSettings }

func reduceSettings(s AppState, a Action) AppState {
	switch act := a.(type) {
	case SettingsOpened:
		form := SettingsState{
			MoodWindow:    health.DefaultSettings().MoodWindow,
			SymptomWindow: health.DefaultSettings().SymptomWindow,
		}
		if s.Global.User != nil {
			form.MoodWindow = s.Global.User.Settings.MoodWindow
			form.SymptomWindow = s.Global.User.Settings.SymptomWindow
		}
		s.Settings = form
	case MoodWindowChanged:
		s.Settings.MoodWindow = act.Window
		s.Settings.SaveSuccess = false
	case SymptomWindowChanged:
		s.Settings.SymptomWindow = act.Window
		s.Settings.SaveSuccess = false
	case SettingsSaveRequested:
		s.Settings.IsSaving = true
		s.Settings.SaveSuccess = false
		s.Settings.Err = nil
	case SettingsSaved:
		s.Settings.IsSaving = false
		s.Settings.SaveSuccess = true
		s.Global.User = act.User
	case SettingsSaveFailed:
		s.Settings.IsSaving = false
		s.Settings.Err = act.Err
	case AccountLinkRequested, AccountRestoreRequested:
		s.Settings.LinkInProgress = true
		s.Settings.Err = nil
	case AccountLinked:
		s.Settings.LinkInProgress = false
		s.Global.User = act.User
	case AccountRestored:
		// Fresh tree for the restored user; keep only the settings screen
		// values, re-seeded from the restored record.
		next := InitialState()
		next.Global.User = act.User
		next.Global.Initialized = true
		if act.User != nil {
			next.Settings.MoodWindow = act.User.Settings.MoodWindow
			next.Settings.SymptomWindow = act.User.Settings.SymptomWindow
		}
		next.Settings.RestoreSuccess = true
		return next
	case AccountActionFailed:
		s.Settings.LinkInProgress = false
		s.Settings.Err = act.Err
	}
	return s
}
