package app

import (
	"sort"

	"tableflip.dev/vita/pkg/health"
)

// RemindersRequested loads the reminder list into the global cache.
type RemindersRequested struct{}

func (RemindersRequested) Name() string     { return "reminders/listRequested" }
func (RemindersRequested) feature() feature { return featureReminders }

// RemindersLoaded replaces the global reminder cache.
type RemindersLoaded struct{ Reminders []*health.Reminder }

func (RemindersLoaded) Name() string     { return "reminders/listDidLoad" }
func (RemindersLoaded) feature() feature { return featureReminders }

// RemindersLoadFailed surfaces a list fetch error.
type RemindersLoadFailed struct{ Err error }

func (RemindersLoadFailed) Name() string     { return "reminders/listLoadFailed" }
func (RemindersLoadFailed) feature() feature { return featureReminders }

// ReminderSkipRequested pushes a reminder's fire date forward without
// logging anything. One-shot reminders are deleted instead.
type ReminderSkipRequested struct{ Reminder *health.Reminder }

func (ReminderSkipRequested) Name() string     { return "reminders/onSkipPressed" }
func (ReminderSkipRequested) feature() feature { return featureReminders }

// ReminderSkipped lands the skip outcome in the cache.
type ReminderSkipped struct {
	Reminder *health.Reminder
	Deleted  bool
}

func (ReminderSkipped) Name() string     { return "reminders/didSkip" }
func (ReminderSkipped) feature() feature { return featureReminders }

// ReminderSkipFailed surfaces a skip error on the list.
type ReminderSkipFailed struct{ Err error }

func (ReminderSkipFailed) Name() string     { return "reminders/skipFailed" }
func (ReminderSkipFailed) feature() feature { return featureReminders }

// ReminderDetailOpened shows one reminder for editing; a nil reminder means
// a new one is being drafted.
type ReminderDetailOpened struct{ Reminder *health.Reminder }

func (ReminderDetailOpened) Name() string     { return "reminderDetail/opened" }
func (ReminderDetailOpened) feature() feature { return featureReminderDetail }

// ReminderSaveRequested persists the drafted or edited reminder.
type ReminderSaveRequested struct{ Reminder *health.Reminder }

func (ReminderSaveRequested) Name() string     { return "reminderDetail/onSavePressed" }
func (ReminderSaveRequested) feature() feature { return featureReminderDetail }

// ReminderSaved lands the persisted reminder.
type ReminderSaved struct{ Reminder *health.Reminder }

func (ReminderSaved) Name() string     { return "reminderDetail/onSaveSuccess" }
func (ReminderSaved) feature() feature { return featureReminderDetail }

// ReminderSaveFailed surfaces a save error on the detail screen.
type ReminderSaveFailed struct{ Err error }

func (ReminderSaveFailed) Name() string     { return "reminderDetail/onSaveFailure" }
func (ReminderSaveFailed) feature() feature { return featureReminderDetail }

// ReminderDeleteRequested deletes the opened reminder.
type ReminderDeleteRequested struct{ ID string }

func (ReminderDeleteRequested) Name() string     { return "reminderDetail/onDeletePressed" }
func (ReminderDeleteRequested) feature() feature { return featureReminderDetail }

// ReminderDeleted removes the reminder from the cache.
type ReminderDeleted struct{ ID string }

func (ReminderDeleted) Name() string     { return "reminderDetail/onDeleteSuccess" }
func (ReminderDeleted) feature() feature { return featureReminderDetail }

// ReminderDeleteFailed surfaces a delete error on the detail screen.
type ReminderDeleteFailed struct{ Err error }

func (ReminderDeleteFailed) Name() string     { return "reminderDetail/onDeleteFailure" }
func (ReminderDeleteFailed) feature() feature { return featureReminderDetail }

func reduceReminders(s AppState, a Action) AppState {
	switch act := a.(type) {
	case RemindersRequested:
		s.Reminders.IsLoading = true
		s.Reminders.Err = nil
	case RemindersLoaded:
		s.Reminders.IsLoading = false
		s.Global.Reminders = sortedReminders(act.Reminders)
	case RemindersLoadFailed:
		s.Reminders.IsLoading = false
		s.Reminders.Err = act.Err
	case ReminderSkipped:
		if act.Deleted {
			s.Global.Reminders = remindersWithout(s.Global.Reminders, act.Reminder.ID)
		} else {
			s.Global.Reminders = remindersUpserted(s.Global.Reminders, act.Reminder)
		}
	case ReminderSkipFailed:
		s.Reminders.Err = act.Err
	}
	return s
}

func reduceReminderDetail(s AppState, a Action) AppState {
	switch act := a.(type) {
	case ReminderDetailOpened:
		s.ReminderDetail = ReminderDetailState{Reminder: act.Reminder}
	case ReminderSaveRequested:
		s.ReminderDetail.IsSaving = true
		s.ReminderDetail.Err = nil
	case ReminderSaved:
		s.ReminderDetail.IsSaving = false
		s.ReminderDetail.SaveSuccess = true
		s.ReminderDetail.Reminder = act.Reminder
		s.Global.Reminders = remindersUpserted(s.Global.Reminders, act.Reminder)
	case ReminderSaveFailed:
		s.ReminderDetail.IsSaving = false
		s.ReminderDetail.Err = act.Err
	case ReminderDeleteRequested:
		s.ReminderDetail.IsDeleting = true
		s.ReminderDetail.Err = nil
	case ReminderDeleted:
		s.ReminderDetail.IsDeleting = false
		s.Global.Reminders = remindersWithout(s.Global.Reminders, act.ID)
	case ReminderDeleteFailed:
		s.ReminderDetail.IsDeleting = false
		s.ReminderDetail.Err = act.Err
	}
	return s
}

// remindersUpserted replaces the reminder with a matching id, or appends it,
// keeping the slice sorted by fire date. The input slice is never mutated.
func remindersUpserted(list []*health.Reminder, r *health.Reminder) []*health.Reminder {
	if r == nil {
		return list
	}
	out := make([]*health.Reminder, 0, len(list)+1)
	for _, existing := range list {
		if existing.ID == r.ID {
			continue
		}
		out = append(out, existing)
	}
	out = append(out, r)
	return sortedReminders(out)
}

func remindersWithout(list []*health.Reminder, id string) []*health.Reminder {
	out := make([]*health.Reminder, 0, len(list))
	for _, existing := range list {
		if existing.ID == id {
			continue
		}
		out = append(out, existing)
	}
	return out
}

func sortedReminders(list []*health.Reminder) []*health.Reminder {
	out := append([]*health.Reminder{}, list...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NextFireAt.Time.Before(out[j].NextFireAt.Time)
	})
	return out
}
