// Package app implements the unidirectional state core: a single AppState
// tree, a pure reducer over tagged actions, an ordered middleware chain for
// async service I/O, and the Store that owns dispatch.
package app

import (
	"time"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/services"
)

// AppState is the root aggregate. Sub-states are independent; cross-feature
// reads go through Global. Reducers replace the tree, they never mutate what
// previous states point at.
type AppState struct {
	Global         GlobalState
	Home           HomeState
	CreateLog      CreateLogState
	ViewLogs       ViewLogsState
	LogDetail      LogDetailState
	Reminders      RemindersState
	ReminderDetail ReminderDetailState
	Settings       SettingsState
}

// GlobalState is cross-cutting: the current user and the in-memory caches.
type GlobalState struct {
	User        *health.User
	Initialized bool
	InitErr     error

	// LogsByDay buckets logs by local calendar day (ISO date key), each
	// bucket sorted newest first and deduplicated by id.
	LogsByDay map[string][]*health.Log

	// RecentLogs is the newest-first flat cache backing the home screen.
	RecentLogs []*health.Log

	Reminders []*health.Reminder
}

// HomeState backs the analytics dashboard.
type HomeState struct {
	Analytics *services.Analytics
	IsLoading bool
	Err       error
}

// CreateLogState is the create-log form plus its catalog search.
type CreateLogState struct {
	Category health.Category
	Title    string
	Notes    string

	MoodRank health.MoodRank
	Dosage   string
	Amount   string
	Severity health.Severity
	Duration time.Duration

	SelectedItem *health.CatalogItem

	SearchQuery      string
	SearchResults    []*health.CatalogItem
	SearchGeneration uint64
	IsSearching      bool

	// FromReminderID is set when the form was opened from a fired reminder;
	// saving then also completes that reminder.
	FromReminderID string

	IsCreating    bool
	CreateSuccess bool
	Err           error
}

// ViewLogsState backs the history screen for one calendar day.
type ViewLogsState struct {
	Date      time.Time
	IsLoading bool
	Err       error
}

// LogDetailState backs a single opened log.
type LogDetailState struct {
	Log           *health.Log
	IsLoading     bool
	IsDeleting    bool
	DeleteSuccess bool
	Err           error
}

// RemindersState backs the reminders list; the list itself is the global
// reminder cache.
type RemindersState struct {
	IsLoading bool
	Err       error
}

// ReminderDetailState backs a single opened reminder.
type ReminderDetailState struct {
	Reminder    *health.Reminder
	IsSaving    bool
	SaveSuccess bool
	IsDeleting  bool
	Err         error
}

// SettingsState backs user settings and external-account management.
type SettingsState struct {
	MoodWindow    string
	SymptomWindow string
	IsSaving      bool
	SaveSuccess   bool

	LinkInProgress bool
	RestoreSuccess bool
	Err            error
}

// InitialState returns the tree a fresh (or fully reset) app starts from.
func InitialState() AppState {
	return AppState{
		Global: GlobalState{
			LogsByDay: map[string][]*health.Log{},
		},
		CreateLog: CreateLogState{
			Category: health.CategoryNote,
			MoodRank: health.MoodNeutral,
		},
		ViewLogs: ViewLogsState{
			Date: health.Now().DayKey(),
		},
		Settings: SettingsState{
			MoodWindow:    health.DefaultSettings().MoodWindow,
			SymptomWindow: health.DefaultSettings().SymptomWindow,
		},
	}
}
