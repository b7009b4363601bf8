package app

import (
	"time"

	"tableflip.dev/vita/pkg/health"
)

// DaySelected moves the history screen to a calendar day and triggers a
// fetch for that day's logs.
type DaySelected struct{ Date time.Time }

func (DaySelected) Name() string     { return "viewLogs/daySelected" }
func (DaySelected) feature() feature { return featureViewLogs }

// DayLogsRequested re-fetches the currently selected day.
type DayLogsRequested struct{}

func (DayLogsRequested) Name() string     { return "viewLogs/logsRequested" }
func (DayLogsRequested) feature() feature { return featureViewLogs }

// DayLogsLoaded replaces the selected day's bucket in the global cache.
type DayLogsLoaded struct {
	DayKey string
	Logs   []*health.Log
}

func (DayLogsLoaded) Name() string     { return "viewLogs/logsDidLoad" }
func (DayLogsLoaded) feature() feature { return featureViewLogs }

// DayLogsLoadFailed surfaces a fetch error on the history screen.
type DayLogsLoadFailed struct{ Err error }

func (DayLogsLoadFailed) Name() string     { return "viewLogs/logsLoadFailed" }
func (DayLogsLoadFailed) feature() feature { return featureViewLogs }

func reduceViewLogs(s AppState, a Action) AppState {
	switch act := a.(type) {
	case DaySelected:
		s.ViewLogs.Date = health.Timestamp{Time: act.Date}.DayKey()
		s.ViewLogs.IsLoading = true
		s.ViewLogs.Err = nil
	case DayLogsRequested:
		s.ViewLogs.IsLoading = true
		s.ViewLogs.Err = nil
	case DayLogsLoaded:
		s.ViewLogs.IsLoading = false
		s.Global = withDayLogs(s.Global, act.DayKey, act.Logs)
	case DayLogsLoadFailed:
		s.ViewLogs.IsLoading = false
		s.ViewLogs.Err = act.Err
	}
	return s
}
