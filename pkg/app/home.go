package app

import (
	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/services"
)

// HomeOpened loads the dashboard: analytics plus the recent-log cache.
type HomeOpened struct{}

func (HomeOpened) Name() string     { return "home/opened" }
func (HomeOpened) feature() feature { return featureHome }

// AnalyticsRequested recomputes the dashboard analytics.
type AnalyticsRequested struct{}

func (AnalyticsRequested) Name() string     { return "home/analyticsRequested" }
func (AnalyticsRequested) feature() feature { return featureHome }

// AnalyticsLoaded lands the computed analytics.
type AnalyticsLoaded struct{ Analytics *services.Analytics }

func (AnalyticsLoaded) Name() string     { return "home/analyticsDidLoad" }
func (AnalyticsLoaded) feature() feature { return featureHome }

// AnalyticsLoadFailed surfaces an analytics error; stale analytics stay on
// screen.
type AnalyticsLoadFailed struct{ Err error }

func (AnalyticsLoadFailed) Name() string     { return "home/analyticsLoadFailed" }
func (AnalyticsLoadFailed) feature() feature { return featureHome }

// RecentLogsLoaded replaces the newest-first recent cache.
type RecentLogsLoaded struct{ Logs []*health.Log }

func (RecentLogsLoaded) Name() string     { return "home/recentLogsDidLoad" }
func (RecentLogsLoaded) feature() feature { return featureHome }

func reduceHome(s AppState, a Action) AppState {
	switch act := a.(type) {
	case HomeOpened, AnalyticsRequested:
		s.Home.IsLoading = true
		s.Home.Err = nil
	case AnalyticsLoaded:
		s.Home.IsLoading = false
		s.Home.Analytics = act.Analytics
	case AnalyticsLoadFailed:
		s.Home.IsLoading = false
		s.Home.Err = act.Err
	case RecentLogsLoaded:
		s.Global.RecentLogs = dedupeByID(act.Logs)
	}
	return s
}
