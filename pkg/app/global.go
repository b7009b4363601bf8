package app

import (
	"sort"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/store"
)

// AppLaunched starts app-init: resolve the persisted user or create one.
type AppLaunched struct{}

func (AppLaunched) Name() string     { return "global/appLaunched" }
func (AppLaunched) feature() feature { return featureGlobal }

// UserInitialized lands the resolved user in global state.
type UserInitialized struct {
	User *health.User
}

func (UserInitialized) Name() string     { return "global/userInitialized" }
func (UserInitialized) feature() feature { return featureGlobal }

// UserInitFailed records a fatal init failure; there is no retry flow.
type UserInitFailed struct {
	Err error
}

func (UserInitFailed) Name() string     { return "global/userInitFailed" }
func (UserInitFailed) feature() feature { return featureGlobal }

// StorageChanged arrives from the storage watcher when another process
// touched the database; middleware reacts by refreshing the affected caches.
type StorageChanged struct {
	Kind store.Kind
}

func (StorageChanged) Name() string     { return "global/storageChanged" }
func (StorageChanged) feature() feature { return featureGlobal }

func reduceGlobal(s AppState, a Action) AppState {
	switch act := a.(type) {
	case UserInitialized:
		s.Global.User = act.User
		s.Global.Initialized = true
		s.Global.InitErr = nil
		if act.User != nil {
			s.Settings.MoodWindow = act.User.Settings.MoodWindow
			s.Settings.SymptomWindow = act.User.Settings.SymptomWindow
		}
	case UserInitFailed:
		s.Global.Initialized = true
		s.Global.InitErr = act.Err
	case AppLaunched, StorageChanged:
		// Middleware-only actions; state is untouched.
	}
	return s
}

// withLogInserted returns a GlobalState with the log filed into its day
// bucket (deduplicated by id, bucket sorted newest first) and prepended to
// the recent list. Containers are copied; prior states keep what they had.
func withLogInserted(g GlobalState, l *health.Log) GlobalState {
	if l == nil {
		return g
	}
	key := l.Created.DayKeyString()

	byDay := make(map[string][]*health.Log, len(g.LogsByDay)+1)
	for k, bucket := range g.LogsByDay {
		byDay[k] = bucket
	}

	bucket := make([]*health.Log, 0, len(byDay[key])+1)
	for _, existing := range g.LogsByDay[key] {
		if existing.ID == l.ID {
			continue // most recently inserted copy wins
		}
		bucket = append(bucket, existing)
	}
	bucket = append(bucket, l)
	sortBucket(bucket)
	byDay[key] = bucket
	g.LogsByDay = byDay

	recent := make([]*health.Log, 0, len(g.RecentLogs)+1)
	recent = append(recent, l)
	for _, existing := range g.RecentLogs {
		if existing.ID == l.ID {
			continue
		}
		recent = append(recent, existing)
	}
	g.RecentLogs = recent
	return g
}

// withLogRemoved drops the id from every day bucket and the recent list. An
// absent id is a no-op, not an error.
func withLogRemoved(g GlobalState, id string) GlobalState {
	if id == "" {
		return g
	}
	byDay := make(map[string][]*health.Log, len(g.LogsByDay))
	for key, bucket := range g.LogsByDay {
		kept := make([]*health.Log, 0, len(bucket))
		for _, l := range bucket {
			if l.ID == id {
				continue
			}
			kept = append(kept, l)
		}
		if len(kept) > 0 {
			byDay[key] = kept
		}
	}
	g.LogsByDay = byDay

	recent := make([]*health.Log, 0, len(g.RecentLogs))
	for _, l := range g.RecentLogs {
		if l.ID == id {
			continue
		}
		recent = append(recent, l)
	}
	g.RecentLogs = recent
	return g
}

// withDayLogs replaces one day bucket wholesale from a fetch result.
func withDayLogs(g GlobalState, dayKey string, logs []*health.Log) GlobalState {
	byDay := make(map[string][]*health.Log, len(g.LogsByDay)+1)
	for k, bucket := range g.LogsByDay {
		byDay[k] = bucket
	}
	bucket := dedupeByID(logs)
	sortBucket(bucket)
	byDay[dayKey] = bucket
	g.LogsByDay = byDay
	return g
}

func dedupeByID(logs []*health.Log) []*health.Log {
	seen := make(map[string]int, len(logs))
	out := make([]*health.Log, 0, len(logs))
	for _, l := range logs {
		if l == nil {
			continue
		}
		if idx, ok := seen[l.ID]; ok {
			out[idx] = l // keep the most recently supplied copy
			continue
		}
		seen[l.ID] = len(out)
		out = append(out, l)
	}
	return out
}

func sortBucket(bucket []*health.Log) {
	sort.SliceStable(bucket, func(i, j int) bool {
		lt := bucket[i].Created.Time
		rt := bucket[j].Created.Time
		if lt.Equal(rt) {
			return bucket[i].ID < bucket[j].ID
		}
		return lt.After(rt)
	})
}
