package app

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/vita/pkg/health"
)

func moodLog(t *testing.T, title string, created time.Time) *health.Log {
	t.Helper()
	l := health.NewLog(health.CategoryMood, title)
	l.Mood = &health.MoodDetail{Rank: health.MoodGood}
	l.Created = health.Timestamp{Time: created}
	return l
}

func TestReduceIsDeterministic(t *testing.T) {
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)
	u := health.NewUser()
	a := moodLog(t, "a", now)
	b := moodLog(t, "b", now.Add(time.Hour))

	sequence := []Action{
		UserInitialized{User: u},
		CreateLogOpened{Category: health.CategoryMood},
		CreateSaveRequested{},
		CreateSaveSucceeded{Log: a},
		CreateSaveSucceeded{Log: b},
		DaySelected{Date: now},
	}

	run := func() AppState {
		s := InitialState()
		for _, act := range sequence {
			s = Reduce(s, act)
		}
		return s
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same action sequence produced different states")
	}
}

func TestLogInsertDedupesAndSortsNewestFirst(t *testing.T) {
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)
	old := moodLog(t, "old", now.Add(-2*time.Hour))
	mid := moodLog(t, "mid", now.Add(-time.Hour))
	newest := moodLog(t, "new", now)

	s := InitialState()
	for _, l := range []*health.Log{old, newest, mid} {
		s = Reduce(s, CreateSaveSucceeded{Log: l})
	}

	key := newest.Created.DayKeyString()
	bucket := s.Global.LogsByDay[key]
	if len(bucket) != 3 {
		t.Fatalf("expected 3 logs in bucket, got %d", len(bucket))
	}
	if bucket[0].ID != newest.ID || bucket[2].ID != old.ID {
		t.Fatalf("bucket not sorted newest first: %v", []string{bucket[0].Title, bucket[1].Title, bucket[2].Title})
	}

	// Re-inserting the same id replaces instead of duplicating.
	edited := mid.Clone()
	edited.Title = "edited"
	s = Reduce(s, CreateSaveSucceeded{Log: edited})
	bucket = s.Global.LogsByDay[key]
	if len(bucket) != 3 {
		t.Fatalf("expected dedup by id, got %d logs", len(bucket))
	}
	for _, l := range bucket {
		if l.ID == mid.ID && l.Title != "edited" {
			t.Fatalf("expected the newest inserted copy to win")
		}
	}
}

func TestLogInsertDoesNotMutatePriorState(t *testing.T) {
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)
	first := moodLog(t, "first", now)
	second := moodLog(t, "second", now.Add(time.Minute))

	before := Reduce(InitialState(), CreateSaveSucceeded{Log: first})
	key := first.Created.DayKeyString()
	snapshot := len(before.Global.LogsByDay[key])

	after := Reduce(before, CreateSaveSucceeded{Log: second})

	if len(before.Global.LogsByDay[key]) != snapshot {
		t.Fatalf("reducing mutated the prior state's bucket")
	}
	if len(after.Global.LogsByDay[key]) != snapshot+1 {
		t.Fatalf("expected the next state to grow")
	}
}

func TestDeleteRemovesEverywhereAndAbsentIsNoOp(t *testing.T) {
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)
	l := moodLog(t, "doomed", now)

	s := Reduce(InitialState(), CreateSaveSucceeded{Log: l})
	s = Reduce(s, LogDeleteSucceeded{ID: l.ID})

	if len(s.Global.LogsByDay) != 0 {
		t.Fatalf("expected empty bucket dropped, got %d buckets", len(s.Global.LogsByDay))
	}
	if len(s.Global.RecentLogs) != 0 {
		t.Fatalf("expected recent cache cleared")
	}
	if !s.LogDetail.DeleteSuccess {
		t.Fatalf("expected delete success flag")
	}

	// Deleting an id nobody has is a quiet no-op.
	again := Reduce(s, LogDeleteSucceeded{ID: "missing"})
	if again.LogDetail.Err != nil {
		t.Fatalf("absent id must not error: %v", again.LogDetail.Err)
	}
}

func TestStaleSearchCompletionIsDropped(t *testing.T) {
	s := Reduce(InitialState(), CreateLogOpened{Category: health.CategoryMedication})
	s = Reduce(s, CreateSearchQueryChanged{Query: "as"})
	staleGen := s.CreateLog.SearchGeneration
	s = Reduce(s, CreateSearchQueryChanged{Query: "asp"})

	stale := []*health.CatalogItem{{ID: "1", Name: "Aspartame"}}
	fresh := []*health.CatalogItem{{ID: "2", Name: "Aspirin"}}

	s = Reduce(s, CreateSearchCompleted{Generation: staleGen, Results: stale})
	if len(s.CreateLog.SearchResults) != 0 {
		t.Fatalf("stale completion must be discarded")
	}
	if !s.CreateLog.IsSearching {
		t.Fatalf("still waiting for the current generation")
	}

	s = Reduce(s, CreateSearchCompleted{Generation: s.CreateLog.SearchGeneration, Results: fresh})
	if len(s.CreateLog.SearchResults) != 1 || s.CreateLog.SearchResults[0].Name != "Aspirin" {
		t.Fatalf("expected the current generation's results, got %+v", s.CreateLog.SearchResults)
	}
	if s.CreateLog.IsSearching {
		t.Fatalf("search should be settled")
	}
}

func TestAccountRestoreResetsEverythingButSettings(t *testing.T) {
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)
	original := health.NewUser()

	s := Reduce(InitialState(), UserInitialized{User: original})
	s = Reduce(s, CreateSaveSucceeded{Log: moodLog(t, "before restore", now)})
	s = Reduce(s, CreateTitleChanged{Title: "half-typed"})

	restored := health.NewUser()
	restored.Settings.MoodWindow = "6w"
	restored.Settings.SymptomWindow = "8w"
	restored.Account = &health.ExternalAccount{Provider: "icloud", AccountID: "abc"}

	s = Reduce(s, AccountRestored{User: restored})

	if s.Global.User == nil || s.Global.User.ID != restored.ID {
		t.Fatalf("expected the restored user")
	}
	if len(s.Global.LogsByDay) != 0 || len(s.Global.RecentLogs) != 0 {
		t.Fatalf("expected log caches cleared")
	}
	if s.CreateLog.Title != "" {
		t.Fatalf("expected form state reset")
	}
	if s.Settings.MoodWindow != "6w" || s.Settings.SymptomWindow != "8w" {
		t.Fatalf("expected settings re-seeded from the restored user, got %q/%q",
			s.Settings.MoodWindow, s.Settings.SymptomWindow)
	}
	if !s.Settings.RestoreSuccess {
		t.Fatalf("expected restore success flag")
	}
}

func TestDayLogsLoadedReplacesBucket(t *testing.T) {
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)
	stale := moodLog(t, "stale", now)
	fresh := moodLog(t, "fresh", now.Add(time.Minute))
	key := stale.Created.DayKeyString()

	s := Reduce(InitialState(), CreateSaveSucceeded{Log: stale})
	s = Reduce(s, DayLogsLoaded{DayKey: key, Logs: []*health.Log{fresh}})

	bucket := s.Global.LogsByDay[key]
	if len(bucket) != 1 || bucket[0].ID != fresh.ID {
		t.Fatalf("expected fetch to replace the bucket wholesale")
	}
	if s.ViewLogs.IsLoading {
		t.Fatalf("expected loading flag cleared")
	}
}

func TestCompletedReminderUpdatesGlobalCache(t *testing.T) {
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)
	day := 24 * time.Hour
	template := health.NewLog(health.CategoryMood, "check in")
	template.Mood = &health.MoodDetail{Rank: health.MoodNeutral}

	recurring := health.NewReminder(template, now.Add(-time.Hour), &day)
	oneShot := health.NewReminder(template, now.Add(-time.Hour), nil)

	s := Reduce(InitialState(), RemindersLoaded{Reminders: []*health.Reminder{recurring, oneShot}})
	if len(s.Global.Reminders) != 2 {
		t.Fatalf("expected both reminders cached")
	}

	advanced := recurring.Clone()
	advanced.NextFireAt = health.Timestamp{Time: now.Add(23 * time.Hour)}
	s = Reduce(s, CreateSaveSucceeded{Log: moodLog(t, "done", now), CompletedReminder: advanced})
	if got := s.Global.Reminders; len(got) != 2 || !reminderCached(got, recurring.ID, advanced.NextFireAt.Time) {
		t.Fatalf("expected the advanced copy in the cache")
	}

	s = Reduce(s, CreateSaveSucceeded{Log: moodLog(t, "done again", now), CompletedReminder: oneShot, ReminderDeleted: true})
	if len(s.Global.Reminders) != 1 || s.Global.Reminders[0].ID != recurring.ID {
		t.Fatalf("expected the one-shot dropped from the cache")
	}
}

func reminderCached(list []*health.Reminder, id string, fireAt time.Time) bool {
	for _, r := range list {
		if r.ID == id {
			return r.NextFireAt.Time.Equal(fireAt)
		}
	}
	return false
}
