package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/services"
	"tableflip.dev/vita/pkg/store"
)

// newTestStore wires a Store over a temp-dir database with the full default
// middleware chain.
func newTestStore(t *testing.T) (*Store, Services) {
	t.Helper()
	p, err := store.Load(store.FixedConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	svc := NewServices(p, true)
	st := NewDefaultStore(svc)
	t.Cleanup(st.Close)
	return st, svc
}

// waitFor polls the store until the predicate holds.
func waitFor(t *testing.T, st *Store, what string, pred func(AppState) bool) AppState {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		s := st.State()
		if pred(s) {
			return s
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
	return AppState{}
}

func launch(t *testing.T, st *Store) AppState {
	t.Helper()
	st.Dispatch(AppLaunched{})
	s := waitFor(t, st, "user init", func(s AppState) bool { return s.Global.Initialized })
	if s.Global.InitErr != nil {
		t.Fatalf("init failed: %v", s.Global.InitErr)
	}
	return s
}

func TestLaunchCreatesAndBookmarksUser(t *testing.T) {
	st, svc := newTestStore(t)
	s := launch(t, st)
	if s.Global.User == nil {
		t.Fatalf("expected a user after launch")
	}

	id, err := svc.Users.CurrentUserID()
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if id != s.Global.User.ID {
		t.Fatalf("bookmark %q does not match user %q", id, s.Global.User.ID)
	}
}

func TestLaunchWithStaleBookmarkFailsAndClearsIt(t *testing.T) {
	st, svc := newTestStore(t)
	if err := svc.Users.SetCurrentUserID("gone-user"); err != nil {
		t.Fatalf("set bookmark: %v", err)
	}

	st.Dispatch(AppLaunched{})
	s := waitFor(t, st, "init result", func(s AppState) bool { return s.Global.Initialized })
	if s.Global.InitErr == nil {
		t.Fatalf("expected the stale bookmark to surface an error")
	}
	if s.Global.User != nil {
		t.Fatalf("no user should be created for a stale bookmark, got %+v", s.Global.User)
	}

	// The dangling bookmark is gone, so the next launch starts clean.
	id, err := svc.Users.CurrentUserID()
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if id != "" {
		t.Fatalf("expected the bookmark cleared, got %q", id)
	}
}

func TestActionsProcessInDispatchOrder(t *testing.T) {
	st := New(InitialState())
	t.Cleanup(st.Close)

	titles := []string{"one", "two", "three"}
	for _, title := range titles {
		st.Dispatch(CreateTitleChanged{Title: title})
	}

	s := waitFor(t, st, "last title", func(s AppState) bool {
		return s.CreateLog.Title == "three"
	})
	if s.CreateLog.Title != "three" {
		t.Fatalf("expected the final dispatch to win, got %q", s.CreateLog.Title)
	}
}

func TestMiddlewareDispatchRunsAfterCurrentAction(t *testing.T) {
	var mu sync.Mutex
	var order []string
	record := func(ctx context.Context, s AppState, a Action, d Dispatch) {
		mu.Lock()
		order = append(order, a.Name())
		mu.Unlock()
		if _, ok := a.(HomeOpened); ok {
			d(RemindersRequested{})
		}
	}
	st := New(InitialState(), WithMiddleware(record))
	t.Cleanup(st.Close)

	st.Dispatch(HomeOpened{})
	waitFor(t, st, "follow-up action", func(AppState) bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) >= 2
	})

	mu.Lock()
	defer mu.Unlock()
	if order[0] != (HomeOpened{}).Name() || order[1] != (RemindersRequested{}).Name() {
		t.Fatalf("unexpected order: %v", order)
	}
}

func TestMedicationSaveEndToEnd(t *testing.T) {
	st, svc := newTestStore(t)
	s := launch(t, st)
	user := s.Global.User
	ctx := context.Background()

	aspirin := health.NewCatalogItem(health.CategoryMedication, "Aspirin", user.ID)
	if err := svc.Logs.SaveCatalogItem(ctx, aspirin, user); err != nil {
		t.Fatalf("save catalog item: %v", err)
	}

	st.Dispatch(CreateLogOpened{Category: health.CategoryMedication})
	st.Dispatch(CreateSearchQueryChanged{Query: "asp"})
	s = waitFor(t, st, "search results", func(s AppState) bool {
		return !s.CreateLog.IsSearching && len(s.CreateLog.SearchResults) > 0
	})
	if s.CreateLog.SearchResults[0].Name != "Aspirin" {
		t.Fatalf("unexpected search hit: %+v", s.CreateLog.SearchResults[0])
	}

	st.Dispatch(CreateItemSelected{Item: s.CreateLog.SearchResults[0]})
	st.Dispatch(CreateDosageChanged{Dosage: "100mg"})
	st.Dispatch(CreateSaveRequested{})

	s = waitFor(t, st, "save success", func(s AppState) bool {
		return s.CreateLog.CreateSuccess || s.CreateLog.Err != nil
	})
	if s.CreateLog.Err != nil {
		t.Fatalf("save failed: %v", s.CreateLog.Err)
	}
	if len(s.Global.RecentLogs) != 1 {
		t.Fatalf("expected the log in the recent cache")
	}
	saved := s.Global.RecentLogs[0]
	if saved.Medication == nil || saved.Medication.ItemID != aspirin.ID || saved.Medication.Dosage != "100mg" {
		t.Fatalf("unexpected saved log: %+v", saved)
	}

	// And it really hit the disk.
	logs, err := svc.Logs.GetLogs(ctx, user, services.ListOptions{})
	if err != nil {
		t.Fatalf("get logs: %v", err)
	}
	if len(logs) != 1 || logs[0].ID != saved.ID {
		t.Fatalf("expected the saved log persisted, got %d logs", len(logs))
	}
}

func TestEmptySearchShortCircuits(t *testing.T) {
	st, _ := newTestStore(t)
	launch(t, st)

	st.Dispatch(CreateLogOpened{Category: health.CategorySymptom})
	st.Dispatch(CreateSearchQueryChanged{Query: "   "})

	s := waitFor(t, st, "search settled", func(s AppState) bool {
		return !s.CreateLog.IsSearching
	})
	if len(s.CreateLog.SearchResults) != 0 {
		t.Fatalf("expected no results for a blank query")
	}
}

func TestCreateItemFromSearchText(t *testing.T) {
	st, svc := newTestStore(t)
	s := launch(t, st)
	user := s.Global.User
	ctx := context.Background()

	st.Dispatch(CreateLogOpened{Category: health.CategorySymptom})
	st.Dispatch(CreateItemRequested{ItemName: "headache"})

	s = waitFor(t, st, "item created", func(s AppState) bool {
		return s.CreateLog.SelectedItem != nil
	})
	if s.CreateLog.SelectedItem.Name != "headache" {
		t.Fatalf("unexpected item: %+v", s.CreateLog.SelectedItem)
	}
	if s.CreateLog.Title != "headache" {
		t.Fatalf("expected the title filled from the new item, got %q", s.CreateLog.Title)
	}

	items, err := svc.Logs.SearchCatalog(ctx, "headache", user, health.CategorySymptom)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected the item persisted, got %d (%v)", len(items), err)
	}
}

func TestSaveFromReminderCompletesIt(t *testing.T) {
	st, svc := newTestStore(t)
	s := launch(t, st)
	user := s.Global.User
	ctx := context.Background()

	template := health.NewLog(health.CategoryMood, "Evening check-in")
	template.Mood = &health.MoodDetail{Rank: health.MoodNeutral}
	r := health.NewReminder(template, time.Now().Add(-time.Hour), nil)
	if _, err := svc.Reminders.SaveOrUpdate(ctx, r, user); err != nil {
		t.Fatalf("save reminder: %v", err)
	}

	st.Dispatch(RemindersRequested{})
	waitFor(t, st, "reminders", func(s AppState) bool { return len(s.Global.Reminders) == 1 })

	st.Dispatch(CreateLogOpened{Category: health.CategoryMood, FromReminderID: r.ID})
	st.Dispatch(CreateMoodChanged{Rank: health.MoodGood})
	st.Dispatch(CreateSaveRequested{})

	s = waitFor(t, st, "save success", func(s AppState) bool {
		return s.CreateLog.CreateSuccess || s.CreateLog.Err != nil
	})
	if s.CreateLog.Err != nil {
		t.Fatalf("save failed: %v", s.CreateLog.Err)
	}
	if len(s.Global.Reminders) != 0 {
		t.Fatalf("expected the one-shot reminder gone from the cache")
	}
	if all, err := svc.Reminders.GetAll(ctx, user); err != nil || len(all) != 0 {
		t.Fatalf("expected the one-shot reminder deleted, got %d (%v)", len(all), err)
	}
}

func TestReminderFailureDoesNotLoseSavedLog(t *testing.T) {
	st, svc := newTestStore(t)
	s := launch(t, st)
	user := s.Global.User
	ctx := context.Background()

	// A reminder in the cache but not on disk: completing it will fail
	// after the log has already been persisted.
	template := health.NewLog(health.CategoryMood, "Evening check-in")
	template.Mood = &health.MoodDetail{Rank: health.MoodNeutral}
	r := health.NewReminder(template, time.Now().Add(-time.Hour), nil)
	st.Dispatch(RemindersLoaded{Reminders: []*health.Reminder{r}})
	waitFor(t, st, "reminder cached", func(s AppState) bool { return len(s.Global.Reminders) == 1 })

	st.Dispatch(CreateLogOpened{Category: health.CategoryMood, FromReminderID: r.ID})
	st.Dispatch(CreateMoodChanged{Rank: health.MoodGood})
	st.Dispatch(CreateSaveRequested{})

	s = waitFor(t, st, "save settled", func(s AppState) bool {
		return s.CreateLog.CreateSuccess || (!s.CreateLog.IsCreating && s.CreateLog.Err != nil)
	})
	if !s.CreateLog.CreateSuccess {
		t.Fatalf("the save succeeded and must report success, got err %v", s.CreateLog.Err)
	}
	if s.CreateLog.Err == nil {
		t.Fatalf("expected the reminder failure surfaced alongside success")
	}
	if len(s.Global.RecentLogs) != 1 {
		t.Fatalf("expected the saved log cached despite the reminder failure")
	}
	if logs, err := svc.Logs.GetLogs(ctx, user, services.ListOptions{}); err != nil || len(logs) != 1 {
		t.Fatalf("expected the saved log persisted, got %d (%v)", len(logs), err)
	}
}

func TestDeleteLogEndToEnd(t *testing.T) {
	st, svc := newTestStore(t)
	s := launch(t, st)
	user := s.Global.User
	ctx := context.Background()

	l := health.NewLog(health.CategoryNote, "delete me")
	if err := svc.Logs.SaveLog(ctx, l, user); err != nil {
		t.Fatalf("save log: %v", err)
	}
	st.Dispatch(CreateSaveSucceeded{Log: l}) // seed the cache

	st.Dispatch(LogDeleteRequested{ID: l.ID})
	s = waitFor(t, st, "delete success", func(s AppState) bool {
		return s.LogDetail.DeleteSuccess || s.LogDetail.Err != nil
	})
	if s.LogDetail.Err != nil {
		t.Fatalf("delete failed: %v", s.LogDetail.Err)
	}
	if len(s.Global.RecentLogs) != 0 {
		t.Fatalf("expected cache cleared")
	}

	// A second delete of the same id still succeeds.
	st.Dispatch(LogDetailOpened{Log: l})
	st.Dispatch(LogDeleteRequested{ID: l.ID})
	s = waitFor(t, st, "second delete", func(s AppState) bool {
		return s.LogDetail.DeleteSuccess || s.LogDetail.Err != nil
	})
	if s.LogDetail.Err != nil {
		t.Fatalf("deleting an absent log must succeed, got %v", s.LogDetail.Err)
	}
}
