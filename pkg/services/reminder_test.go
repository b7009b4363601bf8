package services

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/vita/pkg/health"
)

func moodTemplate() *health.Log {
	l := health.NewLog(health.CategoryMood, "Morning mood")
	l.Mood = &health.MoodDetail{Rank: health.MoodNeutral}
	return l
}

func TestCompleteOneShotDeletes(t *testing.T) {
	p, u := testDeps(t)
	now := time.Date(2026, 7, 1, 8, 0, 0, 0, time.Local)
	svc := NewReminderService(p, func() time.Time { return now })
	ctx := context.Background()

	r := health.NewReminder(moodTemplate(), now.Add(-time.Hour), nil)
	if _, err := svc.SaveOrUpdate(ctx, r, u); err != nil {
		t.Fatalf("save reminder: %v", err)
	}

	_, didDelete, err := svc.Complete(ctx, r, u)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !didDelete {
		t.Fatalf("expected one-shot completion to delete")
	}

	all, err := svc.GetAll(ctx, u)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no reminders after one-shot completion, got %d", len(all))
	}
}

func TestCompleteRecurringAdvancesPastNow(t *testing.T) {
	p, u := testDeps(t)
	now := time.Date(2026, 7, 1, 8, 0, 0, 0, time.Local)
	svc := NewReminderService(p, func() time.Time { return now })
	ctx := context.Background()

	day := 24 * time.Hour
	// Overdue by three intervals.
	r := health.NewReminder(moodTemplate(), now.Add(-3*day), &day)
	if _, err := svc.SaveOrUpdate(ctx, r, u); err != nil {
		t.Fatalf("save reminder: %v", err)
	}

	advanced, didDelete, err := svc.Complete(ctx, r, u)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if didDelete {
		t.Fatalf("recurring completion must not delete")
	}
	if !advanced.NextFireAt.Time.After(now) {
		t.Fatalf("expected fire date after now, got %v", advanced.NextFireAt)
	}
	if !advanced.NextFireAt.Time.Equal(now.Add(day)) {
		t.Fatalf("expected %v, got %v", now.Add(day), advanced.NextFireAt.Time)
	}

	// The advanced copy is what got persisted.
	stored, err := svc.Get(ctx, r.ID, u)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !stored.NextFireAt.Time.Equal(advanced.NextFireAt.Time) {
		t.Fatalf("persisted fire date mismatch: %v", stored.NextFireAt)
	}

	// Caller's copy stays untouched.
	if !r.NextFireAt.Time.Equal(now.Add(-3 * day)) {
		t.Fatalf("complete mutated the caller's reminder")
	}
}

func TestSkipRecurring(t *testing.T) {
	p, u := testDeps(t)
	now := time.Date(2026, 7, 1, 8, 0, 0, 0, time.Local)
	svc := NewReminderService(p, func() time.Time { return now })
	ctx := context.Background()

	week := 7 * 24 * time.Hour
	r := health.NewReminder(moodTemplate(), now.Add(-time.Hour), &week)
	if _, err := svc.SaveOrUpdate(ctx, r, u); err != nil {
		t.Fatalf("save reminder: %v", err)
	}

	skipped, err := svc.Skip(ctx, r, u)
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if !skipped.NextFireAt.Time.After(now) {
		t.Fatalf("expected skip to advance past now, got %v", skipped.NextFireAt)
	}
	if !skipped.Recurring() {
		t.Fatalf("skip lost the interval")
	}
}

func TestNotificationSync(t *testing.T) {
	p, u := testDeps(t)
	svc := NewNotificationService(p, true)
	ctx := context.Background()

	day := 24 * time.Hour
	r := health.NewReminder(moodTemplate(), time.Now().Add(time.Hour), &day)
	r.PushEnabled = true

	id, err := svc.Schedule(ctx, r, u)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if id == "" {
		t.Fatalf("expected a slot id")
	}

	// Re-scheduling replaces the previous slot instead of stacking.
	id2, err := svc.Schedule(ctx, r, u)
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	slots := p.Notifications(ctx, u.ID)
	if len(slots) != 1 || slots[0].ID != id2 {
		t.Fatalf("expected exactly the new slot, got %d", len(slots))
	}

	// Push disabled clears the slot and schedules nothing.
	r.PushEnabled = false
	id3, err := svc.Schedule(ctx, r, u)
	if err != nil {
		t.Fatalf("schedule disabled: %v", err)
	}
	if id3 != "" {
		t.Fatalf("expected no slot for disabled push")
	}
	if slots := p.Notifications(ctx, u.ID); len(slots) != 0 {
		t.Fatalf("expected slots cleared, got %d", len(slots))
	}
}

func TestAnalyticsWindows(t *testing.T) {
	p, u := testDeps(t)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.Local)
	u.Settings.MoodWindow = "1w"
	u.Settings.SymptomWindow = "2w"

	logSvc := NewLogService(p)
	ctx := context.Background()

	headache := health.NewCatalogItem(health.CategorySymptom, "Headache", u.ID)
	if err := logSvc.SaveCatalogItem(ctx, headache, u); err != nil {
		t.Fatalf("save catalog item: %v", err)
	}

	addMood := func(daysAgo int, rank health.MoodRank) {
		l := health.NewLog(health.CategoryMood, "mood")
		l.Mood = &health.MoodDetail{Rank: rank}
		l.Created = health.Timestamp{Time: now.Add(-time.Duration(daysAgo) * 24 * time.Hour)}
		if err := logSvc.SaveLog(ctx, l, u); err != nil {
			t.Fatalf("save mood: %v", err)
		}
	}
	addMood(1, health.MoodGood)  // inside 1w
	addMood(2, health.MoodBad)   // inside 1w
	addMood(10, health.MoodGreat) // outside mood window

	sym := health.NewLog(health.CategorySymptom, "Headache")
	sym.Symptom = &health.SymptomDetail{ItemID: headache.ID, Severity: health.SeveritySevere}
	sym.Created = health.Timestamp{Time: now.Add(-9 * 24 * time.Hour)} // inside 2w
	if err := logSvc.SaveLog(ctx, sym, u); err != nil {
		t.Fatalf("save symptom: %v", err)
	}

	svc := NewAnalyticsService(p, func() time.Time { return now })
	got, err := svc.GetAll(ctx, u)
	if err != nil {
		t.Fatalf("get analytics: %v", err)
	}

	if got.MoodAverage != 3.0 { // (4+2)/2, the 10-day-old mood excluded
		t.Fatalf("expected mood average 3.0, got %v", got.MoodAverage)
	}
	if len(got.MoodTrend) != 2 {
		t.Fatalf("expected 2 mood trend points, got %d", len(got.MoodTrend))
	}
	if len(got.Symptoms) != 1 || got.Symptoms[0].Name != "Headache" || got.Symptoms[0].Count != 1 {
		t.Fatalf("unexpected symptom stats: %+v", got.Symptoms)
	}
	if got.Symptoms[0].AverageSeverity != float64(health.SeveritySevere) {
		t.Fatalf("unexpected severity average: %v", got.Symptoms[0].AverageSeverity)
	}
}
