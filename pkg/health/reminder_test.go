package health

import (
	"testing"
	"time"
)

func moodTemplate() *Log {
	l := NewLog(CategoryMood, "Morning mood")
	l.Mood = &MoodDetail{Rank: MoodNeutral}
	return l
}

func TestRecurringMatchesInterval(t *testing.T) {
	day := 24 * time.Hour
	r := NewReminder(moodTemplate(), time.Now().Add(time.Hour), &day)
	if !r.Recurring() {
		t.Fatalf("expected reminder with interval to be recurring")
	}

	oneShot := NewReminder(moodTemplate(), time.Now().Add(time.Hour), nil)
	if oneShot.Recurring() {
		t.Fatalf("expected reminder without interval to be one-shot")
	}
}

func TestAdvancePastNow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	day := 24 * time.Hour

	// Overdue by several intervals: a single interval step would still be in
	// the past, the advance must loop until strictly after now.
	r := NewReminder(moodTemplate(), now.Add(-5*day), &day)
	if err := r.Advance(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.NextFireAt.Time.After(now) {
		t.Fatalf("expected fire date after %v, got %v", now, r.NextFireAt.Time)
	}
	want := now.Add(day) // six whole intervals from five days back
	if !r.NextFireAt.Time.Equal(want) {
		t.Fatalf("expected %v, got %v", want, r.NextFireAt.Time)
	}
}

func TestAdvanceExactlyDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	hour := time.Hour
	r := NewReminder(moodTemplate(), now, &hour)
	if err := r.Advance(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Strictly after now, never equal.
	if !r.NextFireAt.Time.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected %v, got %v", now.Add(time.Hour), r.NextFireAt.Time)
	}
}

func TestAdvanceOneShotFails(t *testing.T) {
	r := NewReminder(moodTemplate(), time.Now(), nil)
	if err := r.Advance(time.Now()); err == nil {
		t.Fatalf("expected advancing a one-shot reminder to fail")
	}
}

func TestReminderValidate(t *testing.T) {
	day := 24 * time.Hour
	r := NewReminder(moodTemplate(), time.Now().Add(time.Hour), &day)
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := r.Clone()
	zero := time.Duration(0)
	bad.Interval = &zero
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected zero interval to be invalid")
	}

	noTemplate := r.Clone()
	noTemplate.Template = nil
	if err := noTemplate.Validate(); err == nil {
		t.Fatalf("expected missing template to be invalid")
	}
}
