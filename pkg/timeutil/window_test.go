package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 14 * 24 * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "2w" {
		t.Fatalf("expected label 2w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1mo2d6h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (30*24+2*24+6) * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "4w4d6h" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	if _, _, err := ParseWindow("noop"); err == nil {
		t.Fatalf("expected error for invalid window")
	}
	if _, _, err := ParseWindow("0d"); err == nil {
		t.Fatalf("expected error for zero window")
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	got := WindowStart("3d", now)
	if !got.Equal(now.Add(-3 * 24 * time.Hour)) {
		t.Fatalf("expected 3 days back, got %v", got)
	}

	// Bad windows fall back to the default instead of failing.
	fallback := WindowStart("bogus", now)
	if !fallback.Equal(now.Add(-14 * 24 * time.Hour)) {
		t.Fatalf("expected default window fallback, got %v", fallback)
	}
}
