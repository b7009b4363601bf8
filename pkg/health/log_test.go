package health

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValidateMedication(t *testing.T) {
	l := NewLog(CategoryMedication, "Advil")
	l.Medication = &MedicationDetail{ItemID: "m1", Dosage: "10mg"}
	if err := l.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Medication.Dosage = ""
	if err := l.Validate(); err == nil {
		t.Fatalf("expected missing dosage to be invalid")
	}

	l.Medication = nil
	if err := l.Validate(); err == nil {
		t.Fatalf("expected missing payload to be invalid")
	}
}

func TestValidateRejectsMismatchedPayload(t *testing.T) {
	l := NewLog(CategoryNote, "a note")
	l.Mood = &MoodDetail{Rank: MoodGood}
	if err := l.Validate(); err == nil {
		t.Fatalf("expected note with mood payload to be invalid")
	}

	m := NewLog(CategoryMood, "feeling fine")
	m.Mood = &MoodDetail{Rank: MoodGood}
	m.Symptom = &SymptomDetail{ItemID: "s1", Severity: SeverityMild}
	if err := m.Validate(); err == nil {
		t.Fatalf("expected mood with extra symptom payload to be invalid")
	}
}

func TestCloneIsDeep(t *testing.T) {
	l := NewLog(CategorySymptom, "Headache")
	l.Symptom = &SymptomDetail{ItemID: "s1", Severity: SeveritySevere}
	c := l.Clone()
	c.Symptom.Severity = SeverityMild
	if l.Symptom.Severity != SeveritySevere {
		t.Fatalf("clone shares symptom payload with original")
	}
}

func TestLogRoundTrip(t *testing.T) {
	l := NewLog(CategoryActivity, "Run")
	l.Activity = &ActivityDetail{ItemID: "a1", Duration: 45 * time.Minute}
	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Log
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Activity == nil || got.Activity.Duration != 45*time.Minute {
		t.Fatalf("expected activity payload to survive round trip, got %+v", got.Activity)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDayKey(t *testing.T) {
	ts := Timestamp{Time: time.Date(2026, 8, 30, 23, 45, 1, 0, time.Local)}
	key := ts.DayKey()
	if key.Hour() != 0 || key.Minute() != 0 || key.Second() != 0 {
		t.Fatalf("expected midnight truncation, got %v", key)
	}
	if key.Day() != 30 || key.Month() != 8 {
		t.Fatalf("expected same calendar day, got %v", key)
	}
	if ts.DayKeyString() != "2026-08-30" {
		t.Fatalf("unexpected day key string %q", ts.DayKeyString())
	}
}

func TestParseCategoryAliases(t *testing.T) {
	cases := map[string]Category{
		"meds":     CategoryMedication,
		"Food":     CategoryNutrition,
		" symptom": CategorySymptom,
		"moods":    CategoryMood,
	}
	for raw, want := range cases {
		got, err := ParseCategory(raw)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", raw, want, got)
		}
	}
	if _, err := ParseCategory("gibberish"); err == nil {
		t.Fatalf("expected unknown category to error")
	}
}
