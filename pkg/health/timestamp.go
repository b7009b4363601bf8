package health

import (
	"encoding/json"
	"fmt"
	"time"
)

// ParseTime parses an RFC3339 timestamp.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with RFC3339 JSON encoding.
type Timestamp struct {
	time.Time
}

// Now returns the current moment as a Timestamp.
func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

// SameDay reports whether the timestamp falls on the same local calendar day
// as then.
func (t Timestamp) SameDay(then time.Time) bool {
	ty, tm, td := t.Local().Date()
	oy, om, od := then.Date()
	return ty == oy && tm == om && td == od
}

// DayKey truncates the timestamp to midnight in the local calendar. Log
// caches are bucketed by this value.
func (t Timestamp) DayKey() time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// DayKeyString renders the day bucket as an ISO date, used as a map key.
func (t Timestamp) DayKeyString() string {
	return t.DayKey().Format(layoutISO)
}

const layoutISO = "2006-01-02"

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.UTC().Format(time.RFC3339))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(raw)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
