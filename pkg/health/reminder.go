package health

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Reminder schedules recurring (or one-shot) prompts to create a new log from
// a template. Interval == nil means one-shot; Recurring() must always agree
// with the interval's presence.
type Reminder struct {
	ID          string         `json:"id"`
	Template    *Log           `json:"template"`
	NextFireAt  Timestamp      `json:"nextFireAt"`
	Interval    *time.Duration `json:"interval,omitempty"`
	PushEnabled bool           `json:"pushEnabled"`
	Created     Timestamp      `json:"created"`
}

// NewReminder creates a reminder for the template log, firing first at next.
func NewReminder(template *Log, next time.Time, interval *time.Duration) *Reminder {
	return &Reminder{
		ID:         uuid.NewString(),
		Template:   template.Clone(),
		NextFireAt: Timestamp{Time: next},
		Interval:   interval,
		Created:    Now(),
	}
}

// Recurring reports whether the reminder repeats.
func (r *Reminder) Recurring() bool {
	return r != nil && r.Interval != nil
}

// Overdue reports whether the reminder should have fired before now.
func (r *Reminder) Overdue(now time.Time) bool {
	return r != nil && !r.NextFireAt.IsZero() && r.NextFireAt.Time.Before(now)
}

// Advance moves the fire date forward by whole intervals until it is strictly
// after now. A reminder overdue by several intervals therefore lands on the
// next future slot instead of immediately re-firing. Advancing a one-shot
// reminder is an error; one-shots are deleted on completion instead.
func (r *Reminder) Advance(now time.Time) error {
	if r == nil {
		return errors.New("health: nil reminder")
	}
	if r.Interval == nil {
		return errors.New("health: cannot advance a one-shot reminder")
	}
	interval := *r.Interval
	if interval <= 0 {
		return errors.New("health: reminder interval must be positive")
	}
	next := r.NextFireAt.Time
	for !next.After(now) {
		next = next.Add(interval)
	}
	r.NextFireAt = Timestamp{Time: next}
	return nil
}

// Validate checks structural invariants.
func (r *Reminder) Validate() error {
	if r == nil {
		return errors.New("health: nil reminder")
	}
	if r.ID == "" {
		return errors.New("health: reminder id required")
	}
	if r.Template == nil {
		return errors.New("health: reminder requires a template log")
	}
	if r.NextFireAt.IsZero() {
		return errors.New("health: reminder requires a fire date")
	}
	if r.Interval != nil && *r.Interval <= 0 {
		return errors.New("health: reminder interval must be positive")
	}
	return r.Template.Validate()
}

// Clone returns a deep copy.
func (r *Reminder) Clone() *Reminder {
	if r == nil {
		return nil
	}
	out := *r
	out.Template = r.Template.Clone()
	if r.Interval != nil {
		d := *r.Interval
		out.Interval = &d
	}
	return &out
}

// reminderAlias avoids recursive UnmarshalJSON while keeping the Recurring
// invariant checked at decode time.
type reminderAlias Reminder

func (r *Reminder) UnmarshalJSON(b []byte) error {
	var alias reminderAlias
	if err := json.Unmarshal(b, &alias); err != nil {
		return err
	}
	if alias.Interval != nil && *alias.Interval <= 0 {
		return errors.New("health: reminder interval must be positive")
	}
	*r = Reminder(alias)
	return nil
}
