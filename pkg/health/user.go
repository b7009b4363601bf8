package health

import (
	"errors"

	"github.com/google/uuid"

	"tableflip.dev/vita/pkg/timeutil"
)

// Settings holds per-user tunables. Windows are human-friendly durations
// ("2w", "30d") consumed by the analytics service.
type Settings struct {
	MoodWindow    string `json:"moodWindow"`
	SymptomWindow string `json:"symptomWindow"`
}

// DefaultSettings returns the analytics windows used for new users.
func DefaultSettings() Settings {
	return Settings{
		MoodWindow:    "2w",
		SymptomWindow: "4w",
	}
}

// Validate checks both windows parse.
func (s Settings) Validate() error {
	if _, _, err := timeutil.ParseWindow(s.MoodWindow); err != nil {
		return err
	}
	if _, _, err := timeutil.ParseWindow(s.SymptomWindow); err != nil {
		return err
	}
	return nil
}

// ExternalAccount links a user to an external identity provider. A user has
// at most one link.
type ExternalAccount struct {
	Provider  string    `json:"provider"`
	AccountID string    `json:"accountId"`
	LinkedAt  Timestamp `json:"linkedAt"`
}

// User is the root identity that owns all logs, catalog items, and reminders.
type User struct {
	ID       string           `json:"id"`
	Created  Timestamp        `json:"created"`
	Settings Settings         `json:"settings"`
	Account  *ExternalAccount `json:"account,omitempty"`
}

// NewUser creates a user with default settings.
func NewUser() *User {
	return &User{
		ID:       uuid.NewString(),
		Created:  Now(),
		Settings: DefaultSettings(),
	}
}

// Linked reports whether an external account is attached.
func (u *User) Linked() bool {
	return u != nil && u.Account != nil
}

// Validate checks the user record.
func (u *User) Validate() error {
	if u == nil {
		return errors.New("health: nil user")
	}
	if u.ID == "" {
		return errors.New("health: user id required")
	}
	return u.Settings.Validate()
}

// Clone returns a deep copy.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	if u.Account != nil {
		a := *u.Account
		out.Account = &a
	}
	return &out
}
