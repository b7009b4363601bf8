package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/store"
)

// NotificationService maintains best-effort notification slots for reminders.
// Delivery is out of scope for the core; what is persisted here is the
// schedule a delivery agent would act on. Callers are expected to silence
// failures from this service (notifications are never worth blocking a save).
type NotificationService interface {
	Enabled() bool
	Schedule(ctx context.Context, r *health.Reminder, user *health.User) (string, error)
	Cancel(ctx context.Context, user *health.User, ids ...string) error
	CancelForReminder(ctx context.Context, reminderID string, user *health.User) error
	CancelAll(ctx context.Context, user *health.User) error
}

// NewNotificationService builds a NotificationService over the persistence
// layer. enabled mirrors the platform permission check.
func NewNotificationService(p store.Persistence, enabled bool) NotificationService {
	return &notificationService{p: p, enabled: enabled}
}

type notificationService struct {
	p       store.Persistence
	enabled bool
}

func (s *notificationService) Enabled() bool {
	return s.enabled
}

// Schedule replaces any existing slot for the reminder with one at its next
// fire date. Returns the new slot id, or "" when notifications are disabled
// or the reminder has push turned off.
func (s *notificationService) Schedule(ctx context.Context, r *health.Reminder, user *health.User) (string, error) {
	if user == nil {
		return "", invalid("schedule notification", errUserRequired)
	}
	if r == nil {
		return "", invalid("schedule notification", errReminderRequired)
	}
	if err := s.CancelForReminder(ctx, r.ID, user); err != nil {
		return "", err
	}
	if !s.enabled || !r.PushEnabled {
		return "", nil
	}
	slot := &store.ScheduledNotification{
		ID:         uuid.NewString(),
		ReminderID: r.ID,
		FireAt:     r.NextFireAt,
	}
	if err := s.p.StoreNotification(user.ID, slot); err != nil {
		return "", wrap("schedule notification", err)
	}
	return slot.ID, nil
}

func (s *notificationService) Cancel(ctx context.Context, user *health.User, ids ...string) error {
	if user == nil {
		return invalid("cancel notifications", errUserRequired)
	}
	for _, id := range ids {
		if err := s.p.DeleteNotification(user.ID, id); err != nil && !errors.Is(err, store.ErrNotFound) {
			return wrap("cancel notification", err)
		}
	}
	return nil
}

func (s *notificationService) CancelForReminder(ctx context.Context, reminderID string, user *health.User) error {
	if user == nil {
		return invalid("cancel notifications", errUserRequired)
	}
	for _, slot := range s.p.Notifications(ctx, user.ID) {
		if slot.ReminderID != reminderID {
			continue
		}
		if err := s.p.DeleteNotification(user.ID, slot.ID); err != nil {
			return wrap("cancel notification", err)
		}
	}
	return nil
}

func (s *notificationService) CancelAll(ctx context.Context, user *health.User) error {
	if user == nil {
		return invalid("cancel notifications", errUserRequired)
	}
	for _, slot := range s.p.Notifications(ctx, user.ID) {
		if err := s.p.DeleteNotification(user.ID, slot.ID); err != nil {
			return wrap("cancel notification", err)
		}
	}
	return nil
}
