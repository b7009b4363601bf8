package services

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/store"
)

var (
	errUserRequired     = errors.New("user required")
	errLogRequired      = errors.New("log required")
	errReminderRequired = errors.New("reminder required")
)

// ReminderService owns scheduled reminders. Completing a one-shot reminder
// deletes it; completing or skipping a recurring one advances its fire date
// strictly past now.
type ReminderService interface {
	Get(ctx context.Context, id string, user *health.User) (*health.Reminder, error)
	GetAll(ctx context.Context, user *health.User) ([]*health.Reminder, error)
	SaveOrUpdate(ctx context.Context, r *health.Reminder, user *health.User) (*health.Reminder, error)
	Delete(ctx context.Context, r *health.Reminder, user *health.User) (*health.Reminder, error)
	Skip(ctx context.Context, r *health.Reminder, user *health.User) (*health.Reminder, error)
	Complete(ctx context.Context, r *health.Reminder, user *health.User) (*health.Reminder, bool, error)
}

// NewReminderService builds a ReminderService over the persistence layer.
// The clock is injectable for tests; nil means time.Now.
func NewReminderService(p store.Persistence, now func() time.Time) ReminderService {
	if now == nil {
		now = time.Now
	}
	return &reminderService{p: p, now: now}
}

type reminderService struct {
	p   store.Persistence
	now func() time.Time
}

func (s *reminderService) Get(ctx context.Context, id string, user *health.User) (*health.Reminder, error) {
	if user == nil {
		return nil, invalid("get reminder", errUserRequired)
	}
	for _, r := range s.p.Reminders(ctx, user.ID) {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, notFound("get reminder " + id)
}

func (s *reminderService) GetAll(ctx context.Context, user *health.User) ([]*health.Reminder, error) {
	if user == nil {
		return nil, invalid("get reminders", errUserRequired)
	}
	return s.p.Reminders(ctx, user.ID), nil
}

func (s *reminderService) SaveOrUpdate(ctx context.Context, r *health.Reminder, user *health.User) (*health.Reminder, error) {
	if user == nil {
		return nil, invalid("save reminder", errUserRequired)
	}
	if err := r.Validate(); err != nil {
		return nil, invalid("save reminder", err)
	}
	if err := s.p.StoreReminder(user.ID, r); err != nil {
		return nil, wrap("save reminder", err)
	}
	return r, nil
}

func (s *reminderService) Delete(ctx context.Context, r *health.Reminder, user *health.User) (*health.Reminder, error) {
	if user == nil {
		return nil, invalid("delete reminder", errUserRequired)
	}
	if r == nil {
		return nil, invalid("delete reminder", errReminderRequired)
	}
	if err := s.p.DeleteReminder(user.ID, r.ID); err != nil {
		return nil, wrap("delete reminder", err)
	}
	return r, nil
}

// Skip advances a recurring reminder past now without logging anything. A
// one-shot reminder has no later slot to move to, so skipping deletes it,
// same as completion.
func (s *reminderService) Skip(ctx context.Context, r *health.Reminder, user *health.User) (*health.Reminder, error) {
	if user == nil {
		return nil, invalid("skip reminder", errUserRequired)
	}
	if r == nil {
		return nil, invalid("skip reminder", errReminderRequired)
	}
	if !r.Recurring() {
		return s.Delete(ctx, r, user)
	}
	advanced := r.Clone()
	if err := advanced.Advance(s.now()); err != nil {
		return nil, invalid("skip reminder", err)
	}
	if err := s.p.StoreReminder(user.ID, advanced); err != nil {
		return nil, wrap("skip reminder", err)
	}
	return advanced, nil
}

// Complete resolves a fired reminder. Recurring reminders advance and
// persist; one-shots are deleted and didDelete is true.
func (s *reminderService) Complete(ctx context.Context, r *health.Reminder, user *health.User) (*health.Reminder, bool, error) {
	if user == nil {
		return nil, false, invalid("complete reminder", errUserRequired)
	}
	if r == nil {
		return nil, false, invalid("complete reminder", errReminderRequired)
	}
	if !r.Recurring() {
		deleted, err := s.Delete(ctx, r, user)
		if err != nil {
			return nil, false, err
		}
		return deleted, true, nil
	}
	advanced := r.Clone()
	if err := advanced.Advance(s.now()); err != nil {
		return nil, false, invalid("complete reminder", err)
	}
	if err := s.p.StoreReminder(user.ID, advanced); err != nil {
		return nil, false, wrap("complete reminder", err)
	}
	return advanced, false, nil
}
