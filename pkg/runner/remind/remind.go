package remind

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/services"
	"tableflip.dev/vita/pkg/store"
)

// List prints the reminder schedule, soonest first.
type List struct {
	ShowID      bool
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	reminders, user, err := deps(ctx, n.Persistence)
	if err != nil {
		return err
	}
	all, err := reminders.GetAll(ctx, user)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount("reminders", len(all))
	pp.Reminders(all...)
	return nil
}

// Add schedules a reminder from a template log. Interval zero means
// one-shot.
type Add struct {
	Persistence store.Persistence

	Category health.Category
	Title    string
	Item     string
	At       time.Time
	Interval time.Duration
	Push     bool
}

func (n *Add) Do(ctx context.Context) error {
	reminders, user, err := deps(ctx, n.Persistence)
	if err != nil {
		return err
	}

	template, err := n.buildTemplate(ctx, user)
	if err != nil {
		return err
	}

	var interval *time.Duration
	if n.Interval > 0 {
		interval = &n.Interval
	}
	r := health.NewReminder(template, n.At, interval)
	r.PushEnabled = n.Push

	saved, err := reminders.SaveOrUpdate(ctx, r, user)
	if err != nil {
		return err
	}
	notifications := services.NewNotificationService(n.Persistence, true)
	_, _ = notifications.Schedule(ctx, saved, user)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Reminders(saved)
	return nil
}

// Reminder templates only need to validate; the real log is built when the
// reminder is acted on. Catalog-backed categories still resolve their item
// so the template carries a usable reference.
func (n *Add) buildTemplate(ctx context.Context, user *health.User) (*health.Log, error) {
	l := health.NewLog(n.Category, n.Title)
	switch n.Category {
	case health.CategoryMood:
		l.Mood = &health.MoodDetail{Rank: health.MoodNeutral}
		return l, nil
	case health.CategoryNote:
		return l, nil
	}

	name := strings.TrimSpace(n.Item)
	if name == "" {
		return nil, errors.New("remind: an item name is required for " + n.Category.String())
	}
	logs := services.NewLogService(n.Persistence)
	hits, err := logs.SearchCatalog(ctx, name, user, n.Category)
	if err != nil {
		return nil, err
	}
	var item *health.CatalogItem
	for _, hit := range hits {
		if strings.EqualFold(hit.Name, name) {
			item = hit
			break
		}
	}
	if item == nil {
		item = health.NewCatalogItem(n.Category, name, user.ID)
		if err := logs.SaveCatalogItem(ctx, item, user); err != nil {
			return nil, err
		}
	}

	switch n.Category {
	case health.CategoryMedication:
		l.Medication = &health.MedicationDetail{ItemID: item.ID, Dosage: "1"}
	case health.CategoryNutrition:
		l.Nutrition = &health.NutritionDetail{ItemID: item.ID}
	case health.CategorySymptom:
		l.Symptom = &health.SymptomDetail{ItemID: item.ID, Severity: health.SeverityMild}
	case health.CategoryActivity:
		l.Activity = &health.ActivityDetail{ItemID: item.ID}
	}
	l.Item = item
	if l.Title == "" {
		l.Title = item.Name
	}
	return l, nil
}

// Complete resolves a fired reminder without creating a log: one-shots are
// deleted, recurring ones advance past now.
type Complete struct {
	Persistence store.Persistence
	ID          string
}

func (n *Complete) Do(ctx context.Context) error {
	reminders, user, err := deps(ctx, n.Persistence)
	if err != nil {
		return err
	}
	r, err := findReminder(ctx, reminders, user, n.ID)
	if err != nil {
		return err
	}
	completed, didDelete, err := reminders.Complete(ctx, r, user)
	if err != nil {
		return err
	}
	notifications := services.NewNotificationService(n.Persistence, true)
	if didDelete {
		_ = notifications.CancelForReminder(ctx, completed.ID, user)
		fmt.Printf("completed and removed %s\n", completed.Template.Title)
		return nil
	}
	_, _ = notifications.Schedule(ctx, completed, user)
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Reminders(completed)
	return nil
}

// Skip pushes a reminder forward without logging anything.
type Skip struct {
	Persistence store.Persistence
	ID          string
}

func (n *Skip) Do(ctx context.Context) error {
	reminders, user, err := deps(ctx, n.Persistence)
	if err != nil {
		return err
	}
	r, err := findReminder(ctx, reminders, user, n.ID)
	if err != nil {
		return err
	}
	wasRecurring := r.Recurring()
	skipped, err := reminders.Skip(ctx, r, user)
	if err != nil {
		return err
	}
	notifications := services.NewNotificationService(n.Persistence, true)
	if !wasRecurring {
		_ = notifications.CancelForReminder(ctx, skipped.ID, user)
		fmt.Printf("skipped and removed %s\n", skipped.Template.Title)
		return nil
	}
	_, _ = notifications.Schedule(ctx, skipped, user)
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Reminders(skipped)
	return nil
}

// Delete removes a reminder and its notification slot.
type Delete struct {
	Persistence store.Persistence
	ID          string
}

func (n *Delete) Do(ctx context.Context) error {
	reminders, user, err := deps(ctx, n.Persistence)
	if err != nil {
		return err
	}
	r, err := findReminder(ctx, reminders, user, n.ID)
	if err != nil {
		return err
	}
	if _, err := reminders.Delete(ctx, r, user); err != nil {
		return err
	}
	notifications := services.NewNotificationService(n.Persistence, true)
	_ = notifications.CancelForReminder(ctx, r.ID, user)
	fmt.Printf("removed %s\n", r.Template.Title)
	return nil
}

func deps(ctx context.Context, p store.Persistence) (services.ReminderService, *health.User, error) {
	if p == nil {
		return nil, nil, errors.New("can not remind, no persistence")
	}
	user, err := services.ResolveCurrentUser(ctx, services.NewUserService(p))
	if err != nil {
		return nil, nil, err
	}
	return services.NewReminderService(p, time.Now), user, nil
}

func findReminder(ctx context.Context, svc services.ReminderService, user *health.User, id string) (*health.Reminder, error) {
	if id == "" {
		return nil, errors.New("remind: an id is required")
	}
	all, err := svc.GetAll(ctx, user)
	if err != nil {
		return nil, err
	}
	var found *health.Reminder
	for _, r := range all {
		if r.ID == id || strings.HasPrefix(r.ID, id) {
			if found != nil && found.ID != r.ID {
				return nil, fmt.Errorf("remind: id %q is ambiguous", id)
			}
			found = r
		}
	}
	if found == nil {
		return nil, fmt.Errorf("remind: no reminder with id %q", id)
	}
	return found, nil
}
