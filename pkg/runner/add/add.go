package add

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/services"
	"tableflip.dev/vita/pkg/store"
)

// Add creates one log entry. For catalog-backed categories the Item name is
// matched against the catalog case-insensitively; a miss creates the item.
type Add struct {
	Persistence store.Persistence

	Category health.Category
	Title    string
	Notes    string

	Mood     health.MoodRank
	Item     string
	Dosage   string
	Amount   string
	Severity health.Severity
	Duration time.Duration
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	logs := services.NewLogService(n.Persistence)
	user, err := services.ResolveCurrentUser(ctx, services.NewUserService(n.Persistence))
	if err != nil {
		return err
	}

	l := health.NewLog(n.Category, n.Title)
	l.Notes = n.Notes

	var item *health.CatalogItem
	if n.Category.HasCatalogItem() {
		item, err = n.resolveItem(ctx, logs, user)
		if err != nil {
			return err
		}
	}

	switch n.Category {
	case health.CategoryMood:
		l.Mood = &health.MoodDetail{Rank: n.Mood}
	case health.CategoryMedication:
		l.Medication = &health.MedicationDetail{ItemID: item.ID, Dosage: n.Dosage}
	case health.CategoryNutrition:
		l.Nutrition = &health.NutritionDetail{ItemID: item.ID, Amount: n.Amount}
	case health.CategorySymptom:
		l.Symptom = &health.SymptomDetail{ItemID: item.ID, Severity: n.Severity}
	case health.CategoryActivity:
		l.Activity = &health.ActivityDetail{ItemID: item.ID, Duration: n.Duration}
	}
	if item != nil {
		l.Item = item
		if l.Title == "" {
			l.Title = item.Name
		}
	}

	if err := logs.SaveLog(ctx, l, user); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Logs(l)
	return nil
}

func (n *Add) resolveItem(ctx context.Context, logs services.LogService, user *health.User) (*health.CatalogItem, error) {
	name := strings.TrimSpace(n.Item)
	if name == "" {
		return nil, errors.New("add: an item name is required for " + n.Category.String())
	}
	hits, err := logs.SearchCatalog(ctx, name, user, n.Category)
	if err != nil {
		return nil, err
	}
	for _, hit := range hits {
		if strings.EqualFold(hit.Name, name) {
			return hit, nil
		}
	}
	item := health.NewCatalogItem(n.Category, name, user.ID)
	if err := logs.SaveCatalogItem(ctx, item, user); err != nil {
		return nil, err
	}
	return item, nil
}
