package health

import (
	"fmt"
	"strings"
	"time"
)

// Detail renders the category-specific payload for list output. The catalog
// item name is used when hydrated, otherwise the raw item id.
func (l *Log) Detail() string {
	name := l.itemLabel()
	switch l.Category {
	case CategoryMood:
		if l.Mood != nil {
			return l.Mood.Rank.String()
		}
	case CategoryMedication:
		if l.Medication != nil {
			return strings.TrimSpace(fmt.Sprintf("%s %s", name, l.Medication.Dosage))
		}
	case CategoryNutrition:
		if l.Nutrition != nil {
			return strings.TrimSpace(fmt.Sprintf("%s %s", name, l.Nutrition.Amount))
		}
	case CategorySymptom:
		if l.Symptom != nil {
			return fmt.Sprintf("%s (%s)", name, l.Symptom.Severity)
		}
	case CategoryActivity:
		if l.Activity != nil {
			return strings.TrimSpace(fmt.Sprintf("%s %s", name, formatDuration(l.Activity.Duration)))
		}
	}
	return ""
}

// Row returns the columns used by table printers.
func (l *Log) Row() (string, string, string, string) {
	return l.Created.Local().Format("15:04"), l.Category.String(), l.Title, l.Detail()
}

func (l *Log) String() string {
	detail := l.Detail()
	if detail == "" {
		return fmt.Sprintf("%s %s", l.Category, l.Title)
	}
	return fmt.Sprintf("%s %s: %s", l.Category, l.Title, detail)
}

func (l *Log) itemLabel() string {
	if l.Item != nil && l.Item.Name != "" {
		return l.Item.Name
	}
	return l.ItemID()
}

// Describe renders a reminder for list output.
func (r *Reminder) Describe() string {
	if r == nil || r.Template == nil {
		return ""
	}
	when := r.NextFireAt.Local().Format("Jan 2 15:04")
	if r.Recurring() {
		return fmt.Sprintf("%s at %s, every %s", r.Template.Title, when, formatDuration(*r.Interval))
	}
	return fmt.Sprintf("%s at %s, once", r.Template.Title, when)
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	if d%(24*time.Hour) == 0 {
		days := d / (24 * time.Hour)
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
	return d.Truncate(time.Minute).String()
}
