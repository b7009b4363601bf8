// Package health defines the domain model for vita: logs, catalog items,
// reminders, and users.
package health

import (
	"fmt"
	"strings"
)

// Category identifies the kind of a log entry.
type Category string

const (
	// CategoryNote is a free-form note.
	CategoryNote Category = "note"
	// CategoryMood records how the user feels on a ranked scale.
	CategoryMood Category = "mood"
	// CategoryMedication records a dose of a medication.
	CategoryMedication Category = "medication"
	// CategoryNutrition records food or drink intake.
	CategoryNutrition Category = "nutrition"
	// CategorySymptom records a symptom and its severity.
	CategorySymptom Category = "symptom"
	// CategoryActivity records a timed activity.
	CategoryActivity Category = "activity"
)

// AllCategories returns the list of supported log categories.
func AllCategories() []Category {
	return []Category{
		CategoryNote,
		CategoryMood,
		CategoryMedication,
		CategoryNutrition,
		CategorySymptom,
		CategoryActivity,
	}
}

var categoryAliases = map[string]Category{
	"note":        CategoryNote,
	"notes":       CategoryNote,
	"mood":        CategoryMood,
	"moods":       CategoryMood,
	"med":         CategoryMedication,
	"meds":        CategoryMedication,
	"medication":  CategoryMedication,
	"medications": CategoryMedication,
	"food":        CategoryNutrition,
	"nutrition":   CategoryNutrition,
	"symptom":     CategorySymptom,
	"symptoms":    CategorySymptom,
	"activity":    CategoryActivity,
	"activities":  CategoryActivity,
}

// ParseCategory converts a string (or one of its aliases) to a Category.
func ParseCategory(raw string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", fmt.Errorf("health: category required")
	}
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	return "", fmt.Errorf("health: unknown category %q", raw)
}

// MustCategory parses the input and panics on error. Intended for tests.
func MustCategory(raw string) Category {
	c, err := ParseCategory(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// HasCatalogItem reports whether logs of this category reference a reusable
// catalog item (medications, foods, symptoms, activities). Moods and notes
// are self-contained.
func (c Category) HasCatalogItem() bool {
	switch c {
	case CategoryMedication, CategoryNutrition, CategorySymptom, CategoryActivity:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

// Severity ranks how bad a symptom is.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityMild
	SeverityModerate
	SeveritySevere
	SeverityExtreme
)

var severityNames = []string{"none", "mild", "moderate", "severe", "extreme"}

// AllSeverities returns the severity scale from none to extreme.
func AllSeverities() []Severity {
	return []Severity{SeverityNone, SeverityMild, SeverityModerate, SeveritySevere, SeverityExtreme}
}

// ParseSeverity converts a name to a Severity.
func ParseSeverity(raw string) (Severity, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	for i, name := range severityNames {
		if name == key {
			return Severity(i), nil
		}
	}
	return SeverityNone, fmt.Errorf("health: unknown severity %q", raw)
}

func (s Severity) String() string {
	if s < SeverityNone || int(s) >= len(severityNames) {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// MoodRank is a 1..5 scale, 1 lowest.
type MoodRank int

const (
	MoodTerrible MoodRank = iota + 1
	MoodBad
	MoodNeutral
	MoodGood
	MoodGreat
)

var moodNames = map[MoodRank]string{
	MoodTerrible: "terrible",
	MoodBad:      "bad",
	MoodNeutral:  "neutral",
	MoodGood:     "good",
	MoodGreat:    "great",
}

// ParseMoodRank accepts either a 1..5 number word ("4") or a mood name.
func ParseMoodRank(raw string) (MoodRank, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	for rank, name := range moodNames {
		if name == key {
			return rank, nil
		}
	}
	switch key {
	case "1", "2", "3", "4", "5":
		return MoodRank(key[0] - '0'), nil
	}
	return 0, fmt.Errorf("health: unknown mood %q", raw)
}

// Valid reports whether the rank is on the scale.
func (m MoodRank) Valid() bool {
	return m >= MoodTerrible && m <= MoodGreat
}

func (m MoodRank) String() string {
	if name, ok := moodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mood(%d)", int(m))
}
