package health

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Log is a single diary entry. Category selects which detail payload is
// populated; exactly one payload matches the category, and the rest are nil.
// Categories without a payload (note, mood without extras) keep everything in
// the common fields.
type Log struct {
	ID       string    `json:"id"`
	Category Category  `json:"category"`
	Title    string    `json:"title"`
	Created  Timestamp `json:"created"`
	Notes    string    `json:"notes,omitempty"`

	Mood       *MoodDetail       `json:"mood,omitempty"`
	Medication *MedicationDetail `json:"medication,omitempty"`
	Nutrition  *NutritionDetail  `json:"nutrition,omitempty"`
	Symptom    *SymptomDetail    `json:"symptom,omitempty"`
	Activity   *ActivityDetail   `json:"activity,omitempty"`

	// Item is the hydrated catalog item for categories that reference one.
	// It is filled lazily by LogService.InitLogDetails and not required for
	// persistence; the authoritative reference is the ItemID in the payload.
	Item *CatalogItem `json:"item,omitempty"`
}

// MoodDetail ranks how the user felt.
type MoodDetail struct {
	Rank MoodRank `json:"rank"`
}

// MedicationDetail records a dose of a cataloged medication.
type MedicationDetail struct {
	ItemID string `json:"itemId"`
	Dosage string `json:"dosage"`
}

// NutritionDetail records intake of a cataloged food or drink.
type NutritionDetail struct {
	ItemID string `json:"itemId"`
	Amount string `json:"amount"`
}

// SymptomDetail records a cataloged symptom and its severity.
type SymptomDetail struct {
	ItemID   string   `json:"itemId"`
	Severity Severity `json:"severity"`
}

// ActivityDetail records a cataloged activity and how long it lasted.
type ActivityDetail struct {
	ItemID   string        `json:"itemId"`
	Duration time.Duration `json:"duration"`
}

// NewLog creates a log with a fresh id and the current time. The caller fills
// in the category payload before validation.
func NewLog(category Category, title string) *Log {
	return &Log{
		ID:       uuid.NewString(),
		Category: category,
		Title:    title,
		Created:  Now(),
	}
}

// ItemID returns the referenced catalog item id, or "" for self-contained
// categories.
func (l *Log) ItemID() string {
	switch l.Category {
	case CategoryMedication:
		if l.Medication != nil {
			return l.Medication.ItemID
		}
	case CategoryNutrition:
		if l.Nutrition != nil {
			return l.Nutrition.ItemID
		}
	case CategorySymptom:
		if l.Symptom != nil {
			return l.Symptom.ItemID
		}
	case CategoryActivity:
		if l.Activity != nil {
			return l.Activity.ItemID
		}
	}
	return ""
}

// Validate checks that the log is well formed: known category, exactly the
// matching payload set, and required payload fields present.
func (l *Log) Validate() error {
	if l == nil {
		return errors.New("health: nil log")
	}
	if l.ID == "" {
		return errors.New("health: log id required")
	}
	count := 0
	if l.Mood != nil {
		count++
	}
	if l.Medication != nil {
		count++
	}
	if l.Nutrition != nil {
		count++
	}
	if l.Symptom != nil {
		count++
	}
	if l.Activity != nil {
		count++
	}

	switch l.Category {
	case CategoryNote:
		if count != 0 {
			return fmt.Errorf("health: note log carries a %s payload", l.payloadName())
		}
		if l.Title == "" && l.Notes == "" {
			return errors.New("health: note requires a title or notes")
		}
	case CategoryMood:
		if l.Mood == nil || count != 1 {
			return errors.New("health: mood log requires exactly a mood payload")
		}
		if !l.Mood.Rank.Valid() {
			return fmt.Errorf("health: mood rank %d out of range", int(l.Mood.Rank))
		}
	case CategoryMedication:
		if l.Medication == nil || count != 1 {
			return errors.New("health: medication log requires exactly a medication payload")
		}
		if l.Medication.ItemID == "" {
			return errors.New("health: medication log requires a selected medication")
		}
		if l.Medication.Dosage == "" {
			return errors.New("health: medication log requires a dosage")
		}
	case CategoryNutrition:
		if l.Nutrition == nil || count != 1 {
			return errors.New("health: nutrition log requires exactly a nutrition payload")
		}
		if l.Nutrition.ItemID == "" {
			return errors.New("health: nutrition log requires a selected item")
		}
	case CategorySymptom:
		if l.Symptom == nil || count != 1 {
			return errors.New("health: symptom log requires exactly a symptom payload")
		}
		if l.Symptom.ItemID == "" {
			return errors.New("health: symptom log requires a selected symptom")
		}
	case CategoryActivity:
		if l.Activity == nil || count != 1 {
			return errors.New("health: activity log requires exactly an activity payload")
		}
		if l.Activity.ItemID == "" {
			return errors.New("health: activity log requires a selected activity")
		}
	default:
		return fmt.Errorf("health: unknown category %q", l.Category)
	}
	return nil
}

func (l *Log) payloadName() string {
	switch {
	case l.Mood != nil:
		return "mood"
	case l.Medication != nil:
		return "medication"
	case l.Nutrition != nil:
		return "nutrition"
	case l.Symptom != nil:
		return "symptom"
	case l.Activity != nil:
		return "activity"
	}
	return "no"
}

// Clone returns a deep copy. Reducers replace state rather than mutating
// shared values, so anything handed across the store boundary gets cloned.
func (l *Log) Clone() *Log {
	if l == nil {
		return nil
	}
	out := *l
	if l.Mood != nil {
		m := *l.Mood
		out.Mood = &m
	}
	if l.Medication != nil {
		m := *l.Medication
		out.Medication = &m
	}
	if l.Nutrition != nil {
		n := *l.Nutrition
		out.Nutrition = &n
	}
	if l.Symptom != nil {
		s := *l.Symptom
		out.Symptom = &s
	}
	if l.Activity != nil {
		a := *l.Activity
		out.Activity = &a
	}
	if l.Item != nil {
		i := *l.Item
		out.Item = &i
	}
	return &out
}
