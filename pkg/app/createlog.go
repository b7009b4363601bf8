package app

import (
	"time"

	"tableflip.dev/vita/pkg/health"
)

// CreateLogOpened resets the form for a category. When the form is opened
// from a fired reminder the template pre-fills it and saving will complete
// that reminder.
type CreateLogOpened struct {
	Category       health.Category
	FromReminder   *health.Reminder
	FromReminderID string
}

func (CreateLogOpened) Name() string     { return "createLog/opened" }
func (CreateLogOpened) feature() feature { return featureCreateLog }

// CreateCategoryChanged switches the form category, clearing the
// category-specific fields and any selected item.
type CreateCategoryChanged struct {
	Category health.Category
}

func (CreateCategoryChanged) Name() string     { return "createLog/categoryDidChange" }
func (CreateCategoryChanged) feature() feature { return featureCreateLog }

// CreateTitleChanged tracks the title field.
type CreateTitleChanged struct{ Title string }

func (CreateTitleChanged) Name() string     { return "createLog/titleDidChange" }
func (CreateTitleChanged) feature() feature { return featureCreateLog }

// CreateNotesChanged tracks the free-text notes field.
type CreateNotesChanged struct{ Notes string }

func (CreateNotesChanged) Name() string     { return "createLog/notesDidChange" }
func (CreateNotesChanged) feature() feature { return featureCreateLog }

// CreateMoodChanged tracks the mood rank picker.
type CreateMoodChanged struct{ Rank health.MoodRank }

func (CreateMoodChanged) Name() string     { return "createLog/moodDidChange" }
func (CreateMoodChanged) feature() feature { return featureCreateLog }

// CreateDosageChanged tracks the medication dosage field.
type CreateDosageChanged struct{ Dosage string }

func (CreateDosageChanged) Name() string     { return "createLog/medicationDosageDidChange" }
func (CreateDosageChanged) feature() feature { return featureCreateLog }

// CreateAmountChanged tracks the nutrition amount field.
type CreateAmountChanged struct{ Amount string }

func (CreateAmountChanged) Name() string     { return "createLog/nutritionAmountDidChange" }
func (CreateAmountChanged) feature() feature { return featureCreateLog }

// CreateSeverityChanged tracks the symptom severity picker.
type CreateSeverityChanged struct{ Severity health.Severity }

func (CreateSeverityChanged) Name() string     { return "createLog/symptomSeverityDidChange" }
func (CreateSeverityChanged) feature() feature { return featureCreateLog }

// CreateDurationChanged tracks the activity duration field.
type CreateDurationChanged struct{ Duration time.Duration }

func (CreateDurationChanged) Name() string     { return "createLog/activityDurationDidChange" }
func (CreateDurationChanged) feature() feature { return featureCreateLog }

// CreateItemSelected picks a catalog item from search results.
type CreateItemSelected struct{ Item *health.CatalogItem }

func (CreateItemSelected) Name() string     { return "createLog/itemSelected" }
func (CreateItemSelected) feature() feature { return featureCreateLog }

// CreateSearchQueryChanged tracks the catalog search box. The reducer bumps
// the search generation; middleware tags its async result with the
// generation it saw so stale completions can be discarded.
type CreateSearchQueryChanged struct{ Query string }

func (CreateSearchQueryChanged) Name() string     { return "createLog/searchQueryDidChange" }
func (CreateSearchQueryChanged) feature() feature { return featureCreateLog }

// CreateSearchCompleted lands catalog search results.
type CreateSearchCompleted struct {
	Generation uint64
	Results    []*health.CatalogItem
}

func (CreateSearchCompleted) Name() string     { return "createLog/searchDidComplete" }
func (CreateSearchCompleted) feature() feature { return featureCreateLog }

// CreateItemRequested asks middleware to create a new catalog item from the
// current search text and select it.
type CreateItemRequested struct{ ItemName string }

func (CreateItemRequested) Name() string     { return "createLog/itemCreateRequested" }
func (CreateItemRequested) feature() feature { return featureCreateLog }

// CreateItemSaved lands a newly created catalog item and selects it.
type CreateItemSaved struct{ Item *health.CatalogItem }

func (CreateItemSaved) Name() string     { return "createLog/itemCreated" }
func (CreateItemSaved) feature() feature { return featureCreateLog }

// CreateSaveRequested submits the form. The reducer only flips the loading
// flag; persistence happens in middleware and lands via CreateSaveSucceeded
// or CreateSaveFailed.
type CreateSaveRequested struct{}

func (CreateSaveRequested) Name() string     { return "createLog/onSavePressed" }
func (CreateSaveRequested) feature() feature { return featureCreateLog }

// CreateSaveSucceeded lands the persisted log, plus the reminder-completion
// outcome when the form was opened from a reminder. ReminderErr is set when
// the log saved but the reminder completion failed; the log is still cached.
type CreateSaveSucceeded struct {
	Log               *health.Log
	CompletedReminder *health.Reminder
	ReminderDeleted   bool
	ReminderErr       error
}

func (CreateSaveSucceeded) Name() string     { return "createLog/onSaveSuccess" }
func (CreateSaveSucceeded) feature() feature { return featureCreateLog }

// CreateSaveFailed surfaces a save error in the form.
type CreateSaveFailed struct{ Err error }

func (CreateSaveFailed) Name() string     { return "createLog/onSaveFailure" }
func (CreateSaveFailed) feature() feature { return featureCreateLog }

// CreateErrorDismissed clears the form error, returning the form to its
// pre-error state.
type CreateErrorDismissed struct{}

func (CreateErrorDismissed) Name() string     { return "createLog/errorDismissed" }
func (CreateErrorDismissed) feature() feature { return featureCreateLog }

func reduceCreateLog(s AppState, a Action) AppState {
	switch act := a.(type) {
	case CreateLogOpened:
		form := CreateLogState{
			Category: act.Category,
			MoodRank: health.MoodNeutral,
		}
		if act.FromReminder != nil && act.FromReminder.Template != nil {
			form = formFromTemplate(act.FromReminder.Template)
			form.FromReminderID = act.FromReminder.ID
		} else {
			form.FromReminderID = act.FromReminderID
		}
		s.CreateLog = form
	case CreateCategoryChanged:
		form := s.CreateLog
		form.Category = act.Category
		form.MoodRank = health.MoodNeutral
		form.Dosage = ""
		form.Amount = ""
		form.Severity = health.SeverityNone
		form.Duration = 0
		form.SelectedItem = nil
		form.SearchQuery = ""
		form.SearchResults = nil
		form.IsSearching = false
		s.CreateLog = form
	case CreateTitleChanged:
		s.CreateLog.Title = act.Title
	case CreateNotesChanged:
		s.CreateLog.Notes = act.Notes
	case CreateMoodChanged:
		s.CreateLog.MoodRank = act.Rank
	case CreateDosageChanged:
		s.CreateLog.Dosage = act.Dosage
	case CreateAmountChanged:
		s.CreateLog.Amount = act.Amount
	case CreateSeverityChanged:
		s.CreateLog.Severity = act.Severity
	case CreateDurationChanged:
		s.CreateLog.Duration = act.Duration
	case CreateItemSelected:
		s.CreateLog.SelectedItem = act.Item
		if act.Item != nil && s.CreateLog.Title == "" {
			s.CreateLog.Title = act.Item.Name
		}
	case CreateSearchQueryChanged:
		s.CreateLog.SearchQuery = act.Query
		s.CreateLog.SearchGeneration++
		s.CreateLog.IsSearching = true
	case CreateSearchCompleted:
		if act.Generation != s.CreateLog.SearchGeneration {
			break // a newer query superseded this result
		}
		s.CreateLog.SearchResults = act.Results
		s.CreateLog.IsSearching = false
	case CreateItemSaved:
		s.CreateLog.SelectedItem = act.Item
		if act.Item != nil && s.CreateLog.Title == "" {
			s.CreateLog.Title = act.Item.Name
		}
	case CreateSaveRequested:
		s.CreateLog.IsCreating = true
		s.CreateLog.Err = nil
	case CreateSaveSucceeded:
		s.CreateLog.IsCreating = false
		s.CreateLog.CreateSuccess = true
		s.CreateLog.Err = act.ReminderErr
		s.Global = withLogInserted(s.Global, act.Log)
		if act.CompletedReminder != nil {
			if act.ReminderDeleted {
				s.Global.Reminders = remindersWithout(s.Global.Reminders, act.CompletedReminder.ID)
			} else {
				s.Global.Reminders = remindersUpserted(s.Global.Reminders, act.CompletedReminder)
			}
		}
	case CreateSaveFailed:
		s.CreateLog.IsCreating = false
		s.CreateLog.Err = act.Err
	case CreateErrorDismissed:
		s.CreateLog.Err = nil
	}
	return s
}

// formFromTemplate pre-fills the create form from a reminder's template log.
func formFromTemplate(t *health.Log) CreateLogState {
	form := CreateLogState{
		Category: t.Category,
		Title:    t.Title,
		Notes:    t.Notes,
		MoodRank: health.MoodNeutral,
	}
	switch t.Category {
	case health.CategoryMood:
		if t.Mood != nil {
			form.MoodRank = t.Mood.Rank
		}
	case health.CategoryMedication:
		if t.Medication != nil {
			form.Dosage = t.Medication.Dosage
		}
	case health.CategoryNutrition:
		if t.Nutrition != nil {
			form.Amount = t.Nutrition.Amount
		}
	case health.CategorySymptom:
		if t.Symptom != nil {
			form.Severity = t.Symptom.Severity
		}
	case health.CategoryActivity:
		if t.Activity != nil {
			form.Duration = t.Activity.Duration
		}
	}
	if t.Item != nil {
		form.SelectedItem = t.Item
	} else if id := t.ItemID(); id != "" {
		form.SelectedItem = &health.CatalogItem{ID: id, Category: t.Category}
	}
	return form
}

// buildLog assembles and validates a Log from the current form state.
func buildLog(form CreateLogState) (*health.Log, error) {
	l := health.NewLog(form.Category, form.Title)
	l.Notes = form.Notes
	itemID := ""
	if form.SelectedItem != nil {
		itemID = form.SelectedItem.ID
		if l.Title == "" {
			l.Title = form.SelectedItem.Name
		}
	}
	switch form.Category {
	case health.CategoryMood:
		l.Mood = &health.MoodDetail{Rank: form.MoodRank}
	case health.CategoryMedication:
		l.Medication = &health.MedicationDetail{ItemID: itemID, Dosage: form.Dosage}
	case health.CategoryNutrition:
		l.Nutrition = &health.NutritionDetail{ItemID: itemID, Amount: form.Amount}
	case health.CategorySymptom:
		l.Symptom = &health.SymptomDetail{ItemID: itemID, Severity: form.Severity}
	case health.CategoryActivity:
		l.Activity = &health.ActivityDetail{ItemID: itemID, Duration: form.Duration}
	}
	if form.SelectedItem != nil && form.SelectedItem.Name != "" {
		l.Item = form.SelectedItem
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}
