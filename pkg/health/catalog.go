package health

import (
	"errors"

	"github.com/google/uuid"
)

// CatalogItem is a reusable named item a log can reference: a specific
// medication, food, symptom, or activity. Items are created independently of
// any log and looked up by (category, id).
type CatalogItem struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"createdBy"`
	Created   Timestamp `json:"created"`
}

// NewCatalogItem creates an item with a fresh id and the current time.
func NewCatalogItem(category Category, name, createdBy string) *CatalogItem {
	return &CatalogItem{
		ID:        uuid.NewString(),
		Category:  category,
		Name:      name,
		CreatedBy: createdBy,
		Created:   Now(),
	}
}

// Validate checks the item is well formed.
func (c *CatalogItem) Validate() error {
	if c == nil {
		return errors.New("health: nil catalog item")
	}
	if c.ID == "" {
		return errors.New("health: catalog item id required")
	}
	if c.Name == "" {
		return errors.New("health: catalog item name required")
	}
	if !c.Category.HasCatalogItem() {
		return errors.New("health: category " + c.Category.String() + " has no catalog items")
	}
	return nil
}
