package services

import (
	"context"
	"strings"
	"time"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/store"
)

// ListOptions filter a log query. Zero values mean "no constraint".
type ListOptions struct {
	Category health.Category
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}

// LogService owns diary entries and the catalog of reusable items.
type LogService interface {
	GetLogs(ctx context.Context, user *health.User, opts ListOptions) ([]*health.Log, error)
	SaveLog(ctx context.Context, l *health.Log, user *health.User) error
	DeleteLog(ctx context.Context, id string, user *health.User) error
	InitLogDetails(ctx context.Context, l *health.Log, user *health.User) (*health.Log, error)
	SearchCatalog(ctx context.Context, query string, user *health.User, category health.Category) ([]*health.CatalogItem, error)
	SaveCatalogItem(ctx context.Context, item *health.CatalogItem, user *health.User) error
}

// NewLogService builds a LogService over the persistence layer.
func NewLogService(p store.Persistence) LogService {
	return &logService{p: p}
}

type logService struct {
	p store.Persistence
}

func (s *logService) GetLogs(ctx context.Context, user *health.User, opts ListOptions) ([]*health.Log, error) {
	if user == nil {
		return nil, invalid("get logs", errUserRequired)
	}
	all := s.p.Logs(ctx, user.ID)

	filtered := make([]*health.Log, 0, len(all))
	for _, l := range all {
		if opts.Category != "" && l.Category != opts.Category {
			continue
		}
		if !opts.From.IsZero() && l.Created.Time.Before(opts.From) {
			continue
		}
		if !opts.To.IsZero() && !l.Created.Time.Before(opts.To) {
			continue
		}
		filtered = append(filtered, l)
	}

	if opts.Offset > 0 {
		if opts.Offset >= len(filtered) {
			return []*health.Log{}, nil
		}
		filtered = filtered[opts.Offset:]
	}
	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}
	return filtered, nil
}

func (s *logService) SaveLog(ctx context.Context, l *health.Log, user *health.User) error {
	if user == nil {
		return invalid("save log", errUserRequired)
	}
	if err := l.Validate(); err != nil {
		return invalid("save log", err)
	}
	if err := s.p.StoreLog(user.ID, l); err != nil {
		return wrap("save log", err)
	}
	return nil
}

func (s *logService) DeleteLog(ctx context.Context, id string, user *health.User) error {
	if user == nil {
		return invalid("delete log", errUserRequired)
	}
	if err := s.p.DeleteLog(user.ID, id); err != nil {
		return wrap("delete log", err)
	}
	return nil
}

// InitLogDetails hydrates the referenced catalog item when the log has one
// and it is not already embedded. Logs without an item reference pass
// through untouched.
func (s *logService) InitLogDetails(ctx context.Context, l *health.Log, user *health.User) (*health.Log, error) {
	if user == nil {
		return nil, invalid("init log details", errUserRequired)
	}
	if l == nil {
		return nil, invalid("init log details", errLogRequired)
	}
	itemID := l.ItemID()
	if itemID == "" || (l.Item != nil && l.Item.ID == itemID) {
		return l, nil
	}
	for _, item := range s.p.CatalogItems(ctx, user.ID) {
		if item.ID == itemID && item.Category == l.Category {
			hydrated := l.Clone()
			hydrated.Item = item
			return hydrated, nil
		}
	}
	return nil, notFound("init log details: catalog item " + itemID)
}

func (s *logService) SearchCatalog(ctx context.Context, query string, user *health.User, category health.Category) ([]*health.CatalogItem, error) {
	if user == nil {
		return nil, invalid("search catalog", errUserRequired)
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	results := make([]*health.CatalogItem, 0)
	for _, item := range s.p.CatalogItems(ctx, user.ID) {
		if category != "" && item.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		results = append(results, item)
	}
	return results, nil
}

func (s *logService) SaveCatalogItem(ctx context.Context, item *health.CatalogItem, user *health.User) error {
	if user == nil {
		return invalid("save catalog item", errUserRequired)
	}
	if err := item.Validate(); err != nil {
		return invalid("save catalog item", err)
	}
	if err := s.p.StoreCatalogItem(user.ID, item); err != nil {
		return wrap("save catalog item", err)
	}
	return nil
}
