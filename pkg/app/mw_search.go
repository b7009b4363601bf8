package app

import (
	"context"
	"strings"

	"tableflip.dev/vita/pkg/health"
)

// SearchMiddleware serves the create-form catalog search. Each query is
// tagged with the generation the reducer assigned it; the reducer drops
// completions whose generation no longer matches, so an older slow search
// can never clobber a newer one. Search failures render as empty results
// rather than errors.
func SearchMiddleware(svc Services) Middleware {
	return func(ctx context.Context, s AppState, a Action, d Dispatch) {
		switch act := a.(type) {
		case CreateSearchQueryChanged:
			gen := s.CreateLog.SearchGeneration
			query := strings.TrimSpace(act.Query)
			if query == "" {
				d(CreateSearchCompleted{Generation: gen})
				return
			}
			user := s.Global.User
			category := s.CreateLog.Category
			go func() {
				if user == nil {
					d(CreateSearchCompleted{Generation: gen})
					return
				}
				results, err := svc.Logs.SearchCatalog(ctx, query, user, category)
				if err != nil {
					results = nil
				}
				d(CreateSearchCompleted{Generation: gen, Results: results})
			}()
		case CreateItemRequested:
			user := s.Global.User
			category := s.CreateLog.Category
			go func() {
				if user == nil {
					d(CreateSaveFailed{Err: errNoUser})
					return
				}
				item := health.NewCatalogItem(category, strings.TrimSpace(act.ItemName), user.ID)
				if err := svc.Logs.SaveCatalogItem(ctx, item, user); err != nil {
					d(CreateSaveFailed{Err: err})
					return
				}
				d(CreateItemSaved{Item: item})
			}()
		}
	}
}
