package search

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/services"
	"tableflip.dev/vita/pkg/store"
)

// Search lists catalog items matching a substring of the name.
type Search struct {
	ShowID      bool
	Persistence store.Persistence

	Query    string
	Category health.Category
}

func (n *Search) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not search, no persistence")
	}
	logs := services.NewLogService(n.Persistence)
	user, err := services.ResolveCurrentUser(ctx, services.NewUserService(n.Persistence))
	if err != nil {
		return err
	}

	hits, err := logs.SearchCatalog(ctx, n.Query, user, n.Category)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount("catalog", len(hits))
	pp.Catalog(hits...)
	return nil
}
