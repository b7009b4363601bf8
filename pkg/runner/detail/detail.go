package detail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/services"
	"tableflip.dev/vita/pkg/store"
)

// Detail prints one log entry in full, with its catalog item hydrated.
type Detail struct {
	Persistence store.Persistence
	ID          string
}

func (n *Detail) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show detail, no persistence")
	}
	logs := services.NewLogService(n.Persistence)
	user, err := services.ResolveCurrentUser(ctx, services.NewUserService(n.Persistence))
	if err != nil {
		return err
	}

	var found *health.Log
	for _, l := range n.Persistence.Logs(ctx, user.ID) {
		if l.ID == n.ID || strings.HasPrefix(l.ID, n.ID) {
			if found != nil && found.ID != l.ID {
				return fmt.Errorf("detail: id %q is ambiguous", n.ID)
			}
			found = l
		}
	}
	if found == nil {
		return fmt.Errorf("detail: no log with id %q", n.ID)
	}

	hydrated, err := logs.InitLogDetails(ctx, found, user)
	if err != nil {
		if !services.IsNotFound(err) {
			return err
		}
		hydrated = found // show what we have
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title(hydrated.Title)
	pp.Logs(hydrated)
	if hydrated.Notes != "" {
		f := color.New(color.Faint)
		_, _ = f.Println(hydrated.Notes)
	}
	return nil
}
