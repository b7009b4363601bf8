package remove

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/vita/pkg/services"
	"tableflip.dev/vita/pkg/store"
)

// Remove deletes a log entry by id. A short id prefix works when it is
// unambiguous.
type Remove struct {
	Persistence store.Persistence
	ID          string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	logs := services.NewLogService(n.Persistence)
	user, err := services.ResolveCurrentUser(ctx, services.NewUserService(n.Persistence))
	if err != nil {
		return err
	}

	id, err := ResolveLogID(ctx, n.Persistence, user.ID, n.ID)
	if err != nil {
		return err
	}
	if err := logs.DeleteLog(ctx, id, user); err != nil && !services.IsNotFound(err) {
		return err
	}
	fmt.Printf("removed %s\n", id)
	return nil
}

// ResolveLogID expands a short id prefix to a stored log id. The full id
// passes through even when nothing matches, so deleting an absent id stays a
// quiet no-op.
func ResolveLogID(ctx context.Context, p store.Persistence, userID, prefix string) (string, error) {
	if prefix == "" {
		return "", errors.New("remove: an id is required")
	}
	matched := ""
	for _, l := range p.Logs(ctx, userID) {
		if !strings.HasPrefix(l.ID, prefix) {
			continue
		}
		if matched != "" && matched != l.ID {
			return "", fmt.Errorf("remove: id %q is ambiguous", prefix)
		}
		matched = l.ID
	}
	if matched == "" {
		return prefix, nil
	}
	return matched, nil
}
