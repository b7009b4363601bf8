package app

import (
	"context"

	"tableflip.dev/vita/pkg/store"
)

// WatchStorage bridges the on-disk watcher into the dispatch loop: every
// database change another process makes lands as a StorageChanged action.
// Returns when the context is cancelled or the watcher closes.
func WatchStorage(ctx context.Context, p store.Persistence, st *Store) error {
	events, err := p.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			st.Dispatch(StorageChanged{Kind: ev.Kind})
		}
	}
}
