package ui

import (
	"context"
	"errors"
	"os"

	isatty "github.com/mattn/go-isatty"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/store"
	"tableflip.dev/vita/pkg/tui"
)

// UI opens the terminal app: a store with the default middleware chain, the
// storage watcher feeding it, and the bubbletea front end on top.
type UI struct {
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not open ui, no persistence")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("ui requires a terminal")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	st := app.NewDefaultStore(app.NewServices(n.Persistence, true))
	defer st.Close()

	go func() {
		// Best effort; the ui still works without live refresh.
		_ = app.WatchStorage(ctx, n.Persistence, st)
	}()

	return tui.Run(ctx, st)
}
