package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/vita/pkg/health"
)

func TestPersistenceWatchEmitsKindChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(FixedConfig{Path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	l := health.NewLog(health.CategoryNote, "hello world")
	if err := p.StoreLog("user-1", l); err != nil {
		t.Fatalf("store log: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventKindChanged {
				if evt.Kind != KindLog {
					t.Fatalf("expected kind %q, got %q", KindLog, evt.Kind)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}
