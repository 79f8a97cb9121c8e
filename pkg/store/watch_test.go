package store

import (
	"context"
	"testing"
	"time"

	"taskmaster/pkg/tasklist"
)

func TestWatchSeesSaves(t *testing.T) {
	cfg := testConfig(t)
	p, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := p.Save([]*tasklist.List{tasklist.New("Watched")}); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatalf("event channel closed early")
		}
		if ev.Path != p.Path() {
			t.Fatalf("event path = %q, want %q", ev.Path, p.Path())
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no event after save")
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	p, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-events:
		if ok {
			// A buffered event may race the cancel; the channel must still
			// close afterwards.
			if _, open := <-events; open {
				t.Fatalf("channel still open after cancel")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("channel not closed after cancel")
	}
}
