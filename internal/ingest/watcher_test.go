package ingest

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherEmitsDebouncedEvents(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Root: dir, Debounce: 50 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	// a burst of writes across two files settles into one event per file
	for i := 0; i < 3; i++ {
		writeFile(t, dir, "premium-due-list.txt", "Premium Due List\n")
		writeFile(t, dir, "claims-due-list.txt", "Claims Due\n")
	}

	got := map[string]bool{}
	timeout := time.After(5 * time.Second)
	for len(got) < 2 {
		select {
		case p, ok := <-evCh:
			if !ok {
				t.Fatal("event channel closed early")
			}
			got[filepath.Base(p)] = true
		case <-timeout:
			t.Fatalf("timed out waiting for events, got %v", got)
		}
	}
	if !got["premium-due-list.txt"] || !got["claims-due-list.txt"] {
		t.Errorf("events = %v", got)
	}
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "CM-July.txt", "Commission Summary\n")
	writeFile(t, dir, "notes.csv", "skip")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Root: dir, InitialScan: true})
	if err != nil {
		t.Fatal(err)
	}
	select {
	case p := <-evCh:
		if filepath.Base(p) != "CM-July.txt" {
			t.Errorf("initial scan emitted %q", p)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("initial scan emitted nothing")
	}
}

func TestWatcherClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	evCh, _, err := StartWatcher(ctx, WatchConfig{Root: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	cancel()

	select {
	case _, ok := <-evCh:
		if ok {
			t.Fatal("unexpected event before close")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event channel not closed after cancel")
	}
}
