package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mmcdole/appgrid/internal/catalog"
	"github.com/mmcdole/appgrid/internal/feed"
	"github.com/mmcdole/appgrid/internal/search"
)

// headlessGrace covers decoding and notification after the request ends
const headlessGrace = 5 * time.Second

// headlessWait bounds the headless run by the client's effective timeout
func headlessWait(c *feed.Client) time.Duration {
	return c.Timeout() + headlessGrace
}

// runHeadless starts the store, waits for the feed to resolve and prints the
// names matching query, one per line. Feed failures print nothing, the same
// empty result the grid shows.
func runHeadless(ctx context.Context, store *catalog.Store, query string, out io.Writer) error {
	resolved := make(chan catalog.Snapshot, 1)
	unsubscribe := store.Subscribe(catalog.ObserverFunc(func(snap catalog.Snapshot) {
		if !snap.Loaded {
			return
		}
		select {
		case resolved <- snap:
		default:
		}
	}))
	defer unsubscribe()

	// ctx bounds the wait only; the store's tasks end with Dispose
	if err := store.Initialize(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("failed to start catalog: %w", err)
	}

	var snap catalog.Snapshot
	select {
	case snap = <-resolved:
	case <-ctx.Done():
		return fmt.Errorf("waiting for feed: %w", ctx.Err())
	}

	for _, e := range search.Filter(snap.Entries, query) {
		if _, err := fmt.Fprintln(out, e.Name); err != nil {
			return err
		}
	}
	return nil
}
