package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/appgrid/internal/catalog"
	"github.com/mmcdole/appgrid/internal/feed"
)

const testFeed = `{"feed":{"results":[
	{"copyright":"C1","name":"App One","artworkUrl100":"http://x/1.png","releaseDate":"2021-01-01"},
	{"copyright":"C2","name":"Other","artworkUrl100":"http://x/2.png","releaseDate":"2021-01-02"},
	{"copyright":"C3","name":"MyApp","artworkUrl100":"http://x/3.png","releaseDate":"2021-01-03"}
]}}`

func newStore(url string) *catalog.Store {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return catalog.New(feed.NewClient(time.Second, logger), url,
		catalog.WithLogger(logger),
		catalog.WithRevealDelay(time.Hour),
	)
}

func TestRunHeadless_PrintsMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, testFeed)
	}))
	defer srv.Close()

	store := newStore(srv.URL)
	defer store.Dispose()

	var out bytes.Buffer
	require.NoError(t, runHeadless(context.Background(), store, "app", &out))
	assert.Equal(t, "App One\nMyApp\n", out.String())
}

func TestRunHeadless_FailurePrintsNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := newStore(srv.URL)
	defer store.Dispose()

	var out bytes.Buffer
	require.NoError(t, runHeadless(context.Background(), store, "", &out))
	assert.Empty(t, out.String())
}

func TestRunHeadless_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	store := newStore(srv.URL)
	defer store.Dispose()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := runHeadless(ctx, store, "", io.Discard)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHeadlessWait_UsesEffectiveTimeout(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// A zero timeout falls back to the client default, not to zero
	c := feed.NewClient(0, logger)
	assert.Equal(t, c.Timeout()+headlessGrace, headlessWait(c))
	assert.Equal(t, 30*time.Second+headlessGrace, headlessWait(c))

	assert.Equal(t, 2*time.Second+headlessGrace, headlessWait(feed.NewClient(2*time.Second, logger)))
}
