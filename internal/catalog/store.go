// Package catalog holds the reactive state behind the grid: the decoded feed
// entries and the reveal window. A Store is created per session, started with
// Initialize and torn down with Dispose; it is never global.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmcdole/appgrid/internal/domain"
	"github.com/mmcdole/appgrid/internal/feed"
	"github.com/mmcdole/appgrid/internal/reveal"
)

// Lifecycle errors
var (
	ErrAlreadyInitialized = errors.New("catalog store already initialized")
	ErrDisposed           = errors.New("catalog store disposed")
)

// Snapshot is a read-only view of the store state
type Snapshot struct {
	Entries      []domain.CatalogEntry
	VisibleSlots int
	Phase        reveal.Phase
	Loaded       bool  // Fetch resolved, successfully or not
	Err          error // Fetch or decode failure; the grid still renders empty
}

// Observer receives the store state after every mutation.
// Observers run synchronously and must not call Dispose.
type Observer interface {
	OnChange(snap Snapshot)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(Snapshot)

// OnChange calls f(snap)
func (f ObserverFunc) OnChange(snap Snapshot) { f(snap) }

type lifecycle int

const (
	stateIdle lifecycle = iota
	stateRunning
	stateDisposed
)

type subscription struct {
	id  int
	obs Observer
}

// Store is the single source of truth the rendering surface observes
type Store struct {
	source    domain.FeedSource
	feedURL   string
	scheduler *reveal.Scheduler
	logger    *slog.Logger

	// emitMu serializes mutation+notification pairs so observers never see
	// two notifications interleave. mu guards the fields below.
	emitMu sync.Mutex
	mu     sync.Mutex

	state     lifecycle
	entries   []domain.CatalogEntry
	phase     reveal.Phase
	loaded    bool
	err       error
	observers []subscription
	nextID    int

	cancel context.CancelFunc
	group  *errgroup.Group
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the store logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRevealDelay sets the delay before the grid expands
func WithRevealDelay(d time.Duration) Option {
	return func(s *Store) {
		s.scheduler = reveal.NewScheduler(d)
	}
}

// New creates a store that will fetch feedURL from source.
// Nothing runs until Initialize.
func New(source domain.FeedSource, feedURL string, opts ...Option) *Store {
	s := &Store{
		source:    source,
		feedURL:   feedURL,
		scheduler: reveal.NewScheduler(reveal.DefaultDelay),
		logger:    slog.Default(),
		entries:   []domain.CatalogEntry{},
		phase:     reveal.Collapsed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize resets the state and starts the feed fetch and the reveal timer
// concurrently. It returns immediately.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateRunning:
		return ErrAlreadyInitialized
	case stateDisposed:
		return ErrDisposed
	}

	s.entries = []domain.CatalogEntry{}
	s.phase = reveal.Collapsed
	s.state = stateRunning

	// The fetch honors ctx; the reveal timer stops only on Dispose.
	fetchCtx, cancelFetch := context.WithCancel(ctx)
	revealCtx, cancelReveal := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = func() {
		cancelFetch()
		cancelReveal()
	}
	s.group = &errgroup.Group{}

	s.group.Go(func() error {
		env, err := feed.Load(fetchCtx, s.source, s.feedURL)
		s.resolveFetch(env, err)
		return nil
	})
	s.group.Go(func() error {
		_ = s.scheduler.Run(revealCtx, s.expand)
		return nil
	})

	s.logger.Info("catalog store initialized", "url", s.feedURL, "revealDelay", s.scheduler.Delay())
	return nil
}

// Dispose cancels the outstanding fetch and timer and waits for both to
// exit. No mutation or notification happens after Dispose returns.
func (s *Store) Dispose() {
	s.mu.Lock()
	if s.state == stateDisposed {
		s.mu.Unlock()
		return
	}
	s.state = stateDisposed
	cancel, group := s.cancel, s.group
	s.observers = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if group != nil {
		_ = group.Wait()
	}
	s.logger.Debug("catalog store disposed")
}

// Subscribe registers an observer and returns a function that removes it
func (s *Store) Subscribe(obs Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, subscription{id: id, obs: obs})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.observers = slices.DeleteFunc(s.observers, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// Snapshot returns the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Entries returns the decoded entries, empty until the fetch succeeds
func (s *Store) Entries() []domain.CatalogEntry {
	return s.Snapshot().Entries
}

// VisibleSlots returns the current reveal window
func (s *Store) VisibleSlots() int {
	return s.Snapshot().VisibleSlots
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Entries:      slices.Clone(s.entries),
		VisibleSlots: s.phase.Slots(),
		Phase:        s.phase,
		Loaded:       s.loaded,
		Err:          s.err,
	}
}

// resolveFetch applies the fetch outcome. Failures leave entries empty.
func (s *Store) resolveFetch(env domain.FeedEnvelope, err error) {
	s.apply(func() bool {
		if s.loaded {
			return false
		}
		s.loaded = true
		if err != nil {
			s.err = err
			s.logger.Error("failed to load feed", "url", s.feedURL, "error", err)
			return true
		}
		s.entries = slices.Clone(env.Entries)
		if s.entries == nil {
			s.entries = []domain.CatalogEntry{}
		}
		s.logger.Info("feed loaded", "entries", len(s.entries))
		return true
	})
}

// expand moves the reveal window forward; it never shrinks
func (s *Store) expand(p reveal.Phase) {
	s.apply(func() bool {
		if p <= s.phase {
			return false
		}
		s.phase = p
		s.logger.Debug("reveal window expanded", "slots", p.Slots())
		return true
	})
}

// apply runs mutate under the state lock and, if it changed anything,
// notifies observers before the next mutation can start. Mutations after
// Dispose are dropped.
func (s *Store) apply(mutate func() bool) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	if s.state != stateRunning || !mutate() {
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked()
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, sub := range observers {
		sub.obs.OnChange(snap)
	}
}
