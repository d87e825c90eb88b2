package directory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	dom "userdir/internal/domain/user"
	"userdir/internal/logging"
)

// Service manages the live views. Every Mount fetches anew; nothing is
// shared between views.
type Service interface {
	Mount(ctx context.Context) (*View, error)
	Get(id string) (*View, error)
	Teardown(id string) error
	Len() int
}

var _ Service = (*Registry)(nil)

type entry struct {
	view     *View
	lastSeen time.Time
}

type Registry struct {
	source   dom.Source
	pageSize int
	idleTTL  time.Duration
	now      func() time.Time
	logger   logging.Logger

	mu     sync.Mutex
	views  map[string]*entry
	closed bool
}

type RegistryOption func(*Registry)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

// WithIdleTTL sets how long an untouched view survives Sweep. Zero keeps views forever.
func WithIdleTTL(ttl time.Duration) RegistryOption {
	return func(r *Registry) {
		r.idleTTL = ttl
	}
}

func NewRegistry(source dom.Source, pageSize int, logger logging.Logger, opts ...RegistryOption) *Registry {
	r := &Registry{
		source:   source,
		pageSize: pageSize,
		now:      time.Now,
		logger:   logger.With("component", "directory_registry"),
		views:    make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount creates a view and starts its fetch. The fetch outlives ctx's
// cancellation (a request ending) but keeps its values for tracing; it
// stops only on Teardown.
func (r *Registry) Mount(ctx context.Context) (*View, error) {
	id := uuid.NewString()
	v := NewView(id, r.source, r.pageSize, r.logger)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRegistryClosed
	}
	r.views[id] = &entry{view: v, lastSeen: r.now()}
	r.mu.Unlock()

	v.Mount(context.WithoutCancel(ctx))
	r.logger.Debug("view mounted", "view_id", id)
	return v, nil
}

func (r *Registry) Get(id string) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.views[id]
	if !ok {
		return nil, NewViewNotFoundError(id)
	}
	e.lastSeen = r.now()
	return e.view, nil
}

func (r *Registry) Teardown(id string) error {
	r.mu.Lock()
	e, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()

	if !ok {
		return NewViewNotFoundError(id)
	}
	e.view.Close()
	r.logger.Debug("view torn down", "view_id", id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Sweep tears down views idle for longer than the TTL and returns how many.
func (r *Registry) Sweep() int {
	if r.idleTTL <= 0 {
		return 0
	}

	cutoff := r.now().Add(-r.idleTTL)
	var stale []*View

	r.mu.Lock()
	for id, e := range r.views {
		if e.lastSeen.Before(cutoff) {
			stale = append(stale, e.view)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, v := range stale {
		v.Close()
	}
	if len(stale) > 0 {
		r.logger.Info("idle views swept", "count", len(stale))
	}
	return len(stale)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || r.idleTTL <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close tears down every view; later Mounts fail.
func (r *Registry) Close() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*entry)
	r.closed = true
	r.mu.Unlock()

	for _, e := range views {
		e.view.Close()
	}
	r.logger.Info("directory registry closed", "views", len(views))
}
