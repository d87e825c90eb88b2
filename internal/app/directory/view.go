package directory

import (
	"context"
	"sync"

	dom "userdir/internal/domain/user"
	"userdir/internal/logging"
)

// View is one mounted user directory: the fetched collection plus the
// search, sort and page inputs. Filtered, sorted and paged sequences are
// derived from those inputs and never edited directly.
//
// Writers are the event methods and the fetch completion, serialized by mu.
type View struct {
	id       string
	source   dom.Source
	pageSize int
	logger   logging.Logger

	mountOnce sync.Once
	done      chan struct{}

	mu      sync.Mutex
	cancel  context.CancelFunc
	closed  bool
	loading bool
	users   []dom.User
	rev     uint64
	search  string
	sort    SortConfig
	page    int

	filtered filterMemo
	sorted   sortMemo
}

type filterMemo struct {
	valid bool
	rev   uint64
	term  string
	gen   uint64
	runs  int
	out   []dom.User
}

type sortMemo struct {
	valid     bool
	filterGen uint64
	cfg       SortConfig
	runs      int
	out       []dom.User
}

func NewView(id string, source dom.Source, pageSize int, logger logging.Logger) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View{
		id:       id,
		source:   source,
		pageSize: pageSize,
		logger:   logger.With("component", "directory_view", "view_id", id),
		done:     make(chan struct{}),
		loading:  true,
		users:    []dom.User{},
		sort:     DefaultSort,
		page:     1,
	}
}

// DefaultPageSize is the number of users per page.
const DefaultPageSize = 2

func (v *View) ID() string {
	return v.id
}

// Mount starts the one fetch of this view's lifetime. Later calls, and
// calls after Close, do nothing.
func (v *View) Mount(ctx context.Context) {
	v.mountOnce.Do(func() {
		ctx, cancel := context.WithCancel(ctx)

		v.mu.Lock()
		v.cancel = cancel
		v.loading = true
		v.mu.Unlock()

		go v.fetch(ctx)
	})
}

func (v *View) fetch(ctx context.Context) {
	defer close(v.done)

	users := load(ctx, v.source, v.logger)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		v.logger.Debug("discarding fetch result for closed view", "count", len(users))
		return
	}
	v.users = users
	v.rev++
	v.loading = false
	v.logger.Info("users loaded", "count", len(users))
}

// Done is closed once the fetch has concluded, or when the view is closed
// before it was mounted.
func (v *View) Done() <-chan struct{} {
	return v.done
}

// Close tears the view down. An in-flight fetch is cancelled and its
// result dropped.
func (v *View) Close() {
	v.mountOnce.Do(func() { close(v.done) })

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	if v.cancel != nil {
		v.cancel()
	}
}

func (v *View) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

// SetSearch replaces the search term. The current page is kept.
func (v *View) SetSearch(term string) Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = term
	return v.snapshotLocked()
}

// RequestSort applies the header click rule for key.
func (v *View) RequestSort(key SortKey) Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sort = v.sort.Next(key)
	return v.snapshotLocked()
}

// NextPage advances one page unless the view is on the last page.
func (v *View) NextPage() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.hasNextLocked() {
		v.page++
	}
	return v.snapshotLocked()
}

// PrevPage goes back one page unless the view is on the first page.
func (v *View) PrevPage() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.page > 1 {
		v.page--
	}
	return v.snapshotLocked()
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *View) hasNextLocked() bool {
	return v.page < TotalPages(len(v.derivedLocked()), v.pageSize)
}

// derivedLocked returns the filtered and sorted sequence, recomputing a
// stage only when its inputs changed.
func (v *View) derivedLocked() []dom.User {
	f := &v.filtered
	if !f.valid || f.rev != v.rev || f.term != v.search {
		f.out = Filter(v.users, v.search)
		f.valid, f.rev, f.term = true, v.rev, v.search
		f.gen++
		f.runs++
	}

	s := &v.sorted
	if !s.valid || s.filterGen != f.gen || s.cfg != v.sort {
		s.out = Sort(f.out, v.sort)
		s.valid, s.filterGen, s.cfg = true, f.gen, v.sort
		s.runs++
	}
	return s.out
}

func (v *View) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:       v.id,
		Loading:  v.loading,
		Search:   v.search,
		Sort:     SortDto{Key: v.sort.Key, Direction: v.sort.Direction},
		Page:     v.page,
		PageSize: v.pageSize,
		Columns:  columnsFor(v.sort),
		Users:    []UserDto{},
	}
	if v.loading {
		return snap
	}

	sorted := v.derivedLocked()
	snap.TotalUsers = len(sorted)
	snap.TotalPages = TotalPages(len(sorted), v.pageSize)
	snap.HasPrev = v.page > 1
	snap.HasNext = v.page < snap.TotalPages
	snap.Users = toDTOs(Paginate(sorted, v.page, v.pageSize))
	return snap
}
