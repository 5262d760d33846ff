package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/nasermirzaei89/postfeed/discuss"
)

// ViewRepository keeps mounted views in memory. Views that are neither read
// nor updated for ttl, or that fall out of a full cache, are evicted and so
// unmounted.
type ViewRepository struct {
	mu    sync.Mutex
	views *expirable.LRU[discuss.ViewKey, discuss.View]
}

var _ discuss.ViewRepository = (*ViewRepository)(nil)

func NewViewRepository(capacity int, ttl time.Duration) *ViewRepository {
	repo := &ViewRepository{}
	repo.views = expirable.NewLRU[discuss.ViewKey, discuss.View](capacity, onEvict, ttl)

	return repo
}

func onEvict(_ discuss.ViewKey, view discuss.View) {
	slog.Debug("view evicted", "viewId", view.ID, "postId", view.PostID)
}

func (repo *ViewRepository) InsertIfAbsent(_ context.Context, view *discuss.View) (*discuss.View, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := view.Key()

	stored, ok := repo.views.Get(key)
	if !ok {
		stored = *view
	}

	// Add renews the expiry of an alive view.
	repo.views.Add(key, stored)

	return &stored, nil
}

func (repo *ViewRepository) Find(_ context.Context, key discuss.ViewKey) (*discuss.View, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	view, ok := repo.views.Get(key)
	if !ok {
		return nil, &discuss.ViewNotFoundError{Key: key}
	}

	repo.views.Add(key, view)

	return &view, nil
}

func (repo *ViewRepository) Update(
	_ context.Context,
	key discuss.ViewKey,
	fn func(discuss.Thread) discuss.Thread,
) (*discuss.View, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	view, ok := repo.views.Get(key)
	if !ok {
		return nil, &discuss.ViewNotFoundError{Key: key}
	}

	view.Thread = fn(view.Thread)

	repo.views.Add(key, view)

	return &view, nil
}

func (repo *ViewRepository) Delete(_ context.Context, key discuss.ViewKey) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if !repo.views.Remove(key) {
		return &discuss.ViewNotFoundError{Key: key}
	}

	return nil
}

// Len returns the number of mounted views.
func (repo *ViewRepository) Len() int {
	return repo.views.Len()
}

// Purge unmounts every view.
func (repo *ViewRepository) Purge() {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.views.Purge()
}
