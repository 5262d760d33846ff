package discuss

import (
	"context"
	"fmt"
	"time"
)

// ViewKey identifies the view an owner has of a post. An owner sees at most
// one view per post.
type ViewKey struct {
	OwnerID string
	PostID  string
}

// View is one mounted post view and the thread it owns.
type View struct {
	ID        string
	OwnerID   string
	PostID    string
	Thread    Thread
	MountedAt time.Time
}

func (view View) Key() ViewKey {
	return ViewKey{OwnerID: view.OwnerID, PostID: view.PostID}
}

type ViewRepository interface {
	// InsertIfAbsent stores view unless a view with the same key is alive,
	// in which case the alive one is returned and view is dropped.
	InsertIfAbsent(ctx context.Context, view *View) (stored *View, err error)
	Find(ctx context.Context, key ViewKey) (view *View, err error)
	// Update applies fn to the thread of the view atomically with respect to
	// other calls for the same view.
	Update(ctx context.Context, key ViewKey, fn func(Thread) Thread) (view *View, err error)
	Delete(ctx context.Context, key ViewKey) (err error)
}

type ViewNotFoundError struct {
	Key ViewKey
}

func (err ViewNotFoundError) Error() string {
	return fmt.Sprintf("view of post %q for owner %q not found", err.Key.PostID, err.Key.OwnerID)
}
