package discuss

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	viewRepo ViewRepository
}

func NewService(viewRepo ViewRepository) *Service {
	return &Service{
		viewRepo: viewRepo,
	}
}

// Mount returns the view of the post mounted for the owner, mounting one with
// a freshly seeded thread when none is alive.
func (svc *Service) Mount(ctx context.Context, ownerID, postID string) (*View, error) {
	view := &View{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		PostID:    postID,
		Thread:    NewThread(),
		MountedAt: time.Now(),
	}

	stored, err := svc.viewRepo.InsertIfAbsent(ctx, view)
	if err != nil {
		return nil, fmt.Errorf("failed to insert view: %w", err)
	}

	if stored.ID == view.ID {
		slog.DebugContext(ctx, "view mounted", "viewId", view.ID, "postId", postID)
	}

	return stored, nil
}

func (svc *Service) GetView(ctx context.Context, key ViewKey) (*View, error) {
	view, err := svc.viewRepo.Find(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to find view: %w", err)
	}

	return view, nil
}

// Dispatch applies msgs in order to the thread of the view.
func (svc *Service) Dispatch(ctx context.Context, key ViewKey, msgs ...Message) (*View, error) {
	view, err := svc.viewRepo.Update(ctx, key, func(thread Thread) Thread {
		for _, msg := range msgs {
			thread = Update(thread, msg)
		}

		return thread
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update view: %w", err)
	}

	return view, nil
}

// Unmount discards the view and its thread.
func (svc *Service) Unmount(ctx context.Context, key ViewKey) error {
	err := svc.viewRepo.Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to delete view: %w", err)
	}

	slog.DebugContext(ctx, "view unmounted", "postId", key.PostID)

	return nil
}
