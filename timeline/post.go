package timeline

import (
	"context"
	"fmt"
	"time"
)

type Author struct {
	Name      string
	Role      string
	AvatarURL string
}

// Kind tells how a content block is rendered.
type Kind string

const (
	KindParagraph Kind = "paragraph"
	KindLink      Kind = "link"
)

func (kind Kind) IsValid() bool {
	switch kind {
	case KindParagraph, KindLink:
		return true
	default:
		return false
	}
}

type ContentBlock struct {
	Kind Kind
	Text string
}

type Post struct {
	ID          string
	Author      Author
	PublishedAt time.Time
	Content     []ContentBlock
}

type PostRepository interface {
	Find(ctx context.Context, id string) (post *Post, err error)
	List(ctx context.Context) (posts []*Post, err error)
}

type PostNotFoundError struct {
	ID string
}

func (err PostNotFoundError) Error() string {
	return fmt.Sprintf("post %q not found", err.ID)
}

type InvalidContentKindError struct {
	PostID string
	Kind   Kind
}

func (err InvalidContentKindError) Error() string {
	return fmt.Sprintf("invalid content kind %q in post %q", err.Kind, err.PostID)
}
