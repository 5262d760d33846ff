package yamlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/nasermirzaei89/postfeed/timeline"
	"gopkg.in/yaml.v3"
)

// PostRepository serves a read-only feed parsed from a YAML document.
type PostRepository struct {
	posts []*timeline.Post
	byID  map[string]*timeline.Post
}

var _ timeline.PostRepository = (*PostRepository)(nil)

type document struct {
	Posts []postRecord `yaml:"posts"`
}

type postRecord struct {
	ID          string          `yaml:"id"`
	Author      authorRecord    `yaml:"author"`
	PublishedAt string          `yaml:"publishedAt"`
	Content     []contentRecord `yaml:"content"`
}

type authorRecord struct {
	Name      string `yaml:"name"`
	Role      string `yaml:"role"`
	AvatarURL string `yaml:"avatarUrl"`
}

type contentRecord struct {
	Type    string `yaml:"type"`
	Content string `yaml:"content"`
}

func NewPostRepository(content []byte) (*PostRepository, error) {
	var doc document

	err := yaml.Unmarshal(content, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal posts: %w", err)
	}

	repo := &PostRepository{
		posts: make([]*timeline.Post, 0, len(doc.Posts)),
		byID:  make(map[string]*timeline.Post, len(doc.Posts)),
	}

	for i, record := range doc.Posts {
		post, err := record.toPost()
		if err != nil {
			return nil, fmt.Errorf("invalid post at index %d: %w", i, err)
		}

		if _, exists := repo.byID[post.ID]; exists {
			return nil, fmt.Errorf("duplicate post id %q", post.ID)
		}

		repo.posts = append(repo.posts, post)
		repo.byID[post.ID] = post
	}

	return repo, nil
}

func (record postRecord) toPost() (*timeline.Post, error) {
	if record.ID == "" {
		return nil, fmt.Errorf("post id is required")
	}

	publishedAt, err := time.Parse(time.RFC3339, record.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse publishedAt of post %q: %w", record.ID, err)
	}

	content := make([]timeline.ContentBlock, 0, len(record.Content))

	for _, block := range record.Content {
		kind := timeline.Kind(block.Type)
		if !kind.IsValid() {
			return nil, &timeline.InvalidContentKindError{PostID: record.ID, Kind: kind}
		}

		content = append(content, timeline.ContentBlock{
			Kind: kind,
			Text: block.Content,
		})
	}

	return &timeline.Post{
		ID: record.ID,
		Author: timeline.Author{
			Name:      record.Author.Name,
			Role:      record.Author.Role,
			AvatarURL: record.Author.AvatarURL,
		},
		PublishedAt: publishedAt,
		Content:     content,
	}, nil
}

func (repo *PostRepository) Find(_ context.Context, id string) (*timeline.Post, error) {
	post, ok := repo.byID[id]
	if !ok {
		return nil, &timeline.PostNotFoundError{ID: id}
	}

	return post, nil
}

// List returns the posts in document order.
func (repo *PostRepository) List(_ context.Context) ([]*timeline.Post, error) {
	posts := make([]*timeline.Post, len(repo.posts))
	copy(posts, repo.posts)

	return posts, nil
}
