package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/repositories"
)

// Compile-time check to ensure PostServiceImpl implements PostService.
var _ PostService = (*PostServiceImpl)(nil)

// PostServiceImpl handles blog post business logic.
type PostServiceImpl struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostServiceImpl.
func NewPostService(postRepo repositories.PostRepository) *PostServiceImpl {
	return &PostServiceImpl{postRepo: postRepo}
}

// ListPosts fetches all posts and applies category filter, title
// search, and paging in memory. It returns the page plus the total
// count after filtering.
func (s *PostServiceImpl) ListPosts(ctx context.Context, opts PostListOptions) ([]*models.Post, int, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		slog.Error("Failed to fetch posts", "error", err)
		return nil, 0, fmt.Errorf("failed to fetch posts: %w", err)
	}

	filtered := make([]*models.Post, 0, len(posts))
	search := strings.ToLower(strings.TrimSpace(opts.Search))
	for _, p := range posts {
		if opts.PublishedOnly && !p.Published {
			continue
		}
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		filtered = append(filtered, p)
	}
	total := len(filtered)

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= total {
		return []*models.Post{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return filtered[start:end], total, nil
}

func (s *PostServiceImpl) GetPost(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	return s.postRepo.FindByID(ctx, id)
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, post *models.Post) error {
	if err := s.postRepo.Create(ctx, post); err != nil {
		slog.Error("Failed to create post", "error", err)
		return fmt.Errorf("failed to create post: %w", err)
	}
	slog.Info("Post created", "postId", post.ID, "title", post.Title)
	return nil
}

// UpdatePost replaces the stored post. CreatedAt is carried over from
// the stored record so clients do not have to echo it back.
func (s *PostServiceImpl) UpdatePost(ctx context.Context, post *models.Post) error {
	existing, err := s.postRepo.FindByID(ctx, post.ID)
	if err != nil {
		return fmt.Errorf("post not found: %w", err)
	}
	post.CreatedAt = existing.CreatedAt
	return s.postRepo.Update(ctx, post)
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	return s.postRepo.Delete(ctx, id)
}
