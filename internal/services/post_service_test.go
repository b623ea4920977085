package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsu-dev/brandsite-backend/internal/models"
)

func seedPosts() *fakePostRepo {
	return &fakePostRepo{posts: []*models.Post{
		{ID: primitive.NewObjectID(), Title: "Autumn Lookbook", Category: "style", Published: true},
		{ID: primitive.NewObjectID(), Title: "Care Guide", Category: "guide", Published: true},
		{ID: primitive.NewObjectID(), Title: "Holiday Lookbook Draft", Category: "style", Published: false},
		{ID: primitive.NewObjectID(), Title: "Store Opening", Category: "news", Published: true},
	}}
}

func TestPostServiceListPosts(t *testing.T) {
	svc := NewPostService(seedPosts())

	t.Run("published-only hides drafts", func(t *testing.T) {
		posts, total, err := svc.ListPosts(context.Background(), PostListOptions{PublishedOnly: true})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		for _, p := range posts {
			assert.True(t, p.Published)
		}
	})

	t.Run("category filter narrows the listing", func(t *testing.T) {
		posts, total, err := svc.ListPosts(context.Background(), PostListOptions{Category: "style"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, p := range posts {
			assert.Equal(t, "style", p.Category)
		}
	})

	t.Run("title search is case insensitive", func(t *testing.T) {
		posts, total, err := svc.ListPosts(context.Background(), PostListOptions{Search: "lookbook"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, posts, 2)
	})

	t.Run("paging slices after filtering", func(t *testing.T) {
		page1, total, err := svc.ListPosts(context.Background(), PostListOptions{PublishedOnly: true, Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, page1, 2)

		page2, total, err := svc.ListPosts(context.Background(), PostListOptions{PublishedOnly: true, Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, page2, 1)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		posts, total, err := svc.ListPosts(context.Background(), PostListOptions{Page: 9, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Empty(t, posts)
	})
}

func TestPostServiceUpdatePost(t *testing.T) {
	t.Run("fails on an unknown post", func(t *testing.T) {
		svc := NewPostService(&fakePostRepo{})

		err := svc.UpdatePost(context.Background(), &models.Post{ID: primitive.NewObjectID(), Title: "Ghost"})
		assert.Error(t, err)
	})

	t.Run("keeps createdAt when the client omits it", func(t *testing.T) {
		created := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
		existing := &models.Post{ID: primitive.NewObjectID(), Title: "Care Guide", CreatedAt: created}
		repo := &fakePostRepo{posts: []*models.Post{existing}}
		svc := NewPostService(repo)

		update := &models.Post{ID: existing.ID, Title: "Care Guide v2"}
		require.NoError(t, svc.UpdatePost(context.Background(), update))
		assert.Equal(t, created, repo.posts[0].CreatedAt)
	})
}
