package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_MyFeed_IncludesSelf(t *testing.T) {
	t.Parallel()

	relRepo := noopRelationshipRepo()
	relRepo.outgoingIDsFn = func(_ context.Context, _ uint, rt models.RelationType) ([]uint, error) {
		assert.Equal(t, models.RelationFollow, rt)
		return []uint{2, 3}, nil
	}

	postRepo := noopPostRepo()
	var countAuthors, listAuthors []uint
	postRepo.countByAuthorsFn = func(_ context.Context, authorIDs []uint) (int64, error) {
		countAuthors = authorIDs
		return 2, nil
	}
	postRepo.listByAuthorsFn = func(_ context.Context, authorIDs []uint, _, _ int, _ uint) ([]*models.Post, error) {
		listAuthors = authorIDs
		return []*models.Post{{ID: 1}, {ID: 2}}, nil
	}

	svc := NewFeedService(relRepo, postRepo)
	feed, err := svc.MyFeed(context.Background(), 1, 0, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 2, 3}, countAuthors)
	assert.ElementsMatch(t, []uint{1, 2, 3}, listAuthors)
	assert.Len(t, feed.Posts, 2)
	assert.Equal(t, 1, feed.TotalPages)
}

func TestFeedService_MyFeed_EmptyFollowSet(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.listByAuthorsFn = func(_ context.Context, authorIDs []uint, _, _ int, _ uint) ([]*models.Post, error) {
		// Only the caller's own posts remain
		assert.Equal(t, []uint{7}, authorIDs)
		return nil, nil
	}

	svc := NewFeedService(noopRelationshipRepo(), postRepo)
	feed, err := svc.MyFeed(context.Background(), 7, 0, 10)
	require.NoError(t, err)
	assert.NotNil(t, feed.Posts)
	assert.Empty(t, feed.Posts)
	assert.Equal(t, 0, feed.TotalPages)
	assert.Equal(t, 0, feed.CurrentPage)
}

func TestFeedService_MyFeed_Paging(t *testing.T) {
	t.Parallel()

	relRepo := noopRelationshipRepo()
	postRepo := noopPostRepo()
	postRepo.countByAuthorsFn = func(_ context.Context, _ []uint) (int64, error) { return 25, nil }
	postRepo.listByAuthorsFn = func(_ context.Context, _ []uint, limit, offset int, _ uint) ([]*models.Post, error) {
		assert.Equal(t, 10, limit)
		assert.Equal(t, 10, offset)
		return []*models.Post{{ID: 11}}, nil
	}

	svc := NewFeedService(relRepo, postRepo)
	feed, err := svc.MyFeed(context.Background(), 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, feed.TotalPages)
	assert.Equal(t, 1, feed.CurrentPage)
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 100, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, totalPages(tt.total, tt.pageSize), "total=%d pageSize=%d", tt.total, tt.pageSize)
	}
}

func TestNormalizePaging(t *testing.T) {
	t.Parallel()

	page, size := normalizePaging(-3, 0)
	assert.Equal(t, 0, page)
	assert.Equal(t, DefaultPageSize, size)

	page, size = normalizePaging(2, 5000)
	assert.Equal(t, 2, page)
	assert.Equal(t, MaxPageSize, size)
}
