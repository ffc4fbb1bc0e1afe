package service

import (
	"context"
	"strings"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint, uint) (*models.Post, error)
	listFn           func(context.Context, int, int, uint) ([]*models.Post, error)
	listByAuthorsFn  func(context.Context, []uint, int, int, uint) ([]*models.Post, error)
	countByAuthorsFn func(context.Context, []uint) (int64, error)
	updateFn         func(context.Context, *models.Post) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listByAuthorsFn(ctx, authorIDs, limit, offset, currentUserID)
}
func (s *postRepoStub) CountByAuthors(ctx context.Context, authorIDs []uint) (int64, error) {
	return s.countByAuthorsFn(ctx, authorIDs)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:         func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:        func(_ context.Context, id, _ uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listFn:           func(_ context.Context, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		listByAuthorsFn:  func(_ context.Context, _ []uint, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		countByAuthorsFn: func(_ context.Context, _ []uint) (int64, error) { return 0, nil },
		updateFn:         func(_ context.Context, _ *models.Post) error { return nil },
	}
}

// cascadeRepoStub is a stub for repository.CascadeRepository.
type cascadeRepoStub struct {
	deleteUserCascadeFn    func(context.Context, uint) error
	deletePostCascadeFn    func(context.Context, uint) error
	deleteCommentCascadeFn func(context.Context, uint) error
}

func (s *cascadeRepoStub) DeleteUserCascade(ctx context.Context, userID uint) error {
	return s.deleteUserCascadeFn(ctx, userID)
}
func (s *cascadeRepoStub) DeletePostCascade(ctx context.Context, postID uint) error {
	return s.deletePostCascadeFn(ctx, postID)
}
func (s *cascadeRepoStub) DeleteCommentCascade(ctx context.Context, commentID uint) error {
	return s.deleteCommentCascadeFn(ctx, commentID)
}

func noopCascadeRepo() *cascadeRepoStub {
	return &cascadeRepoStub{
		deleteUserCascadeFn:    func(_ context.Context, _ uint) error { return nil },
		deletePostCascadeFn:    func(_ context.Context, _ uint) error { return nil },
		deleteCommentCascadeFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo(), noopCascadeRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreatePostInput
	}{
		{
			name:  "empty title",
			input: CreatePostInput{UserID: 1, Content: "some content"},
		},
		{
			name:  "empty content",
			input: CreatePostInput{UserID: 1, Title: "a title"},
		},
		{
			name:  "title too long",
			input: CreatePostInput{UserID: 1, Title: strings.Repeat("x", 301), Content: "ok"},
		},
		{
			name:  "content too long",
			input: CreatePostInput{UserID: 1, Title: "ok", Content: strings.Repeat("x", 40001)},
		},
		{
			name: "too many images",
			input: CreatePostInput{
				UserID: 1, Title: "ok", Content: "ok",
				Images: []string{"a", "b", "c", "d", "e", "f"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreatePost(ctx, tt.input)
			assertValidationError(t, err)
		})
	}
}

func TestPostService_CreatePost_Success(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 42
		return nil
	}
	postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, Title: "hello", Content: "world", UserID: 1}, nil
	}

	svc := NewPostService(postRepo, noopCascadeRepo())
	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:  1,
		Title:   "hello",
		Content: "world",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), post.ID)
	assert.Equal(t, "hello", post.Title)
}

func TestPostService_UpdatePost_Ownership(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 10}, nil
	}

	svc := NewPostService(postRepo, noopCascadeRepo())
	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{UserID: 1, PostID: 5, Title: "new"})
	assertUnauthorizedError(t, err)
}

func TestPostService_DeletePost(t *testing.T) {
	t.Parallel()

	t.Run("non-owner cannot delete", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 10}, nil
		}
		cascade := noopCascadeRepo()
		called := false
		cascade.deletePostCascadeFn = func(_ context.Context, _ uint) error {
			called = true
			return nil
		}
		svc := NewPostService(postRepo, cascade)
		_, err := svc.DeletePost(context.Background(), 1, 5)
		assertUnauthorizedError(t, err)
		assert.False(t, called)
	})

	t.Run("owner delete runs the cascade and returns the post", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1, Title: "bye"}, nil
		}
		cascade := noopCascadeRepo()
		var cascaded uint
		cascade.deletePostCascadeFn = func(_ context.Context, postID uint) error {
			cascaded = postID
			return nil
		}
		svc := NewPostService(postRepo, cascade)
		post, err := svc.DeletePost(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.Equal(t, uint(5), cascaded)
		assert.Equal(t, "bye", post.Title)
	})
}

func TestPostService_ListPosts_Defaults(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.listFn = func(_ context.Context, limit, offset int, _ uint) ([]*models.Post, error) {
		assert.Equal(t, 20, limit)
		assert.Equal(t, 0, offset)
		return nil, nil
	}

	svc := NewPostService(postRepo, noopCascadeRepo())
	_, err := svc.ListPosts(context.Background(), 1, 0, -5)
	require.NoError(t, err)
}
