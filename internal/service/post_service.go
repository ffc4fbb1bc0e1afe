package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// PostService provides post CRUD business logic.
type PostService struct {
	postRepo    repository.PostRepository
	cascadeRepo repository.CascadeRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, cascadeRepo repository.CascadeRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		cascadeRepo: cascadeRepo,
	}
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
	Images  []string
}

// UpdatePostInput carries the mutable fields of a post. Empty strings
// leave the current value in place.
type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   string
	Content string
	Images  []string
}

const (
	maxPostTitleLen   = 300
	maxPostContentLen = 40000
	maxPostImages     = 5
)

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("post title must not be empty")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("post content must not be empty")
	}
	if len(in.Title) > maxPostTitleLen {
		return nil, models.NewValidationError("post title too long")
	}
	if len(in.Content) > maxPostContentLen {
		return nil, models.NewValidationError("post content too long")
	}
	if len(in.Images) > maxPostImages {
		return nil, models.NewValidationError("a post can carry at most 5 images")
	}

	post := &models.Post{
		UserID:  in.UserID,
		Title:   in.Title,
		Content: in.Content,
		Images:  in.Images,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, postID, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID, currentUserID)
}

func (s *PostService) ListPosts(ctx context.Context, currentUserID uint, limit, offset int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.postRepo.List(ctx, limit, offset, currentUserID)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}

	if in.Title != "" {
		if len(in.Title) > maxPostTitleLen {
			return nil, models.NewValidationError("post title too long")
		}
		post.Title = in.Title
	}
	if in.Content != "" {
		if len(in.Content) > maxPostContentLen {
			return nil, models.NewValidationError("post content too long")
		}
		post.Content = in.Content
	}
	if in.Images != nil {
		if len(in.Images) > maxPostImages {
			return nil, models.NewValidationError("a post can carry at most 5 images")
		}
		post.Images = in.Images
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// DeletePost removes the post with its comments and like edges as one
// cascade, and returns the deleted post.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only delete your own posts")
	}

	if err := s.cascadeRepo.DeletePostCascade(ctx, postID); err != nil {
		return nil, err
	}
	return post, nil
}
