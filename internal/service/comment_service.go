package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"

	"golang.org/x/sync/errgroup"
)

// CommentService provides comment business logic, scoped to posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	cascadeRepo repository.CascadeRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	cascadeRepo repository.CascadeRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		cascadeRepo: cascadeRepo,
	}
}

// CreateCommentInput carries the fields for a new comment.
type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Message string
}

// UpdateCommentInput carries the mutable fields of a comment.
type UpdateCommentInput struct {
	UserID    uint
	PostID    uint
	CommentID uint
	Message   string
}

const maxCommentLen = 10000

// getPostAndComment loads both entities concurrently; the reads are
// independent and either missing entity short-circuits the request
// before any side effect.
func (s *CommentService) getPostAndComment(ctx context.Context, postID, commentID, currentUserID uint) (*models.Post, *models.Comment, error) {
	var (
		post    *models.Post
		comment *models.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		post, err = s.postRepo.GetByID(gctx, postID, currentUserID)
		return err
	})
	g.Go(func() error {
		var err error
		comment, err = s.commentRepo.GetByID(gctx, commentID, currentUserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if comment.PostID != postID {
		return nil, nil, models.NewMissingError("comment does not belong to this post")
	}
	return post, comment, nil
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Message == "" {
		return nil, models.NewValidationError("message must not be empty")
	}
	if len(in.Message) > maxCommentLen {
		return nil, models.NewValidationError("comment too long (max 10000 characters)")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID, 0); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:  in.UserID,
		PostID:  in.PostID,
		Message: in.Message,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID, in.UserID)
}

func (s *CommentService) GetComment(ctx context.Context, postID, commentID, currentUserID uint) (*models.Comment, error) {
	_, comment, err := s.getPostAndComment(ctx, postID, commentID, currentUserID)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID, currentUserID uint, limit, offset int) ([]*models.Comment, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID, limit, offset, currentUserID)
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if in.Message == "" {
		return nil, models.NewValidationError("message must not be empty")
	}
	if len(in.Message) > maxCommentLen {
		return nil, models.NewValidationError("comment too long (max 10000 characters)")
	}

	_, comment, err := s.getPostAndComment(ctx, in.PostID, in.CommentID, in.UserID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own comments")
	}

	comment.Message = in.Message
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID, in.UserID)
}

// DeleteComment removes the comment and its like edges as one cascade,
// and returns the deleted comment.
func (s *CommentService) DeleteComment(ctx context.Context, userID, postID, commentID uint) (*models.Comment, error) {
	_, comment, err := s.getPostAndComment(ctx, postID, commentID, userID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only delete your own comments")
	}

	if err := s.cascadeRepo.DeleteCommentCascade(ctx, commentID); err != nil {
		return nil, err
	}
	return comment, nil
}
