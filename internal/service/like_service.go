package service

import (
	"context"

	"ripple/internal/repository"
)

// LikeService implements toggle-style like edges for posts and comments.
// Target existence is validated by the calling service; the engine
// assumes a valid target id and keeps its contract narrow.
type LikeService struct {
	likeRepo repository.LikeRepository
}

// NewLikeService returns a new LikeService.
func NewLikeService(likeRepo repository.LikeRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo}
}

// LikeStatus is the like state of a target from one user's perspective.
type LikeStatus struct {
	LikeCount   int64 `json:"like_count"`
	IsUserLiked bool  `json:"isUserLiked"`
}

// TogglePostLike creates the like edge if absent, removes it if present.
// The returned count reflects the post-toggle state: the delete/insert is
// a single conditional store operation, and the count is re-read after it.
func (s *LikeService) TogglePostLike(ctx context.Context, userID, postID uint) (*LikeStatus, error) {
	deleted, err := s.likeRepo.TryDeletePostLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	liked := false
	if !deleted {
		if _, err := s.likeRepo.TryInsertPostLike(ctx, userID, postID); err != nil {
			return nil, err
		}
		liked = true
	}

	count, err := s.likeRepo.CountPostLikes(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{LikeCount: count, IsUserLiked: liked}, nil
}

// PostLikeStatus returns the current count and whether the user is among
// the likers, without mutating anything.
func (s *LikeService) PostLikeStatus(ctx context.Context, userID, postID uint) (*LikeStatus, error) {
	count, err := s.likeRepo.CountPostLikes(ctx, postID)
	if err != nil {
		return nil, err
	}
	liked, err := s.likeRepo.HasPostLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{LikeCount: count, IsUserLiked: liked}, nil
}

// ToggleCommentLike mirrors TogglePostLike for comment targets. The
// comment's post id is recorded on the edge for cascade bookkeeping.
func (s *LikeService) ToggleCommentLike(ctx context.Context, userID, postID, commentID uint) (*LikeStatus, error) {
	deleted, err := s.likeRepo.TryDeleteCommentLike(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}
	liked := false
	if !deleted {
		if _, err := s.likeRepo.TryInsertCommentLike(ctx, userID, postID, commentID); err != nil {
			return nil, err
		}
		liked = true
	}

	count, err := s.likeRepo.CountCommentLikes(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{LikeCount: count, IsUserLiked: liked}, nil
}

// CommentLikeStatus returns the comment's like state without mutation.
func (s *LikeService) CommentLikeStatus(ctx context.Context, userID, commentID uint) (*LikeStatus, error) {
	count, err := s.likeRepo.CountCommentLikes(ctx, commentID)
	if err != nil {
		return nil, err
	}
	liked, err := s.likeRepo.HasCommentLike(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{LikeCount: count, IsUserLiked: liked}, nil
}
