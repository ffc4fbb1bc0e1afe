package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for like edges on posts
// and comments. Both edge kinds share the same conditional-write contract:
// TryInsert and TryDelete are single atomic store operations whose boolean
// result reports whether the edge actually changed, so a toggle never
// depends on a separate existence check.
type LikeRepository interface {
	TryInsertPostLike(ctx context.Context, userID, postID uint) (bool, error)
	TryDeletePostLike(ctx context.Context, userID, postID uint) (bool, error)
	CountPostLikes(ctx context.Context, postID uint) (int64, error)
	HasPostLike(ctx context.Context, userID, postID uint) (bool, error)

	TryInsertCommentLike(ctx context.Context, userID, postID, commentID uint) (bool, error)
	TryDeleteCommentLike(ctx context.Context, userID, commentID uint) (bool, error)
	CountCommentLikes(ctx context.Context, commentID uint) (int64, error)
	HasCommentLike(ctx context.Context, userID, commentID uint) (bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) TryInsertPostLike(ctx context.Context, userID, postID uint) (bool, error) {
	// ON CONFLICT DO NOTHING resolves races on the (user_id, post_id)
	// unique index without a duplicate-key error.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO post_likes (user_id, post_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID,
	)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *likeRepository) TryDeletePostLike(ctx context.Context, userID, postID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.PostLike{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *likeRepository) CountPostLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *likeRepository) HasPostLike(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) TryInsertCommentLike(ctx context.Context, userID, postID, commentID uint) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO comment_likes (user_id, post_id, comment_id, created_at)
		 VALUES (?, ?, ?, NOW())
		 ON CONFLICT (user_id, comment_id) DO NOTHING`,
		userID, postID, commentID,
	)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *likeRepository) TryDeleteCommentLike(ctx context.Context, userID, commentID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&models.CommentLike{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *likeRepository) CountCommentLikes(ctx context.Context, commentID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *likeRepository) HasCommentLike(ctx context.Context, userID, commentID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
