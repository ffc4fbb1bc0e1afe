package repository

import (
	"context"
	"time"

	"ripple/internal/cache"
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/observability"

	"gorm.io/gorm"
)

// CascadeRepository deletes a principal entity together with everything
// that references it, as one unit of work. Each cascade runs inside a
// single transaction: either the principal and all its dependents go, or
// nothing does, so no client ever observes a dangling dependent.
type CascadeRepository interface {
	DeleteUserCascade(ctx context.Context, userID uint) error
	DeletePostCascade(ctx context.Context, postID uint) error
	DeleteCommentCascade(ctx context.Context, commentID uint) error
}

type cascadeRepository struct {
	db *gorm.DB
}

// NewCascadeRepository returns a new CascadeRepository implementation.
func NewCascadeRepository(db *gorm.DB) CascadeRepository {
	return &cascadeRepository{db: db}
}

// run executes fn transactionally and records the outcome. Failures roll
// back and are logged for reconciliation before being returned.
func (r *cascadeRepository) run(ctx context.Context, entity string, principalID uint, fn func(tx *gorm.DB) error) error {
	defer observability.ObserveQuery("cascade_delete", entity, time.Now())

	err := r.db.WithContext(ctx).Transaction(fn)
	if err != nil {
		observability.CascadeDeletes.WithLabelValues(entity, "failure").Inc()
		middleware.Logger.ErrorContext(ctx, "cascade delete rolled back",
			"entity", entity,
			"principal_id", principalID,
			"error", err.Error(),
		)
		return models.NewInternalError(err)
	}
	observability.CascadeDeletes.WithLabelValues(entity, "success").Inc()
	return nil
}

func (r *cascadeRepository) DeleteUserCascade(ctx context.Context, userID uint) error {
	err := r.run(ctx, "user", userID, func(tx *gorm.DB) error {
		authoredPosts := tx.Model(&models.Post{}).Select("id").Where("user_id = ?", userID)
		authoredComments := tx.Model(&models.Comment{}).Select("id").Where("user_id = ?", userID)

		// Edges first, while the subqueries still see the soft-deletable rows.
		if err := tx.Where(
			"user_id = ? OR post_id IN (?) OR comment_id IN (?)",
			userID, authoredPosts, authoredComments,
		).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where(
			"user_id = ? OR post_id IN (?)", userID, authoredPosts,
		).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where(
			"user_id_first = ? OR user_id_second = ?", userID, userID,
		).Delete(&models.UserRelationship{}).Error; err != nil {
			return err
		}
		// Comments authored by the user anywhere, and comments under the
		// user's posts by anyone.
		if err := tx.Where(
			"user_id = ? OR post_id IN (?)", userID, authoredPosts,
		).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

func (r *cascadeRepository) DeletePostCascade(ctx context.Context, postID uint) error {
	return r.run(ctx, "post", postID, func(tx *gorm.DB) error {
		// CommentLike carries post_id, so edges on this post's comments go
		// in one pass without joining through comments.
		if err := tx.Where("post_id = ?", postID).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
}

func (r *cascadeRepository) DeleteCommentCascade(ctx context.Context, commentID uint) error {
	return r.run(ctx, "comment", commentID, func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, commentID).Error
	})
}
