package repository

import (
	"context"
	"errors"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// RelationshipRepository defines persistence operations for the directed
// user-to-user relationship graph.
type RelationshipRepository interface {
	// Ensure creates the (first, second, relationType) edge if absent and
	// returns the edge either way. The boolean reports whether a new edge
	// was created. Concurrent calls resolve through the composite unique
	// index instead of racing a read-then-write.
	Ensure(ctx context.Context, first, second uint, relationType models.RelationType) (*models.UserRelationship, bool, error)
	// Get returns the edge, or (nil, nil) when no edge exists.
	Get(ctx context.Context, first, second uint, relationType models.RelationType) (*models.UserRelationship, error)
	// Delete removes the edge and returns it; NotFound when absent.
	Delete(ctx context.Context, first, second uint, relationType models.RelationType) (*models.UserRelationship, error)
	// ListIncoming pages over users that have an edge pointing at target.
	ListIncoming(ctx context.Context, target uint, relationType models.RelationType, limit, offset int) ([]models.User, error)
	CountIncoming(ctx context.Context, target uint, relationType models.RelationType) (int64, error)
	// ListOutgoing pages over users that target points an edge at.
	ListOutgoing(ctx context.Context, source uint, relationType models.RelationType, limit, offset int) ([]models.User, error)
	CountOutgoing(ctx context.Context, source uint, relationType models.RelationType) (int64, error)
	// OutgoingIDs returns the ids of all users source has an edge to.
	OutgoingIDs(ctx context.Context, source uint, relationType models.RelationType) ([]uint, error)
}

type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository returns a new RelationshipRepository implementation.
func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

func (r *relationshipRepository) Ensure(ctx context.Context, first, second uint, relationType models.RelationType) (*models.UserRelationship, bool, error) {
	// INSERT ... ON CONFLICT DO NOTHING is atomic against the composite
	// unique index; a concurrent duplicate insert is a harmless no-op.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO user_relationships (user_id_first, user_id_second, relation_type, created_at)
		 VALUES (?, ?, ?, NOW())
		 ON CONFLICT (user_id_first, user_id_second, relation_type) DO NOTHING`,
		first, second, relationType,
	)
	if result.Error != nil {
		return nil, false, models.NewInternalError(result.Error)
	}

	edge, err := r.Get(ctx, first, second, relationType)
	if err != nil {
		return nil, false, err
	}
	if edge == nil {
		// The edge vanished between insert and read; only a concurrent
		// delete can cause this. Surface it as absent.
		return nil, false, models.NewMissingError("relationship not found")
	}
	return edge, result.RowsAffected > 0, nil
}

func (r *relationshipRepository) Get(ctx context.Context, first, second uint, relationType models.RelationType) (*models.UserRelationship, error) {
	var edge models.UserRelationship
	if err := r.db.WithContext(ctx).
		Where("user_id_first = ? AND user_id_second = ? AND relation_type = ?", first, second, relationType).
		First(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no relationship is a valid state
		}
		return nil, models.NewInternalError(err)
	}
	return &edge, nil
}

func (r *relationshipRepository) Delete(ctx context.Context, first, second uint, relationType models.RelationType) (*models.UserRelationship, error) {
	edge, err := r.Get(ctx, first, second, relationType)
	if err != nil {
		return nil, err
	}
	if edge == nil {
		return nil, models.NewMissingError("relationship not found")
	}
	if err := r.db.WithContext(ctx).Delete(&models.UserRelationship{}, edge.ID).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return edge, nil
}

// Listing order is insertion order (edge id), so pages stay stable as the
// graph grows at the tail.

func (r *relationshipRepository) ListIncoming(ctx context.Context, target uint, relationType models.RelationType, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN user_relationships ur ON users.id = ur.user_id_first").
		Where("ur.user_id_second = ? AND ur.relation_type = ?", target, relationType).
		Order("ur.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *relationshipRepository) CountIncoming(ctx context.Context, target uint, relationType models.RelationType) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserRelationship{}).
		Where("user_id_second = ? AND relation_type = ?", target, relationType).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *relationshipRepository) ListOutgoing(ctx context.Context, source uint, relationType models.RelationType, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN user_relationships ur ON users.id = ur.user_id_second").
		Where("ur.user_id_first = ? AND ur.relation_type = ?", source, relationType).
		Order("ur.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *relationshipRepository) CountOutgoing(ctx context.Context, source uint, relationType models.RelationType) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserRelationship{}).
		Where("user_id_first = ? AND relation_type = ?", source, relationType).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *relationshipRepository) OutgoingIDs(ctx context.Context, source uint, relationType models.RelationType) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.UserRelationship{}).
		Where("user_id_first = ? AND relation_type = ?", source, relationType).
		Pluck("user_id_second", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
