package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

// RelationshipService provides the follow/block graph business logic.
type RelationshipService struct {
	relRepo  repository.RelationshipRepository
	userRepo repository.UserRepository
}

// NewRelationshipService returns a new RelationshipService.
func NewRelationshipService(relRepo repository.RelationshipRepository, userRepo repository.UserRepository) *RelationshipService {
	return &RelationshipService{
		relRepo:  relRepo,
		userRepo: userRepo,
	}
}

// UserPage is a page of public profiles with the pagination envelope.
type UserPage struct {
	Users []models.PublicProfile
	Page
}

// Create establishes the (first → second, relationType) edge. Creating an
// edge that already exists returns the existing edge unchanged; the call
// never fails on duplicates. The boolean reports whether a new edge was
// written, so callers can distinguish a fresh edge from a repeat.
func (s *RelationshipService) Create(ctx context.Context, first, second uint, relationType models.RelationType) (*models.UserRelationship, bool, error) {
	if !relationType.Valid() {
		return nil, false, models.NewValidationError("Unknown relation type")
	}
	if first == second {
		return nil, false, models.NewValidationError("Cannot create a relationship with yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, second); err != nil {
		return nil, false, err
	}

	edge, created, err := s.relRepo.Ensure(ctx, first, second, relationType)
	if err != nil {
		return nil, false, err
	}
	if created {
		observability.RelationshipEdges.WithLabelValues(string(relationType), "create").Inc()
	}
	return edge, created, nil
}

// Remove deletes the edge and returns it; absent edges are a NotFound.
func (s *RelationshipService) Remove(ctx context.Context, first, second uint, relationType models.RelationType) (*models.UserRelationship, error) {
	if !relationType.Valid() {
		return nil, models.NewValidationError("Unknown relation type")
	}

	edge, err := s.relRepo.Delete(ctx, first, second, relationType)
	if err != nil {
		return nil, err
	}
	observability.RelationshipEdges.WithLabelValues(string(relationType), "remove").Inc()
	return edge, nil
}

// Status returns the edge between first and second, or nil when none
// exists. No relationship is a valid, common state, not an error.
func (s *RelationshipService) Status(ctx context.Context, first, second uint, relationType models.RelationType) (*models.UserRelationship, error) {
	if !relationType.Valid() {
		return nil, models.NewValidationError("Unknown relation type")
	}
	if _, err := s.userRepo.GetByID(ctx, second); err != nil {
		return nil, err
	}
	return s.relRepo.Get(ctx, first, second, relationType)
}

// ListIncoming pages over the users pointing an edge at target (for
// Follow edges: target's followers), as public profile projections.
func (s *RelationshipService) ListIncoming(ctx context.Context, target uint, relationType models.RelationType, page, pageSize int) (*UserPage, error) {
	page, pageSize = normalizePaging(page, pageSize)

	total, err := s.relRepo.CountIncoming(ctx, target, relationType)
	if err != nil {
		return nil, err
	}
	users, err := s.relRepo.ListIncoming(ctx, target, relationType, pageSize, page*pageSize)
	if err != nil {
		return nil, err
	}

	return &UserPage{
		Users: models.PublicProfiles(users),
		Page:  Page{TotalPages: totalPages(total, pageSize), CurrentPage: page},
	}, nil
}

// ListOutgoing pages over the users target points an edge at (for Follow
// edges: target's followings), as public profile projections.
func (s *RelationshipService) ListOutgoing(ctx context.Context, source uint, relationType models.RelationType, page, pageSize int) (*UserPage, error) {
	page, pageSize = normalizePaging(page, pageSize)

	total, err := s.relRepo.CountOutgoing(ctx, source, relationType)
	if err != nil {
		return nil, err
	}
	users, err := s.relRepo.ListOutgoing(ctx, source, relationType, pageSize, page*pageSize)
	if err != nil {
		return nil, err
	}

	return &UserPage{
		Users: models.PublicProfiles(users),
		Page:  Page{TotalPages: totalPages(total, pageSize), CurrentPage: page},
	}, nil
}
