package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// FeedService composes the relationship graph with post queries to build
// the caller's feed.
type FeedService struct {
	relRepo  repository.RelationshipRepository
	postRepo repository.PostRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(relRepo repository.RelationshipRepository, postRepo repository.PostRepository) *FeedService {
	return &FeedService{
		relRepo:  relRepo,
		postRepo: postRepo,
	}
}

// PostPage is a page of posts with the pagination envelope.
type PostPage struct {
	Posts []*models.Post
	Page
}

// MyFeed pages over posts authored by the users the caller follows, plus
// the caller's own. An empty follow set degrades to just the caller's
// posts. Ordering is oldest update first.
func (s *FeedService) MyFeed(ctx context.Context, userID uint, page, pageSize int) (*PostPage, error) {
	page, pageSize = normalizePaging(page, pageSize)

	followingIDs, err := s.relRepo.OutgoingIDs(ctx, userID, models.RelationFollow)
	if err != nil {
		return nil, err
	}
	authorIDs := append(followingIDs, userID)

	total, err := s.postRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs, pageSize, page*pageSize, userID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return &PostPage{
		Posts: posts,
		Page:  Page{TotalPages: totalPages(total, pageSize), CurrentPage: page},
	}, nil
}
