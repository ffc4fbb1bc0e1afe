package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// createRelationship is the shared body of the follow-user and block-user
// handlers. Re-creating an existing edge returns the same edge with 200;
// a fresh edge answers 201.
func (s *Server) createRelationship(c *fiber.Ctx, relationType models.RelationType) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	targetID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	edge, created, err := s.relationshipService.Create(c.UserContext(), userID, targetID, relationType)
	if err != nil {
		return s.respondError(c, err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"relationship": edge})
}

func (s *Server) removeRelationship(c *fiber.Ctx, relationType models.RelationType) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	targetID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	edge, err := s.relationshipService.Remove(c.UserContext(), userID, targetID, relationType)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"relationship": edge})
}

// relationshipStatus answers the current edge, or null when none exists.
func (s *Server) relationshipStatus(c *fiber.Ctx, relationType models.RelationType) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	targetID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	edge, err := s.relationshipService.Status(c.UserContext(), userID, targetID, relationType)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"relationship": edge})
}

// FollowUser creates the caller's Follow edge to :id. Idempotent.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	return s.createRelationship(c, models.RelationFollow)
}

// UnfollowUser removes the caller's Follow edge to :id.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	return s.removeRelationship(c, models.RelationFollow)
}

// GetMyFollowStatus reports whether the caller follows :id.
func (s *Server) GetMyFollowStatus(c *fiber.Ctx) error {
	return s.relationshipStatus(c, models.RelationFollow)
}

// BlockUser creates the caller's Block edge to :id. Idempotent.
func (s *Server) BlockUser(c *fiber.Ctx) error {
	return s.createRelationship(c, models.RelationBlock)
}

// UnblockUser removes the caller's Block edge to :id.
func (s *Server) UnblockUser(c *fiber.Ctx) error {
	return s.removeRelationship(c, models.RelationBlock)
}

// GetMyBlockStatus reports whether the caller blocks :id.
func (s *Server) GetMyBlockStatus(c *fiber.Ctx) error {
	return s.relationshipStatus(c, models.RelationBlock)
}

// GetMyFollowers pages over the caller's followers.
func (s *Server) GetMyFollowers(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	return s.listFollowers(c, userID)
}

// GetMyFollowings pages over the users the caller follows.
func (s *Server) GetMyFollowings(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	return s.listFollowings(c, userID)
}

// GetUserFollowers pages over :id's followers.
func (s *Server) GetUserFollowers(c *fiber.Ctx) error {
	targetID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}
	return s.listFollowers(c, targetID)
}

// GetUserFollowings pages over the users :id follows.
func (s *Server) GetUserFollowings(c *fiber.Ctx) error {
	targetID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}
	return s.listFollowings(c, targetID)
}

func (s *Server) listFollowers(c *fiber.Ctx, userID uint) error {
	page, pageSize := parsePagination(c)
	result, err := s.relationshipService.ListIncoming(c.UserContext(), userID, models.RelationFollow, page, pageSize)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(userPageResponse{Users: result.Users, Page: result.Page})
}

func (s *Server) listFollowings(c *fiber.Ctx, userID uint) error {
	page, pageSize := parsePagination(c)
	result, err := s.relationshipService.ListOutgoing(c.UserContext(), userID, models.RelationFollow, page, pageSize)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(userPageResponse{Users: result.Users, Page: result.Page})
}
