package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UpdateUserRequest carries the mutable profile fields.
type UpdateUserRequest struct {
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

// GetUsers lists users as public profiles.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	users, err := s.userService.ListUsers(c.UserContext(), limit, offset)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": models.PublicProfiles(users)})
}

// GetMyProfile returns the caller's own account, including email.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}

	user, err := s.userService.GetUser(c.UserContext(), userID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// GetUser returns a user. The caller sees their own full account; other
// users are reduced to the public projection.
func (s *Server) GetUser(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	targetID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	user, err := s.userService.GetUser(c.UserContext(), targetID)
	if err != nil {
		return s.respondError(c, err)
	}
	if targetID == userID {
		return c.JSON(fiber.Map{"user": user})
	}
	return c.JSON(fiber.Map{"user": user.Public()})
}

// UpdateUser updates the caller's own profile.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	targetID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:      userID,
		TargetID:    targetID,
		DisplayName: req.DisplayName,
		Avatar:      req.Avatar,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// DeleteUser removes the caller's account and everything that references
// it: posts, comments, like edges and relationships, in one cascade.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	targetID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	profile, err := s.userService.DeleteUser(c.UserContext(), userID, targetID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": profile})
}
