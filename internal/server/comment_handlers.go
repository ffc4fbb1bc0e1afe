package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CommentRequest is the payload for creating or updating a comment.
type CommentRequest struct {
	Message string `json:"message"`
}

// GetComments lists the comments of a post, oldest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	comments, err := s.commentService.ListComments(c.UserContext(), postID, userID, limit, offset)
	if err != nil {
		return s.respondError(c, err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return c.JSON(fiber.Map{"comments": comments})
}

// CreateComment adds the caller's comment to a post.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:  userID,
		PostID:  postID,
		Message: req.Message,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// GetComment returns one comment of a post.
func (s *Server) GetComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return s.respondError(c, err)
	}

	comment, err := s.commentService.GetComment(c.UserContext(), postID, commentID, userID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"comment": comment})
}

// UpdateComment updates the caller's own comment.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return s.respondError(c, err)
	}

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.UserContext(), service.UpdateCommentInput{
		UserID:    userID,
		PostID:    postID,
		CommentID: commentID,
		Message:   req.Message,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"comment": comment})
}

// DeleteComment removes the caller's comment and its like edges, and
// returns the deleted comment.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return s.respondError(c, err)
	}

	comment, err := s.commentService.DeleteComment(c.UserContext(), userID, postID, commentID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"comment": comment})
}

// GetCommentLikeStatus returns the comment's like count and whether the
// caller is among the likers.
func (s *Server) GetCommentLikeStatus(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return s.respondError(c, err)
	}

	ctx := c.UserContext()
	if _, err := s.commentRepo.GetByID(ctx, commentID, userID); err != nil {
		return s.respondError(c, err)
	}
	status, err := s.likeService.CommentLikeStatus(ctx, userID, commentID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(status)
}

// ToggleCommentLike likes or unlikes the comment and returns the
// resulting state. The comment's post id travels onto the edge so post
// deletion can find likes on its comments.
func (s *Server) ToggleCommentLike(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return s.respondError(c, err)
	}

	ctx := c.UserContext()
	comment, err := s.commentRepo.GetByID(ctx, commentID, userID)
	if err != nil {
		return s.respondError(c, err)
	}
	status, err := s.likeService.ToggleCommentLike(ctx, userID, comment.PostID, commentID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(status)
}
