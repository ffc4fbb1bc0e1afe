package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PostRequest is the payload for creating or updating a post.
type PostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

// GetPosts lists recent posts, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	posts, err := s.postService.ListPosts(c.UserContext(), userID, limit, offset)
	if err != nil {
		return s.respondError(c, err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// GetMyFeed pages over posts from the caller and everyone they follow.
func (s *Server) GetMyFeed(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	page, pageSize := parsePagination(c)

	feed, err := s.feedService.MyFeed(c.UserContext(), userID, page, pageSize)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(postPageResponse{Posts: feed.Posts, Page: feed.Page})
}

// CreatePost creates a post authored by the caller.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Images:  req.Images,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

// GetPost returns one post with its like count and the caller's like state.
func (s *Server) GetPost(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	post, err := s.postService.GetPost(c.UserContext(), postID, userID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

// UpdatePost updates the caller's own post.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:  userID,
		PostID:  postID,
		Title:   req.Title,
		Content: req.Content,
		Images:  req.Images,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

// DeletePost removes the caller's post together with its comments and
// like edges, and returns the deleted post.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	post, err := s.postService.DeletePost(c.UserContext(), userID, postID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

// GetPostLikeStatus returns the post's like count and whether the caller
// is among the likers. Nothing is mutated.
func (s *Server) GetPostLikeStatus(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	ctx := c.UserContext()
	if _, err := s.postService.GetPost(ctx, postID, userID); err != nil {
		return s.respondError(c, err)
	}
	status, err := s.likeService.PostLikeStatus(ctx, userID, postID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(status)
}

// TogglePostLike likes the post if the caller has not liked it, unlikes
// it otherwise, and returns the resulting state.
func (s *Server) TogglePostLike(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return s.respondError(c, err)
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	ctx := c.UserContext()
	if _, err := s.postService.GetPost(ctx, postID, userID); err != nil {
		return s.respondError(c, err)
	}
	status, err := s.likeService.TogglePostLike(ctx, userID, postID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(status)
}
