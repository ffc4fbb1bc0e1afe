package server

import (
	"strconv"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// respondError writes the {message} error body. Internal causes are
// logged with the request context and never leak into the response.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	if models.StatusForError(err) == fiber.StatusInternalServerError {
		observability.RecordErrorInContext(c.UserContext(), err)
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			"path", c.Path(), "method", c.Method(), "error", err)
	}
	return models.RespondError(c, err)
}

// currentUserID returns the authenticated user's ID placed in Locals by
// the auth middleware.
func currentUserID(c *fiber.Ctx) (uint, error) {
	uid, ok := c.Locals("userID").(uint)
	if !ok || uid == 0 {
		return 0, models.NewUnauthorizedError("Authentication required")
	}
	return uid, nil
}

// parseID parses a numeric path parameter into a uint.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + name + " parameter")
	}
	return uint(id), nil
}

// parsePagination reads ?page and ?limit. Absent or non-numeric values
// fall back to page 0 and the default page size; the service layer caps
// the size.
func parsePagination(c *fiber.Ctx) (page, pageSize int) {
	page = c.QueryInt("page", 0)
	if page < 0 {
		page = 0
	}
	pageSize = c.QueryInt("limit", service.DefaultPageSize)
	if pageSize <= 0 {
		pageSize = service.DefaultPageSize
	}
	return page, pageSize
}

// userPageResponse is the wire shape of a paginated user listing.
type userPageResponse struct {
	Users []models.PublicProfile `json:"users"`
	service.Page
}

// postPageResponse is the wire shape of a paginated post listing.
type postPageResponse struct {
	Posts []*models.Post `json:"posts"`
	service.Page
}
