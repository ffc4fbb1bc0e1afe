package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	app := fiber.New()
	var page, pageSize int
	app.Get("/list", func(c *fiber.Ctx) error {
		page, pageSize = parsePagination(c)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"defaults when absent", "", 0, 10},
		{"explicit values", "?page=3&limit=25", 3, 25},
		{"non-numeric falls back", "?page=abc&limit=xyz", 0, 10},
		{"negative falls back", "?page=-2&limit=-5", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/list"+tt.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestParseID(t *testing.T) {
	app := fiber.New()
	var id uint
	var parseErr error
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, parseErr = parseID(c, "id")
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name    string
		param   string
		wantID  uint
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"zero rejected", "0", 0, true},
		{"non-numeric rejected", "abc", 0, true},
		{"negative rejected", "-1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/items/"+tt.param, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			_ = resp.Body.Close()
			if tt.wantErr {
				assert.Error(t, parseErr)
			} else {
				assert.NoError(t, parseErr)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestCurrentUserID_Missing(t *testing.T) {
	app := fiber.New()
	var err error
	app.Get("/whoami", func(c *fiber.Ctx) error {
		_, err = currentUserID(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, testErr := app.Test(req)
	require.NoError(t, testErr)
	_ = resp.Body.Close()
	assert.Error(t, err)
}
