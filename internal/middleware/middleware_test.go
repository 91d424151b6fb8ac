package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"survey-console/internal/domain"
	"survey-console/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func decode(t *testing.T, body io.Reader, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(v))
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.NewNotFoundError("user not found"), fiber.StatusNotFound, "NOT_FOUND"},
		{"invalid input", domain.NewInvalidInputError("bad"), fiber.StatusBadRequest, "INVALID_INPUT"},
		{"need one section", domain.NewNeedOneSectionError(), fiber.StatusBadRequest, "NEED_ONE_SECTION"},
		{"index out of range", domain.NewIndexOutOfRangeError("section", 4, 2), fiber.StatusBadRequest, "INDEX_OUT_OF_RANGE"},
		{"unauthorized", domain.NewUnauthorizedError("no key"), fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"editor busy", domain.NewEditorBusyError(), fiber.StatusConflict, "EDITOR_BUSY"},
		{"internal", domain.NewInternalError("failed", errors.New("ora")), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
		{"fiber error", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body middleware.ErrorResponse
			decode(t, resp.Body, &body)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
		})
	}
}

func TestErrorHandler_DetailsFromContext(t *testing.T) {
	app := newApp()
	app.Get("/", func(c *fiber.Ctx) error { return domain.NewIndexOutOfRangeError("question", 3, 1) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	var body middleware.ErrorResponse
	decode(t, resp.Body, &body)
	assert.Equal(t, "question", body.Details["target"])
	assert.EqualValues(t, 3, body.Details["index"])
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	app := newApp()
	app.Post("/", func(c *fiber.Ctx) error {
		return domain.ValidationErrors{"email": domain.MsgNotValidEmail, "names": domain.MsgRequiredField}
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.ValidationErrorResponse
	decode(t, resp.Body, &body)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Equal(t, map[string]string{"email": "notValidEmail", "names": "requiredField"}, body.Errors)
}

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		header     string
		wantStatus int
	}{
		{"valid key", []string{"k1", "k2"}, "k2", fiber.StatusOK},
		{"missing header", []string{"k1"}, "", fiber.StatusUnauthorized},
		{"wrong key", []string{"k1"}, "nope", fiber.StatusUnauthorized},
		{"no keys configured", nil, "k1", fiber.StatusUnauthorized},
		{"blank configured key never matches", []string{""}, " ", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Use(middleware.RequireAPIKey(tt.keys))
			app.Get("/", func(c *fiber.Ctx) error {
				_, ok := c.Locals(middleware.APIKeyIDKey).(int)
				assert.True(t, ok)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set(middleware.APIKeyHeader, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/items/01HQZX3K9V6T2B8N4M7C5D1E0F", fiber.StatusOK},
		{"/items/abc-def", fiber.StatusBadRequest},
		{"/items/0123456789012345678901234567", fiber.StatusBadRequest},
	}

	vm := middleware.NewValidationMiddleware()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			app := newApp()
			app.Get("/items/:id", vm.ValidateID(), func(c *fiber.Ctx) error {
				return c.SendString(c.Locals("validated_id").(string))
			})

			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	app := newApp()
	app.Use(middleware.RequestLogger())
	app.Get("/ok", func(c *fiber.Ctx) error {
		assert.NotEmpty(t, c.Locals(middleware.RequestIDKey))
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/missing", func(c *fiber.Ctx) error { return domain.NewNotFoundError("nope") })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Len(t, resp.Header.Get(middleware.RequestIDHeader), 36)

	req := httptest.NewRequest("GET", "/missing", nil)
	req.Header.Set(middleware.RequestIDHeader, "given-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "given-id", resp.Header.Get(middleware.RequestIDHeader))
}
