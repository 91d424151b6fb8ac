package handler

import (
	"survey-console/internal/dto"
	"survey-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers godoc
// @Summary List users
// @Description Lists users, optionally filtered by name, identification or role
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param search query string false "Case-insensitive search text"
// @Success 200 {object} dto.UserListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	resp, err := h.userService.ListUsers(c.Context(), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	resp, err := h.userService.GetUser(c.Context(), pathID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param user body dto.UserRequest true "User form"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.userService.CreateUser(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateUser godoc
// @Summary Update a user
// @Tags users
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UserRequest true "User form"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.userService.UpdateUser(c.Context(), pathID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.DeletedResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id := pathID(c)
	if err := h.userService.DeleteUser(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeletedResponse{ID: id})
}

// ToggleUserState godoc
// @Summary Toggle user state
// @Description Flips the user between active (1) and inactive (0)
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.StateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/state/{id} [put]
func (h *UserHandler) ToggleUserState(c *fiber.Ctx) error {
	resp, err := h.userService.ToggleUserState(c.Context(), pathID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
