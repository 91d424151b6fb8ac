package handler

import (
	"survey-console/internal/dto"
	"survey-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RoleHandler handles role and permission requests
type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// ListRoles godoc
// @Summary List roles
// @Tags roles
// @Security ApiKeyAuth
// @Produce json
// @Param search query string false "Case-insensitive search on the role name"
// @Success 200 {object} dto.RoleListResponse
// @Router /roles [get]
func (h *RoleHandler) ListRoles(c *fiber.Ctx) error {
	resp, err := h.roleService.ListRoles(c.Context(), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetRole godoc
// @Summary Get a role
// @Tags roles
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} dto.RoleResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /roles/{id} [get]
func (h *RoleHandler) GetRole(c *fiber.Ctx) error {
	resp, err := h.roleService.GetRole(c.Context(), pathID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateRole godoc
// @Summary Create a role
// @Tags roles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param role body dto.RoleRequest true "Role form"
// @Success 201 {object} dto.RoleResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /roles [post]
func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var req dto.RoleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.roleService.CreateRole(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateRole godoc
// @Summary Update a role
// @Tags roles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param role body dto.RoleRequest true "Role form"
// @Success 200 {object} dto.RoleResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /roles/{id} [put]
func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.RoleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.roleService.UpdateRole(c.Context(), pathID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteRole godoc
// @Summary Delete a role
// @Tags roles
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} dto.DeletedResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	id := pathID(c)
	if err := h.roleService.DeleteRole(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeletedResponse{ID: id})
}

// ToggleRoleState godoc
// @Summary Toggle role state
// @Tags roles
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} dto.StateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /roles/state/{id} [put]
func (h *RoleHandler) ToggleRoleState(c *fiber.Ctx) error {
	resp, err := h.roleService.ToggleRoleState(c.Context(), pathID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListPermissions godoc
// @Summary List permissions
// @Description Returns the permission catalogue roles are built from
// @Tags roles
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.PermissionListResponse
// @Router /permissions [get]
func (h *RoleHandler) ListPermissions(c *fiber.Ctx) error {
	resp, err := h.roleService.ListPermissions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
