package service

import (
	"context"
	"strings"

	"survey-console/internal/domain"
	"survey-console/internal/dto"
	"survey-console/internal/logger"
	"survey-console/internal/validation"

	"go.uber.org/zap"
)

// RoleService defines role and permission administration.
type RoleService interface {
	ListRoles(ctx context.Context, search string) (*dto.RoleListResponse, error)
	GetRole(ctx context.Context, roleID string) (*dto.RoleResponse, error)
	CreateRole(ctx context.Context, req dto.RoleRequest) (*dto.RoleResponse, error)
	UpdateRole(ctx context.Context, roleID string, req dto.RoleRequest) (*dto.RoleResponse, error)
	DeleteRole(ctx context.Context, roleID string) error
	ToggleRoleState(ctx context.Context, roleID string) (*dto.StateResponse, error)
	ListPermissions(ctx context.Context) (*dto.PermissionListResponse, error)
}

type roleServiceImpl struct {
	roleRepo  domain.RoleRepository
	txManager domain.TransactionManager
	validator *validation.Validator
}

func NewRoleService(roleRepo domain.RoleRepository, txManager domain.TransactionManager, validator *validation.Validator) RoleService {
	return &roleServiceImpl{roleRepo: roleRepo, txManager: txManager, validator: validator}
}

func (s *roleServiceImpl) ListRoles(ctx context.Context, search string) (*dto.RoleListResponse, error) {
	roles, err := s.roleRepo.ListRoles(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, domain.NewInternalError("failed to list roles", err)
	}
	resp := dto.NewRoleListResponse(roles)
	return &resp, nil
}

func (s *roleServiceImpl) GetRole(ctx context.Context, roleID string) (*dto.RoleResponse, error) {
	role, err := s.roleRepo.GetRoleByID(ctx, roleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get role", err)
	}
	if role == nil {
		return nil, notFound("role", roleID)
	}
	resp := dto.NewRoleResponse(role)
	return &resp, nil
}

// resolvePermissions validates the form and maps permission ids onto the catalogue.
func (s *roleServiceImpl) resolvePermissions(ctx context.Context, req dto.RoleRequest) (dto.RoleRequest, []domain.Permission, error) {
	clean, errs := s.validator.ValidateRole(req)
	if errs != nil {
		return clean, nil, errs
	}

	catalogue, err := s.roleRepo.ListPermissions(ctx)
	if err != nil {
		return clean, nil, domain.NewInternalError("failed to list permissions", err)
	}
	byID := make(map[string]domain.Permission, len(catalogue))
	for _, p := range catalogue {
		byID[p.ID] = p
	}

	perms := make([]domain.Permission, 0, len(clean.Permissions))
	for _, id := range clean.Permissions {
		p, ok := byID[id]
		if !ok {
			return clean, nil, domain.ValidationErrors{"permissions": domain.MsgInvalidOption}
		}
		perms = append(perms, p)
	}
	return clean, perms, nil
}

func (s *roleServiceImpl) CreateRole(ctx context.Context, req dto.RoleRequest) (*dto.RoleResponse, error) {
	clean, perms, err := s.resolvePermissions(ctx, req)
	if err != nil {
		return nil, err
	}

	role := &domain.Role{Name: clean.Name, Permissions: perms, State: domain.StateActive}
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.roleRepo.CreateRole(txCtx, role); err != nil {
			return err
		}
		return s.roleRepo.ReplaceRolePermissions(txCtx, role.ID, role.PermissionIDs())
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to create role", err)
	}

	logger.Get().Info("Role created", zap.String("role_id", role.ID), zap.Int("permissions", len(perms)))
	resp := dto.NewRoleResponse(role)
	return &resp, nil
}

func (s *roleServiceImpl) UpdateRole(ctx context.Context, roleID string, req dto.RoleRequest) (*dto.RoleResponse, error) {
	clean, perms, err := s.resolvePermissions(ctx, req)
	if err != nil {
		return nil, err
	}

	role, err := s.roleRepo.GetRoleByID(ctx, roleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get role", err)
	}
	if role == nil {
		return nil, notFound("role", roleID)
	}
	role.Name = clean.Name
	role.Permissions = perms

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.roleRepo.UpdateRole(txCtx, role); err != nil {
			return err
		}
		return s.roleRepo.ReplaceRolePermissions(txCtx, role.ID, role.PermissionIDs())
	})
	if err != nil {
		return nil, repoError(err, "update", "role", roleID)
	}
	resp := dto.NewRoleResponse(role)
	return &resp, nil
}

func (s *roleServiceImpl) DeleteRole(ctx context.Context, roleID string) error {
	if err := s.roleRepo.DeleteRole(ctx, roleID); err != nil {
		return repoError(err, "delete", "role", roleID)
	}
	logger.Get().Info("Role deleted", zap.String("role_id", roleID))
	return nil
}

func (s *roleServiceImpl) ToggleRoleState(ctx context.Context, roleID string) (*dto.StateResponse, error) {
	state, err := s.roleRepo.ToggleRoleState(ctx, roleID)
	if err != nil {
		return nil, repoError(err, "toggle state of", "role", roleID)
	}
	return &dto.StateResponse{ID: roleID, State: state}, nil
}

func (s *roleServiceImpl) ListPermissions(ctx context.Context) (*dto.PermissionListResponse, error) {
	perms, err := s.roleRepo.ListPermissions(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list permissions", err)
	}
	if perms == nil {
		perms = []domain.Permission{}
	}
	return &dto.PermissionListResponse{Permissions: perms}, nil
}
