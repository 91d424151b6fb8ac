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

// UserService defines the interface for user administration.
type UserService interface {
	ListUsers(ctx context.Context, search string) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, userID string, req dto.UserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
	ToggleUserState(ctx context.Context, userID string) (*dto.StateResponse, error)
}

type userServiceImpl struct {
	userRepo  domain.UserRepository
	roleRepo  domain.RoleRepository
	validator *validation.Validator
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo domain.UserRepository, roleRepo domain.RoleRepository, validator *validation.Validator) UserService {
	return &userServiceImpl{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		validator: validator,
	}
}

func (s *userServiceImpl) ListUsers(ctx context.Context, search string) (*dto.UserListResponse, error) {
	users, err := s.userRepo.ListUsers(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, domain.NewInternalError("failed to list users", err)
	}
	resp := dto.NewUserListResponse(users)
	return &resp, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userServiceImpl) findUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, notFound("user", userID)
	}
	return user, nil
}

// validate checks the form and that the role exists. It returns the role name for the response.
func (s *userServiceImpl) validate(ctx context.Context, req dto.UserRequest) (dto.UserRequest, string, error) {
	clean, errs := s.validator.ValidateUser(req)
	if errs != nil {
		return clean, "", errs
	}
	role, err := s.roleRepo.GetRoleByID(ctx, clean.RoleID)
	if err != nil {
		return clean, "", domain.NewInternalError("failed to get role", err)
	}
	if role == nil {
		return clean, "", domain.ValidationErrors{"roleId": domain.MsgInvalidOption}
	}
	return clean, role.Name, nil
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error) {
	clean, roleName, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(clean.Names, clean.LastNames, clean.IdentificationType, clean.Identification, clean.Email, clean.RoleID)
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, domain.NewInternalError("failed to create user", err)
	}
	user.RoleName = roleName

	logger.Get().Info("User created", zap.String("user_id", user.ID), zap.String("role_id", user.RoleID))
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, userID string, req dto.UserRequest) (*dto.UserResponse, error) {
	clean, roleName, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Names = clean.Names
	user.LastNames = clean.LastNames
	user.IdentificationType = clean.IdentificationType
	user.Identification = clean.Identification
	user.Email = clean.Email
	user.RoleID = clean.RoleID
	user.RoleName = roleName

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, repoError(err, "update", "user", userID)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return repoError(err, "delete", "user", userID)
	}
	logger.Get().Info("User deleted", zap.String("user_id", userID))
	return nil
}

func (s *userServiceImpl) ToggleUserState(ctx context.Context, userID string) (*dto.StateResponse, error) {
	state, err := s.userRepo.ToggleUserState(ctx, userID)
	if err != nil {
		return nil, repoError(err, "toggle state of", "user", userID)
	}
	return &dto.StateResponse{ID: userID, State: state}, nil
}
