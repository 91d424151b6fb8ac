package handler_test

import (
	"context"

	"survey-console/internal/domain"
	"survey-console/internal/dto"
)

// --- Manual Mocks ---

type MockUserService struct {
	ListUsersFunc       func(ctx context.Context, search string) (*dto.UserListResponse, error)
	GetUserFunc         func(ctx context.Context, userID string) (*dto.UserResponse, error)
	CreateUserFunc      func(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error)
	UpdateUserFunc      func(ctx context.Context, userID string, req dto.UserRequest) (*dto.UserResponse, error)
	DeleteUserFunc      func(ctx context.Context, userID string) error
	ToggleUserStateFunc func(ctx context.Context, userID string) (*dto.StateResponse, error)
}

func (m *MockUserService) ListUsers(ctx context.Context, search string) (*dto.UserListResponse, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx, search)
	}
	panic("MockUserService.ListUsersFunc not implemented")
}
func (m *MockUserService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, userID)
	}
	panic("MockUserService.GetUserFunc not implemented")
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	panic("MockUserService.CreateUserFunc not implemented")
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UserRequest) (*dto.UserResponse, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, userID, req)
	}
	panic("MockUserService.UpdateUserFunc not implemented")
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, userID)
	}
	panic("MockUserService.DeleteUserFunc not implemented")
}
func (m *MockUserService) ToggleUserState(ctx context.Context, userID string) (*dto.StateResponse, error) {
	if m.ToggleUserStateFunc != nil {
		return m.ToggleUserStateFunc(ctx, userID)
	}
	panic("MockUserService.ToggleUserStateFunc not implemented")
}

type MockRoleService struct {
	ListRolesFunc       func(ctx context.Context, search string) (*dto.RoleListResponse, error)
	GetRoleFunc         func(ctx context.Context, roleID string) (*dto.RoleResponse, error)
	CreateRoleFunc      func(ctx context.Context, req dto.RoleRequest) (*dto.RoleResponse, error)
	UpdateRoleFunc      func(ctx context.Context, roleID string, req dto.RoleRequest) (*dto.RoleResponse, error)
	DeleteRoleFunc      func(ctx context.Context, roleID string) error
	ToggleRoleStateFunc func(ctx context.Context, roleID string) (*dto.StateResponse, error)
	ListPermissionsFunc func(ctx context.Context) (*dto.PermissionListResponse, error)
}

func (m *MockRoleService) ListRoles(ctx context.Context, search string) (*dto.RoleListResponse, error) {
	if m.ListRolesFunc != nil {
		return m.ListRolesFunc(ctx, search)
	}
	panic("MockRoleService.ListRolesFunc not implemented")
}
func (m *MockRoleService) GetRole(ctx context.Context, roleID string) (*dto.RoleResponse, error) {
	if m.GetRoleFunc != nil {
		return m.GetRoleFunc(ctx, roleID)
	}
	panic("MockRoleService.GetRoleFunc not implemented")
}
func (m *MockRoleService) CreateRole(ctx context.Context, req dto.RoleRequest) (*dto.RoleResponse, error) {
	if m.CreateRoleFunc != nil {
		return m.CreateRoleFunc(ctx, req)
	}
	panic("MockRoleService.CreateRoleFunc not implemented")
}
func (m *MockRoleService) UpdateRole(ctx context.Context, roleID string, req dto.RoleRequest) (*dto.RoleResponse, error) {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, roleID, req)
	}
	panic("MockRoleService.UpdateRoleFunc not implemented")
}
func (m *MockRoleService) DeleteRole(ctx context.Context, roleID string) error {
	if m.DeleteRoleFunc != nil {
		return m.DeleteRoleFunc(ctx, roleID)
	}
	panic("MockRoleService.DeleteRoleFunc not implemented")
}
func (m *MockRoleService) ToggleRoleState(ctx context.Context, roleID string) (*dto.StateResponse, error) {
	if m.ToggleRoleStateFunc != nil {
		return m.ToggleRoleStateFunc(ctx, roleID)
	}
	panic("MockRoleService.ToggleRoleStateFunc not implemented")
}
func (m *MockRoleService) ListPermissions(ctx context.Context) (*dto.PermissionListResponse, error) {
	if m.ListPermissionsFunc != nil {
		return m.ListPermissionsFunc(ctx)
	}
	panic("MockRoleService.ListPermissionsFunc not implemented")
}

type MockSurveyService struct {
	ListSurveysFunc       func(ctx context.Context, search string) (*dto.SurveyListResponse, error)
	GetSurveyFunc         func(ctx context.Context, surveyID string) (*dto.SurveyResponse, error)
	CreateSurveyFunc      func(ctx context.Context, req dto.SurveyRequest) (*dto.SurveyResponse, error)
	UpdateSurveyFunc      func(ctx context.Context, surveyID string, req dto.SurveyRequest) (*dto.SurveyResponse, error)
	ToggleSurveyStateFunc func(ctx context.Context, surveyID string) (*dto.StateResponse, error)
}

func (m *MockSurveyService) ListSurveys(ctx context.Context, search string) (*dto.SurveyListResponse, error) {
	if m.ListSurveysFunc != nil {
		return m.ListSurveysFunc(ctx, search)
	}
	panic("MockSurveyService.ListSurveysFunc not implemented")
}
func (m *MockSurveyService) GetSurvey(ctx context.Context, surveyID string) (*dto.SurveyResponse, error) {
	if m.GetSurveyFunc != nil {
		return m.GetSurveyFunc(ctx, surveyID)
	}
	panic("MockSurveyService.GetSurveyFunc not implemented")
}
func (m *MockSurveyService) CreateSurvey(ctx context.Context, req dto.SurveyRequest) (*dto.SurveyResponse, error) {
	if m.CreateSurveyFunc != nil {
		return m.CreateSurveyFunc(ctx, req)
	}
	panic("MockSurveyService.CreateSurveyFunc not implemented")
}
func (m *MockSurveyService) UpdateSurvey(ctx context.Context, surveyID string, req dto.SurveyRequest) (*dto.SurveyResponse, error) {
	if m.UpdateSurveyFunc != nil {
		return m.UpdateSurveyFunc(ctx, surveyID, req)
	}
	panic("MockSurveyService.UpdateSurveyFunc not implemented")
}
func (m *MockSurveyService) ToggleSurveyState(ctx context.Context, surveyID string) (*dto.StateResponse, error) {
	if m.ToggleSurveyStateFunc != nil {
		return m.ToggleSurveyStateFunc(ctx, surveyID)
	}
	panic("MockSurveyService.ToggleSurveyStateFunc not implemented")
}

type MockStructureService struct {
	GetEditorFunc        func(ctx context.Context, surveyID string) (*dto.EditorStateResponse, error)
	ApplyActionFunc      func(ctx context.Context, surveyID string, req dto.EditorActionRequest) (*dto.EditorStateResponse, error)
	SaveEditorFunc       func(ctx context.Context, surveyID string) (*dto.SurveyResponse, error)
	DiscardEditorFunc    func(ctx context.Context, surveyID string) error
	ReplaceStructureFunc func(ctx context.Context, surveyID string, structure domain.Structure) (*dto.SurveyResponse, error)
}

func (m *MockStructureService) GetEditor(ctx context.Context, surveyID string) (*dto.EditorStateResponse, error) {
	if m.GetEditorFunc != nil {
		return m.GetEditorFunc(ctx, surveyID)
	}
	panic("MockStructureService.GetEditorFunc not implemented")
}
func (m *MockStructureService) ApplyAction(ctx context.Context, surveyID string, req dto.EditorActionRequest) (*dto.EditorStateResponse, error) {
	if m.ApplyActionFunc != nil {
		return m.ApplyActionFunc(ctx, surveyID, req)
	}
	panic("MockStructureService.ApplyActionFunc not implemented")
}
func (m *MockStructureService) SaveEditor(ctx context.Context, surveyID string) (*dto.SurveyResponse, error) {
	if m.SaveEditorFunc != nil {
		return m.SaveEditorFunc(ctx, surveyID)
	}
	panic("MockStructureService.SaveEditorFunc not implemented")
}
func (m *MockStructureService) DiscardEditor(ctx context.Context, surveyID string) error {
	if m.DiscardEditorFunc != nil {
		return m.DiscardEditorFunc(ctx, surveyID)
	}
	panic("MockStructureService.DiscardEditorFunc not implemented")
}
func (m *MockStructureService) ReplaceStructure(ctx context.Context, surveyID string, structure domain.Structure) (*dto.SurveyResponse, error) {
	if m.ReplaceStructureFunc != nil {
		return m.ReplaceStructureFunc(ctx, surveyID, structure)
	}
	panic("MockStructureService.ReplaceStructureFunc not implemented")
}
