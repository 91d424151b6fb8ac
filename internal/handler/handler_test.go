package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"survey-console/internal/domain"
	"survey-console/internal/dto"
	"survey-console/internal/handler"
	"survey-console/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

type testServer struct {
	app       *fiber.App
	users     *MockUserService
	roles     *MockRoleService
	surveys   *MockSurveyService
	structure *MockStructureService
}

func newTestServer(db, cache handler.Pinger) *testServer {
	s := &testServer{
		users:     &MockUserService{},
		roles:     &MockRoleService{},
		surveys:   &MockSurveyService{},
		structure: &MockStructureService{},
	}
	s.app = fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.SetupRoutes(s.app, handler.Handlers{
		Users:   handler.NewUserHandler(s.users),
		Roles:   handler.NewRoleHandler(s.roles),
		Surveys: handler.NewSurveyHandler(s.surveys, s.structure),
		Health:  handler.NewHealthHandler(db, cache),
	}, []string{testAPIKey})
	return s
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

func okPinger() handler.Pinger {
	return handler.PingFunc(func(context.Context) error { return nil })
}

func TestRoutes_RequireAPIKey(t *testing.T) {
	s := newTestServer(okPinger(), okPinger())

	resp, err := s.app.Test(httptest.NewRequest("GET", "/api/users", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUserHandler_ListUsers(t *testing.T) {
	s := newTestServer(okPinger(), okPinger())
	var gotSearch string
	s.users.ListUsersFunc = func(ctx context.Context, search string) (*dto.UserListResponse, error) {
		gotSearch = search
		return &dto.UserListResponse{Users: []dto.UserResponse{{ID: "u1", FullName: "Ana Pérez"}}, Total: 1}, nil
	}

	status, body := s.do(t, "GET", "/api/users?search=ana", nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ana", gotSearch)
	var resp dto.UserListResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Ana Pérez", resp.Users[0].FullName)
}

func TestUserHandler_CreateUser(t *testing.T) {
	s := newTestServer(okPinger(), okPinger())
	s.users.CreateUserFunc = func(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error) {
		assert.Equal(t, "ana@example.com", req.Email)
		return &dto.UserResponse{ID: "u1", Email: req.Email}, nil
	}

	status, _ := s.do(t, "POST", "/api/users", dto.UserRequest{Email: "ana@example.com"})

	assert.Equal(t, fiber.StatusCreated, status)
}

func TestUserHandler_CreateUser_ValidationErrors(t *testing.T) {
	s := newTestServer(okPinger(), okPinger())
	s.users.CreateUserFunc = func(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error) {
		return nil, domain.ValidationErrors{"email": domain.MsgNotValidEmail}
	}

	status, body := s.do(t, "POST", "/api/users", dto.UserRequest{Email: "nope"})

	assert.Equal(t, fiber.StatusBadRequest, status)
	var resp middleware.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, domain.MsgNotValidEmail, resp.Errors["email"])
}

func TestUserHandler_CreateUser_MalformedBody(t *testing.T) {
	s := newTestServer(okPinger(), okPinger())
	req := httptest.NewRequest("POST", "/api/users", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)

	resp, err := s.app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUserHandler_DeleteAndToggle(t *testing.T) {
	s := newTestServer(okPinger(), okPinger())
	s.users.DeleteUserFunc = func(ctx context.Context, userID string) error {
		if userID == "missing" {
			return domain.NewNotFoundError("user not found")
		}
		return nil
	}
	s.users.ToggleUserStateFunc = func(ctx context.Context, userID string) (*dto.StateResponse, error) {
		return &dto.StateResponse{ID: userID, State: domain.StateInactive}, nil
	}

	status, body := s.do(t, "DELETE", "/api/users/u1", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":"u1"}`, string(body))

	status, _ = s.do(t, "DELETE", "/api/users/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body = s.do(t, "PUT", "/api/users/state/u1", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":"u1","state":0}`, string(body))
}

func TestRoleHandler_Routes(t *testing.T) {
	s := newTestServer(okPinger(), okPinger())
	s.roles.UpdateRoleFunc = func(ctx context.Context, roleID string, req dto.RoleRequest) (*dto.RoleResponse, error) {
		assert.Equal(t, "r1", roleID)
		assert.Equal(t, []string{"p1"}, req.Permissions)
		return &dto.RoleResponse{ID: roleID, Name: req.Name, Permissions: []domain.Permission{{ID: "p1", Name: "users"}}}, nil
	}
	s.roles.ListPermissionsFunc = func(ctx context.Context) (*dto.PermissionListResponse, error) {
		return &dto.PermissionListResponse{Permissions: []domain.Permission{{ID: "p1", Name: "users"}}}, nil
	}

	status, _ := s.do(t, "PUT", "/api/roles/r1", dto.RoleRequest{Name: "Admin", Permissions: []string{"p1"}})
	assert.Equal(t, fiber.StatusOK, status)

	status, body := s.do(t, "GET", "/api/permissions", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"permissions":[{"id":"p1","name":"users"}]}`, string(body))
}

func TestSurveyHandler_EditorFlow(t *testing.T) {
	s := newTestServer(okPinger(), okPinger())
	index := 1
	s.structure.ApplyActionFunc = func(ctx context.Context, surveyID string, req dto.EditorActionRequest) (*dto.EditorStateResponse, error) {
		assert.Equal(t, "s1", surveyID)
		assert.Equal(t, "select", req.Type)
		require.NotNil(t, req.Index)
		assert.Equal(t, 1, *req.Index)
		return &dto.EditorStateResponse{SurveyID: surveyID, Current: 1, CurrentSection: "Section 2"}, nil
	}
	s.structure.SaveEditorFunc = func(ctx context.Context, surveyID string) (*dto.SurveyResponse, error) {
		return nil, domain.NewEditorBusyError()
	}
	s.structure.DiscardEditorFunc = func(ctx context.Context, surveyID string) error { return nil }

	status, body := s.do(t, "POST", "/api/surveys/s1/editor/actions", dto.EditorActionRequest{Type: "select", Index: &index})
	assert.Equal(t, fiber.StatusOK, status)
	var state dto.EditorStateResponse
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, "Section 2", state.CurrentSection)

	status, _ = s.do(t, "POST", "/api/surveys/s1/editor/save", nil)
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = s.do(t, "DELETE", "/api/surveys/s1/editor", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestSurveyHandler_ReplaceStructure(t *testing.T) {
	s := newTestServer(okPinger(), okPinger())
	s.structure.ReplaceStructureFunc = func(ctx context.Context, surveyID string, structure domain.Structure) (*dto.SurveyResponse, error) {
		require.Len(t, structure.Sections, 1)
		assert.Equal(t, "Datos", structure.Sections[0].Name)
		return &dto.SurveyResponse{ID: surveyID, SectionCount: 1, Structure: structure}, nil
	}

	status, _ := s.do(t, "PUT", "/api/surveys/s1/structure", domain.Structure{Sections: []domain.Section{{Name: "Datos"}}})

	assert.Equal(t, fiber.StatusOK, status)
}

func TestSurveyHandler_ListQuestionTypes(t *testing.T) {
	s := newTestServer(okPinger(), okPinger())

	status, body := s.do(t, "GET", "/api/question-types", nil)

	assert.Equal(t, fiber.StatusOK, status)
	var resp dto.QuestionTypeListResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Len(t, resp.Types, len(domain.QuestionTypes()))
}

func TestHealthHandler(t *testing.T) {
	down := handler.PingFunc(func(context.Context) error { return errors.New("dial tcp: refused") })

	tests := []struct {
		name       string
		db, cache  handler.Pinger
		wantStatus int
		wantBody   string
	}{
		{"all up", okPinger(), okPinger(), fiber.StatusOK, `{"status":"ok","database":"ok","cache":"ok"}`},
		{"cache down", okPinger(), down, fiber.StatusServiceUnavailable, `{"status":"degraded","database":"ok","cache":"down"}`},
		{"cache disabled", okPinger(), nil, fiber.StatusOK, `{"status":"ok","database":"ok","cache":"disabled"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(tt.db, tt.cache)
			resp, err := s.app.Test(httptest.NewRequest("GET", "/api/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var buf bytes.Buffer
			_, _ = buf.ReadFrom(resp.Body)
			assert.JSONEq(t, tt.wantBody, buf.String())
		})
	}
}
