package apiclient

import (
	"context"
	"net/url"

	"survey-console/internal/domain"
	"survey-console/internal/dto"
)

func withSearch(path, search string) string {
	if search == "" {
		return path
	}
	return path + "?" + url.Values{"search": {search}}.Encode()
}

func (c *Client) ListUsers(ctx context.Context, search string) (*dto.UserListResponse, error) {
	return Decode[dto.UserListResponse](c.Get(ctx, withSearch("/api/users", search)))
}

func (c *Client) CreateUser(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error) {
	return Decode[dto.UserResponse](c.Post(ctx, "/api/users", req))
}

func (c *Client) DeleteUser(ctx context.Context, id string) (*dto.DeletedResponse, error) {
	return Decode[dto.DeletedResponse](c.Delete(ctx, "/api/users/"+url.PathEscape(id)))
}

func (c *Client) ToggleUserState(ctx context.Context, id string) (*dto.StateResponse, error) {
	return Decode[dto.StateResponse](c.Put(ctx, "/api/users/state/"+url.PathEscape(id), nil))
}

func (c *Client) ListRoles(ctx context.Context, search string) (*dto.RoleListResponse, error) {
	return Decode[dto.RoleListResponse](c.Get(ctx, withSearch("/api/roles", search)))
}

func (c *Client) DeleteRole(ctx context.Context, id string) (*dto.DeletedResponse, error) {
	return Decode[dto.DeletedResponse](c.Delete(ctx, "/api/roles/"+url.PathEscape(id)))
}

func (c *Client) ToggleRoleState(ctx context.Context, id string) (*dto.StateResponse, error) {
	return Decode[dto.StateResponse](c.Put(ctx, "/api/roles/state/"+url.PathEscape(id), nil))
}

func (c *Client) ListPermissions(ctx context.Context) (*dto.PermissionListResponse, error) {
	return Decode[dto.PermissionListResponse](c.Get(ctx, "/api/permissions"))
}

func (c *Client) ListSurveys(ctx context.Context, search string) (*dto.SurveyListResponse, error) {
	return Decode[dto.SurveyListResponse](c.Get(ctx, withSearch("/api/surveys", search)))
}

func (c *Client) GetSurvey(ctx context.Context, id string) (*dto.SurveyResponse, error) {
	return Decode[dto.SurveyResponse](c.Get(ctx, "/api/surveys/"+url.PathEscape(id)))
}

func (c *Client) CreateSurvey(ctx context.Context, req dto.SurveyRequest) (*dto.SurveyResponse, error) {
	return Decode[dto.SurveyResponse](c.Post(ctx, "/api/surveys", req))
}

func (c *Client) ToggleSurveyState(ctx context.Context, id string) (*dto.StateResponse, error) {
	return Decode[dto.StateResponse](c.Put(ctx, "/api/surveys/state/"+url.PathEscape(id), nil))
}

func (c *Client) ReplaceStructure(ctx context.Context, id string, structure domain.Structure) (*dto.SurveyResponse, error) {
	return Decode[dto.SurveyResponse](c.Put(ctx, "/api/surveys/"+url.PathEscape(id)+"/structure", structure))
}

func (c *Client) GetEditor(ctx context.Context, id string) (*dto.EditorStateResponse, error) {
	return Decode[dto.EditorStateResponse](c.Get(ctx, "/api/surveys/"+url.PathEscape(id)+"/editor"))
}

func (c *Client) ApplyEditorAction(ctx context.Context, id string, action dto.EditorActionRequest) (*dto.EditorStateResponse, error) {
	return Decode[dto.EditorStateResponse](c.Post(ctx, "/api/surveys/"+url.PathEscape(id)+"/editor/actions", action))
}

func (c *Client) SaveEditor(ctx context.Context, id string) (*dto.SurveyResponse, error) {
	return Decode[dto.SurveyResponse](c.Post(ctx, "/api/surveys/"+url.PathEscape(id)+"/editor/save", nil))
}

func (c *Client) DiscardEditor(ctx context.Context, id string) (*dto.MessageResponse, error) {
	return Decode[dto.MessageResponse](c.Delete(ctx, "/api/surveys/"+url.PathEscape(id)+"/editor"))
}

func (c *Client) ListQuestionTypes(ctx context.Context) (*dto.QuestionTypeListResponse, error) {
	return Decode[dto.QuestionTypeListResponse](c.Get(ctx, "/api/question-types"))
}

func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	return Decode[dto.HealthResponse](c.Get(ctx, "/api/health"))
}
