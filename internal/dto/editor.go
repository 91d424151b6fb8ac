package dto

import "survey-console/internal/domain"

// EditorActionRequest is one action sent to a structuring session.
// @Description Editor action; index, name and question are read depending on type
type EditorActionRequest struct {
	Type     string           `json:"type" example:"addQuestion"`
	Index    *int             `json:"index,omitempty"`
	Name     string           `json:"name,omitempty"`
	Question *domain.Question `json:"question,omitempty"`
}

// ToAction converts the request into a domain action.
func (r EditorActionRequest) ToAction() domain.EditorAction {
	return domain.EditorAction{
		Type:     domain.EditorActionType(r.Type),
		Index:    r.Index,
		Name:     r.Name,
		Question: r.Question,
	}
}

// EditorStateResponse is the snapshot of a structuring session.
// @Description Structuring editor snapshot
type EditorStateResponse struct {
	SurveyID       string           `json:"survey_id"`
	Structure      domain.Structure `json:"structure"`
	Current        int              `json:"current"`
	CurrentSection string           `json:"current_section"`
	Renaming       bool             `json:"renaming"`
	PendingNew     bool             `json:"pending_new"`
	PendingDelete  *int             `json:"pending_delete,omitempty"`
}

func NewEditorStateResponse(surveyID string, s domain.EditorState) EditorStateResponse {
	return EditorStateResponse{
		SurveyID:       surveyID,
		Structure:      s.Structure,
		Current:        s.Current,
		CurrentSection: s.CurrentSection().Name,
		Renaming:       s.Renaming,
		PendingNew:     s.PendingNew,
		PendingDelete:  s.PendingDelete,
	}
}

// QuestionTypeListResponse lists the supported question types.
type QuestionTypeListResponse struct {
	Types []domain.QuestionTypeInfo `json:"types"`
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
