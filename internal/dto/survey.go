package dto

import (
	"time"

	"survey-console/internal/domain"
)

// Accepted values of SurveyRequest.AddTerms.
const (
	AddTermsYes = "yes"
	AddTermsNo  = "no"
)

// SurveyRequest is the body for creating or updating a survey.
// @Description Request body for survey create/update
type SurveyRequest struct {
	SurveyName       string `json:"survey_name"`
	IntroductionText string `json:"introduction_text"`
	AddTerms         string `json:"add_terms" example:"yes"`
	TermsConditions  string `json:"terms_conditions"`
}

// SurveyResponse represents a survey in the API response
// @Description Survey information
type SurveyResponse struct {
	ID               string           `json:"id"`
	SurveyName       string           `json:"survey_name"`
	IntroductionText string           `json:"introduction_text"`
	AddTerms         string           `json:"add_terms"`
	TermsConditions  string           `json:"terms_conditions,omitempty"`
	State            int              `json:"state"`
	SectionCount     int              `json:"section_count"`
	QuestionCount    int              `json:"question_count"`
	Structure        domain.Structure `json:"structure"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// SurveyListResponse wraps a list of surveys.
type SurveyListResponse struct {
	Surveys []SurveyResponse `json:"surveys"`
	Total   int              `json:"total"`
}

// AddTermsValue renders the flag the way forms submit it.
func AddTermsValue(addTerms bool) string {
	if addTerms {
		return AddTermsYes
	}
	return AddTermsNo
}

func NewSurveyResponse(s *domain.Survey) SurveyResponse {
	return SurveyResponse{
		ID:               s.ID,
		SurveyName:       s.Name,
		IntroductionText: s.IntroductionText,
		AddTerms:         AddTermsValue(s.AddTerms),
		TermsConditions:  s.TermsConditions,
		State:            s.State,
		SectionCount:     len(s.Structure.Sections),
		QuestionCount:    s.Structure.QuestionCount(),
		Structure:        s.Structure,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func NewSurveyListResponse(surveys []*domain.Survey) SurveyListResponse {
	out := SurveyListResponse{Surveys: make([]SurveyResponse, 0, len(surveys)), Total: len(surveys)}
	for _, s := range surveys {
		out.Surveys = append(out.Surveys, NewSurveyResponse(s))
	}
	return out
}
