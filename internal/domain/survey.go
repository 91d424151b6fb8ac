package domain

import (
	"context"
	"time"
)

// Survey holds the survey metadata and its section structure.
type Survey struct {
	ID               string
	Name             string
	IntroductionText string
	AddTerms         bool
	TermsConditions  string
	State            int
	Structure        Structure
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SurveyRepository defines the interface for survey persistence.
type SurveyRepository interface {
	ListSurveys(ctx context.Context, search string) ([]*Survey, error)
	GetSurveyByID(ctx context.Context, surveyID string) (*Survey, error)
	CreateSurvey(ctx context.Context, survey *Survey) error
	UpdateSurvey(ctx context.Context, survey *Survey) error
	UpdateSurveyStructure(ctx context.Context, surveyID string, structure Structure) error
	ToggleSurveyState(ctx context.Context, surveyID string) (int, error)
}
