package service

import (
	"context"
	"strings"

	"survey-console/internal/config"
	"survey-console/internal/domain"
	"survey-console/internal/dto"
	"survey-console/internal/logger"
	"survey-console/internal/validation"

	"go.uber.org/zap"
)

// SurveyService defines survey metadata administration.
type SurveyService interface {
	ListSurveys(ctx context.Context, search string) (*dto.SurveyListResponse, error)
	GetSurvey(ctx context.Context, surveyID string) (*dto.SurveyResponse, error)
	CreateSurvey(ctx context.Context, req dto.SurveyRequest) (*dto.SurveyResponse, error)
	UpdateSurvey(ctx context.Context, surveyID string, req dto.SurveyRequest) (*dto.SurveyResponse, error)
	ToggleSurveyState(ctx context.Context, surveyID string) (*dto.StateResponse, error)
}

type surveyServiceImpl struct {
	surveyRepo      domain.SurveyRepository
	validator       *validation.Validator
	defaultSections int
}

func NewSurveyService(surveyRepo domain.SurveyRepository, validator *validation.Validator, editorCfg config.EditorConfig) SurveyService {
	sections := editorCfg.DefaultSections
	if sections < 1 {
		sections = domain.DefaultSectionCount
	}
	return &surveyServiceImpl{surveyRepo: surveyRepo, validator: validator, defaultSections: sections}
}

func (s *surveyServiceImpl) ListSurveys(ctx context.Context, search string) (*dto.SurveyListResponse, error) {
	surveys, err := s.surveyRepo.ListSurveys(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, domain.NewInternalError("failed to list surveys", err)
	}
	resp := dto.NewSurveyListResponse(surveys)
	return &resp, nil
}

func (s *surveyServiceImpl) GetSurvey(ctx context.Context, surveyID string) (*dto.SurveyResponse, error) {
	survey, err := findSurvey(ctx, s.surveyRepo, surveyID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewSurveyResponse(survey)
	return &resp, nil
}

func findSurvey(ctx context.Context, repo domain.SurveyRepository, surveyID string) (*domain.Survey, error) {
	survey, err := repo.GetSurveyByID(ctx, surveyID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get survey", err)
	}
	if survey == nil {
		return nil, notFound("survey", surveyID)
	}
	return survey, nil
}

// applyForm copies a validated form onto survey. Terms text is kept only when terms are added.
func applyForm(survey *domain.Survey, form dto.SurveyRequest) {
	survey.Name = form.SurveyName
	survey.IntroductionText = form.IntroductionText
	survey.AddTerms = form.AddTerms == dto.AddTermsYes
	survey.TermsConditions = ""
	if survey.AddTerms {
		survey.TermsConditions = form.TermsConditions
	}
}

// CreateSurvey stores a new active survey with the default section layout.
func (s *surveyServiceImpl) CreateSurvey(ctx context.Context, req dto.SurveyRequest) (*dto.SurveyResponse, error) {
	form, errs := s.validator.ValidateSurvey(req)
	if errs != nil {
		return nil, errs
	}

	survey := &domain.Survey{
		State:     domain.StateActive,
		Structure: domain.NewDefaultStructure(s.defaultSections),
	}
	applyForm(survey, form)

	if err := s.surveyRepo.CreateSurvey(ctx, survey); err != nil {
		return nil, domain.NewInternalError("failed to create survey", err)
	}

	logger.Get().Info("Survey created", zap.String("survey_id", survey.ID), zap.Int("sections", len(survey.Structure.Sections)))
	resp := dto.NewSurveyResponse(survey)
	return &resp, nil
}

func (s *surveyServiceImpl) UpdateSurvey(ctx context.Context, surveyID string, req dto.SurveyRequest) (*dto.SurveyResponse, error) {
	form, errs := s.validator.ValidateSurvey(req)
	if errs != nil {
		return nil, errs
	}
	survey, err := findSurvey(ctx, s.surveyRepo, surveyID)
	if err != nil {
		return nil, err
	}
	applyForm(survey, form)

	if err := s.surveyRepo.UpdateSurvey(ctx, survey); err != nil {
		return nil, repoError(err, "update", "survey", surveyID)
	}
	resp := dto.NewSurveyResponse(survey)
	return &resp, nil
}

func (s *surveyServiceImpl) ToggleSurveyState(ctx context.Context, surveyID string) (*dto.StateResponse, error) {
	state, err := s.surveyRepo.ToggleSurveyState(ctx, surveyID)
	if err != nil {
		return nil, repoError(err, "toggle state of", "survey", surveyID)
	}
	return &dto.StateResponse{ID: surveyID, State: state}, nil
}
