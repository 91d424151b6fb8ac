package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"survey-console/internal/domain"
	"survey-console/internal/repository/models"
	"survey-console/internal/util"

	"github.com/jmoiron/sqlx"
)

const surveySelect = `SELECT ID, NAME, INTRODUCTION_TEXT, ADD_TERMS, TERMS_CONDITIONS, STATE, STRUCTURE, CREATED_AT, UPDATED_AT FROM SURVEYS`

type sqlxSurveyRepository struct {
	db *sqlx.DB
}

// NewSQLXSurveyRepository creates a survey repository backed by sqlx.
func NewSQLXSurveyRepository(db *sqlx.DB) domain.SurveyRepository {
	return &sqlxSurveyRepository{db: db}
}

func toDomainSurvey(m *models.Survey) *domain.Survey {
	if m == nil {
		return nil
	}
	return &domain.Survey{
		ID:               m.ID,
		Name:             m.Name,
		IntroductionText: m.IntroductionText.String,
		AddTerms:         m.AddTerms == 1,
		TermsConditions:  m.TermsConditions.String,
		State:            m.State,
		Structure:        domain.Structure(m.Structure),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromDomainSurvey(s *domain.Survey) *models.Survey {
	addTerms := 0
	if s.AddTerms {
		addTerms = 1
	}
	return &models.Survey{
		ID:               s.ID,
		Name:             s.Name,
		IntroductionText: util.StringToNullString(s.IntroductionText),
		AddTerms:         addTerms,
		TermsConditions:  util.StringToNullString(s.TermsConditions),
		State:            s.State,
		Structure:        models.StructureJSON(s.Structure),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (r *sqlxSurveyRepository) ListSurveys(ctx context.Context, search string) ([]*domain.Survey, error) {
	exec := GetExecutor(ctx, r.db)
	query := surveySelect
	var args []interface{}
	if search != "" {
		query += ` WHERE LOWER(NAME) LIKE ? ESCAPE '\'`
		args = append(args, util.LikePattern(search))
	}
	query += " ORDER BY CREATED_AT DESC"

	var rows []models.Survey
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}
	surveys := make([]*domain.Survey, 0, len(rows))
	for i := range rows {
		surveys = append(surveys, toDomainSurvey(&rows[i]))
	}
	return surveys, nil
}

// GetSurveyByID returns the survey with its structure, or (nil, nil) when none exists.
func (r *sqlxSurveyRepository) GetSurveyByID(ctx context.Context, surveyID string) (*domain.Survey, error) {
	exec := GetExecutor(ctx, r.db)
	var row models.Survey
	if err := exec.GetContext(ctx, &row, exec.Rebind(surveySelect+" WHERE ID = ?"), surveyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get survey by id: %w", err)
	}
	return toDomainSurvey(&row), nil
}

func (r *sqlxSurveyRepository) CreateSurvey(ctx context.Context, survey *domain.Survey) error {
	if survey.ID == "" {
		survey.ID = util.NewULID()
	}
	now := nowUTC()
	if survey.CreatedAt.IsZero() {
		survey.CreatedAt = now
	}
	survey.UpdatedAt = now

	query := `INSERT INTO SURVEYS (ID, NAME, INTRODUCTION_TEXT, ADD_TERMS, TERMS_CONDITIONS, STATE, STRUCTURE, CREATED_AT, UPDATED_AT)
		VALUES (:ID, :NAME, :INTRODUCTION_TEXT, :ADD_TERMS, :TERMS_CONDITIONS, :STATE, :STRUCTURE, :CREATED_AT, :UPDATED_AT)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainSurvey(survey)); err != nil {
		return fmt.Errorf("failed to create survey: %w", err)
	}
	return nil
}

// UpdateSurvey rewrites the survey metadata. The structure is left as stored.
func (r *sqlxSurveyRepository) UpdateSurvey(ctx context.Context, survey *domain.Survey) error {
	survey.UpdatedAt = nowUTC()
	query := `UPDATE SURVEYS SET
			NAME = :NAME,
			INTRODUCTION_TEXT = :INTRODUCTION_TEXT,
			ADD_TERMS = :ADD_TERMS,
			TERMS_CONDITIONS = :TERMS_CONDITIONS,
			UPDATED_AT = :UPDATED_AT
		WHERE ID = :ID`
	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainSurvey(survey))
	return requireAffected(result, err, "update survey")
}

func (r *sqlxSurveyRepository) UpdateSurveyStructure(ctx context.Context, surveyID string, structure domain.Structure) error {
	query := `UPDATE SURVEYS SET STRUCTURE = :STRUCTURE, UPDATED_AT = :UPDATED_AT WHERE ID = :ID`
	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, map[string]interface{}{
		"STRUCTURE":  models.StructureJSON(structure),
		"UPDATED_AT": nowUTC(),
		"ID":         surveyID,
	})
	return requireAffected(result, err, "update survey structure")
}

func (r *sqlxSurveyRepository) ToggleSurveyState(ctx context.Context, surveyID string) (int, error) {
	return toggleState(ctx, r.db, "SURVEYS", surveyID, false)
}
