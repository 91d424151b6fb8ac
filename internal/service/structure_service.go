package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"survey-console/internal/cache"
	"survey-console/internal/domain"
	"survey-console/internal/dto"
	"survey-console/internal/logger"
	"survey-console/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// StructureService drives the structuring editor of a survey.
// Sessions are cached per survey; the last write wins.
type StructureService interface {
	GetEditor(ctx context.Context, surveyID string) (*dto.EditorStateResponse, error)
	ApplyAction(ctx context.Context, surveyID string, req dto.EditorActionRequest) (*dto.EditorStateResponse, error)
	SaveEditor(ctx context.Context, surveyID string) (*dto.SurveyResponse, error)
	DiscardEditor(ctx context.Context, surveyID string) error
	ReplaceStructure(ctx context.Context, surveyID string, structure domain.Structure) (*dto.SurveyResponse, error)
}

type structureServiceImpl struct {
	surveyRepo domain.SurveyRepository
	cache      domain.Cache
	validator  *validation.Validator
	sessionTTL time.Duration
	sfGroup    singleflight.Group
}

func NewStructureService(surveyRepo domain.SurveyRepository, sessions domain.Cache, validator *validation.Validator, sessionTTL time.Duration) StructureService {
	return &structureServiceImpl{
		surveyRepo: surveyRepo,
		cache:      sessions,
		validator:  validator,
		sessionTTL: sessionTTL,
	}
}

// loadSession returns the cached session of surveyID, opening one from the stored structure on a miss.
func (s *structureServiceImpl) loadSession(ctx context.Context, surveyID string) (domain.EditorState, error) {
	key := cache.StructureSessionKey(surveyID)

	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			state, decodeErr := decodeSession(raw)
			if decodeErr == nil {
				if expErr := s.cache.Expire(ctx, key, s.sessionTTL); expErr != nil {
					logger.Get().Warn("Failed to extend editor session", zap.String("key", key), zap.Error(expErr))
				}
				return state, nil
			}
			logger.Get().Warn("Discarding unreadable editor session", zap.String("key", key), zap.Error(decodeErr))
		case errors.Is(err, domain.ErrCacheMiss):
			logger.Get().Debug("Editor session miss", zap.String("key", key))
		default:
			logger.Get().Error("Failed to read editor session", zap.String("key", key), zap.Error(err))
		}
	}

	res, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		survey, err := findSurvey(ctx, s.surveyRepo, surveyID)
		if err != nil {
			return nil, err
		}
		state := domain.NewEditorState(survey.Structure)
		s.storeSession(ctx, surveyID, state)
		return state, nil
	})
	if err != nil {
		return domain.EditorState{}, err
	}
	return res.(domain.EditorState), nil
}

func decodeSession(raw string) (domain.EditorState, error) {
	var state domain.EditorState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return state, err
	}
	n := len(state.Structure.Sections)
	if n == 0 || state.Current < 0 || state.Current >= n {
		return state, errors.New("editor session has no current section")
	}
	if state.PendingDelete != nil && (*state.PendingDelete < 0 || *state.PendingDelete >= n) {
		return state, errors.New("editor session has a pending delete outside its sections")
	}
	return state, nil
}

// storeSession writes state to the cache. Cache failures are logged, not returned.
func (s *structureServiceImpl) storeSession(ctx context.Context, surveyID string, state domain.EditorState) {
	if s.cache == nil {
		return
	}
	key := cache.StructureSessionKey(surveyID)
	data, err := json.Marshal(state)
	if err != nil {
		logger.Get().Error("Failed to encode editor session", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.sessionTTL); err != nil {
		logger.Get().Error("Failed to store editor session", zap.String("key", key), zap.Error(err))
	}
}

func (s *structureServiceImpl) dropSession(ctx context.Context, surveyID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, cache.StructureSessionKey(surveyID))
}

func (s *structureServiceImpl) GetEditor(ctx context.Context, surveyID string) (*dto.EditorStateResponse, error) {
	state, err := s.loadSession(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewEditorStateResponse(surveyID, state)
	return &resp, nil
}

// ApplyAction runs one editor action against the session and stores the result.
// A rejected action leaves the stored session untouched, except for a confirmed delete of the last section.
func (s *structureServiceImpl) ApplyAction(ctx context.Context, surveyID string, req dto.EditorActionRequest) (*dto.EditorStateResponse, error) {
	state, err := s.loadSession(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	next, actionErr := state.Apply(req.ToAction())
	if actionErr != nil {
		var domainErr *domain.DomainError
		if errors.As(actionErr, &domainErr) && domainErr.Code == domain.CodeNeedOneSection {
			s.storeSession(ctx, surveyID, next)
		}
		logger.Get().Debug("Editor action rejected",
			zap.String("survey_id", surveyID),
			zap.String("action", req.Type),
			zap.Error(actionErr))
		return nil, actionErr
	}

	s.storeSession(ctx, surveyID, next)
	resp := dto.NewEditorStateResponse(surveyID, next)
	return &resp, nil
}

// SaveEditor validates the session structure and writes it to the survey.
func (s *structureServiceImpl) SaveEditor(ctx context.Context, surveyID string) (*dto.SurveyResponse, error) {
	state, err := s.loadSession(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if state.Renaming {
		return nil, domain.NewEditorBusyError()
	}

	survey, err := s.persist(ctx, surveyID, state.Structure)
	if err != nil {
		return nil, err
	}

	saved := domain.NewEditorState(survey.Structure)
	saved.Current = state.Current
	if saved.Current >= len(saved.Structure.Sections) {
		saved.Current = len(saved.Structure.Sections) - 1
	}
	s.storeSession(ctx, surveyID, saved)

	logger.Get().Info("Survey structure saved",
		zap.String("survey_id", surveyID),
		zap.Int("sections", len(survey.Structure.Sections)),
		zap.Int("questions", survey.Structure.QuestionCount()))
	resp := dto.NewSurveyResponse(survey)
	return &resp, nil
}

func (s *structureServiceImpl) DiscardEditor(ctx context.Context, surveyID string) error {
	if err := s.dropSession(ctx, surveyID); err != nil {
		return domain.NewInternalError("failed to discard editor session", err)
	}
	return nil
}

// ReplaceStructure stores an imported structure and closes any open session on the survey.
func (s *structureServiceImpl) ReplaceStructure(ctx context.Context, surveyID string, structure domain.Structure) (*dto.SurveyResponse, error) {
	survey, err := s.persist(ctx, surveyID, structure)
	if err != nil {
		return nil, err
	}
	if err := s.dropSession(ctx, surveyID); err != nil {
		logger.Get().Warn("Failed to drop editor session after import", zap.String("survey_id", surveyID), zap.Error(err))
	}
	resp := dto.NewSurveyResponse(survey)
	return &resp, nil
}

func (s *structureServiceImpl) persist(ctx context.Context, surveyID string, structure domain.Structure) (*domain.Survey, error) {
	normalized, errs := s.validator.ValidateStructure(structure)
	if errs != nil {
		return nil, errs
	}
	survey, err := findSurvey(ctx, s.surveyRepo, surveyID)
	if err != nil {
		return nil, err
	}
	if err := s.surveyRepo.UpdateSurveyStructure(ctx, surveyID, normalized); err != nil {
		return nil, repoError(err, "update structure of", "survey", surveyID)
	}
	survey.Structure = normalized
	return survey, nil
}
