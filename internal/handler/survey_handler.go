package handler

import (
	"survey-console/internal/domain"
	"survey-console/internal/dto"
	"survey-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SurveyHandler handles survey metadata and structuring editor requests
type SurveyHandler struct {
	surveyService    service.SurveyService
	structureService service.StructureService
}

func NewSurveyHandler(surveyService service.SurveyService, structureService service.StructureService) *SurveyHandler {
	return &SurveyHandler{surveyService: surveyService, structureService: structureService}
}

// ListSurveys godoc
// @Summary List surveys
// @Tags surveys
// @Security ApiKeyAuth
// @Produce json
// @Param search query string false "Case-insensitive search on the survey name"
// @Success 200 {object} dto.SurveyListResponse
// @Router /surveys [get]
func (h *SurveyHandler) ListSurveys(c *fiber.Ctx) error {
	resp, err := h.surveyService.ListSurveys(c.Context(), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSurvey godoc
// @Summary Get a survey
// @Tags surveys
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} dto.SurveyResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id} [get]
func (h *SurveyHandler) GetSurvey(c *fiber.Ctx) error {
	resp, err := h.surveyService.GetSurvey(c.Context(), pathID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateSurvey godoc
// @Summary Create a survey
// @Description Creates an active survey with the default section layout
// @Tags surveys
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param survey body dto.SurveyRequest true "Survey form"
// @Success 201 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /surveys [post]
func (h *SurveyHandler) CreateSurvey(c *fiber.Ctx) error {
	var req dto.SurveyRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.surveyService.CreateSurvey(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateSurvey godoc
// @Summary Update survey metadata
// @Tags surveys
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param survey body dto.SurveyRequest true "Survey form"
// @Success 200 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id} [put]
func (h *SurveyHandler) UpdateSurvey(c *fiber.Ctx) error {
	var req dto.SurveyRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.surveyService.UpdateSurvey(c.Context(), pathID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ToggleSurveyState godoc
// @Summary Toggle survey state
// @Tags surveys
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} dto.StateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/state/{id} [put]
func (h *SurveyHandler) ToggleSurveyState(c *fiber.Ctx) error {
	resp, err := h.surveyService.ToggleSurveyState(c.Context(), pathID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ReplaceStructure godoc
// @Summary Replace survey structure
// @Description Validates and stores a whole structure, closing any open editor session
// @Tags editor
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param structure body domain.Structure true "Structure"
// @Success 200 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id}/structure [put]
func (h *SurveyHandler) ReplaceStructure(c *fiber.Ctx) error {
	var structure domain.Structure
	if err := parseBody(c, &structure); err != nil {
		return err
	}
	resp, err := h.structureService.ReplaceStructure(c.Context(), pathID(c), structure)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetEditor godoc
// @Summary Get editor session
// @Description Returns the structuring session of a survey, opening one from the stored structure
// @Tags editor
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} dto.EditorStateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id}/editor [get]
func (h *SurveyHandler) GetEditor(c *fiber.Ctx) error {
	resp, err := h.structureService.GetEditor(c.Context(), pathID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ApplyEditorAction godoc
// @Summary Apply an editor action
// @Tags editor
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param action body dto.EditorActionRequest true "Editor action"
// @Success 200 {object} dto.EditorStateResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Editor is renaming a section"
// @Router /surveys/{id}/editor/actions [post]
func (h *SurveyHandler) ApplyEditorAction(c *fiber.Ctx) error {
	var req dto.EditorActionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.structureService.ApplyAction(c.Context(), pathID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SaveEditor godoc
// @Summary Save editor session
// @Tags editor
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /surveys/{id}/editor/save [post]
func (h *SurveyHandler) SaveEditor(c *fiber.Ctx) error {
	resp, err := h.structureService.SaveEditor(c.Context(), pathID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DiscardEditor godoc
// @Summary Discard editor session
// @Tags editor
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} dto.MessageResponse
// @Router /surveys/{id}/editor [delete]
func (h *SurveyHandler) DiscardEditor(c *fiber.Ctx) error {
	if err := h.structureService.DiscardEditor(c.Context(), pathID(c)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "editor session discarded"})
}

// ListQuestionTypes godoc
// @Summary List question types
// @Tags editor
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.QuestionTypeListResponse
// @Router /question-types [get]
func (h *SurveyHandler) ListQuestionTypes(c *fiber.Ctx) error {
	return c.JSON(dto.QuestionTypeListResponse{Types: domain.QuestionTypes()})
}
