package handler

import (
	"survey-console/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Users   *UserHandler
	Roles   *RoleHandler
	Surveys *SurveyHandler
	Health  *HealthHandler
}

// SetupRoutes mounts the API. Everything except /api/health requires an API key.
func SetupRoutes(app *fiber.App, h Handlers, apiKeys []string) {
	api := app.Group("/api")
	api.Get("/health", h.Health.Health)

	secured := api.Group("", middleware.RequireAPIKey(apiKeys))
	byID := middleware.NewValidationMiddleware().ValidateID()

	users := secured.Group("/users")
	users.Get("/", h.Users.ListUsers)
	users.Post("/", h.Users.CreateUser)
	users.Put("/state/:id", byID, h.Users.ToggleUserState)
	users.Get("/:id", byID, h.Users.GetUser)
	users.Put("/:id", byID, h.Users.UpdateUser)
	users.Delete("/:id", byID, h.Users.DeleteUser)

	roles := secured.Group("/roles")
	roles.Get("/", h.Roles.ListRoles)
	roles.Post("/", h.Roles.CreateRole)
	roles.Put("/state/:id", byID, h.Roles.ToggleRoleState)
	roles.Get("/:id", byID, h.Roles.GetRole)
	roles.Put("/:id", byID, h.Roles.UpdateRole)
	roles.Delete("/:id", byID, h.Roles.DeleteRole)
	secured.Get("/permissions", h.Roles.ListPermissions)

	surveys := secured.Group("/surveys")
	surveys.Get("/", h.Surveys.ListSurveys)
	surveys.Post("/", h.Surveys.CreateSurvey)
	surveys.Put("/state/:id", byID, h.Surveys.ToggleSurveyState)
	surveys.Get("/:id", byID, h.Surveys.GetSurvey)
	surveys.Put("/:id", byID, h.Surveys.UpdateSurvey)
	surveys.Put("/:id/structure", byID, h.Surveys.ReplaceStructure)
	surveys.Get("/:id/editor", byID, h.Surveys.GetEditor)
	surveys.Post("/:id/editor/actions", byID, h.Surveys.ApplyEditorAction)
	surveys.Post("/:id/editor/save", byID, h.Surveys.SaveEditor)
	surveys.Delete("/:id/editor", byID, h.Surveys.DiscardEditor)
	secured.Get("/question-types", h.Surveys.ListQuestionTypes)
}
