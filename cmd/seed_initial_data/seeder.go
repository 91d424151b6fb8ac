package main

import (
	"context"
	"fmt"
	"strings"

	"survey-console/cmd/seed_initial_data/internal/seedmodels"
	"survey-console/internal/domain"
	"survey-console/internal/dto"
	"survey-console/internal/service"
	"survey-console/internal/validation"

	"go.uber.org/zap"
)

// seeder creates the seed entities through the services so every record passes the form rules.
// Entities that already exist (matched by name, or identification for users) are skipped.
type seeder struct {
	roles      service.RoleService
	users      service.UserService
	surveys    service.SurveyService
	surveyRepo domain.SurveyRepository
	validator  *validation.Validator
	log        *zap.Logger
}

func (s *seeder) run(ctx context.Context, data seedmodels.SeedData) (seedmodels.Summary, error) {
	var summary seedmodels.Summary

	roleIDs, err := s.seedRoles(ctx, data.Roles, &summary)
	if err != nil {
		return summary, err
	}
	if err := s.seedUsers(ctx, data.Users, roleIDs, &summary); err != nil {
		return summary, err
	}
	if err := s.seedSurveys(ctx, data.Surveys, &summary); err != nil {
		return summary, err
	}
	return summary, nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// seedRoles returns role ids by lower-cased name, covering existing and created roles.
func (s *seeder) seedRoles(ctx context.Context, roles []seedmodels.SeedRole, summary *seedmodels.Summary) (map[string]string, error) {
	catalogue, err := s.roles.ListPermissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	permissionIDs := make(map[string]string, len(catalogue.Permissions))
	for _, p := range catalogue.Permissions {
		permissionIDs[nameKey(p.Name)] = p.ID
	}

	existing, err := s.roles.ListRoles(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	roleIDs := make(map[string]string, len(existing.Roles)+len(roles))
	for _, r := range existing.Roles {
		roleIDs[nameKey(r.Name)] = r.ID
	}

	for _, sr := range roles {
		if id, ok := roleIDs[nameKey(sr.Name)]; ok {
			s.log.Info("Role exists.", zap.String("id", id), zap.String("name", sr.Name))
			summary.Skipped++
			continue
		}

		ids := make([]string, 0, len(sr.Permissions))
		for _, name := range sr.Permissions {
			id, ok := permissionIDs[nameKey(name)]
			if !ok {
				return nil, fmt.Errorf("role %s: unknown permission %q", sr.Name, name)
			}
			ids = append(ids, id)
		}

		created, err := s.roles.CreateRole(ctx, dto.RoleRequest{Name: sr.Name, Permissions: ids})
		if err != nil {
			return nil, fmt.Errorf("failed to create role %s: %w", sr.Name, err)
		}
		roleIDs[nameKey(created.Name)] = created.ID
		summary.RolesCreated++
		s.log.Info("Created role.", zap.String("id", created.ID), zap.String("name", created.Name))
	}
	return roleIDs, nil
}

func (s *seeder) seedUsers(ctx context.Context, users []seedmodels.SeedUser, roleIDs map[string]string, summary *seedmodels.Summary) error {
	for _, su := range users {
		found, err := s.users.ListUsers(ctx, su.Identification)
		if err != nil {
			return fmt.Errorf("failed to look up user %s: %w", su.Identification, err)
		}
		if userExists(found.Users, su) {
			s.log.Info("User exists.", zap.String("identification", su.Identification))
			summary.Skipped++
			continue
		}

		roleID, ok := roleIDs[nameKey(su.Role)]
		if !ok {
			return fmt.Errorf("user %s: unknown role %q", su.Identification, su.Role)
		}
		created, err := s.users.CreateUser(ctx, dto.UserRequest{
			Names:              su.Names,
			LastNames:          su.LastNames,
			IdentificationType: su.IdentificationType,
			Identification:     su.Identification,
			Email:              su.Email,
			RoleID:             roleID,
		})
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", su.Identification, err)
		}
		summary.UsersCreated++
		s.log.Info("Created user.", zap.String("id", created.ID), zap.String("name", created.FullName))
	}
	return nil
}

func userExists(users []dto.UserResponse, su seedmodels.SeedUser) bool {
	for _, u := range users {
		if strings.EqualFold(u.IdentificationType, su.IdentificationType) && u.Identification == su.Identification {
			return true
		}
	}
	return false
}

func (s *seeder) seedSurveys(ctx context.Context, surveys []seedmodels.SeedSurvey, summary *seedmodels.Summary) error {
	for _, ss := range surveys {
		found, err := s.surveys.ListSurveys(ctx, ss.Name)
		if err != nil {
			return fmt.Errorf("failed to look up survey %s: %w", ss.Name, err)
		}
		if surveyExists(found.Surveys, ss.Name) {
			s.log.Info("Survey exists.", zap.String("name", ss.Name))
			summary.Skipped++
			continue
		}

		created, err := s.surveys.CreateSurvey(ctx, dto.SurveyRequest{
			SurveyName:       ss.Name,
			IntroductionText: ss.IntroductionText,
			AddTerms:         dto.AddTermsValue(strings.TrimSpace(ss.TermsConditions) != ""),
			TermsConditions:  ss.TermsConditions,
		})
		if err != nil {
			return fmt.Errorf("failed to create survey %s: %w", ss.Name, err)
		}

		if ss.Structure != nil {
			structure, verrs := s.validator.ValidateStructure(*ss.Structure)
			if verrs != nil {
				return fmt.Errorf("survey %s: invalid structure: %w", ss.Name, verrs)
			}
			if err := s.surveyRepo.UpdateSurveyStructure(ctx, created.ID, structure); err != nil {
				return fmt.Errorf("failed to store structure of survey %s: %w", ss.Name, err)
			}
		}
		summary.SurveysCreated++
		s.log.Info("Created survey.", zap.String("id", created.ID), zap.String("name", created.SurveyName))
	}
	return nil
}

func surveyExists(surveys []dto.SurveyResponse, name string) bool {
	for _, s := range surveys {
		if nameKey(s.SurveyName) == nameKey(name) {
			return true
		}
	}
	return false
}
