package seedmodels

import "survey-console/internal/domain"

// SeedRole is a role in the YAML seed file. Permissions are referenced by name.
type SeedRole struct {
	Name        string   `yaml:"name"`
	Permissions []string `yaml:"permissions"`
}

// SeedUser is a user in the YAML seed file. Role is the role name.
type SeedUser struct {
	Names              string `yaml:"names"`
	LastNames          string `yaml:"last_names"`
	IdentificationType string `yaml:"identification_type"`
	Identification     string `yaml:"identification"`
	Email              string `yaml:"email"`
	Role               string `yaml:"role"`
}

// SeedSurvey is a survey in the YAML seed file. A nil structure keeps the default sections.
type SeedSurvey struct {
	Name             string            `yaml:"name"`
	IntroductionText string            `yaml:"introduction_text"`
	TermsConditions  string            `yaml:"terms_conditions"`
	Structure        *domain.Structure `yaml:"structure"`
}

// SeedData is the whole seed file.
type SeedData struct {
	Roles   []SeedRole   `yaml:"roles"`
	Users   []SeedUser   `yaml:"users"`
	Surveys []SeedSurvey `yaml:"surveys"`
}

// Summary counts what a seeding run created and skipped.
type Summary struct {
	RolesCreated   int
	UsersCreated   int
	SurveysCreated int
	Skipped        int
}
