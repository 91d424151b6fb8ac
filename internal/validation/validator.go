package validation

import (
	"regexp"
	"strings"

	"survey-console/internal/domain"
	"survey-console/internal/dto"
)

var (
	identificationPattern = regexp.MustCompile(`^[0-9A-Za-z-]+$`)
	emailPattern          = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const maxIdentificationLength = 20

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUser checks a user form and returns the trimmed payload.
func (v *Validator) ValidateUser(req dto.UserRequest) (dto.UserRequest, domain.ValidationErrors) {
	errs := domain.ValidationErrors{}
	out := dto.UserRequest{
		Names:              strings.TrimSpace(req.Names),
		LastNames:          strings.TrimSpace(req.LastNames),
		IdentificationType: strings.TrimSpace(req.IdentificationType),
		Identification:     strings.TrimSpace(req.Identification),
		Email:              strings.TrimSpace(req.Email),
		RoleID:             strings.TrimSpace(req.RoleID),
	}

	requireField(errs, "names", out.Names)
	requireField(errs, "lastNames", out.LastNames)
	requireField(errs, "identificationType", out.IdentificationType)
	if requireField(errs, "identification", out.Identification) {
		if len(out.Identification) > maxIdentificationLength || !identificationPattern.MatchString(out.Identification) {
			errs.Add("identification", domain.MsgNotValidDocument)
		}
	}
	if requireField(errs, "email", out.Email) && !emailPattern.MatchString(out.Email) {
		errs.Add("email", domain.MsgNotValidEmail)
	}
	requireField(errs, "roleId", out.RoleID)

	return out, errs.OrNil()
}

// ValidateRole checks a role form. Blank permission ids are dropped before the emptiness check.
func (v *Validator) ValidateRole(req dto.RoleRequest) (dto.RoleRequest, domain.ValidationErrors) {
	errs := domain.ValidationErrors{}
	out := dto.RoleRequest{Name: strings.TrimSpace(req.Name)}

	requireField(errs, "name", out.Name)

	seen := make(map[string]bool, len(req.Permissions))
	for _, p := range req.Permissions {
		id := strings.TrimSpace(p)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out.Permissions = append(out.Permissions, id)
	}
	if len(out.Permissions) == 0 {
		errs.Add("permissions", domain.MsgRequiredField)
	}

	return out, errs.OrNil()
}

// ValidateSurvey checks a survey form. Terms text is required only when terms are added.
func (v *Validator) ValidateSurvey(req dto.SurveyRequest) (dto.SurveyRequest, domain.ValidationErrors) {
	errs := domain.ValidationErrors{}
	out := dto.SurveyRequest{
		SurveyName:       strings.TrimSpace(req.SurveyName),
		IntroductionText: strings.TrimSpace(req.IntroductionText),
		AddTerms:         strings.ToLower(strings.TrimSpace(req.AddTerms)),
		TermsConditions:  strings.TrimSpace(req.TermsConditions),
	}

	requireField(errs, "surveyName", out.SurveyName)
	if requireField(errs, "addTerms", out.AddTerms) {
		switch out.AddTerms {
		case dto.AddTermsYes:
			requireField(errs, "termsConditions", out.TermsConditions)
		case dto.AddTermsNo:
		default:
			errs.Add("addTerms", domain.MsgInvalidOption)
		}
	}

	return out, errs.OrNil()
}

// ValidateQuestion checks a question draft with the editor's rules.
func (v *Validator) ValidateQuestion(q domain.Question) (domain.Question, domain.ValidationErrors) {
	return q.Validate()
}

// ValidateStructure checks a whole survey structure before it is saved or imported.
func (v *Validator) ValidateStructure(s domain.Structure) (domain.Structure, domain.ValidationErrors) {
	return s.Validate()
}

// requireField records requiredField for an empty value and reports whether the value was present.
func requireField(errs domain.ValidationErrors, field, value string) bool {
	if value == "" {
		errs.Add(field, domain.MsgRequiredField)
		return false
	}
	return true
}
