package domain

import (
	"strings"
)

// QuestionType identifies how a question is presented and answered.
type QuestionType string

const (
	QuestionTypeHeader    QuestionType = "header"
	QuestionTypeText      QuestionType = "text"
	QuestionTypeTextArea  QuestionType = "textarea"
	QuestionTypeDate      QuestionType = "date"
	QuestionTypeSelect    QuestionType = "select"
	QuestionTypeRadio     QuestionType = "radio"
	QuestionTypeChecklist QuestionType = "checklist"
)

// QuestionTypeInfo describes a question type for clients building a type picker.
type QuestionTypeInfo struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Label       string       `json:"label"`
	NeedOptions bool         `json:"need_options"`
}

var questionTypes = []QuestionTypeInfo{
	{ID: "1", Type: QuestionTypeHeader, Label: "Header"},
	{ID: "2", Type: QuestionTypeText, Label: "Text"},
	{ID: "3", Type: QuestionTypeTextArea, Label: "TextArea"},
	{ID: "4", Type: QuestionTypeDate, Label: "Date"},
	{ID: "5", Type: QuestionTypeSelect, Label: "Select", NeedOptions: true},
	{ID: "6", Type: QuestionTypeRadio, Label: "Radio", NeedOptions: true},
	{ID: "7", Type: QuestionTypeChecklist, Label: "Checklist", NeedOptions: true},
}

// QuestionTypes returns the supported question types in display order.
func QuestionTypes() []QuestionTypeInfo {
	out := make([]QuestionTypeInfo, len(questionTypes))
	copy(out, questionTypes)
	return out
}

// ParseQuestionType accepts a type name (any case) or the numeric code used by older clients.
func ParseQuestionType(raw string) (QuestionType, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, info := range questionTypes {
		if value == info.ID || value == string(info.Type) {
			return info.Type, true
		}
	}
	return "", false
}

// NeedsOptions reports whether answers are picked from a list of options.
func (t QuestionType) NeedsOptions() bool {
	switch t {
	case QuestionTypeSelect, QuestionTypeRadio, QuestionTypeChecklist:
		return true
	}
	return false
}

// Question is a single survey prompt.
type Question struct {
	Description string       `json:"description" yaml:"description"`
	Type        QuestionType `json:"type" yaml:"type"`
	Options     []string     `json:"options,omitempty" yaml:"options,omitempty"`
}

// Validate checks the question rules and returns the normalised question.
// Options are trimmed, blanks dropped, and cleared entirely for types that take none.
func (q Question) Validate() (Question, ValidationErrors) {
	errs := ValidationErrors{}
	normalized := Question{Description: strings.TrimSpace(q.Description)}

	if normalized.Description == "" {
		errs.Add("description", MsgRequiredField)
	}

	if strings.TrimSpace(string(q.Type)) == "" {
		errs.Add("type", MsgRequiredField)
	} else if qt, ok := ParseQuestionType(string(q.Type)); !ok {
		errs.Add("type", MsgInvalidOption)
	} else {
		normalized.Type = qt
	}

	if normalized.Type.NeedsOptions() {
		for _, opt := range q.Options {
			if trimmed := strings.TrimSpace(opt); trimmed != "" {
				normalized.Options = append(normalized.Options, trimmed)
			}
		}
		if len(normalized.Options) == 0 {
			errs.Add("options", MsgRequiredField)
		}
	}

	return normalized, errs.OrNil()
}

func (q Question) clone() Question {
	out := q
	if q.Options != nil {
		out.Options = append([]string(nil), q.Options...)
	}
	return out
}

func sameText(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
