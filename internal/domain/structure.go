package domain

import (
	"fmt"
	"strings"
)

// DefaultSectionCount is the number of sections a new survey starts with.
const DefaultSectionCount = 3

// Section is a named group of survey questions.
type Section struct {
	Name      string     `json:"name" yaml:"name"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Structure is the ordered list of sections that make up a survey.
type Structure struct {
	Sections []Section `json:"sections" yaml:"sections"`
}

// NewDefaultStructure builds a structure with count empty sections named "Section 1".."Section n".
// count is raised to 1 when lower.
func NewDefaultStructure(count int) Structure {
	if count < 1 {
		count = 1
	}
	sections := make([]Section, count)
	for i := range sections {
		sections[i] = Section{Name: fmt.Sprintf("Section %d", i+1), Questions: []Question{}}
	}
	return Structure{Sections: sections}
}

// Clone returns a deep copy.
func (s Structure) Clone() Structure {
	out := Structure{Sections: make([]Section, len(s.Sections))}
	for i, section := range s.Sections {
		out.Sections[i] = section.clone()
	}
	return out
}

// QuestionCount returns the number of questions across all sections.
func (s Structure) QuestionCount() int {
	total := 0
	for _, section := range s.Sections {
		total += len(section.Questions)
	}
	return total
}

// Validate checks every structural invariant and returns the normalised structure.
// Field paths look like "sections[1].questions[0].options".
func (s Structure) Validate() (Structure, ValidationErrors) {
	errs := ValidationErrors{}
	if len(s.Sections) == 0 {
		errs.Add("sections", MsgNeedOneSection)
		return s, errs
	}

	out := Structure{Sections: make([]Section, len(s.Sections))}
	for i, section := range s.Sections {
		prefix := fmt.Sprintf("sections[%d].", i)
		name := strings.TrimSpace(section.Name)
		switch {
		case name == "":
			errs.Add(prefix+"name", MsgRequiredField)
		case s.hasSectionNamed(name, i):
			errs.Add(prefix+"name", MsgExistingSection)
		}

		normalized := Section{Name: name, Questions: make([]Question, 0, len(section.Questions))}
		for j, q := range section.Questions {
			qPrefix := fmt.Sprintf("%squestions[%d].", prefix, j)
			nq, qErrs := q.Validate()
			if qErrs != nil {
				errs.Merge(qPrefix, qErrs)
				continue
			}
			if normalized.hasQuestion(nq.Description) {
				errs.Add(qPrefix+"description", MsgDuplicatedQuestion)
				continue
			}
			normalized.Questions = append(normalized.Questions, nq)
		}
		out.Sections[i] = normalized
	}

	if len(errs) > 0 {
		return s, errs
	}
	return out, nil
}

// hasSectionNamed reports whether a section other than skip carries name (case-insensitive).
func (s Structure) hasSectionNamed(name string, skip int) bool {
	for i, section := range s.Sections {
		if i != skip && sameText(section.Name, name) {
			return true
		}
	}
	return false
}

func (sec Section) clone() Section {
	out := Section{Name: sec.Name, Questions: make([]Question, len(sec.Questions))}
	for i, q := range sec.Questions {
		out.Questions[i] = q.clone()
	}
	return out
}

func (sec Section) hasQuestion(description string) bool {
	for _, q := range sec.Questions {
		if sameText(q.Description, description) {
			return true
		}
	}
	return false
}
