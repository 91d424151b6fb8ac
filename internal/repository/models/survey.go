package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"survey-console/internal/domain"
)

// StructureJSON stores a survey structure as a JSON document in a CLOB/TEXT column.
type StructureJSON domain.Structure

// Value implements the driver.Valuer interface
func (s StructureJSON) Value() (driver.Value, error) {
	if s.Sections == nil {
		s.Sections = []domain.Section{}
	}
	data, err := json.Marshal(domain.Structure(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface. NULL, empty and "null" read as an empty structure.
func (s *StructureJSON) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*s = StructureJSON{Sections: []domain.Section{}}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("StructureJSON Scan: unsupported type %T", value)
	}

	if len(data) == 0 || string(data) == "null" {
		*s = StructureJSON{Sections: []domain.Section{}}
		return nil
	}

	var out domain.Structure
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("StructureJSON Scan: %w", err)
	}
	*s = StructureJSON(out)
	return nil
}

// Survey represents a row of SURVEYS.
type Survey struct {
	ID               string         `db:"ID"`
	Name             string         `db:"NAME"`
	IntroductionText sql.NullString `db:"INTRODUCTION_TEXT"`
	AddTerms         int            `db:"ADD_TERMS"`
	TermsConditions  sql.NullString `db:"TERMS_CONDITIONS"`
	State            int            `db:"STATE"`
	Structure        StructureJSON  `db:"STRUCTURE"`
	CreatedAt        time.Time      `db:"CREATED_AT"`
	UpdatedAt        time.Time      `db:"UPDATED_AT"`
}
