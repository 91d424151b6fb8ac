package models

import (
	"testing"

	"survey-console/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructureJSON_Value(t *testing.T) {
	v, err := StructureJSON{}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"sections":[]}`, v)

	s := StructureJSON{Sections: []domain.Section{{Name: "A", Questions: []domain.Question{
		{Description: "Pick", Type: domain.QuestionTypeRadio, Options: []string{"x"}},
	}}}}
	v, err = s.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections":[{"name":"A","questions":[{"description":"Pick","type":"radio","options":["x"]}]}]}`, v.(string))
}

func TestStructureJSON_Scan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  int
	}{
		{"nil", nil, 0},
		{"empty bytes", []byte{}, 0},
		{"null literal", "null", 0},
		{"string", `{"sections":[{"name":"A","questions":[]},{"name":"B","questions":[]}]}`, 2},
		{"bytes", []byte(`{"sections":[{"name":"A","questions":[]}]}`), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StructureJSON
			require.NoError(t, s.Scan(tt.input))
			assert.Len(t, s.Sections, tt.want)
			assert.NotNil(t, s.Sections)
		})
	}

	var s StructureJSON
	assert.Error(t, s.Scan(42))
	assert.Error(t, s.Scan("{broken"))
}
