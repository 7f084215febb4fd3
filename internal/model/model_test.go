package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techfest/internal/model"
)

func TestYearUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Year
	}{
		{name: "string form", input: `"2nd"`, want: "2nd"},
		{name: "bare number", input: `3`, want: "3"},
		{name: "numeric string", input: `"2"`, want: "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var y model.Year
			require.NoError(t, json.Unmarshal([]byte(tt.input), &y))
			assert.Equal(t, tt.want, y)
		})
	}

	var y model.Year
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &y))
}

func TestParticipantSportsFieldsNotPersisted(t *testing.T) {
	// The flat sports fields ride along in JSON but must never leak into
	// the nested participant documents of team events.
	data := []byte(`{"name":"A","email":"a@x.com","registrationNo":"123AB45C67",
		"phoneNo":"9876543210","section":"Men","year":"2nd",
		"sportName":"Cricket","department":"CSE","teamName":"T1","role":"Player"}`)

	var p model.Participant
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, "Cricket", p.SportName)
	assert.Equal(t, "CSE", p.Department)
	assert.Equal(t, "T1", p.TeamName)
	assert.Equal(t, "Player", p.Role)
	assert.Equal(t, model.Year("2nd"), p.Year)
}
