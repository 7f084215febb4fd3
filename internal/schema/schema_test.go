package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techfest/internal/schema"
)

func TestLookupKnownEvents(t *testing.T) {
	tests := []struct {
		event      string
		teamSize   int
		exactCount bool
		teamChecks bool
		flat       bool
		collection string
	}{
		{"Coding Challenge", 1, true, false, false, schema.CollCodingChallenges},
		{"Code Hunt", 3, true, true, false, schema.CollCodeHunts},
		{"Poster Presentation", 1, true, false, false, schema.CollPosterPresentation},
		{"Technical Quiz", 4, true, true, false, schema.CollTechnicalQuizzes},
		{"Sports", 1, false, false, true, schema.CollSports},
		{"Hackathon", 5, false, true, false, schema.CollHackathons},
	}
	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			d, ok := schema.Lookup(tt.event)
			require.True(t, ok)
			assert.Equal(t, tt.event, d.Name)
			assert.Equal(t, tt.teamSize, d.TeamSize)
			assert.Equal(t, tt.exactCount, d.ExactCount)
			assert.Equal(t, tt.teamChecks, d.TeamChecks)
			assert.Equal(t, tt.flat, d.Flat)
			assert.Equal(t, tt.collection, d.Collection)
		})
	}
}

func TestLookupFailsClosed(t *testing.T) {
	for _, name := range []string{"", "coding challenge", "Chess", "Cultural", "CODE HUNT"} {
		_, ok := schema.Lookup(name)
		assert.False(t, ok, "event %q must not resolve", name)
	}
}

func TestExtraFieldRequirements(t *testing.T) {
	hunt, _ := schema.Lookup("Code Hunt")
	assert.True(t, hunt.NeedsTeamName)

	quiz, _ := schema.Lookup("Technical Quiz")
	assert.True(t, quiz.NeedsTeamName)

	poster, _ := schema.Lookup("Poster Presentation")
	assert.True(t, poster.NeedsTopic)

	hack, _ := schema.Lookup("Hackathon")
	assert.True(t, hack.NeedsHackathonFields)

	coding, _ := schema.Lookup("Coding Challenge")
	assert.False(t, coding.NeedsTeamName || coding.NeedsTopic || coding.NeedsHackathonFields)
}

func TestNamesCoversRegistry(t *testing.T) {
	names := schema.Names()
	assert.Len(t, names, 6)
	for _, name := range names {
		_, ok := schema.Lookup(name)
		assert.True(t, ok)
	}
}
