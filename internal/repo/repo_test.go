package repo_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"techfest/internal/model"
	"techfest/internal/repo"
	"techfest/internal/schema"
)

// Integration test against a real MongoDB. Set MONGO_TEST_URL to run it, e.g.
//
//	MONGO_TEST_URL=mongodb://localhost:27017 go test ./internal/repo/...
func TestRepositoryIntegration(t *testing.T) {
	url := os.Getenv("MONGO_TEST_URL")
	if url == "" {
		t.Skip("MONGO_TEST_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, readpref.Primary()))
	defer client.Disconnect(context.Background())

	db := client.Database(fmt.Sprintf("techfest_test_%d", time.Now().UnixNano()))
	defer db.Drop(context.Background())

	logger := zerolog.Nop()
	r, err := repo.NewRepository(db, &logger)
	require.NoError(t, err)
	require.NoError(t, r.EnsureIndexes(ctx))

	sports := &model.Sports{
		EventName:      "Sports",
		Name:           "A",
		Email:          "a@x.com",
		RegistrationNo: "123AB45C67",
		Section:        "Men",
		SportName:      "Cricket",
		Year:           "2nd",
		Department:     "CSE",
		TeamName:       "T1",
		Role:           "Player",
		PhoneNo:        "9876543210",
		RegisteredAt:   time.Now(),
	}
	require.NoError(t, r.InsertSports(ctx, sports))
	assert.False(t, sports.ID.IsZero())

	exists, err := r.SportsEntryExists(ctx, "123AB45C67")
	require.NoError(t, err)
	assert.True(t, exists)

	// The unique index must reject the second insert even without a pre-check.
	dup := *sports
	dup.ID = primitive.NilObjectID
	err = r.InsertSports(ctx, &dup)
	assert.ErrorIs(t, err, repo.ErrDuplicateRegistration)

	hunt := &model.CodeHunt{
		EventName: "Code Hunt",
		TeamName:  "Null Pointers",
		Participants: []model.Participant{
			{Name: "Asha", Email: "asha@x.com", RegistrationNo: "141AB45C67", PhoneNo: "9876543210", Section: "B", Year: "2nd"},
			{Name: "Ravi", Email: "ravi@x.com", RegistrationNo: "142AB45C67", PhoneNo: "9876543210", Section: "B", Year: "2nd"},
			{Name: "Kiran", Email: "kiran@x.com", RegistrationNo: "143AB45C67", PhoneNo: "9876543210", Section: "B", Year: "3rd"},
		},
		RegisteredAt: time.Now(),
	}
	require.NoError(t, r.InsertCodeHunt(ctx, hunt))

	exists, err = r.TeamMemberExists(ctx, schema.CollCodeHunts, "142AB45C67")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.TeamMemberExists(ctx, schema.CollCodeHunts, "999AB45C67")
	require.NoError(t, err)
	assert.False(t, exists)

	hunts, err := r.ListCodeHunts(ctx)
	require.NoError(t, err)
	require.Len(t, hunts, 1)
	assert.Equal(t, "Null Pointers", hunts[0].TeamName)

	team := &model.HackathonTeam{
		TeamName:         "ByteForce",
		TeamNo:           "H-07",
		ProblemStatement: "Smart campus navigation",
		Participants: []model.Participant{
			{Name: "A", Email: "a@x.com", RegistrationNo: "221AB45C67", PhoneNo: "9876543210", Section: "B", Year: "3rd"},
			{Name: "B", Email: "b@x.com", RegistrationNo: "222AB45C67", PhoneNo: "9876543210", Section: "B", Year: "3rd"},
			{Name: "C", Email: "c@x.com", RegistrationNo: "223AB45C67", PhoneNo: "9876543210", Section: "B", Year: "3rd"},
			{Name: "D", Email: "d@x.com", RegistrationNo: "224AB45C67", PhoneNo: "9876543210", Section: "B", Year: "2nd"},
			{Name: "E", Email: "e@x.com", RegistrationNo: "225AB45C67", PhoneNo: "9876543210", Section: "B", Year: "2nd"},
		},
		Status:       "registered",
		RegisteredAt: time.Now(),
	}
	require.NoError(t, r.InsertHackathonTeam(ctx, team))

	require.NoError(t, r.UpdateHackathonScores(ctx, "H-07", 8, 9, 7, 10, "judged"))
	teams, err := r.ListHackathonTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, 8, teams[0].UIUX)
	assert.Equal(t, "judged", teams[0].Status)

	assert.ErrorIs(t, r.UpdateHackathonScores(ctx, "H-99", 0, 0, 0, 0, ""), repo.ErrTeamNotFound)

	cult := &model.Cultural{
		EventName:      "Singing",
		Name:           "Meera",
		Email:          "meera@x.com",
		RegistrationNo: "151AB45C67",
		PhoneNo:        "9876543210",
		Section:        "C",
		Year:           "3rd",
		RegisteredAt:   time.Now(),
	}
	require.NoError(t, r.InsertCultural(ctx, cult))

	exists, err = r.CulturalEntryExists(ctx, "151AB45C67", "Singing")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.CulturalEntryExists(ctx, "151AB45C67", "Dance")
	require.NoError(t, err)
	assert.False(t, exists)
}
