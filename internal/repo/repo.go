package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"techfest/internal/model"
	"techfest/internal/schema"
)

var (
	ErrDuplicateRegistration = errors.New("duplicate registration")
	ErrTeamNotFound          = errors.New("hackathon team not found")
)

type Repository interface {
	EnsureIndexes(ctx context.Context) error

	// TeamMemberExists reports whether any record in the collection already
	// embeds a participant with the given registration number.
	TeamMemberExists(ctx context.Context, collection, regNo string) (bool, error)
	SportsEntryExists(ctx context.Context, regNo string) (bool, error)
	CulturalEntryExists(ctx context.Context, regNo, eventName string) (bool, error)

	InsertCodingChallenge(ctx context.Context, r *model.CodingChallenge) error
	InsertCodeHunt(ctx context.Context, r *model.CodeHunt) error
	InsertPosterPresentation(ctx context.Context, r *model.PosterPresentation) error
	InsertTechnicalQuiz(ctx context.Context, r *model.TechnicalQuiz) error
	InsertSports(ctx context.Context, r *model.Sports) error
	InsertHackathonTeam(ctx context.Context, r *model.HackathonTeam) error
	InsertCultural(ctx context.Context, r *model.Cultural) error

	ListCodingChallenges(ctx context.Context) ([]model.CodingChallenge, error)
	ListCodeHunts(ctx context.Context) ([]model.CodeHunt, error)
	ListPosterPresentations(ctx context.Context) ([]model.PosterPresentation, error)
	ListTechnicalQuizzes(ctx context.Context) ([]model.TechnicalQuiz, error)
	ListSports(ctx context.Context) ([]model.Sports, error)
	ListHackathonTeams(ctx context.Context) ([]model.HackathonTeam, error)
	ListCulturals(ctx context.Context, eventName string) ([]model.Cultural, error)
	ListGeneric(ctx context.Context, eventName string) ([]model.GenericRegistration, error)

	UpdateHackathonScores(ctx context.Context, teamNo string, uiux, backend, frontend, deployed int, status string) error
}

type repository struct {
	db  *mongo.Database
	log *zerolog.Logger
}

func NewRepository(db *mongo.Database, log *zerolog.Logger) (Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &repository{db: db, log: log}, nil
}

// EnsureIndexes declares the uniqueness constraints the duplicate policy
// relies on. The pre-insert existence checks give friendly errors, but these
// indexes are what actually closes the check-then-insert race.
func (r *repository) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	memberKey := bson.D{{Key: "participants.registrationNo", Value: 1}}
	for _, coll := range []string{
		schema.CollCodingChallenges,
		schema.CollCodeHunts,
		schema.CollPosterPresentation,
		schema.CollTechnicalQuizzes,
		schema.CollHackathons,
	} {
		if _, err := r.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    memberKey,
			Options: unique,
		}); err != nil {
			return fmt.Errorf("create index on %s: %w", coll, err)
		}
	}

	compound := bson.D{{Key: "registrationNo", Value: 1}, {Key: "eventName", Value: 1}}
	for _, coll := range []string{schema.CollSports, schema.CollCulturals} {
		if _, err := r.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    compound,
			Options: unique,
		}); err != nil {
			return fmt.Errorf("create index on %s: %w", coll, err)
		}
	}

	if _, err := r.db.Collection(schema.CollHackathons).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "teamName", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("create teamName index: %w", err)
	}

	if _, err := r.db.Collection(schema.CollGeneric).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "eventName", Value: 1}},
	}); err != nil {
		return fmt.Errorf("create eventName index: %w", err)
	}

	r.log.Info().Msg("mongo indexes ensured")
	return nil
}

func (r *repository) exists(ctx context.Context, collection string, filter bson.M) (bool, error) {
	err := r.db.Collection(collection).FindOne(ctx, filter).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, fmt.Errorf("query %s: %w", collection, err)
}

func (r *repository) TeamMemberExists(ctx context.Context, collection, regNo string) (bool, error) {
	return r.exists(ctx, collection, bson.M{"participants.registrationNo": regNo})
}

func (r *repository) SportsEntryExists(ctx context.Context, regNo string) (bool, error) {
	return r.exists(ctx, schema.CollSports, bson.M{"registrationNo": regNo})
}

func (r *repository) CulturalEntryExists(ctx context.Context, regNo, eventName string) (bool, error) {
	return r.exists(ctx, schema.CollCulturals, bson.M{"registrationNo": regNo, "eventName": eventName})
}

func (r *repository) insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	res, err := r.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateRegistration
		}
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", collection, err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *repository) InsertCodingChallenge(ctx context.Context, reg *model.CodingChallenge) error {
	id, err := r.insert(ctx, schema.CollCodingChallenges, reg)
	if err != nil {
		return err
	}
	reg.ID = id
	return nil
}

func (r *repository) InsertCodeHunt(ctx context.Context, reg *model.CodeHunt) error {
	id, err := r.insert(ctx, schema.CollCodeHunts, reg)
	if err != nil {
		return err
	}
	reg.ID = id
	return nil
}

func (r *repository) InsertPosterPresentation(ctx context.Context, reg *model.PosterPresentation) error {
	id, err := r.insert(ctx, schema.CollPosterPresentation, reg)
	if err != nil {
		return err
	}
	reg.ID = id
	return nil
}

func (r *repository) InsertTechnicalQuiz(ctx context.Context, reg *model.TechnicalQuiz) error {
	id, err := r.insert(ctx, schema.CollTechnicalQuizzes, reg)
	if err != nil {
		return err
	}
	reg.ID = id
	return nil
}

func (r *repository) InsertSports(ctx context.Context, reg *model.Sports) error {
	id, err := r.insert(ctx, schema.CollSports, reg)
	if err != nil {
		return err
	}
	reg.ID = id
	return nil
}

func (r *repository) InsertHackathonTeam(ctx context.Context, reg *model.HackathonTeam) error {
	id, err := r.insert(ctx, schema.CollHackathons, reg)
	if err != nil {
		return err
	}
	reg.ID = id
	return nil
}

func (r *repository) InsertCultural(ctx context.Context, reg *model.Cultural) error {
	id, err := r.insert(ctx, schema.CollCulturals, reg)
	if err != nil {
		return err
	}
	reg.ID = id
	return nil
}

func list[T any](ctx context.Context, r *repository, collection string, filter bson.M) ([]T, error) {
	cur, err := r.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s results: %w", collection, err)
	}
	return out, nil
}

func (r *repository) ListCodingChallenges(ctx context.Context) ([]model.CodingChallenge, error) {
	return list[model.CodingChallenge](ctx, r, schema.CollCodingChallenges, bson.M{})
}

func (r *repository) ListCodeHunts(ctx context.Context) ([]model.CodeHunt, error) {
	return list[model.CodeHunt](ctx, r, schema.CollCodeHunts, bson.M{})
}

func (r *repository) ListPosterPresentations(ctx context.Context) ([]model.PosterPresentation, error) {
	return list[model.PosterPresentation](ctx, r, schema.CollPosterPresentation, bson.M{})
}

func (r *repository) ListTechnicalQuizzes(ctx context.Context) ([]model.TechnicalQuiz, error) {
	return list[model.TechnicalQuiz](ctx, r, schema.CollTechnicalQuizzes, bson.M{})
}

func (r *repository) ListSports(ctx context.Context) ([]model.Sports, error) {
	return list[model.Sports](ctx, r, schema.CollSports, bson.M{})
}

func (r *repository) ListHackathonTeams(ctx context.Context) ([]model.HackathonTeam, error) {
	return list[model.HackathonTeam](ctx, r, schema.CollHackathons, bson.M{})
}

// ListCulturals returns every cultural registration, or only those for one
// event when eventName is non-empty.
func (r *repository) ListCulturals(ctx context.Context, eventName string) ([]model.Cultural, error) {
	filter := bson.M{}
	if eventName != "" {
		filter["eventName"] = eventName
	}
	return list[model.Cultural](ctx, r, schema.CollCulturals, filter)
}

func (r *repository) ListGeneric(ctx context.Context, eventName string) ([]model.GenericRegistration, error) {
	return list[model.GenericRegistration](ctx, r, schema.CollGeneric, bson.M{"eventName": eventName})
}

func (r *repository) UpdateHackathonScores(ctx context.Context, teamNo string, uiux, backend, frontend, deployed int, status string) error {
	set := bson.M{
		"uiux":     uiux,
		"backend":  backend,
		"frontend": frontend,
		"deployed": deployed,
	}
	if status != "" {
		set["status"] = status
	}

	res, err := r.db.Collection(schema.CollHackathons).UpdateOne(ctx,
		bson.M{"teamNo": teamNo},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("update hackathon scores: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrTeamNotFound
	}
	return nil
}
