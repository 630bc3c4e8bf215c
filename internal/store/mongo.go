package store

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coachconnect/backend/internal/models"
)

type MongoProfileStore struct {
	client      *mongo.Client
	db          *mongo.Database
	profilesCol *mongo.Collection
}

func NewMongoProfileStore(ctx context.Context, mongoURI, dbName string) (*MongoProfileStore, error) {
	tlsCfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
		MaxVersion: tls.VersionTLS12,
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI).SetTLSConfig(tlsCfg))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	col := db.Collection("profiles")

	// Best-effort unique index on the lookup key.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoProfileStore{
		client:      client,
		db:          db,
		profilesCol: col,
	}, nil
}

func (s *MongoProfileStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoProfileStore) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var prof models.Profile
	if err := s.profilesCol.FindOne(ctx, bson.M{"user_id": userID}).Decode(&prof); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &prof, nil
}

// Upsert merges the patch into the document keyed by userID, creating it if
// absent. Fields not present in the patch are never written, so repeated
// calls with the same patch converge on the same stored document.
func (s *MongoProfileStore) Upsert(ctx context.Context, userID string, patch *ProfilePatch) (*models.Profile, error) {
	now := time.Now().UTC()

	set := patchToSet(patch)
	set["updated_at"] = now

	setOnInsert := bson.M{
		"user_id":    userID,
		"created_at": now,
	}

	_, err := s.profilesCol.UpdateOne(
		ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": set, "$setOnInsert": setOnInsert},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}

	var prof models.Profile
	if err := s.profilesCol.FindOne(ctx, bson.M{"user_id": userID}).Decode(&prof); err != nil {
		return nil, err
	}
	return &prof, nil
}

// patchToSet converts the non-nil patch fields into a $set document.
func patchToSet(p *ProfilePatch) bson.M {
	set := bson.M{}
	setString := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	setStrings := func(key string, v []string) {
		if v != nil {
			set[key] = v
		}
	}

	if p.UserType != nil {
		set["user_type"] = *p.UserType
	}
	setString("full_name", p.FullName)
	setString("email", p.Email)
	setString("location", p.Location)

	setString("company", p.Company)
	setString("role", p.Role)
	setString("team_size", p.TeamSize)
	setStrings("goals", p.Goals)
	setString("budget", p.Budget)
	setString("timeline", p.Timeline)
	setString("client_experience", p.ClientExperience)
	setString("industry", p.Industry)

	setString("title", p.Title)
	setStrings("specialties", p.Specialties)
	setStrings("industries", p.Industries)
	setString("coach_experience", p.CoachExperience)
	setString("hourly_rate", p.HourlyRate)
	setStrings("certifications", p.Certifications)
	setString("coaching_style", p.CoachingStyle)
	setString("ideal_client", p.IdealClient)

	setString("tagline", p.Tagline)
	setString("success_rate", p.SuccessRate)
	setString("clients", p.Clients)
	setString("bio", p.Bio)
	setString("contact_email", p.ContactEmail)
	setString("phone", p.Phone)
	setString("website", p.Website)
	if p.SocialLinks != nil {
		set["social_links"] = p.SocialLinks
	}
	setString("education", p.Education)
	setStrings("languages", p.Languages)

	if p.ProfileComplete != nil {
		set["profile_complete"] = *p.ProfileComplete
	}
	if p.OnboardingComplete != nil {
		set["onboarding_complete"] = *p.OnboardingComplete
	}
	return set
}
