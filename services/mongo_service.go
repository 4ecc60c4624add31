package services

import (
	"context"
	"errors"
	"fmt"

	"roommate_server/logging"
	"roommate_server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoService stores profiles and logins in two MongoDB collections
type MongoService struct {
	Client   *mongo.Client
	Profiles *mongo.Collection
	Logins   *mongo.Collection
}

var loginContactProjection = bson.M{"_id": 0, "email": 1, "name": 1, "gender": 1, "phone": 1}

// ConnectMongo dials uri and checks the connection with a ping
func ConnectMongo(ctx context.Context, uri, database string) (*MongoService, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(database)
	return &MongoService{
		Client:   client,
		Profiles: db.Collection(models.ProfilesCollection),
		Logins:   db.Collection(models.LoginsCollection),
	}, nil
}

// Close disconnects the underlying client
func (ms *MongoService) Close(ctx context.Context) error {
	return ms.Client.Disconnect(ctx)
}

// FindProfile implements ProfileStore
func (ms *MongoService) FindProfile(ctx context.Context, email string) (*models.ProfileRecord, error) {
	var raw bson.Raw
	err := ms.Profiles.FindOne(ctx, bson.M{"email": email}, options.FindOne().SetProjection(bson.M{"_id": 0})).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile %s: %w", email, err)
	}
	return decodeProfileRaw(raw)
}

// decodeProfileRaw decodes a profile document. recommendedRoommates is read
// by hand so a non-array value is flagged instead of failing the decode.
func decodeProfileRaw(raw bson.Raw) (*models.ProfileRecord, error) {
	var profile models.ProfileRecord
	if err := bson.Unmarshal(raw, &profile); err != nil {
		email, _ := raw.Lookup("email").StringValueOK()
		return nil, fmt.Errorf("failed to decode profile %q: %w", email, err)
	}

	val, err := raw.LookupErr("recommendedRoommates")
	if err != nil {
		profile.Recommendations = models.ListAbsent
		return &profile, nil
	}
	if val.Type != bson.TypeArray {
		profile.Recommendations = models.ListMalformed
		return &profile, nil
	}

	elems, err := val.Array().Values()
	if err != nil {
		return nil, fmt.Errorf("failed to read recommendedRoommates: %w", err)
	}
	profile.RecommendedRoommates = make([]string, 0, len(elems))
	for _, elem := range elems {
		s, _ := elem.StringValueOK()
		profile.RecommendedRoommates = append(profile.RecommendedRoommates, s)
	}
	profile.Recommendations = models.ListPresent
	return &profile, nil
}

// ListProfilesExcluding implements ProfileStore using $nin
func (ms *MongoService) ListProfilesExcluding(ctx context.Context, emails []string) ([]models.ProfileRecord, error) {
	if emails == nil {
		emails = []string{}
	}
	cursor, err := ms.Profiles.Find(ctx, bson.M{"email": bson.M{"$nin": emails}})
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []models.ProfileRecord{}
	for cursor.Next(ctx) {
		profile, err := decodeProfileRaw(cursor.Current)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("skipping undecodable profile")
			continue
		}
		profiles = append(profiles, *profile)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}
	return profiles, nil
}

// AddFavourite implements ProfileStore with $addToSet and upsert
func (ms *MongoService) AddFavourite(ctx context.Context, userEmail, favEmail string) error {
	result, err := ms.Profiles.UpdateOne(ctx,
		bson.M{"email": userEmail},
		bson.M{"$addToSet": bson.M{"favouriteRoommates": favEmail}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to add favourite for %s: %w", userEmail, err)
	}
	if result.MatchedCount == 0 && result.UpsertedCount == 0 {
		return models.ErrNoDocument
	}
	return nil
}

// RemoveFavourite implements ProfileStore with $pull and no upsert
func (ms *MongoService) RemoveFavourite(ctx context.Context, userEmail, favEmail string) error {
	result, err := ms.Profiles.UpdateOne(ctx,
		bson.M{"email": userEmail},
		bson.M{"$pull": bson.M{"favouriteRoommates": favEmail}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove favourite for %s: %w", userEmail, err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNoDocument
	}
	return nil
}

// FindLogin implements LoginStore
func (ms *MongoService) FindLogin(ctx context.Context, email string) (*models.LoginRecord, error) {
	return ms.findLogin(ctx, email, bson.M{"_id": 0})
}

// FindLoginContact implements LoginStore
func (ms *MongoService) FindLoginContact(ctx context.Context, email string) (*models.LoginRecord, error) {
	return ms.findLogin(ctx, email, loginContactProjection)
}

func (ms *MongoService) findLogin(ctx context.Context, email string, projection bson.M) (*models.LoginRecord, error) {
	var login models.LoginRecord
	err := ms.Logins.FindOne(ctx, bson.M{"email": email}, options.FindOne().SetProjection(projection)).Decode(&login)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find login %s: %w", email, err)
	}
	return &login, nil
}

// InsertLogin implements LoginStore. There is no unique index on email.
func (ms *MongoService) InsertLogin(ctx context.Context, login models.LoginRecord) error {
	if _, err := ms.Logins.InsertOne(ctx, login); err != nil {
		return fmt.Errorf("failed to insert login %s: %w", login.Email, err)
	}
	return nil
}
