package services

import (
	"testing"

	"roommate_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func marshalRaw(t *testing.T, doc bson.M) bson.Raw {
	t.Helper()
	b, err := bson.Marshal(doc)
	require.NoError(t, err)
	return bson.Raw(b)
}

func TestDecodeProfileRaw(t *testing.T) {
	raw := marshalRaw(t, bson.M{
		"email":                "a@x.com",
		"age":                  int32(23),
		"title":                "Grad student",
		"smoke":                true,
		"preference":           bson.M{"location": bson.A{"Amherst", "Hadley"}, "dietaryPreference": "vegan"},
		"recommendedRoommates": bson.A{"b@x.com", 42, "c@x.com"},
		"favouriteRoommates":   bson.A{"c@x.com"},
	})

	profile, err := decodeProfileRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Equal(t, models.IntScalar(23), profile.Age)
	assert.True(t, profile.Smoke)
	assert.Equal(t, "vegan", profile.Preference.DietaryPreference)
	assert.Equal(t, []string{"Amherst", "Hadley"}, profile.Preference.Location)
	assert.Equal(t, models.ListPresent, profile.Recommendations)
	assert.Equal(t, []string{"b@x.com", "", "c@x.com"}, profile.RecommendedRoommates)
	assert.True(t, profile.IsFavourite("c@x.com"))
}

func TestDecodeProfileRawRecommendationStates(t *testing.T) {
	profile, err := decodeProfileRaw(marshalRaw(t, bson.M{"email": "a@x.com"}))
	require.NoError(t, err)
	assert.Equal(t, models.ListAbsent, profile.Recommendations)

	profile, err = decodeProfileRaw(marshalRaw(t, bson.M{"email": "a@x.com", "recommendedRoommates": "b@x.com"}))
	require.NoError(t, err)
	assert.Equal(t, models.ListMalformed, profile.Recommendations)

	profile, err = decodeProfileRaw(marshalRaw(t, bson.M{"email": "a@x.com", "recommendedRoommates": bson.A{}}))
	require.NoError(t, err)
	assert.Equal(t, models.ListPresent, profile.Recommendations)
	assert.Empty(t, profile.TopMatches())
}

func TestDecodeProfileRawLooseNumbers(t *testing.T) {
	profile, err := decodeProfileRaw(marshalRaw(t, bson.M{
		"email":  "a@x.com",
		"budget": 850.5,
		"age":    "twenty",
	}))
	require.NoError(t, err)
	assert.Equal(t, models.NumberScalar("850.5"), profile.Budget)
	assert.Equal(t, models.StringScalar("twenty"), profile.Age)

	profile, err = decodeProfileRaw(marshalRaw(t, bson.M{"email": "b@x.com"}))
	require.NoError(t, err)
	assert.True(t, profile.Age.IsZero())

	_, err = decodeProfileRaw(marshalRaw(t, bson.M{"email": "c@x.com", "age": bson.A{1}}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"c@x.com"`)
}
