package models

// ListState tells whether recommendedRoommates was missing, a list, or something else
type ListState int

const (
	ListAbsent ListState = iota
	ListPresent
	ListMalformed
)

// Preference holds the housing preferences nested under "preference"
type Preference struct {
	Location          []string `dynamodbav:"location,omitempty" bson:"location,omitempty" json:"location"`
	DietaryPreference string   `dynamodbav:"dietaryPreference,omitempty" bson:"dietaryPreference,omitempty" json:"dietaryPreference"`
}

// ProfileRecord is a document of the profile collection, keyed by email.
// RecommendedRoommates is decoded by each store adapter itself so a wrongly typed
// value is reported through Recommendations instead of failing the read.
// Non-string list entries keep their position as "" and never match a user.
type ProfileRecord struct {
	Email                string     `dynamodbav:"email" bson:"email" json:"email"`
	Age                  Scalar     `dynamodbav:"age,omitempty" bson:"age,omitempty" json:"age"`
	StartDate            string     `dynamodbav:"startDate,omitempty" bson:"startDate,omitempty" json:"startDate"`
	Title                string     `dynamodbav:"title,omitempty" bson:"title,omitempty" json:"title"`
	Preference           Preference `dynamodbav:"preference,omitempty" bson:"preference,omitempty" json:"preference"`
	Smoke                bool       `dynamodbav:"smoke,omitempty" bson:"smoke,omitempty" json:"smoke"`
	Drink                bool       `dynamodbav:"drink,omitempty" bson:"drink,omitempty" json:"drink"`
	Budget               Scalar     `dynamodbav:"budget,omitempty" bson:"budget,omitempty" json:"budget"`
	PhotoURL             string     `dynamodbav:"photoUrl,omitempty" bson:"photoUrl,omitempty" json:"photoUrl"`
	FavouriteRoommates   []string   `dynamodbav:"favouriteRoommates,stringset,omitempty" bson:"favouriteRoommates,omitempty" json:"favouriteRoommates"`
	RecommendedRoommates []string   `dynamodbav:"-" bson:"-" json:"recommendedRoommates"`
	Recommendations      ListState  `dynamodbav:"-" bson:"-" json:"-"`
}

// TopMatches returns the first TopMatchLimit recommended entries in list
// order, placeholders included
func (p *ProfileRecord) TopMatches() []string {
	if len(p.RecommendedRoommates) <= TopMatchLimit {
		return p.RecommendedRoommates
	}
	return p.RecommendedRoommates[:TopMatchLimit]
}

// IsFavourite reports whether email is in this profile's favourites
func (p *ProfileRecord) IsFavourite(email string) bool {
	for _, fav := range p.FavouriteRoommates {
		if fav == email {
			return true
		}
	}
	return false
}

// PhotoURLOrDefault returns the stored photo URL or the placeholder image
func (p *ProfileRecord) PhotoURLOrDefault() string {
	if p.PhotoURL == "" {
		return DefaultPhotoURL
	}
	return p.PhotoURL
}
