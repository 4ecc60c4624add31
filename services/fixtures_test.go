package services

import (
	"context"
	"errors"
	"fmt"

	"roommate_server/models"
)

const requesterEmail = "admin@umass.edu"

func roommateEmail(i int) string {
	return fmt.Sprintf("mate%d@getmearoommate.com", i)
}

// seedStore builds a store with a requester recommended mates 1..7 and
// favourite mate 2. Every mate has a profile and a login.
func seedStore() *MemoryStore {
	store := NewMemoryStore()

	recommended := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		recommended = append(recommended, roommateEmail(i))
	}
	store.PutProfile(models.ProfileRecord{
		Email:                requesterEmail,
		RecommendedRoommates: recommended,
		Recommendations:      models.ListPresent,
		FavouriteRoommates:   []string{roommateEmail(2)},
	})
	_ = store.InsertLogin(context.Background(), models.LoginRecord{
		Email: requesterEmail, Name: "Admin", Password: "test@123", Gender: "male",
	})

	for i := 1; i <= 7; i++ {
		store.PutProfile(models.ProfileRecord{
			Email:      roommateEmail(i),
			Age:        models.IntScalar(20 + i),
			StartDate:  "2024-03-15",
			Title:      fmt.Sprintf("Mate %d", i),
			Preference: models.Preference{Location: []string{"Amherst"}, DietaryPreference: "veg"},
			Smoke:      i%2 == 0,
			Budget:     models.IntScalar(800 + i),
		})
		_ = store.InsertLogin(context.Background(), models.LoginRecord{
			Email: roommateEmail(i), Name: fmt.Sprintf("Mate %d", i), Phone: "555-000" + fmt.Sprint(i),
		})
	}
	return store
}

var errStoreDown = errors.New("store unavailable")

// brokenLogins fails every contact lookup
type brokenLogins struct {
	*MemoryStore
}

func (b brokenLogins) FindLoginContact(context.Context, string) (*models.LoginRecord, error) {
	return nil, errStoreDown
}

// brokenProfiles fails every profile read and update
type brokenProfiles struct {
	*MemoryStore
}

func (b brokenProfiles) FindProfile(context.Context, string) (*models.ProfileRecord, error) {
	return nil, errStoreDown
}

func (b brokenProfiles) AddFavourite(context.Context, string, string) error {
	return errStoreDown
}
