package services

import (
	"context"
	"errors"
	"testing"

	"roommate_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardEmails(cards []models.RoommateCard) []string {
	emails := make([]string, 0, len(cards))
	for _, c := range cards {
		emails = append(emails, c.Email)
	}
	return emails
}

func TestTopMatchesReturnsFirstFiveInOrder(t *testing.T) {
	store := seedStore()
	svc := &RoommateService{Profiles: store, Logins: store}

	cards, err := svc.TopMatches(context.Background(), requesterEmail)
	require.NoError(t, err)
	assert.Equal(t, []string{
		roommateEmail(1), roommateEmail(2), roommateEmail(3), roommateEmail(4), roommateEmail(5),
	}, cardEmails(cards))

	first := cards[0]
	assert.Equal(t, "Mate 1", first.Name)
	assert.Equal(t, models.IntScalar(21), first.Age)
	assert.Equal(t, "Mar 2024", first.StartDate)
	assert.Equal(t, []string{"Amherst"}, first.Locations)
	assert.Equal(t, "other", first.Gender)
	assert.Equal(t, models.DefaultPhotoURL, first.PhotoURL)
	assert.Equal(t, "555-0001", first.Phone)
	assert.False(t, first.IsFav)
	assert.True(t, cards[1].IsFav)
}

func TestTopMatchesShortListAndMissingJoins(t *testing.T) {
	store := seedStore()
	store.PutProfile(models.ProfileRecord{
		Email: requesterEmail,
		// ghost has no profile and is skipped
		RecommendedRoommates: []string{roommateEmail(3), "ghost@x.com", roommateEmail(1)},
		Recommendations:      models.ListPresent,
	})
	svc := &RoommateService{Profiles: store, Logins: store}

	cards, err := svc.TopMatches(context.Background(), requesterEmail)
	require.NoError(t, err)
	assert.Equal(t, []string{roommateEmail(3), roommateEmail(1)}, cardEmails(cards))

	noLogin := NewMemoryStore()
	noLogin.PutProfile(models.ProfileRecord{
		Email:                requesterEmail,
		RecommendedRoommates: []string{"nologin@x.com"},
		Recommendations:      models.ListPresent,
	})
	noLogin.PutProfile(models.ProfileRecord{Email: "nologin@x.com"})
	_ = noLogin.InsertLogin(context.Background(), models.LoginRecord{Email: requesterEmail})

	svc = &RoommateService{Profiles: noLogin, Logins: noLogin}
	cards, err = svc.TopMatches(context.Background(), requesterEmail)
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestTopMatchesErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(*MemoryStore)
		email string
		kind  error
		msg   string
	}{
		{
			name:  "missing email",
			email: "",
			kind:  models.ErrBadRequest,
			msg:   models.MsgEmailRequired,
		},
		{
			name:  "unknown profile",
			email: "nobody@x.com",
			kind:  models.ErrNotFound,
			msg:   models.MsgNoRecommendations,
		},
		{
			name: "profile without recommendations",
			setup: func(s *MemoryStore) {
				s.PutProfile(models.ProfileRecord{Email: requesterEmail})
			},
			email: requesterEmail,
			kind:  models.ErrNotFound,
			msg:   models.MsgNoRecommendations,
		},
		{
			name: "recommendations not a list",
			setup: func(s *MemoryStore) {
				s.PutProfile(models.ProfileRecord{Email: requesterEmail, Recommendations: models.ListMalformed})
			},
			email: requesterEmail,
			kind:  models.ErrInternal,
			msg:   models.MsgRecommendedShape,
		},
		{
			name: "requester login missing",
			setup: func(s *MemoryStore) {
				s.PutProfile(models.ProfileRecord{
					Email:                "nologin@x.com",
					RecommendedRoommates: []string{roommateEmail(1)},
					Recommendations:      models.ListPresent,
				})
			},
			email: "nologin@x.com",
			kind:  models.ErrNotFound,
			msg:   models.MsgLoginMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seedStore()
			if tt.setup != nil {
				tt.setup(store)
			}
			svc := &RoommateService{Profiles: store, Logins: store}

			cards, err := svc.TopMatches(ctx, tt.email)
			assert.Nil(t, cards)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind))

			var appErr *models.Error
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.msg, appErr.Message)
		})
	}
}

func TestTopMatchesStoreFailureIsInternal(t *testing.T) {
	store := seedStore()
	svc := &RoommateService{Profiles: store, Logins: brokenLogins{store}}

	_, err := svc.TopMatches(context.Background(), requesterEmail)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInternal))
	assert.True(t, errors.Is(err, errStoreDown))

	svc = &RoommateService{Profiles: brokenProfiles{store}, Logins: store}
	_, err = svc.OtherMates(context.Background(), requesterEmail)
	assert.True(t, errors.Is(err, models.ErrInternal))
}

func TestOtherMatesExcludesTopFive(t *testing.T) {
	store := seedStore()
	svc := &RoommateService{Profiles: store, Logins: store}

	cards, err := svc.OtherMates(context.Background(), requesterEmail)
	require.NoError(t, err)

	emails := make([]string, 0, len(cards))
	for _, c := range cards {
		emails = append(emails, c.Email)
	}
	// the requester is listed too, in store order
	assert.Equal(t, []string{requesterEmail, roommateEmail(6), roommateEmail(7)}, emails)

	mate6 := cards[1]
	assert.True(t, mate6.Smoke)
	assert.False(t, mate6.Drink)
	assert.Equal(t, models.IntScalar(806), mate6.Budget)
	assert.Equal(t, "veg", mate6.DietaryPreference)
	assert.Equal(t, "Mar 2024", mate6.StartDate)
	assert.False(t, mate6.IsFav)
}

func TestOtherMatesUnionCoversAllProfiles(t *testing.T) {
	store := seedStore()
	svc := &RoommateService{Profiles: store, Logins: store}
	ctx := context.Background()

	top, err := svc.TopMatches(ctx, requesterEmail)
	require.NoError(t, err)
	others, err := svc.OtherMates(ctx, requesterEmail)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, c := range top {
		seen[c.Email]++
	}
	for _, c := range others {
		seen[c.Email]++
	}
	assert.Len(t, seen, 8)
	for email, n := range seen {
		assert.Equal(t, 1, n, email)
	}
}

func TestOtherMatesSkipsMissingLoginsAndNeedsNoRequesterLogin(t *testing.T) {
	store := NewMemoryStore()
	store.PutProfile(models.ProfileRecord{
		Email:                requesterEmail,
		RecommendedRoommates: []string{},
		Recommendations:      models.ListPresent,
		FavouriteRoommates:   []string{"fav@x.com"},
	})
	store.PutProfile(models.ProfileRecord{Email: "fav@x.com", PhotoURL: "https://example.com/fav.jpg"})
	store.PutProfile(models.ProfileRecord{Email: "orphan@x.com"})
	_ = store.InsertLogin(context.Background(), models.LoginRecord{Email: "fav@x.com", Name: "Fav", Gender: "female"})

	svc := &RoommateService{Profiles: store, Logins: store}
	cards, err := svc.OtherMates(context.Background(), requesterEmail)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "fav@x.com", cards[0].Email)
	assert.True(t, cards[0].IsFav)
	assert.Equal(t, "female", cards[0].Gender)
	assert.Equal(t, "https://example.com/fav.jpg", cards[0].PhotoURL)
	assert.Equal(t, "", cards[0].StartDate)
}

func TestOtherMatesErrors(t *testing.T) {
	store := seedStore()
	store.PutProfile(models.ProfileRecord{Email: "bad@x.com", Recommendations: models.ListMalformed})
	svc := &RoommateService{Profiles: store, Logins: store}
	ctx := context.Background()

	_, err := svc.OtherMates(ctx, "")
	assert.True(t, errors.Is(err, models.ErrBadRequest))

	_, err = svc.OtherMates(ctx, "nobody@x.com")
	assert.True(t, errors.Is(err, models.ErrNotFound))

	_, err = svc.OtherMates(ctx, "bad@x.com")
	assert.True(t, errors.Is(err, models.ErrInternal))
}

func TestUserDetails(t *testing.T) {
	store := seedStore()
	svc := &RoommateService{Profiles: store, Logins: store}
	ctx := context.Background()

	details, err := svc.UserDetails(ctx, roommateEmail(3))
	require.NoError(t, err)
	assert.Equal(t, "Mate 3", details.Name)
	assert.Equal(t, models.IntScalar(23), details.Age)
	assert.Equal(t, "2024-03-15", details.StartDate)
	assert.Equal(t, "other", details.Gender)
	assert.NotNil(t, details.FavouriteRoommates)

	_, err = svc.UserDetails(ctx, "")
	assert.True(t, errors.Is(err, models.ErrBadRequest))

	_, err = svc.UserDetails(ctx, "nobody@x.com")
	assert.True(t, errors.Is(err, models.ErrNotFound))

	_ = store.InsertLogin(ctx, models.LoginRecord{Email: "loginonly@x.com"})
	_, err = svc.UserDetails(ctx, "loginonly@x.com")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestTopWindowKeepsPlaceholderPositions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	// "" stands for a non-string entry in the stored list
	store.PutProfile(models.ProfileRecord{
		Email:                requesterEmail,
		RecommendedRoommates: []string{"a@x.com", "", "b@x.com", "c@x.com", "d@x.com", "e@x.com", "f@x.com"},
		Recommendations:      models.ListPresent,
	})
	_ = store.InsertLogin(ctx, models.LoginRecord{Email: requesterEmail, Name: "Admin"})
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com", "f@x.com"} {
		store.PutProfile(models.ProfileRecord{Email: email})
		_ = store.InsertLogin(ctx, models.LoginRecord{Email: email, Name: email})
	}
	svc := &RoommateService{Profiles: store, Logins: store}

	top, err := svc.TopMatches(ctx, requesterEmail)
	require.NoError(t, err)
	topEmails := []string{}
	for _, c := range top {
		topEmails = append(topEmails, c.Email)
	}
	assert.Equal(t, []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"}, topEmails)

	others, err := svc.OtherMates(ctx, requesterEmail)
	require.NoError(t, err)
	otherEmails := []string{}
	for _, c := range others {
		otherEmails = append(otherEmails, c.Email)
	}
	assert.Equal(t, []string{requesterEmail, "e@x.com", "f@x.com"}, otherEmails)
}
