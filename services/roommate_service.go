package services

import (
	"context"

	"roommate_server/models"
	"roommate_server/utils"
)

// RoommateService builds the top-match and other-mates listings from the
// precomputed recommendedRoommates list of the requesting user.
type RoommateService struct {
	Profiles ProfileStore
	Logins   LoginStore
}

// requesterProfile loads the profile that drives both listings
func (s *RoommateService) requesterProfile(ctx context.Context, email string) (*models.ProfileRecord, error) {
	if email == "" {
		return nil, models.BadRequest(models.MsgEmailRequired)
	}

	profile, err := s.Profiles.FindProfile(ctx, email)
	if err != nil {
		return nil, models.Internal(models.MsgInternal, err)
	}
	if profile == nil || profile.Recommendations == models.ListAbsent {
		return nil, models.NotFound(models.MsgNoRecommendations)
	}
	if profile.Recommendations == models.ListMalformed {
		return nil, models.Internal(models.MsgRecommendedShape, nil)
	}
	return profile, nil
}

// TopMatches returns cards for the first five recommended roommates, in list
// order. Roommates without a profile or login are left out.
func (s *RoommateService) TopMatches(ctx context.Context, email string) ([]models.RoommateCard, error) {
	requester, err := s.requesterProfile(ctx, email)
	if err != nil {
		return nil, err
	}

	login, err := s.Logins.FindLogin(ctx, email)
	if err != nil {
		return nil, models.Internal(models.MsgInternal, err)
	}
	if login == nil {
		return nil, models.NotFound(models.MsgLoginMissing)
	}

	cards := []models.RoommateCard{}
	for _, roommateEmail := range requester.TopMatches() {
		if roommateEmail == "" {
			continue
		}
		profile, err := s.Profiles.FindProfile(ctx, roommateEmail)
		if err != nil {
			return nil, models.Internal(models.MsgInternal, err)
		}
		if profile == nil {
			continue
		}
		contact, err := s.Logins.FindLoginContact(ctx, roommateEmail)
		if err != nil {
			return nil, models.Internal(models.MsgInternal, err)
		}
		if contact == nil {
			continue
		}
		cards = append(cards, buildCard(requester, profile, contact))
	}
	return cards, nil
}

// OtherMates returns extended cards for every profile outside the requester's
// top five. The requester's own login is not required. Order follows the
// store and is not stable between calls.
func (s *RoommateService) OtherMates(ctx context.Context, email string) ([]models.ExtendedRoommateCard, error) {
	requester, err := s.requesterProfile(ctx, email)
	if err != nil {
		return nil, err
	}

	others, err := s.Profiles.ListProfilesExcluding(ctx, dedupe(requester.TopMatches()))
	if err != nil {
		return nil, models.Internal(models.MsgInternal, err)
	}

	cards := []models.ExtendedRoommateCard{}
	for i := range others {
		profile := &others[i]
		contact, err := s.Logins.FindLoginContact(ctx, profile.Email)
		if err != nil {
			return nil, models.Internal(models.MsgInternal, err)
		}
		if contact == nil {
			continue
		}
		cards = append(cards, models.ExtendedRoommateCard{
			RoommateCard:      buildCard(requester, profile, contact),
			Smoke:             profile.Smoke,
			Budget:            profile.Budget,
			Drink:             profile.Drink,
			DietaryPreference: profile.Preference.DietaryPreference,
		})
	}
	return cards, nil
}

// UserDetails merges a user's profile and login for the profile view
func (s *RoommateService) UserDetails(ctx context.Context, email string) (*models.UserDetails, error) {
	if email == "" {
		return nil, models.BadRequest(models.MsgEmailRequired)
	}

	login, err := s.Logins.FindLogin(ctx, email)
	if err != nil {
		return nil, models.Internal(models.MsgInternal, err)
	}
	if login == nil {
		return nil, models.NotFound(models.MsgLoginMissing)
	}
	profile, err := s.Profiles.FindProfile(ctx, email)
	if err != nil {
		return nil, models.Internal(models.MsgInternal, err)
	}
	if profile == nil {
		return nil, models.NotFound(models.MsgProfileMissing)
	}

	favourites := profile.FavouriteRoommates
	if favourites == nil {
		favourites = []string{}
	}
	locations := profile.Preference.Location
	if locations == nil {
		locations = []string{}
	}
	return &models.UserDetails{
		Email:              login.Email,
		Name:               login.Name,
		Phone:              login.Phone,
		Gender:             login.GenderOrDefault(),
		Degree:             login.Degree,
		DOB:                login.DOB,
		Major:              login.Major,
		Age:                profile.Age,
		StartDate:          profile.StartDate,
		Title:              profile.Title,
		Preference:         models.Preference{Location: locations, DietaryPreference: profile.Preference.DietaryPreference},
		Smoke:              profile.Smoke,
		Drink:              profile.Drink,
		Budget:             profile.Budget,
		PhotoURL:           profile.PhotoURLOrDefault(),
		FavouriteRoommates: favourites,
	}, nil
}

func buildCard(requester, profile *models.ProfileRecord, contact *models.LoginRecord) models.RoommateCard {
	locations := profile.Preference.Location
	if locations == nil {
		locations = []string{}
	}
	return models.RoommateCard{
		Email:     profile.Email,
		Name:      contact.Name,
		Age:       profile.Age,
		StartDate: utils.FormatStartDate(profile.StartDate),
		Title:     profile.Title,
		Locations: locations,
		Gender:    contact.GenderOrDefault(),
		IsFav:     requester.IsFavourite(profile.Email),
		Phone:     contact.Phone,
		PhotoURL:  profile.PhotoURLOrDefault(),
	}
}

// dedupe drops repeats and placeholder entries
func dedupe(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		if _, ok := seen[e]; ok || e == "" {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
