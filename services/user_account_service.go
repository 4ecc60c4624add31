package services

import (
	"context"
	"errors"

	"roommate_server/logging"
	"roommate_server/models"
)

// UserAccountService handles credential checks, registration and favourites
type UserAccountService struct {
	Profiles ProfileStore
	Logins   LoginStore
}

// Validate checks a plaintext password against the stored login
func (s *UserAccountService) Validate(ctx context.Context, email, password string) (string, error) {
	login, err := s.Logins.FindLogin(ctx, email)
	if err != nil {
		return "", models.Internal(models.MsgInternal, err)
	}
	if login == nil {
		return "", models.NotFound(models.MsgUserMissing)
	}
	if login.Password != password {
		return "", models.Unauthorized(models.MsgWrongPassword)
	}
	return models.MsgLoggedIn, nil
}

// Register stores a new login. Emails are not checked for duplicates.
func (s *UserAccountService) Register(ctx context.Context, login models.LoginRecord) (string, error) {
	if err := s.Logins.InsertLogin(ctx, login); err != nil {
		return "", models.Internal(models.MsgInternal, err)
	}
	logging.Ctx(ctx).Info().Str("email", login.Email).Msg("user registered")
	return models.MsgSignedUp, nil
}

// SetFavourite adds favEmail to, or removes it from, the user's favourites.
// Adding creates the profile when missing; removing does not.
func (s *UserAccountService) SetFavourite(ctx context.Context, userEmail, favEmail string, add bool) (string, error) {
	var err error
	msg := models.MsgFavouriteDeleted
	if add {
		err = s.Profiles.AddFavourite(ctx, userEmail, favEmail)
		msg = models.MsgFavouriteAdded
	} else {
		err = s.Profiles.RemoveFavourite(ctx, userEmail, favEmail)
	}

	if errors.Is(err, models.ErrNoDocument) {
		return "", models.NotFound(models.MsgNoDocument)
	}
	if err != nil {
		return "", models.Internal(models.MsgInternal, err)
	}
	return msg, nil
}
