package services

import (
	"context"

	"roommate_server/models"
)

// ProfileStore reads and updates profile documents keyed by email.
// Finders return nil, nil when no document matches.
type ProfileStore interface {
	FindProfile(ctx context.Context, email string) (*models.ProfileRecord, error)
	// ListProfilesExcluding returns every profile whose email is not in emails,
	// in the backend's iteration order.
	ListProfilesExcluding(ctx context.Context, emails []string) ([]models.ProfileRecord, error)
	// AddFavourite adds favEmail to the user's favourites set, creating the
	// profile document if it does not exist.
	AddFavourite(ctx context.Context, userEmail, favEmail string) error
	// RemoveFavourite removes favEmail from the set. It never creates a
	// document and returns models.ErrNoDocument when the profile is missing.
	RemoveFavourite(ctx context.Context, userEmail, favEmail string) error
}

// LoginStore reads and inserts login documents keyed by email.
type LoginStore interface {
	FindLogin(ctx context.Context, email string) (*models.LoginRecord, error)
	// FindLoginContact reads only email, name, gender and phone.
	FindLoginContact(ctx context.Context, email string) (*models.LoginRecord, error)
	// InsertLogin stores a new login without checking for an existing email.
	InsertLogin(ctx context.Context, login models.LoginRecord) error
}
