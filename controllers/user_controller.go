package controllers

import (
	"net/http"

	"roommate_server/models"
	"roommate_server/services"
)

// UserController handles /user requests
type UserController struct {
	UserAccountService *services.UserAccountService
}

// NewUserController creates a new instance of UserController
func NewUserController(userAccountService *services.UserAccountService) *UserController {
	return &UserController{UserAccountService: userAccountService}
}

// ValidateUser checks an email/password pair
func (c *UserController) ValidateUser(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateRequest
	if err := decodeRequest(r, &req); err != nil {
		writeServiceError(w, r, err, "error")
		return
	}

	msg, err := c.UserAccountService.Validate(r.Context(), *req.Email, *req.Password)
	if err != nil {
		writeServiceError(w, r, err, "error")
		return
	}
	writeMessage(w, msg)
}

// InsertUser registers a new login
func (c *UserController) InsertUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeRequest(r, &req); err != nil {
		writeServiceError(w, r, err, "error")
		return
	}

	msg, err := c.UserAccountService.Register(r.Context(), req.LoginRecord())
	if err != nil {
		writeServiceError(w, r, err, "error")
		return
	}
	writeMessage(w, msg)
}

// UpdateFavourites adds or removes a favourite roommate. A missing profile on
// removal is reported as 404 {"message": ...}.
func (c *UserController) UpdateFavourites(w http.ResponseWriter, r *http.Request) {
	var req models.FavouriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeServiceError(w, r, err, "error")
		return
	}

	msg, err := c.UserAccountService.SetFavourite(r.Context(), *req.UserEmail, *req.FavEmail, req.AddFav.Adds())
	if err != nil {
		key := "error"
		if statusFor(err) == http.StatusNotFound {
			key = "message"
		}
		writeServiceError(w, r, err, key)
		return
	}
	writeMessage(w, msg)
}
