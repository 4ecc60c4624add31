package controllers

import (
	"net/http"

	"roommate_server/services"

	"github.com/gorilla/mux"
)

// RoommateController handles the recommendation listings and profile view
type RoommateController struct {
	RoommateService *services.RoommateService
}

// NewRoommateController creates a new RoommateController instance
func NewRoommateController(roommateService *services.RoommateService) *RoommateController {
	return &RoommateController{RoommateService: roommateService}
}

// GetTopMatches handles GET /rs/top-match?email=
func (c *RoommateController) GetTopMatches(w http.ResponseWriter, r *http.Request) {
	cards, err := c.RoommateService.TopMatches(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err, "error")
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// GetOtherMates handles GET /rs/other-mates?email=
func (c *RoommateController) GetOtherMates(w http.ResponseWriter, r *http.Request) {
	cards, err := c.RoommateService.OtherMates(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err, "error")
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// GetUserDetails handles GET /user-details/{email}
func (c *RoommateController) GetUserDetails(w http.ResponseWriter, r *http.Request) {
	details, err := c.RoommateService.UserDetails(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeServiceError(w, r, err, "error")
		return
	}
	writeJSON(w, http.StatusOK, details)
}
