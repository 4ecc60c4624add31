package routes

import (
	"roommate_server/controllers"
	"roommate_server/services"

	"github.com/gorilla/mux"
)

// RegisterRoommateRoutes sets up the recommendation listings under /rs and
// the profile view used by the browse page
func RegisterRoommateRoutes(r *mux.Router, roommateService *services.RoommateService) {
	controller := controllers.NewRoommateController(roommateService)

	rsRouter := r.PathPrefix("/rs").Subrouter()
	rsRouter.HandleFunc("/top-match", controller.GetTopMatches).Methods("GET")
	rsRouter.HandleFunc("/other-mates", controller.GetOtherMates).Methods("GET")

	r.HandleFunc("/user-details/{email}", controller.GetUserDetails).Methods("GET")
}
