package routes

import (
	"roommate_server/controllers"
	"roommate_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up account routes under /user
func RegisterUserRoutes(r *mux.Router, userAccountService *services.UserAccountService) {
	controller := controllers.NewUserController(userAccountService)

	userRouter := r.PathPrefix("/user").Subrouter()
	userRouter.HandleFunc("/validate", controller.ValidateUser).Methods("POST")
	userRouter.HandleFunc("/insert", controller.InsertUser).Methods("POST")
	userRouter.HandleFunc("/favourites", controller.UpdateFavourites).Methods("POST")
}
