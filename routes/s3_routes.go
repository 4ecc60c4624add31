package routes

import (
	"roommate_server/controllers"
	"roommate_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for profile photo uploads
func RegisterS3Routes(r *mux.Router, photoService *services.PhotoService) {
	controller := controllers.NewPhotoController(photoService)
	r.HandleFunc("/photos/upload-url", controller.GeneratePresignedURL).Methods("POST")
}
