package controllers

import (
	"net/http"

	"roommate_server/logging"
	"roommate_server/models"
	"roommate_server/services"
)

// PhotoController hands out presigned profile photo uploads
type PhotoController struct {
	PhotoService *services.PhotoService
}

func NewPhotoController(photoService *services.PhotoService) *PhotoController {
	return &PhotoController{PhotoService: photoService}
}

// GeneratePresignedURL handles POST /photos/upload-url
func (c *PhotoController) GeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var req models.PhotoUploadRequest
	if err := decodeRequest(r, &req); err != nil {
		writeServiceError(w, r, err, "error")
		return
	}

	upload, err := c.PhotoService.UploadURL(r.Context(), req.FileName, req.FileType)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("file", req.FileName).Msg("presign failed")
		writeError(w, http.StatusInternalServerError, "Failed to generate pre-signed URL")
		return
	}
	writeJSON(w, http.StatusOK, upload)
}
