package http

import (
	"fmt"
	"io"
	"net/http"

	"carrental-backend/internal/service"
	"carrental-backend/internal/storage"
)

// maxPhotoSize caps vehicle photo uploads at 5 MB.
const maxPhotoSize = 5 << 20

type PhotoHandler struct {
	vehicles service.VehicleService
	store    storage.Storage
}

func NewPhotoHandler(vehicles service.VehicleService, store storage.Storage) *PhotoHandler {
	return &PhotoHandler{vehicles: vehicles, store: store}
}

func photoKey(vehicleID int32) string {
	return fmt.Sprintf("vehicles/%d.jpg", vehicleID)
}

// Upload stores a photo for the vehicle. The body is a multipart form
// with a single "photo" file field.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	// Only accept photos for vehicles that exist.
	if _, err := h.vehicles.Get(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize)
	file, header, err := r.FormFile("photo")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "photo file field is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "photo must be image/jpeg or image/png"})
		return
	}

	if err := h.store.Save(r.Context(), photoKey(id), file); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"photo_url": fmt.Sprintf("/api/vehicles/%d/photo", id)})
}

// Download streams the vehicle's photo.
func (h *PhotoHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	exists, size, err := h.store.Exists(r.Context(), photoKey(id))
	if err != nil {
		respondError(w, err)
		return
	}
	if !exists {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "no photo for this vehicle"})
		return
	}

	reader, err := h.store.Open(r.Context(), photoKey(id))
	if err != nil {
		respondError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", size))
	io.Copy(w, reader)
}

// Delete removes the vehicle's photo.
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.store.Delete(r.Context(), photoKey(id)); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
