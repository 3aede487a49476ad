package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "bariatric-gpt/backend/internal/errors"
	"bariatric-gpt/backend/internal/interfaces"
	"bariatric-gpt/backend/internal/model"
)

// ProfileHandler serves the storage endpoints: profiles, patients, and
// the service-key-guarded memory read.
type ProfileHandler struct {
	profiles interfaces.ProfileService
}

func NewProfileHandler(profiles interfaces.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile godoc
// @Summary      Get a user profile
// @Tags         profiles
// @Produce      json
// @Param        userID path string true "User ID"
// @Success      200 {object} model.UserProfile
// @Failure      404 {object} ErrorResponse
// @Router       /profiles/{userID} [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	profile, err := h.profiles.GetProfile(r.Context(), userID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// UpsertProfile godoc
// @Summary      Create or update a user profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        userID path string true "User ID"
// @Param        request body model.UserProfile true "Profile"
// @Success      200 {object} StatusResponse
// @Failure      400 {object} ErrorResponse
// @Router       /profiles/{userID} [put]
func (h *ProfileHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var profile model.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondWithError(w, app_errors.ErrValidation)
		return
	}
	profile.UserID = chi.URLParam(r, "userID")
	if err := h.profiles.UpsertProfile(r.Context(), &profile); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetPatient godoc
// @Summary      Get a patient record
// @Tags         patients
// @Produce      json
// @Param        patientID path string true "Patient ID"
// @Success      200 {object} model.PatientRecord
// @Failure      404 {object} ErrorResponse
// @Router       /patients/{patientID} [get]
func (h *ProfileHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	record, err := h.profiles.GetPatient(r.Context(), patientID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

// GetMemory godoc
// @Summary      Get a user's assistant memory (backend callers only)
// @Tags         memory
// @Produce      json
// @Param        userID path string true "User ID"
// @Param        X-Service-Key header string true "Service credential"
// @Success      200 {object} model.Memory
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /memory/{userID} [get]
func (h *ProfileHandler) GetMemory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	memory, err := h.profiles.GetMemory(r.Context(), userID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, memory)
}
