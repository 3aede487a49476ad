package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	app_errors "bariatric-gpt/backend/internal/errors"
	"bariatric-gpt/backend/internal/interfaces"
	"bariatric-gpt/backend/internal/service"
)

// ChatHandler serves the chat turn and settings endpoints.
type ChatHandler struct {
	chat     interfaces.ChatService
	profiles interfaces.ProfileService
	settings interfaces.SettingsService
}

func NewChatHandler(chat interfaces.ChatService, profiles interfaces.ProfileService, settings interfaces.SettingsService) *ChatHandler {
	return &ChatHandler{chat: chat, profiles: profiles, settings: settings}
}

// HandleChatTurn godoc
// @Summary      Run one chat turn
// @Description  Processes a user message through the assistant pipeline and returns both response encodings with the updated conversation log.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body ChatTurnRequest true "Chat turn"
// @Success      200 {object} ChatTurnResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /chat [post]
func (h *ChatHandler) HandleChatTurn(w http.ResponseWriter, r *http.Request) {
	var req ChatTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, app_errors.ErrValidation)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.chat.HandleTurn(r.Context(), &service.TurnRequest{
		Message:   req.Message,
		UserID:    req.UserID,
		PatientID: req.PatientID,
		Log:       req.Log,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	// Persistence happens only after the full pipeline produced a result.
	// An aborted request must not leave a partial memory/log update behind.
	if r.Context().Err() != nil {
		slog.Warn("Client disconnected before persistence, dropping turn", "user_id", req.UserID)
		return
	}
	persistCtx := context.WithoutCancel(r.Context())
	if err := h.profiles.PersistTurn(persistCtx, req.UserID, result.Memory, result.Log); err != nil {
		respondWithError(w, err)
		return
	}

	memoryJSON, err := json.Marshal(result.Memory)
	if err != nil {
		respondWithError(w, app_errors.ErrInternal)
		return
	}

	respondWithJSON(w, http.StatusOK, ChatTurnResponse{
		FinalResponse: result.FinalResponse,
		FinalMarkdown: result.FinalMarkdown,
		Memory:        string(memoryJSON),
		Log:           *result.Log,
		RemovedItems:  result.RemovedItems,
	})
}

// GetSettings godoc
// @Summary      Get assistant settings
// @Tags         settings
// @Produce      json
// @Success      200 {object} service.Settings
// @Failure      404 {object} ErrorResponse
// @Router       /settings [get]
func (h *ChatHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Update assistant settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request body service.Settings true "Settings"
// @Success      200 {object} StatusResponse
// @Failure      400 {object} ErrorResponse
// @Router       /settings [post]
func (h *ChatHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings service.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondWithError(w, app_errors.ErrValidation)
		return
	}
	if err := h.settings.Save(r.Context(), &settings); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
