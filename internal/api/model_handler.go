package api

import (
	"net/http"

	"bariatric-gpt/backend/internal/interfaces"
)

// ModelHandler exposes the model runtime's installed models.
type ModelHandler struct {
	models interfaces.ModelService
}

func NewModelHandler(models interfaces.ModelService) *ModelHandler {
	return &ModelHandler{models: models}
}

// HandleListModels godoc
// @Summary      List installed models
// @Tags         models
// @Produce      json
// @Success      200 {object} llm.ListModelsResponse
// @Failure      502 {object} ErrorResponse
// @Router       /models [get]
func (h *ModelHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	list, err := h.models.List(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, list)
}
