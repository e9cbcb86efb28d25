package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"careerdesk/internal/interview/service"
	httputil "careerdesk/pkg/http"
	"careerdesk/pkg/logger"
	"careerdesk/pkg/model"
)

type GeneratorHandler struct {
	service service.GeneratorService
	log     *logger.Logger
}

func NewGeneratorHandler(service service.GeneratorService, log *logger.Logger) *GeneratorHandler {
	return &GeneratorHandler{
		service: service,
		log:     log,
	}
}

func (h *GeneratorHandler) Generate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Generate", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	resp, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Generate", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Generate", "operation", "WriteSuccess", "error", err)
	}
}

func (h *GeneratorHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/interview-questions/generate", h.Generate)
}
