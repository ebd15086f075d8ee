// internal/handlers/analysis_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/service"
	"esthelogy_admin_console/internal/webutil"
)

type AnalysisHandler struct {
	service service.AnalysisService
	logger  *slog.Logger
}

func NewAnalysisHandler(s service.AnalysisService, logger *slog.Logger) *AnalysisHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisHandler{
		service: s,
		logger:  logger,
	}
}

// AnalyzeSkin は肌解析AIエンドポイントへのパススルーを行うハンドラ
func (h *AnalysisHandler) AnalyzeSkin(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AnalyzeSkin"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SkinAnalysisRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid skin analysis request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.AnalyzeSkin(r.Context(), session, &req)
	if err != nil {
		logger.Error("Error analyzing skin in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Skin analysis completed", slog.String("analysis_id", result.AnalysisID))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
