// internal/handlers/esthetician_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/service"
	"esthelogy_admin_console/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type EstheticianHandler struct {
	service service.EstheticianService
	logger  *slog.Logger
}

func NewEstheticianHandler(s service.EstheticianService, logger *slog.Logger) *EstheticianHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EstheticianHandler{
		service: s,
		logger:  logger,
	}
}

// ListEstheticians はエステティシャン一覧を取得するハンドラ。
// ?status=pending のようにステータスで絞り込めます。
func (h *EstheticianHandler) ListEstheticians(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListEstheticians"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	status := r.URL.Query().Get("status")
	estheticians, err := h.service.ListEstheticians(r.Context(), session, status)
	if err != nil {
		logger.Error("Error listing estheticians in service", slog.Any("error", err), slog.String("status", status))
		webutil.HandleError(w, logger, err)
		return
	}

	if estheticians == nil {
		estheticians = []*model.Esthetician{}
	}
	logger.Info("Estheticians listed successfully", slog.Int("count", len(estheticians)))
	webutil.RespondWithJSON(w, http.StatusOK, estheticians, logger)
}

// Approve はエステティシャンの登録申請を承認するハンドラ
func (h *EstheticianHandler) Approve(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Approve"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	estheticianID := chi.URLParam(r, "esthetician_id")
	logger = logger.With(slog.String("esthetician_id", estheticianID))

	resp, err := h.service.Approve(r.Context(), session, estheticianID)
	if err != nil {
		logger.Error("Error approving esthetician in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Esthetician approved successfully", slog.Bool("notified", resp.Notified))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Reject はエステティシャンの登録申請を否認するハンドラ。否認理由は必須です。
func (h *EstheticianHandler) Reject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Reject"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	estheticianID := chi.URLParam(r, "esthetician_id")
	logger = logger.With(slog.String("esthetician_id", estheticianID))

	var req model.RejectEstheticianRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid reject request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Reject(r.Context(), session, estheticianID, req.Reason)
	if err != nil {
		logger.Error("Error rejecting esthetician in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Esthetician rejected successfully", slog.Bool("notified", resp.Notified))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
