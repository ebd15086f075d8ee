// internal/handlers/audit_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/service"
	"esthelogy_admin_console/internal/webutil"
)

type AuditHandler struct {
	service service.AuditService
	logger  *slog.Logger
}

func NewAuditHandler(s service.AuditService, logger *slog.Logger) *AuditHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditHandler{
		service: s,
		logger:  logger,
	}
}

// ListAuditLogs は監査ログの一覧を取得するハンドラ。
// ?actor_id=, ?action=, ?limit=, ?offset= で絞り込みできます。
func (h *AuditHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListAuditLogs"))

	if _, err := middleware.GetSessionFromContext(r.Context()); err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	query := r.URL.Query()
	filter := model.AuditLogFilter{
		ActorID: query.Get("actor_id"),
		Action:  query.Get("action"),
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "limitの形式が正しくありません。", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		filter.Limit = limit
	}
	if v := query.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "offsetの形式が正しくありません。", "offset", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		filter.Offset = offset
	}

	entries, err := h.service.List(r.Context(), filter)
	if err != nil {
		logger.Error("Error listing audit logs in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if entries == nil {
		entries = []*model.AuditLog{}
	}
	logger.Info("Audit logs listed successfully", slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}
