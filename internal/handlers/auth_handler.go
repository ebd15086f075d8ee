// internal/handlers/auth_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/service"
	"esthelogy_admin_console/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// Login は管理者ログインのハンドラ。認証はリモートAPIに委譲されます。
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid login request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// 認証失敗はWarn、それ以外はErrorで記録
		if webutil.MapErrorToStatusCode(err) < http.StatusInternalServerError {
			logger.Warn("Login rejected", slog.Any("error", err))
		} else {
			logger.Error("Error during login", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Login succeeded", slog.String("user_id", resp.UserID))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Refresh はアクセストークン再発行のハンドラ
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Refresh"))

	var req model.RefreshRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid refresh request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Refresh(r.Context(), &req)
	if err != nil {
		logger.Warn("Refresh failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Access token refreshed")
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Logout はセッション破棄のハンドラ (要認証)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Logout"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.Logout(r.Context(), session.SessionID); err != nil {
		logger.Error("Error during logout", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Logout succeeded", slog.String("session_id", session.SessionID.String()))
	w.WriteHeader(http.StatusNoContent)
}
