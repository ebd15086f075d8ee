// internal/handlers/take_handler.go
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

// TakeHandler はクイズ受験フロー (動作確認用パススルー) のハンドラ群です。
type TakeHandler struct {
	service service.TakeService
	logger  *slog.Logger
}

func NewTakeHandler(s service.TakeService, logger *slog.Logger) *TakeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TakeHandler{
		service: s,
		logger:  logger,
	}
}

// StartQuiz は受験セッションを開始するハンドラ
func (h *TakeHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartQuiz"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	quizID := chi.URLParam(r, "quiz_id")
	logger = logger.With(slog.String("quiz_id", quizID))

	takeSession, err := h.service.StartQuiz(r.Context(), session, quizID)
	if err != nil {
		logger.Error("Error starting quiz in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz take session started", slog.String("take_id", takeSession.TakeID))
	webutil.RespondWithJSON(w, http.StatusCreated, takeSession, logger)
}

// SubmitAnswer は回答を送信するハンドラ
func (h *TakeHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitAnswer"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	takeID := chi.URLParam(r, "take_id")
	logger = logger.With(slog.String("take_id", takeID))

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid submit answer request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), session, takeID, &req)
	if err != nil {
		logger.Error("Error submitting answer in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Answer submitted successfully")
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// CompleteQuiz は受験セッションを完了するハンドラ
func (h *TakeHandler) CompleteQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CompleteQuiz"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	takeID := chi.URLParam(r, "take_id")
	logger = logger.With(slog.String("take_id", takeID))

	result, err := h.service.CompleteQuiz(r.Context(), session, takeID)
	if err != nil {
		logger.Error("Error completing quiz in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz take session completed")
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
