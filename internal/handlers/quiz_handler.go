// internal/handlers/quiz_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/service"
	"esthelogy_admin_console/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

// ListQuizzes はクイズ一覧を取得するハンドラ
func (h *QuizHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListQuizzes"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	quizzes, err := h.service.ListQuizzes(r.Context(), session)
	if err != nil {
		logger.Error("Error listing quizzes in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if quizzes == nil {
		quizzes = []*model.Quiz{}
	}
	logger.Info("Quizzes listed successfully", slog.Int("count", len(quizzes)))
	webutil.RespondWithJSON(w, http.StatusOK, quizzes, logger)
}

// GetQuiz は特定のクイズを取得するハンドラ
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuiz"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	quizID := chi.URLParam(r, "quiz_id")
	logger = logger.With(slog.String("quiz_id", quizID))

	quiz, err := h.service.GetQuiz(r.Context(), session, quizID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Quiz not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting quiz from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, quiz, logger)
}

// CreateQuiz は新しいクイズを作成するハンドラ
func (h *QuizHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateQuiz"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateQuizRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid create quiz request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	quiz, err := h.service.CreateQuiz(r.Context(), session, &req)
	if err != nil {
		logger.Error("Error creating quiz in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz created successfully", slog.String("quiz_id", quiz.QuizID))
	webutil.RespondWithJSON(w, http.StatusCreated, quiz, logger)
}

// UpdateQuiz はクイズのタイトル・セクションを更新するハンドラ
func (h *QuizHandler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateQuiz"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	quizID := chi.URLParam(r, "quiz_id")
	logger = logger.With(slog.String("quiz_id", quizID))

	var req model.UpdateQuizRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid update quiz request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	if req.Title == nil && req.Section == nil {
		logger.Warn("UpdateQuiz called with no fields provided for update")
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	quiz, err := h.service.UpdateQuiz(r.Context(), session, quizID, &req)
	if err != nil {
		logger.Error("Error updating quiz in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, quiz, logger)
}

// DeleteQuiz はクイズを削除するハンドラ
func (h *QuizHandler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteQuiz"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	quizID := chi.URLParam(r, "quiz_id")
	logger = logger.With(slog.String("quiz_id", quizID))

	if err := h.service.DeleteQuiz(r.Context(), session, quizID); err != nil {
		logger.Error("Error deleting quiz in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// AddQuestion はクイズに質問を追加するハンドラ。
// 追加前に埋め込みベースの重複チェックが走り、類似質問があると409を返します。
func (h *QuizHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AddQuestion"))

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	quizID := chi.URLParam(r, "quiz_id")
	logger = logger.With(slog.String("quiz_id", quizID))

	var req model.AddQuestionRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid add question request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	question, err := h.service.AddQuestion(r.Context(), session, quizID, &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Question rejected as duplicate", slog.Any("error", err))
		} else {
			logger.Error("Error adding question in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question added successfully", slog.String("question_id", question.QuestionID))
	webutil.RespondWithJSON(w, http.StatusCreated, question, logger)
}

// CheckSimilarity は質問文の類似チェックだけを行うハンドラ (登録はしない)
func (h *QuizHandler) CheckSimilarity(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CheckSimilarity"))

	if _, err := middleware.GetSessionFromContext(r.Context()); err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SimilarityCheckRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid similarity check request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.CheckQuestionSimilarity(r.Context(), req.Text)
	if err != nil {
		logger.Error("Error checking question similarity in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Similarity check completed", slog.Bool("duplicate", result.Duplicate))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
