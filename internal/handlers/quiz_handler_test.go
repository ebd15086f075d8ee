// internal/handlers/quiz_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"esthelogy_admin_console/internal/handlers"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/service/mocks"
)

// テスト対象のルーターを組み立てる。session が nil なら未認証状態になる。
func setupQuizRouter(mockService *mocks.QuizService, session *model.AdminSession) *chi.Mux {
	quizHandler := handlers.NewQuizHandler(mockService, nil)
	router := chi.NewRouter()
	router.Use(sessionInjector(session))
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/quizzes", quizHandler.ListQuizzes)
		r.Post("/quizzes", quizHandler.CreateQuiz)
		r.Get("/quizzes/{quiz_id}", quizHandler.GetQuiz)
		r.Put("/quizzes/{quiz_id}", quizHandler.UpdateQuiz)
		r.Delete("/quizzes/{quiz_id}", quizHandler.DeleteQuiz)
		r.Post("/quizzes/{quiz_id}/questions", quizHandler.AddQuestion)
		r.Post("/questions/similarity-check", quizHandler.CheckSimilarity)
	})
	return router
}

func TestQuizHandler_AddQuestion(t *testing.T) {
	session := newTestSession()

	validReqBody := model.AddQuestionRequest{
		Text:    "乾燥肌に悩んでいますか？",
		Options: []string{"はい", "いいえ"},
	}
	expectedQuestion := &model.Question{
		QuestionID: "question-1",
		Text:       validReqBody.Text,
		Options:    validReqBody.Options,
	}

	tests := []struct {
		name           string
		session        *model.AdminSession
		quizID         string
		body           interface{}
		setupMock      func(m *mocks.QuizService)
		expectedStatus int
		expectedCode   string // エラーレスポンスの code (空なら検証しない)
	}{
		{
			name:    "正常系: 質問追加成功",
			session: session,
			quizID:  "quiz-1",
			body:    validReqBody,
			setupMock: func(m *mocks.QuizService) {
				m.On("AddQuestion", mock.Anything, session, "quiz-1", &validReqBody).
					Return(expectedQuestion, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "異常系: 類似質問があり409",
			session: session,
			quizID:  "quiz-1",
			body:    validReqBody,
			setupMock: func(m *mocks.QuizService) {
				appErr := model.NewAppError("DUPLICATE_QUESTION", "既存の質問と類似しています。", "text", model.ErrConflict)
				m.On("AddQuestion", mock.Anything, session, "quiz-1", &validReqBody).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_QUESTION",
		},
		{
			name:           "異常系: textが空でバリデーションエラー",
			session:        session,
			quizID:         "quiz-1",
			body:           model.AddQuestionRequest{Options: []string{"はい"}},
			setupMock:      func(m *mocks.QuizService) { /* サービスは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "異常系: リモートAPI障害で502",
			session: session,
			quizID:  "quiz-1",
			body:    validReqBody,
			setupMock: func(m *mocks.QuizService) {
				m.On("AddQuestion", mock.Anything, session, "quiz-1", &validReqBody).
					Return(nil, model.ErrUpstream).Once()
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "異常系: セッションなし",
			session:        nil,
			quizID:         "quiz-1",
			body:           validReqBody,
			setupMock:      func(m *mocks.QuizService) { /* サービスは呼ばれない */ },
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.QuizService)
			tc.setupMock(mockService)
			router := setupQuizRouter(mockService, tc.session)

			req := createRequest(t, "POST", fmt.Sprintf("/api/v1/quizzes/%s/questions", tc.quizID), tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusCreated {
				var question model.Question
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &question))
				assert.Equal(t, expectedQuestion.QuestionID, question.QuestionID)
			} else if tc.expectedCode != "" {
				errResp := decodeErrorResponse(t, rr.Body)
				assert.Equal(t, tc.expectedCode, errResp.Error.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestQuizHandler_ListQuizzes(t *testing.T) {
	session := newTestSession()

	t.Run("正常系: 一覧取得成功", func(t *testing.T) {
		expected := []*model.Quiz{{QuizID: "quiz-1", Title: "肌質診断", Section: "基本"}}
		mockService := new(mocks.QuizService)
		mockService.On("ListQuizzes", mock.Anything, session).Return(expected, nil).Once()
		router := setupQuizRouter(mockService, session)

		req := createRequest(t, "GET", "/api/v1/quizzes", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var quizzes []*model.Quiz
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &quizzes))
		assert.Len(t, quizzes, 1)
		assert.Equal(t, "quiz-1", quizzes[0].QuizID)
		mockService.AssertExpectations(t)
	})

	t.Run("正常系: サービスがnilを返しても空配列で返す", func(t *testing.T) {
		mockService := new(mocks.QuizService)
		mockService.On("ListQuizzes", mock.Anything, session).Return(nil, nil).Once()
		router := setupQuizRouter(mockService, session)

		req := createRequest(t, "GET", "/api/v1/quizzes", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		// null ではなく [] が返ること
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestQuizHandler_GetQuiz(t *testing.T) {
	session := newTestSession()

	t.Run("正常系: 取得成功", func(t *testing.T) {
		expected := &model.Quiz{QuizID: "quiz-1", Title: "肌質診断"}
		mockService := new(mocks.QuizService)
		mockService.On("GetQuiz", mock.Anything, session, "quiz-1").Return(expected, nil).Once()
		router := setupQuizRouter(mockService, session)

		req := createRequest(t, "GET", "/api/v1/quizzes/quiz-1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないクイズは404", func(t *testing.T) {
		mockService := new(mocks.QuizService)
		mockService.On("GetQuiz", mock.Anything, session, "missing").Return(nil, model.ErrNotFound).Once()
		router := setupQuizRouter(mockService, session)

		req := createRequest(t, "GET", "/api/v1/quizzes/missing", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestQuizHandler_CreateQuiz(t *testing.T) {
	session := newTestSession()

	validReqBody := model.CreateQuizRequest{Title: "肌質診断", Section: "基本"}

	t.Run("正常系: 作成成功で201", func(t *testing.T) {
		expected := &model.Quiz{QuizID: "quiz-new", Title: validReqBody.Title, Section: validReqBody.Section}
		mockService := new(mocks.QuizService)
		mockService.On("CreateQuiz", mock.Anything, session, &validReqBody).Return(expected, nil).Once()
		router := setupQuizRouter(mockService, session)

		req := createRequest(t, "POST", "/api/v1/quizzes", validReqBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: タイトルなしは400", func(t *testing.T) {
		mockService := new(mocks.QuizService)
		router := setupQuizRouter(mockService, session)

		req := createRequest(t, "POST", "/api/v1/quizzes", model.CreateQuizRequest{Section: "基本"})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "CreateQuiz", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestQuizHandler_UpdateQuiz(t *testing.T) {
	session := newTestSession()
	newTitle := "肌質診断 (改訂版)"

	t.Run("正常系: タイトルのみ更新", func(t *testing.T) {
		reqBody := model.UpdateQuizRequest{Title: &newTitle}
		expected := &model.Quiz{QuizID: "quiz-1", Title: newTitle}
		mockService := new(mocks.QuizService)
		mockService.On("UpdateQuiz", mock.Anything, session, "quiz-1", &reqBody).Return(expected, nil).Once()
		router := setupQuizRouter(mockService, session)

		req := createRequest(t, "PUT", "/api/v1/quizzes/quiz-1", reqBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 更新フィールドが1つもない", func(t *testing.T) {
		mockService := new(mocks.QuizService)
		router := setupQuizRouter(mockService, session)

		req := createRequest(t, "PUT", "/api/v1/quizzes/quiz-1", model.UpdateQuizRequest{})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := decodeErrorResponse(t, rr.Body)
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
		mockService.AssertNotCalled(t, "UpdateQuiz", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestQuizHandler_DeleteQuiz(t *testing.T) {
	session := newTestSession()

	t.Run("正常系: 削除成功で204", func(t *testing.T) {
		mockService := new(mocks.QuizService)
		mockService.On("DeleteQuiz", mock.Anything, session, "quiz-1").Return(nil).Once()
		router := setupQuizRouter(mockService, session)

		req := createRequest(t, "DELETE", "/api/v1/quizzes/quiz-1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
		mockService.AssertExpectations(t)
	})
}

func TestQuizHandler_CheckSimilarity(t *testing.T) {
	session := newTestSession()

	t.Run("正常系: 類似ありの結果を返す", func(t *testing.T) {
		reqBody := model.SimilarityCheckRequest{Text: "乾燥肌に悩んでいますか？"}
		expected := &model.SimilarityResult{Duplicate: true, MatchedQuestion: "肌の乾燥が気になりますか？", Score: 0.87}
		mockService := new(mocks.QuizService)
		mockService.On("CheckQuestionSimilarity", mock.Anything, reqBody.Text).Return(expected, nil).Once()
		router := setupQuizRouter(mockService, session)

		req := createRequest(t, "POST", "/api/v1/questions/similarity-check", reqBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var result model.SimilarityResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.True(t, result.Duplicate)
		assert.Equal(t, expected.MatchedQuestion, result.MatchedQuestion)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: textなしは400", func(t *testing.T) {
		mockService := new(mocks.QuizService)
		router := setupQuizRouter(mockService, session)

		req := createRequest(t, "POST", "/api/v1/questions/similarity-check", map[string]string{})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "CheckQuestionSimilarity", mock.Anything, mock.Anything)
	})
}
