// internal/service/take_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	esthelogymocks "esthelogy_admin_console/internal/esthelogy/mocks"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/service"
)

func Test_takeService_StartQuiz(t *testing.T) {
	ctx := context.Background()
	session := testAdminSession()
	mockAPI := new(esthelogymocks.Client)
	takeService := service.NewTakeService(mockAPI)

	t.Run("正常系: 受験開始でリモートの受験セッションを返す", func(t *testing.T) {
		mockAPI.Mock = mock.Mock{}
		expected := &model.TakeSession{
			TakeID:   "take-1",
			QuizID:   "quiz-1",
			Question: &model.Question{QuestionID: "q-1", Text: "乾燥が気になりますか？"},
		}
		mockAPI.On("StartQuiz", ctx, session.RemoteToken, "quiz-1").Return(expected, nil).Once()

		got, err := takeService.StartQuiz(ctx, session, "quiz-1")
		require.NoError(t, err)
		assert.Equal(t, "take-1", got.TakeID)
		assert.Equal(t, "q-1", got.Question.QuestionID)
		mockAPI.AssertExpectations(t)
	})

	t.Run("異常系: quizIDが空", func(t *testing.T) {
		mockAPI.Mock = mock.Mock{}

		_, err := takeService.StartQuiz(ctx, session, "")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		mockAPI.AssertNotCalled(t, "StartQuiz", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: リモートの404はそのまま返す", func(t *testing.T) {
		mockAPI.Mock = mock.Mock{}
		mockAPI.On("StartQuiz", ctx, session.RemoteToken, "missing").Return(nil, model.ErrNotFound).Once()

		_, err := takeService.StartQuiz(ctx, session, "missing")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_takeService_SubmitAnswer(t *testing.T) {
	ctx := context.Background()
	session := testAdminSession()
	mockAPI := new(esthelogymocks.Client)
	takeService := service.NewTakeService(mockAPI)

	req := &model.SubmitAnswerRequest{QuestionID: "q-1", Option: 1}

	t.Run("正常系: 回答を送信して次の質問を受け取る", func(t *testing.T) {
		mockAPI.Mock = mock.Mock{}
		expected := &model.AnswerResult{
			Accepted:     true,
			NextQuestion: &model.Question{QuestionID: "q-2"},
		}
		mockAPI.On("SubmitAnswer", ctx, session.RemoteToken, "take-1", req).Return(expected, nil).Once()

		got, err := takeService.SubmitAnswer(ctx, session, "take-1", req)
		require.NoError(t, err)
		assert.True(t, got.Accepted)
		assert.Equal(t, "q-2", got.NextQuestion.QuestionID)
	})

	t.Run("異常系: takeIDが空", func(t *testing.T) {
		mockAPI.Mock = mock.Mock{}

		_, err := takeService.SubmitAnswer(ctx, session, "", req)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		mockAPI.AssertNotCalled(t, "SubmitAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_takeService_CompleteQuiz(t *testing.T) {
	ctx := context.Background()
	session := testAdminSession()
	mockAPI := new(esthelogymocks.Client)
	takeService := service.NewTakeService(mockAPI)

	t.Run("正常系: 受験完了でスコアを受け取る", func(t *testing.T) {
		mockAPI.Mock = mock.Mock{}
		expected := &model.TakeResult{
			TakeID:    "take-1",
			QuizID:    "quiz-1",
			Completed: true,
			Scores:    map[string]any{"dryness": 0.7},
		}
		mockAPI.On("CompleteQuiz", ctx, session.RemoteToken, "take-1").Return(expected, nil).Once()

		got, err := takeService.CompleteQuiz(ctx, session, "take-1")
		require.NoError(t, err)
		assert.True(t, got.Completed)
	})

	t.Run("異常系: takeIDが空", func(t *testing.T) {
		mockAPI.Mock = mock.Mock{}

		_, err := takeService.CompleteQuiz(ctx, session, "")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}
