// internal/service/quiz_service_test.go
package service_test

import (
	"context"
	"errors"
	"testing"

	"esthelogy_admin_console/internal/config"
	embeddingmocks "esthelogy_admin_console/internal/embedding/mocks"
	esthelogymocks "esthelogy_admin_console/internal/esthelogy/mocks"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/service"
	servicemocks "esthelogy_admin_console/internal/service/mocks"
	"esthelogy_admin_console/internal/vector"
	vectormocks "esthelogy_admin_console/internal/vector/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// テスト用の設定 (閾値 0.6 は本番のデフォルトと同じ)
func testQuizConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Pinecone.Threshold = 0.6
	return cfg
}

func testAdminSession() *model.AdminSession {
	return &model.AdminSession{
		SessionID:   uuid.New(),
		UserID:      "admin-user-1",
		Email:       "admin@example.com",
		Role:        "admin",
		RemoteToken: "remote-access-token",
	}
}

func Test_quizService_AddQuestion(t *testing.T) {
	ctx := context.Background()
	session := testAdminSession()

	testVector := []float32{0.1, 0.2, 0.3}
	inputText := "乾燥肌に悩んでいますか？"
	quizID := "quiz-1"

	expectedQuestion := &model.Question{
		QuestionID: "question-1",
		Text:       inputText,
		Options:    []string{"はい", "いいえ"},
	}

	mockAPI := new(esthelogymocks.Client)
	mockEmbedder := new(embeddingmocks.Embedder)
	mockIndex := new(vectormocks.Index)
	mockAudit := new(servicemocks.AuditService)

	quizService := service.NewQuizService(mockAPI, mockEmbedder, mockIndex, mockAudit, testQuizConfig())

	tests := []struct {
		name        string
		quizID      string
		req         *model.AddQuestionRequest
		setupMock   func()
		wantErr     error
		wantErrCode string // AppError の Detail.Code (空なら検証しない)
	}{
		{
			name:   "正常系: 類似質問なしで追加成功",
			quizID: quizID,
			req:    &model.AddQuestionRequest{Text: inputText, Options: []string{"はい", "いいえ"}},
			setupMock: func() {
				mockEmbedder.On("Embed", ctx, inputText).Return(testVector, nil).Once()
				// インデックスは空 (nil マッチ)
				mockIndex.On("QueryNearest", ctx, testVector).Return(nil, nil).Once()
				mockIndex.On("Upsert", ctx, inputText, testVector, inputText).Return(nil).Once()
				mockAPI.On("AddQuestion", ctx, session.RemoteToken, quizID, mock.AnythingOfType("*model.AddQuestionRequest")).
					Return(expectedQuestion, nil).Once()
				mockAudit.On("Record", ctx, session.UserID, model.AuditActionAddQuestion, quizID, inputText).Return().Once()
			},
			wantErr: nil,
		},
		{
			name:   "正常系: 類似度が閾値以下なら追加成功",
			quizID: quizID,
			req:    &model.AddQuestionRequest{Text: inputText},
			setupMock: func() {
				mockEmbedder.On("Embed", ctx, inputText).Return(testVector, nil).Once()
				mockIndex.On("QueryNearest", ctx, testVector).
					Return(&vector.Match{ID: "other", Score: 0.42, Question: "他の質問"}, nil).Once()
				mockIndex.On("Upsert", ctx, inputText, testVector, inputText).Return(nil).Once()
				mockAPI.On("AddQuestion", ctx, session.RemoteToken, quizID, mock.AnythingOfType("*model.AddQuestionRequest")).
					Return(expectedQuestion, nil).Once()
				mockAudit.On("Record", ctx, session.UserID, model.AuditActionAddQuestion, quizID, inputText).Return().Once()
			},
			wantErr: nil,
		},
		{
			name:   "正常系: 類似度が閾値ちょうどは重複扱いにしない",
			quizID: quizID,
			req:    &model.AddQuestionRequest{Text: inputText},
			setupMock: func() {
				mockEmbedder.On("Embed", ctx, inputText).Return(testVector, nil).Once()
				mockIndex.On("QueryNearest", ctx, testVector).
					Return(&vector.Match{ID: "other", Score: 0.6, Question: "他の質問"}, nil).Once()
				mockIndex.On("Upsert", ctx, inputText, testVector, inputText).Return(nil).Once()
				mockAPI.On("AddQuestion", ctx, session.RemoteToken, quizID, mock.AnythingOfType("*model.AddQuestionRequest")).
					Return(expectedQuestion, nil).Once()
				mockAudit.On("Record", ctx, session.UserID, model.AuditActionAddQuestion, quizID, inputText).Return().Once()
			},
			wantErr: nil,
		},
		{
			name:   "異常系: 類似度が閾値を超えたら重複として拒否",
			quizID: quizID,
			req:    &model.AddQuestionRequest{Text: inputText},
			setupMock: func() {
				mockEmbedder.On("Embed", ctx, inputText).Return(testVector, nil).Once()
				mockIndex.On("QueryNearest", ctx, testVector).
					Return(&vector.Match{ID: "existing", Score: 0.87, Question: "肌の乾燥が気になりますか？"}, nil).Once()
				// Upsert / AddQuestion / Record は呼ばれない
			},
			wantErr:     model.ErrConflict,
			wantErrCode: "DUPLICATE_QUESTION",
		},
		{
			name:      "異常系: 質問文が空",
			quizID:    quizID,
			req:       &model.AddQuestionRequest{Text: "   "},
			setupMock: func() {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:      "異常系: クイズIDが空",
			quizID:    "",
			req:       &model.AddQuestionRequest{Text: inputText},
			setupMock: func() {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:   "異常系: 埋め込みAPIエラーはフェイルクローズ",
			quizID: quizID,
			req:    &model.AddQuestionRequest{Text: inputText},
			setupMock: func() {
				mockEmbedder.On("Embed", ctx, inputText).
					Return(nil, errors.New("embedding api unavailable")).Once()
			},
			wantErr: errors.New("embedding api unavailable"),
		},
		{
			name:   "異常系: ベクトル検索エラーはフェイルクローズ",
			quizID: quizID,
			req:    &model.AddQuestionRequest{Text: inputText},
			setupMock: func() {
				mockEmbedder.On("Embed", ctx, inputText).Return(testVector, nil).Once()
				mockIndex.On("QueryNearest", ctx, testVector).
					Return(nil, errors.New("index unavailable")).Once()
			},
			wantErr: errors.New("index unavailable"),
		},
		{
			name:   "異常系: リモートへの質問追加が失敗したらベクトルは登録しない",
			quizID: quizID,
			req:    &model.AddQuestionRequest{Text: inputText},
			setupMock: func() {
				mockEmbedder.On("Embed", ctx, inputText).Return(testVector, nil).Once()
				mockIndex.On("QueryNearest", ctx, testVector).Return(nil, nil).Once()
				// Upsert はリモート追加の成功後にしか呼ばれない
				mockAPI.On("AddQuestion", ctx, session.RemoteToken, quizID, mock.AnythingOfType("*model.AddQuestionRequest")).
					Return(nil, model.ErrUpstream).Once()
			},
			wantErr: model.ErrUpstream,
		},
		{
			name:   "正常系: リモート追加成功後のベクトル登録失敗は操作を失敗させない",
			quizID: quizID,
			req:    &model.AddQuestionRequest{Text: inputText, Options: []string{"はい", "いいえ"}},
			setupMock: func() {
				mockEmbedder.On("Embed", ctx, inputText).Return(testVector, nil).Once()
				mockIndex.On("QueryNearest", ctx, testVector).Return(nil, nil).Once()
				mockAPI.On("AddQuestion", ctx, session.RemoteToken, quizID, mock.AnythingOfType("*model.AddQuestionRequest")).
					Return(expectedQuestion, nil).Once()
				mockIndex.On("Upsert", ctx, inputText, testVector, inputText).
					Return(errors.New("index unavailable")).Once()
				mockAudit.On("Record", ctx, session.UserID, model.AuditActionAddQuestion, quizID, inputText).Return().Once()
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 前のケースの設定をリセット
			mockAPI.Mock = mock.Mock{}
			mockEmbedder.Mock = mock.Mock{}
			mockIndex.Mock = mock.Mock{}
			mockAudit.Mock = mock.Mock{}
			tt.setupMock()

			question, err := quizService.AddQuestion(ctx, session, tt.quizID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, question)
				var appErr *model.AppError
				if tt.wantErrCode != "" && errors.As(err, &appErr) {
					assert.Equal(t, tt.wantErrCode, appErr.Detail.Code)
				}
				// sentinel エラーの場合は種類も確認
				for _, sentinel := range []error{model.ErrInvalidInput, model.ErrConflict, model.ErrUpstream} {
					if errors.Is(tt.wantErr, sentinel) {
						assert.ErrorIs(t, err, sentinel)
					}
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, question)
				assert.Equal(t, expectedQuestion.QuestionID, question.QuestionID)
			}

			mockAPI.AssertExpectations(t)
			mockEmbedder.AssertExpectations(t)
			mockIndex.AssertExpectations(t)
			mockAudit.AssertExpectations(t)
		})
	}
}

// リモート追加が失敗した質問は、同じ質問文でそのまま再試行できること。
// (失敗時にベクトルを登録してしまうと、再試行が自分自身のベクトルと
// 類似度ほぼ1.0でマッチして永久に重複扱いになる)
func Test_quizService_AddQuestion_RetryAfterRemoteFailure(t *testing.T) {
	ctx := context.Background()
	session := testAdminSession()

	inputText := "毛穴の開きが気になりますか？"
	testVector := []float32{0.3, 0.7}
	quizID := "quiz-1"

	mockAPI := new(esthelogymocks.Client)
	mockEmbedder := new(embeddingmocks.Embedder)
	mockIndex := new(vectormocks.Index)
	mockAudit := new(servicemocks.AuditService)
	quizService := service.NewQuizService(mockAPI, mockEmbedder, mockIndex, mockAudit, testQuizConfig())

	// 1回目: リモート追加が失敗する。ベクトルは登録されない
	mockEmbedder.On("Embed", ctx, inputText).Return(testVector, nil).Once()
	mockIndex.On("QueryNearest", ctx, testVector).Return(nil, nil).Once()
	mockAPI.On("AddQuestion", ctx, session.RemoteToken, quizID, mock.AnythingOfType("*model.AddQuestionRequest")).
		Return(nil, model.ErrUpstream).Once()

	_, err := quizService.AddQuestion(ctx, session, quizID, &model.AddQuestionRequest{Text: inputText})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUpstream)
	mockIndex.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	// 2回目: 同じ質問文で再試行。インデックスに残骸がないので重複にならず成功する
	mockEmbedder.On("Embed", ctx, inputText).Return(testVector, nil).Once()
	mockIndex.On("QueryNearest", ctx, testVector).Return(nil, nil).Once()
	mockAPI.On("AddQuestion", ctx, session.RemoteToken, quizID, mock.AnythingOfType("*model.AddQuestionRequest")).
		Return(&model.Question{QuestionID: "question-1", Text: inputText}, nil).Once()
	mockIndex.On("Upsert", ctx, inputText, testVector, inputText).Return(nil).Once()
	mockAudit.On("Record", ctx, session.UserID, model.AuditActionAddQuestion, quizID, inputText).Return().Once()

	question, err := quizService.AddQuestion(ctx, session, quizID, &model.AddQuestionRequest{Text: inputText})
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, "question-1", question.QuestionID)

	mockAPI.AssertExpectations(t)
	mockEmbedder.AssertExpectations(t)
	mockIndex.AssertExpectations(t)
	mockAudit.AssertExpectations(t)
}

// 改行を含む質問文は正規化されてから埋め込み・登録されること
func Test_quizService_AddQuestion_NormalizesText(t *testing.T) {
	ctx := context.Background()
	session := testAdminSession()

	rawText := "乾燥肌に\n悩んでいますか？"
	normalized := "乾燥肌に 悩んでいますか？"
	testVector := []float32{0.5, 0.5}

	mockAPI := new(esthelogymocks.Client)
	mockEmbedder := new(embeddingmocks.Embedder)
	mockIndex := new(vectormocks.Index)
	mockAudit := new(servicemocks.AuditService)

	mockEmbedder.On("Embed", ctx, normalized).Return(testVector, nil).Once()
	mockIndex.On("QueryNearest", ctx, testVector).Return(nil, nil).Once()
	mockIndex.On("Upsert", ctx, normalized, testVector, normalized).Return(nil).Once()
	mockAPI.On("AddQuestion", ctx, session.RemoteToken, "quiz-1", mock.MatchedBy(func(req *model.AddQuestionRequest) bool {
		return req.Text == normalized
	})).Return(&model.Question{QuestionID: "q1", Text: normalized}, nil).Once()
	mockAudit.On("Record", ctx, session.UserID, model.AuditActionAddQuestion, "quiz-1", normalized).Return().Once()

	quizService := service.NewQuizService(mockAPI, mockEmbedder, mockIndex, mockAudit, testQuizConfig())

	question, err := quizService.AddQuestion(ctx, session, "quiz-1", &model.AddQuestionRequest{Text: rawText})

	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, normalized, question.Text)
	mockEmbedder.AssertExpectations(t)
	mockIndex.AssertExpectations(t)
	mockAPI.AssertExpectations(t)
	mockAudit.AssertExpectations(t)
}

func Test_quizService_CheckQuestionSimilarity(t *testing.T) {
	ctx := context.Background()

	testVector := []float32{0.9, 0.1}
	inputText := "敏感肌ですか？"

	mockAPI := new(esthelogymocks.Client)
	mockEmbedder := new(embeddingmocks.Embedder)
	mockIndex := new(vectormocks.Index)
	mockAudit := new(servicemocks.AuditService)

	quizService := service.NewQuizService(mockAPI, mockEmbedder, mockIndex, mockAudit, testQuizConfig())

	tests := []struct {
		name          string
		inputText     string
		setupMock     func()
		wantErr       error
		wantDuplicate bool
		wantMatched   string
	}{
		{
			name:      "正常系: 類似質問が見つかる",
			inputText: inputText,
			setupMock: func() {
				mockEmbedder.On("Embed", ctx, inputText).Return(testVector, nil).Once()
				mockIndex.On("QueryNearest", ctx, testVector).
					Return(&vector.Match{ID: "existing", Score: 0.91, Question: "肌が敏感なほうですか？"}, nil).Once()
			},
			wantDuplicate: true,
			wantMatched:   "肌が敏感なほうですか？",
		},
		{
			name:      "正常系: 類似質問なし",
			inputText: inputText,
			setupMock: func() {
				mockEmbedder.On("Embed", ctx, inputText).Return(testVector, nil).Once()
				mockIndex.On("QueryNearest", ctx, testVector).Return(nil, nil).Once()
			},
			wantDuplicate: false,
		},
		{
			name:      "異常系: 質問文が空",
			inputText: "",
			setupMock: func() {},
			wantErr:   model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEmbedder.Mock = mock.Mock{}
			mockIndex.Mock = mock.Mock{}
			tt.setupMock()

			result, err := quizService.CheckQuestionSimilarity(ctx, tt.inputText)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, tt.wantDuplicate, result.Duplicate)
				if tt.wantDuplicate {
					assert.Equal(t, tt.wantMatched, result.MatchedQuestion)
					assert.Greater(t, result.Score, 0.6)
				}
			}

			mockEmbedder.AssertExpectations(t)
			mockIndex.AssertExpectations(t)
		})
	}
}

func Test_quizService_DeleteQuiz(t *testing.T) {
	ctx := context.Background()
	session := testAdminSession()

	mockAPI := new(esthelogymocks.Client)
	mockAudit := new(servicemocks.AuditService)
	quizService := service.NewQuizService(mockAPI, new(embeddingmocks.Embedder), new(vectormocks.Index), mockAudit, testQuizConfig())

	t.Run("正常系: 削除成功で監査ログが残る", func(t *testing.T) {
		mockAPI.On("DeleteQuiz", ctx, session.RemoteToken, "quiz-9").Return(nil).Once()
		mockAudit.On("Record", ctx, session.UserID, model.AuditActionDeleteQuiz, "quiz-9", "").Return().Once()

		err := quizService.DeleteQuiz(ctx, session, "quiz-9")

		require.NoError(t, err)
		mockAPI.AssertExpectations(t)
		mockAudit.AssertExpectations(t)
	})

	t.Run("異常系: リモート側で見つからない", func(t *testing.T) {
		mockAPI.Mock = mock.Mock{}
		mockAudit.Mock = mock.Mock{}
		mockAPI.On("DeleteQuiz", ctx, session.RemoteToken, "missing").Return(model.ErrNotFound).Once()

		err := quizService.DeleteQuiz(ctx, session, "missing")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockAudit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: クイズIDが空", func(t *testing.T) {
		mockAPI.Mock = mock.Mock{}
		mockAudit.Mock = mock.Mock{}

		err := quizService.DeleteQuiz(ctx, session, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		mockAPI.AssertNotCalled(t, "DeleteQuiz", mock.Anything, mock.Anything, mock.Anything)
	})
}
