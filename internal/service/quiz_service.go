//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
// internal/service/quiz_service.go
package service

import (
	"context"
	"fmt"

	"esthelogy_admin_console/internal/config"
	"esthelogy_admin_console/internal/embedding"
	"esthelogy_admin_console/internal/esthelogy"
	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/vector"
)

// QuizService はクイズCRUDの中継と、質問追加時の重複ゲートを担います。
// CRUD自体はリモートAPIへのパススルーで、このサービス固有のロジックは
// 埋め込みベースの類似チェックと監査ログの記録だけです。
type QuizService interface {
	ListQuizzes(ctx context.Context, session *model.AdminSession) ([]*model.Quiz, error)
	GetQuiz(ctx context.Context, session *model.AdminSession, quizID string) (*model.Quiz, error)
	CreateQuiz(ctx context.Context, session *model.AdminSession, req *model.CreateQuizRequest) (*model.Quiz, error)
	UpdateQuiz(ctx context.Context, session *model.AdminSession, quizID string, req *model.UpdateQuizRequest) (*model.Quiz, error)
	DeleteQuiz(ctx context.Context, session *model.AdminSession, quizID string) error
	AddQuestion(ctx context.Context, session *model.AdminSession, quizID string, req *model.AddQuestionRequest) (*model.Question, error)
	CheckQuestionSimilarity(ctx context.Context, text string) (*model.SimilarityResult, error)
}

type quizService struct {
	api      esthelogy.Client
	embedder embedding.Embedder
	index    vector.Index
	audit    AuditService
	cfg      *config.Config
}

func NewQuizService(api esthelogy.Client, embedder embedding.Embedder, index vector.Index, audit AuditService, cfg *config.Config) QuizService {
	return &quizService{
		api:      api,
		embedder: embedder,
		index:    index,
		audit:    audit,
		cfg:      cfg,
	}
}

func (s *quizService) ListQuizzes(ctx context.Context, session *model.AdminSession) ([]*model.Quiz, error) {
	return s.api.ListQuizzes(ctx, session.RemoteToken)
}

func (s *quizService) GetQuiz(ctx context.Context, session *model.AdminSession, quizID string) (*model.Quiz, error) {
	if quizID == "" {
		return nil, model.ErrInvalidInput
	}
	return s.api.GetQuiz(ctx, session.RemoteToken, quizID)
}

func (s *quizService) CreateQuiz(ctx context.Context, session *model.AdminSession, req *model.CreateQuizRequest) (*model.Quiz, error) {
	quiz, err := s.api.CreateQuiz(ctx, session.RemoteToken, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, session.UserID, model.AuditActionCreateQuiz, quiz.QuizID, quiz.Title)
	return quiz, nil
}

func (s *quizService) UpdateQuiz(ctx context.Context, session *model.AdminSession, quizID string, req *model.UpdateQuizRequest) (*model.Quiz, error) {
	if quizID == "" {
		return nil, model.ErrInvalidInput
	}
	quiz, err := s.api.UpdateQuiz(ctx, session.RemoteToken, quizID, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, session.UserID, model.AuditActionUpdateQuiz, quizID, "")
	return quiz, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, session *model.AdminSession, quizID string) error {
	if quizID == "" {
		return model.ErrInvalidInput
	}
	if err := s.api.DeleteQuiz(ctx, session.RemoteToken, quizID); err != nil {
		return err
	}
	s.audit.Record(ctx, session.UserID, model.AuditActionDeleteQuiz, quizID, "")
	return nil
}

// AddQuestion は重複ゲートを通過した質問だけをリモートAPIに登録します。
// ゲート通過後の流れ: リモートに質問追加 → ベクトル登録 → 監査ログ。
// リモート追加が失敗した時点ではベクトルは登録していないので、
// 同じ質問文をそのまま再試行できる (孤児ベクトルが再試行を弾くことはない)。
// 逆に質問追加成功後のベクトル登録失敗は、以後の重複検出が弱くなるだけなので
// 警告ログに留めて操作自体は成功として返す。
func (s *quizService) AddQuestion(ctx context.Context, session *model.AdminSession, quizID string, req *model.AddQuestionRequest) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	if quizID == "" || embedding.NormalizeText(req.Text) == "" {
		return nil, model.ErrInvalidInput
	}
	text := embedding.NormalizeText(req.Text)

	values, result, err := s.checkSimilarity(ctx, text)
	if err != nil {
		return nil, err
	}
	if result.Duplicate {
		logger.Info("Question rejected as duplicate",
			"matched_question", result.MatchedQuestion,
			"score", result.Score,
		)
		message := fmt.Sprintf(
			"既存の質問「%s」と類似しています（類似度 %.2f%%）。内容を見直してください。",
			result.MatchedQuestion, result.Score*100,
		)
		return nil, model.NewAppError("DUPLICATE_QUESTION", message, "text", model.ErrConflict)
	}

	question, err := s.api.AddQuestion(ctx, session.RemoteToken, quizID, &model.AddQuestionRequest{
		Text:    text,
		Options: req.Options,
	})
	if err != nil {
		return nil, err
	}

	if err := s.index.Upsert(ctx, text, values, text); err != nil {
		logger.Warn("Failed to index question vector after remote add",
			"error", err,
			"quiz_id", quizID,
			"question_id", question.QuestionID,
		)
	}

	s.audit.Record(ctx, session.UserID, model.AuditActionAddQuestion, quizID, text)
	logger.Info("Question added", "quiz_id", quizID, "question_id", question.QuestionID)
	return question, nil
}

// CheckQuestionSimilarity はベクトルを登録せずに類似チェックだけを行います。
func (s *quizService) CheckQuestionSimilarity(ctx context.Context, text string) (*model.SimilarityResult, error) {
	text = embedding.NormalizeText(text)
	if text == "" {
		return nil, model.ErrInvalidInput
	}
	_, result, err := s.checkSimilarity(ctx, text)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// checkSimilarity は埋め込み生成と最近傍検索を行い、閾値判定の結果を返します。
// 外部サービスのエラーは「重複なし」に潰さず、そのまま失敗させます
// (重複ゲートとしてはフェイルクローズ)。
func (s *quizService) checkSimilarity(ctx context.Context, text string) ([]float32, *model.SimilarityResult, error) {
	values, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, nil, err
	}

	match, err := s.index.QueryNearest(ctx, values)
	if err != nil {
		return nil, nil, err
	}

	result := &model.SimilarityResult{}
	// 閾値ちょうどは重複扱いにしない (厳密に score > threshold)
	if match != nil && match.Score > s.cfg.Pinecone.Threshold {
		result.Duplicate = true
		result.MatchedQuestion = match.Question
		result.Score = match.Score
	}
	return values, result, nil
}
