//go:generate mockery --name TakeService --output ./mocks --outpkg mocks --case=underscore
// internal/service/take_service.go
package service

import (
	"context"

	"esthelogy_admin_console/internal/esthelogy"
	"esthelogy_admin_console/internal/model"
)

// TakeService はクイズ受験フローのパススルーです。
// 管理画面から作成直後のクイズの動作確認に使います。状態はすべてリモート側が持ちます。
type TakeService interface {
	StartQuiz(ctx context.Context, session *model.AdminSession, quizID string) (*model.TakeSession, error)
	SubmitAnswer(ctx context.Context, session *model.AdminSession, takeID string, req *model.SubmitAnswerRequest) (*model.AnswerResult, error)
	CompleteQuiz(ctx context.Context, session *model.AdminSession, takeID string) (*model.TakeResult, error)
}

type takeService struct {
	api esthelogy.Client
}

func NewTakeService(api esthelogy.Client) TakeService {
	return &takeService{api: api}
}

func (s *takeService) StartQuiz(ctx context.Context, session *model.AdminSession, quizID string) (*model.TakeSession, error) {
	if quizID == "" {
		return nil, model.ErrInvalidInput
	}
	return s.api.StartQuiz(ctx, session.RemoteToken, quizID)
}

func (s *takeService) SubmitAnswer(ctx context.Context, session *model.AdminSession, takeID string, req *model.SubmitAnswerRequest) (*model.AnswerResult, error) {
	if takeID == "" {
		return nil, model.ErrInvalidInput
	}
	return s.api.SubmitAnswer(ctx, session.RemoteToken, takeID, req)
}

func (s *takeService) CompleteQuiz(ctx context.Context, session *model.AdminSession, takeID string) (*model.TakeResult, error) {
	if takeID == "" {
		return nil, model.ErrInvalidInput
	}
	return s.api.CompleteQuiz(ctx, session.RemoteToken, takeID)
}
