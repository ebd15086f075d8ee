//go:generate mockery --name EstheticianService --output ./mocks --outpkg mocks --case=underscore
// internal/service/esthetician_service.go
package service

import (
	"context"
	"fmt"

	"esthelogy_admin_console/internal/esthelogy"
	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"
)

// EstheticianService はエステティシャンの承認フローを担います。
// 承認状態の変更はリモートAPIに委譲し、このサービスは結果の通知メール送信と
// 監査ログの記録を追加します。
type EstheticianService interface {
	ListEstheticians(ctx context.Context, session *model.AdminSession, status string) ([]*model.Esthetician, error)
	Approve(ctx context.Context, session *model.AdminSession, estheticianID string) (*model.EstheticianDecisionResponse, error)
	Reject(ctx context.Context, session *model.AdminSession, estheticianID, reason string) (*model.EstheticianDecisionResponse, error)
}

type estheticianService struct {
	api         esthelogy.Client
	mailer      Mailer
	audit       AuditService
	frontendURL string // 通知メールに載せる管理コンソールのURL
}

func NewEstheticianService(api esthelogy.Client, mailer Mailer, audit AuditService, frontendURL string) EstheticianService {
	return &estheticianService{
		api:         api,
		mailer:      mailer,
		audit:       audit,
		frontendURL: frontendURL,
	}
}

func (s *estheticianService) ListEstheticians(ctx context.Context, session *model.AdminSession, status string) ([]*model.Esthetician, error) {
	if status != "" &&
		status != model.EstheticianStatusPending &&
		status != model.EstheticianStatusApproved &&
		status != model.EstheticianStatusRejected {
		return nil, model.NewAppError("INVALID_STATUS", "statusの値が正しくありません。", "status", model.ErrInvalidInput)
	}
	return s.api.ListEstheticians(ctx, session.RemoteToken, status)
}

func (s *estheticianService) Approve(ctx context.Context, session *model.AdminSession, estheticianID string) (*model.EstheticianDecisionResponse, error) {
	logger := middleware.GetLogger(ctx)

	if estheticianID == "" {
		return nil, model.ErrInvalidInput
	}

	esthetician, err := s.api.ApproveEsthetician(ctx, session.RemoteToken, estheticianID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, session.UserID, model.AuditActionApproveEsthetician, estheticianID, "")

	// リモート側の状態変更は確定済みなので、メール送信失敗で操作自体は失敗させない
	notified := s.notify(ctx, esthetician,
		"【Esthelogy】登録申請が承認されました",
		s.withPortalLink(fmt.Sprintf("%s 様\n\nエステティシャン登録の申請が承認されました。\nEsthelogyアプリからサービスの提供を開始いただけます。", esthetician.Name)),
	)
	if !notified {
		logger.Warn("Approval notification email failed", "esthetician_id", estheticianID)
	}

	return &model.EstheticianDecisionResponse{Esthetician: esthetician, Notified: notified}, nil
}

func (s *estheticianService) Reject(ctx context.Context, session *model.AdminSession, estheticianID, reason string) (*model.EstheticianDecisionResponse, error) {
	logger := middleware.GetLogger(ctx)

	if estheticianID == "" || reason == "" {
		return nil, model.ErrInvalidInput
	}

	esthetician, err := s.api.RejectEsthetician(ctx, session.RemoteToken, estheticianID, reason)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, session.UserID, model.AuditActionRejectEsthetician, estheticianID, reason)

	notified := s.notify(ctx, esthetician,
		"【Esthelogy】登録申請について",
		s.withPortalLink(fmt.Sprintf("%s 様\n\n誠に残念ながら、エステティシャン登録の申請は承認されませんでした。\n\n理由: %s\n\n内容をご確認のうえ、再度申請いただけます。", esthetician.Name, reason)),
	)
	if !notified {
		logger.Warn("Rejection notification email failed", "esthetician_id", estheticianID)
	}

	return &model.EstheticianDecisionResponse{Esthetician: esthetician, Notified: notified}, nil
}

// withPortalLink はメール本文の末尾に申請状況確認ページへのリンクを付けます。
func (s *estheticianService) withPortalLink(body string) string {
	if s.frontendURL == "" {
		return body
	}
	return fmt.Sprintf("%s\n\n申請状況はこちらからご確認いただけます:\n%s", body, s.frontendURL)
}

func (s *estheticianService) notify(ctx context.Context, esthetician *model.Esthetician, subject, body string) bool {
	if esthetician.Email == "" {
		return false
	}
	if err := s.mailer.Send(ctx, esthetician.Email, subject, body); err != nil {
		return false
	}
	return true
}
