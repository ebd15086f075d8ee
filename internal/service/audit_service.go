//go:generate mockery --name AuditService --output ./mocks --outpkg mocks --case=underscore
// internal/service/audit_service.go
package service

import (
	"context"

	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditService は管理者操作の監査ログを記録・参照します。
type AuditService interface {
	// Record は監査ログを記録します。記録の失敗で元の操作を失敗させてはいけないので、
	// エラーはログに残すだけで返しません。
	Record(ctx context.Context, actorID, action, targetID, detail string)
	List(ctx context.Context, filter model.AuditLogFilter) ([]*model.AuditLog, error)
}

type auditService struct {
	db        *gorm.DB
	auditRepo repository.AuditRepository
}

func NewAuditService(db *gorm.DB, auditRepo repository.AuditRepository) AuditService {
	return &auditService{
		db:        db,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, actorID, action, targetID, detail string) {
	logger := middleware.GetLogger(ctx)

	entry := &model.AuditLog{
		AuditID:  uuid.New(),
		ActorID:  actorID,
		Action:   action,
		TargetID: targetID,
		Detail:   detail,
	}
	if err := s.auditRepo.Create(ctx, s.db, entry); err != nil {
		logger.Error("Failed to record audit log", "error", err, "action", action, "target_id", targetID)
	}
}

func (s *auditService) List(ctx context.Context, filter model.AuditLogFilter) ([]*model.AuditLog, error) {
	logger := middleware.GetLogger(ctx)

	entries, err := s.auditRepo.List(ctx, s.db, filter)
	if err != nil {
		logger.Error("Error listing audit logs", "error", err)
		return nil, model.ErrInternalServer
	}
	return entries, nil
}
