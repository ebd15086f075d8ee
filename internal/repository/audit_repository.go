//go:generate mockery --name AuditRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/audit_repository.go
package repository

import (
	"context"
	"fmt"

	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"

	"gorm.io/gorm"
)

// AuditRepository は監査ログの永続化を担います。
type AuditRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *model.AuditLog) error
	List(ctx context.Context, db *gorm.DB, filter model.AuditLogFilter) ([]*model.AuditLog, error)
}

type gormAuditRepository struct{}

func NewGormAuditRepository() AuditRepository {
	return &gormAuditRepository{}
}

func (r *gormAuditRepository) Create(ctx context.Context, tx *gorm.DB, entry *model.AuditLog) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(entry)
	if result.Error != nil {
		logger.Error("Error creating audit log in DB",
			"error", result.Error,
			"action", entry.Action,
			"actor_id", entry.ActorID,
		)
		return fmt.Errorf("gormAuditRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAuditRepository) List(ctx context.Context, db *gorm.DB, filter model.AuditLogFilter) ([]*model.AuditLog, error) {
	logger := middleware.GetLogger(ctx)

	query := db.WithContext(ctx).Model(&model.AuditLog{})
	if filter.ActorID != "" {
		query = query.Where("actor_id = ?", filter.ActorID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var entries []*model.AuditLog
	result := query.Order("created_at DESC").Limit(limit).Offset(filter.Offset).Find(&entries)
	if result.Error != nil {
		logger.Error("Error listing audit logs in DB", "error", result.Error)
		return nil, fmt.Errorf("gormAuditRepository.List: %w", result.Error)
	}
	return entries, nil
}
