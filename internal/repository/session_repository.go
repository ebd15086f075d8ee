//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/session_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SessionRepository は管理者セッションの永続化を担います。
type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.AdminSession) error
	FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.AdminSession, error)
	UpdateTokens(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, refreshTokenHash string, expiresAt time.Time) error
	Delete(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

// isUniqueViolation はPostgresの一意制約違反(23505)かどうかを判定します。
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.AdminSession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating admin session in DB",
			"error", result.Error,
			"user_id", session.UserID,
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.AdminSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.AdminSession
	result := db.WithContext(ctx).Where("session_id = ?", sessionID).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding admin session by ID in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

func (r *gormSessionRepository) UpdateTokens(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, refreshTokenHash string, expiresAt time.Time) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.AdminSession{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"refresh_token_hash": refreshTokenHash,
			"expires_at":         expiresAt,
		})
	if result.Error != nil {
		logger.Error("Error updating admin session tokens in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return fmt.Errorf("gormSessionRepository.UpdateTokens: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSessionRepository) Delete(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&model.AdminSession{})
	if result.Error != nil {
		logger.Error("Error deleting admin session in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSessionRepository) DeleteExpired(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.AdminSession{})
	if result.Error != nil {
		logger.Error("Error deleting expired admin sessions in DB", "error", result.Error)
		return 0, fmt.Errorf("gormSessionRepository.DeleteExpired: %w", result.Error)
	}
	return result.RowsAffected, nil
}
