// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminSession は管理者のログインセッションです。
// Esthelogy APIから受け取ったアクセストークンを預かり、
// ゲートウェイ発行のJWT (sub=SessionID) と紐付けます。
// リフレッシュトークンは平文では保存せず、bcryptハッシュのみ保持します。
type AdminSession struct {
	SessionID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"session_id"`
	UserID           string         `gorm:"not null;index" json:"user_id"` // リモート側のユーザID
	Email            string         `gorm:"not null" json:"email"`
	Role             string         `gorm:"not null" json:"role"`
	RemoteToken      string         `gorm:"not null" json:"-"` // Esthelogy APIのアクセストークン
	RefreshTokenHash string         `gorm:"not null" json:"-"`
	ExpiresAt        time.Time      `gorm:"not null;index" json:"expires_at"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"-"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"` // ログアウトは論理削除
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}

type ContextKey string

const (
	SessionKey ContextKey = "adminSession"
)
