// internal/model/audit.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// 監査ログのアクション種別
const (
	AuditActionCreateQuiz         = "quiz.create"
	AuditActionUpdateQuiz         = "quiz.update"
	AuditActionDeleteQuiz         = "quiz.delete"
	AuditActionAddQuestion        = "quiz.add_question"
	AuditActionApproveEsthetician = "esthetician.approve"
	AuditActionRejectEsthetician  = "esthetician.reject"
	AuditActionAnalyzeSkin        = "analysis.skin"
)

// AuditLog は管理者操作の監査ログです。リモートAPIへの変更系操作を
// 誰が・何に対して行ったかをローカルに記録します。
type AuditLog struct {
	AuditID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"audit_id"`
	ActorID   string    `gorm:"not null;index" json:"actor_id"` // リモート側のユーザID
	Action    string    `gorm:"type:varchar(50);not null;index" json:"action"`
	TargetID  string    `gorm:"index" json:"target_id,omitempty"` // quiz_id / esthetician_id など
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// 監査ログ一覧の検索条件
type AuditLogFilter struct {
	ActorID string
	Action  string
	Limit   int
	Offset  int
}
