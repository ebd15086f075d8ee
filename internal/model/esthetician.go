// internal/model/esthetician.go
package model

// エステティシャンの承認ステータス
const (
	EstheticianStatusPending  = "pending"
	EstheticianStatusApproved = "approved"
	EstheticianStatusRejected = "rejected"
)

// Esthetician はリモートAPI上のエステティシャン登録情報です。
// 検証・永続化はリモート側の責務で、ここでは受け渡しのみを行います。
type Esthetician struct {
	EstheticianID string `json:"esthetician_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	LicenseNumber string `json:"license_number"`
	LicenseIssuer string `json:"license_issuer,omitempty"`
	Status        string `json:"status"`
	RejectReason  string `json:"reject_reason,omitempty"`
	AppliedAt     string `json:"applied_at,omitempty"`
}

// 否認リクエストDTO
type RejectEstheticianRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}

// EstheticianDecisionResponse は承認・否認操作のレスポンスです。
// Notified は通知メールの送信に成功したかどうかを示します
// (リモート側の状態変更は成功していても、メール送信だけ失敗することがある)。
type EstheticianDecisionResponse struct {
	Esthetician *Esthetician `json:"esthetician"`
	Notified    bool         `json:"notified"`
}
