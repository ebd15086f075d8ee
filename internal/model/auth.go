// internal/model/auth.go
package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest はログインAPIのリクエストボディ。
// 認証自体はEsthelogy APIに委譲し、role=admin のユーザのみセッションを発行します。
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`  // アクセストークンの有効秒数
	SessionID    string `json:"session_id"` // リフレッシュ時にそのまま渡す
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
}

// RefreshRequest はアクセストークン再発行のリクエストボディ
type RefreshRequest struct {
	SessionID    string `json:"session_id" validate:"required,uuid4"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse はトークン再発行のレスポンス。リフレッシュトークンは毎回ローテーションします。
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// JWTCustomClaims はJWTに含めるカスタムクレーム（ペイロード）
type JWTCustomClaims struct {
	Role                 string `json:"role,omitempty"`
	jwt.RegisteredClaims        // 標準クレーム (iss, sub, exp など) を埋め込む
}

// RemoteLoginResult はEsthelogy APIのログインレスポンスです。
type RemoteLoginResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}
