//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
// internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"esthelogy_admin_console/internal/config"
	"esthelogy_admin_console/internal/esthelogy"
	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 管理コンソールを利用できるロール
const adminRole = "admin"

// AuthService は管理者の認証とセッション管理を担います。
// パスワードの検証はEsthelogy APIに委譲し、このサービスは
// role=admin の確認・セッションの発行・トークンのローテーションのみを行います。
type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Refresh(ctx context.Context, req *model.RefreshRequest) (*model.RefreshResponse, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ResolveSession(ctx context.Context, sessionID uuid.UUID) (*model.AdminSession, error)
}

type authService struct {
	db          *gorm.DB
	api         esthelogy.Client
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewAuthService(db *gorm.DB, api esthelogy.Client, sessionRepo repository.SessionRepository, cfg *config.Config) AuthService {
	return &authService{
		db:          db,
		api:         api,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// Login はリモートAPIで認証し、管理者ならセッションとトークンを発行します。
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	result, err := s.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		// 401等はクライアント側のステータスマッピングで処理済みだが、
		// 認証失敗は資格情報エラーとして統一したメッセージで返す
		if errors.Is(err, model.ErrForbidden) || errors.Is(err, model.ErrInvalidInput) {
			logger.Warn("Login failed: remote authentication rejected")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrInvalidInput)
		}
		logger.Error("Login failed: remote API error", "error", err)
		return nil, err
	}

	if !result.Success {
		logger.Warn("Login failed: remote API returned success=false", "remote_message", result.Message)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrInvalidInput)
	}

	if result.Role != adminRole {
		logger.Warn("Login rejected: non-admin role", "role", result.Role, "user_id", result.UserID)
		return nil, model.NewAppError("NOT_ADMIN", "管理者権限がありません。", "", model.ErrForbidden)
	}

	// セッション作成とトークン発行
	sessionID := uuid.New()
	refreshToken, refreshHash, err := s.newRefreshToken()
	if err != nil {
		logger.Error("Failed to generate refresh token", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	session := &model.AdminSession{
		SessionID:        sessionID,
		UserID:           result.UserID,
		Email:            req.Email,
		Role:             result.Role,
		RemoteToken:      result.AccessToken,
		RefreshTokenHash: refreshHash,
		ExpiresAt:        time.Now().Add(s.cfg.JWT.RefreshTokenTTL),
	}
	if err := s.sessionRepo.Create(ctx, s.db, session); err != nil {
		logger.Error("Failed to persist admin session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの作成に失敗しました。", "", err)
	}

	accessToken, err := s.signAccessToken(sessionID, result.Role)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "session_id", sessionID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Login successful", "user_id", result.UserID, "session_id", sessionID)
	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.cfg.JWT.AccessTokenTTL.Seconds()),
		SessionID:    sessionID.String(),
		UserID:       result.UserID,
		Role:         result.Role,
	}, nil
}

// Refresh はリフレッシュトークンを検証してアクセストークンを再発行します。
// リフレッシュトークンは使い捨てで、毎回ローテーションします。
func (s *authService) Refresh(ctx context.Context, req *model.RefreshRequest) (*model.RefreshResponse, error) {
	logger := middleware.GetLogger(ctx)

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, model.NewAppError("INVALID_REQUEST", "セッションIDの形式が正しくありません。", "session_id", model.ErrInvalidInput)
	}
	logger = logger.With("session_id", sessionID.String())

	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Refresh failed: session not found")
			return nil, model.NewAppError("SESSION_EXPIRED", "セッションが無効です。再度ログインしてください。", "", model.ErrSessionNotFound)
		}
		logger.Error("Refresh failed: db error", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	if time.Now().After(session.ExpiresAt) {
		logger.Warn("Refresh failed: session expired", "expires_at", session.ExpiresAt)
		return nil, model.NewAppError("SESSION_EXPIRED", "セッションの有効期限が切れています。再度ログインしてください。", "", model.ErrSessionNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(session.RefreshTokenHash), []byte(req.RefreshToken)); err != nil {
		logger.Warn("Refresh failed: refresh token mismatch")
		return nil, model.NewAppError("INVALID_TOKEN", "リフレッシュトークンが正しくありません。", "", model.ErrForbidden)
	}

	newRefreshToken, newHash, err := s.newRefreshToken()
	if err != nil {
		logger.Error("Failed to rotate refresh token", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	newExpiry := time.Now().Add(s.cfg.JWT.RefreshTokenTTL)
	if err := s.sessionRepo.UpdateTokens(ctx, s.db, sessionID, newHash, newExpiry); err != nil {
		logger.Error("Failed to update session tokens", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの更新に失敗しました。", "", err)
	}

	accessToken, err := s.signAccessToken(sessionID, session.Role)
	if err != nil {
		logger.Error("Failed to sign JWT on refresh", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Access token refreshed")
	return &model.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    int64(s.cfg.JWT.AccessTokenTTL.Seconds()),
	}, nil
}

// Logout はセッションを破棄します。
func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID.String())

	if err := s.sessionRepo.Delete(ctx, s.db, sessionID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 既に破棄済みなら成功扱い
			return nil
		}
		logger.Error("Failed to delete admin session", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "ログアウト処理に失敗しました。", "", err)
	}
	logger.Info("Logged out")
	return nil
}

// ResolveSession は認証ミドルウェアから呼ばれ、有効なセッションを返します。
func (s *authService) ResolveSession(ctx context.Context, sessionID uuid.UUID) (*model.AdminSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// --- ヘルパー関数 ---

func (s *authService) newRefreshToken() (token string, hash string, err error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(tokenBytes)

	hashed, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return token, string(hashed), nil
}

func (s *authService) signAccessToken(sessionID uuid.UUID, role string) (string, error) {
	claims := &model.JWTCustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.App.Name,
			Subject:   sessionID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.JWT.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}
