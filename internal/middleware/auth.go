// internal/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"esthelogy_admin_console/internal/config"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionResolver はJWTのsubjectからログインセッションを引き当てます。
// 実装は service.AuthService が担います (期限切れ・ログアウト済みの判定込み)。
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID uuid.UUID) (*model.AdminSession, error)
}

// SessionAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// 対応する管理者セッション (リモートAPIトークンを含む) をコンテキストに載せるミドルウェアです。
func SessionAuthMiddleware(cfg *config.Config, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			// 1. Authorization ヘッダーからトークンを取得
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Session auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("Session auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}
			tokenString := headerParts[1]

			// 2. JWTをパースし、署名と有効期限を検証
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				// 署名アルゴリズムが期待通り(HS256)かチェック
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil {
				logger.Warn("Session auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				logger.Warn("Session auth failed: Unknown claims type or invalid token")
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// 3. subject (セッションID) を取り出してセッションを解決
			subject, err := claims.GetSubject()
			if err != nil {
				logger.Warn("Session auth failed: Subject (sub) claim missing", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンにセッション情報が含まれていません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			sessionID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("Session auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンのセッション情報が不正です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			session, err := resolver.ResolveSession(r.Context(), sessionID)
			if err != nil {
				logger.Warn("Session auth failed: Session not resolvable", "session_id", sessionID.String(), "error", err)
				appErr := model.NewAppError("SESSION_EXPIRED", "セッションが無効です。再度ログインしてください。", "", model.ErrSessionNotFound)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionFromContext はコンテキストから管理者セッションを取得します。
func GetSessionFromContext(ctx context.Context) (*model.AdminSession, error) {
	session, ok := ctx.Value(model.SessionKey).(*model.AdminSession)
	if !ok || session == nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからセッション情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return session, nil
}
