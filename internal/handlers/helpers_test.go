// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"esthelogy_admin_console/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// テスト用の管理者セッション
func newTestSession() *model.AdminSession {
	return &model.AdminSession{
		SessionID:   uuid.New(),
		UserID:      "admin-user-1",
		Email:       "admin@example.com",
		Role:        "admin",
		RemoteToken: "remote-access-token",
	}
}

// sessionInjector は認証ミドルウェアの代わりに、固定のセッションを
// コンテキストに載せるテスト用ミドルウェアです。
// session が nil の場合は何も載せません (未認証リクエストの再現)。
func sessionInjector(session *model.AdminSession) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session != nil {
				ctx := context.WithValue(r.Context(), model.SessionKey, session)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// createRequest はJSONボディつきのテストリクエストを作成します。
func createRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeErrorResponse はエラーレスポンスのボディをデコードします。
func decodeErrorResponse(t *testing.T, body *bytes.Buffer) model.APIErrorResponse {
	t.Helper()

	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &errResp))
	return errResp
}
