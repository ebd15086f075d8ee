//go:generate mockery --name Client --output ./mocks --outpkg mocks --case=underscore
// internal/esthelogy/client.go
package esthelogy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"
)

// Client はEsthelogyバックエンドAPIへの呼び出しを抽象化します。
// 認証・クイズCRUD・受験フロー・エステティシャン承認・肌解析はすべて
// リモート側の責務で、このクライアントはJSONの受け渡しとステータス判定のみを行います。
type Client interface {
	Login(ctx context.Context, email, password string) (*model.RemoteLoginResult, error)

	ListQuizzes(ctx context.Context, token string) ([]*model.Quiz, error)
	GetQuiz(ctx context.Context, token, quizID string) (*model.Quiz, error)
	CreateQuiz(ctx context.Context, token string, req *model.CreateQuizRequest) (*model.Quiz, error)
	UpdateQuiz(ctx context.Context, token, quizID string, req *model.UpdateQuizRequest) (*model.Quiz, error)
	DeleteQuiz(ctx context.Context, token, quizID string) error
	AddQuestion(ctx context.Context, token, quizID string, req *model.AddQuestionRequest) (*model.Question, error)

	StartQuiz(ctx context.Context, token, quizID string) (*model.TakeSession, error)
	SubmitAnswer(ctx context.Context, token, takeID string, req *model.SubmitAnswerRequest) (*model.AnswerResult, error)
	CompleteQuiz(ctx context.Context, token, takeID string) (*model.TakeResult, error)

	ListEstheticians(ctx context.Context, token, status string) ([]*model.Esthetician, error)
	ApproveEsthetician(ctx context.Context, token, estheticianID string) (*model.Esthetician, error)
	RejectEsthetician(ctx context.Context, token, estheticianID, reason string) (*model.Esthetician, error)

	AnalyzeSkin(ctx context.Context, token string, req *model.SkinAnalysisRequest) (*model.SkinAnalysisResult, error)
}

// httpClient は net/http ベースの Client 実装です。
type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// remoteError はリモートAPIがエラー時に返すJSONボディです。
type remoteError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// doJSON はリクエストの組み立て・送信・レスポンスのデコードをまとめて行います。
// in が nil ならボディなし、out が nil ならレスポンスボディを読み捨てます。
func (c *httpClient) doJSON(ctx context.Context, method, path, token string, in, out interface{}) error {
	logger := middleware.GetLogger(ctx)

	var bodyReader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			logger.Error("Failed to marshal request body for Esthelogy API", "error", err, "path", path)
			return model.ErrInternalServer
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		logger.Error("Failed to build request for Esthelogy API", "error", err, "path", path)
		return model.ErrInternalServer
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("Esthelogy API request failed", "error", err, "method", method, "path", path)
		return model.NewAppError("UPSTREAM_UNREACHABLE", "Esthelogy APIに接続できませんでした。", "", model.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapStatusError(ctx, resp, method, path)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("Failed to decode Esthelogy API response", "error", err, "method", method, "path", path)
		return model.NewAppError("UPSTREAM_BAD_RESPONSE", "Esthelogy APIの応答を解釈できませんでした。", "", model.ErrUpstream)
	}
	return nil
}

// mapStatusError はHTTPステータスをセンチネルエラーへ変換します。リトライは行いません。
func (c *httpClient) mapStatusError(ctx context.Context, resp *http.Response, method, path string) error {
	logger := middleware.GetLogger(ctx)

	var remote remoteError
	// エラーボディは best-effort で読む (JSONでなくても処理は続行)
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(body, &remote)

	logger.Warn("Esthelogy API returned error status",
		"status", resp.StatusCode,
		"method", method,
		"path", path,
		"remote_message", remote.Message,
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return model.NewAppError("UPSTREAM_FORBIDDEN", "Esthelogy APIへの認証に失敗しました。", "", model.ErrForbidden)
	case resp.StatusCode == http.StatusNotFound:
		return model.NewAppError("UPSTREAM_NOT_FOUND", "対象のリソースが見つかりません。", "", model.ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return model.NewAppError("UPSTREAM_CONFLICT", "リソースが競合しています。", "", model.ErrConflict)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		message := remote.Message
		if message == "" {
			message = "リクエストの内容が正しくありません。"
		}
		return model.NewAppError("UPSTREAM_REJECTED", message, "", model.ErrInvalidInput)
	default:
		return model.NewAppError("UPSTREAM_ERROR", "Esthelogy APIでエラーが発生しました。時間をおいて再度お試しください。", "", model.ErrUpstream)
	}
}

// --- 認証 ---

func (c *httpClient) Login(ctx context.Context, email, password string) (*model.RemoteLoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var result model.RemoteLoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/user/login", "", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// --- クイズCRUD ---

func (c *httpClient) ListQuizzes(ctx context.Context, token string) ([]*model.Quiz, error) {
	var result struct {
		Quizzes []*model.Quiz `json:"quizzes"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/quiz/list", token, nil, &result); err != nil {
		return nil, err
	}
	return result.Quizzes, nil
}

func (c *httpClient) GetQuiz(ctx context.Context, token, quizID string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := c.doJSON(ctx, http.MethodGet, "/quiz/"+url.PathEscape(quizID), token, nil, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *httpClient) CreateQuiz(ctx context.Context, token string, req *model.CreateQuizRequest) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := c.doJSON(ctx, http.MethodPost, "/quiz/create", token, req, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *httpClient) UpdateQuiz(ctx context.Context, token, quizID string, req *model.UpdateQuizRequest) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := c.doJSON(ctx, http.MethodPut, "/quiz/"+url.PathEscape(quizID), token, req, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *httpClient) DeleteQuiz(ctx context.Context, token, quizID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/quiz/"+url.PathEscape(quizID), token, nil, nil)
}

func (c *httpClient) AddQuestion(ctx context.Context, token, quizID string, req *model.AddQuestionRequest) (*model.Question, error) {
	var question model.Question
	path := fmt.Sprintf("/quiz/%s/question", url.PathEscape(quizID))
	if err := c.doJSON(ctx, http.MethodPost, path, token, req, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// --- 受験フロー ---

func (c *httpClient) StartQuiz(ctx context.Context, token, quizID string) (*model.TakeSession, error) {
	var session model.TakeSession
	path := fmt.Sprintf("/quiz/%s/start", url.PathEscape(quizID))
	if err := c.doJSON(ctx, http.MethodPost, path, token, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *httpClient) SubmitAnswer(ctx context.Context, token, takeID string, req *model.SubmitAnswerRequest) (*model.AnswerResult, error) {
	var result model.AnswerResult
	path := fmt.Sprintf("/quiz/take/%s/answer", url.PathEscape(takeID))
	if err := c.doJSON(ctx, http.MethodPost, path, token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpClient) CompleteQuiz(ctx context.Context, token, takeID string) (*model.TakeResult, error) {
	var result model.TakeResult
	path := fmt.Sprintf("/quiz/take/%s/complete", url.PathEscape(takeID))
	if err := c.doJSON(ctx, http.MethodPost, path, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// --- エステティシャン承認 ---

func (c *httpClient) ListEstheticians(ctx context.Context, token, status string) ([]*model.Esthetician, error) {
	path := "/esthetician/list"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var result struct {
		Estheticians []*model.Esthetician `json:"estheticians"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &result); err != nil {
		return nil, err
	}
	return result.Estheticians, nil
}

func (c *httpClient) ApproveEsthetician(ctx context.Context, token, estheticianID string) (*model.Esthetician, error) {
	var esthetician model.Esthetician
	path := fmt.Sprintf("/esthetician/%s/approve", url.PathEscape(estheticianID))
	if err := c.doJSON(ctx, http.MethodPost, path, token, nil, &esthetician); err != nil {
		return nil, err
	}
	return &esthetician, nil
}

func (c *httpClient) RejectEsthetician(ctx context.Context, token, estheticianID, reason string) (*model.Esthetician, error) {
	var esthetician model.Esthetician
	payload := map[string]string{"reason": reason}
	path := fmt.Sprintf("/esthetician/%s/reject", url.PathEscape(estheticianID))
	if err := c.doJSON(ctx, http.MethodPost, path, token, payload, &esthetician); err != nil {
		return nil, err
	}
	return &esthetician, nil
}

// --- 肌解析 ---

func (c *httpClient) AnalyzeSkin(ctx context.Context, token string, req *model.SkinAnalysisRequest) (*model.SkinAnalysisResult, error) {
	var result model.SkinAnalysisResult
	if err := c.doJSON(ctx, http.MethodPost, "/analysis/skin", token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
