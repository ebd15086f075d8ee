//go:generate mockery --name Embedder --output ./mocks --outpkg mocks --case=underscore
// internal/embedding/embedder.go
package embedding

import (
	"context"
	"strings"

	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Embedder はテキストをベクトルに変換します。
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// GeminiEmbedder は Gemini の埋め込みAPIを使う Embedder 実装です。
// 埋め込みAPIのレート制限に合わせ、呼び出し側でリミッタをかけます。
type GeminiEmbedder struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

func NewGeminiEmbedder(client *genai.Client, model string, requestsPerMinute int) *GeminiEmbedder {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	return &GeminiEmbedder{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
	}
}

// NormalizeText は埋め込み前のテキスト正規化です。改行は空白に潰します。
func NormalizeText(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
}

func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	logger := middleware.GetLogger(ctx)

	text = NormalizeText(text)
	if text == "" {
		return nil, model.ErrInvalidInput
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		logger.Error("Gemini embedding request failed", "error", err, "model", e.model)
		return nil, model.NewAppError("EMBEDDING_FAILED", "埋め込みの生成に失敗しました。", "", model.ErrUpstream)
	}
	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		logger.Error("Gemini returned empty embedding", "model", e.model)
		return nil, model.NewAppError("EMBEDDING_FAILED", "埋め込みの生成に失敗しました。", "", model.ErrUpstream)
	}

	return result.Embeddings[0].Values, nil
}
