// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "EsthelogyAdminConsole"
	AppVersion = "1.2.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultAccessTokenTTL  = 30 * time.Minute
	DefaultRefreshTokenTTL = 12 * time.Hour

	DefaultEsthelogyTimeout = 15 * time.Second

	DefaultEmbeddingModel = "gemini-embedding-001"
	DefaultEmbeddingRPM   = 60

	DefaultPineconeIndex       = "questionnaire-index"
	DefaultSimilarityThreshold = 0.6
)

// Esthelogy APIのエンドポイント
const DefaultEsthelogyBaseURL = "https://dev-eciabackend.esthelogy.com/esthelogy/v1.0"
