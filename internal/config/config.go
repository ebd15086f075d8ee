// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

type Config struct {
	App struct {
		Name        string `mapstructure:"name"`
		FrontendURL string `mapstructure:"frontend_url"`
	} `mapstructure:"app"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	JWT struct {
		SecretKey       string        `mapstructure:"secret_key"`
		AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
		RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Esthelogy struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"esthelogy"`
	Gemini struct {
		APIKey            string `mapstructure:"api_key"`
		Model             string `mapstructure:"model"`
		RequestsPerMinute int    `mapstructure:"requests_per_minute"`
	} `mapstructure:"gemini"`
	Pinecone struct {
		APIKey    string  `mapstructure:"api_key"`
		Index     string  `mapstructure:"index"`
		Namespace string  `mapstructure:"namespace"`
		Threshold float64 `mapstructure:"threshold"`
	} `mapstructure:"pinecone"`
	Mailer struct {
		Type string `mapstructure:"type"` // "ses" / "smtp" / "log"
	} `mapstructure:"mailer"`
	SMTP SMTPConfig `mapstructure:"smtp"`
	SES  SESConfig  `mapstructure:"ses"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 秘密情報は環境変数での上書きを想定 (例: APP_GEMINI_API_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("esthelogy.base_url", "ESTHELOGY_BASE_URL")
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("pinecone.api_key", "PINECONE_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.App.Name == "" {
		Cfg.App.Name = AppName
	}
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Esthelogy.BaseURL == "" {
		log.Println("Esthelogy base URL not set, using default")
		Cfg.Esthelogy.BaseURL = DefaultEsthelogyBaseURL
	}
	if Cfg.Esthelogy.Timeout <= 0 {
		Cfg.Esthelogy.Timeout = DefaultEsthelogyTimeout
	}
	if Cfg.JWT.AccessTokenTTL <= 0 {
		Cfg.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if Cfg.JWT.RefreshTokenTTL <= 0 {
		Cfg.JWT.RefreshTokenTTL = DefaultRefreshTokenTTL
	}
	if Cfg.Gemini.Model == "" {
		Cfg.Gemini.Model = DefaultEmbeddingModel
	}
	if Cfg.Gemini.RequestsPerMinute <= 0 {
		Cfg.Gemini.RequestsPerMinute = DefaultEmbeddingRPM
	}
	if Cfg.Pinecone.Index == "" {
		Cfg.Pinecone.Index = DefaultPineconeIndex
	}
	// 閾値は未設定時のみデフォルトを採用する (0は「常に重複」で意味を成さないため)
	if Cfg.Pinecone.Threshold <= 0 || Cfg.Pinecone.Threshold >= 1 {
		if viper.IsSet("pinecone.threshold") {
			log.Printf("Invalid pinecone.threshold=%f, falling back to default %.2f", Cfg.Pinecone.Threshold, DefaultSimilarityThreshold)
		}
		Cfg.Pinecone.Threshold = DefaultSimilarityThreshold
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Esthelogy Base URL: %s", Cfg.Esthelogy.BaseURL)
	log.Printf("Similarity Threshold: %.2f", Cfg.Pinecone.Threshold)

	return nil
}
