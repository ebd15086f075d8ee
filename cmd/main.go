// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"
	"google.golang.org/genai"

	"esthelogy_admin_console/internal/config"
	"esthelogy_admin_console/internal/embedding"
	"esthelogy_admin_console/internal/esthelogy"
	"esthelogy_admin_console/internal/handlers"
	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/repository"
	"esthelogy_admin_console/internal/service"
	"esthelogy_admin_console/internal/vector"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...",
		slog.String("app", config.Cfg.App.Name),
		slog.String("version", config.AppVersion),
	)

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 3. Initialize External Clients
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	apiClient := esthelogy.NewHTTPClient(config.Cfg.Esthelogy.BaseURL, config.Cfg.Esthelogy.Timeout)

	genaiClient, err := genai.NewClient(startupCtx, &genai.ClientConfig{
		APIKey:  config.Cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		slog.Error("Error initializing Gemini client", slog.Any("error", err))
		os.Exit(1)
	}
	embedder := embedding.NewGeminiEmbedder(genaiClient, config.Cfg.Gemini.Model, config.Cfg.Gemini.RequestsPerMinute)

	index, err := vector.NewPineconeIndex(startupCtx, config.Cfg.Pinecone.APIKey, config.Cfg.Pinecone.Index, config.Cfg.Pinecone.Namespace)
	if err != nil {
		slog.Error("Error initializing Pinecone index", slog.Any("error", err), slog.String("index", config.Cfg.Pinecone.Index))
		os.Exit(1)
	}

	mailer := service.NewMailer(&config.Cfg)

	// 4. Dependency Injection
	sessionRepo := repository.NewGormSessionRepository()
	auditRepo := repository.NewGormAuditRepository()

	auditService := service.NewAuditService(db, auditRepo)
	authService := service.NewAuthService(db, apiClient, sessionRepo, &config.Cfg)
	quizService := service.NewQuizService(apiClient, embedder, index, auditService, &config.Cfg)
	takeService := service.NewTakeService(apiClient)
	estheticianService := service.NewEstheticianService(apiClient, mailer, auditService, config.Cfg.App.FrontendURL)
	analysisService := service.NewAnalysisService(apiClient, auditService)

	authHandler := handlers.NewAuthHandler(authService, logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger)
	takeHandler := handlers.NewTakeHandler(takeService, logger)
	estheticianHandler := handlers.NewEstheticianHandler(estheticianService, logger)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, logger)
	auditHandler := handlers.NewAuditHandler(auditService, logger)

	// 5. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		// --- Protected routes (require admin session) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuthMiddleware(&config.Cfg, authService))

			r.Post("/auth/logout", authHandler.Logout)

			// Quiz routes
			r.Route("/quizzes", func(r chi.Router) {
				r.Get("/", quizHandler.ListQuizzes)
				r.Post("/", quizHandler.CreateQuiz)
				r.Get("/{quiz_id}", quizHandler.GetQuiz)
				r.Put("/{quiz_id}", quizHandler.UpdateQuiz)
				r.Delete("/{quiz_id}", quizHandler.DeleteQuiz)
				r.Post("/{quiz_id}/questions", quizHandler.AddQuestion)
			})
			r.Post("/questions/similarity-check", quizHandler.CheckSimilarity)

			// Quiz take flow (動作確認用)
			r.Route("/take", func(r chi.Router) {
				r.Post("/quizzes/{quiz_id}/start", takeHandler.StartQuiz)
				r.Post("/sessions/{take_id}/answers", takeHandler.SubmitAnswer)
				r.Post("/sessions/{take_id}/complete", takeHandler.CompleteQuiz)
			})

			// Esthetician routes
			r.Route("/estheticians", func(r chi.Router) {
				r.Get("/", estheticianHandler.ListEstheticians)
				r.Post("/{esthetician_id}/approve", estheticianHandler.Approve)
				r.Post("/{esthetician_id}/reject", estheticianHandler.Reject)
			})

			// Analysis routes
			r.Post("/analysis/skin", analysisHandler.AnalyzeSkin)

			// Audit routes
			r.Get("/audit-logs", auditHandler.ListAuditLogs)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 6. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
