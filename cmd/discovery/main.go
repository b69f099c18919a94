package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/streamhound/discovery/internal/config"
	dbRedis "github.com/streamhound/discovery/internal/db/redis"
	"github.com/streamhound/discovery/internal/domain"
	logpkg "github.com/streamhound/discovery/internal/logger"
	"github.com/streamhound/discovery/internal/metrics"
	"github.com/streamhound/discovery/internal/repository/embcache"
	"github.com/streamhound/discovery/internal/repository/retrieval"
	chiTransport "github.com/streamhound/discovery/internal/transport/chi"
	openaiTransport "github.com/streamhound/discovery/internal/transport/openai"
	embeddinguc "github.com/streamhound/discovery/internal/usecase/embedding"
	intentuc "github.com/streamhound/discovery/internal/usecase/intent"
	searchuc "github.com/streamhound/discovery/internal/usecase/search"
	"github.com/streamhound/discovery/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting discovery API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register metrics explicitly (no init())
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterSearchMetrics()

	embedder := buildEmbedder(cfg.Embedding, logger)
	logger.Info("Embedder created",
		zap.String("model", cfg.Embedding.Model),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
		zap.Int("cache_size", cfg.Embedding.CacheSize),
	)

	// Pass nil interface if the intent model is not configured — the
	// service then always takes the deterministic fallback.
	var extractor intentuc.Extractor
	if cfg.Intent.APIKey != "" {
		extractor = openaiTransport.NewIntentExtractor(&openaiTransport.IntentConfig{
			APIKey:      cfg.Intent.APIKey,
			BaseURL:     cfg.Intent.BaseURL,
			Model:       cfg.Intent.Model,
			Temperature: cfg.Intent.Temperature,
		})
	}
	intentSvc := intentuc.New(extractor, intentuc.DefaultVocabulary(), logger)

	vectorBackend := retrieval.NewVectorSearcher(store, embedder, cfg.Search.IndexName)
	keywordBackend := retrieval.NewKeywordSearcher(store, cfg.Search.IndexName)

	searchSvc := searchuc.New(
		intentSvc, vectorBackend, keywordBackend,
		searchuc.FusionConfig{
			K:             cfg.Search.RRFK,
			VectorWeight:  cfg.Search.VectorWeight,
			KeywordWeight: cfg.Search.KeywordWeight,
		},
		cfg.Search.CandidateLimit,
	)

	server := chiTransport.NewServer(searchSvc, store, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildEmbedder assembles the decorator chain: OpenAI -> Retrying -> Cached.
// The retry layer normalizes vectors on success, so the cache only ever
// stores unit-length embeddings.
func buildEmbedder(cfg config.EmbeddingConfig, logger *zap.Logger) domain.Embedder {
	base := openaiTransport.NewEmbedder(&openaiTransport.Config{
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.BaseURL,
		Model:          cfg.Model,
		Dimensions:     cfg.Dimensions,
		RequestTimeout: time.Duration(cfg.TimeoutSec) * time.Second,
		Logger:         logger,
	})

	retrying := embeddinguc.NewRetryingEmbedder(base, cfg.Model, embeddinguc.DefaultSleeper, logger)

	return embcache.New(
		retrying,
		embcache.NewMemStore(cfg.CacheSize),
		cfg.Dimensions,
		metrics.EmbeddingCacheTotal,
		logger,
	)
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
