package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/category"
	"github.com/triviahub/trivia-api/internal/config"
	"github.com/triviahub/trivia-api/internal/question"
	"github.com/triviahub/trivia-api/internal/quiz"
)

// Handlers groups the per-domain HTTP handlers the server routes to.
type Handlers struct {
	Category *category.HTTPHandler
	Question *question.HTTPHandler
	Quiz     *quiz.HTTPHandler
}

// NewHTTPServer wires the API routes plus health and metrics endpoints.
// redisClient may be nil when caching is disabled.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, h Handlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	mux.HandleFunc("/categories", h.Category.HandleList)
	mux.HandleFunc("/categories/{id}/questions", h.Question.HandleByCategory)
	mux.HandleFunc("/questions", h.Question.HandleQuestions)
	mux.HandleFunc("/questions/{id}", h.Question.HandleDelete)
	mux.HandleFunc("/questions/search", h.Question.HandleSearch)
	mux.HandleFunc("/quizzes", h.Quiz.HandlePlay)

	handler := CORS(cfg.CORS)(RequestLogging(logger)(Metrics(mux)))

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	if redisClient != nil {
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	return nil
}
