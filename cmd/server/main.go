package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"health-assistant/internal/analytics"
	"health-assistant/internal/auth"
	"health-assistant/internal/chat"
	"health-assistant/internal/config"
	"health-assistant/internal/hospital"
	"health-assistant/internal/platform/model"
	"health-assistant/internal/prediction"
	"health-assistant/internal/user"
)

const tokenTTL = 24 * time.Hour

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// 1. Infrastructure
	var db *sql.DB
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err == nil {
			err = db.Ping()
		}
		if err == nil {
			break
		}
		logger.Info().Int("attempt", i+1).Msg("waiting for database")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("could not connect to database")
	}
	logger.Info().Msg("connected to database")

	// Run migrations
	m, err := migrate.New(cfg.MigrationsPath, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("migration init failed")
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		logger.Fatal().Err(err).Msg("migration up failed")
	}
	logger.Info().Msg("migrations applied")

	// 2. Clients
	modelClient := model.NewClient(cfg.ModelURL, cfg.ModelTimeout)

	// 3. Services
	tokens := auth.NewTokenManager(cfg.JWTSecret, tokenTTL)

	userRepo := user.NewRepository(db)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc, tokens)

	predictionRepo := prediction.NewRepository(db)
	predictionSvc := prediction.NewService(predictionRepo, modelClient, logger)
	predictionHandler := prediction.NewHandler(predictionSvc)

	hospitalRepo := hospital.NewRepository(db)
	if err := seedHospitals(hospitalRepo, logger); err != nil {
		logger.Fatal().Err(err).Msg("hospital seeding failed")
	}
	hospitalHandler := hospital.NewHandler(hospitalRepo)

	chatHandler := chat.NewHandler()
	analyticsHandler := analytics.NewHandler()

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	// CORS for frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
			if r.Method == "OPTIONS" {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		user.RegisterRoutes(r, userHandler, tokens)
		prediction.RegisterRoutes(r, predictionHandler, tokens)
		chat.RegisterRoutes(r, chatHandler, tokens)
		hospital.RegisterRoutes(r, hospitalHandler)
		analytics.RegisterRoutes(r, analyticsHandler)
	})

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func seedHospitals(repo hospital.Repository, logger zerolog.Logger) error {
	ctx := context.Background()
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := repo.SeedDefaults(ctx); err != nil {
		return err
	}
	logger.Info().Msg("seeded hospital directory")
	return nil
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info().
				Str("request_id", requestID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
