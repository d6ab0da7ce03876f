// @title           StyleCraft Backend API
// @version         1.0.0
// @description     Backend API for the fashion AI studio: clothing photo analysis, AI design customization, simulated checkout with mobile verification, and simulated payment.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"stylecraft-backend/docs"
	"stylecraft-backend/internal/checkout"
	"stylecraft-backend/internal/config"
	"stylecraft-backend/internal/database"
	"stylecraft-backend/internal/gateway"
	"stylecraft-backend/internal/handlers"
	"stylecraft-backend/internal/server"
	"stylecraft-backend/internal/supabase"
)

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func main() {
	logger := logrus.New()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if cfg.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := supabase.NewDatabaseClient(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	defer dbClient.Close()

	if cfg.RunMigrations {
		applied, err := database.NewMigrator(dbClient.DB(), logger).Run(ctx)
		if err != nil {
			logger.WithError(err).Fatal("migration failed")
		}
		logger.WithField("applied", applied).Info("migrations completed")
	}

	storageClient := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)

	profileClient, err := supabase.NewProfileClient(cfg.SupabaseURL, cfg.SupabaseServiceKey)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize Supabase client")
	}

	aiClient := gateway.NewClient(gateway.Options{
		BaseURL:       cfg.AIGatewayURL,
		APIKey:        cfg.AIGatewayAPIKey,
		AnalysisModel: cfg.AIAnalysisModel,
		ImageModel:    cfg.AIImageModel,
		Timeout:       cfg.AIRequestTimeout,
		Logger:        logger,
	})

	checks := map[string]handlers.Pinger{"database": dbClient}

	// Verification state goes to Redis when configured so it survives
	// restarts and is shared between instances.
	var verifications checkout.VerificationStore = checkout.NewMemoryStore()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.WithError(err).Fatal("invalid REDIS_URL")
		}
		redisClient := redis.NewClient(opts)
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.WithError(err).Warn("redis not reachable yet")
		}
		verifications = checkout.NewRedisStore(redisClient)
		checks["redis"] = redisPinger{client: redisClient}
	} else {
		logger.Warn("REDIS_URL not set, keeping phone verification state in memory")
	}

	router := server.NewRouter(server.Deps{
		Logger:         logger,
		JWTSecret:      cfg.SupabaseJWTSecret,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Store:          dbClient,
		Storage:        storageClient,
		AI:             aiClient,
		Profiles:       profileClient,
		Verifier:       checkout.NewPhoneVerifier(verifications, cfg.OTPTTL, logger),
		Payments:       checkout.NewPaymentSimulator(cfg.PaymentDelay, logger),
		Checks:         checks,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}
