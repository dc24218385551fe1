// Package main is the entry point for the Finora Telegram bot service.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/finora/bot-service/internal/bot"
	"github.com/finora/bot-service/internal/bot/flows"
	"github.com/finora/bot-service/internal/config"
	"github.com/finora/bot-service/internal/core/cache"
	coreprofile "github.com/finora/bot-service/internal/core/profile"
	rediscache "github.com/finora/bot-service/internal/infrastructure/cache/redis"
	memoryprofile "github.com/finora/bot-service/internal/infrastructure/profile/memory"
	mongoprofile "github.com/finora/bot-service/internal/infrastructure/profile/mongodb"
	"github.com/finora/bot-service/internal/services/advisor"
	"github.com/finora/bot-service/internal/services/profile"
	"github.com/finora/bot-service/internal/services/rpc"
	"github.com/finora/bot-service/internal/services/session"
	"github.com/finora/bot-service/internal/transport/telegram"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := setupLogger(cfg.Log)

	// Root context: cancelled on SIGINT/SIGTERM so in-flight event handlers
	// see the shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize cache client using factory pattern
	cacheClient, err := createCacheClient(cfg.Cache)
	if err != nil {
		log.Fatalf("failed to initialize cache client: %v", err)
	}
	defer cacheClient.Close()

	// Initialize profile store using factory pattern
	profileStore, err := createProfileStore(ctx, cfg.Profile)
	if err != nil {
		log.Fatalf("failed to initialize profile store: %v", err)
	}
	defer profileStore.Close(ctx)

	// Initialize session store
	sessionStore, err := session.NewStore(session.Config{
		Cache: cacheClient,
		TTL:   cfg.Cache.TTL,
	})
	if err != nil {
		log.Fatalf("failed to initialize session store: %v", err)
	}

	// Initialize backend RPC client
	backend := rpc.NewService(rpc.NewClient(rpc.ClientConfig{
		URL:     cfg.Backend.URL,
		Token:   cfg.Backend.Token,
		Timeout: cfg.Backend.Timeout,
		Logger:  logger,
	}))

	profileService := profile.NewService(profileStore, backend, logger)

	fallbackAdvisor := advisor.New(advisor.Config{
		Backend: backend,
		Logger:  logger,
	})

	// Initialize chat transport
	sender, err := telegram.NewSender(telegram.SenderConfig{
		BotToken: cfg.Telegram.BotToken,
		BaseURL:  cfg.Telegram.APIBaseURL,
	})
	if err != nil {
		log.Fatalf("failed to initialize telegram sender: %v", err)
	}

	// Assemble the dialog engine and register the flows
	engine := bot.NewEngine(bot.Deps{
		Backend:  backend,
		Sender:   sender,
		Sessions: sessionStore,
		Profiles: profileService,
		Advisor:  fallbackAdvisor,
		Logger:   logger,
	})
	flows.Register(engine.Router())

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Setup router
	router := setupRouter(ctx, cfg, engine, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info().Str("addr", cfg.Server.Address()).Msg("starting webhook server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	<-ctx.Done()

	logger.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	logger.Info().Msg("server exited")
}

// setupLogger configures the process-wide zerolog logger.
func setupLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Str("service", "bot").Logger()
}

// createCacheClient creates a cache client based on the configuration.
func createCacheClient(cfg config.CacheConfig) (cache.Cache, error) {
	cacheType := cache.Type(cfg.Type)

	switch cacheType {
	case cache.TypeRedis:
		return rediscache.New(rediscache.Config{
			Host:       cfg.Host,
			Port:       cfg.Port,
			Password:   cfg.Password,
			DB:         cfg.DB,
			DefaultTTL: cfg.TTL,
		})
	default:
		log.Fatalf("unsupported cache type: %s", cfg.Type)
		return nil, nil
	}
}

// createProfileStore creates a profile store based on the configuration.
func createProfileStore(ctx context.Context, cfg config.ProfileConfig) (coreprofile.Store, error) {
	storeType := coreprofile.Type(cfg.Type)

	switch storeType {
	case coreprofile.TypeMongoDB:
		return mongoprofile.NewStore(ctx, &mongoprofile.StoreConfig{
			URI:          cfg.URI,
			DatabaseName: cfg.Database,
		})
	case coreprofile.TypeMemory:
		return memoryprofile.NewStore(), nil
	default:
		log.Fatalf("unsupported profile store type: %s", cfg.Type)
		return nil, nil
	}
}

// setupRouter creates and configures the Gin router.
func setupRouter(ctx context.Context, cfg *config.Config, engine *bot.Engine, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	webhook := telegram.NewWebhook(ctx, engine.HandleEvent, logger)
	webhook.Register(router, cfg.Telegram.WebhookPath)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "finora-bot"})
	})

	return router
}
