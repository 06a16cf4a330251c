package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "invoicesync/docs" // swag-generated documentation
	"invoicesync/internal/adapter/http/handlers"
	"invoicesync/internal/config"
	"invoicesync/internal/infrastructure/documents"
	"invoicesync/internal/infrastructure/payments"
	"invoicesync/internal/infrastructure/scheduler"
	"invoicesync/internal/logger"
	"invoicesync/internal/retry"
	"invoicesync/internal/usecase"
	"invoicesync/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Engine bundles the wired gateways and the reconciliation engine; the same
// wiring serves the HTTP server and the one-shot CLI mode.
type Engine struct {
	Stripe interfaces.IStripeGateway
	Sync   usecase.ISyncUseCase
}

// BuildEngine constructs both gateways and the sync engine from config.
func BuildEngine(cfg config.Config) (*Engine, error) {
	policy := retry.DefaultPolicy()

	stripeGateway, err := payments.NewStripeGateway(cfg.StripeAPIKey, cfg.StripeWebhookSecret, policy)
	if err != nil {
		return nil, err
	}
	notionGateway, err := documents.NewNotionGateway(cfg.NotionIntegrationSecret, cfg.NotionInvoicesDatabaseID, cfg.NotionInvoiceTemplateID, policy)
	if err != nil {
		return nil, err
	}

	return &Engine{
		Stripe: stripeGateway,
		Sync:   usecase.NewSyncUseCase(stripeGateway, notionGateway),
	}, nil
}

// Run will start the server, the background scheduler and block until a
// shutdown signal arrives.
func Run() {
	cfg := config.Load()
	if missing := cfg.Validate(); len(missing) > 0 {
		for name, desc := range missing {
			log.Error().Str("variable", name).Msg(desc)
		}
		log.Fatal().Msg("configuration incomplete")
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("invalid log configuration")
	}

	engine, err := BuildEngine(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire gateways")
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(engine)

	sched := scheduler.NewScheduler(engine.Sync, time.Duration(cfg.SyncIntervalSeconds)*time.Second, cfg.SyncDaysBack)
	sched.Start()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: router,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to startup the application")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

func getRoutes(engine *Engine) {
	stripeWebhookHandler := handlers.NewStripeWebhookHandler(engine.Stripe, engine.Sync)
	notionWebhookHandler := handlers.NewNotionWebhookHandler(engine.Sync)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWebhookRoutes(v1, stripeWebhookHandler, notionWebhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
