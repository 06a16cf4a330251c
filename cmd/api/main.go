package main

import (
	"context"
	"flag"
	"os"

	_ "invoicesync/docs"
	"invoicesync/internal/adapter/http/routes"
	"invoicesync/internal/config"
	"invoicesync/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Invoice Sync API
// @version         1.0
// @description     Bidirectional invoice reconciliation between Stripe and Notion.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	syncNotion := flag.String("sync-notion", "", "sync one Notion page back to Stripe and exit")
	flag.Parse()

	if *syncNotion != "" {
		syncOnce(*syncNotion)
		return
	}

	routes.Run()
}

// syncOnce pushes a single Notion page's billing period into Stripe, for
// manual backfills without touching the running service.
func syncOnce(pageID string) {
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

	engine, err := routes.BuildEngine(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire gateways")
	}

	if !engine.Sync.SyncToStripe(context.Background(), pageID) {
		log.Error().Str("notion_id", pageID).Msg("sync failed")
		os.Exit(1)
	}
	log.Info().Str("notion_id", pageID).Msg("sync completed")
}
