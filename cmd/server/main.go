// Command server runs the pricing API.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"genmaint-cost/api"
	"genmaint-cost/core/engine"
	"genmaint-cost/core/pricing"
	"genmaint-cost/internal/config"
	"genmaint-cost/internal/logging"
)

const version = "0.1.0"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfgPath := os.Getenv("GENMAINT_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logging.Fatal("loading config", zap.Error(err))
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("initializing logging", zap.Error(err))
	}
	defer logging.Sync()

	bookPath := os.Getenv("GENMAINT_PRICING_BOOK")
	if bookPath == "" {
		bookPath = cfg.Pricing.BookPath
	}
	book, err := pricing.Load(bookPath)
	if err != nil {
		logging.Fatal("loading pricing book", zap.Error(err))
	}

	eng, err := engine.New(book)
	if err != nil {
		logging.Fatal("creating engine", zap.Error(err))
	}

	addr := os.Getenv("GENMAINT_ADDR")
	if addr == "" {
		addr = ":3002"
	}

	server := api.NewServer(eng, version)
	if err := server.Start(addr); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
