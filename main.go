package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"inventario-admin/app"
	"inventario-admin/config"
)

func main() {
	// the inventory API speaks JSON numbers for prices, not strings
	decimal.MarshalJSONWithoutQuotes = true

	log := logrus.New()
	log.Out = os.Stdout
	if os.Getenv("ENV") == "production" {
		log.Formatter = &logrus.JSONFormatter{}
	} else {
		log.Level = logrus.DebugLevel
	}

	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		// Use Overload so .env values override system environment variables
		if err := godotenv.Overload(".env"); err != nil {
			log.Warnf("Warning: .env file not found, using system environment variables: %v", err)
		} else {
			log.Info("Loaded environment variables from .env (overriding system variables)")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	handler, err := app.Initialize(context.Background(), cfg, log)
	if err != nil {
		log.Fatal(err)
	}

	// Listen on 0.0.0.0 to accept connections from all interfaces
	addr := "0.0.0.0:" + cfg.Port
	log.Infof("Server starting on %s", addr)
	log.Infof("Product admin page: http://localhost:%s/  Order page: http://localhost:%s/orders", cfg.Port, cfg.Port)

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
