package main

import (
	"log"

	_ "smartorders/docs"
	"smartorders/internal/adapter/http/routes"
	"smartorders/internal/infrastructure/config"
	"smartorders/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Smart Orders API
// @version         1.0
// @description     Smart-home device ordering: device catalog, draft composer, synchronized order list and the order service API.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	if err := routes.Run(cfg, appLog); err != nil {
		appLog.Fatal("Failed to startup the application", "err", err)
	}
}
