package main

import (
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/richxcame/fare-compare/internal/airports"
	"github.com/richxcame/fare-compare/internal/pricing"
	"github.com/richxcame/fare-compare/pkg/common"
	"github.com/richxcame/fare-compare/pkg/config"
	"github.com/richxcame/fare-compare/pkg/logger"
	"github.com/richxcame/fare-compare/pkg/middleware"
	"go.uber.org/zap"
)

const (
	serviceName = "fare-compare"
	version     = "1.0.0"
)

func main() {
	// Load configuration
	cfg, err := config.Load(serviceName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Build the airport locator the engine classifies endpoints with
	locator := buildLocator(cfg.Pricing.Locator)

	// Build the pricing engine over the static configuration table
	engine := pricing.NewEngine(pricing.DefaultConfig(), locator)
	handler := pricing.NewHandler(engine)

	// Set up Gin router
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(serviceName))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", middleware.CorrelationIDHeader}
	router.Use(cors.New(corsConfig))

	// Health check and metrics (no auth required)
	router.GET("/healthz", common.HealthCheck(serviceName, version))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Start server
	addr := ":" + cfg.Server.Port
	logger.Info("Fare comparison service starting",
		zap.String("port", cfg.Server.Port),
		zap.String("environment", cfg.Server.Environment),
		zap.String("locator", cfg.Pricing.Locator),
	)
	if err := router.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// buildLocator selects the airport geofence implementation. Both are pure
// and interchangeable; H3 is the default, the static table the fallback.
func buildLocator(kind string) airports.Locator {
	table := airports.DefaultAirports()

	if kind != "static" {
		h3Locator, err := airports.NewH3Locator(table)
		if err == nil {
			return h3Locator
		}
		logger.Warn("H3 locator unavailable, using static table", zap.Error(err))
	}
	return airports.NewStaticLocator(table, airports.DefaultTolerance)
}
