package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/fauzanhilmi/travelmock/internal/cache"
	"github.com/fauzanhilmi/travelmock/internal/factory"
	"github.com/fauzanhilmi/travelmock/internal/handler"
	"github.com/fauzanhilmi/travelmock/internal/ratelimit"
)

type Config struct {
	Port         string
	CacheEnabled bool
	RedisHost    string
	RedisPort    string
	RedisTTL     time.Duration
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	factoryCfg := factory.FromEnv()
	services, err := factory.New(factoryCfg)
	if err != nil {
		log.Fatalf("Failed to initialize service factory: %v", err)
	}
	log.Printf("Service factory ready (mock=%t, phase=%d, failure_rate=%.2f)",
		factoryCfg.UseMock, factoryCfg.Phase, factoryCfg.Mock.FailureRate)

	rateLimiter := ratelimit.NewDomainLimiterWithDefaults()
	rateLimiter.SetDomainLimit("flights", 20, 30)
	rateLimiter.SetDomainLimit("hotels", 20, 30)
	rateLimiter.SetDomainLimit("activities", 15, 25)
	rateLimiter.SetDomainLimit("payments", 10, 15)

	var searchCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		searchCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		searchCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}

	flightHandler := handler.NewFlightHandler(services.Flights(), searchCache, rateLimiter)
	hotelHandler := handler.NewHotelHandler(services.Hotels(), searchCache, rateLimiter)
	activityHandler := handler.NewActivityHandler(services.Activities(), searchCache, rateLimiter)
	bookingHandler := handler.NewBookingHandler(services.Payments(), rateLimiter)

	api := e.Group("/api/v1")
	api.POST("/flights/search", flightHandler.Search)
	api.GET("/flights/:id", flightHandler.Details)
	api.POST("/hotels/search", hotelHandler.Search)
	api.GET("/hotels/:id", hotelHandler.Details)
	api.GET("/hotels/:id/availability", hotelHandler.Availability)
	api.POST("/activities/search", activityHandler.Search)
	api.GET("/activities/:id", activityHandler.Details)
	api.POST("/bookings", bookingHandler.Create)
	api.GET("/bookings/:id", bookingHandler.Status)
	api.DELETE("/bookings/:id", bookingHandler.Cancel)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting travel mock-service server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		CacheEnabled: getEnvBool("CACHE_ENABLED", false),
		RedisHost:    getEnv("REDIS_HOST", "localhost"),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
		RedisTTL:     getEnvDuration("REDIS_TTL", 5*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
