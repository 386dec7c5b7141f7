package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/xbayazid/medwin-cares-server/internal/config"
	"github.com/xbayazid/medwin-cares-server/internal/database"
	"github.com/xbayazid/medwin-cares-server/internal/handlers"
	"github.com/xbayazid/medwin-cares-server/internal/middleware"
	"github.com/xbayazid/medwin-cares-server/internal/services"
	"github.com/xbayazid/medwin-cares-server/internal/store"
	"github.com/xbayazid/medwin-cares-server/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("MONGO_DATABASE: %s", cfg.MongoDatabase)
	log.Printf("PORT: %s", cfg.Port)

	// --- Error Reporting ---
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.Fatalf("sentry.Init: %s", err)
		}
		defer sentry.Flush(2 * time.Second)
		log.Println("Sentry error reporting is enabled.")
	}

	// --- Database Connection ---
	client, err := database.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()
	db := client.Database(cfg.MongoDatabase)

	bootCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := database.EnsureIndexes(bootCtx, db, cfg.EnforceUniqueBookings); err != nil {
		if cfg.EnforceUniqueBookings {
			log.Fatalf("ENFORCE_UNIQUE_BOOKINGS is set but indexes could not be ensured: %v", err)
		}
		log.Printf("WARNING: could not ensure indexes: %v", err)
	}

	st := store.New(db)
	if n, err := st.Users.PromoteEmails(bootCtx, cfg.AdminEmails); err != nil {
		log.Printf("WARNING: admin bootstrap failed: %v", err)
	} else if n > 0 {
		log.Printf("Promoted %d user(s) to admin from ADMIN_EMAILS", n)
	}
	cancel()

	// --- Initialize Services ---
	tokens, err := utils.NewTokenService(cfg.AccessTokenSecret, utils.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}
	var processor services.PaymentProcessor
	if p := services.NewStripeProcessor(cfg.StripeSecretKey); p != nil {
		processor = p
	} else {
		log.Println("STRIPE_SECRET_KEY is NOT SET, payment intents are disabled.")
	}
	notificationSvc := services.NewNotificationService(cfg.TextbeltKey)

	// --- Initialize Handlers with the store and services ---
	h := handlers.NewHandler(st, tokens, processor, notificationSvc)

	// --- Gin Router ---
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	h.RegisterRoutes(r, middleware.NewRateLimiter(cfg.TokenRatePerMinute))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Printf("Medwin Cares server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received, shutting down gracefully...")
	ctx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
