// main.go - Entry point for the shop backend server

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-shop-backend/config"
	"go-shop-backend/database"
	"go-shop-backend/events"
	"go-shop-backend/handlers"
	"go-shop-backend/logger"
	"go-shop-backend/repository"
	"go-shop-backend/routes"
	"go-shop-backend/services"
	"go-shop-backend/utils"
	"go-shop-backend/validation"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// STEP 1: Load configuration
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()
	log := logger.Must(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()
	gin.SetMode(cfg.GinMode)

	// STEP 2: Connect to the database and seed the bootstrap admin
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	hasher := utils.NewPasswordHasher(cfg.BcryptCost)
	if err := seedAdmin(cfg, hasher, db, log); err != nil {
		log.Fatal("seeding admin failed", zap.Error(err))
	}

	// STEP 3: Product events go to MQTT when a broker is configured
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.MQTTBroker != "" {
		mqttPublisher, err := events.NewMQTTPublisher(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTTopicPrefix)
		if err != nil {
			log.Fatal("MQTT connection failed", zap.String("broker", cfg.MQTTBroker), zap.Error(err))
		}
		defer mqttPublisher.Close()
		publisher = mqttPublisher
		log.Info("publishing product events", zap.String("broker", cfg.MQTTBroker), zap.String("prefix", cfg.MQTTTopicPrefix))
	}

	// STEP 4: Wire services and routes
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	h := handlers.New(handlers.Handler{
		Validator: validation.New(),
		Admins:    services.NewAdminService(repository.NewAdminRepository(db), hasher),
		Sellers:   services.NewSellerService(repository.NewSellerRepository(db), hasher),
		Customers: services.NewCustomerService(repository.NewCustomerRepository(db), hasher),
		Products:  services.NewProductService(repository.NewProductRepository(db), publisher, log),
		Log:       log,
	})
	if cfg.AuthRequired {
		h.Tokens = tokens
	}
	router := routes.SetupRouter(h, routes.Options{
		CORSOrigins:  cfg.CORSOrigins,
		AuthRequired: cfg.AuthRequired,
		Tokens:       tokens,
		Log:          log,
	})

	// STEP 5: Serve until interrupted
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.Bool("auth_required", cfg.AuthRequired))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

// seedAdmin creates the SEED_ADMIN_* account on an empty admins table
func seedAdmin(cfg *config.Config, hasher *utils.PasswordHasher, db *gorm.DB, log *zap.Logger) error {
	if cfg.SeedAdminUsername == "" || cfg.SeedAdminPassword == "" {
		return nil
	}
	reg, err := validation.New().AdminCreate(validation.AdminCreateInput{
		Username:        cfg.SeedAdminUsername,
		Password:        cfg.SeedAdminPassword,
		ConfirmPassword: cfg.SeedAdminPassword,
		PhoneNumber:     cfg.SeedAdminPhone,
	})
	if err != nil {
		return err
	}
	digest, err := hasher.HashPassword(reg.Password)
	if err != nil {
		return err
	}
	return database.SeedAdmin(db, reg.Username, reg.PhoneNumber, digest, log)
}
