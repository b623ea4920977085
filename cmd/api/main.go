package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/minsu-dev/brandsite-backend/api/routes"
	"github.com/minsu-dev/brandsite-backend/internal/config"
	"github.com/minsu-dev/brandsite-backend/internal/handlers"
	"github.com/minsu-dev/brandsite-backend/internal/repositories"
	mongorepo "github.com/minsu-dev/brandsite-backend/internal/repositories/mongodb"
	"github.com/minsu-dev/brandsite-backend/internal/services"
	"github.com/minsu-dev/brandsite-backend/pkg/mongodb"
	"github.com/minsu-dev/brandsite-backend/pkg/timeslot"
)

func main() {
	// .env is optional; config falls back to defaults.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var postRepo repositories.PostRepository = mongorepo.NewPostRepository(db)
	var productRepo repositories.ProductRepository = mongorepo.NewProductRepository(db)
	var eventRepo repositories.EventRepository = mongorepo.NewEventRepository(db)
	var reservationRepo repositories.ReservationRepository = mongorepo.NewReservationRepository(db)
	var faqRepo repositories.FAQRepository = mongorepo.NewFAQRepository(db)
	var adminRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)
	var settingsRepo repositories.SettingsRepository = mongorepo.NewSettingsRepository(db)

	// Services
	postService := services.NewPostService(postRepo)
	productService := services.NewProductService(productRepo)
	eventService := services.NewEventService(eventRepo)
	reservationService := services.NewReservationService(
		reservationRepo, timeslot.Hours(cfg.Reservation.OpenHour, cfg.Reservation.CloseHour))
	faqService := services.NewFAQService(faqRepo)
	authService := services.NewAuthService(adminRepo, cfg)
	settingsService := services.NewSettingsService(settingsRepo)

	// First-run operator account
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureSeedAdmin(seedCtx, cfg.Admin.SeedEmail, cfg.Admin.SeedPassword, cfg.Admin.SeedName); err != nil {
		slog.Error("Failed to seed admin account", "error", err)
	}
	cancelSeed()

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService),
		PostHandler:        handlers.NewPostHandler(postService),
		ProductHandler:     handlers.NewProductHandler(productService),
		EventHandler:       handlers.NewEventHandler(eventService),
		ReservationHandler: handlers.NewReservationHandler(reservationService),
		FAQHandler:         handlers.NewFAQHandler(faqService),
		SettingsHandler:    handlers.NewSettingsHandler(settingsService),
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}
