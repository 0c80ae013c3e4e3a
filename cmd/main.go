package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addCartItemHandler "github.com/agendei-app/agendei-service/internal/api/handlers/add_cart_item"
	changePasswordHandler "github.com/agendei-app/agendei-service/internal/api/handlers/change_password"
	clearAppointmentsHandler "github.com/agendei-app/agendei-service/internal/api/handlers/clear_appointments"
	clearCartHandler "github.com/agendei-app/agendei-service/internal/api/handlers/clear_cart"
	confirmBookingHandler "github.com/agendei-app/agendei-service/internal/api/handlers/confirm_booking"
	getAgendaHandler "github.com/agendei-app/agendei-service/internal/api/handlers/get_agenda"
	getAppointmentsHandler "github.com/agendei-app/agendei-service/internal/api/handlers/get_appointments"
	getCartHandler "github.com/agendei-app/agendei-service/internal/api/handlers/get_cart"
	getProfileHandler "github.com/agendei-app/agendei-service/internal/api/handlers/get_profile"
	getSettingsHandler "github.com/agendei-app/agendei-service/internal/api/handlers/get_settings"
	loginHandler "github.com/agendei-app/agendei-service/internal/api/handlers/login"
	removeCartItemHandler "github.com/agendei-app/agendei-service/internal/api/handlers/remove_cart_item"
	updateCartItemHandler "github.com/agendei-app/agendei-service/internal/api/handlers/update_cart_item"
	updateProfileHandler "github.com/agendei-app/agendei-service/internal/api/handlers/update_profile"
	updateSettingsHandler "github.com/agendei-app/agendei-service/internal/api/handlers/update_settings"
	"github.com/agendei-app/agendei-service/internal/api/middleware"
	"github.com/agendei-app/agendei-service/internal/config"
	fileStorage "github.com/agendei-app/agendei-service/internal/infra/storage/file"
	postgresStorage "github.com/agendei-app/agendei-service/internal/infra/storage/postgres"
	authService "github.com/agendei-app/agendei-service/internal/service/auth"
	settingsService "github.com/agendei-app/agendei-service/internal/service/settings"
	appointmentsStore "github.com/agendei-app/agendei-service/internal/store/appointments"
	cartStore "github.com/agendei-app/agendei-service/internal/store/cart"
	profileStore "github.com/agendei-app/agendei-service/internal/store/profile"
	settingsStore "github.com/agendei-app/agendei-service/internal/store/settings"
	confirmBookingUC "github.com/agendei-app/agendei-service/internal/usecase/confirm_booking"
	getAgendaUC "github.com/agendei-app/agendei-service/internal/usecase/get_agenda"
	"github.com/agendei-app/agendei-service/pkg/logger"
	"github.com/agendei-app/agendei-service/pkg/metrics"
)

// blobStorage is the persistence adapter shared by every store.
type blobStorage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting agendei-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Select the persistence backend.
	var store blobStorage
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		store = postgresStorage.New(db)
	case "file":
		fs, err := fileStorage.New(cfg.Storage.Dir)
		if err != nil {
			log.Fatal("Failed to initialize file storage: %v", err)
		}
		log.Info("File storage initialized at %s", cfg.Storage.Dir)
		store = fs
	default:
		log.Fatal("Unknown storage driver %q", cfg.Storage.Driver)
	}

	// Initialize the stores and pick up persisted records.
	ctx := context.Background()

	settings := settingsStore.New(store, log)
	settings.Load(ctx)

	appointments := appointmentsStore.New(store, log)
	appointments.Load(ctx)
	log.Info("Loaded %d appointments", appointments.Count())

	carts := cartStore.New()
	profiles := profileStore.New(store, log)

	// Initialize the services.
	settingsSvc := settingsService.NewService(settings, log)
	authSvc := authService.NewService(
		settings,
		log,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMin)*time.Minute,
	)

	// Initialize the use cases.
	getAgendaUseCase := getAgendaUC.NewUseCase(settings, appointments, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(carts, appointments, settings, profiles, log)

	// Initialize the handlers.
	getAgenda := getAgendaHandler.NewHandler(getAgendaUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointments, log)
	clearAppointments := clearAppointmentsHandler.NewHandler(appointments, log)
	login := loginHandler.NewHandler(authSvc, log)
	changePassword := changePasswordHandler.NewHandler(authSvc, log)
	getCart := getCartHandler.NewHandler(carts, log)
	addCartItem := addCartItemHandler.NewHandler(carts, settings, log)
	updateCartItem := updateCartItemHandler.NewHandler(carts, log)
	removeCartItem := removeCartItemHandler.NewHandler(carts, log)
	clearCart := clearCartHandler.NewHandler(carts, log)
	getProfile := getProfileHandler.NewHandler(profiles, log)
	updateProfile := updateProfileHandler.NewHandler(profiles, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/agenda", getAgenda.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Session routes (require X-Session-ID).
	session := api.PathPrefix("").Subrouter()
	session.Use(middleware.Session)

	session.HandleFunc("/cart", getCart.Handle).Methods(http.MethodGet)
	session.HandleFunc("/cart", clearCart.Handle).Methods(http.MethodDelete)
	session.HandleFunc("/cart/items", addCartItem.Handle).Methods(http.MethodPost)
	session.HandleFunc("/cart/items/{serviceId}", updateCartItem.Handle).Methods(http.MethodPatch)
	session.HandleFunc("/cart/items/{serviceId}", removeCartItem.Handle).Methods(http.MethodDelete)
	session.HandleFunc("/bookings", confirmBooking.Handle).Methods(http.MethodPost)
	session.HandleFunc("/profile", getProfile.Handle).Methods(http.MethodGet)
	session.HandleFunc("/profile", updateProfile.Handle).Methods(http.MethodPut)

	// Admin routes (require a bearer token).
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth(authSvc))

	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", clearAppointments.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/auth/password", changePassword.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
