package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	addExceptionHandler "github.com/flexispot/booking-service/internal/api/handlers/add_exception"
	cancelBookingHandler "github.com/flexispot/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/flexispot/booking-service/internal/api/handlers/create_booking"
	exportCalendarHandler "github.com/flexispot/booking-service/internal/api/handlers/export_calendar"
	getAvailabilityHandler "github.com/flexispot/booking-service/internal/api/handlers/get_availability"
	getRulesHandler "github.com/flexispot/booking-service/internal/api/handlers/get_rules"
	listBookingsHandler "github.com/flexispot/booking-service/internal/api/handlers/list_bookings"
	listResourcesHandler "github.com/flexispot/booking-service/internal/api/handlers/list_resources"
	removeExceptionHandler "github.com/flexispot/booking-service/internal/api/handlers/remove_exception"
	toggleDeskHandler "github.com/flexispot/booking-service/internal/api/handlers/toggle_desk"
	updateRulesHandler "github.com/flexispot/booking-service/internal/api/handlers/update_rules"
	"github.com/flexispot/booking-service/internal/api/middleware"
	"github.com/flexispot/booking-service/internal/config"
	rulesStorage "github.com/flexispot/booking-service/internal/infra/storage/rules"
	"github.com/flexispot/booking-service/internal/store"
	"github.com/flexispot/booking-service/pkg/logger"
	"github.com/flexispot/booking-service/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Открываем долговременное хранилище правил
	var rulesRepo *rulesStorage.Repository
	if cfg.Storage.RulesPath != "" {
		rulesRepo, err = rulesStorage.Open(cfg.Storage.RulesPath)
		if err != nil {
			log.Fatal("Failed to open rules storage at %s: %v", cfg.Storage.RulesPath, err)
		}
		defer rulesRepo.Close()
		log.Info("Rules storage opened at %s", cfg.Storage.RulesPath)
	} else {
		log.Warn("Rules storage disabled (no rules_path configured), rules will not survive restarts")
	}

	// Инициализируем store с демонстрационными данными.
	// Интерфейсные параметры нельзя передавать как typed-nil, поэтому
	// разворачиваем опциональные зависимости явно.
	var storeRepo store.RulesRepository
	if rulesRepo != nil {
		storeRepo = rulesRepo
	}
	var storeMetrics store.Metrics
	if metricsCollector != nil {
		storeMetrics = metricsCollector
	}
	reservationStore := store.New(context.Background(), store.DefaultSeed(), storeRepo, storeMetrics, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(reservationStore, log)
	cancelBooking := cancelBookingHandler.NewHandler(reservationStore, log)
	listBookings := listBookingsHandler.NewHandler(reservationStore, log)
	listResources := listResourcesHandler.NewHandler(reservationStore, log)
	getAvailability := getAvailabilityHandler.NewHandler(reservationStore, log)
	toggleDesk := toggleDeskHandler.NewHandler(reservationStore, log)
	getRules := getRulesHandler.NewHandler(reservationStore, log)
	updateRules := updateRulesHandler.NewHandler(reservationStore, log)
	addException := addExceptionHandler.NewHandler(reservationStore, log)
	removeException := removeExceptionHandler.NewHandler(reservationStore, log)
	exportCalendar := exportCalendarHandler.NewHandler(reservationStore, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		r.Use(limiter.Limit)
		log.Info("Rate limiting enabled (%.1f rps, burst %d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Ресурсы
	api.HandleFunc("/desks", listResources.HandleDesks).Methods(http.MethodGet)
	api.HandleFunc("/rooms", listResources.HandleRooms).Methods(http.MethodGet)
	api.HandleFunc("/desks/{deskId}/availability", toggleDesk.Handle).Methods(http.MethodPatch)

	// Бронирования
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId}/calendar", exportCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Правила и исключения
	api.HandleFunc("/rules", getRules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rules", updateRules.Handle).Methods(http.MethodPut)
	api.HandleFunc("/exceptions", addException.Handle).Methods(http.MethodPost)
	api.HandleFunc("/exceptions/{exceptionId}", removeException.Handle).Methods(http.MethodDelete)

	// CORS для SPA фронтенда
	var handler http.Handler = r
	if len(cfg.CORS.AllowedOrigins) > 0 {
		c := cors.New(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		})
		handler = c.Handler(r)
		log.Info("CORS enabled for origins: %v", cfg.CORS.AllowedOrigins)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
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
