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

	createBookingHandler "github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers/create_booking"
	finalizeBookingHandler "github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers/finalize_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers/get_availability"
	getPerformersHandler "github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers/get_performers"
	getServicesHandler "github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers/get_services"
	healthHandler "github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers/health"
	paymentWebhookHandler "github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers/payment_webhook"
	"github.com/m04kA/SMC-ScheduleGateway/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleGateway/internal/config"
	pendingStore "github.com/m04kA/SMC-ScheduleGateway/internal/infra/storage/pending"
	processedStore "github.com/m04kA/SMC-ScheduleGateway/internal/infra/storage/processed"
	mollieClient "github.com/m04kA/SMC-ScheduleGateway/internal/integrations/mollie"
	simplybookClient "github.com/m04kA/SMC-ScheduleGateway/internal/integrations/simplybook"
	bookingsService "github.com/m04kA/SMC-ScheduleGateway/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-ScheduleGateway/internal/service/catalog"
	createBookingUC "github.com/m04kA/SMC-ScheduleGateway/internal/usecase/create_booking"
	finalizeBookingUC "github.com/m04kA/SMC-ScheduleGateway/internal/usecase/finalize_booking"
	getAvailabilityUC "github.com/m04kA/SMC-ScheduleGateway/internal/usecase/get_availability"
	"github.com/m04kA/SMC-ScheduleGateway/pkg/logger"
	"github.com/m04kA/SMC-ScheduleGateway/pkg/metrics"
)

// storeCounts снимает показатели хранилищ в памяти для /health
type storeCounts struct {
	pending   *pendingStore.Store
	processed *processedStore.Store
}

func (s *storeCounts) PendingCount() int   { return s.pending.Len() }
func (s *storeCounts) ProcessedCount() int { return s.processed.Len() }

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

	log.Info("Starting SMC-ScheduleGateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	scheduling := simplybookClient.NewClient(
		cfg.SimplyBook.APIURL,
		cfg.SimplyBook.CompanyLogin,
		cfg.SimplyBook.APIKey,
		time.Duration(cfg.SimplyBook.Timeout)*time.Second,
		time.Duration(cfg.SimplyBook.TokenTTL)*time.Minute,
		metricsCollector,
		log,
	)
	payments := mollieClient.NewClient(
		cfg.Mollie.APIURL,
		cfg.Mollie.APIKey,
		time.Duration(cfg.Mollie.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Integration clients initialized (scheduling=%s timeout=%ds, payments=%s timeout=%ds)",
		cfg.SimplyBook.APIURL, cfg.SimplyBook.Timeout, cfg.Mollie.APIURL, cfg.Mollie.Timeout)

	// Инициализируем хранилища в памяти
	pending := pendingStore.NewStore()
	processed := processedStore.NewStore()

	// Инициализируем сервисы
	catalog := catalogService.NewService(
		scheduling,
		time.Duration(cfg.Catalog.CacheTTLMinutes)*time.Minute,
		log,
	)
	reservations := bookingsService.NewService(
		scheduling,
		cfg.SimplyBook.SecretKey,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.New(
		catalog,
		scheduling,
		cfg.Availability.DefaultRangeDays,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		catalog,
		payments,
		reservations,
		pending,
		createBookingUC.PaymentSettings{
			Currency:    cfg.Mollie.Currency,
			RedirectURL: cfg.Mollie.RedirectURL,
			WebhookURL:  cfg.Mollie.WebhookURL,
		},
		log,
	)
	finalizeBookingUseCase := finalizeBookingUC.NewUseCase(
		payments,
		reservations,
		pending,
		processed,
		log,
	)

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(catalog, log)
	getPerformers := getPerformersHandler.NewHandler(catalog, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	finalizeBooking := finalizeBookingHandler.NewHandler(finalizeBookingUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(finalizeBookingUseCase, log)
	health := healthHandler.NewHandler(&storeCounts{pending: pending, processed: processed})

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/services", getServices.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", getServices.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/performers", getPerformers.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/finalize", finalizeBooking.Handle).Methods(http.MethodPost)

	// --- Вебхуки ---
	api.HandleFunc("/webhooks/payment", paymentWebhook.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Отложенные бронирования живут только в памяти: при останове они
	// теряются, о чем честно сообщаем в лог
	if n := pending.Len(); n > 0 {
		log.Warn("Shutting down with %d pending bookings, they will be lost", n)
	}

	log.Info("Server stopped gracefully")
}
