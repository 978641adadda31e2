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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	addSubOfferingHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/add_sub_offering"
	cancelBookingHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/cancel_booking"
	createOfferingHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/create_offering"
	deleteOfferingHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/delete_offering"
	deleteSubOfferingHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/delete_sub_offering"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/get_booking"
	getOfferingHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/get_offering"
	getStatsHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/get_stats"
	listBookingsHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/list_bookings"
	listOfferingsHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/list_offerings"
	submitBookingHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/submit_booking"
	updateOfferingHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/update_offering"
	updateSubOfferingHandler "github.com/m04kA/SMC-ServiceBooking/internal/api/handlers/update_sub_offering"
	"github.com/m04kA/SMC-ServiceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ServiceBooking/internal/config"
	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	"github.com/m04kA/SMC-ServiceBooking/internal/infra/seed"
	bookingRepo "github.com/m04kA/SMC-ServiceBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-ServiceBooking/internal/infra/storage/catalog"
	ledgerRepo "github.com/m04kA/SMC-ServiceBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-ServiceBooking/internal/integrations/mailer"
	bookingsService "github.com/m04kA/SMC-ServiceBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-ServiceBooking/internal/service/catalog"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/notification"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/schedule"
	createBookingUC "github.com/m04kA/SMC-ServiceBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ServiceBooking/internal/usecase/get_available_slots"
	submitBookingUC "github.com/m04kA/SMC-ServiceBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-ServiceBooking/pkg/logger"
	"github.com/m04kA/SMC-ServiceBooking/pkg/memtx"
	"github.com/m04kA/SMC-ServiceBooking/pkg/metrics"
	"github.com/m04kA/SMC-ServiceBooking/pkg/txmanager"
)

// Интерфейсы хранилищ, общие для memory и postgres реализаций
type (
	bookingStore interface {
		Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
		GetByID(ctx context.Context, id string) (*domain.Booking, error)
		List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
		Cancel(ctx context.Context, id string, at time.Time) error
		Stats(ctx context.Context) (*domain.BookingStats, error)
	}

	ledgerStore interface {
		IsAvailable(ctx context.Context, date time.Time, label string) (bool, error)
		BookedTimesForDate(ctx context.Context, date time.Time) ([]string, error)
		Reserve(ctx context.Context, date time.Time, label, bookingID string) error
		Release(ctx context.Context, bookingID string) (bool, error)
	}

	txManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-ServiceBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены).
	// nil *metrics.Metrics безопасен: все методы ничего не делают
	var metricsCollector *metrics.Metrics
	registry := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, registry)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Политика расписания
	timeProvider := &schedule.RealTimeProvider{}
	policy, err := schedule.NewPolicy(timeProvider)
	if err != nil {
		log.Fatal("Failed to initialize scheduling policy: %v", err)
	}

	// Инициализируем хранилища
	var (
		bookingRepository bookingStore
		ledgerRepository  ledgerStore
		txMgr             txManager
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		bookingRepository = bookingRepo.NewPostgresRepository(db)
		ledgerRepository = ledgerRepo.NewPostgresRepository(db)
		txMgr = txmanager.NewTransactionManager(db)

	default:
		bookingRepository = bookingRepo.NewMemoryRepository()
		ledgerRepository = ledgerRepo.NewMemoryRepository()
		txMgr = memtx.New()
		log.Warn("Using in-memory storage: bookings are lost on restart")
	}

	// Каталог всегда в памяти, наполняется из seed файла
	catalogRepository := catalogRepo.NewRepository()
	if cfg.Catalog.SeedFile != "" {
		offerings, err := seed.LoadCatalog(cfg.Catalog.SeedFile, timeProvider.Now())
		if err != nil {
			log.Fatal("Failed to load catalog seed: %v", err)
		}
		if err := seed.Apply(context.Background(), catalogRepository, offerings, log); err != nil {
			log.Fatal("Failed to apply catalog seed: %v", err)
		}
	}

	// Способ доставки подтверждений
	var sender notification.Sender
	if cfg.Notification.Enabled {
		sender = mailer.NewClient(
			cfg.Notification.APIURL,
			cfg.Notification.APIKey,
			cfg.Notification.From,
			time.Duration(cfg.Notification.Timeout)*time.Second,
			log,
		)
		log.Info("Mail client initialized (api=%s, from=%s)", cfg.Notification.APIURL, cfg.Notification.From)
	} else {
		sender = mailer.NewLogSender(log)
		log.Warn("Mail delivery disabled, confirmations are only logged")
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, timeProvider, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		ledgerRepository,
		policy,
		txMgr,
		metricsCollector,
		timeProvider,
		log,
	)
	dispatcher := notification.NewDispatcher(
		sender,
		notification.RealSleeper{},
		policy,
		metricsCollector,
		notification.Config{
			BackoffUnit:  cfg.Notification.BackoffUnit(),
			SupportEmail: cfg.Notification.From,
		},
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		ledgerRepository,
		catalogSvc,
		policy,
		txMgr,
		metricsCollector,
		timeProvider,
		log,
	)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		createBookingUseCase,
		dispatcher,
		cfg.Notification.DeliveryBudget(),
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(ledgerRepository, policy, txMgr, log)

	// Инициализируем handlers
	listOfferings := listOfferingsHandler.NewHandler(catalogSvc, log)
	getOffering := getOfferingHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	createOffering := createOfferingHandler.NewHandler(catalogSvc, log)
	updateOffering := updateOfferingHandler.NewHandler(catalogSvc, log)
	deleteOffering := deleteOfferingHandler.NewHandler(catalogSvc, log)
	addSubOffering := addSubOfferingHandler.NewHandler(catalogSvc, log)
	updateSubOffering := updateSubOfferingHandler.NewHandler(catalogSvc, log)
	deleteSubOffering := deleteSubOfferingHandler.NewHandler(catalogSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getStats := getStatsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/offerings", listOfferings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/offerings/{offeringId}", getOffering.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Оформление бронирования ограничено по IP
	limiter := middleware.NewRateLimiter(cfg.RateLimit.BookingsPerMinute, cfg.RateLimit.Burst, log)
	api.Handle("/bookings", limiter.Limit(http.HandlerFunc(submitBooking.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Bearer JWT с role=admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, log))

	// --- Каталог ---
	admin.HandleFunc("/offerings", createOffering.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/offerings/{offeringId}", updateOffering.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/offerings/{offeringId}", deleteOffering.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/offerings/{offeringId}/sub-offerings", addSubOffering.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/offerings/{offeringId}/sub-offerings/{subId}", updateSubOffering.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/offerings/{offeringId}/sub-offerings/{subId}", deleteSubOffering.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// CORS для клиентского и админского UI
	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}).Handler(r)

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
