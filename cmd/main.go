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

	createBookingHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/get_booking"
	getTutorBookingsHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/get_tutor_bookings"
	saveAvailabilityHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/save_availability"
	"github.com/m04kA/TMS-BookingService/internal/api/middleware"
	"github.com/m04kA/TMS-BookingService/internal/config"
	"github.com/m04kA/TMS-BookingService/internal/infra/migrate"
	availabilityRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/booking"
	profileServiceClient "github.com/m04kA/TMS-BookingService/internal/integrations/profileservice"
	availabilityService "github.com/m04kA/TMS-BookingService/internal/service/availability"
	bookingsService "github.com/m04kA/TMS-BookingService/internal/service/bookings"
	createBookingUC "github.com/m04kA/TMS-BookingService/internal/usecase/create_booking"
	saveAvailabilityUC "github.com/m04kA/TMS-BookingService/internal/usecase/save_availability"
	"github.com/m04kA/TMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TMS-BookingService/pkg/logger"
	"github.com/m04kA/TMS-BookingService/pkg/metrics"
	"github.com/m04kA/TMS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/TMS-BookingService/pkg/txmanager"
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

	log.Info("Starting TMS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции (если включены)
	if cfg.Database.RunMigrations {
		migrator, err := migrate.NewMigrator(db, cfg.Database.MigrationsPath)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Up(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrator.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to read migration version: %v", err)
		}
		log.Info("Migrations applied, schema version: %d", version)
	}

	// Инициализируем интеграционного клиента
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		availabilityRepository *availabilityRepo.Repository
		bookingRepository      *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		profileClient,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		profileClient,
		log,
	)

	// Инициализируем use cases
	saveAvailabilityUseCase := saveAvailabilityUC.NewUseCase(
		availabilityRepository,
		txMgr,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		availabilityRepository,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	saveAvailability := saveAvailabilityHandler.NewHandler(saveAvailabilityUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getTutorBookings := getTutorBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Доступность ---
	// Сохранение недельного шаблона и материализация расписания
	protected.HandleFunc("/availability", saveAvailability.Handle).Methods(http.MethodPost)

	// Расписание репетитора на ближайшие 7 дней
	protected.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Бронирование слота студентом
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований репетитора
	protected.HandleFunc("/bookings", getTutorBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
