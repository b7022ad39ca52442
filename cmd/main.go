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

	addBlockedDayHandler "github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers/add_blocked_day"
	createBookingHandler "github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers/get_available_slots"
	getBlockedDaysHandler "github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers/get_blocked_days"
	getBookingHandler "github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers/get_booking"
	getOperatorBookingsHandler "github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers/get_operator_bookings"
	getServicesHandler "github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers/get_services"
	removeBlockedDayHandler "github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers/remove_blocked_day"
	suggestDatesHandler "github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers/suggest_dates"
	"github.com/aliakbar-zohour/SalonBookingService/internal/api/middleware"
	"github.com/aliakbar-zohour/SalonBookingService/internal/catalog"
	"github.com/aliakbar-zohour/SalonBookingService/internal/config"
	blockedDayRepo "github.com/aliakbar-zohour/SalonBookingService/internal/infra/storage/blockedday"
	bookingRepo "github.com/aliakbar-zohour/SalonBookingService/internal/infra/storage/booking"
	blockedDaysService "github.com/aliakbar-zohour/SalonBookingService/internal/service/blockeddays"
	bookingsService "github.com/aliakbar-zohour/SalonBookingService/internal/service/bookings"
	createBookingUC "github.com/aliakbar-zohour/SalonBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/aliakbar-zohour/SalonBookingService/internal/usecase/get_available_slots"
	suggestDatesUC "github.com/aliakbar-zohour/SalonBookingService/internal/usecase/suggest_dates"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/dbmetrics"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/logger"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/metrics"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/simpletxmanager"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/txmanager"
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

	log.Info("Starting SalonBookingService...")
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

	// Загружаем каталог услуг: из конфигурации или встроенный
	var serviceCatalog *catalog.Catalog
	if len(cfg.Catalog.Services) > 0 {
		serviceCatalog, err = catalog.New(cfg.Catalog.ToDomain())
		if err != nil {
			log.Fatal("Failed to load service catalog: %v", err)
		}
		log.Info("Service catalog loaded from config (%d services)", len(cfg.Catalog.Services))
	} else {
		serviceCatalog = catalog.Default()
		log.Info("Service catalog not configured, using built-in defaults (%d services)",
			len(serviceCatalog.Services()))
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		blockedDayRepository *blockedDayRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockedDayRepository = blockedDayRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockedDayRepository = blockedDayRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)
	blockedDaySvc := blockedDaysService.NewService(
		blockedDayRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockedDayRepository,
		serviceCatalog,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		blockedDayRepository,
		serviceCatalog,
		log,
	)

	suggestDatesUseCase := suggestDatesUC.NewUseCase(
		bookingRepository,
		blockedDayRepository,
		serviceCatalog,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	suggestDates := suggestDatesHandler.NewHandler(suggestDatesUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getOperatorBookings := getOperatorBookingsHandler.NewHandler(bookingSvc, log)
	getServices := getServicesHandler.NewHandler(serviceCatalog, log)
	getBlockedDays := getBlockedDaysHandler.NewHandler(blockedDaySvc, log)
	addBlockedDay := addBlockedDayHandler.NewHandler(blockedDaySvc, log)
	removeBlockedDay := removeBlockedDayHandler.NewHandler(blockedDaySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг салона
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Получение доступных слотов оператора
	api.HandleFunc("/operators/{operatorId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Поиск альтернативных дат со свободными слотами
	api.HandleFunc("/operators/{operatorId}/suggested-dates",
		suggestDates.Handle).Methods(http.MethodGet)

	// Список заблокированных дней
	api.HandleFunc("/blocked-days", getBlockedDays.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Удаление бронирования
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Расписание оператора
	protected.HandleFunc("/operators/{operatorId}/bookings", getOperatorBookings.Handle).Methods(http.MethodGet)

	// --- Заблокированные дни ---
	// Блокировка даты
	protected.HandleFunc("/blocked-days", addBlockedDay.Handle).Methods(http.MethodPost)

	// Снятие блокировки
	protected.HandleFunc("/blocked-days/{date}", removeBlockedDay.Handle).Methods(http.MethodDelete)

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
