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

	createBookingHandler "github.com/dmcwh/WRS-ReservationService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/dmcwh/WRS-ReservationService/internal/api/handlers/get_available_slots"
	getSupplierBookingsHandler "github.com/dmcwh/WRS-ReservationService/internal/api/handlers/get_supplier_bookings"
	loginHandler "github.com/dmcwh/WRS-ReservationService/internal/api/handlers/login"
	logoutHandler "github.com/dmcwh/WRS-ReservationService/internal/api/handlers/logout"
	"github.com/dmcwh/WRS-ReservationService/internal/api/middleware"
	"github.com/dmcwh/WRS-ReservationService/internal/config"
	"github.com/dmcwh/WRS-ReservationService/internal/infra/ledgercache"
	auditlogRepo "github.com/dmcwh/WRS-ReservationService/internal/infra/storage/auditlog"
	mailerClient "github.com/dmcwh/WRS-ReservationService/internal/integrations/mailer"
	sheetStoreClient "github.com/dmcwh/WRS-ReservationService/internal/integrations/sheetstore"
	sessionsService "github.com/dmcwh/WRS-ReservationService/internal/service/sessions"
	authenticateSupplierUC "github.com/dmcwh/WRS-ReservationService/internal/usecase/authenticate_supplier"
	createBookingUC "github.com/dmcwh/WRS-ReservationService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/dmcwh/WRS-ReservationService/internal/usecase/get_available_slots"
	"github.com/dmcwh/WRS-ReservationService/pkg/logger"
	"github.com/dmcwh/WRS-ReservationService/pkg/metrics"
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

	log.Info("Starting WRS-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (журнал аудита коммитов).
	// Журнал best-effort: если база недоступна, сервис работает без аудита.
	var auditRepository *auditlogRepo.Repository
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Warn("Audit database unavailable, continuing without audit log: %v", err)
	} else {
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Warn("Audit database ping failed, continuing without audit log: %v", err)
		} else {
			auditRepository = auditlogRepo.NewRepository(db)
			log.Info("Audit database connected (host=%s, port=%d, db=%s)",
				cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		}
	}

	// Клиент удалённого документа: ledger бронирований и учётные данные
	sheetStore := sheetStoreClient.NewClient(
		cfg.SheetStore.URL,
		cfg.SheetStore.DocumentID,
		time.Duration(cfg.SheetStore.Timeout)*time.Second,
		log,
	)
	log.Info("Sheet store client initialized (url=%s document=%s timeout=%ds)",
		cfg.SheetStore.URL, cfg.SheetStore.DocumentID, cfg.SheetStore.Timeout)

	// Отправка подтверждений по почте (опционально)
	var notifier createBookingUC.Notifier
	if cfg.SMTP.Host != "" {
		notifier = mailerClient.NewClient(mailerClient.Config{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			User:      cfg.SMTP.User,
			Password:  cfg.SMTP.Password,
			From:      cfg.SMTP.From,
			DefaultCC: cfg.SMTP.DefaultCC,
			Timeout:   time.Duration(cfg.SMTP.TimeoutSec) * time.Second,
		}, log)
		log.Info("Mailer initialized (host=%s port=%d from=%s)",
			cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)
	} else {
		log.Warn("SMTP host is not configured, booking confirmations disabled")
	}

	// Кэш снапшотов ledger'а
	var cacheMetrics ledgercache.Metrics
	if metricsCollector != nil {
		cacheMetrics = metricsCollector
	}
	ledgerCache := ledgercache.New(
		sheetStore,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		log,
		cacheMetrics,
	)
	log.Info("Ledger cache initialized (ttl=%ds)", cfg.Cache.TTLSeconds)

	// Сессии поставщиков
	sessions := sessionsService.NewService(
		time.Duration(cfg.Sessions.TTLMinutes)*time.Minute,
		log,
	)

	// Инициализируем use cases
	var commitMetrics createBookingUC.Metrics
	if metricsCollector != nil {
		commitMetrics = metricsCollector
	}
	var auditLog createBookingUC.AuditLog
	if auditRepository != nil {
		auditLog = auditRepository
	}

	authenticateSupplierUseCase := authenticateSupplierUC.NewUseCase(sheetStore, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		ledgerCache,
		cfg.Booking.AdvanceBookingDays,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		ledgerCache,
		sheetStore,
		auditLog,
		notifier,
		commitMetrics,
		cfg.Booking.AdvanceBookingDays,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authenticateSupplierUseCase, sessions, log)
	logout := logoutHandler.NewHandler(sessions, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, sessions, log)
	getSupplierBookings := getSupplierBookingsHandler.NewHandler(ledgerCache, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация поставщика
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Сетка слотов на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.SessionAuth(sessions, log))

	// Завершение сессии
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// Коммит бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Бронирования поставщика
	protected.HandleFunc("/suppliers/{supplierId}/bookings", getSupplierBookings.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped gracefully")
}
