package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkOrderWindowHandler "github.com/m04kA/SMC-StoreAvailability/internal/api/handlers/check_order_window"
	getAvailableDaysHandler "github.com/m04kA/SMC-StoreAvailability/internal/api/handlers/get_available_days"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StoreAvailability/internal/api/handlers/get_available_slots"
	getDeliveryZonesHandler "github.com/m04kA/SMC-StoreAvailability/internal/api/handlers/get_delivery_zones"
	getStoreHoursHandler "github.com/m04kA/SMC-StoreAvailability/internal/api/handlers/get_store_hours"
	getStoreSettingsHandler "github.com/m04kA/SMC-StoreAvailability/internal/api/handlers/get_store_settings"
	getStoreStatusHandler "github.com/m04kA/SMC-StoreAvailability/internal/api/handlers/get_store_status"
	"github.com/m04kA/SMC-StoreAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-StoreAvailability/internal/config"
	hoursRepo "github.com/m04kA/SMC-StoreAvailability/internal/infra/storage/hours"
	zonesRepo "github.com/m04kA/SMC-StoreAvailability/internal/infra/storage/zones"
	"github.com/m04kA/SMC-StoreAvailability/internal/service/openstate"
	"github.com/m04kA/SMC-StoreAvailability/internal/service/scheduling"
	checkOrderWindowUC "github.com/m04kA/SMC-StoreAvailability/internal/usecase/check_order_window"
	getAvailableSlotsUC "github.com/m04kA/SMC-StoreAvailability/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-StoreAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-StoreAvailability/pkg/logger"
	"github.com/m04kA/SMC-StoreAvailability/pkg/metrics"
)

func main() {
	// Локальный .env может задать CONFIG_PATH
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
	}

	// Загружаем конфигурацию
	configPath := config.Path("config.toml")
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

	log.Info("Starting SMC-StoreAvailability...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	hoursRepository := hoursRepo.NewRepository(executor)
	zonesRepository := zonesRepo.NewRepository(executor)

	// Инициализируем сервисы
	schedulingSvc := scheduling.NewService(
		hoursRepository,
		cfg.Scheduling.HorizonDays,
		log,
	)

	var recorder *openstate.Recorder
	if cfg.Metrics.Enabled {
		recorder = &openstate.Recorder{
			StoreOpen: metricsCollector.StoreOpen,
			Refreshes: metricsCollector.OpenStateRefreshes,
		}
	}
	poller := openstate.NewPoller(schedulingSvc, cfg.Scheduling.PollInterval(), recorder, log)

	pollerCtx, stopPoller := context.WithCancel(context.Background())
	pollerDone := make(chan struct{})
	go func() {
		defer close(pollerDone)
		if err := poller.Run(pollerCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Open state poller stopped with error: %v", err)
		}
	}()

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		schedulingSvc,
		zonesRepository,
		log,
	)

	checkOrderWindowUseCase := checkOrderWindowUC.NewUseCase(
		schedulingSvc,
		getAvailableSlotsUseCase,
		log,
	)

	// Инициализируем handlers
	getStoreHours := getStoreHoursHandler.NewHandler(schedulingSvc, log)
	getStoreSettings := getStoreSettingsHandler.NewHandler(schedulingSvc, log)
	getStoreStatus := getStoreStatusHandler.NewHandler(poller, log)
	getAvailableDays := getAvailableDaysHandler.NewHandler(schedulingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkOrderWindow := checkOrderWindowHandler.NewHandler(checkOrderWindowUseCase, log)
	getDeliveryZones := getDeliveryZonesHandler.NewHandler(zonesRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Магазин ---
	api.HandleFunc("/store/hours", getStoreHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/store/settings", getStoreSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/store/status", getStoreStatus.Handle).Methods(http.MethodGet)

	// --- Выбор дня и времени ---
	api.HandleFunc("/available-days", getAvailableDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/order-window", checkOrderWindow.Handle).Methods(http.MethodGet)

	// --- Доставка ---
	api.HandleFunc("/delivery-zones", getDeliveryZones.Handle).Methods(http.MethodGet)

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

	// Останавливаем поллер и сбор метрик connection pool
	stopPoller()
	<-pollerDone

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
