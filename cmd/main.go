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

	filterActivitiesHandler "github.com/praiativa/PA-ScheduleService/internal/api/handlers/filter_activities"
	getActivityHandler "github.com/praiativa/PA-ScheduleService/internal/api/handlers/get_activity"
	getWeeklyScheduleHandler "github.com/praiativa/PA-ScheduleService/internal/api/handlers/get_weekly_schedule"
	"github.com/praiativa/PA-ScheduleService/internal/api/middleware"
	"github.com/praiativa/PA-ScheduleService/internal/config"
	activityRepo "github.com/praiativa/PA-ScheduleService/internal/infra/storage/activity"
	catalogServiceClient "github.com/praiativa/PA-ScheduleService/internal/integrations/catalogservice"
	activitiesService "github.com/praiativa/PA-ScheduleService/internal/service/activities"
	filterActivitiesUC "github.com/praiativa/PA-ScheduleService/internal/usecase/filter_activities"
	getWeeklyScheduleUC "github.com/praiativa/PA-ScheduleService/internal/usecase/get_weekly_schedule"
	"github.com/praiativa/PA-ScheduleService/pkg/dbmetrics"
	"github.com/praiativa/PA-ScheduleService/pkg/logger"
	"github.com/praiativa/PA-ScheduleService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
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

	log.Info("Starting PA-ScheduleService...")
	log.Info("Configuration loaded from %s (catalog source=%s)", configPath, cfg.Catalog.Source)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем источник каталога
	var source activitiesService.CatalogSource

	switch cfg.Catalog.Source {
	case config.CatalogSourceRemote:
		source = catalogServiceClient.NewClient(
			cfg.Catalog.URL,
			time.Duration(cfg.Catalog.Timeout)*time.Second,
			log,
		)
		log.Info("Remote catalog client initialized (url=%s, timeout=%ds)", cfg.Catalog.URL, cfg.Catalog.Timeout)

	default:
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
			log.Info("Database metrics collection started")
			source = activityRepo.NewRepository(wrappedDB)
		} else {
			source = activityRepo.NewRepository(db)
		}
	}

	catalog := activitiesService.NewCatalog(source, cfg.Catalog.Source, metricsCollector)

	// Инициализируем сервисы
	activitySvc := activitiesService.NewService(catalog, log)

	// Инициализируем use cases
	filterActivitiesUseCase := filterActivitiesUC.NewUseCase(catalog, metricsCollector, log)
	getWeeklyScheduleUseCase := getWeeklyScheduleUC.NewUseCase(catalog, metricsCollector, log)

	// Инициализируем handlers
	filterActivities := filterActivitiesHandler.NewHandler(filterActivitiesUseCase, log)
	getWeeklySchedule := getWeeklyScheduleHandler.NewHandler(getWeeklyScheduleUseCase, log)
	getActivity := getActivityHandler.NewHandler(activitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог активностей с фильтрами
	api.HandleFunc("/activities", filterActivities.Handle).Methods(http.MethodGet)

	// Одна активность
	api.HandleFunc("/activities/{activityId}", getActivity.Handle).Methods(http.MethodGet)

	// Недельное расписание
	api.HandleFunc("/schedule/weekly", getWeeklySchedule.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
