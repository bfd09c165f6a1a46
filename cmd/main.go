package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createSpecialPeriodHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/create_special_period"
	deleteSpecialPeriodHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/delete_special_period"
	getDayAvailabilityHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/get_day_availability"
	getMonthAvailabilityHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/get_month_availability"
	getOpeningHoursHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/get_opening_hours"
	getSpecialPeriodsHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/get_special_periods"
	healthHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/health"
	updateOpeningHoursHandler "github.com/m04kA/SMC-TableBookingService/internal/api/handlers/update_opening_hours"
	"github.com/m04kA/SMC-TableBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TableBookingService/internal/availability"
	"github.com/m04kA/SMC-TableBookingService/internal/config"
	availabilityCache "github.com/m04kA/SMC-TableBookingService/internal/infra/cache/availability"
	bookingRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/booking"
	restaurantRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/restaurant"
	scheduleRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/schedule"
	tableRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/table"
	scheduleService "github.com/m04kA/SMC-TableBookingService/internal/service/schedule"
	snapshotService "github.com/m04kA/SMC-TableBookingService/internal/service/snapshot"
	getDayAvailabilityUC "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_day_availability"
	getMonthAvailabilityUC "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_month_availability"
	"github.com/m04kA/SMC-TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBookingService/pkg/logger"
	"github.com/m04kA/SMC-TableBookingService/pkg/metrics"
	"github.com/m04kA/SMC-TableBookingService/pkg/txmanager"
)

const rateLimitCleanupInterval = time.Minute

// AvailabilityCache кэш доступности: Redis или заглушка
type AvailabilityCache interface {
	getDayAvailabilityUC.AvailabilityCache
	scheduleService.AvailabilityCache
}

func main() {
	// Путь к конфигурации: флаг -config или переменная CONFIG_PATH
	configPath := flag.String("config", envOr("CONFIG_PATH", "config.toml"), "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-TableBookingService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopBackgroundCh := make(chan struct{})

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

	// Обёртка с метриками; без метрик работает как обычный *sql.DB
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopBackgroundCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Database.DBName)
	}

	healthChecks := map[string]healthHandler.Checker{
		"postgres": healthHandler.CheckerFunc(db.PingContext),
	}

	// Кэш доступности (если включен)
	var cache AvailabilityCache = availabilityCache.NopCache{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Сервис работает и без кэша, ошибки кэша только логируются
			log.Warn("Redis is unavailable at %s: %v", cfg.Redis.Address, err)
		}
		cancel()

		cache = availabilityCache.NewCache(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		healthChecks["redis"] = healthHandler.CheckerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Address, cfg.Redis.TTLSeconds)
	}

	// Инициализируем репозитории
	restaurantRepository := restaurantRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	tableRepository := tableRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	snapshotSvc := snapshotService.NewService(
		restaurantRepository,
		scheduleRepository,
		tableRepository,
		bookingRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		restaurantRepository,
		txMgr,
		cache,
		log,
	)

	calculator := availability.NewCalculator(availability.Options{
		SlotIntervalMinutes:   cfg.Availability.SlotIntervalMinutes,
		DefaultBookingMinutes: cfg.Availability.DefaultBookingMinutes,
	})
	log.Info("Availability calculator: slot interval=%dm, default booking=%dm, min notice=%dm",
		calculator.SlotInterval(), cfg.Availability.DefaultBookingMinutes, cfg.Availability.MinNoticeMinutes)

	// Инициализируем use cases
	getDayAvailabilityUseCase := getDayAvailabilityUC.NewUseCase(
		snapshotSvc,
		cache,
		calculator,
		metricsCollector,
		cfg.Availability.MinNoticeMinutes,
		log,
	)
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(
		snapshotSvc,
		calculator,
		metricsCollector,
		cfg.Availability.MinNoticeMinutes,
		cfg.Availability.MonthWorkers,
		log,
	)

	// Инициализируем handlers
	getDayAvailability := getDayAvailabilityHandler.NewHandler(getDayAvailabilityUseCase, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	getOpeningHours := getOpeningHoursHandler.NewHandler(scheduleSvc, log)
	updateOpeningHours := updateOpeningHoursHandler.NewHandler(scheduleSvc, log)
	getSpecialPeriods := getSpecialPeriodsHandler.NewHandler(scheduleSvc, log)
	createSpecialPeriod := createSpecialPeriodHandler.NewHandler(scheduleSvc, log)
	deleteSpecialPeriod := deleteSpecialPeriodHandler.NewHandler(scheduleSvc, log)
	health := healthHandler.NewHandler(healthChecks, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Служебные endpoints (публичные, без аутентификации и лимитов)
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		go limiter.RunCleanup(rateLimitCleanupInterval, stopBackgroundCh)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.1f rps, burst=%d per IP", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность на дату
	api.HandleFunc("/restaurants/{restaurantId}/calendar-availability",
		getDayAvailability.Handle).Methods(http.MethodGet)

	// Доступность по дням месяца
	api.HandleFunc("/restaurants/{restaurantId}/month-availability",
		getMonthAvailability.Handle).Methods(http.MethodGet)

	// Недельное расписание
	api.HandleFunc("/restaurants/{restaurantId}/opening-hours",
		getOpeningHours.Handle).Methods(http.MethodGet)

	// Особые периоды
	api.HandleFunc("/restaurants/{restaurantId}/special-periods",
		getSpecialPeriods.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/restaurants/{restaurantId}/opening-hours",
		updateOpeningHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/restaurants/{restaurantId}/special-periods",
		createSpecialPeriod.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/restaurants/{restaurantId}/special-periods/{periodId}",
		deleteSpecialPeriod.Handle).Methods(http.MethodDelete)

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

	// Останавливаем фоновые задачи (статистика пула, очистка лимитеров)
	close(stopBackgroundCh)

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

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
