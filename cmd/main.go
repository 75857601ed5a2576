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
	"github.com/redis/go-redis/v9"

	applyClosedDayHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/apply_closed_day"
	applyClosedDaysBatchHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/apply_closed_days_batch"
	createAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_appointment"
	createCustomerHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_customer"
	exportMonthlyStatsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/export_monthly_stats"
	getClosedDayConflictsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_closed_day_conflicts"
	getCustomerHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_customer"
	getDailyAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_daily_appointments"
	getMonthAppointmentDatesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_month_appointment_dates"
	getMonthlyStatsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_monthly_stats"
	getNextAvailableDateHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_next_available_date"
	listClosedDaysHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_closed_days"
	listCustomersHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_customers"
	previewClosedDaysHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/preview_closed_days"
	removeClosedDaysHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/remove_closed_days"
	updateCustomerHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_customer"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/inflight"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	closedDateRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/closed_date"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/closedday"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
	profileRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/profile"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	customersService "github.com/m04kA/SMC-SalonService/internal/service/customers"
	statsService "github.com/m04kA/SMC-SalonService/internal/service/stats"
	closedDaysUC "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
	createAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonService...")

	// Метрики. nil коллектор безопасен: методы *metrics.Metrics ничего не делают.
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Флаги выполняющихся фиксаций выходных дней
	var guard closedDaysUC.InflightGuard
	switch cfg.Inflight.Backend {
	case config.InflightRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Inflight.RedisAddr,
			Password: cfg.Inflight.RedisPassword,
			DB:       cfg.Inflight.RedisDB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancelPing()
			log.Fatal("Failed to ping redis at %s: %v", cfg.Inflight.RedisAddr, err)
		}
		cancelPing()

		guard = inflight.NewRedisGuard(redisClient, time.Duration(cfg.Inflight.TTL)*time.Second, log)
		log.Info("In-flight guard: redis (addr=%s, ttl=%ds)", cfg.Inflight.RedisAddr, cfg.Inflight.TTL)
	default:
		guard = inflight.NewMemoryGuard()
		log.Info("In-flight guard: memory")
	}

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	closedDateRepository := closedDateRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)
	procedures := closedday.NewProcedures(wrappedDB)

	// Сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		closedDateRepository,
		cfg.Schedule.AvailabilityWindowDays,
		log,
	)
	customerSvc := customersService.NewService(customerRepository, appointmentRepository, log)
	statsSvc := statsService.NewService(appointmentRepository, log)

	// Use cases
	closedDaysUseCase := closedDaysUC.NewUseCase(
		appointmentRepository,
		closedDateRepository,
		procedures,
		guard,
		metricsCollector,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		closedDateRepository,
		txMgr,
		log,
	)

	clock := &appointmentsService.RealTimeProvider{}

	// Handlers
	listClosedDays := listClosedDaysHandler.NewHandler(appointmentSvc, log)
	previewClosedDays := previewClosedDaysHandler.NewHandler(closedDaysUseCase, log)
	getClosedDayConflicts := getClosedDayConflictsHandler.NewHandler(closedDaysUseCase, log)
	applyClosedDay := applyClosedDayHandler.NewHandler(closedDaysUseCase, log)
	applyClosedDaysBatch := applyClosedDaysBatchHandler.NewHandler(closedDaysUseCase, log)
	removeClosedDays := removeClosedDaysHandler.NewHandler(closedDaysUseCase, log)
	getNextAvailableDate := getNextAvailableDateHandler.NewHandler(appointmentSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getDailyAppointments := getDailyAppointmentsHandler.NewHandler(appointmentSvc, log)
	getMonthAppointmentDates := getMonthAppointmentDatesHandler.NewHandler(appointmentSvc, clock, log)
	listCustomers := listCustomersHandler.NewHandler(customerSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customerSvc, log)
	createCustomer := createCustomerHandler.NewHandler(customerSvc, log)
	updateCustomer := updateCustomerHandler.NewHandler(customerSvc, log)
	getMonthlyStats := getMonthlyStatsHandler.NewHandler(statsSvc, clock, log)
	exportMonthlyStats := exportMonthlyStatsHandler.NewHandler(statsSvc, clock, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// ROUTES FOR ANY STAFF MEMBER (требуют заголовок с ID пользователя)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(profileRepository, cfg.Auth.UserHeader, log))

	// --- Расписание ---
	protected.HandleFunc("/closed-days", listClosedDays.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/next-available", getNextAvailableDate.Handle).Methods(http.MethodGet)

	// --- Записи ---
	protected.HandleFunc("/appointments", getDailyAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/calendar", getMonthAppointmentDates.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	protected.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/customers/{customerId}", getCustomer.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", updateCustomer.Handle).Methods(http.MethodPatch)

	// --- Статистика ---
	protected.HandleFunc("/stats/monthly", getMonthlyStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/stats/monthly/export", exportMonthlyStats.Handle).Methods(http.MethodGet)

	// ============================================================
	// OWNER ROUTES (управление выходными днями)
	// ============================================================

	owner := protected.PathPrefix("/closed-days").Subrouter()
	owner.Use(middleware.RequireRole(domain.RoleOwner))

	owner.HandleFunc("/preview", previewClosedDays.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/batch", applyClosedDaysBatch.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/{date}/conflicts", getClosedDayConflicts.Handle).Methods(http.MethodGet)
	owner.HandleFunc("", applyClosedDay.Handle).Methods(http.MethodPost)
	owner.HandleFunc("", removeClosedDays.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
