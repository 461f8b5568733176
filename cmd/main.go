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

	createAppointmentHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_appointment"
	getMonthAppointmentsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_month_appointments"
	getReportsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_reports"
	getTimeOptionsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_time_options"
	getUpcomingAppointmentsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_upcoming_appointments"
	getWeekAppointmentsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_week_appointments"
	updateAppointmentHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/update_appointment"
	validateAppointmentHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/validate_appointment"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/appointment"
	appointmentsService "github.com/m04kA/SMC-SchedulerService/internal/service/appointments"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours"
	getTimeOptionsUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_time_options"
	saveAppointmentUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/save_appointment"
	upcomingAppointmentsUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/upcoming_appointments"
	validateAppointmentUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/validate_appointment"
	"github.com/m04kA/SMC-SchedulerService/pkg/logger"
	"github.com/m04kA/SMC-SchedulerService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := defaultConfigPath
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-SchedulerService...")
	log.Info("Configuration loaded from %s", configPath)

	// Политика рабочих часов: некорректный часовой пояс - ошибка конфигурации
	policy, err := businesshours.NewPolicyFromStrings(
		cfg.BusinessHours.HeadquartersZone,
		cfg.BusinessHours.Open,
		cfg.BusinessHours.Close,
	)
	if err != nil {
		log.Fatal("Invalid business hours configuration: %v", err)
	}
	log.Info("Business hours: %s-%s %s", policy.Open(), policy.Close(), policy.Headquarters())

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	if cfg.Metrics.Enabled {
		metricsCollector.RegisterDBStats(db, cfg.Database.DBName)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории и менеджер транзакций
	appointmentRepository := appointmentRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	validateAppointmentUseCase := validateAppointmentUC.NewUseCase(
		appointmentRepository,
		policy,
		metricsCollector,
		log,
	)
	saveAppointmentUseCase := saveAppointmentUC.NewUseCase(
		appointmentRepository,
		policy,
		txMgr,
		metricsCollector,
		log,
	)
	upcomingAppointmentsUseCase := upcomingAppointmentsUC.NewUseCase(
		appointmentRepository,
		cfg.Alerts.LeadMinutes,
		log,
	)
	getTimeOptionsUseCase := getTimeOptionsUC.NewUseCase(policy, log)

	// Инициализируем handlers
	validateAppointment := validateAppointmentHandler.NewHandler(validateAppointmentUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(saveAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(saveAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getWeekAppointments := getWeekAppointmentsHandler.NewHandler(appointmentSvc, log)
	getMonthAppointments := getMonthAppointmentsHandler.NewHandler(appointmentSvc, log)
	getUpcomingAppointments := getUpcomingAppointmentsHandler.NewHandler(upcomingAppointmentsUseCase, log)
	getTimeOptions := getTimeOptionsHandler.NewHandler(getTimeOptionsUseCase, log)
	getReports := getReportsHandler.NewHandler(appointmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Варианты времени для формы встречи и рабочие часы
	api.HandleFunc("/time-options", getTimeOptions.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Встречи ---
	// Проверка встречи без сохранения
	protected.HandleFunc("/appointments/validate", validateAppointment.Handle).Methods(http.MethodPost)

	// Создание встречи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Календарь: неделя и месяц
	protected.HandleFunc("/appointments/week", getWeekAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/month", getMonthAppointments.Handle).Methods(http.MethodGet)

	// Встречи пользователя в ближайшие минуты
	protected.HandleFunc("/appointments/upcoming", getUpcomingAppointments.Handle).Methods(http.MethodGet)

	// Получение, обновление и удаление встречи
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Отчеты ---
	protected.HandleFunc("/reports/types", getReports.HandleTypes).Methods(http.MethodGet)
	protected.HandleFunc("/reports/months", getReports.HandleMonths).Methods(http.MethodGet)
	protected.HandleFunc("/reports/schedule", getReports.HandleSchedule).Methods(http.MethodGet)

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
