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

	cancelReservationHandler "github.com/bclub/TableReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/bclub/TableReservationService/internal/api/handlers/create_reservation"
	createTableHandler "github.com/bclub/TableReservationService/internal/api/handlers/create_table"
	deleteReservationHandler "github.com/bclub/TableReservationService/internal/api/handlers/delete_reservation"
	deleteTableHandler "github.com/bclub/TableReservationService/internal/api/handlers/delete_table"
	getClubSettingsHandler "github.com/bclub/TableReservationService/internal/api/handlers/get_club_settings"
	getDateReservationsHandler "github.com/bclub/TableReservationService/internal/api/handlers/get_date_reservations"
	getMeHandler "github.com/bclub/TableReservationService/internal/api/handlers/get_me"
	getTablesHandler "github.com/bclub/TableReservationService/internal/api/handlers/get_tables"
	getTimeSlotsHandler "github.com/bclub/TableReservationService/internal/api/handlers/get_time_slots"
	getUserReservationsHandler "github.com/bclub/TableReservationService/internal/api/handlers/get_user_reservations"
	registerUserHandler "github.com/bclub/TableReservationService/internal/api/handlers/register_user"
	updateClubSettingsHandler "github.com/bclub/TableReservationService/internal/api/handlers/update_club_settings"
	updateReservationHandler "github.com/bclub/TableReservationService/internal/api/handlers/update_reservation"
	updateTableHandler "github.com/bclub/TableReservationService/internal/api/handlers/update_table"
	"github.com/bclub/TableReservationService/internal/api/middleware"
	"github.com/bclub/TableReservationService/internal/config"
	reservationRepo "github.com/bclub/TableReservationService/internal/infra/storage/reservation"
	settingsRepo "github.com/bclub/TableReservationService/internal/infra/storage/settings"
	tableRepo "github.com/bclub/TableReservationService/internal/infra/storage/table"
	userRepo "github.com/bclub/TableReservationService/internal/infra/storage/user"
	reservationsService "github.com/bclub/TableReservationService/internal/service/reservations"
	settingsService "github.com/bclub/TableReservationService/internal/service/settings"
	tablesService "github.com/bclub/TableReservationService/internal/service/tables"
	usersService "github.com/bclub/TableReservationService/internal/service/users"
	createReservationUC "github.com/bclub/TableReservationService/internal/usecase/create_reservation"
	getTimeSlotsUC "github.com/bclub/TableReservationService/internal/usecase/get_time_slots"
	"github.com/bclub/TableReservationService/pkg/dbmetrics"
	"github.com/bclub/TableReservationService/pkg/logger"
	"github.com/bclub/TableReservationService/pkg/metrics"
	"github.com/bclub/TableReservationService/pkg/simpletxmanager"
	"github.com/bclub/TableReservationService/pkg/txmanager"
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

	log.Info("Starting TableReservationService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		tableRepository       *tableRepo.Repository
		userRepository        *userRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	usersSvc := usersService.NewService(userRepository, log)
	tablesSvc := tablesService.NewService(tableRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		txMgr,
		log,
	)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(
		reservationRepository,
		settingsSvc,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(usersSvc, log)
	getMe := getMeHandler.NewHandler(log)
	getTables := getTablesHandler.NewHandler(tablesSvc, log)
	createTable := createTableHandler.NewHandler(tablesSvc, log)
	updateTable := updateTableHandler.NewHandler(tablesSvc, log)
	deleteTable := deleteTableHandler.NewHandler(tablesSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getDateReservations := getDateReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	getClubSettings := getClubSettingsHandler.NewHandler(settingsSvc, log)
	updateClubSettings := updateClubSettingsHandler.NewHandler(settingsSvc, log)

	// Middleware аутентификации по X-Telegram-ID
	auth := middleware.NewAuth(usersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация пользователя (идемпотентна по telegram_id)
	api.HandleFunc("/users", registerUser.Handle).Methods(http.MethodPost)

	// Список столов
	api.HandleFunc("/tables", getTables.Handle).Methods(http.MethodGet)

	// Слоты дня для стола
	api.HandleFunc("/time-slots/{date}/{tableId}", getTimeSlots.Handle).Methods(http.MethodGet)

	// Настройки клуба
	api.HandleFunc("/club-settings", getClubSettings.Handle).Methods(http.MethodGet)

	// Бронирования на дату
	api.HandleFunc("/reservations/date/{date}", getDateReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Telegram-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Identify)

	// Текущий пользователь
	protected.HandleFunc("/users/me", getMe.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", getUserReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id:[0-9]+}", updateReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{id:[0-9]+}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{id:[0-9]+}", deleteReservation.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (требуют is_admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(auth.Identify, auth.RequireAdmin)

	// --- Управление столами ---
	admin.HandleFunc("/tables", createTable.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/tables/{id:[0-9]+}", updateTable.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/tables/{id:[0-9]+}", deleteTable.Handle).Methods(http.MethodDelete)

	// --- Настройки клуба ---
	admin.HandleFunc("/club-settings", updateClubSettings.Handle).Methods(http.MethodPatch)

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
