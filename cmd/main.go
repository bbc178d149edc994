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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBusHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/create_bus"
	createDriverHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/create_driver"
	createRouteHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/create_route"
	createShiftHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/create_shift"
	deleteBusHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/delete_bus"
	deleteDriverHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/delete_driver"
	deleteRouteHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/delete_route"
	deleteShiftHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/delete_shift"
	listBusesHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/list_buses"
	listDriversHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/list_drivers"
	listRoutesHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/list_routes"
	listShiftsHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/list_shifts"
	loginHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/logout"
	meHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/me"
	signupHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/signup"
	updateBusHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/update_bus"
	updateDriverHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/update_driver"
	updateRouteHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/update_route"
	updateShiftHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/update_shift"
	"github.com/m04kA/SMC-FleetService/internal/api/middleware"
	"github.com/m04kA/SMC-FleetService/internal/auth"
	"github.com/m04kA/SMC-FleetService/internal/config"
	busesRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/buses"
	driversRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/drivers"
	routesRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/routes"
	shiftsRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/shifts"
	usersRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/users"
	authService "github.com/m04kA/SMC-FleetService/internal/service/auth"
	busesService "github.com/m04kA/SMC-FleetService/internal/service/buses"
	driversService "github.com/m04kA/SMC-FleetService/internal/service/drivers"
	routesService "github.com/m04kA/SMC-FleetService/internal/service/routes"
	shiftsService "github.com/m04kA/SMC-FleetService/internal/service/shifts"
	createShiftUC "github.com/m04kA/SMC-FleetService/internal/usecase/create_shift"
	updateShiftUC "github.com/m04kA/SMC-FleetService/internal/usecase/update_shift"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/logger"
	"github.com/m04kA/SMC-FleetService/pkg/metrics"
	"github.com/m04kA/SMC-FleetService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-FleetService/pkg/txmanager"
)

func main() {
	// .env нужен только для локальной разработки, его отсутствие не ошибка
	_ = godotenv.Load()

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

	log.Info("Starting SMC-FleetService...")
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

	// Менеджер токенов сессий
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// Инициализируем репозитории (с метриками или без)
	var (
		shiftRepository  *shiftsRepo.Repository
		driverRepository *driversRepo.Repository
		busRepository    *busesRepo.Repository
		routeRepository  *routesRepo.Repository
		userRepository   *usersRepo.Repository
	)

	var txMgr authService.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		shiftRepository = shiftsRepo.NewRepository(wrappedDB)
		driverRepository = driversRepo.NewRepository(wrappedDB)
		busRepository = busesRepo.NewRepository(wrappedDB)
		routeRepository = routesRepo.NewRepository(wrappedDB)
		userRepository = usersRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		shiftRepository = shiftsRepo.NewRepository(db)
		driverRepository = driversRepo.NewRepository(db)
		busRepository = busesRepo.NewRepository(db)
		routeRepository = routesRepo.NewRepository(db)
		userRepository = usersRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, txMgr, cfg.Auth.BcryptCost, log)
	driverSvc := driversService.NewService(driverRepository, log)
	busSvc := busesService.NewService(busRepository, log)
	routeSvc := routesService.NewService(routeRepository, log)
	shiftSvc := shiftsService.NewService(shiftRepository, log)

	// Инициализируем use cases
	createShiftUseCase := createShiftUC.NewUseCase(shiftRepository, routeRepository, log)
	updateShiftUseCase := updateShiftUC.NewUseCase(shiftRepository, routeRepository, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, tokens, log)
	signup := signupHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler()
	me := meHandler.NewHandler()

	listShifts := listShiftsHandler.NewHandler(shiftSvc, log)
	createShift := createShiftHandler.NewHandler(createShiftUseCase, log)
	updateShift := updateShiftHandler.NewHandler(updateShiftUseCase, log)
	deleteShift := deleteShiftHandler.NewHandler(shiftSvc, log)

	listDrivers := listDriversHandler.NewHandler(driverSvc, log)
	createDriver := createDriverHandler.NewHandler(driverSvc, log)
	updateDriver := updateDriverHandler.NewHandler(driverSvc, log)
	deleteDriver := deleteDriverHandler.NewHandler(driverSvc, log)

	listBuses := listBusesHandler.NewHandler(busSvc, log)
	createBus := createBusHandler.NewHandler(busSvc, log)
	updateBus := updateBusHandler.NewHandler(busSvc, log)
	deleteBus := deleteBusHandler.NewHandler(busSvc, log)

	listRoutes := listRoutesHandler.NewHandler(routeSvc, log)
	createRoute := createRouteHandler.NewHandler(routeSvc, log)
	updateRoute := updateRouteHandler.NewHandler(routeSvc, log)
	deleteRoute := deleteRouteHandler.NewHandler(routeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/signup", signup.Handle).Methods(http.MethodPost)
	api.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (JWT cookie + матрица ролей)
	// ============================================================

	authMw := middleware.NewAuth(tokens, log)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMw.Handler)

	protected.HandleFunc("/me", me.Handle).Methods(http.MethodGet)

	// --- Смены ---
	protected.HandleFunc("/shifts",
		middleware.RequirePermission(middleware.CapView, listShifts.Handle)).Methods(http.MethodGet)
	protected.HandleFunc("/shifts",
		middleware.RequirePermission(middleware.CapCreate, createShift.Handle)).Methods(http.MethodPost)
	protected.HandleFunc("/shifts",
		middleware.RequirePermission(middleware.CapEdit, updateShift.Handle)).Methods(http.MethodPut)
	// Удаление смен - операция диспетчера, достаточно права редактирования
	protected.HandleFunc("/shifts",
		middleware.RequirePermission(middleware.CapEdit, deleteShift.Handle)).Methods(http.MethodDelete)

	// --- Водители ---
	protected.HandleFunc("/drivers",
		middleware.RequirePermission(middleware.CapView, listDrivers.Handle)).Methods(http.MethodGet)
	protected.HandleFunc("/drivers",
		middleware.RequirePermission(middleware.CapCreate, createDriver.Handle)).Methods(http.MethodPost)
	protected.HandleFunc("/drivers",
		middleware.RequirePermission(middleware.CapEdit, updateDriver.Handle)).Methods(http.MethodPut)
	protected.HandleFunc("/drivers",
		middleware.RequirePermission(middleware.CapDelete, deleteDriver.Handle)).Methods(http.MethodDelete)

	// --- Автобусы ---
	protected.HandleFunc("/buses",
		middleware.RequirePermission(middleware.CapView, listBuses.Handle)).Methods(http.MethodGet)
	protected.HandleFunc("/buses",
		middleware.RequirePermission(middleware.CapCreate, createBus.Handle)).Methods(http.MethodPost)
	protected.HandleFunc("/buses",
		middleware.RequirePermission(middleware.CapEdit, updateBus.Handle)).Methods(http.MethodPut)
	protected.HandleFunc("/buses",
		middleware.RequirePermission(middleware.CapDelete, deleteBus.Handle)).Methods(http.MethodDelete)

	// --- Маршруты ---
	protected.HandleFunc("/routes",
		middleware.RequirePermission(middleware.CapView, listRoutes.Handle)).Methods(http.MethodGet)
	protected.HandleFunc("/routes",
		middleware.RequirePermission(middleware.CapCreate, createRoute.Handle)).Methods(http.MethodPost)
	protected.HandleFunc("/routes",
		middleware.RequirePermission(middleware.CapEdit, updateRoute.Handle)).Methods(http.MethodPut)
	protected.HandleFunc("/routes",
		middleware.RequirePermission(middleware.CapDelete, deleteRoute.Handle)).Methods(http.MethodDelete)

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
