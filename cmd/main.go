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
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/create_appointment"
	createShiftRangeHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/create_shift_range"
	deactivateShiftRangeHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/deactivate_shift_range"
	deleteAppointmentHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/get_appointment"
	getAvailabilityGridHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/get_availability_grid"
	getShiftRangeHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/get_shift_range"
	listAppointmentsHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/list_appointments"
	listShiftRangesHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/list_shift_ranges"
	quickBookHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/quick_book"
	resolveShiftHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/resolve_shift"
	transitionStatusHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/transition_status"
	updateAppointmentHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/update_appointment"
	updateShiftRangeHandler "github.com/m04kA/SMC-SpaBookingService/internal/api/handlers/update_shift_range"
	"github.com/m04kA/SMC-SpaBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBookingService/internal/config"
	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/infra/cache/gridcache"
	"github.com/m04kA/SMC-SpaBookingService/internal/infra/events"
	appointmentRepo "github.com/m04kA/SMC-SpaBookingService/internal/infra/storage/appointment"
	shiftRepo "github.com/m04kA/SMC-SpaBookingService/internal/infra/storage/shift"
	catalogServiceClient "github.com/m04kA/SMC-SpaBookingService/internal/integrations/catalogservice"
	clientServiceClient "github.com/m04kA/SMC-SpaBookingService/internal/integrations/clientservice"
	staffServiceClient "github.com/m04kA/SMC-SpaBookingService/internal/integrations/staffservice"
	appointmentsService "github.com/m04kA/SMC-SpaBookingService/internal/service/appointments"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/notify"
	shiftsService "github.com/m04kA/SMC-SpaBookingService/internal/service/shifts"
	createAppointmentUC "github.com/m04kA/SMC-SpaBookingService/internal/usecase/create_appointment"
	getAvailabilityGridUC "github.com/m04kA/SMC-SpaBookingService/internal/usecase/get_availability_grid"
	quickBookUC "github.com/m04kA/SMC-SpaBookingService/internal/usecase/quick_book"
	updateAppointmentUC "github.com/m04kA/SMC-SpaBookingService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-SpaBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SpaBookingService/pkg/logger"
	"github.com/m04kA/SMC-SpaBookingService/pkg/metrics"
	"github.com/m04kA/SMC-SpaBookingService/pkg/txmanager"
)

// gridCacheBackend кеш сеток: Redis или no-op
type gridCacheBackend interface {
	Version(ctx context.Context, date time.Time) (int64, error)
	Get(ctx context.Context, q gridcache.Query) (*domain.AvailabilityGrid, bool, error)
	Set(ctx context.Context, q gridcache.Query, grid *domain.AvailabilityGrid) error
	Invalidate(ctx context.Context, dates ...time.Time) error
}

// eventPublisher издатель событий: Kafka или no-op
type eventPublisher interface {
	Publish(ctx context.Context, evt events.AppointmentEvent) error
	Close() error
}

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

	log.Info("Starting SMC-SpaBookingService...")

	location, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Invalid scheduling timezone: %v", err)
	}
	log.Info("Salon timezone: %s", location)

	// Инициализируем метрики (если включены). nil-коллектор превращает вызовы в no-op.
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кеш сеток и публикация событий
	cache := newGridCache(cfg, metricsCollector, log)
	publisher := newEventPublisher(cfg, metricsCollector, log)
	defer publisher.Close()

	// Инициализируем интеграционных клиентов
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	clientClient := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s, CatalogService=%s, ClientService=%s)",
		cfg.StaffService.URL, cfg.CatalogService.URL, cfg.ClientService.URL)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	shiftRepository := shiftRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	notifier := notify.NewNotifier(cache, publisher, location, log)
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		txMgr,
		notifier,
		metricsCollector,
		location,
		log,
	)
	shiftSvc := shiftsService.NewService(
		shiftRepository,
		txMgr,
		cache,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		staffClient,
		catalogClient,
		clientClient,
		txMgr,
		notifier,
		metricsCollector,
		location,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		staffClient,
		catalogClient,
		clientClient,
		txMgr,
		notifier,
		metricsCollector,
		location,
		log,
	)
	quickBookUseCase := quickBookUC.NewUseCase(
		staffClient,
		catalogClient,
		shiftRepository,
		appointmentRepository,
		createAppointmentUseCase,
		cfg.Scheduling.DefaultSlotDurationMinutes,
		cfg.Scheduling.MinBookableMinutes,
		location,
		log,
	)
	getAvailabilityGridUseCase := getAvailabilityGridUC.NewUseCase(
		staffClient,
		shiftRepository,
		appointmentRepository,
		cache,
		cfg.Scheduling,
		cfg.Scheduling.MinBookableMinutes,
		location,
		log,
	)

	// Инициализируем handlers
	handlers := &apiHandlers{
		getAvailabilityGrid: getAvailabilityGridHandler.NewHandler(getAvailabilityGridUseCase, log).Handle,

		createAppointment: createAppointmentHandler.NewHandler(createAppointmentUseCase, log).Handle,
		quickBook:         quickBookHandler.NewHandler(quickBookUseCase, log).Handle,
		listAppointments:  listAppointmentsHandler.NewHandler(appointmentSvc, log).Handle,
		getAppointment:    getAppointmentHandler.NewHandler(appointmentSvc, log).Handle,
		updateAppointment: updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log).Handle,
		transitionStatus:  transitionStatusHandler.NewHandler(appointmentSvc, log).Handle,
		cancelAppointment: cancelAppointmentHandler.NewHandler(appointmentSvc, log).Handle,
		deleteAppointment: deleteAppointmentHandler.NewHandler(appointmentSvc, log).Handle,

		createShiftRange:     createShiftRangeHandler.NewHandler(shiftSvc, log).Handle,
		listShiftRanges:      listShiftRangesHandler.NewHandler(shiftSvc, log).Handle,
		getShiftRange:        getShiftRangeHandler.NewHandler(shiftSvc, log).Handle,
		updateShiftRange:     updateShiftRangeHandler.NewHandler(shiftSvc, log).Handle,
		deactivateShiftRange: deactivateShiftRangeHandler.NewHandler(shiftSvc, log).Handle,
		resolveShift:         resolveShiftHandler.NewHandler(shiftSvc, log).Handle,
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.UserID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := wrappedDB.PingContext(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	registerRoutes(r, handlers)
	log.Info("Routes registered under %s and %s", apiPrefix, unakiAPIPrefix)

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

// newGridCache подключается к Redis; при выключенном или недоступном Redis сетки не кешируются
func newGridCache(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) gridCacheBackend {
	if !cfg.Redis.Enabled {
		log.Info("Grid cache disabled")
		return gridcache.Noop{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Redis is unavailable (addr=%s), grid cache disabled: %v", cfg.Redis.Addr, err)
		_ = rdb.Close()
		return gridcache.Noop{}
	}

	log.Info("Grid cache connected to Redis (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.GridTTL())
	return gridcache.New(rdb, cfg.Redis.GridTTL(), m)
}

// newEventPublisher создает Kafka издателя событий записей
func newEventPublisher(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) eventPublisher {
	if !cfg.Kafka.Enabled {
		log.Info("Appointment events disabled")
		return events.Noop{}
	}

	log.Info("Publishing appointment events to Kafka (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	return events.NewKafkaPublisher(
		cfg.Kafka.Brokers,
		cfg.Kafka.Topic,
		time.Duration(cfg.Kafka.WriteTimeoutSec)*time.Second,
		m,
	)
}
