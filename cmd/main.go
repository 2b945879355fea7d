package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookAppointmentHandler "github.com/m04kA/SMC-DentalCareService/internal/api/handlers/book_appointment"
	getFreeSlotsHandler "github.com/m04kA/SMC-DentalCareService/internal/api/handlers/get_free_slots"
	getServicePriceHandler "github.com/m04kA/SMC-DentalCareService/internal/api/handlers/get_service_price"
	listServicesHandler "github.com/m04kA/SMC-DentalCareService/internal/api/handlers/list_services"
	"github.com/m04kA/SMC-DentalCareService/internal/api/middleware"
	"github.com/m04kA/SMC-DentalCareService/internal/config"
	catalogRepo "github.com/m04kA/SMC-DentalCareService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-DentalCareService/internal/infra/storage/ledger"
	scheduleRepo "github.com/m04kA/SMC-DentalCareService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-DentalCareService/internal/integrations/webhook"
	catalogService "github.com/m04kA/SMC-DentalCareService/internal/service/catalog"
	scheduleService "github.com/m04kA/SMC-DentalCareService/internal/service/schedule"
	bookAppointmentUC "github.com/m04kA/SMC-DentalCareService/internal/usecase/book_appointment"
	getServicePriceUC "github.com/m04kA/SMC-DentalCareService/internal/usecase/get_service_price"
	"github.com/m04kA/SMC-DentalCareService/pkg/logger"
	"github.com/m04kA/SMC-DentalCareService/pkg/metrics"
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

	log.Info("Starting SMC-DentalCareService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем прайс-лист и расписание из CSV-выгрузок клиники.
	// Оба хранилища заполняются один раз и далее только читаются
	catalogRepository, err := catalogRepo.LoadFromFile(cfg.Data.ServicesFile)
	if err != nil {
		log.Fatal("Failed to load services catalog: %v", err)
	}
	log.Info("Services catalog loaded from %s (%d services)",
		cfg.Data.ServicesFile, len(catalogRepository.List()))

	scheduleRepository, err := scheduleRepo.LoadFromFile(cfg.Data.ScheduleFile)
	if err != nil {
		log.Fatal("Failed to load schedule: %v", err)
	}
	log.Info("Schedule loaded from %s", cfg.Data.ScheduleFile)

	// Реестр бронирований живет в памяти и умирает вместе с процессом
	bookingLedger := ledger.NewLedger()

	// Инициализируем клиент уведомлений (если включен)
	var sink bookAppointmentUC.NotificationSink
	if cfg.Webhook.Enabled {
		sink = webhook.NewClient(
			cfg.Webhook.URL,
			time.Duration(cfg.Webhook.Timeout)*time.Second,
			log,
		)
		log.Info("Webhook notifications enabled (url=%s, timeout=%ds)", cfg.Webhook.URL, cfg.Webhook.Timeout)
	} else {
		log.Info("Webhook notifications disabled")
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		catalogRepository,
		scheduleRepository,
		bookingLedger,
		sink,
		log,
	)
	getServicePriceUseCase := getServicePriceUC.NewUseCase(catalogRepository, log)

	// Инициализируем handlers
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getServicePrice := getServicePriceHandler.NewHandler(getServicePriceUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Прайс-лист и цены
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/price", getServicePrice.Handle).Methods(http.MethodGet)

	// Свободное время врача на дату
	api.HandleFunc("/doctors/{doctor}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// Запись на прием
	api.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)

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
