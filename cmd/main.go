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

	addAvailabilityHandler "github.com/m04kA/HRC-CalendarService/internal/api/handlers/add_availability"
	bulkAvailabilityHandler "github.com/m04kA/HRC-CalendarService/internal/api/handlers/bulk_availability"
	createBookingHandler "github.com/m04kA/HRC-CalendarService/internal/api/handlers/create_booking"
	createEventTypeHandler "github.com/m04kA/HRC-CalendarService/internal/api/handlers/create_event_type"
	declineBookingHandler "github.com/m04kA/HRC-CalendarService/internal/api/handlers/decline_booking"
	getBookingHandler "github.com/m04kA/HRC-CalendarService/internal/api/handlers/get_booking"
	listAvailabilityHandler "github.com/m04kA/HRC-CalendarService/internal/api/handlers/list_availability"
	listBookingsHandler "github.com/m04kA/HRC-CalendarService/internal/api/handlers/list_bookings"
	listEventTypesHandler "github.com/m04kA/HRC-CalendarService/internal/api/handlers/list_event_types"
	removeAvailabilityHandler "github.com/m04kA/HRC-CalendarService/internal/api/handlers/remove_availability"
	updateBookingStatusHandler "github.com/m04kA/HRC-CalendarService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/HRC-CalendarService/internal/api/middleware"
	"github.com/m04kA/HRC-CalendarService/internal/config"
	bookingRepo "github.com/m04kA/HRC-CalendarService/internal/infra/storage/booking"
	eventTypeRepo "github.com/m04kA/HRC-CalendarService/internal/infra/storage/eventtype"
	freeSlotRepo "github.com/m04kA/HRC-CalendarService/internal/infra/storage/freeslot"
	availabilityService "github.com/m04kA/HRC-CalendarService/internal/service/availability"
	bookingsService "github.com/m04kA/HRC-CalendarService/internal/service/bookings"
	eventTypesService "github.com/m04kA/HRC-CalendarService/internal/service/eventtypes"
	bulkAvailabilityUC "github.com/m04kA/HRC-CalendarService/internal/usecase/bulk_availability"
	createBookingUC "github.com/m04kA/HRC-CalendarService/internal/usecase/create_booking"
	"github.com/m04kA/HRC-CalendarService/pkg/logger"
	"github.com/m04kA/HRC-CalendarService/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HRC-CalendarService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены); nil-интерфейсы заменяются
	// на no-op коллекторы внутри конструкторов.
	var (
		metricsCollector *metrics.Metrics

		availabilityMetrics availabilityService.Metrics
		bookingsMetrics     bookingsService.Metrics
		createMetrics       createBookingUC.Metrics
		bulkMetrics         bulkAvailabilityUC.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		availabilityMetrics = metricsCollector
		bookingsMetrics = metricsCollector
		createMetrics = metricsCollector
		bulkMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем репозитории: вся неделя живёт в памяти, рестарт всё стирает.
	slotRepository := freeSlotRepo.NewRepository()
	bookingRepository := bookingRepo.NewRepository()
	eventTypeRepository := eventTypeRepo.NewRepository()

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		slotRepository,
		bookingRepository,
		availabilityMetrics,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		bookingsMetrics,
		log,
	)
	eventTypesSvc := eventTypesService.NewService(eventTypeRepository, log)

	if cfg.Calendar.SeedEventTypes {
		eventTypesSvc.Seed(context.Background())
		log.Info("Default event types seeded")
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		eventTypeRepository,
		createMetrics,
		log,
	)
	bulkAvailabilityUseCase := bulkAvailabilityUC.NewUseCase(
		slotRepository,
		bookingRepository,
		bulkMetrics,
		log,
	)

	// Инициализируем handlers
	addAvailability := addAvailabilityHandler.NewHandler(availabilitySvc, log)
	removeAvailability := removeAvailabilityHandler.NewHandler(availabilitySvc, log)
	listAvailability := listAvailabilityHandler.NewHandler(availabilitySvc, log)
	bulkAvailability := bulkAvailabilityHandler.NewHandler(bulkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	declineBooking := declineBookingHandler.NewHandler(bookingsSvc, log)
	createEventType := createEventTypeHandler.NewHandler(eventTypesSvc, log)
	listEventTypes := listEventTypesHandler.NewHandler(eventTypesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// PUBLIC ROUTES (без аутентификации): сетка календаря читается без роли.
	api.HandleFunc("/availability", listAvailability.Handle).Methods(http.MethodGet)

	// PROTECTED ROUTES (требуют X-Role header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireRole)

	protected.HandleFunc("/event-types", listEventTypes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/event-types", createEventType.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/availability", addAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/availability", removeAvailability.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/availability/bulk", bulkAvailability.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", declineBooking.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
