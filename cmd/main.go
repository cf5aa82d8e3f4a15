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

	"github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers"
	clearPhotoHandler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/clear_photo"
	createFormHandler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/create_form"
	exportCalendarHandler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/export_calendar"
	getAvailableSlotsHandler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/get_available_slots"
	getFormHandler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/get_form"
	getMonthCalendarHandler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/get_month_calendar"
	resetFormHandler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/reset_form"
	selectDateHandler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/select_date"
	submitApplicationHandler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/submit_application"
	toggleTimeSlotHandler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/toggle_time_slot"
	updateFormHandler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/update_form"
	uploadPhotoHandler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/upload_photo"
	"github.com/m04kA/SMC-WorkoutBooking/internal/api/middleware"
	"github.com/m04kA/SMC-WorkoutBooking/internal/config"
	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	"github.com/m04kA/SMC-WorkoutBooking/internal/infra/storage/session"
	applicationServiceClient "github.com/m04kA/SMC-WorkoutBooking/internal/integrations/applicationservice"
	holidayServiceClient "github.com/m04kA/SMC-WorkoutBooking/internal/integrations/holidayservice"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/calendar"
	formsService "github.com/m04kA/SMC-WorkoutBooking/internal/service/forms"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/holidays"
	getAvailableSlotsUC "github.com/m04kA/SMC-WorkoutBooking/internal/usecase/get_available_slots"
	submitApplicationUC "github.com/m04kA/SMC-WorkoutBooking/internal/usecase/submit_application"
	"github.com/m04kA/SMC-WorkoutBooking/pkg/logger"
	"github.com/m04kA/SMC-WorkoutBooking/pkg/metrics"
	"github.com/m04kA/SMC-WorkoutBooking/pkg/tracing"
)

// version задается при сборке: -ldflags "-X main.version=..."
var version = "dev"

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

	log.Info("Starting SMC-WorkoutBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем трассировку
	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: version,
		OTLPEndpoint:   cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		ExportTimeout:  config.Seconds(cfg.Tracing.ExportTimeout),
		SampleRatio:    cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracing: %v", err)
	}
	if cfg.Tracing.Enabled {
		log.Info("Tracing enabled (endpoint=%s, ratio=%.2f)", cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
	}

	location := cfg.Booking.Location()

	// Категории праздников уже проверены в config.Validate
	blocking, _ := cfg.Booking.Blocking()
	observances, _ := cfg.Booking.Observances()
	holidayOptions := holidays.Options{
		BlockingCategories:   blocking,
		ObservanceCategories: observances,
		ClosedWeekdays:       domain.ClosedWeekdays,
	}

	// Инициализируем интеграционных клиентов
	holidayClient := holidayServiceClient.NewClient(
		cfg.HolidayService.URL,
		cfg.HolidayService.APIKey,
		location,
		tracing.NewHTTPClient(config.Seconds(cfg.HolidayService.Timeout)),
		log,
	)
	applicationClient := applicationServiceClient.NewClient(
		cfg.ApplicationService.URL,
		tracing.NewHTTPClient(config.Seconds(cfg.ApplicationService.Timeout)),
		log,
	)
	log.Info("Integration clients initialized (HolidayService=%s timeout=%ds, ApplicationService=%s timeout=%ds)",
		cfg.HolidayService.URL, cfg.HolidayService.Timeout, cfg.ApplicationService.URL, cfg.ApplicationService.Timeout)

	// Загружаем праздники: без них сервис не стартует
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), config.Seconds(cfg.HolidayService.Timeout))
	holidayIndex, err := holidays.Load(loadCtx, holidayClient, cfg.HolidayService.Country, holidayOptions, metricsCollector, log)
	cancelLoad()
	if err != nil {
		log.Fatal("Failed to load holidays: %v", err)
	}

	// Инициализируем хранилище и сервисы
	sessionStore := session.NewStore(cfg.Forms.SessionTTL(), cfg.Forms.MaxSessions)
	slotGenerator := getAvailableSlotsUC.NewGenerator(cfg.Booking.SlotCandidates)

	formSvc := formsService.NewService(
		sessionStore,
		holidayIndex,
		slotGenerator,
		location,
		int(cfg.Forms.MaxPhotoBytes),
		metricsCollector,
		log,
	)
	calendarExporter := calendar.NewExporter(cfg.Booking.SlotDuration(), &calendar.RealTimeProvider{})

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		holidayIndex,
		slotGenerator,
		location,
		log,
	)
	submitApplicationUseCase := submitApplicationUC.NewUseCase(
		formSvc,
		applicationClient,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	getMonthCalendar := getMonthCalendarHandler.NewHandler(getAvailableSlotsUseCase, log)
	createForm := createFormHandler.NewHandler(formSvc, log)
	getForm := getFormHandler.NewHandler(formSvc, log)
	updateForm := updateFormHandler.NewHandler(formSvc, log)
	uploadPhoto := uploadPhotoHandler.NewHandler(formSvc, cfg.Forms.MaxPhotoBytes, log)
	clearPhoto := clearPhotoHandler.NewHandler(formSvc, log)
	selectDate := selectDateHandler.NewHandler(formSvc, location, log)
	toggleTimeSlot := toggleTimeSlotHandler.NewHandler(formSvc, log)
	submitApplication := submitApplicationHandler.NewHandler(submitApplicationUseCase, log)
	resetForm := resetFormHandler.NewHandler(formSvc, log)
	exportCalendar := exportCalendarHandler.NewHandler(formSvc, calendarExporter, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"status":   "ok",
			"holidays": holidayIndex.Len(),
			"sessions": sessionStore.Len(),
		})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Календарь ---
	// Информация о дне и доступные слоты
	api.HandleFunc("/calendar/days/{date}", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Календарь месяца для выбора даты
	api.HandleFunc("/calendar/months/{year:[0-9]{4}}/{month:[0-9]{1,2}}", getMonthCalendar.Handle).Methods(http.MethodGet)

	// --- Формы ---
	api.HandleFunc("/forms", createForm.Handle).Methods(http.MethodPost)
	api.HandleFunc("/forms/{formId}", getForm.Handle).Methods(http.MethodGet)
	api.HandleFunc("/forms/{formId}", updateForm.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/forms/{formId}/photo", uploadPhoto.Handle).Methods(http.MethodPut)
	api.HandleFunc("/forms/{formId}/photo", clearPhoto.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/forms/{formId}/date", selectDate.Handle).Methods(http.MethodPut)
	api.HandleFunc("/forms/{formId}/time-slot", toggleTimeSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/forms/{formId}/submit", submitApplication.Handle).Methods(http.MethodPost)
	api.HandleFunc("/forms/{formId}/reset", resetForm.Handle).Methods(http.MethodPost)

	// Экспорт в календарь (после отправки)
	api.HandleFunc("/forms/{formId}/calendar.ics", exportCalendar.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      tracing.WrapHandler(r, cfg.Tracing.ServiceName),
		ReadTimeout:  config.Seconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Seconds(cfg.Server.IdleTimeout),
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

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
