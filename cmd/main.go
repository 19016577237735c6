package main

import (
	"fmt"
	"os"
	"time"

	"github.com/serenio-app/Serenio-Client/internal/cli"
	"github.com/serenio-app/Serenio-Client/internal/config"
	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
	appointmentsService "github.com/serenio-app/Serenio-Client/internal/service/appointments"
	chatService "github.com/serenio-app/Serenio-Client/internal/service/chat"
	insightsService "github.com/serenio-app/Serenio-Client/internal/service/insights"
	paymentService "github.com/serenio-app/Serenio-Client/internal/service/payment"
	"github.com/serenio-app/Serenio-Client/internal/session"
	bookAppointmentUC "github.com/serenio-app/Serenio-Client/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/serenio-app/Serenio-Client/internal/usecase/get_available_slots"
	"github.com/serenio-app/Serenio-Client/pkg/logger"
	"github.com/serenio-app/Serenio-Client/pkg/metrics"
	"github.com/serenio-app/Serenio-Client/pkg/types"
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

	log.Info("Starting Serenio client (backend=%s)", cfg.API.BaseURL)

	// Инициализируем клиента backend
	apiClient := serenioapi.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.Timeout)*time.Second,
		nil,
		log,
	)

	// Метрики исходящих запросов (если включены)
	if cfg.Metrics.Enabled {
		apiClient.SetMetricsCollector(metrics.New(cfg.Metrics.ServiceName))
		log.Info("Outbound request metrics enabled for service=%s", cfg.Metrics.ServiceName)
	}

	// Менеджер сессии: хранит токен, выдает его клиенту и очищается при
	// истечении сессии на любом запросе
	sessionMgr := session.NewManager(apiClient, cfg.Session.TokenFile, log)
	apiClient.SetTokenSource(sessionMgr)
	apiClient.SetAuthExpiredHook(sessionMgr.Clear)

	// Границы рабочего дня из конфигурации
	scheduleStart, err := types.NewTimeStringFromString(cfg.Booking.ScheduleStart)
	if err != nil {
		log.Fatal("Invalid schedule_start in config: %v", err)
	}
	scheduleEnd, err := types.NewTimeStringFromString(cfg.Booking.ScheduleEnd)
	if err != nil {
		log.Fatal("Invalid schedule_end in config: %v", err)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(apiClient, log)
	chatSvc := chatService.NewService(apiClient, log)
	paymentSvc := paymentService.NewService(apiClient, log)
	insightsSvc := insightsService.NewService(apiClient, log)

	// Инициализируем use cases
	availableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		apiClient,
		scheduleStart,
		scheduleEnd,
		cfg.Booking.SlotIntervalMinutes,
		log,
	)

	bookingUseCase := bookAppointmentUC.NewUseCase(
		apiClient,
		appointmentsSvc,
		availableSlotsUseCase,
		cfg.Booking.AdvanceBookingDays,
		cfg.Booking.RequireReason,
		log,
	)

	app := &cli.App{
		Client:         apiClient,
		Session:        sessionMgr,
		AvailableSlots: availableSlotsUseCase,
		BookingUC:      bookingUseCase,
		Appointments:   appointmentsSvc,
		Chat:           chatSvc,
		Payment:        paymentSvc,
		Insights:       insightsSvc,
	}

	if err := cli.NewRootCommand(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
