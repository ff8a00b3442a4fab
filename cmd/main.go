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

	assignShiftHandler "github.com/easybook/EB-BookingService/internal/api/handlers/assign_shift"
	cancelBookingHandler "github.com/easybook/EB-BookingService/internal/api/handlers/cancel_booking"
	confirmPaymentHandler "github.com/easybook/EB-BookingService/internal/api/handlers/confirm_payment"
	createBookingHandler "github.com/easybook/EB-BookingService/internal/api/handlers/create_booking"
	createReviewHandler "github.com/easybook/EB-BookingService/internal/api/handlers/create_review"
	deleteShiftHandler "github.com/easybook/EB-BookingService/internal/api/handlers/delete_shift"
	deleteSlotHandler "github.com/easybook/EB-BookingService/internal/api/handlers/delete_slot"
	generateSlotsHandler "github.com/easybook/EB-BookingService/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/easybook/EB-BookingService/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/easybook/EB-BookingService/internal/api/handlers/get_calendar"
	getCustomerBookingsHandler "github.com/easybook/EB-BookingService/internal/api/handlers/get_customer_bookings"
	getDayBookingsHandler "github.com/easybook/EB-BookingService/internal/api/handlers/get_day_bookings"
	getNextShiftHandler "github.com/easybook/EB-BookingService/internal/api/handlers/get_next_shift"
	getShiftRequestsHandler "github.com/easybook/EB-BookingService/internal/api/handlers/get_shift_requests"
	listServiceTypesHandler "github.com/easybook/EB-BookingService/internal/api/handlers/list_service_types"
	modifyBookingHandler "github.com/easybook/EB-BookingService/internal/api/handlers/modify_booking"
	requestShiftChangeHandler "github.com/easybook/EB-BookingService/internal/api/handlers/request_shift_change"
	resolveShiftRequestHandler "github.com/easybook/EB-BookingService/internal/api/handlers/resolve_shift_request"
	toggleBlockedDateHandler "github.com/easybook/EB-BookingService/internal/api/handlers/toggle_blocked_date"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	"github.com/easybook/EB-BookingService/internal/config"
	blockedDateRepo "github.com/easybook/EB-BookingService/internal/infra/storage/blockeddate"
	bookingRepo "github.com/easybook/EB-BookingService/internal/infra/storage/booking"
	paymentRepo "github.com/easybook/EB-BookingService/internal/infra/storage/payment"
	reviewRepo "github.com/easybook/EB-BookingService/internal/infra/storage/review"
	serviceTypeRepo "github.com/easybook/EB-BookingService/internal/infra/storage/servicetype"
	shiftRepo "github.com/easybook/EB-BookingService/internal/infra/storage/shift"
	slotRepo "github.com/easybook/EB-BookingService/internal/infra/storage/slot"
	userRepo "github.com/easybook/EB-BookingService/internal/infra/storage/user"
	notifierClient "github.com/easybook/EB-BookingService/internal/integrations/notifier"
	blockedDatesService "github.com/easybook/EB-BookingService/internal/service/blockeddates"
	bookingsService "github.com/easybook/EB-BookingService/internal/service/bookings"
	calendarService "github.com/easybook/EB-BookingService/internal/service/calendar"
	paymentsService "github.com/easybook/EB-BookingService/internal/service/payments"
	reviewsService "github.com/easybook/EB-BookingService/internal/service/reviews"
	shiftsService "github.com/easybook/EB-BookingService/internal/service/shifts"
	slotsService "github.com/easybook/EB-BookingService/internal/service/slots"
	cancelBookingUC "github.com/easybook/EB-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/easybook/EB-BookingService/internal/usecase/create_booking"
	modifyBookingUC "github.com/easybook/EB-BookingService/internal/usecase/modify_booking"
	sweepStatusesUC "github.com/easybook/EB-BookingService/internal/usecase/sweep_statuses"
	"github.com/easybook/EB-BookingService/internal/worker"
	"github.com/easybook/EB-BookingService/pkg/dbmetrics"
	"github.com/easybook/EB-BookingService/pkg/logger"
	"github.com/easybook/EB-BookingService/pkg/metrics"
	"github.com/easybook/EB-BookingService/pkg/simpletxmanager"
	"github.com/easybook/EB-BookingService/pkg/txmanager"
	"github.com/easybook/EB-BookingService/pkg/types"
)

// systemClock реальный источник времени для сервисов
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
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

	log.Info("Starting EB-BookingService...")
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

	// Инициализируем клиент сервиса уведомлений
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Notifier client initialized (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		slotRepository        *slotRepo.Repository
		shiftRepository       *shiftRepo.Repository
		blockedDateRepository *blockedDateRepo.Repository
		paymentRepository     *paymentRepo.Repository
		serviceTypeRepository *serviceTypeRepo.Repository
		reviewRepository      *reviewRepo.Repository
		userRepository        *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		shiftRepository = shiftRepo.NewRepository(wrappedDB)
		blockedDateRepository = blockedDateRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		serviceTypeRepository = serviceTypeRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		shiftRepository = shiftRepo.NewRepository(db)
		blockedDateRepository = blockedDateRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		serviceTypeRepository = serviceTypeRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	clock := systemClock{}

	// Инициализируем use cases
	sweepStatusesUseCase := sweepStatusesUC.NewUseCase(bookingRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		paymentRepository,
		serviceTypeRepository,
		userRepository,
		notifier,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		userRepository,
		notifier,
		txMgr,
		log,
	)
	modifyBookingUseCase := modifyBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		paymentRepository,
		serviceTypeRepository,
		txMgr,
		log,
	)

	// Инициализируем сервисы
	calendarSvc := calendarService.NewService(blockedDateRepository, shiftRepository, clock, log)
	slotsSvc := slotsService.NewService(slotRepository, blockedDateRepository, clock, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, shiftRepository, sweepStatusesUseCase, log)
	shiftsSvc := shiftsService.NewService(
		shiftRepository,
		blockedDateRepository,
		userRepository,
		notifier,
		txMgr,
		clock,
		log,
	)
	blockedDatesSvc := blockedDatesService.NewService(blockedDateRepository, log)
	paymentsSvc := paymentsService.NewService(paymentRepository, serviceTypeRepository, log)
	reviewsSvc := reviewsService.NewService(reviewRepository, bookingRepository, log)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotsSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(slotsSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	modifyBooking := modifyBookingHandler.NewHandler(modifyBookingUseCase, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingsSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingsSvc, log)
	toggleBlockedDate := toggleBlockedDateHandler.NewHandler(blockedDatesSvc, log)
	assignShift := assignShiftHandler.NewHandler(shiftsSvc, log)
	deleteShift := deleteShiftHandler.NewHandler(shiftsSvc, log)
	requestShiftChange := requestShiftChangeHandler.NewHandler(shiftsSvc, log)
	getShiftRequests := getShiftRequestsHandler.NewHandler(shiftsSvc, log)
	resolveShiftRequest := resolveShiftRequestHandler.NewHandler(shiftsSvc, log)
	getNextShift := getNextShiftHandler.NewHandler(shiftsSvc, log)
	createReview := createReviewHandler.NewHandler(reviewsSvc, log)
	confirmPayment := confirmPaymentHandler.NewHandler(paymentsSvc, log)
	listServiceTypes := listServiceTypesHandler.NewHandler(paymentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь на месяц (роль уточняется заголовками, по умолчанию клиент)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог услуг с ценами
	api.HandleFunc("/service-types", listServiceTypes.Handle).Methods(http.MethodGet)

	// Callback платежного процессора
	api.HandleFunc("/payments/confirm", confirmPayment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Дневной обзор записей (администратор и сотрудник)
	protected.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Изменение записи
	protected.HandleFunc("/bookings/{bookingId}", modifyBooking.Handle).Methods(http.MethodPatch)

	// Отмена записи
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Отзыв о завершенной записи
	protected.HandleFunc("/bookings/{bookingId}/reviews", createReview.Handle).Methods(http.MethodPost)

	// История записей клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Слоты (для администратора) ---
	// Генерация слотов рабочего дня
	protected.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// Удаление свободного слота
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Заблокированные даты (для администратора) ---
	protected.HandleFunc("/blocked-dates/toggle", toggleBlockedDate.Handle).Methods(http.MethodPost)

	// --- Смены ---
	// Назначение смены сотруднику
	protected.HandleFunc("/shifts", assignShift.Handle).Methods(http.MethodPost)

	// Ближайшая смена текущего сотрудника
	protected.HandleFunc("/shifts/next", getNextShift.Handle).Methods(http.MethodGet)

	// Удаление смены
	protected.HandleFunc("/shifts/{shiftId}", deleteShift.Handle).Methods(http.MethodDelete)

	// Запрос сотрудника на изменение смены
	protected.HandleFunc("/shifts/{shiftId}/change-requests", requestShiftChange.Handle).Methods(http.MethodPost)

	// Непрочитанные запросы на изменение смен
	protected.HandleFunc("/shift-requests", getShiftRequests.Handle).Methods(http.MethodGet)

	// Отметка запроса прочитанным
	protected.HandleFunc("/shift-requests/{requestId}/read", resolveShiftRequest.Handle).Methods(http.MethodPatch)

	// Запускаем фоновое ежедневное задание (если включено)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.Worker.Enabled {
		dailyWorker, err := worker.New(
			sweepStatusesUseCase,
			bookingRepository,
			notifier,
			clock,
			types.TimeString(cfg.Worker.RunAt),
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize worker: %v", err)
		}
		go dailyWorker.Run(workerCtx)
		log.Info("Daily worker enabled, run at %s", cfg.Worker.RunAt)
	}

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

	// Останавливаем фоновое задание
	stopWorker()

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
