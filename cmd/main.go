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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adjustCreditsHandler "github.com/studiofit/booking-service/internal/api/handlers/adjust_credits"
	cancelBookingHandler "github.com/studiofit/booking-service/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/studiofit/booking-service/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/studiofit/booking-service/internal/api/handlers/create_booking"
	createPaymentRequestHandler "github.com/studiofit/booking-service/internal/api/handlers/create_payment_request"
	createPricingPackageHandler "github.com/studiofit/booking-service/internal/api/handlers/create_pricing_package"
	createSlotHandler "github.com/studiofit/booking-service/internal/api/handlers/create_slot"
	getAvailabilityHandler "github.com/studiofit/booking-service/internal/api/handlers/get_availability"
	getCancellationPolicyHandler "github.com/studiofit/booking-service/internal/api/handlers/get_cancellation_policy"
	getSlotHandler "github.com/studiofit/booking-service/internal/api/handlers/get_slot"
	getUserBookingsHandler "github.com/studiofit/booking-service/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/studiofit/booking-service/internal/api/handlers/list_bookings"
	listPaymentRequestsHandler "github.com/studiofit/booking-service/internal/api/handlers/list_payment_requests"
	listPricingPackagesHandler "github.com/studiofit/booking-service/internal/api/handlers/list_pricing_packages"
	listSlotsHandler "github.com/studiofit/booking-service/internal/api/handlers/list_slots"
	processPaymentRequestHandler "github.com/studiofit/booking-service/internal/api/handlers/process_payment_request"
	restoreBookingHandler "github.com/studiofit/booking-service/internal/api/handlers/restore_booking"
	updateCancellationPolicyHandler "github.com/studiofit/booking-service/internal/api/handlers/update_cancellation_policy"
	updatePricingPackageHandler "github.com/studiofit/booking-service/internal/api/handlers/update_pricing_package"
	updateSlotHandler "github.com/studiofit/booking-service/internal/api/handlers/update_slot"
	"github.com/studiofit/booking-service/internal/api/middleware"
	"github.com/studiofit/booking-service/internal/config"
	"github.com/studiofit/booking-service/internal/infra/cache/availabilitycache"
	bookingRepo "github.com/studiofit/booking-service/internal/infra/storage/booking"
	paymentRepo "github.com/studiofit/booking-service/internal/infra/storage/paymentrequest"
	pricingRepo "github.com/studiofit/booking-service/internal/infra/storage/pricing"
	profileRepo "github.com/studiofit/booking-service/internal/infra/storage/profile"
	settingsRepo "github.com/studiofit/booking-service/internal/infra/storage/settings"
	slotRepo "github.com/studiofit/booking-service/internal/infra/storage/timeslot"
	availabilityService "github.com/studiofit/booking-service/internal/service/availability"
	bookingsService "github.com/studiofit/booking-service/internal/service/bookings"
	creditsService "github.com/studiofit/booking-service/internal/service/credits"
	paymentsService "github.com/studiofit/booking-service/internal/service/payments"
	policyService "github.com/studiofit/booking-service/internal/service/policy"
	settingsService "github.com/studiofit/booking-service/internal/service/settings"
	slotsService "github.com/studiofit/booking-service/internal/service/slots"
	cancelBookingUC "github.com/studiofit/booking-service/internal/usecase/cancel_booking"
	createBookingUC "github.com/studiofit/booking-service/internal/usecase/create_booking"
	restoreBookingUC "github.com/studiofit/booking-service/internal/usecase/restore_booking"
	"github.com/studiofit/booking-service/pkg/dbmetrics"
	"github.com/studiofit/booking-service/pkg/logger"
	"github.com/studiofit/booking-service/pkg/metrics"
	"github.com/studiofit/booking-service/pkg/simpletxmanager"
	"github.com/studiofit/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")

	loc, err := time.LoadLocation(cfg.Studio.Timezone)
	if err != nil {
		log.Fatal("Failed to load studio timezone %q: %v", cfg.Studio.Timezone, err)
	}
	log.Info("Studio timezone: %s", cfg.Studio.Timezone)

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Repositories and the transaction manager, with metrics when enabled.
	var (
		slotRepository     *slotRepo.Repository
		bookingRepository  *bookingRepo.Repository
		profileRepository  *profileRepo.Repository
		settingsRepository *settingsRepo.Repository
		paymentRepository  *paymentRepo.Repository
		pricingRepository  *pricingRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		pricingRepository = pricingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		pricingRepository = pricingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Advisory availability cache. Everything works without it; the
	// interfaces stay nil when Redis is off.
	var availCache *availabilitycache.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis unavailable, availability cache disabled: %v", err)
		} else {
			availCache = availabilitycache.New(
				redisClient,
				time.Duration(cfg.Redis.TTLSeconds)*time.Second,
				log,
			)
			log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
		}
		defer redisClient.Close()
	}

	var (
		availCacheForResolver availabilityService.AvailabilityCache
		availCacheForBookings bookingsService.AvailabilityCache
		availCacheForCreate   createBookingUC.AvailabilityCache
		availCacheForCancel   cancelBookingUC.AvailabilityCache
		availCacheForRestore  restoreBookingUC.AvailabilityCache
	)
	if availCache != nil {
		availCacheForResolver = availCache
		availCacheForBookings = availCache
		availCacheForCreate = availCache
		availCacheForCancel = availCache
		availCacheForRestore = availCache
	}

	// Services.
	slotsSvc := slotsService.NewService(slotRepository, log)
	availabilitySvc := availabilityService.NewService(slotRepository, bookingRepository, availCacheForResolver, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, availCacheForBookings, log)
	creditsSvc := creditsService.NewService(profileRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	paymentsSvc := paymentsService.NewService(paymentRepository, profileRepository, pricingRepository, txMgr, log)
	policyEngine := policyService.NewEngine(loc)

	// Use cases.
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		profileRepository,
		availCacheForCreate,
		txMgr,
		loc,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		profileRepository,
		settingsSvc,
		policyEngine,
		availCacheForCancel,
		txMgr,
		log,
	)
	restoreBookingUseCase := restoreBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		profileRepository,
		availCacheForRestore,
		txMgr,
		log,
	)

	// Handlers.
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	completeBooking := completeBookingHandler.NewHandler(bookingsSvc, log)
	restoreBooking := restoreBookingHandler.NewHandler(restoreBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	getSlot := getSlotHandler.NewHandler(slotsSvc, log)
	createSlot := createSlotHandler.NewHandler(slotsSvc, log)
	updateSlot := updateSlotHandler.NewHandler(slotsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	getCancellationPolicy := getCancellationPolicyHandler.NewHandler(settingsSvc, log)
	updateCancellationPolicy := updateCancellationPolicyHandler.NewHandler(settingsSvc, log)
	adjustCredits := adjustCreditsHandler.NewHandler(creditsSvc, log)
	createPaymentRequest := createPaymentRequestHandler.NewHandler(paymentsSvc, log)
	listPaymentRequests := listPaymentRequestsHandler.NewHandler(paymentsSvc, log)
	processPaymentRequest := processPaymentRequestHandler.NewHandler(paymentsSvc, log)
	listPricingPackages := listPricingPackagesHandler.NewHandler(paymentsSvc, log)
	createPricingPackage := createPricingPackageHandler.NewHandler(paymentsSvc, log)
	updatePricingPackage := updatePricingPackageHandler.NewHandler(paymentsSvc, log)

	// Router.
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings/cancellation-policy", getCancellationPolicy.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing-packages", listPricingPackages.Handle).Methods(http.MethodGet)

	// Protected routes, member identity required.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/payment-requests", createPaymentRequest.Handle).Methods(http.MethodPost)

	// Staff routes.
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/bookings/{bookingId}/restore", restoreBooking.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/slots/{slotId}", updateSlot.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/settings/cancellation-policy", updateCancellationPolicy.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/users/{userId}/credits", adjustCredits.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/payment-requests", listPaymentRequests.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/payment-requests/{requestId}", processPaymentRequest.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/pricing-packages", createPricingPackage.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/pricing-packages/{packageId}", updatePricingPackage.Handle).Methods(http.MethodPatch)

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
