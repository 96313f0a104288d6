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

	cancelReservationHandler "github.com/terminalstudios/booking-service/internal/api/handlers/cancel_reservation"
	confirmBookingHandler "github.com/terminalstudios/booking-service/internal/api/handlers/confirm_booking"
	createPaymentIntentHandler "github.com/terminalstudios/booking-service/internal/api/handlers/create_payment_intent"
	getAvailableSlotsHandler "github.com/terminalstudios/booking-service/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/terminalstudios/booking-service/internal/api/handlers/get_reservation"
	getRoomReservationsHandler "github.com/terminalstudios/booking-service/internal/api/handlers/get_room_reservations"
	listReservationsHandler "github.com/terminalstudios/booking-service/internal/api/handlers/list_reservations"
	listRoomsHandler "github.com/terminalstudios/booking-service/internal/api/handlers/list_rooms"
	"github.com/terminalstudios/booking-service/internal/api/middleware"
	"github.com/terminalstudios/booking-service/internal/availability"
	"github.com/terminalstudios/booking-service/internal/config"
	"github.com/terminalstudios/booking-service/internal/domain"
	reservationRepo "github.com/terminalstudios/booking-service/internal/infra/storage/reservation"
	"github.com/terminalstudios/booking-service/internal/integrations/formspree"
	"github.com/terminalstudios/booking-service/internal/integrations/gohighlevel"
	"github.com/terminalstudios/booking-service/internal/integrations/stripepay"
	"github.com/terminalstudios/booking-service/internal/pricing"
	catalogService "github.com/terminalstudios/booking-service/internal/service/catalog"
	reservationsService "github.com/terminalstudios/booking-service/internal/service/reservations"
	confirmBookingUC "github.com/terminalstudios/booking-service/internal/usecase/confirm_booking"
	createPaymentIntentUC "github.com/terminalstudios/booking-service/internal/usecase/create_payment_intent"
	getAvailableSlotsUC "github.com/terminalstudios/booking-service/internal/usecase/get_available_slots"
	"github.com/terminalstudios/booking-service/pkg/dbmetrics"
	"github.com/terminalstudios/booking-service/pkg/logger"
	"github.com/terminalstudios/booking-service/pkg/metrics"
	"github.com/terminalstudios/booking-service/pkg/simpletxmanager"
	"github.com/terminalstudios/booking-service/pkg/txmanager"
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
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Static room catalog, rates and the availability engine
	registry := domain.NewRegistry(cfg.Rooms())
	rates := pricing.NewTable(cfg.Rates())
	engine := availability.NewEngine(registry, availability.Config{
		MinBookingHours: cfg.Booking.MinBookingHours,
		Hours: availability.Hours{
			Restricted: cfg.Booking.RestrictedHours,
			OpenHour:   cfg.Booking.OpenHour,
			CloseHour:  cfg.Booking.CloseHour,
		},
	})
	log.Info("Room registry initialized with %d rooms, minimum session %dh",
		len(cfg.Booking.Rooms), cfg.Booking.MinBookingHours)

	// Integration clients. Disabled integrations get blank credentials and
	// report ErrNotConfigured, which callers treat as a skip.
	stripeClient := stripepay.NewClient(cfg.Stripe.SecretKey, cfg.Stripe.Currency, log)

	ghlAPIKey, ghlLocation := "", ""
	if cfg.GoHighLevel.Enabled {
		ghlAPIKey, ghlLocation = cfg.GoHighLevel.APIKey, cfg.GoHighLevel.LocationID
	}
	crmClient := gohighlevel.NewClient(
		cfg.GoHighLevel.BaseURL,
		ghlAPIKey,
		ghlLocation,
		time.Duration(cfg.GoHighLevel.Timeout)*time.Second,
		log,
	)

	formURL := ""
	if cfg.Formspree.Enabled {
		formURL = cfg.Formspree.FormURL
	}
	notifier := formspree.NewClient(formURL, time.Duration(cfg.Formspree.Timeout)*time.Second, log)
	log.Info("Integration clients initialized (stripe currency=%s, GHL enabled=%t, formspree enabled=%t)",
		cfg.Stripe.Currency, cfg.GoHighLevel.Enabled, cfg.Formspree.Enabled)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		repository *reservationRepo.Repository
		txMgr      TxManager
	)

	if cfg.Metrics.Enabled {
		pollInterval := time.Duration(cfg.Metrics.PoolStatsInterval) * time.Second
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, pollInterval, stopMetricsCh)
		log.Info("Database metrics collection started")

		repository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	reservationsSvc := reservationsService.NewService(repository, registry, log)
	catalogSvc := catalogService.NewService(registry, rates)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(repository, engine, log)
	createPaymentIntentUseCase := createPaymentIntentUC.NewUseCase(
		repository,
		engine,
		rates,
		registry,
		stripeClient,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		repository,
		engine,
		stripeClient,
		txMgr,
		crmClient,
		notifier,
		log,
	)

	listRooms := listRoomsHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getRoomReservations := getRoomReservationsHandler.NewHandler(reservationsSvc, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(createPaymentIntentUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: catalog, availability grid, calendar feed, checkout
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/reservations", getRoomReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/payment-intents", createPaymentIntent.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// Admin routes behind the static token header
	admin := api.PathPrefix("/reservations").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Server.AdminToken, log))
	admin.HandleFunc("", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

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
