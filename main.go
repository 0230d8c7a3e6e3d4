package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/wuttipat/court-booking-service/config"
	"github.com/wuttipat/court-booking-service/internal/consumer"
	"github.com/wuttipat/court-booking-service/internal/handler"
	"github.com/wuttipat/court-booking-service/internal/middleware"
	"github.com/wuttipat/court-booking-service/internal/notifier"
	"github.com/wuttipat/court-booking-service/internal/repository"
	"github.com/wuttipat/court-booking-service/internal/schedule"
	"github.com/wuttipat/court-booking-service/internal/service"
	"github.com/wuttipat/court-booking-service/pkg/database"
	"github.com/wuttipat/court-booking-service/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.NewPostgres(cfg.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	courtRepo := repository.NewCourtRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	requestRepo := repository.NewJoinRequestRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notify := notifier.Notifier(notifier.NewLogNotifier())
	if cfg.RabbitURL != "" {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("rabbitmq publisher: %v", err)
		}
		defer publisher.Close()
		notify = notifier.NewAMQPNotifier(publisher)

		paymentConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("rabbitmq consumer: %v", err)
		}
		defer paymentConsumer.Close()

		payments := consumer.NewPaymentConsumer(paymentConsumer, bookingRepo)
		if err := payments.Start(ctx); err != nil {
			log.Fatalf("payment consumer: %v", err)
		}
	}

	slotConfig := &schedule.SlotConfig{
		Granularity: time.Duration(cfg.SlotGranularityMinutes) * time.Minute,
	}

	availabilitySvc := service.NewAvailabilityService(courtRepo, bookingRepo, maintenanceRepo, slotConfig)
	bookingSvc := service.NewBookingService(courtRepo, bookingRepo, maintenanceRepo, slotConfig, notify)
	courtSvc := service.NewCourtService(courtRepo, bookingRepo, maintenanceRepo)
	matchSvc := service.NewMatchService(matchRepo, requestRepo, notify)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1", middleware.JWTAuth(cfg.JWTSecret))
	handler.NewCourtHandler(courtSvc, availabilitySvc).RegisterRoutes(api)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api)
	handler.NewMatchHandler(matchSvc).RegisterRoutes(api)

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
