package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotel-reservations/config"
	"hotel-reservations/controllers"
	"hotel-reservations/routes"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil && cfg == nil {
		logrus.Fatalf("config: %v", err)
	}

	log := utils.NewLogger(cfg.LoggerOptions())
	if err != nil {
		log.WithError(err).Warn("continuing with environment variables only")
	}
	gin.SetMode(cfg.GinMode)

	db, err := config.ConnectDatabase(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("database connect failed")
	}
	log.Info("database connection established and migrations applied")

	roomService := services.NewRoomService(db)
	reservationService := services.NewReservationService(db)

	roomController := controllers.NewRoomController(roomService, log)
	reservationController := controllers.NewReservationController(reservationService, log)

	router := routes.SetupRouter(roomController, reservationController, cfg.CORSOrigins, log)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped gracefully")
}
