package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jeomhps/hotel-reservations/internal/apidocs"
	"github.com/Jeomhps/hotel-reservations/internal/config"
	"github.com/Jeomhps/hotel-reservations/internal/handlers"
	"github.com/Jeomhps/hotel-reservations/internal/logger"
	"github.com/Jeomhps/hotel-reservations/internal/store"
)

const serviceName = "hotel-reservations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	l, err := logger.New(logger.Config{
		ServiceName:   serviceName,
		Level:         cfg.LogLevel,
		IsDevelopment: cfg.LogDevelopment,
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	docs, err := apidocs.Load(ctx)
	if err != nil {
		l.Fatal("api docs", zap.Error(err))
	}

	// The store lives exactly as long as the process; nothing is persisted.
	s := store.New()

	gin.SetMode(cfg.GinMode)
	r := handlers.NewRouter(handlers.RouterConfig{
		MaxBodyBytes:       cfg.MaxBodyBytes,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		APIDocs:            docs,
	}, l, s)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			l.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
	}

	l.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("shutdown", zap.Error(err))
		return
	}
	l.Info("server stopped", zap.Int("reservations_dropped", s.Len()))
}
