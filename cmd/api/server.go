package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"pocketledger/internal/api/middlewares"
	"pocketledger/internal/api/routers"
	"pocketledger/internal/config"
	"pocketledger/internal/repositories/sqlconnect"
	"pocketledger/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		utils.Logger.Fatal("invalid configuration: ", err)
	}
	utils.InitLogger(cfg.LogLevel, cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlconnect.ConnectDb(ctx, cfg.DatabaseURL)
	if err != nil {
		utils.Logger.Fatal("DB connection failed: ", err)
	}
	defer db.Close()

	store := sqlconnect.NewStore(db)
	tokens := utils.NewTokenManager(cfg.JWTSecret)

	router := routers.MainRouter(store, tokens)
	handler := utils.ApplyMiddlewares(router, middlewares.SecurityHeaders, middlewares.RequestLogger)

	server := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		utils.Logger.WithField("port", cfg.ServerPort).WithField("tls", cfg.TLSEnabled()).Info("Server is running")

		var err error
		if cfg.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		utils.Logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		utils.Logger.Fatal("Error running the server: ", err)
	}
}
