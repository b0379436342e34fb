package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fathima-sithara/auth-service/internal/bootstrap"
	"github.com/fathima-sithara/auth-service/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	app, cleanup, err := bootstrap.Init(configPath)
	if err != nil {
		log.Fatalf("failed to bootstrap: %v", err)
	}

	fiberApp := server.New(app.Config, app.Handler, app.RequireAuth, app.LoginLimiter, app.Logger)

	go func() {
		listenAddr := fmt.Sprintf(":%d", app.Config.App.Port)
		app.Sugar.Infof("Server listening on %s", listenAddr)
		if err := fiberApp.Listen(listenAddr); err != nil {
			app.Sugar.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	app.Sugar.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), app.Config.ShutdownTimeout)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(ctx); err != nil {
		app.Sugar.Errorf("Fiber app shutdown error: %v", err)
	}
	cleanup(ctx)
	app.Sugar.Info("Graceful shutdown complete")
}
