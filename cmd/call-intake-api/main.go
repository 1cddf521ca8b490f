package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lifeline-restoration/call-intake-api/internal/app"
	"github.com/lifeline-restoration/call-intake-api/internal/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	mainCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	envFile := flag.String("env-file", ".env", "path to env file")
	flag.Parse()

	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		log.Fatalf("could not load settings: %s", err)
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatalf("could not parse log level: %s", err)
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("app", settings.ServiceName).
		Logger()

	fiberApp, err := app.CreateServer(mainCtx, &settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create server")
	}

	runnerGroup, runnerCtx := errgroup.WithContext(mainCtx)
	runnerGroup.Go(func() error {
		logger.Info().Int("port", settings.Port).Msg("Starting web server")
		return fiberApp.Listen(":" + strconv.Itoa(settings.Port))
	})
	runnerGroup.Go(func() error {
		<-runnerCtx.Done()
		logger.Info().Msg("Received signal, shutting down...")
		return fiberApp.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := runnerGroup.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed.")
	}
	logger.Info().Msg("Server stopped.")
}
