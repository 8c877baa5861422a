package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"luminatext/internal/api/server"
	"luminatext/internal/api/v1/services"
	"luminatext/internal/app/api/openai"
	"luminatext/internal/app/api/openai/whisper"
	"luminatext/internal/app/repository/mongodb"
	"luminatext/internal/config"
)

var host string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the transcription API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	Cmd.Flags().StringVar(&host, "host", "0.0.0.0", "interface to listen on")
}

func run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	history, err := mongodb.NewHistoryDAO(connectCtx, cfg.MongoURI)
	if err != nil {
		return fmt.Errorf("history store: %w", err)
	}
	logger.Info("Connected to MongoDB")

	transcriber := whisper.NewRemoteTranscriber(openai.NewClient(cfg.OpenAIKey))
	service := services.NewTranscriptionService(transcriber, history, logger, cfg.MaxFileSize)

	srv := server.NewServer(server.Config{
		Host:         host,
		Port:         cfg.Port,
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  2 * time.Minute,
		Environment:  cfg.Environment,
		Provider:     transcriber.Provider(),
	}, service, logger)

	if err := srv.Start(); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := history.Close(shutdownCtx); err != nil {
		logger.Warn("Failed to close store connection", "error", err.Error())
	}
	logger.Info("Database connection closed")

	return nil
}
