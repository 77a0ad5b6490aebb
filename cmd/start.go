package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"imagine-api/core/config"
	"imagine-api/core/database"
	"imagine-api/core/loader"
	"imagine-api/core/logger"
	"imagine-api/core/server"
	"imagine-api/core/startup"
	"imagine-api/core/storage"

	"imagine-api/feature/image"
	"imagine-api/feature/user"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Imagine API
// @version 1.0
// @description Server bootstrap for the Imagine frontend.
// @host localhost:4000
// @BasePath /

const shutdownTimeout = 10 * time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the API server",
	Long:  `Connects to the database, binds the port and serves the API until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, ".")
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

// serve runs the server until ctx is cancelled or the listener fails.
func serve(ctx context.Context, dir string) error {
	// 1. Configuration
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	settings, err := cfg.Server.Settings()
	if err != nil {
		return fmt.Errorf("invalid server configuration: %w", err)
	}

	// 2. Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Storage
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	// 4. Database before listener
	var db *gorm.DB
	seq := startup.New(startup.Config{Port: settings.Port, Logger: logg},
		func(ctx context.Context) error {
			conn, err := database.Connect(ctx, cfg.Database)
			if err != nil {
				return err
			}
			db = conn
			return nil
		}, nil)

	out := seq.Start(ctx)
	if out.State != startup.Listening {
		return &exitError{code: out.ExitCode(), err: out.Err}
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logg.Warn("Failed to close database", zap.Error(err))
		}
	}()

	// 5. Features
	mgr := loader.NewManager(logg)
	mgr.Register(user.NewFeature(db, logg))
	mgr.Register(image.NewFeature(store, cfg.Storage.Bucket, cfg.Storage.Region, logg))

	app, err := server.New(settings, logg, mgr)
	if err != nil {
		_ = out.Listener.Close()
		logg.Error("Failed to assemble server", zap.Error(err))
		return &exitError{code: 1, err: err}
	}

	// 6. Serve on the listener bound by the sequencer
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(out.Listener)
	}()

	// 7. Graceful shutdown
	select {
	case err := <-errCh:
		if err != nil {
			logg.Error("Server stopped", zap.Error(err))
			return &exitError{code: 1, err: err}
		}
		return nil
	case <-ctx.Done():
	}

	logg.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logg.Warn("Shutdown incomplete", zap.Error(err))
	}
	return nil
}
