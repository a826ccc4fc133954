package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/exercise-tracker/internal/api"
	"github.com/baharkarakas/exercise-tracker/internal/config"
	"github.com/baharkarakas/exercise-tracker/internal/logger"
	"github.com/baharkarakas/exercise-tracker/internal/repository/memory"
	"github.com/baharkarakas/exercise-tracker/internal/seed"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

// serveOptions override the environment config when set on the command line.
type serveOptions struct {
	port string
	seed string
}

func (o *serveOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.port, "port", "p", "", "listen port (overrides PORT)")
	cmd.Flags().StringVar(&o.seed, "seed", "", "YAML file to preload users and exercises from (overrides SEED_FILE)")
}

func (o *serveOptions) apply(cfg *config.Config) {
	if o.port != "" {
		cfg.HTTPPort = o.port
	}
	if o.seed != "" {
		cfg.SeedFile = o.seed
	}
}

func runServe(parent context.Context, opts *serveOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opts.apply(&cfg)

	log := logger.New(os.Stdout, cfg.Env)
	slog.SetDefault(log)

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos := memory.NewRepositories()
	userSvc := services.NewUserService(repos.Users)
	exerciseSvc := services.NewExerciseService(repos.Users, repos.Exercises)

	if cfg.SeedFile != "" {
		f, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			log.Error("seed", "file", cfg.SeedFile, "err", err)
			return err
		}
		res, err := seed.Apply(f, userSvc, exerciseSvc)
		if err != nil {
			log.Error("seed", "file", cfg.SeedFile, "err", err)
			return err
		}
		log.Info("seeded", "users", res.Users, "exercises", res.Exercises)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.NewRouter(cfg, userSvc, exerciseSvc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			log.Error("server", "err", err)
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
