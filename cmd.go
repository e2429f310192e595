package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Jeomhps/resource-api/internal/config"
	"github.com/Jeomhps/resource-api/internal/logging"
	"github.com/Jeomhps/resource-api/internal/middleware"
	"github.com/Jeomhps/resource-api/internal/register"
	"github.com/Jeomhps/resource-api/internal/server"
	"github.com/Jeomhps/resource-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "resource-api",
		Short:         "In-memory CRUD service for resources",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := config.New()
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return run(ctx, cfg)
		},
	}
	config.AddFlags(cmd.Flags())
	cmd.AddCommand(newRegisterCommand())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	s, err := store.Open(cfg.Store.Driver)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer func() { _ = s.Close() }()

	if cfg.Store.SeedFile != "" {
		entries, err := store.LoadSeed(cfg.Store.SeedFile)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		n, err := store.Seed(ctx, s, entries)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Info("seeded resources", zap.Int("count", n), zap.String("file", cfg.Store.SeedFile))
	}

	gin.SetMode(gin.ReleaseMode)
	h := server.NewRouter(s, log, middleware.NewMetrics())

	srv, err := server.Listen(cfg.Addr(), h, cfg.Server.ShutdownTimeout, log)
	if err != nil {
		log.Error("bind failed", zap.Error(err))
		return err
	}
	log.Info("resource-api ready",
		zap.String("version", version),
		zap.String("store", cfg.Store.Driver),
	)
	return srv.Serve(ctx)
}

func newRegisterCommand() *cobra.Command {
	var url, file string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "POST every resource of a YAML file to a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := store.LoadSeed(file)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No resources to register.")
				return nil
			}
			c := register.NewClient(url, cmd.OutOrStdout(), cmd.ErrOrStderr())
			_, err = c.Run(cmd.Context(), entries)
			return err
		},
	}
	cmd.Flags().StringVar(&url, "url", "http://localhost:3020", "base URL of the resource-api server")
	cmd.Flags().StringVarP(&file, "file", "f", "resources.yml", "YAML file of resources")
	return cmd
}
