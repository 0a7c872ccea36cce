package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docbro/internal/api"
	"github.com/dgallion1/docbro/internal/config"
)

var (
	serveHost  string
	servePort  string
	serveBuild string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated documentation over HTTP",
	Long: `Serve OUTPUT_DIR over HTTP for local preview.

The server provides:
  - /health   - Basic health check
  - /api/toc  - The generated page tree as JSON
  - /*        - The generated site

Examples:
  docbro serve                    # Serve on PORT (default 8090)
  docbro serve --build ./myproj   # Build first, then serve
  docbro serve --port 3000`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		cfg, err = withPort(cfg, servePort)
		if err != nil {
			log.Error("invalid configuration", "error", err)
			return err
		}

		if serveBuild != "" {
			if _, err := build(ctx, cfg, log, serveBuild); err != nil {
				log.Error("build failed", "error", err)
				return err
			}
		}

		httpServer := &http.Server{
			Addr:         net.JoinHostPort(serveHost, cfg.Port),
			Handler:      api.NewServer(log, cfg),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		ln, err := net.Listen("tcp", httpServer.Addr)
		if err != nil {
			log.Error("server error", "error", err)
			return err
		}

		log.Info("serving documentation", "addr", httpServer.Addr, "dir", cfg.OutputDir)
		if err := serveUntilDone(ctx, log, httpServer, ln); err != nil {
			log.Error("server error", "error", err)
			return err
		}
		return nil
	},
}

// withPort overrides cfg.Port when port is set and validates the result.
func withPort(cfg config.Config, port string) (config.Config, error) {
	if port == "" {
		return cfg, nil
	}
	cfg.Port = port
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// serveUntilDone serves on ln until ctx is cancelled or the server fails,
// and returns only after shutdown has finished.
func serveUntilDone(ctx context.Context, log *slog.Logger, srv *http.Server, ln net.Listener) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	err := srv.Serve(ln)
	stop()
	<-shutdownDone
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default: PORT)")
	serveCmd.Flags().StringVar(&serveBuild, "build", "", "Build this project path before serving")
}
