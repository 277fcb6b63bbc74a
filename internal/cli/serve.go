package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"doccatalog/docs"
	handlers "doccatalog/internal/http/handler"
	"doccatalog/internal/http/middleware"
	"doccatalog/internal/otel"
)

const shutdownTimeout = 10 * time.Second

func (a *app) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
	cmd.Flags().StringVarP(&a.cfg.Port, "port", "p", a.cfg.Port, "Port to listen on")
	return cmd
}

// newServer builds the fiber application with the global middleware chain and routes.
func (a *app) newServer() (*fiber.App, error) {
	server := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(a.prom)
	if err != nil {
		return nil, err
	}

	server.Use(otelfiber.Middleware())
	// RequestID adds/propagates X-Request-ID and stores it in locals
	server.Use(middleware.RequestID())
	server.Use(middleware.Logger(a.log))
	server.Use(promMiddleware.Handler())

	// Host is fixed at startup; handlers only read the registered swagger doc.
	docs.SwaggerInfo.Host = a.cfg.AppHost
	handlers.RegisterRoutes(server, a.catalog, a.prom)
	return server, nil
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, a.cfg.ServiceName, a.log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			a.log.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	server, err := a.newServer()
	if err != nil {
		return err
	}

	addr := ":" + a.cfg.Port
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server_started", zap.String("addr", addr), zap.String("app_host", a.cfg.AppHost))
		errCh <- server.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("server_stopping")
	if err := server.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
