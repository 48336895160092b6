package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	router "task-status-viewer/internal/http"
	"task-status-viewer/internal/http/handlers"
)

type ServeCmd struct {
	flags *Flags
	app   *App

	// flags
	addr string
}

func NewServeCmd(flags *Flags, app *App) *ServeCmd {
	return &ServeCmd{flags: flags, app: app}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Serve the status, updates and signup pages as JSON",
		UsageText: "statusview serve [--addr :8080]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address (overrides http_addr from the config)",
				Destination: &cmd.addr,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ServeCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	addr := cfg.HTTPAddr
	if cmd.addr != "" {
		addr = cmd.addr
	}

	logger := log.With().Str("component", "http").Logger()

	handler := router.New(router.Handlers{
		Status:  handlers.NewStatusHandler(cmd.app.Status),
		Updates: handlers.NewUpdateHandler(cmd.app.Updates),
		Signup:  handlers.NewSignupHandler(cmd.app.Signup),
	}, logger)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-stop:
		logger.Info().Msg("shut down signal received")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info().Msg("shut down gracefully")
	return nil
}
