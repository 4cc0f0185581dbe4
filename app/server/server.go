package server

import (
	"context"
	"log/slog"
	"time"

	"legalmind/app/config"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
)

// Server exposes the process health endpoint.
type Server struct {
	cfg *config.Config
	app *fiber.App
}

func New(di *do.Injector) (*Server, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return &Server{
		cfg: do.MustInvoke[*config.Config](di),
		app: app,
	}, nil
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.app.Listen(s.cfg.Server.Address)
	}()

	slog.Info("Health endpoint listening", "address", s.cfg.Server.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.app.ShutdownWithTimeout(5 * time.Second)
	}
}
