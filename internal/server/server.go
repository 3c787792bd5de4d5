package server

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/limaJavier/councils/internal/config"
	"github.com/limaJavier/councils/internal/input"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// Server exposes the arrangement pipeline over HTTP: a CSV (or JSON) roster is uploaded and the formatted
// report is returned
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	logger   *zap.Logger
	validate *validator.Validate
}

func New(cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	server := &Server{
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(),
	}
	// Separators are validated by the same rules the CSV reader applies
	_ = server.validate.RegisterValidation("separator", func(field validator.FieldLevel) bool {
		_, err := input.ParseSeparator(field.Field().String())
		return err == nil
	})

	server.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit,
		ErrorHandler:          errorHandler,
	})
	server.app.Use(server.requestID)

	server.app.Get("/healthz", func(c *fiber.Ctx) error {
		return success(c, fiber.StatusOK, "ok", nil)
	})
	api := server.app.Group("/api")
	api.Post("/arrangements", server.arrange)

	return server
}

func (server *Server) App() *fiber.App {
	return server.app
}

func (server *Server) Listen(addr string) error {
	server.logger.Info("listening", zap.String("addr", addr))
	return server.app.Listen(addr)
}

func (server *Server) Shutdown() error {
	return server.app.Shutdown()
}

// Tags every request with an id (the client's one when given) and logs its outcome
func (server *Server) requestID(c *fiber.Ctx) error {
	id := c.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(RequestIDHeader, id)
	c.Locals("requestID", id)

	start := time.Now()
	err := c.Next()
	server.logger.Info("request",
		zap.String("id", id),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
	return err
}
