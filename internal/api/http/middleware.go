package http

import (
	"context"
	"errors"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/spec-kit/breakbuddy/internal/config"
	"github.com/spec-kit/breakbuddy/internal/observability"
	apperrors "github.com/spec-kit/breakbuddy/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as CORS, error
// handling and request logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, cfg config.Config) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization,X-Requested-With",
		AllowCredentials: true,
	}))
	if timeout := cfg.App.RequestTimeout(); timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware recovers panics and maps every error to the flat
// {"error": message} body the original API clients expect. Nothing is
// allowed to crash the process.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				status, body := renderError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), errorCode(err))
				}
				if status >= 500 {
					logger.Error("request failed", zap.Error(err))
				}
				c.Status(status)
				_ = c.JSON(body)
				err = nil
			}
		}()
		return c.Next()
	}
}

func renderError(err error) (int, fiber.Map) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiber.Map{"error": fiberErr.Message}
	}

	domainErr := apperrors.ToDomainError(err)
	body := fiber.Map{"error": domainErr.Message}
	if len(domainErr.Details) > 0 {
		body["details"] = domainErr.Details
	}
	return domainErr.HTTPStatus, body
}

func errorCode(err error) string {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return "HTTP_ERROR"
	}
	return apperrors.ToDomainError(err).Code
}
