package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/nkaewam/storefront/internal/config"
	"github.com/nkaewam/storefront/internal/domain"
	"github.com/nkaewam/storefront/internal/models"
)

const internalErrorMessage = "Internal server error"

// ProvideFiberApp creates a new Fiber application
func ProvideFiberApp(cfg *config.Config, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Storefront API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger.Named("http")),
	})

	app.Use(recover.New())
	app.Use(requestLogger(logger.Named("http")))

	return app
}

// errorHandler renders every error returned by a handler as a failed envelope
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := failureFor(err)
		if status >= fiber.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}
		return c.Status(status).JSON(body)
	}
}

func failureFor(err error) (int, models.Response) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		switch domainErr.Kind {
		case domain.KindValidation:
			return fiber.StatusBadRequest, models.Failure(domainErr.Message, models.CodeBadRequest)
		case domain.KindNotFound:
			return fiber.StatusNotFound, models.Failure(domainErr.Message, models.CodeNotFound)
		case domain.KindConflict:
			return fiber.StatusConflict, models.Failure(domainErr.Message, models.CodeConflict)
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		return fiberErr.Code, models.Failure(fiberErr.Message, codeFor(fiberErr.Code))
	}

	return fiber.StatusInternalServerError, models.Failure(internalErrorMessage, models.CodeInternalError)
}

func codeFor(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return models.CodeBadRequest
	case fiber.StatusNotFound:
		return models.CodeNotFound
	case fiber.StatusConflict:
		return models.CodeConflict
	}
	return strings.ToUpper(strings.ReplaceAll(utils.StatusMessage(status), " ", "_"))
}

// requestLogger logs one line per request once the response status is known
func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		logger.Info("Request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)))
		return nil
	}
}
