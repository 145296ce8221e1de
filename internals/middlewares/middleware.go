package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "careportal_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain in order: recovery first so
// it wraps everything, then CORS, logging, and the global limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
