package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"careportal_backend/internals/configs"
)

// CorsMiddleware builds the CORS middleware. The SPA sends cookies
// (credentials: include), so AllowCredentials must stay on and the origin list
// must be explicit.
func CorsMiddleware() fiber.Handler {
	origins := configs.FrontendOrigins
	if strings.TrimSpace(origins) == "" {
		origins = strings.Join([]string{
			"http://localhost:3000",
			"http://localhost:5173",
			"https://portal.howcares.org",
		}, ", ")
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
