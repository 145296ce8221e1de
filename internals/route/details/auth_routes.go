// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careportal_backend/internals/configs"
	"careportal_backend/internals/constants"
	authController "careportal_backend/internals/features/users/auth/controller"
	"careportal_backend/internals/middlewares"
	authMiddleware "careportal_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public login endpoint plus the token-guarded
// session endpoints.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	pub := app.Group("/api/auth")
	pub.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	guard := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    authController.IsTokenBlacklisted(db),
		AllowCookieFallback: true,
	})

	priv := app.Group("/api/auth", guard)
	priv.Post("/logout", ctl.Logout)
	priv.Get("/me", ctl.Me)
	priv.Post("/register",
		middlewares.InviteRateLimiter(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("staff registration"), constants.AdminOnly...),
		ctl.Register,
	)
}
