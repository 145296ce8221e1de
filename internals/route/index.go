// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careportal_backend/internals/configs"
	rosterSvc "careportal_backend/internals/features/scheduling/dashboard/service"
	authController "careportal_backend/internals/features/users/auth/controller"
	"careportal_backend/internals/middlewares"
	authMiddleware "careportal_backend/internals/middlewares/auth"
	routeDetails "careportal_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, store *rosterSvc.RosterStore) {
	startTime = time.Now()

	app.Use(middlewares.DBMiddleware(db))

	BaseRoutes(app)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE API =====================
	log.Println("[INFO] Setting up PRIVATE api group...")
	api := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			BlacklistChecker:    authController.IsTokenBlacklisted(db),
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Mounting Participant routes...")
	routeDetails.ParticipantRoutes(api, db)

	log.Println("[INFO] Mounting Schedule routes...")
	routeDetails.ScheduleRoutes(api, db, store)

	log.Println("[INFO] Mounting Activity routes...")
	routeDetails.ActivityRoutes(api, db)
}
