// file: internals/route/details/activity_routes.go
package details

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	actController "careportal_backend/internals/features/activities/controller"
)

// ActivityRoutes mounts activity sessions and their per-participant logs.
func ActivityRoutes(api fiber.Router, db *gorm.DB) {
	ctl := actController.NewActivityController(db)

	api.Get("/activities", ctl.List)
	api.Post("/activities", ctl.Create)
	api.Get("/activities/:id", ctl.GetByID)
	api.Delete("/activities/:id", ctl.Delete)

	api.Get("/activities/:id/logs", ctl.ListLogs)
	api.Post("/activities/:id/logs", ctl.UpsertLog)
	api.Delete("/activities/:id/logs/:log_id", ctl.DeleteLog)
}
