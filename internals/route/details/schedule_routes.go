// file: internals/route/details/schedule_routes.go
package details

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	attController "careportal_backend/internals/features/scheduling/attendance/controller"
	dashController "careportal_backend/internals/features/scheduling/dashboard/controller"
	rosterSvc "careportal_backend/internals/features/scheduling/dashboard/service"
	schedController "careportal_backend/internals/features/scheduling/schedules/controller"
)

// ScheduleRoutes mounts schedules, attendance and the roster dashboard.
func ScheduleRoutes(api fiber.Router, db *gorm.DB, store *rosterSvc.RosterStore) {
	schedCtl := schedController.NewScheduleController(db)
	attCtl := attController.NewAttendanceController(db, store)
	dashCtl := dashController.NewDashboardController(db, store)

	api.Get("/schedule/schedules", schedCtl.List)
	api.Post("/schedule/schedule/:participant_id", schedCtl.UpsertForParticipant)

	api.Get("/schedule/attendance", attCtl.List)
	api.Post("/schedule/attendance", attCtl.Upsert)
	api.Get("/schedule/attendance/export", attCtl.Export)

	api.Post("/schedule/dashboard/walkin", dashCtl.AddWalkIn)
	api.Get("/schedule/dashboard/:session", dashCtl.Roster)
	api.Get("/schedule/dashboard/:session/unscheduled", dashCtl.Unscheduled)
}
