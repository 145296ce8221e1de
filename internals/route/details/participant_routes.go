// file: internals/route/details/participant_routes.go
package details

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	actController "careportal_backend/internals/features/activities/controller"
	partController "careportal_backend/internals/features/participants/participant/controller"
	svcController "careportal_backend/internals/features/participants/services/controller"
)

// ParticipantRoutes mounts the participant aggregate, care-partner links,
// case-service entries and the per-participant activity history under the
// authenticated api group.
func ParticipantRoutes(api fiber.Router, db *gorm.DB) {
	partCtl := partController.NewParticipantController(db)
	svcCtl := svcController.NewServiceController(db)
	actCtl := actController.NewActivityController(db)

	// services first: the literal segment must not be swallowed by /:id
	api.Put("/participants/participant_services/:participant_id", svcCtl.Upsert)
	api.Delete("/participants/participant_services/:participant_id", svcCtl.Delete)

	api.Get("/participants", partCtl.List)
	api.Get("/participants/:id", partCtl.GetByID)
	api.Put("/participants/:id", partCtl.Upsert)
	api.Delete("/participants/:id", partCtl.Delete)

	api.Post("/participants/:id/carepartners", partCtl.LinkCarePartner)
	api.Delete("/participants/:id/carepartners/:link_id", partCtl.UnlinkCarePartner)

	api.Get("/participants/:id/activity-logs", actCtl.ListByParticipant)
}
