// file: internals/features/scheduling/dashboard/controller/dashboard_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attDTO "careportal_backend/internals/features/scheduling/attendance/dto"
	attModel "careportal_backend/internals/features/scheduling/attendance/model"
	dashDTO "careportal_backend/internals/features/scheduling/dashboard/dto"
	rosterSvc "careportal_backend/internals/features/scheduling/dashboard/service"
	schedModel "careportal_backend/internals/features/scheduling/schedules/model"
	helper "careportal_backend/internals/helpers"
)

// DashboardController serves the day-of rosters. Reads come from the cached
// snapshot, not the DB, mirroring how the portal worked off one periodic
// fetch of all three tables.
type DashboardController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Store     *rosterSvc.RosterStore
}

func NewDashboardController(db *gorm.DB, store *rosterSvc.RosterStore) *DashboardController {
	return &DashboardController{
		DB:        db,
		Validator: validator.New(),
		Store:     store,
	}
}

func (ctl *DashboardController) sessionParam(c *fiber.Ctx) (schedModel.Session, error) {
	session, ok := schedModel.ParseSession(c.Params("session"))
	if !ok {
		return "", fiber.NewError(fiber.StatusBadRequest, "session must be AM, PM, or Full")
	}
	return session, nil
}

// GET /api/schedule/dashboard/:session
// Today's roster for one session: scheduled rows first, walk-ins after.
func (ctl *DashboardController) Roster(c *fiber.Ctx) error {
	session, err := ctl.sessionParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	snap := ctl.Store.Current()
	rows := rosterSvc.SessionRoster(session, rosterSvc.Today(),
		snap.Participants, snap.Schedules, snap.Attendance)
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/schedule/dashboard/:session/unscheduled?search=
// Participants who can still be added as walk-ins for the session.
func (ctl *DashboardController) Unscheduled(c *fiber.Ctx) error {
	session, err := ctl.sessionParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	snap := ctl.Store.Current()
	candidates := rosterSvc.UnscheduledCandidates(session, rosterSvc.Today(),
		snap.Participants, snap.Schedules, snap.Attendance, c.Query("search"))
	return helper.JsonOK(c, "ok", dashDTO.NewCandidateResponses(candidates))
}

// POST /api/schedule/dashboard/walkin
// Adds an unscheduled participant to today's log for a session. A second add
// for the same participant today hits the (participant, date) unique index
// and reports a conflict instead of a duplicate row.
func (ctl *DashboardController) AddWalkIn(c *fiber.Ctx) error {
	var req attDTO.AddWalkInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if !req.Session.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "session must be AM, PM, or Full")
	}

	session := req.Session
	row := attModel.AttendanceModel{
		AttendanceParticipantID: req.ParticipantID,
		AttendanceDate:          rosterSvc.TodayDateString(),
		AttendanceSession:       &session,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "participant already has an attendance row today")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctl.Store.Apply(row)
	return helper.JsonCreated(c, "walk-in added", row)
}
